// Package promexport adapts a trace.Solver's metrics snapshot to
// prometheus.Collector, the way jinterlante1206-AleutianLocal's services
// wire prometheus/client_golang metrics -- except as a pull-model
// Collector rather than push-model counters/histograms, since a Solver
// has no request loop of its own to instrument inline. It never starts
// an HTTP server or registers itself with the default registry: a host
// application registers it with whatever prometheus.Registerer it
// already owns.
package promexport

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/10log/beamtrace3d/trace"
)

// MetricsSource is the subset of *trace.Solver the collector depends on.
type MetricsSource interface {
	GetMetrics() trace.Metrics
}

var (
	totalLeafNodesDesc = prometheus.NewDesc(
		"beamtrace3d_leaf_nodes_total", "Total leaf nodes in the beam tree.", nil, nil)
	bucketsTotalDesc = prometheus.NewDesc(
		"beamtrace3d_buckets_total", "Total skip-sphere buckets.", nil, nil)
	bucketsSkippedDesc = prometheus.NewDesc(
		"beamtrace3d_buckets_skipped", "Buckets skipped via their skip sphere on the last query.", nil, nil)
	bucketsCheckedDesc = prometheus.NewDesc(
		"beamtrace3d_buckets_checked", "Buckets fully checked on the last query.", nil, nil)
	failPlaneCacheHitsDesc = prometheus.NewDesc(
		"beamtrace3d_fail_plane_cache_hits", "Fail-plane cache hits on the last query.", nil, nil)
	failPlaneCacheMissesDesc = prometheus.NewDesc(
		"beamtrace3d_fail_plane_cache_misses", "Fail-plane cache misses on the last query.", nil, nil)
	raycastCountDesc = prometheus.NewDesc(
		"beamtrace3d_raycasts_total", "BSP raycasts performed on the last query.", nil, nil)
	skipSphereCountDesc = prometheus.NewDesc(
		"beamtrace3d_skip_spheres_active", "Active skip spheres after the last query.", nil, nil)
	validPathCountDesc = prometheus.NewDesc(
		"beamtrace3d_valid_paths", "Valid reflection paths returned by the last query.", nil, nil)
)

// Collector implements prometheus.Collector over a MetricsSource's most
// recent GetMetrics() snapshot. Collect is called synchronously by a
// registry scrape; it never blocks on the solver (GetMetrics is a cheap
// field read) and never calls GetPaths itself.
type Collector struct {
	source MetricsSource
}

// NewCollector wraps source for registration with a prometheus.Registerer.
func NewCollector(source MetricsSource) *Collector {
	return &Collector{source: source}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- totalLeafNodesDesc
	ch <- bucketsTotalDesc
	ch <- bucketsSkippedDesc
	ch <- bucketsCheckedDesc
	ch <- failPlaneCacheHitsDesc
	ch <- failPlaneCacheMissesDesc
	ch <- raycastCountDesc
	ch <- skipSphereCountDesc
	ch <- validPathCountDesc
}

// Collect implements prometheus.Collector, emitting a gauge per field of
// the wrapped source's last Metrics snapshot.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	m := c.source.GetMetrics()
	ch <- prometheus.MustNewConstMetric(totalLeafNodesDesc, prometheus.GaugeValue, float64(m.TotalLeafNodes))
	ch <- prometheus.MustNewConstMetric(bucketsTotalDesc, prometheus.GaugeValue, float64(m.BucketsTotal))
	ch <- prometheus.MustNewConstMetric(bucketsSkippedDesc, prometheus.GaugeValue, float64(m.BucketsSkipped))
	ch <- prometheus.MustNewConstMetric(bucketsCheckedDesc, prometheus.GaugeValue, float64(m.BucketsChecked))
	ch <- prometheus.MustNewConstMetric(failPlaneCacheHitsDesc, prometheus.GaugeValue, float64(m.FailPlaneCacheHits))
	ch <- prometheus.MustNewConstMetric(failPlaneCacheMissesDesc, prometheus.GaugeValue, float64(m.FailPlaneCacheMisses))
	ch <- prometheus.MustNewConstMetric(raycastCountDesc, prometheus.GaugeValue, float64(m.RaycastCount))
	ch <- prometheus.MustNewConstMetric(skipSphereCountDesc, prometheus.GaugeValue, float64(m.SkipSphereCount))
	ch <- prometheus.MustNewConstMetric(validPathCountDesc, prometheus.GaugeValue, float64(m.ValidPathCount))
}
