package promexport_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/10log/beamtrace3d/geom"
	"github.com/10log/beamtrace3d/internal/fixture"
	"github.com/10log/beamtrace3d/metrics/promexport"
	"github.com/10log/beamtrace3d/trace"
)

func TestCollectorRegistersAndScrapes(t *testing.T) {
	tol := geom.DefaultTolerances()
	polys, err := fixture.Shoebox(10, 8, 3, tol)
	if err != nil {
		t.Fatalf("Shoebox: %v", err)
	}
	source := geom.Vector3{X: 5, Y: 4, Z: 1.5}
	solver, err := trace.NewSolver(polys, source, trace.DefaultConfig())
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	solver.GetPaths(geom.Vector3{X: 3, Y: 3, Z: 1.2})

	reg := prometheus.NewRegistry()
	collector := promexport.NewCollector(solver)
	if err := reg.Register(collector); err != nil {
		t.Fatalf("Register: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	names := map[string]bool{}
	for _, mf := range families {
		names[mf.GetName()] = true
		for _, m := range mf.Metric {
			if m.GetGauge() == nil {
				t.Errorf("metric %s has no gauge value", mf.GetName())
			}
		}
	}
	if !names["beamtrace3d_valid_paths"] {
		t.Errorf("expected beamtrace3d_valid_paths among gathered metrics, got %v", names)
	}
}
