package trace

import (
	"math"

	"github.com/10log/beamtrace3d/geom"
)

// PathPoint is one vertex of a ReflectionPath. PolygonID is nil for the
// listener (first point) and the source (last point); every interior
// point carries the original ID of the polygon it reflects off.
type PathPoint struct {
	Position  geom.Vector3
	PolygonID *int
}

// Path is a validated, unoccluded specular path from listener to source.
type Path struct {
	Points []PathPoint
}

// ReflectionOrder returns the number of interior (reflecting) points.
func (p Path) ReflectionOrder() int {
	if len(p.Points) < 2 {
		return 0
	}
	return len(p.Points) - 2
}

// Length returns the path's total Euclidean length, summing every leg.
func (p Path) Length() float64 {
	var total float64
	for i := 0; i+1 < len(p.Points); i++ {
		total += p.Points[i].Position.Dist(&p.Points[i+1].Position)
	}
	return total
}

// Segment is one leg of a DetailedPath between two consecutive points.
type Segment struct {
	Start              geom.Vector3
	End                geom.Vector3
	Length             float64
	CumulativeDistance float64 // distance from the listener through End.
}

// Reflection enriches one interior PathPoint with incidence geometry:
// incoming/outgoing unit directions, a surface normal oriented toward
// the incoming ray, incidence/reflection angles in radians, and a
// grazing flag.
type Reflection struct {
	Point           geom.Vector3
	PolygonID       int
	Incoming        geom.Vector3
	Outgoing        geom.Vector3
	Normal          geom.Vector3
	IncidenceAngle  float64
	ReflectionAngle float64
	IsGrazing       bool
}

// DetailedPath is a Path enriched with per-segment and per-reflection
// geometry plus overall length and arrival time.
type DetailedPath struct {
	Points      []PathPoint
	Segments    []Segment
	Reflections []Reflection
	TotalLength float64
	ArrivalTime float64
}

// buildDetailedPath derives a DetailedPath from a validated Path. polys
// supplies the reflecting polygon for each interior point's surface
// normal; speedOfSound and grazingThresholdDegrees come from Config (or
// a per-call override).
func buildDetailedPath(path Path, polys []geom.Polygon, speedOfSound, grazingThresholdDegrees float64) DetailedPath {
	dp := DetailedPath{Points: path.Points}

	var cumulative float64
	for i := 0; i+1 < len(path.Points); i++ {
		start := path.Points[i].Position
		end := path.Points[i+1].Position
		length := start.Dist(&end)
		cumulative += length
		dp.Segments = append(dp.Segments, Segment{
			Start:              start,
			End:                end,
			Length:             length,
			CumulativeDistance: cumulative,
		})
	}
	dp.TotalLength = cumulative
	if speedOfSound > 0 {
		dp.ArrivalTime = cumulative / speedOfSound
	}

	grazingThresholdRad := grazingThresholdDegrees * math.Pi / 180

	for i := 1; i+1 < len(path.Points); i++ {
		prev := path.Points[i-1].Position
		cur := path.Points[i].Position
		next := path.Points[i+1].Position
		polyID := *path.Points[i].PolygonID

		incoming := geom.NewVector3().Sub(&cur, &prev)
		incoming.Unit(geom.DefaultTolerances())
		outgoing := geom.NewVector3().Sub(&next, &cur)
		outgoing.Unit(geom.DefaultTolerances())

		normal := polys[polyID].Plane.Normal()
		if normal.Dot(incoming) > 0 {
			normal = *geom.NewVector3().Neg(&normal)
		}

		negIncoming := geom.NewVector3().Neg(incoming)
		cosIncidence := clamp(normal.Dot(negIncoming), -1, 1)
		cosReflection := clamp(normal.Dot(outgoing), -1, 1)
		incidenceAngle := math.Acos(cosIncidence)
		reflectionAngle := math.Acos(cosReflection)

		dp.Reflections = append(dp.Reflections, Reflection{
			Point:           cur,
			PolygonID:       polyID,
			Incoming:        *incoming,
			Outgoing:        *outgoing,
			Normal:          normal,
			IncidenceAngle:  incidenceAngle,
			ReflectionAngle: reflectionAngle,
			IsGrazing:       incidenceAngle >= grazingThresholdRad,
		})
	}
	return dp
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
