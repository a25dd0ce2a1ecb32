package trace_test

import (
	"errors"
	"testing"

	"github.com/10log/beamtrace3d/geom"
	"github.com/10log/beamtrace3d/internal/fixture"
	"github.com/10log/beamtrace3d/trace"
)

func TestNewSolverRejectsInvalidConfig(t *testing.T) {
	tol := geom.DefaultTolerances()
	polys, err := fixture.Shoebox(10, 8, 3, tol)
	if err != nil {
		t.Fatalf("Shoebox: %v", err)
	}
	source := geom.Vector3{X: 5, Y: 4, Z: 1.5}

	cases := []struct {
		name string
		cfg  trace.Config
	}{
		{"negative max order", trace.Config{MaxReflectionOrder: -1, BucketSize: 16, SpeedOfSound: 343, GrazingThresholdDegrees: 89}},
		{"zero bucket size", trace.Config{MaxReflectionOrder: 5, BucketSize: 0, SpeedOfSound: 343, GrazingThresholdDegrees: 89}},
		{"non-positive speed of sound", trace.Config{MaxReflectionOrder: 5, BucketSize: 16, SpeedOfSound: 0, GrazingThresholdDegrees: 89}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := trace.NewSolver(polys, source, c.cfg); !errors.Is(err, trace.ErrInvalidConfig) {
				t.Errorf("NewSolver(%s) error = %v, want ErrInvalidConfig", c.name, err)
			}
		})
	}
}

func TestNewSolverRejectsDegenerateGeometry(t *testing.T) {
	source := geom.Vector3{X: 0, Y: 0, Z: 0}
	cfg := trace.DefaultConfig()

	t.Run("too few vertices", func(t *testing.T) {
		bad := geom.Polygon{Vertices: []geom.Vector3{{X: 0}, {X: 1}}, Plane: geom.NewPlane(0, 0, 1, 0)}
		if _, err := trace.NewSolver([]geom.Polygon{bad}, source, cfg); !errors.Is(err, trace.ErrTooFewVertices) {
			t.Errorf("error = %v, want ErrTooFewVertices", err)
		}
	})

	t.Run("non-coplanar vertices", func(t *testing.T) {
		bad := geom.Polygon{
			Vertices: []geom.Vector3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 5}},
			Plane:    geom.NewPlane(0, 0, 1, 0),
		}
		if _, err := trace.NewSolver([]geom.Polygon{bad}, source, cfg); !errors.Is(err, trace.ErrNonCoplanar) {
			t.Errorf("error = %v, want ErrNonCoplanar", err)
		}
	})

	t.Run("zero area", func(t *testing.T) {
		bad := geom.Polygon{
			Vertices: []geom.Vector3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}},
			Plane:    geom.NewPlane(0, 1, 0, 0),
		}
		if _, err := trace.NewSolver([]geom.Polygon{bad}, source, cfg); !errors.Is(err, trace.ErrDegenerateArea) {
			t.Errorf("error = %v, want ErrDegenerateArea", err)
		}
	})
}

func TestDefaultConfigMatchesDocumentedDefaults(t *testing.T) {
	cfg := trace.DefaultConfig()
	if cfg.MaxReflectionOrder != 5 {
		t.Errorf("MaxReflectionOrder = %d, want 5", cfg.MaxReflectionOrder)
	}
	if cfg.BucketSize != 16 {
		t.Errorf("BucketSize = %d, want 16", cfg.BucketSize)
	}
	if cfg.SpeedOfSound != 343 {
		t.Errorf("SpeedOfSound = %v, want 343", cfg.SpeedOfSound)
	}
}
