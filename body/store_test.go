package body

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/robmdunn/nbody/spatial/r3"
)

func TestAdvanceIsKickThenDrift(t *testing.T) {
	s := NewStore(1)
	s.Set(0, 1, r3.Vec{X: 0, Y: 0}, r3.Vec{X: 1, Y: 0})
	s.SetAcc(0, r3.Vec{X: 0, Y: 2})

	const dt = 0.5
	s.Advance(0, dt)

	wantVel := r3.Vec{X: 1, Y: 1} // v += a*dt
	wantPos := r3.Vec{X: 0.5, Y: 0.5} // x += (updated v)*dt

	if diff := cmp.Diff(wantVel, s.Vel(0)); diff != "" {
		t.Errorf("velocity mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantPos, s.Pos(0)); diff != "" {
		t.Errorf("position mismatch (-want +got):\n%s", diff)
	}
}

func TestResetAcc(t *testing.T) {
	s := NewStore(3)
	for i := 0; i < 3; i++ {
		s.SetAcc(i, r3.Vec{X: 1, Y: 1, Z: 1})
	}
	s.ResetAcc()
	for i := 0; i < 3; i++ {
		if s.Acc(i) != (r3.Vec{}) {
			t.Errorf("body %d acceleration not reset: %v", i, s.Acc(i))
		}
	}
}

func TestBoundingBox(t *testing.T) {
	s := NewStore(3)
	s.Set(0, 1, r3.Vec{X: -1, Y: 2, Z: 0}, r3.Vec{})
	s.Set(1, 1, r3.Vec{X: 3, Y: -4, Z: 1}, r3.Vec{})
	s.Set(2, 1, r3.Vec{X: 0, Y: 0, Z: -2}, r3.Vec{})

	min, max := s.BoundingBox()
	want := r3.Vec{X: -1, Y: -4, Z: -2}
	if min != want {
		t.Errorf("min = %v, want %v", min, want)
	}
	want = r3.Vec{X: 3, Y: 2, Z: 1}
	if max != want {
		t.Errorf("max = %v, want %v", max, want)
	}
}

func TestHasDivergedDetectsNaN(t *testing.T) {
	s := NewStore(2)
	s.Set(0, 1, r3.Vec{}, r3.Vec{})
	s.Set(1, 1, r3.Vec{X: math.NaN()}, r3.Vec{})
	if !s.HasDiverged() {
		t.Error("expected HasDiverged to detect NaN position")
	}
}

func TestHasDivergedFalseForFiniteState(t *testing.T) {
	s := NewStore(2)
	s.Set(0, 1, r3.Vec{X: 1, Y: 2, Z: 3}, r3.Vec{X: 1})
	s.Set(1, 2, r3.Vec{X: -1}, r3.Vec{})
	if s.HasDiverged() {
		t.Error("did not expect HasDiverged on finite state")
	}
}
