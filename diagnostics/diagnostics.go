// Package diagnostics tracks conservation quantities (momentum, energy)
// across simulation steps and renders them to an offline chart for
// post-hoc inspection, distinct from any real-time renderer.
package diagnostics

import (
	"github.com/robmdunn/nbody/floats"
	"github.com/robmdunn/nbody/simulate"
)

// Sample is one recorded instant's conservation quantities.
type Sample struct {
	Step     int
	Momentum float64 // magnitude of total momentum
	Energy   float64 // total kinetic + potential energy
}

// Tracker accumulates Samples across a run of Step calls.
type Tracker struct {
	G       float64
	samples []Sample
}

// NewTracker returns a Tracker that computes potential energy using
// gravitational constant g.
func NewTracker(g float64) *Tracker {
	return &Tracker{G: g}
}

// Record captures the conservation quantities of s at the given step
// index and appends them to the tracked history.
func (t *Tracker) Record(step int, s *simulate.Simulation) {
	bodies := s.Bodies()
	n := bodies.Len()

	px := make([]float64, n)
	py := make([]float64, n)
	pz := make([]float64, n)
	var kinetic float64
	for i := 0; i < n; i++ {
		v := bodies.Vel(i)
		m := bodies.Mass(i)
		px[i] = m * v.X
		py[i] = m * v.Y
		pz[i] = m * v.Z
		kinetic += 0.5 * m * (v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	}
	momentum := vectorNorm(floats.Sum(px), floats.Sum(py), floats.Sum(pz))

	var potential float64
	for i := 0; i < n; i++ {
		pi := bodies.Pos(i)
		mi := bodies.Mass(i)
		for j := i + 1; j < n; j++ {
			pj := bodies.Pos(j)
			mj := bodies.Mass(j)
			dx, dy, dz := pi.X-pj.X, pi.Y-pj.Y, pi.Z-pj.Z
			r := vectorNorm(dx, dy, dz)
			if r == 0 {
				continue
			}
			potential -= t.G * mi * mj / r
		}
	}

	t.samples = append(t.samples, Sample{Step: step, Momentum: momentum, Energy: kinetic + potential})
}

// Samples returns the recorded history, in recording order.
func (t *Tracker) Samples() []Sample {
	return t.samples
}

// MomentumDrift returns the absolute difference between the first and
// last recorded momentum magnitudes. It returns 0 if fewer than two
// samples have been recorded.
func (t *Tracker) MomentumDrift() float64 {
	if len(t.samples) < 2 {
		return 0
	}
	first := t.samples[0].Momentum
	last := t.samples[len(t.samples)-1].Momentum
	diff := []float64{first, -last}
	return absSum(diff)
}

func absSum(s []float64) float64 {
	sum := floats.Sum(s)
	if sum < 0 {
		return -sum
	}
	return sum
}

func vectorNorm(x, y, z float64) float64 {
	return floats.Norm([]float64{x, y, z}, 2)
}
