package body

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/robmdunn/nbody/spatial/r3"
)

// DistributionParams configures the initial particle distribution generated
// by NewDistribution.
type DistributionParams struct {
	N       int     // total body count, including the central body
	Mzero   float64 // mass of the central body (body 0)
	Mass    float64 // mass assigned to every non-central body
	Spin    float64 // tangential velocity factor omega
	RMin    float64 // minimum spawn radius, avoids a central singularity
	Mode3D  bool    // if true, scatter bodies in a thin disk instead of the xy-plane
	Seed    uint64  // PRNG seed; identical seeds reproduce identical distributions
}

// NewDistribution builds a Store of p.N bodies. Body 0 is the central mass,
// placed at the origin with zero velocity. Every other body is placed at a
// uniformly sampled radius in [p.RMin, 1) and angle in [0, 2*pi), given a
// tangential velocity of magnitude p.Spin*r perpendicular to its radius
// vector. In 3D mode, bodies additionally receive a small vertical scatter
// with no out-of-plane velocity component.
func NewDistribution(p DistributionParams) *Store {
	rnd := rand.New(rand.NewSource(p.Seed))

	s := NewStore(p.N)
	s.Set(0, p.Mzero, r3.Vec{}, r3.Vec{})

	const verticalScatter = 0.01

	for i := 1; i < p.N; i++ {
		r := p.RMin + (1-p.RMin)*rnd.Float64()
		theta := 2 * math.Pi * rnd.Float64()

		cos, sin := math.Cos(theta), math.Sin(theta)
		pos := r3.Vec{X: r * cos, Y: r * sin}
		if p.Mode3D {
			pos.Z = verticalScatter * (2*rnd.Float64() - 1)
		}

		speed := p.Spin * r
		vel := r3.Vec{X: -speed * sin, Y: speed * cos}

		s.Set(i, p.Mass, pos, vel)
	}

	return s
}
