package simulate

import (
	"errors"
	"math"
)

var (
	// ErrNonPositiveBodyCount is returned when Config.NBodies is not
	// strictly positive.
	ErrNonPositiveBodyCount = errors.New("simulate: n_bodies must be positive")
	// ErrNonPositiveMass is returned when Config.Mass or Config.Mzero is
	// not strictly positive.
	ErrNonPositiveMass = errors.New("simulate: mass and mzero must be positive")
	// ErrNonFiniteG is returned when Config.G is NaN or infinite.
	ErrNonFiniteG = errors.New("simulate: g must be finite")
	// ErrNegativeSoftening is returned when Config.Softening is negative.
	ErrNegativeSoftening = errors.New("simulate: softening must be non-negative")
	// ErrNegativeTreeRatio is returned when Config.TreeRatio is negative.
	ErrNegativeTreeRatio = errors.New("simulate: tree_ratio must be non-negative")
	// ErrNonPositiveTimestep is returned when Config.Timestep is not
	// strictly positive.
	ErrNonPositiveTimestep = errors.New("simulate: timestep must be positive")
)

// Config holds the parameters recognized by New and Simulation.Reset.
// Parameter changes only take effect through Reset; they are never applied
// mid-step.
type Config struct {
	NBodies   int     // n_bodies: particle count for the initial distribution
	Mass      float64 // mass: per-body mass assigned to non-central bodies
	Mzero     float64 // mzero: central body mass
	G         float64 // g: gravitational constant
	Timestep  float64 // timestep: delta-t per Step call
	Softening float64 // softening: Plummer softening length epsilon
	Spin      float64 // spin: initial angular velocity factor omega
	TreeRatio float64 // tree_ratio: Barnes-Hut acceptance threshold theta_t
	Mode3D    bool    // mode_3d: selects the octree evaluator over the quadtree

	// RMin is the minimum spawn radius for the initial distribution,
	// guarding against central-singularity placement. Zero selects a small
	// positive default.
	RMin float64

	// Seed is the initial-distribution PRNG seed. Identical seeds produce
	// identical distributions.
	Seed uint64

	// Deterministic selects the fixed-partition parallel reduction mode:
	// force evaluation is still spread across workers, but bodies are
	// statically assigned to workers by index range rather than pulled
	// from a shared queue, so results are bit-identical across runs
	// regardless of scheduling order.
	Deterministic bool

	// Workers caps the number of goroutines used for force evaluation. Zero
	// selects GOMAXPROCS.
	Workers int
}

const defaultRMin = 0.01

func (c Config) validate() error {
	if c.NBodies <= 0 {
		return ErrNonPositiveBodyCount
	}
	if c.Mass <= 0 || c.Mzero <= 0 {
		return ErrNonPositiveMass
	}
	if math.IsNaN(c.G) || math.IsInf(c.G, 0) {
		return ErrNonFiniteG
	}
	if c.Softening < 0 {
		return ErrNegativeSoftening
	}
	if c.TreeRatio < 0 {
		return ErrNegativeTreeRatio
	}
	if c.Timestep <= 0 {
		return ErrNonPositiveTimestep
	}
	return nil
}

func (c Config) rMin() float64 {
	if c.RMin > 0 {
		return c.RMin
	}
	return defaultRMin
}
