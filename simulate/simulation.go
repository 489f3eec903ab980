// Package simulate drives the Barnes-Hut integration loop: it owns the
// body store, rebuilds the spatial tree each step, evaluates forces across
// a worker pool, and advances the population with a kick-then-drift
// integrator.
package simulate

import (
	"context"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/robmdunn/nbody/body"
	"github.com/robmdunn/nbody/spatial/barneshut"
	"github.com/robmdunn/nbody/spatial/barneshut3"
	"github.com/robmdunn/nbody/spatial/r2"
	"github.com/robmdunn/nbody/spatial/r3"
)

// Simulation is a Barnes-Hut N-body integrator. A Simulation is not safe
// for concurrent use by multiple goroutines; Step itself parallelizes
// force evaluation internally and returns only once the full step
// (including integration) has completed.
type Simulation struct {
	cfg     Config
	bodies  *body.Store
	tree2d  *barneshut.Tree
	tree3d  *barneshut3.Tree
	workers int
}

// New constructs a Simulation from cfg, generating the initial body
// distribution. New returns a Config validation error without
// constructing anything on invalid input.
func New(cfg Config) (*Simulation, error) {
	s := &Simulation{}
	if err := s.Reset(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset reinitializes the simulation from cfg, discarding all existing
// body state and any built tree. Reset returns a validation error, and
// leaves the Simulation unchanged, if cfg is invalid.
func (s *Simulation) Reset(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	s.bodies = body.NewDistribution(body.DistributionParams{
		N:      cfg.NBodies,
		Mzero:  cfg.Mzero,
		Mass:   cfg.Mass,
		Spin:   cfg.Spin,
		RMin:   cfg.rMin(),
		Mode3D: cfg.Mode3D,
		Seed:   cfg.Seed,
	})
	s.cfg = cfg
	s.tree2d = nil
	s.tree3d = nil

	s.workers = cfg.Workers
	if s.workers <= 0 {
		s.workers = runtime.GOMAXPROCS(0)
	}
	return nil
}

// BodyCount returns the number of bodies in the simulation. It is constant
// between calls to Reset.
func (s *Simulation) BodyCount() int { return s.bodies.Len() }

// BodyAt returns the position, velocity, and mass of body i.
func (s *Simulation) BodyAt(i int) (pos, vel r3.Vec, mass float64) {
	return s.bodies.Pos(i), s.bodies.Vel(i), s.bodies.Mass(i)
}

// BoundingBox returns the axis-aligned box enclosing every body's current
// position.
func (s *Simulation) BoundingBox() (min, max r3.Vec) {
	return s.bodies.BoundingBox()
}

// Bodies returns the underlying body store, for collaborators such as
// checkpoint I/O that need direct access to the full population. Callers
// must not mutate acceleration while a Step is in progress.
func (s *Simulation) Bodies() *body.Store { return s.bodies }

// LoadBodies replaces the simulation's body population wholesale, as from
// a checkpoint load. The new store's length becomes the new BodyCount; any
// tree built for the previous population is discarded.
func (s *Simulation) LoadBodies(store *body.Store) {
	s.bodies = store
	s.tree2d = nil
	s.tree3d = nil
}

// HasDiverged reports whether any body holds a non-finite position,
// velocity, or acceleration component. Step never fails outright on
// pathological input; callers poll HasDiverged to detect it.
func (s *Simulation) HasDiverged() bool { return s.bodies.HasDiverged() }

// bodies2D adapts a *body.Store (always stored in 3D) to the 2D tree's
// Bodies interface by dropping the Z component.
type bodies2D struct{ s *body.Store }

func (b bodies2D) Len() int           { return b.s.Len() }
func (b bodies2D) Mass(i int) float64 { return b.s.Mass(i) }
func (b bodies2D) Pos(i int) r2.Vec {
	p := b.s.Pos(i)
	return r2.Vec{X: p.X, Y: p.Y}
}

type bodies3D struct{ s *body.Store }

func (b bodies3D) Len() int           { return b.s.Len() }
func (b bodies3D) Mass(i int) float64 { return b.s.Mass(i) }
func (b bodies3D) Pos(i int) r3.Vec   { return b.s.Pos(i) }

// Step advances the simulation by one Config.Timestep: it resets
// accelerations, rebuilds the spatial tree from the current positions,
// evaluates forces for every body in parallel, then integrates velocity
// and position with a kick-then-drift update. Step never returns an
// error; numerical anomalies are logged and surface through HasDiverged.
func (s *Simulation) Step() {
	s.bodies.ResetAcc()

	if s.cfg.Mode3D {
		s.tree3d = barneshut3.New(bodies3D{s.bodies})
	} else {
		s.tree2d = barneshut.New(bodies2D{s.bodies})
	}

	s.evaluateForces()

	for i := 0; i < s.bodies.Len(); i++ {
		s.bodies.Advance(i, s.cfg.Timestep)
	}

	if s.bodies.HasDiverged() {
		log.Printf("simulate: non-finite state detected after step")
	}
}

// evaluateForces computes and stores acceleration for every body. Workers
// only ever write to their own assigned body indices, so no
// synchronization is needed across the write side; the tree and read side
// of the body store are read-only for the duration of the call.
func (s *Simulation) evaluateForces() {
	n := s.bodies.Len()
	workers := s.workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			s.bodies.SetAcc(i, s.forceOn(i))
		}
		return
	}

	g, _ := errgroup.WithContext(context.Background())
	if s.cfg.Deterministic {
		// Static partition: each worker owns a fixed, contiguous range of
		// body indices, independent of scheduling order, so the reduction
		// per body is always performed by the same single goroutine.
		chunk := (n + workers - 1) / workers
		for w := 0; w < workers; w++ {
			lo := w * chunk
			hi := lo + chunk
			if hi > n {
				hi = n
			}
			if lo >= hi {
				continue
			}
			lo, hi := lo, hi
			g.Go(func() error {
				for i := lo; i < hi; i++ {
					s.bodies.SetAcc(i, s.forceOn(i))
				}
				return nil
			})
		}
	} else {
		// Work-stealing over a shared channel of body indices: faster in practice, but the
		// worker that services a given body is scheduler-dependent. Since
		// each body's force is computed independently with no cross-body
		// accumulation, this affects only which goroutine performs the
		// (associative only up to its own per-body summation) work, not
		// the arithmetic itself, so ordinary mode stays deterministic per
		// body; Deterministic exists for embeddings that also want a fixed
		// worker/body assignment.
		next := make(chan int, workers)
		go func() {
			for i := 0; i < n; i++ {
				next <- i
			}
			close(next)
		}()
		for w := 0; w < workers; w++ {
			g.Go(func() error {
				for i := range next {
					s.bodies.SetAcc(i, s.forceOn(i))
				}
				return nil
			})
		}
	}
	_ = g.Wait()
}

func (s *Simulation) forceOn(i int) r3.Vec {
	if s.cfg.Mode3D {
		return s.tree3d.ForceOn(i, s.cfg.G, s.cfg.TreeRatio, s.cfg.Softening)
	}
	a := s.tree2d.ForceOn(i, s.cfg.G, s.cfg.TreeRatio, s.cfg.Softening)
	return r3.Vec{X: a.X, Y: a.Y}
}
