// Package body holds the dense, index-addressable particle state that the
// tree and integrator packages operate over: mass, position, velocity, and
// acceleration for a fixed population of N bodies.
package body

import (
	"github.com/robmdunn/nbody/floats"
	"github.com/robmdunn/nbody/spatial/r3"
)

// Store is a structure-of-arrays container of body state. Index i of every
// slice refers to the same body for the lifetime of the Store. Store is
// not safe for concurrent mutation, but concurrent readers (such as force
// evaluators running against distinct bodies) may call Mass/Pos freely
// while only Acc is written, one index per writer.
type Store struct {
	mass []float64
	pos  []r3.Vec
	vel  []r3.Vec
	acc  []r3.Vec
}

// NewStore allocates a Store with room for n bodies, all zero-valued.
func NewStore(n int) *Store {
	return &Store{
		mass: make([]float64, n),
		pos:  make([]r3.Vec, n),
		vel:  make([]r3.Vec, n),
		acc:  make([]r3.Vec, n),
	}
}

// Len returns the number of bodies in the store.
func (s *Store) Len() int { return len(s.mass) }

// Mass returns the mass of body i.
func (s *Store) Mass(i int) float64 { return s.mass[i] }

// Pos returns the position of body i.
func (s *Store) Pos(i int) r3.Vec { return s.pos[i] }

// Vel returns the velocity of body i.
func (s *Store) Vel(i int) r3.Vec { return s.vel[i] }

// Acc returns the acceleration of body i, as computed by the most recent
// force evaluation.
func (s *Store) Acc(i int) r3.Vec { return s.acc[i] }

// Set overwrites the complete state of body i.
func (s *Store) Set(i int, mass float64, pos, vel r3.Vec) {
	s.mass[i] = mass
	s.pos[i] = pos
	s.vel[i] = vel
}

// SetAcc overwrites the acceleration of body i. Force evaluators call this
// exclusively for their own assigned indices, so concurrent calls for
// distinct i require no synchronization.
func (s *Store) SetAcc(i int, a r3.Vec) { s.acc[i] = a }

// ResetAcc zeroes every body's acceleration slot. The contract for a step
// is that acceleration holds only that step's force evaluation result.
func (s *Store) ResetAcc() {
	for i := range s.acc {
		s.acc[i] = r3.Vec{}
	}
}

// Advance applies a kick-then-drift (semi-implicit Euler / Euler-Cromer)
// update to body i using its current acceleration: velocity is updated
// before position, per body.
func (s *Store) Advance(i int, dt float64) {
	s.vel[i] = s.vel[i].Add(s.acc[i].Scale(dt))
	s.pos[i] = s.pos[i].Add(s.vel[i].Scale(dt))
}

// BoundingBox returns the axis-aligned box enclosing every body's current
// position. BoundingBox panics if the store holds no bodies.
func (s *Store) BoundingBox() (min, max r3.Vec) {
	if len(s.pos) == 0 {
		panic("body: BoundingBox called on empty store")
	}
	p0 := s.pos[0]
	box := r3.NewBox(p0.X, p0.Y, p0.Z, p0.X, p0.Y, p0.Z)
	for _, p := range s.pos[1:] {
		box = box.Union(r3.NewBox(p.X, p.Y, p.Z, p.X, p.Y, p.Z))
	}
	return box.Min, box.Max
}

// HasDiverged reports whether any body's position, velocity, or
// acceleration holds a non-finite component.
func (s *Store) HasDiverged() bool {
	for _, vs := range [3][]r3.Vec{s.pos, s.vel, s.acc} {
		flat := flattenComponents(vs)
		if floats.HasNaN(flat) || floats.HasInf(flat) {
			return true
		}
	}
	return false
}

// flattenComponents lays out the X, Y, Z components of vs as a single
// []float64, for consumption by the floats package's slice-oriented checks.
func flattenComponents(vs []r3.Vec) []float64 {
	flat := make([]float64, 0, 3*len(vs))
	for _, v := range vs {
		flat = append(flat, v.X, v.Y, v.Z)
	}
	return flat
}
