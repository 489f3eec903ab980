package barneshut_test

import (
	"fmt"

	"github.com/robmdunn/nbody/spatial/barneshut"
	"github.com/robmdunn/nbody/spatial/r2"
)

// galaxy is a toy Bodies implementation: a handful of masses arranged
// around a heavy center, used to demonstrate building a tree and querying
// forces from it.
type galaxy struct {
	mass []float64
	pos  []r2.Vec
}

func (g galaxy) Len() int           { return len(g.mass) }
func (g galaxy) Mass(i int) float64 { return g.mass[i] }
func (g galaxy) Pos(i int) r2.Vec   { return g.pos[i] }

func Example() {
	stars := galaxy{
		mass: []float64{1000, 1, 1, 1, 1},
		pos: []r2.Vec{
			{X: 0, Y: 0},
			{X: 10, Y: 0},
			{X: -10, Y: 0},
			{X: 0, Y: 10},
			{X: 0, Y: -10},
		},
	}

	tree := barneshut.New(stars)

	const g = 1.0
	const theta = 0.5
	const softening = 0.01

	acc := tree.ForceOn(1, g, theta, softening)
	fmt.Printf("acceleration points toward center: %v\n", acc.X < 0)

	// Output:
	// acceleration points toward center: true
}
