package r3

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestBoxContains(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		b := randomBox(rnd)
		for j := 0; j < 10; j++ {
			contained := b.random(rnd)
			if !b.Contains(contained) {
				t.Error("bounding box should contain Vec")
			}
		}
		uncontained := [6]Vec{
			b.Max.Add(Vec{1, 0, 0}),
			b.Max.Add(Vec{0, 1, 0}),
			b.Max.Add(Vec{0, 0, 1}),
			b.Min.Sub(Vec{1, 0, 0}),
			b.Min.Sub(Vec{0, 1, 0}),
			b.Min.Sub(Vec{0, 0, 1}),
		}
		for _, unc := range uncontained {
			if b.Contains(unc) {
				t.Error("box should not contain vec")
			}
		}
	}
}

func TestBoxUnion(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		b1 := randomBox(rnd)
		b2 := randomBox(rnd)
		u := b1.Union(b2)
		for j := 0; j < 10; j++ {
			contained := b1.random(rnd)
			if !u.Contains(contained) {
				t.Error("union should contain b1's Vec")
			}
			contained = b2.random(rnd)
			if !u.Contains(contained) {
				t.Error("union should contain b2's Vec")
			}
		}
	}
}

func TestBoxCenterAndSize(t *testing.T) {
	const tol = 1e-11
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 300; i++ {
		b := randomBox(rnd)
		center := b.Center()
		size := b.Size()
		rebuilt := NewBox(
			center.X-size.X/2, center.Y-size.Y/2, center.Z-size.Z/2,
			center.X+size.X/2, center.Y+size.Y/2, center.Z+size.Z/2,
		)
		if !vecApproxEqual(b.Min, rebuilt.Min, tol) {
			t.Errorf("min values of box not equal. got %g, expected %g", rebuilt.Min, b.Min)
		}
		if !vecApproxEqual(b.Max, rebuilt.Max, tol) {
			t.Errorf("max values of box not equal. got %g, expected %g", rebuilt.Max, b.Max)
		}
	}
}

func TestBoxEmpty(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 300; i++ {
		b := randomBox(rnd)
		min := b.Min
		max := b.Max
		if !(Box{Min: min, Max: min}).Empty() {
			t.Error("Box{min,min} should be empty")
		}
		if !(Box{Min: max, Max: max}).Empty() {
			t.Error("Box{max,max} should be empty")
		}
	}
}

func TestNewBoxSwapsIllFormedCorners(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		a, b := randomVec(rnd), randomVec(rnd)
		box := NewBox(a.X, a.Y, a.Z, b.X, b.Y, b.Z)
		if box.Empty() {
			t.Error("NewBox should always produce a well-formed, non-empty Box from distinct corners")
		}
	}
}

// randomBox returns a random valid bounding Box.
func randomBox(rnd *rand.Rand) Box {
	a := randomVec(rnd)
	b := randomVec(rnd)
	return NewBox(a.X, a.Y, a.Z, b.X, b.Y, b.Z)
}

// random returns a random point within the Box, used to facilitate testing.
func (b Box) random(rnd *rand.Rand) Vec {
	return Vec{
		X: randomRange(b.Min.X, b.Max.X),
		Y: randomRange(b.Min.Y, b.Max.Y),
		Z: randomRange(b.Min.Z, b.Max.Z),
	}
}

// randomRange returns a random float64 [a,b)
func randomRange(a, b float64) float64 {
	return a + (b-a)*rand.Float64()
}

func randomVec(rnd *rand.Rand) Vec {
	return Vec{X: randomRange(-1000, 1000), Y: randomRange(-1000, 1000), Z: randomRange(-1000, 1000)}
}

func vecApproxEqual(a, b Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}
