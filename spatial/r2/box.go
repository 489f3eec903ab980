package r2

import "math"

// Box is a 2D bounding box. Well formed Boxes have
// Min components smaller than Max components.
type Box struct {
	Min, Max Vec
}

// NewBox is shorthand for Box{Min:Vec{x0,y0}, Max:Vec{x1,y1}}.
// The sides are swapped so that the resulting Box is well formed.
func NewBox(x0, y0, x1, y1 float64) Box {
	return Box{
		Min: Vec{X: math.Min(x0, x1), Y: math.Min(y0, y1)},
		Max: Vec{X: math.Max(x0, x1), Y: math.Max(y0, y1)},
	}
}

// Size returns the size of the Box.
func (a Box) Size() Vec {
	return a.Max.Sub(a.Min)
}

// Center returns the center of the Box.
func (a Box) Center() Vec {
	return a.Min.Add(a.Max).Scale(0.5)
}

// Empty returns true if a Box's volume is zero
// or if a Min component is greater than its Max component.
func (a Box) Empty() bool {
	return a.Min.X >= a.Max.X || a.Min.Y >= a.Max.Y
}

// Union returns a box enclosing both the receiver and argument Boxes.
// Zero-volume boxes (such as a single point) are enclosed like any other;
// only a box with a Min component greater than its Max component is ignored.
func (a Box) Union(b Box) Box {
	if a.Min.X > a.Max.X || a.Min.Y > a.Max.Y {
		return b
	}
	if b.Min.X > b.Max.X || b.Min.Y > b.Max.Y {
		return a
	}
	return Box{
		Min: minElem(a.Min, b.Min),
		Max: maxElem(a.Max, b.Max),
	}
}

// Contains returns true if v is contained within the bounds of the Box.
func (a Box) Contains(v Vec) bool {
	if a.Empty() {
		return v == a.Min && v == a.Max
	}
	return a.Min.X <= v.X && v.X <= a.Max.X &&
		a.Min.Y <= v.Y && v.Y <= a.Max.Y
}

func minElem(a, b Vec) Vec {
	return Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

func maxElem(a, b Vec) Vec {
	return Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}
