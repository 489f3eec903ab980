package barneshut

import (
	"math"

	"github.com/robmdunn/nbody/spatial/r2"
)

// pointForce returns the gravitational acceleration exerted on a unit test
// point at p by a point mass m at center, using Plummer softening with
// length scale eps to avoid the singularity at zero separation.
func pointForce(g, m float64, center, p r2.Vec, eps float64) r2.Vec {
	d := center.Sub(p)
	dist2 := r2.Norm2(d)
	denom := math.Pow(dist2+eps*eps, 1.5)
	if denom == 0 {
		return r2.Vec{}
	}
	return d.Scale(g * m / denom)
}

// ForceOn returns the net gravitational acceleration on body i due to every
// other body in the tree, approximated by the multipole acceptance
// criterion: an internal node is treated as a single point mass whenever
// its region's side length s satisfies s/d < theta, where d is the
// distance from i to the node's center of mass. A theta of zero disables
// the approximation and forces exact pairwise summation.
//
// ForceOn panics if i is outside the range of bodies the tree was built
// over.
func (t *Tree) ForceOn(i int, g, theta, softening float64) r2.Vec {
	if t.Empty() {
		return r2.Vec{}
	}
	p := t.bodies.Pos(i)
	return t.forceOn(0, i, p, g, theta, softening)
}

func (t *Tree) forceOn(n int32, i int, p r2.Vec, g, theta, softening float64) r2.Vec {
	nd := &t.nodes[n]
	if nd.mass == 0 {
		return r2.Vec{}
	}

	if len(nd.bodies) > 0 {
		var acc r2.Vec
		for _, b := range nd.bodies {
			if int(b) == i {
				continue
			}
			acc = acc.Add(pointForce(g, t.bodies.Mass(int(b)), t.bodies.Pos(int(b)), p, softening))
		}
		return acc
	}

	d := r2.Norm(nd.center.Sub(p))
	if d > 0 && nd.region.side()/d < theta {
		return pointForce(g, nd.mass, nd.center, p, softening)
	}

	var acc r2.Vec
	for _, c := range nd.children {
		if c < 0 {
			continue
		}
		acc = acc.Add(t.forceOn(c, i, p, g, theta, softening))
	}
	return acc
}
