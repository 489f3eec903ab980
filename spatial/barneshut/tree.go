package barneshut

import (
	"math"

	"github.com/robmdunn/nbody/spatial/r2"
)

// maxDepth bounds quadtree subdivision. Bodies that still share a quadrant
// at this depth are collapsed into a single leaf rather than recursing
// forever, per the depth-cap rule for coincident positions.
const maxDepth = 64

// epsilon enlarges the root region so that every body strictly satisfies
// the half-open containment predicate, including bodies that sit exactly
// on the bounding box edge.
const epsilon = 1e-9

const (
	ne = iota // x >= center.X, y >= center.Y
	nw        // x <  center.X, y >= center.Y
	sw        // x <  center.X, y <  center.Y
	se        // x >= center.X, y <  center.Y
)

// square is an axis-aligned square region described by its center and
// half-width.
type square struct {
	center r2.Vec
	half   float64
}

// quadrant returns which quadrant of s that p falls in. A coordinate that
// lands exactly on an axis of s is assigned to the non-negative side, per
// the tie-break rule.
func (s square) quadrant(p r2.Vec) int {
	switch {
	case p.X >= s.center.X && p.Y >= s.center.Y:
		return ne
	case p.X < s.center.X && p.Y >= s.center.Y:
		return nw
	case p.X < s.center.X && p.Y < s.center.Y:
		return sw
	default:
		return se
	}
}

// split returns the child square of s in the given direction.
func (s square) split(dir int) square {
	half := s.half / 2
	c := s.center
	switch dir {
	case ne:
		c.X += half
		c.Y += half
	case nw:
		c.X -= half
		c.Y += half
	case sw:
		c.X -= half
		c.Y -= half
	case se:
		c.X += half
		c.Y -= half
	}
	return square{center: c, half: half}
}

// side returns the side length of the square, i.e. twice its half-width.
func (s square) side() float64 {
	return 2 * s.half
}

// Bodies is the read-only view of a particle population a Tree is built
// over. Index i must be stable for the lifetime of the Tree.
type Bodies interface {
	Len() int
	Mass(i int) float64
	Pos(i int) r2.Vec
}

// node is an arena-allocated quadtree node. A node with a non-empty bodies
// slice is a leaf (normally holding exactly one body index; more than one
// only after a depth-cap collapse). A node with no bodies and at least one
// live child is internal. A node with neither is an empty leaf awaiting its
// first insertion.
type node struct {
	region   square
	children [4]int32
	bodies   []int32

	mass   float64
	center r2.Vec
}

func emptyNode(region square) node {
	return node{region: region, children: [4]int32{-1, -1, -1, -1}}
}

func (n *node) isInternal() bool {
	for _, c := range n.children {
		if c >= 0 {
			return true
		}
	}
	return false
}

// Tree is a Barnes-Hut quadtree built over a fixed Bodies population. Tree
// is read-only once built; it is safe to call ForceOn concurrently from
// multiple goroutines for distinct bodies.
type Tree struct {
	nodes  []node
	bodies Bodies
}

// New builds a Tree over bodies. It is equivalent to calling Reset on a
// zero Tree.
func New(bodies Bodies) *Tree {
	t := &Tree{}
	t.Reset(bodies)
	return t
}

// Reset rebuilds the tree from the current state of bodies, discarding any
// previously built structure.
func (t *Tree) Reset(bodies Bodies) {
	t.bodies = bodies
	t.nodes = t.nodes[:0]

	n := bodies.Len()
	if n == 0 {
		return
	}

	t.nodes = append(t.nodes, emptyNode(rootRegion(bodies)))
	for i := 0; i < n; i++ {
		t.insert(0, int32(i), 0)
	}
	t.summarize(0)
}

// rootRegion computes the smallest square containing every body's current
// position, expanded by epsilon so containment is strict.
func rootRegion(bodies Bodies) square {
	p0 := bodies.Pos(0)
	box := r2.NewBox(p0.X, p0.Y, p0.X, p0.Y)
	for i := 1; i < bodies.Len(); i++ {
		p := bodies.Pos(i)
		box = box.Union(r2.NewBox(p.X, p.Y, p.X, p.Y))
	}
	size := box.Size()
	half := math.Max(size.X, size.Y) / 2
	half = half*(1+epsilon) + epsilon
	return square{center: box.Center(), half: half}
}

// newNode appends a fresh empty leaf to the arena and returns its index.
func (t *Tree) newNode(region square) int32 {
	t.nodes = append(t.nodes, emptyNode(region))
	return int32(len(t.nodes) - 1)
}

// insert places body b into the subtree rooted at node index n, recursing
// at most maxDepth levels before collapsing coincident bodies into a
// shared leaf.
func (t *Tree) insert(n int32, b int32, depth int) {
	if t.nodes[n].isInternal() {
		dir := t.nodes[n].region.quadrant(t.bodies.Pos(int(b)))
		child := t.nodes[n].children[dir]
		if child < 0 {
			child = t.newNode(t.nodes[n].region.split(dir))
			t.nodes[n].children[dir] = child
		}
		t.insert(child, b, depth+1)
		return
	}

	if len(t.nodes[n].bodies) == 0 {
		t.nodes[n].bodies = append(t.nodes[n].bodies, b)
		return
	}

	if depth >= maxDepth {
		// Bodies are coincident (or too close to separate within the
		// depth cap); collapse them into this leaf rather than recurse
		// forever.
		t.nodes[n].bodies = append(t.nodes[n].bodies, b)
		return
	}

	// Single-body leaf being displaced: subdivide and re-insert both the
	// resident and the incoming body.
	resident := t.nodes[n].bodies[0]
	t.nodes[n].bodies = nil
	region := t.nodes[n].region
	dirResident := region.quadrant(t.bodies.Pos(int(resident)))
	childResident := t.newNode(region.split(dirResident))
	t.nodes[n].children[dirResident] = childResident
	t.insert(childResident, resident, depth+1)

	dirB := region.quadrant(t.bodies.Pos(int(b)))
	childB := t.nodes[n].children[dirB]
	if childB < 0 {
		childB = t.newNode(region.split(dirB))
		t.nodes[n].children[dirB] = childB
	}
	t.insert(childB, b, depth+1)
}

// summarize fills in mass and center of mass for node n and its subtree,
// bottom-up, as the mass-weighted sum of its resident or descendant
// bodies.
func (t *Tree) summarize(n int32) {
	nd := &t.nodes[n]

	if len(nd.bodies) > 0 {
		var mass float64
		var center r2.Vec
		for _, b := range nd.bodies {
			m := t.bodies.Mass(int(b))
			mass += m
			center = center.Add(t.bodies.Pos(int(b)).Scale(m))
		}
		nd.mass = mass
		if mass > 0 {
			nd.center = center.Scale(1 / mass)
		}
		return
	}

	var mass float64
	var center r2.Vec
	for _, c := range nd.children {
		if c < 0 {
			continue
		}
		t.summarize(c)
		cm := t.nodes[c].mass
		if cm == 0 {
			continue
		}
		mass += cm
		center = center.Add(t.nodes[c].center.Scale(cm))
	}
	nd.mass = mass
	if mass > 0 {
		nd.center = center.Scale(1 / mass)
	}
}

// Empty reports whether the tree holds no bodies.
func (t *Tree) Empty() bool {
	return len(t.nodes) == 0
}

// Region returns the root region of the tree. Region panics if the tree is
// empty.
func (t *Tree) Region() (center r2.Vec, halfWidth float64) {
	if t.Empty() {
		panic("barneshut: Region called on empty tree")
	}
	return t.nodes[0].region.center, t.nodes[0].region.half
}

// Walk calls visit once for every node in the tree, in depth-first order,
// passing that node's region center, half-width, and depth from the root
// (the root is depth 0). Walk is intended for diagnostic overlays (e.g. a
// wireframe of the tree structure); it does no work if the tree is empty.
func (t *Tree) Walk(visit func(center r2.Vec, halfWidth float64, depth int)) {
	if t.Empty() {
		return
	}
	t.walk(0, 0, visit)
}

func (t *Tree) walk(n int32, depth int, visit func(center r2.Vec, halfWidth float64, depth int)) {
	nd := &t.nodes[n]
	visit(nd.region.center, nd.region.half, depth)
	for _, c := range nd.children {
		if c < 0 {
			continue
		}
		t.walk(c, depth+1, visit)
	}
}
