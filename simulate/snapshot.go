package simulate

import (
	"github.com/robmdunn/nbody/spatial/r2"
	"github.com/robmdunn/nbody/spatial/r3"
)

// TreeRegion is one node's region and depth from the root, as reported by
// TreeSnapshot.
type TreeRegion struct {
	Center    r3.Vec
	HalfWidth float64
	Depth     int
}

// TreeSnapshot returns every region of the tree built by the most recent
// Step, for diagnostic overlays such as a wireframe of the current spatial
// decomposition. It returns nil if Step has not yet been called since
// construction or the last Reset.
func (s *Simulation) TreeSnapshot() []TreeRegion {
	var regions []TreeRegion
	visit2D := func(center r2.Vec, halfWidth float64, depth int) {
		regions = append(regions, TreeRegion{Center: r3.Vec{X: center.X, Y: center.Y}, HalfWidth: halfWidth, Depth: depth})
	}
	visit3D := func(center r3.Vec, halfWidth float64, depth int) {
		regions = append(regions, TreeRegion{Center: center, HalfWidth: halfWidth, Depth: depth})
	}

	switch {
	case s.cfg.Mode3D && s.tree3d != nil:
		s.tree3d.Walk(visit3D)
	case !s.cfg.Mode3D && s.tree2d != nil:
		s.tree2d.Walk(visit2D)
	}
	return regions
}
