// Package barneshut3 implements a 3D Barnes-Hut octree for approximating
// gravitational forces across a population of point masses. It mirrors
// package barneshut (the 2D quadtree variant) with eight children per
// node instead of four and r3.Vec positions instead of r2.Vec.
package barneshut3
