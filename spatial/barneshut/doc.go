// Package barneshut implements a 2D Barnes-Hut quadtree for approximating
// gravitational forces across a population of point masses. The tree is
// rebuilt from scratch on every call to New or Reset and has step-scoped
// lifetime: nodes live in a single arena slice and are discarded together
// when the tree goes out of scope.
package barneshut
