// Command nbodydemo runs a short Barnes-Hut simulation headlessly and
// reports conservation drift, exercising the full core (tree build, force
// evaluation, integration, diagnostics) without any rendering surface.
// Command-line argument parsing is an external collaborator's concern, not
// the core's, so configuration here is fixed rather than flag-driven.
package main

import (
	"log"

	"github.com/robmdunn/nbody/diagnostics"
	"github.com/robmdunn/nbody/simulate"
)

const nsteps = 500

func main() {
	sim, err := simulate.New(simulate.Config{
		NBodies:   200,
		Mass:      1,
		Mzero:     1e6,
		G:         1,
		Timestep:  1e-3,
		Softening: 0.01,
		Spin:      0.2,
		TreeRatio: 0.5,
		Seed:      1,
	})
	if err != nil {
		log.Fatalf("nbodydemo: invalid configuration: %v", err)
	}

	tracker := diagnostics.NewTracker(1)
	tracker.Record(0, sim)
	for step := 1; step <= nsteps; step++ {
		sim.Step()
		tracker.Record(step, sim)
	}

	if sim.HasDiverged() {
		log.Printf("nbodydemo: simulation diverged within %d steps", nsteps)
	}
	log.Printf("nbodydemo: ran %d bodies for %d steps, momentum drift %.3e", sim.BodyCount(), nsteps, tracker.MomentumDrift())
}
