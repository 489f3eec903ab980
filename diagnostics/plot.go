package diagnostics

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WritePNG renders the tracked momentum and energy history to an offline
// PNG chart at path, sized width x height (vg.Length values, which carry
// their own unit, e.g. 4*vg.Inch). This is the diagnostic
// counterpart to a live renderer: it runs after a batch of steps, not
// during one, and has no bearing on simulation state.
func (t *Tracker) WritePNG(path string, width, height vg.Length) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.Title.Text = "conservation drift"
	p.X.Label.Text = "step"
	p.Y.Label.Text = "magnitude"

	momentum := make(plotter.XYs, len(t.samples))
	energy := make(plotter.XYs, len(t.samples))
	for i, s := range t.samples {
		momentum[i].X = float64(s.Step)
		momentum[i].Y = s.Momentum
		energy[i].X = float64(s.Step)
		energy[i].Y = s.Energy
	}

	momentumLine, err := plotter.NewLine(momentum)
	if err != nil {
		return err
	}

	energyLine, err := plotter.NewLine(energy)
	if err != nil {
		return err
	}

	p.Add(momentumLine, energyLine)
	p.Legend.Add("momentum", momentumLine)
	p.Legend.Add("energy", energyLine)

	return p.Save(width, height, path)
}
