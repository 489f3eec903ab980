package diagnostics

import (
	"math"
	"testing"

	"github.com/robmdunn/nbody/simulate"
)

func twoBodyConfig() simulate.Config {
	return simulate.Config{
		NBodies:   2,
		Mass:      1,
		Mzero:     1e6,
		G:         1,
		Timestep:  1e-4,
		Softening: 0.01,
		TreeRatio: 0,
		Seed:      1,
	}
}

func TestTrackerRecordsSamplesInOrder(t *testing.T) {
	s, err := simulate.New(twoBodyConfig())
	if err != nil {
		t.Fatal(err)
	}
	tr := NewTracker(1)
	for i := 0; i < 5; i++ {
		s.Step()
		tr.Record(i, s)
	}
	samples := tr.Samples()
	if len(samples) != 5 {
		t.Fatalf("len(Samples()) = %d, want 5", len(samples))
	}
	for i, sm := range samples {
		if sm.Step != i {
			t.Errorf("sample %d has Step = %d, want %d", i, sm.Step, i)
		}
		if math.IsNaN(sm.Momentum) || math.IsNaN(sm.Energy) {
			t.Errorf("sample %d has NaN quantity: %+v", i, sm)
		}
	}
}

func TestMomentumDriftSmallForShortRun(t *testing.T) {
	s, err := simulate.New(twoBodyConfig())
	if err != nil {
		t.Fatal(err)
	}
	tr := NewTracker(1)
	tr.Record(0, s)
	for i := 1; i <= 50; i++ {
		s.Step()
		tr.Record(i, s)
	}
	if tr.MomentumDrift() > 1e-3 {
		t.Errorf("momentum drift %v too large for 50 steps", tr.MomentumDrift())
	}
}

func TestMomentumDriftZeroWithoutSamples(t *testing.T) {
	tr := NewTracker(1)
	if tr.MomentumDrift() != 0 {
		t.Errorf("MomentumDrift() = %v, want 0 with no samples", tr.MomentumDrift())
	}
}
