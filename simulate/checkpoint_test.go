package simulate

import (
	"bytes"
	"testing"

	"github.com/robmdunn/nbody/checkpoint"
)

func TestCheckpointRoundTripAfter100Steps(t *testing.T) {
	s, err := New(validConfig())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		s.Step()
	}

	var buf bytes.Buffer
	if err := checkpoint.Write(&buf, s.Bodies()); err != nil {
		t.Fatal(err)
	}

	fresh, err := New(validConfig())
	if err != nil {
		t.Fatal(err)
	}
	store, err := checkpoint.Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	fresh.LoadBodies(store)

	for i := 0; i < s.BodyCount(); i++ {
		wantPos, wantVel, wantMass := s.BodyAt(i)
		gotPos, gotVel, gotMass := fresh.BodyAt(i)
		if wantPos != gotPos || wantVel != gotVel || wantMass != gotMass {
			t.Fatalf("body %d not bit-identical after checkpoint round trip", i)
		}
	}
}
