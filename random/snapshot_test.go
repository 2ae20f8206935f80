// SPDX-License-Identifier: GPL-2.0-or-later

package random

import (
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	g := NewSeeded(220824)
	g.Value()
	g.Value()

	out, err := g.MarshalState()
	if err != nil {
		t.Fatalf("MarshalState err: %v", err)
	}
	saved := g.State

	a, err := g.RangeInt(0, 100)
	if err != nil {
		t.Fatalf("RangeInt err: %v", err)
	}

	if err := g.UnmarshalState(out); err != nil {
		t.Fatalf("UnmarshalState err: %v", err)
	}
	if g.State != saved {
		t.Fatalf("restored state %v want %v", g.State, saved)
	}

	b, err := g.RangeInt(0, 100)
	if err != nil {
		t.Fatalf("RangeInt err: %v", err)
	}
	if a != b {
		t.Errorf("redraw after restore = %d want %d", b, a)
	}
}

func TestSnapshotIntoFreshGenerator(t *testing.T) {
	a := NewSeeded(-77)
	a.nextUint32()
	out, err := a.MarshalState()
	if err != nil {
		t.Fatalf("MarshalState err: %v", err)
	}

	b := New()
	if err := b.UnmarshalState(out); err != nil {
		t.Fatalf("UnmarshalState err: %v", err)
	}
	for i := 0; i < 20; i++ {
		if av, bv := a.nextUint32(), b.nextUint32(); av != bv {
			t.Fatalf("sequences diverge at draw %d: %d != %d", i, av, bv)
		}
	}
}

func TestUnmarshalStateGarbage(t *testing.T) {
	g := NewSeeded(1)
	saved := g.State
	if err := g.UnmarshalState([]byte{0xff, 0xff, 0xff}); err == nil {
		t.Fatalf("UnmarshalState accepted garbage input")
	}
	if g.State != saved {
		t.Errorf("failed UnmarshalState changed the state")
	}
}
