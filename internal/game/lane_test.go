package game

import (
	"math"
	"testing"
)

var parseLaneTests = map[float64]LaneID{
	1:    LaneRight,
	2:    LaneLeft,
	3:    LaneUp,
	3.5:  LaneUp,
	4:    LaneDown,
	4.99: LaneDown,
}

func TestParseLane(t *testing.T) {
	for value, expected := range parseLaneTests {
		lane, sub, err := ParseLane(value)
		if nil != err {
			t.Fatalf("ParseLane(%v) returned %v", value, err)
		}
		if lane != expected {
			t.Errorf("ParseLane(%v) = %v, want %v", value, lane, expected)
		}
		if sub != value-math.Floor(value) {
			t.Errorf("ParseLane(%v) sub-type = %v", value, sub)
		}
	}
}

func TestParseLaneRejects(t *testing.T) {
	for _, value := range []float64{0, 0.5, 5, -1, math.NaN(), math.Inf(1)} {
		if _, _, err := ParseLane(value); err == nil {
			t.Errorf("ParseLane(%v) should fail", value)
		}
	}
}

func TestCanMove(t *testing.T) {
	tests := []struct {
		from  LaneID
		up    bool
		moved bool
		to    LaneID
	}{
		{LaneRight, true, true, LaneUp},
		{LaneUp, true, true, LaneLeft},
		{LaneDown, true, true, LaneRight},
		{LaneLeft, true, false, LaneNone},
		{LaneRight, false, true, LaneDown},
		{LaneLeft, false, true, LaneUp},
		{LaneUp, false, true, LaneRight},
		{LaneDown, false, false, LaneNone},
	}
	for _, test := range tests {
		moved, to := CanMove(test.from, test.up)
		if moved != test.moved || to != test.to {
			t.Errorf("CanMove(%v, %v) = %v %v, want %v %v", test.from, test.up, moved, to, test.moved, test.to)
		}
	}

	// Moving follows the screen rows
	for i, l := range Rows {
		if l.Row() != i {
			t.Errorf("%v row = %d, want %d", l, l.Row(), i)
		}
		if i > 0 {
			if _, to := CanMove(l, true); to != Rows[i-1] {
				t.Errorf("moving up from %v reached %v", l, to)
			}
		}
	}
}

func TestLaneSet(t *testing.T) {
	s := SetOf(LaneUp, LaneDown)
	if !s.Has(LaneUp) || !s.Has(LaneDown) || s.Has(LaneLeft) || s.Has(LaneRight) {
		t.Fatalf("unexpected set %08b", s)
	}
	s = s.Without(LaneUp)
	if s.Has(LaneUp) {
		t.Fatal("Up still present")
	}
	if SetOf(LaneNone).Has(LaneNone) || !SetOf().Empty() {
		t.Fatal("invalid lanes must not be stored")
	}
}

func TestBeat(t *testing.T) {
	if b := Beat(5, 120); b != 10 {
		t.Errorf("Beat(5, 120) = %v", b)
	}
	// Jitter below a microsecond does not move the beat
	if Beat(5.0000001, 120) != Beat(5.0000004, 120) {
		t.Error("sub-microsecond jitter changed the beat")
	}
	// Seeking backwards is just another position
	if b := Beat(1, 60); b != 1 {
		t.Errorf("Beat(1, 60) = %v", b)
	}
}

func TestJudge(t *testing.T) {
	tests := map[float64]Kind{
		0:     KindPerfect,
		0.03:  KindPerfect,
		-0.03: KindPerfect,
		0.05:  KindPerfect,
		0.08:  KindGood,
		-0.1:  KindGood,
		0.2:   KindOk,
		-0.25: KindOk,

		// Differences computed from beats land a hair past the edge
		10 - 10.05: KindPerfect,
		10.1 - 10:  KindGood,
	}
	for diff, expected := range tests {
		if j := Judge(diff); j.Kind != expected {
			t.Errorf("Judge(%v) = %v, want %v", diff, j.Kind, expected)
		}
	}
}

func TestDiff(t *testing.T) {
	if d := Diff(10, 10.25); d != -0.25 {
		t.Errorf("Diff(10, 10.25) = %v", d)
	}
	if d := Diff(4, Beat(2.025, 120)); d != -0.05 {
		t.Errorf("Diff(4, Beat(2.025, 120)) = %v", d)
	}
}

func TestHazardWindows(t *testing.T) {
	h := Hazard{Beat: 10, Duration: 2, Lane: LaneUp}
	if h.Warning(4.9) || !h.Warning(5) || !h.Warning(10) || h.Warning(10.1) {
		t.Error("warning window is [5, 10]")
	}
	if h.Active(9.9) || !h.Active(10) || !h.Active(11.9) || h.Active(12) {
		t.Error("active window is [10, 12)")
	}
	if !h.Expired(12) || h.Expired(11.99) {
		t.Error("expires at 12")
	}
	if h.Intensity(10) != 125 || h.Intensity(5) != 0 || h.Intensity(3) != 0 {
		t.Error("unexpected intensity")
	}
}
