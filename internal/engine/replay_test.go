package engine

import (
	"testing"

	"git.lost.host/meutraa/beatofspace/internal/game"
)

func TestRecord(t *testing.T) {
	previous := game.SetOf(game.LaneUp, game.LaneDown)
	f := game.Frame{Position: 3, Pressed: game.SetOf(game.LaneLeft), Held: game.SetOf(game.LaneUp, game.LaneLeft)}

	inputs := Record(previous, f)
	expected := []game.Input{
		{Lane: game.LaneLeft, Time: 3},
		{Lane: game.LaneDown, Time: 3, Released: true},
	}
	if len(inputs) != len(expected) {
		t.Fatalf("got %v", inputs)
	}
	for i := range expected {
		if inputs[i] != expected[i] {
			t.Errorf("input %d = %+v, want %+v", i, inputs[i], expected[i])
		}
	}
}

func TestReplay(t *testing.T) {
	song := &game.Song{
		BPM:    120,
		Length: 5,
		Notes: []game.Note{
			{Beat: 2, Lane: game.LaneUp},
			{Beat: 4, Lane: game.LaneDown, HoldLength: 2},
			{Beat: 8, Lane: game.LaneLeft},
		},
	}
	inputs := []game.Input{
		{Lane: game.LaneUp, Time: 1.001},
		{Lane: game.LaneDown, Time: 2.001},
		{Lane: game.LaneDown, Time: 3.2, Released: true},
	}

	s := Replay(song, inputs, 0.01)
	if s.Outcome != OutcomeCompleted {
		t.Fatalf("outcome %v", s.Outcome)
	}
	c := s.Score.Counts
	if c.Perfect != 1 || c.HoldsCompleted != 1 || c.Missed != 1 || c.Incorrect != 0 {
		t.Errorf("counts %+v", c)
	}

	again := Replay(song, inputs, 0.01)
	if again.Score != s.Score {
		t.Error("replay is not deterministic")
	}
}

func TestReplayFollowsShip(t *testing.T) {
	song := &game.Song{
		BPM:     120,
		Length:  3,
		Hazards: []game.Hazard{{Beat: 2, Duration: 2, Lane: game.LaneRight}},
	}

	live := NewState(song)
	rec := NewRecorder(live)
	for i := 0; ; i++ {
		f := game.Frame{Position: float64(i) / 60, Delta: 1.0 / 60}
		if i == 10 {
			f.ShipUp = true
		}
		outcome := Update(live, f)
		rec.Frame(f, live)
		if outcome != OutcomeContinue {
			break
		}
	}
	if live.Collisions != 0 {
		t.Fatalf("live run collided %d times", live.Collisions)
	}

	replayed := Replay(song, rec.Inputs, 1.0/240)
	if replayed.Score != live.Score || replayed.Collisions != live.Collisions {
		t.Errorf("live score %d collisions %d, replay score %d collisions %d",
			live.Score.Score, live.Collisions, replayed.Score.Score, replayed.Collisions)
	}
	if replayed.Ship.Lane != game.LaneUp {
		t.Errorf("replayed ship in %v", replayed.Ship.Lane)
	}
}

func TestRecorderShipEvents(t *testing.T) {
	s := NewState(&game.Song{BPM: 60, Length: 10})
	rec := NewRecorder(s)

	f := game.Frame{Position: 1, ShipDown: true}
	Update(s, f)
	rec.Frame(f, s)

	f = game.Frame{Position: 2, ShipTarget: game.LaneLeft}
	Update(s, f)
	rec.Frame(f, s)

	expected := []game.Input{
		{Lane: game.LaneDown, Time: 1, Ship: true},
		{Lane: game.LaneLeft, Time: 2, Ship: true},
	}
	if len(rec.Inputs) != len(expected) {
		t.Fatalf("got %v", rec.Inputs)
	}
	for i := range expected {
		if rec.Inputs[i] != expected[i] {
			t.Errorf("input %d = %+v, want %+v", i, rec.Inputs[i], expected[i])
		}
	}
}

// The countdown runs for three real seconds while the song ramps to a stop,
// so only about one and a half seconds of song play after health runs out.
func TestReplayGameOverSlowsSong(t *testing.T) {
	song := &game.Song{
		BPM:     120,
		Length:  20,
		Hazards: []game.Hazard{{Beat: 15, Duration: 4, Lane: game.LaneRight}},
	}
	for beat := 1; beat <= 11; beat++ {
		song.Notes = append(song.Notes, game.Note{Beat: float64(beat), Lane: game.LaneUp})
	}

	s := Replay(song, nil, 1.0/240)
	if s.Outcome != OutcomeFailed {
		t.Fatalf("outcome %v", s.Outcome)
	}
	if s.Collisions != 0 {
		t.Errorf("reached the hazard at beat %v", s.Beat)
	}
	if s.Beat >= 15 {
		t.Errorf("song ran on to beat %v", s.Beat)
	}
}
