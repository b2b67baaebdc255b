package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"git.lost.host/meutraa/beatofspace/internal/engine"
	"git.lost.host/meutraa/beatofspace/internal/game"
	"git.lost.host/meutraa/beatofspace/internal/theme"
)

func TestCanvasClips(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(-1, 0, 'x', white)
	c.Set(0, 4, 'x', white)
	c.Text(1, 2, "abc", white)

	if c.Line(0) != "    " || c.Line(1) != "  ab" {
		t.Fatalf("lines %q %q", c.Line(0), c.Line(1))
	}
	if r, _ := c.At(5, 5); r != 0 {
		t.Fatal("read outside the canvas")
	}
}

func TestDraw(t *testing.T) {
	var buf bytes.Buffer
	r := &DefaultRenderer{Out: &buf}

	c := NewCanvas(3, 1)
	c.Set(0, 0, 'a', color.RGBA{1, 2, 3, 255})
	c.Set(0, 1, 'b', color.RGBA{1, 2, 3, 255})
	r.Draw(c)

	out := buf.String()
	if !strings.HasPrefix(out, "\033[1;1H\033[38;2;1;2;3mab") {
		t.Fatalf("output %q", out)
	}
	if strings.Count(out, "\033[38;2;1;2;3m") != 1 {
		t.Fatalf("colour repeated %q", out)
	}
}

func TestSceneDraw(t *testing.T) {
	song := &game.Song{
		BPM:    60,
		Length: 30,
		Notes: []game.Note{
			{Beat: 4, Lane: game.LaneUp},
			{Beat: 2, Lane: game.LaneDown, HoldLength: 2},
		},
		Hazards: []game.Hazard{
			{Beat: 0, Duration: 10, Lane: game.LaneLeft},
		},
	}
	s := engine.NewState(song)
	s.Ship.Position = game.LaneRight.Offset()

	sc := &Scene{Theme: &theme.DefaultTheme{}, ColumnsPerBeat: 4, Title: "test"}
	c := NewCanvas(60, 20)
	sc.Draw(c, s)

	if r, _ := c.At(laneRow(game.LaneUp), hitColumn+16); r != '▲' {
		t.Errorf("up note drawn as %q", r)
	}
	if r, _ := c.At(laneRow(game.LaneDown), hitColumn+8); r != '▼' {
		t.Errorf("hold head drawn as %q", r)
	}
	if r, _ := c.At(laneRow(game.LaneDown), hitColumn+12); r != '═' {
		t.Errorf("hold body drawn as %q", r)
	}
	if r, _ := c.At(laneRow(game.LaneLeft), 0); r != '━' {
		t.Errorf("active laser drawn as %q", r)
	}
	if r, _ := c.At(laneRow(game.LaneRight), shipColumn); r != '►' {
		t.Errorf("ship drawn as %q", r)
	}
	if !strings.HasPrefix(c.Line(0), "test") {
		t.Errorf("title %q", c.Line(0))
	}
	if r, _ := c.At(laneRow(game.LaneRight), hitColumn); r != '│' {
		t.Errorf("hit bar drawn as %q", r)
	}
}

func TestSceneFeedback(t *testing.T) {
	s := engine.NewState(&game.Song{BPM: 60, Length: 10})
	s.Feedback = append(s.Feedback, engine.Feedback{Kind: game.KindMiss, Lane: game.LaneUp, Remaining: 0.5})

	sc := &Scene{Theme: &theme.DefaultTheme{}, ColumnsPerBeat: 4}
	c := NewCanvas(40, 20)
	sc.Draw(c, s)

	if line := c.Line(laneRow(game.LaneUp) - 1); !strings.Contains(line, "MISS") {
		t.Errorf("feedback line %q", line)
	}
}
