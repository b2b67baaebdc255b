package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"git.lost.host/meutraa/beatofspace/internal/engine"
	"git.lost.host/meutraa/beatofspace/internal/game"
	"git.lost.host/meutraa/beatofspace/internal/health"
	"git.lost.host/meutraa/beatofspace/internal/theme"
)

const (
	laneTop    = 3 // Row of the top lane
	laneGap    = 2 // Rows between lanes, feedback is drawn in the gap
	shipColumn = 2
	hitColumn  = 6
	barWidth   = 30
)

var (
	white = color.RGBA{255, 255, 255, 255}
	grey  = color.RGBA{106, 106, 106, 255}
	red   = color.RGBA{236, 30, 0, 255}
)

// Scene lays out a session on a canvas. Lanes are rows and notes scroll
// from the right toward the hit bar.
type Scene struct {
	Theme          theme.Theme
	ColumnsPerBeat float64
	Title          string
}

func laneRow(l game.LaneID) int {
	return laneTop + l.Row()*laneGap
}

func (sc *Scene) column(beat, now float64) int {
	return hitColumn + int(math.Round((beat-now)*sc.ColumnsPerBeat))
}

func (sc *Scene) span(c *Canvas, row int, from, to, now float64, r rune, col color.RGBA) {
	start, end := sc.column(from, now), sc.column(to, now)
	if start < 0 {
		start = 0
	}
	if end >= c.Columns {
		end = c.Columns - 1
	}
	for x := start; x <= end; x++ {
		c.Set(row, x, r, col)
	}
}

// shipRow maps the eased ship offset between the lane rows.
func shipRow(position float64) int {
	top, bottom := game.Rows[0].Offset(), game.Rows[len(game.Rows)-1].Offset()
	f := (position - top) / (bottom - top)
	return laneTop + int(math.Round(f*float64((len(game.Rows)-1)*laneGap)))
}

func (sc *Scene) Draw(c *Canvas, s *engine.State) {
	c.Clear()
	now := s.Beat
	ahead := now + float64(c.Columns)/sc.ColumnsPerBeat

	c.Text(0, 0, sc.Title, white)
	if s.Song.Length > 0 {
		seconds := now / s.Song.BeatsPerSecond()
		filled := int(float64(c.Columns) * math.Min(1, seconds/s.Song.Length))
		for x := 0; x < filled; x++ {
			c.Set(1, x, '▁', grey)
		}
	}

	hit, hitColor := sc.Theme.HitBar()
	for _, l := range game.Rows {
		c.Set(laneRow(l), hitColumn, hit, hitColor)
	}

	for _, h := range s.Hazards {
		row := laneRow(h.Lane)
		if h.Active(now) {
			r, col := sc.Theme.Hazard(0, true)
			sc.span(c, row, now-float64(hitColumn)/sc.ColumnsPerBeat, h.End(), now, r, col)
			continue
		}
		if h.Beat > ahead {
			break
		}
		r, col := sc.Theme.Hazard(h.Intensity(now), false)
		sc.span(c, row, h.Beat, h.End(), now, r, col)
	}

	trail, trailColor := sc.Theme.Trail()
	for _, t := range s.Trails {
		sc.span(c, laneRow(t.Lane), t.Beat, t.End(), now, trail, trailColor)
	}

	for _, h := range s.Holds {
		r, col := sc.Theme.Hold(h)
		sc.span(c, laneRow(h.Lane), now, h.End(), now, r, col)
	}

	for _, n := range s.Notes {
		if n.Beat > ahead {
			break
		}
		row := laneRow(n.Lane)
		if n.IsHold() {
			r, col := sc.Theme.Hold(n)
			sc.span(c, row, n.Beat, n.End(), now, r, col)
		}
		r, col := sc.Theme.Note(n)
		c.Set(row, sc.column(n.Beat, now), r, col)
	}

	ship, shipColor := sc.Theme.Ship(s.Ship.Invincibility > 0)
	c.Set(shipRow(s.Ship.Position), shipColumn, ship, shipColor)

	for _, f := range s.Feedback {
		text, col := sc.Theme.Feedback(f.Kind)
		c.Text(laneRow(f.Lane)-1, hitColumn+2, fmt.Sprintf("%-9s", text), col)
	}

	sc.drawStats(c, s)
}

func (sc *Scene) drawStats(c *Canvas, s *engine.State) {
	row := laneTop + len(game.Rows)*laneGap
	counts := s.Score.Counts

	c.Text(row, 2, fmt.Sprintf("Score %8d   Combo x%.2f", s.Score.Score, s.Score.Combo), white)

	filled := s.Health.Health() * barWidth / health.Max
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	healthColor := white
	if s.Health.Armed() {
		healthColor = red
	}
	c.Text(row+1, 2, "Health "+bar, healthColor)

	c.Text(row+2, 2, fmt.Sprintf("Perfect %4d  Good %4d  Ok %4d  Wrong %4d  Miss %4d",
		counts.Perfect, counts.Good, counts.Ok, counts.Incorrect, counts.Missed), grey)
	c.Text(row+3, 2, fmt.Sprintf("Holds %d/%d  Hits taken %d",
		counts.HoldsCompleted, s.Song.HoldCount(), s.Collisions), grey)

	if s.Health.Armed() {
		c.Text(row+5, 2, fmt.Sprintf("GAME OVER %3.0f%%", 100*s.Health.Progress()), red)
	}
}
