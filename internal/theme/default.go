package theme

import (
	"image/color"
	"math"

	"git.lost.host/meutraa/beatofspace/internal/game"
)

type DefaultTheme struct {
}

var (
	white = color.RGBA{255, 255, 255, 255}
	grey  = color.RGBA{106, 106, 106, 255}
	red   = color.RGBA{236, 30, 0, 255}
	cyan  = color.RGBA{0, 200, 236, 255}

	noteSyms = map[game.LaneID]rune{
		game.LaneRight: '▶',
		game.LaneLeft:  '◀',
		game.LaneUp:    '▲',
		game.LaneDown:  '▼',
	}

	// Keyed by the beat subdivision the note falls on
	noteColors = map[int]color.RGBA{
		1:  {236, 30, 0, 255},    // 1/4 red
		2:  {0, 118, 236, 255},   // 1/8 blue
		3:  {106, 0, 236, 255},   // 1/12 purple
		4:  {236, 195, 0, 255},   // 1/16 yellow
		6:  {236, 0, 106, 255},   // 1/24 pink
		8:  {236, 128, 0, 255},   // 1/32 orange
		12: {173, 236, 236, 255}, // 1/48 light blue
		16: {0, 236, 128, 255},   // 1/64 green
		-1: {255, 255, 255, 255}, // other white
	}

	feedbackText = map[game.Kind]string{
		game.KindPerfect:   "PERFECT",
		game.KindGood:      "GOOD",
		game.KindOk:        "OK",
		game.KindIncorrect: "WRONG",
		game.KindMiss:      "MISS",
	}
)

// Denom finds the smallest subdivision of a beat that the beat lands on, or
// -1 when it is finer than 1/16 of a beat.
func Denom(beat float64) int {
	_, frac := math.Modf(beat)
	for _, d := range [...]int{1, 2, 3, 4, 6, 8, 12, 16} {
		x := frac * float64(d)
		if math.Abs(x-math.Round(x)) < 1e-3 {
			return d
		}
	}
	return -1
}

func noteColor(beat float64) color.RGBA {
	col, ok := noteColors[Denom(beat)]
	if !ok {
		return noteColors[-1]
	}
	return col
}

func (t *DefaultTheme) Note(n game.Note) (rune, color.RGBA) {
	return noteSyms[n.Lane], noteColor(n.Beat)
}

func (t *DefaultTheme) Hold(n game.Note) (rune, color.RGBA) {
	return '═', noteColor(n.Beat)
}

func (t *DefaultTheme) Trail() (rune, color.RGBA) {
	return '─', grey
}

// Hazard fades from grey to red as the warning builds.
func (t *DefaultTheme) Hazard(intensity float64, active bool) (rune, color.RGBA) {
	if active {
		return '━', red
	}
	f := math.Min(1, intensity/(game.WarningBeats*game.WarningBeats*game.WarningBeats))
	c := color.RGBA{
		R: uint8(float64(grey.R) + f*float64(red.R-grey.R)),
		G: uint8(float64(grey.G) * (1 - f)),
		B: uint8(float64(grey.B) * (1 - f)),
		A: 255,
	}
	return '·', c
}

func (t *DefaultTheme) Ship(invincible bool) (rune, color.RGBA) {
	if invincible {
		return '►', grey
	}
	return '►', cyan
}

func (t *DefaultTheme) HitBar() (rune, color.RGBA) {
	return '│', white
}

func (t *DefaultTheme) Feedback(k game.Kind) (string, color.RGBA) {
	for _, j := range game.Judgements {
		if j.Kind == k {
			return feedbackText[k], j.Color
		}
	}
	return feedbackText[k], red
}
