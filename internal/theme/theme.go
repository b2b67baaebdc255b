package theme

import (
	"image/color"

	"git.lost.host/meutraa/beatofspace/internal/game"
)

type Theme interface {
	Note(n game.Note) (rune, color.RGBA)
	Hold(n game.Note) (rune, color.RGBA)
	Trail() (rune, color.RGBA)
	Hazard(intensity float64, active bool) (rune, color.RGBA)
	Ship(invincible bool) (rune, color.RGBA)
	HitBar() (rune, color.RGBA)
	Feedback(k game.Kind) (string, color.RGBA)
}
