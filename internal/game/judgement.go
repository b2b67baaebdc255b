package game

import "image/color"

// Kind is the classification shown for a judgment.
type Kind uint8

const (
	KindPerfect Kind = iota
	KindGood
	KindOk
	KindIncorrect
	KindMiss
)

func (k Kind) String() string {
	switch k {
	case KindPerfect:
		return "Perfect"
	case KindGood:
		return "Good"
	case KindOk:
		return "Ok"
	case KindIncorrect:
		return "Incorrect"
	case KindMiss:
		return "Miss"
	}
	return "Unknown"
}

type Judgement struct {
	Kind   Kind
	Window float64 // Largest |diff| in beats for this tier
	Points int
	Growth float64 // Combo multiplier factor
	Color  color.RGBA
}

// Outer correctness window, notes further away are not judged.
const CorrectWindow = 0.25

// Tap judgements from tightest to loosest. The last one covers the rest of
// the correctness window.
var Judgements = []Judgement{
	{Kind: KindPerfect, Window: 0.05, Points: 1000, Growth: 1.05, Color: color.RGBA{0, 255, 51, 255}},
	{Kind: KindGood, Window: 0.10, Points: 800, Growth: 1.025, Color: color.RGBA{204, 51, 128, 255}},
	{Kind: KindOk, Window: CorrectWindow, Points: 500, Growth: 1.0, Color: color.RGBA{153, 51, 51, 255}},
}

// Judge picks the tier for a signed beat difference, compared at microbeat
// precision.
func Judge(diff float64) Judgement {
	diff = micro(diff)
	if diff < 0 {
		diff = -diff
	}
	for _, j := range Judgements[:len(Judgements)-1] {
		if diff <= j.Window {
			return j
		}
	}
	return Judgements[len(Judgements)-1]
}
