package game

import "math"

// Beat converts an audio position to a beat. The position is rounded to the
// microsecond first so a position that has not advanced always yields the
// same beat.
func Beat(position float64, bpm float64) float64 {
	return bpm / 60.0 * micro(position)
}

// Diff is how far beat is from a note at noteBeat, rounded to a millionth of
// a beat so that hits exactly on a window edge stay inside it.
func Diff(noteBeat, beat float64) float64 {
	return micro(noteBeat - beat)
}

func micro(x float64) float64 {
	return math.Round(x*1_000_000) / 1_000_000
}
