package game

type Note struct {
	Beat       float64 // The beat the note should be hit on
	Lane       LaneID
	SubType    float64 // Fractional part of the lane value, reserved
	HoldLength float64 // In beats, 0 for a tap
}

// IsHold is true for any note with a hold length. A zero length note is
// always a tap.
func (n Note) IsHold() bool {
	return n.HoldLength != 0
}

// End is the beat at which a hold is complete.
func (n Note) End() float64 {
	return n.Beat + n.HoldLength
}

type Hazard struct {
	Beat     float64 // First damaging beat
	Duration float64 // In beats
	Lane     LaneID
}

// WarningBeats is how long before a hazard becomes active that it is shown
// and planned around.
const WarningBeats = 5.0

func (h Hazard) End() float64 {
	return h.Beat + h.Duration
}

// Expired is true once the hazard can be dropped from the active set.
func (h Hazard) Expired(beat float64) bool {
	return h.End() <= beat
}

// Warning is true in the window [Beat-5, Beat].
func (h Hazard) Warning(beat float64) bool {
	return beat >= h.Beat-WarningBeats && beat <= h.Beat
}

// Active is true from Beat until the hazard expires.
func (h Hazard) Active(beat float64) bool {
	return beat >= h.Beat && !h.Expired(beat)
}

// Intensity is the cubic warning cue, 0 outside the warning window.
func (h Hazard) Intensity(beat float64) float64 {
	if !h.Warning(beat) {
		return 0
	}
	d := WarningBeats - (h.Beat - beat)
	return d * d * d
}
