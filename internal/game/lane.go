package game

import (
	"fmt"
	"math"
)

// LaneID identifies one of the four input channels. The numeric values match
// the lane field of the song format.
type LaneID uint8

const (
	LaneNone LaneID = iota
	LaneRight
	LaneLeft
	LaneUp
	LaneDown
)

// Lanes in song-format order.
var Lanes = [...]LaneID{LaneRight, LaneLeft, LaneUp, LaneDown}

// Rows in screen order, top to bottom. This is also the movement graph:
// moving up steps one row toward the front of the slice.
var Rows = [...]LaneID{LaneLeft, LaneUp, LaneRight, LaneDown}

// Row offsets in pixels of the reference layout, used for ship easing.
var laneOffsets = map[LaneID]float64{
	LaneLeft:  87.5,
	LaneUp:    162.5,
	LaneRight: 237.5,
	LaneDown:  312.5,
}

func (l LaneID) Valid() bool {
	return l >= LaneRight && l <= LaneDown
}

func (l LaneID) String() string {
	switch l {
	case LaneRight:
		return "Right"
	case LaneLeft:
		return "Left"
	case LaneUp:
		return "Up"
	case LaneDown:
		return "Down"
	}
	return fmt.Sprintf("Lane(%d)", uint8(l))
}

// Offset is the row offset of the lane in the reference layout.
func (l LaneID) Offset() float64 {
	return laneOffsets[l]
}

// Row is the zero based screen row, or -1 for an invalid lane.
func (l LaneID) Row() int {
	for i, r := range Rows {
		if r == l {
			return i
		}
	}
	return -1
}

// ParseLane splits a numeric lane value into its lane and sub-type.
// The floor selects the lane, the fractional part is kept as the sub-type.
func ParseLane(value float64) (LaneID, float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return LaneNone, 0, fmt.Errorf("lane value %v is not a number", value)
	}
	f := math.Floor(value)
	if f < float64(LaneRight) || f > float64(LaneDown) {
		return LaneNone, 0, fmt.Errorf("unknown lane id %v", value)
	}
	return LaneID(f), value - f, nil
}

// CanMove reports the lane reached by one step along the lane graph.
// Left cannot move up and Down cannot move down.
func CanMove(from LaneID, up bool) (bool, LaneID) {
	if up {
		switch from {
		case LaneRight:
			return true, LaneUp
		case LaneUp:
			return true, LaneLeft
		case LaneDown:
			return true, LaneRight
		}
		return false, LaneNone
	}
	switch from {
	case LaneRight:
		return true, LaneDown
	case LaneLeft:
		return true, LaneUp
	case LaneUp:
		return true, LaneRight
	}
	return false, LaneNone
}

// LaneSet is a bitmask of lanes.
type LaneSet uint8

func (s LaneSet) Has(l LaneID) bool {
	return l.Valid() && s&(1<<l) != 0
}

func (s LaneSet) With(l LaneID) LaneSet {
	if !l.Valid() {
		return s
	}
	return s | 1<<l
}

func (s LaneSet) Without(l LaneID) LaneSet {
	return s &^ (1 << l)
}

func (s LaneSet) Empty() bool {
	return s == 0
}

// SetOf builds a LaneSet from the given lanes.
func SetOf(lanes ...LaneID) LaneSet {
	var s LaneSet
	for _, l := range lanes {
		s = s.With(l)
	}
	return s
}
