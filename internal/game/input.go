package game

// Input is a single recorded event, in seconds of audio position. A ship
// event records the ship arriving in Lane.
type Input struct {
	Lane     LaneID
	Time     float64
	Released bool
	Ship     bool
}

// Frame is everything the engine consumes for one update.
type Frame struct {
	Position float64 // Audio position in seconds
	Delta    float64 // Seconds since the previous frame

	Pressed LaneSet // Edge triggered
	Held    LaneSet // Level triggered

	ShipUp, ShipDown bool
	ShipTarget       LaneID // Overrides ShipUp and ShipDown when valid

	Quit bool
}
