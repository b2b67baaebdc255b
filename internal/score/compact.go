package score

import (
	"sort"

	"git.lost.host/meutraa/beatofspace/internal/game"
	"github.com/vmihailenco/msgpack/v5"
)

// InputsCompact holds every event of a single lane, including the times
// the ship moved into it.
type InputsCompact struct {
	Lane     game.LaneID `msgpack:"l"`
	Presses  []float64   `msgpack:"p"`
	Releases []float64   `msgpack:"r"`
	Ship     []float64   `msgpack:"s,omitempty"`
}

func compactInputs(inputs []game.Input) []InputsCompact {
	ins := make([]InputsCompact, 0, len(game.Lanes))
	index := map[game.LaneID]int{}
	for _, i := range inputs {
		if !i.Lane.Valid() {
			continue
		}
		idx, ok := index[i.Lane]
		if !ok {
			idx = len(ins)
			index[i.Lane] = idx
			ins = append(ins, InputsCompact{Lane: i.Lane})
		}
		switch {
		case i.Ship:
			ins[idx].Ship = append(ins[idx].Ship, i.Time)
		case i.Released:
			ins[idx].Releases = append(ins[idx].Releases, i.Time)
		default:
			ins[idx].Presses = append(ins[idx].Presses, i.Time)
		}
	}
	return ins
}

func uncompactInputs(inputs []InputsCompact) []game.Input {
	ins := []game.Input{}
	for _, i := range inputs {
		for _, t := range i.Presses {
			ins = append(ins, game.Input{Lane: i.Lane, Time: t})
		}
		for _, t := range i.Releases {
			ins = append(ins, game.Input{Lane: i.Lane, Time: t, Released: true})
		}
		for _, t := range i.Ship {
			ins = append(ins, game.Input{Lane: i.Lane, Time: t, Ship: true})
		}
	}
	// A press and release at the same time keep that order
	sort.SliceStable(ins, func(a, b int) bool {
		if ins[a].Time != ins[b].Time {
			return ins[a].Time < ins[b].Time
		}
		return order(ins[a]) < order(ins[b])
	})
	return ins
}

// Events at the same time replay ship moves first, then presses, then
// releases.
func order(i game.Input) int {
	switch {
	case i.Ship:
		return 0
	case i.Released:
		return 2
	}
	return 1
}

func encodeInputs(inputs []game.Input) ([]byte, error) {
	return msgpack.Marshal(compactInputs(inputs))
}

func decodeInputs(data []byte) ([]game.Input, error) {
	var ins []InputsCompact
	if err := msgpack.Unmarshal(data, &ins); nil != err {
		return nil, err
	}
	return uncompactInputs(ins), nil
}
