// Package testdata holds a small song used by benchmarks and tests.
package testdata

import (
	"git.lost.host/meutraa/beatofspace/internal/game"
	"git.lost.host/meutraa/beatofspace/internal/parser"
)

func GetSong() (*game.Song, error) {
	p := &parser.DefaultParser{}
	return p.ParseBytes([]byte(data), "json")
}

// 120 bpm, 32 seconds. Every lane gets taps, two holds and a pair of
// attacks the autopilot has to dodge.
const data = `{
	"song_filepath": "demo.ogg",
	"song_length": 32,
	"bpm": 120,
	"credits": "Test pattern",
	"high_score": 0,
	"notes": [
		[4, 1, 0], [5, 2, 0], [6, 3, 0], [7, 4, 0],
		[8, 1, 0], [8.5, 2, 0], [9, 3, 0], [9.5, 4, 0],
		[10, 1, 2], [12, 3, 0], [13, 2, 0], [14, 4, 1.5],
		[16, 1, 0], [16, 2, 0], [17, 3, 0], [17.25, 3, 0],
		[17.5, 3, 0], [18, 4, 0], [20, 1, 0], [21, 2, 0],
		[22, 3.5, 0], [23, 4, 0], [24, 1, 4], [26, 2, 0],
		[28, 3, 0], [29, 4, 0], [30, 1, 0], [31, 2, 0],
		[32, 3, 0], [33, 4, 0], [34, 1, 0], [35, 2, 0],
		[36, 3, 0], [40, 4, 0], [44, 1, 0], [48, 2, 0],
		[52, 3, 0], [56, 4, 0], [60, 1, 0]
	],
	"attacks": [
		[12, 6, 1],
		[20, 4, 3],
		[30, 8, 2],
		[40, 2, 4],
		[44, 6, 1]
	]
}`
