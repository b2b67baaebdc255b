package game

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// Song is loaded once per session and never modified by the judgment engine.
type Song struct {
	Path      string // Where the song definition was read from
	AudioFile string
	Length    float64 // In seconds
	BPM       float64
	Credits   string
	HighScore int
	Notes     []Note   // Sorted by beat
	Hazards   []Hazard // Sorted by beat

	// Entries skipped while loading
	Rejected []Rejection
}

func (s *Song) BeatsPerSecond() float64 {
	return s.BPM / 60.0
}

func (s *Song) HoldCount() int {
	n := 0
	for _, note := range s.Notes {
		if note.IsHold() {
			n++
		}
	}
	return n
}

// Validate reports every entry that was skipped at load time.
func (s *Song) Validate() error {
	if len(s.Rejected) == 0 {
		return nil
	}
	return &ValidationError{Path: s.Path, Rejections: s.Rejected}
}

// Hash identifies the playable content of a song, independent of metadata
// such as the stored high score.
func (s *Song) Hash() string {
	h := sha256.New()
	buf := make([]byte, 8)
	put := func(f float64) {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(f))
		h.Write(buf)
	}
	put(s.BPM)
	for _, n := range s.Notes {
		put(n.Beat)
		put(float64(n.Lane) + n.SubType)
		put(n.HoldLength)
	}
	for _, a := range s.Hazards {
		put(a.Beat)
		put(a.Duration)
		put(float64(a.Lane))
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

type RejectionKind string

const (
	RejectedNote   RejectionKind = "note"
	RejectedHazard RejectionKind = "hazard"
)

// Rejection is a single song entry that could not be used.
type Rejection struct {
	Kind   RejectionKind
	Index  int
	Reason string
}

func (r Rejection) String() string {
	return fmt.Sprintf("%s %d: %s", r.Kind, r.Index, r.Reason)
}

// ValidationError collects all rejected entries of a song.
type ValidationError struct {
	Path       string
	Rejections []Rejection
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Rejections))
	for i, r := range e.Rejections {
		parts[i] = r.String()
	}
	return fmt.Sprintf("%s: %d invalid entries (%s)", e.Path, len(e.Rejections), strings.Join(parts, "; "))
}
