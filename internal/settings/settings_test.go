package settings

import (
	"errors"
	"testing"

	"git.lost.host/meutraa/beatofspace/internal/game"
	"git.lost.host/meutraa/beatofspace/internal/log"
	"github.com/quasilyte/gdata/v2"
)

func openData(t *testing.T) *gdata.Manager {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	data, err := gdata.Open(gdata.Config{AppName: "beatofspace_test"})
	if nil != err {
		t.Fatalf("unable to open storage: %v", err)
	}
	return data
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); nil != err {
		t.Fatal(err)
	}
}

func TestRunes(t *testing.T) {
	runes := Default().Keys.Runes()
	expected := map[rune]Action{
		'h': {Lane: game.LaneLeft},
		'j': {Lane: game.LaneDown},
		'k': {Lane: game.LaneUp},
		'l': {Lane: game.LaneRight},
		'w': {ShipUp: true},
		's': {ShipDown: true},
	}

	for r, a := range expected {
		if runes[r] != a {
			t.Log(string(r), runes[r])
			t.Fail()
		}
	}
}

func TestValidateRejects(t *testing.T) {
	duplicate := Default()
	duplicate.Keys.Up = duplicate.Keys.Down

	long := Default()
	long.Keys.Left = "left"

	unset := Default()
	unset.Codes.ShipUp = 0

	sharedCode := Default()
	sharedCode.Codes.Left = sharedCode.Codes.Right

	for name, s := range map[string]*Settings{
		"duplicate":   duplicate,
		"long":        long,
		"unset":       unset,
		"shared code": sharedCode,
	} {
		if err := s.Validate(); !errors.Is(err, ErrInvalidBinding) {
			t.Errorf("%s: got %v", name, err)
		}
	}
}

func TestNilStorage(t *testing.T) {
	m := NewManager(nil, log.Discard())
	if m.Settings().Volume != Default().Volume {
		t.Errorf("volume %v", m.Settings().Volume)
	}
	if err := m.Save(); nil != err {
		t.Fatal(err)
	}
}

func TestLoadSave(t *testing.T) {
	data := openData(t)

	m := NewManager(data, log.Discard())
	m.SetVolume(0.25)
	m.Settings().Keys.Up = "i"
	if err := m.Save(); nil != err {
		t.Fatal(err)
	}

	reloaded := NewManager(data, log.Discard())
	s := reloaded.Settings()
	if s.Volume != 0.25 || s.Keys.Up != "i" || s.Keys.Down != "j" {
		t.Errorf("reloaded %+v", s)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	m := NewManager(nil, log.Discard())
	m.Settings().Keys.ShipDown = ""
	if err := m.Save(); !errors.Is(err, ErrInvalidBinding) {
		t.Fatalf("got %v", err)
	}
}

func TestSetVolumeClamps(t *testing.T) {
	m := NewManager(nil, log.Discard())
	values := map[float64]float64{
		0.5: 0.5,
		-1:  0,
		1.5: 1,
		1.0: 1,
	}

	for in, expected := range values {
		m.SetVolume(in)
		if m.Settings().Volume != expected {
			t.Log(in, m.Settings().Volume)
			t.Fail()
		}
	}
}
