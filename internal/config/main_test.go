package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func songFile(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "song.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); nil != err {
		t.Fatal(err)
	}
	return path
}

func TestParseDefaults(t *testing.T) {
	song := songFile(t)
	c, err := Parse([]string{"play", song})
	if nil != err {
		t.Fatal(err)
	}

	if c.Command != CommandPlay || c.Song != song {
		t.Errorf("command %v song %v", c.Command, c.Song)
	}
	if c.Rate != 1 || c.Delay != 1500*time.Millisecond || c.Database != "scores.db" {
		t.Errorf("unexpected defaults %+v", c)
	}
	if c.Strict || c.Mute || c.Device != "" {
		t.Errorf("unexpected defaults %+v", c)
	}
}

func TestParseCommands(t *testing.T) {
	song := songFile(t)
	commands := map[string]Command{
		"play":     CommandPlay,
		"watch":    CommandWatch,
		"validate": CommandValidate,
		"scores":   CommandScores,
	}

	for arg, expected := range commands {
		c, err := Parse([]string{arg, song})
		if nil != err || c.Command != expected {
			t.Log(arg, c, err)
			t.Fail()
		}
	}
}

func TestParseFlags(t *testing.T) {
	song := songFile(t)
	c, err := Parse([]string{
		"watch", song,
		"--rate", "1.5",
		"--offset=-20ms",
		"--hold-grace", "200ms",
		"--strict",
		"--mute",
		"--log-level", "debug",
	})
	if nil != err {
		t.Fatal(err)
	}

	if c.Rate != 1.5 || c.Offset != -20*time.Millisecond || c.HoldGrace != 200*time.Millisecond {
		t.Errorf("unexpected flags %+v", c)
	}
	if !c.Strict || !c.Mute || c.LogLevel != "debug" {
		t.Errorf("unexpected flags %+v", c)
	}
}

func TestParseRejects(t *testing.T) {
	song := songFile(t)
	args := [][]string{
		{"play"},
		{"play", filepath.Join(t.TempDir(), "missing.json")},
		{"play", song, "--rate", "0"},
		{"play", song, "--columns-per-beat", "0"},
		{"dance", song},
	}

	for _, a := range args {
		if _, err := Parse(a); nil == err {
			t.Log(a)
			t.Fail()
		}
	}
}
