// Package config parses the command line. Settings that persist between runs
// live in the settings package instead.
package config

import (
	"fmt"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "0.3.0"

type Command string

const (
	CommandPlay     Command = "play"
	CommandWatch    Command = "watch"
	CommandValidate Command = "validate"
	CommandScores   Command = "scores"
)

type Config struct {
	Command Command
	Song    string

	Rate           float64
	Offset         time.Duration
	Delay          time.Duration
	FramePeriod    time.Duration
	ColumnsPerBeat uint
	Device         string
	HoldGrace      time.Duration
	Database       string
	LogFile        string
	LogLevel       string
	Strict         bool
	Mute           bool
}

// Parse reads args, without the program name, into a Config.
func Parse(args []string) (*Config, error) {
	c := &Config{}

	app := kingpin.New("beatofspace", "Rhythm game played against a beat clock, with hazards to dodge")
	app.Version(Version)

	app.Flag("rate", "Playback rate").Default("1.0").Short('r').Float64Var(&c.Rate)
	app.Flag("offset", "Global offset").Default("0ms").Short('o').DurationVar(&c.Offset)
	app.Flag("delay", "Start delay").Default("1.5s").Short('d').DurationVar(&c.Delay)
	app.Flag("frame-period", "Render frame period").Default("8ms").Short('p').DurationVar(&c.FramePeriod)
	app.Flag("columns-per-beat", "Console columns scrolled per beat").Default("8").Short('c').UintVar(&c.ColumnsPerBeat)
	app.Flag("device", "Linux input device to read key presses and releases from").Short('D').StringVar(&c.Device)
	app.Flag("hold-grace", "Time after a terminal key repeat that a lane still counts as held").Default("120ms").DurationVar(&c.HoldGrace)
	app.Flag("db", "Score database").Default("scores.db").StringVar(&c.Database)
	app.Flag("log-file", "Log file, logs are discarded while playing without one").StringVar(&c.LogFile)
	app.Flag("log-level", "One of debug, info, warn, error, none").Default("info").StringVar(&c.LogLevel)
	app.Flag("strict", "Refuse songs with invalid notes or attacks").BoolVar(&c.Strict)
	app.Flag("mute", "Play without audio against the wall clock").Short('m').BoolVar(&c.Mute)

	play := app.Command("play", "Play a song").Default()
	play.Arg("song", "Song file").Required().ExistingFileVar(&c.Song)
	watch := app.Command("watch", "Let the autopilot play a song")
	watch.Arg("song", "Song file").Required().ExistingFileVar(&c.Song)
	validate := app.Command("validate", "Report problems with a song file")
	validate.Arg("song", "Song file").Required().ExistingFileVar(&c.Song)
	scores := app.Command("scores", "List previous runs of a song")
	scores.Arg("song", "Song file").Required().ExistingFileVar(&c.Song)

	command, err := app.Parse(args)
	if nil != err {
		return nil, err
	}
	c.Command = Command(command)

	if c.Rate <= 0 {
		return nil, fmt.Errorf("rate must be positive, got %v", c.Rate)
	}
	if c.FramePeriod <= 0 {
		return nil, fmt.Errorf("frame period must be positive, got %v", c.FramePeriod)
	}
	if c.ColumnsPerBeat == 0 {
		return nil, fmt.Errorf("columns per beat must be positive")
	}

	return c, nil
}
