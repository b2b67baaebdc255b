// Package settings keeps the user's volume and key bindings between runs.
package settings

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"git.lost.host/meutraa/beatofspace/internal/game"
	"git.lost.host/meutraa/beatofspace/internal/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

var ErrInvalidBinding = errors.New("invalid key binding")

const (
	AppName = "beatofspace"

	settingsObject   = "settings"
	settingsProperty = "user"
)

// Action is what a bound key does.
type Action struct {
	Lane     game.LaneID
	ShipUp   bool
	ShipDown bool
}

// Keys binds terminal runes. Each value is a single character.
type Keys struct {
	Right    string `yaml:"right"`
	Left     string `yaml:"left"`
	Up       string `yaml:"up"`
	Down     string `yaml:"down"`
	ShipUp   string `yaml:"shipUp"`
	ShipDown string `yaml:"shipDown"`
}

// Codes binds Linux input event key codes.
type Codes struct {
	Right    uint16 `yaml:"right"`
	Left     uint16 `yaml:"left"`
	Up       uint16 `yaml:"up"`
	Down     uint16 `yaml:"down"`
	ShipUp   uint16 `yaml:"shipUp"`
	ShipDown uint16 `yaml:"shipDown"`
}

type Settings struct {
	Volume float64 `yaml:"volume"` // 0 to 1
	Keys   Keys    `yaml:"keys"`
	Codes  Codes   `yaml:"codes"`
}

func Default() *Settings {
	return &Settings{
		Volume: 0.8,
		Keys: Keys{
			Left:     "h",
			Down:     "j",
			Up:       "k",
			Right:    "l",
			ShipUp:   "w",
			ShipDown: "s",
		},
		Codes: Codes{
			Up:       103, // KEY_UP
			Left:     105, // KEY_LEFT
			Right:    106, // KEY_RIGHT
			Down:     108, // KEY_DOWN
			ShipUp:   17,  // KEY_W
			ShipDown: 31,  // KEY_S
		},
	}
}

func (k Keys) actions() map[string]Action {
	return map[string]Action{
		k.Right:    {Lane: game.LaneRight},
		k.Left:     {Lane: game.LaneLeft},
		k.Up:       {Lane: game.LaneUp},
		k.Down:     {Lane: game.LaneDown},
		k.ShipUp:   {ShipUp: true},
		k.ShipDown: {ShipDown: true},
	}
}

// Runes maps every bound rune to its action.
func (k Keys) Runes() map[rune]Action {
	m := map[rune]Action{}
	for key, a := range k.actions() {
		r, _ := utf8.DecodeRuneInString(key)
		m[r] = a
	}
	return m
}

func (c Codes) Map() map[uint16]Action {
	return map[uint16]Action{
		c.Right:    {Lane: game.LaneRight},
		c.Left:     {Lane: game.LaneLeft},
		c.Up:       {Lane: game.LaneUp},
		c.Down:     {Lane: game.LaneDown},
		c.ShipUp:   {ShipUp: true},
		c.ShipDown: {ShipDown: true},
	}
}

// Validate checks that every binding is set and none are shared.
func (s *Settings) Validate() error {
	keys := []string{s.Keys.Right, s.Keys.Left, s.Keys.Up, s.Keys.Down, s.Keys.ShipUp, s.Keys.ShipDown}
	for _, k := range keys {
		if utf8.RuneCountInString(k) != 1 {
			return fmt.Errorf("%w: key %q must be a single character", ErrInvalidBinding, k)
		}
	}
	if len(s.Keys.actions()) != len(keys) {
		return fmt.Errorf("%w: a key is bound twice", ErrInvalidBinding)
	}

	codes := []uint16{s.Codes.Right, s.Codes.Left, s.Codes.Up, s.Codes.Down, s.Codes.ShipUp, s.Codes.ShipDown}
	for _, c := range codes {
		if c == 0 {
			return fmt.Errorf("%w: key code not set", ErrInvalidBinding)
		}
	}
	if len(s.Codes.Map()) != len(codes) {
		return fmt.Errorf("%w: a key code is bound twice", ErrInvalidBinding)
	}
	return nil
}

// Manager loads and saves Settings. With a nil gdata manager nothing is
// persisted and the defaults are used.
type Manager struct {
	data     *gdata.Manager
	log      *log.Logger
	settings *Settings
}

// Open returns a manager backed by the user's data directory, falling back
// to an in-memory manager when storage is unavailable.
func Open(logger *log.Logger) *Manager {
	data, err := gdata.Open(gdata.Config{AppName: AppName})
	if nil != err {
		logger.Warnf("settings storage unavailable, using defaults: %v", err)
		data = nil
	}
	return NewManager(data, logger)
}

func NewManager(data *gdata.Manager, logger *log.Logger) *Manager {
	m := &Manager{data: data, log: logger, settings: Default()}
	if err := m.Load(); nil != err {
		logger.Warnf("unable to load settings, using defaults: %v", err)
	}
	return m
}

func (m *Manager) Load() error {
	m.settings = Default()
	if nil == m.data || !m.data.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.data.LoadObjectProp(settingsObject, settingsProperty)
	if nil != err {
		return fmt.Errorf("unable to read settings: %w", err)
	}

	loaded := Default()
	if err := yaml.Unmarshal(data, loaded); nil != err {
		return fmt.Errorf("unable to decode settings: %w", err)
	}
	if err := loaded.Validate(); nil != err {
		return err
	}
	loaded.Volume = clampVolume(loaded.Volume)

	m.settings = loaded
	m.log.Debugf("settings loaded")
	return nil
}

func (m *Manager) Save() error {
	if err := m.settings.Validate(); nil != err {
		return err
	}
	if nil == m.data {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if nil != err {
		return fmt.Errorf("unable to encode settings: %w", err)
	}
	if err := m.data.SaveObjectProp(settingsObject, settingsProperty, data); nil != err {
		return fmt.Errorf("unable to write settings: %w", err)
	}
	m.log.Debugf("settings saved")
	return nil
}

func (m *Manager) Settings() *Settings {
	return m.settings
}

func (m *Manager) SetVolume(volume float64) {
	m.settings.Volume = clampVolume(volume)
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
