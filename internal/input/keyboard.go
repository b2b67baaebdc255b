package input

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/beatofspace/internal/game"
	"git.lost.host/meutraa/beatofspace/internal/log"
	"git.lost.host/meutraa/beatofspace/internal/settings"
	"github.com/eiannone/keyboard"
)

var arrows = map[keyboard.Key]settings.Action{
	keyboard.KeyArrowRight: {Lane: game.LaneRight},
	keyboard.KeyArrowLeft:  {Lane: game.LaneLeft},
	keyboard.KeyArrowUp:    {Lane: game.LaneUp},
	keyboard.KeyArrowDown:  {Lane: game.LaneDown},
}

// KeyboardSource reads the terminal. Terminals only report presses, holding
// a key shows up as repeated presses.
type KeyboardSource struct {
	events chan Event
}

func OpenKeyboard(runes map[rune]settings.Action, logger *log.Logger) (*KeyboardSource, error) {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	k := &KeyboardSource{events: make(chan Event, 128)}
	go func() {
		defer close(k.events)
		for key := range keys {
			if nil != key.Err {
				logger.Warnf("keyboard: %v", key.Err)
				continue
			}
			if e, ok := translate(key, runes); ok {
				e.At = time.Now()
				k.events <- e
			}
		}
	}()
	return k, nil
}

func translate(key keyboard.KeyEvent, runes map[rune]settings.Action) (Event, bool) {
	switch key.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Event{Quit: true}, true
	}
	if a, ok := arrows[key.Key]; ok {
		return Event{Action: a}, true
	}
	if 0 == key.Rune {
		return Event{}, false
	}
	a, ok := runes[key.Rune]
	return Event{Action: a}, ok
}

func (k *KeyboardSource) Events() <-chan Event {
	return k.events
}

func (k *KeyboardSource) Releases() bool {
	return false
}

func (k *KeyboardSource) Close() error {
	return keyboard.Close()
}
