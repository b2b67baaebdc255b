package input

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"syscall"
	"time"

	"git.lost.host/meutraa/beatofspace/internal/log"
	"git.lost.host/meutraa/beatofspace/internal/settings"
)

// From linux/input-event-codes.h
const (
	evKey  = 0x01
	keyEsc = 1
)

type keyEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// DeviceSource reads a Linux event device, which reports true presses and
// releases. The user needs read access to the device.
type DeviceSource struct {
	file   *os.File
	events chan Event
}

func OpenDevice(path string, codes map[uint16]settings.Action, logger *log.Logger) (*DeviceSource, error) {
	file, err := os.Open(path)
	if nil != err {
		return nil, fmt.Errorf("unable to open input device: %w", err)
	}
	d := &DeviceSource{file: file, events: make(chan Event, 128)}
	go func() {
		defer close(d.events)
		if err := decode(file, codes, d.events, time.Now); nil != err {
			logger.Warnf("stopped reading %v: %v", path, err)
		}
	}()
	return d, nil
}

// decode forwards key events from r until it fails. Auto repeats are
// dropped, the lane is already held.
func decode(r io.Reader, codes map[uint16]settings.Action, events chan<- Event, now func() time.Time) error {
	var ev keyEvent
	for {
		if err := binary.Read(r, binary.LittleEndian, &ev); nil != err {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if ev.Type != evKey || ev.Value > 1 {
			continue
		}
		released := ev.Value == 0

		if ev.Code == keyEsc {
			if !released {
				events <- Event{Quit: true, At: now()}
			}
			continue
		}
		action, ok := codes[ev.Code]
		if !ok {
			continue
		}
		events <- Event{Action: action, Released: released, At: now()}
	}
}

func (d *DeviceSource) Events() <-chan Event {
	return d.events
}

func (d *DeviceSource) Releases() bool {
	return true
}

func (d *DeviceSource) Close() error {
	return d.file.Close()
}
