package parser

import (
	"errors"

	"git.lost.host/meutraa/beatofspace/internal/game"
)

var ErrUnknownFormat = errors.New("unknown song format")

type Parser interface {
	Parse(file string) (*game.Song, error)
}
