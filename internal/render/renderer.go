package render

import (
	"time"
)

type Renderer interface {
	Init() error
	Deinit() error
	Size() (columns, rows int)
	RenderLoop(period time.Duration, render func(now time.Time) bool)
	Draw(c *Canvas)
}
