package render

import (
	"image/color"

	"github.com/ahoikapptn/qrkit/pkg/style"
)

// defaultSizePx is used when options carry no usable size.
const defaultSizePx = 256

// Options carries the symbol parameters the renderer needs. Callers
// normally pass values from a normalized style.Config.
type Options struct {
	SizePx     int
	Level      style.Level
	Foreground color.Color
	Background color.Color
}

func (o Options) withDefaults() Options {
	if o.SizePx <= 0 {
		o.SizePx = defaultSizePx
	}
	if o.Level == "" {
		o.Level = style.LevelM
	}
	if o.Foreground == nil {
		o.Foreground = color.Black
	}
	if o.Background == nil {
		o.Background = color.White
	}
	return o
}

// Renderer produces base QR symbols for a payload string. Symbol
// generation must be deterministic: identical inputs yield an identical
// module pattern.
type Renderer interface {
	// Render returns the symbol as a pixel surface sized per Options.
	Render(payload string, opts Options) (*Symbol, error)
	// RenderVector returns the symbol as a vector document.
	RenderVector(payload string, opts Options) (*VectorDocument, error)
}
