package style

import (
	"errors"
	"fmt"
	"image/color"
)

// Level selects the QR error-correction redundancy tier.
type Level string

const (
	LevelL Level = "L" // ~7% recovery
	LevelM Level = "M" // ~15% recovery, the default
	LevelQ Level = "Q" // ~25% recovery
	LevelH Level = "H" // ~30% recovery
)

// CornerStyle selects how the rendered image boundary is shaped.
type CornerStyle string

const (
	CornersSquare  CornerStyle = "square"
	CornersRounded CornerStyle = "rounded"
)

// Size and logo bounds enforced by Normalize.
const (
	MinSizePx = 128
	MaxSizePx = 512

	MinLogoPercent = 10
	MaxLogoPercent = 40
)

// Defaults applied by Normalize for zero values.
const (
	DefaultSizePx      = 256
	DefaultForeground  = "#6366f1"
	DefaultBackground  = "#ffffff"
	DefaultLogoPercent = 20
)

// Logo is an optional image overlaid on the center of the code. Image
// holds the encoded bytes (PNG, JPEG, or SVG); SizePercent is the logo
// edge length relative to the code size.
type Logo struct {
	Image       []byte
	SizePercent int
}

// Config describes the visual styling of a composed QR image. It is a
// value object: the composer reads it and never mutates it. The owning
// presentation layer creates it from user controls and holds it for the
// session.
type Config struct {
	Foreground      color.Color
	Background      color.Color
	SizePx          int
	ErrorCorrection Level
	Corners         CornerStyle
	Logo            *Logo
}

// Normalize returns a copy with defaults filled in and bounds applied:
// SizePx is clamped to [MinSizePx, MaxSizePx] and the logo size to
// [MinLogoPercent, MaxLogoPercent], both inclusive.
func (c Config) Normalize() Config {
	if c.Foreground == nil {
		c.Foreground = MustParseHexColor(DefaultForeground)
	}
	if c.Background == nil {
		c.Background = MustParseHexColor(DefaultBackground)
	}
	if c.SizePx == 0 {
		c.SizePx = DefaultSizePx
	}
	c.SizePx = clamp(c.SizePx, MinSizePx, MaxSizePx)
	if c.ErrorCorrection == "" {
		c.ErrorCorrection = LevelM
	}
	if c.Corners == "" {
		c.Corners = CornersSquare
	}
	if c.Logo != nil {
		logo := *c.Logo
		if logo.SizePercent == 0 {
			logo.SizePercent = DefaultLogoPercent
		}
		logo.SizePercent = clamp(logo.SizePercent, MinLogoPercent, MaxLogoPercent)
		c.Logo = &logo
	}
	return c
}

// RecommendedLevel returns the error-correction level that keeps codes
// scannable for this configuration. Covering modules with a logo reduces
// read reliability, so logo configs get LevelQ unless the caller already
// chose something stronger.
func (c Config) RecommendedLevel() Level {
	if c.Logo == nil {
		return c.ErrorCorrection
	}
	switch c.ErrorCorrection {
	case LevelQ, LevelH:
		return c.ErrorCorrection
	default:
		return LevelQ
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ErrInvalidColor is returned when a color string is not a parsable hex
// triple.
var ErrInvalidColor = errors.New("invalid hex color")

// ParseHexColor parses "#rrggbb" or "#rgb" into an opaque RGBA color. No
// alpha channel is modeled.
func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	hex := s[1:]

	var r, g, b uint8
	var ok bool
	switch len(hex) {
	case 6:
		r, ok = hexByte(hex[0], hex[1])
		if ok {
			g, ok = hexByte(hex[2], hex[3])
		}
		if ok {
			b, ok = hexByte(hex[4], hex[5])
		}
	case 3:
		r, ok = hexByte(hex[0], hex[0])
		if ok {
			g, ok = hexByte(hex[1], hex[1])
		}
		if ok {
			b, ok = hexByte(hex[2], hex[2])
		}
	default:
		ok = false
	}
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustParseHexColor is ParseHexColor for known-good literals; it panics
// on malformed input.
func MustParseHexColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HexString formats a color as a lowercase "#rrggbb" string, discarding
// any alpha.
func HexString(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func hexByte(hi, lo byte) (uint8, bool) {
	h, ok1 := hexNibble(hi)
	l, ok2 := hexNibble(lo)
	return h<<4 | l, ok1 && ok2
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
