package render

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"

	"github.com/ahoikapptn/qrkit/pkg/style"

	skipqrcode "github.com/skip2/go-qrcode"
)

// Symbol is a rendered QR code: a pixel surface plus the underlying
// module matrix (quiet zone included).
type Symbol struct {
	img     image.Image
	modules [][]bool
	opts    Options
}

// Image returns the pixel surface.
func (s *Symbol) Image() image.Image { return s.img }

// Modules returns the module matrix, quiet zone included. True means a
// dark module.
func (s *Symbol) Modules() [][]bool { return s.modules }

// Options returns the options the symbol was rendered with.
func (s *Symbol) Options() Options { return s.opts }

// EncodePNG serializes the pixel surface to PNG bytes. Composition uses
// the same encoder, so an unstyled composition byte-matches this output.
func (s *Symbol) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, s.img); err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

// QR renders QR symbols with github.com/skip2/go-qrcode.
type QR struct{}

// NewQR returns the default renderer.
func NewQR() *QR { return &QR{} }

// Render builds the symbol and rasterizes it to opts.SizePx pixels.
func (r *QR) Render(payload string, opts Options) (*Symbol, error) {
	qr, opts, err := r.encode(payload, opts)
	if err != nil {
		return nil, err
	}
	return &Symbol{
		img:     qr.Image(opts.SizePx),
		modules: qr.Bitmap(),
		opts:    opts,
	}, nil
}

// RenderVector builds the symbol as a vector document sized to
// opts.SizePx with the configured colors.
func (r *QR) RenderVector(payload string, opts Options) (*VectorDocument, error) {
	qr, opts, err := r.encode(payload, opts)
	if err != nil {
		return nil, err
	}
	return &VectorDocument{
		SizePx:     opts.SizePx,
		Foreground: style.HexString(opts.Foreground),
		Background: style.HexString(opts.Background),
		modules:    qr.Bitmap(),
	}, nil
}

func (r *QR) encode(payload string, opts Options) (*skipqrcode.QRCode, Options, error) {
	if strings.TrimSpace(payload) == "" {
		return nil, opts, ErrEmptyPayload
	}
	opts = opts.withDefaults()

	qr, err := skipqrcode.New(payload, recoveryLevel(opts.Level))
	if err != nil {
		return nil, opts, errors.Join(ErrRenderFailed, err)
	}
	qr.ForegroundColor = opts.Foreground
	qr.BackgroundColor = opts.Background
	return qr, opts, nil
}

func recoveryLevel(l style.Level) skipqrcode.RecoveryLevel {
	switch l {
	case style.LevelL:
		return skipqrcode.Low
	case style.LevelQ:
		return skipqrcode.High
	case style.LevelH:
		return skipqrcode.Highest
	default:
		return skipqrcode.Medium
	}
}
