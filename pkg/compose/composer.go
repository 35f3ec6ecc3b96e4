package compose

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"

	"github.com/ahoikapptn/qrkit/pkg/render"
	"github.com/ahoikapptn/qrkit/pkg/style"
)

// Corner radii per target. Raster and vector downloads use a fixed
// radius; the clipboard blob scales it with the surface size.
const (
	rasterCornerRadius  = 20
	vectorCornerRadius  = 16
	clipboardRadiusFrac = 0.05
)

// Logo padding per target, drawn as an opaque backdrop so the logo does
// not visually merge with adjacent modules.
const (
	rasterLogoPadPx  = 10
	vectorLogoPadPx  = 5
	clipboardPadFrac = 0.10
)

// clipboardMaxSizePx caps the clipboard surface.
const clipboardMaxSizePx = 2048

// Composer turns a payload string plus a style configuration into a
// finished artifact. It delegates symbol generation to a render.Renderer
// and layers corner clipping, logo compositing, and target serialization
// on top.
type Composer struct {
	renderer render.Renderer
}

// New creates a Composer. A nil renderer falls back to the default
// skip2-backed implementation.
func New(renderer render.Renderer) *Composer {
	if renderer == nil {
		renderer = render.NewQR()
	}
	return &Composer{renderer: renderer}
}

// Compose produces the artifact for the requested target. Composition is
// all-or-nothing: any step failing returns a nil artifact and a typed
// error. The style config is read, never mutated; callers should pass a
// normalized config.
func (c *Composer) Compose(ctx context.Context, data string, cfg style.Config, target Target) (*Artifact, error) {
	switch target {
	case TargetRaster, TargetClipboard:
		return c.composeRaster(ctx, data, cfg, target)
	case TargetVector:
		return c.composeVector(ctx, data, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTarget, target)
	}
}

func (c *Composer) composeRaster(ctx context.Context, data string, cfg style.Config, target Target) (*Artifact, error) {
	size := cfg.SizePx
	if target == TargetClipboard && size > clipboardMaxSizePx {
		size = clipboardMaxSizePx
	}

	sym, err := c.renderer.Render(data, render.Options{
		SizePx:     size,
		Level:      cfg.ErrorCorrection,
		Foreground: cfg.Foreground,
		Background: cfg.Background,
	})
	if err != nil {
		return nil, err
	}
	size = sym.Image().Bounds().Dx()
	img := sym.Image()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if cfg.Corners == style.CornersRounded {
		radius := float64(rasterCornerRadius)
		if target == TargetClipboard {
			radius = clipboardRadiusFrac * float64(size)
		}
		img = clipRoundedCorners(img, radius)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if cfg.Logo != nil {
		logoPx := size * cfg.Logo.SizePercent / 100
		logoImg, err := decodeLogo(cfg.Logo.Image, logoPx)
		if err != nil {
			return nil, err
		}
		pad := float64(rasterLogoPadPx)
		if target == TargetClipboard {
			pad = clipboardPadFrac * float64(logoPx)
		}
		img = overlayLogo(img, logoImg, logoPx, pad)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Join(ErrSerializationFailed, err)
	}

	kind := KindRaster
	if target == TargetClipboard {
		kind = KindClipboardImage
	}
	return &Artifact{Kind: kind, Bytes: buf.Bytes(), MIME: "image/png"}, nil
}

func (c *Composer) composeVector(ctx context.Context, data string, cfg style.Config) (*Artifact, error) {
	doc, err := c.renderer.RenderVector(data, render.Options{
		SizePx:     cfg.SizePx,
		Level:      cfg.ErrorCorrection,
		Foreground: cfg.Foreground,
		Background: cfg.Background,
	})
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if cfg.Corners == style.CornersRounded {
		doc.CornerRadius = vectorCornerRadius
	}

	if cfg.Logo != nil {
		mime, err := sniffLogoMIME(cfg.Logo.Image)
		if err != nil {
			return nil, err
		}
		size := doc.SizePx
		logoPx := size * cfg.Logo.SizePercent / 100
		x := (size - logoPx) / 2
		y := (size - logoPx) / 2

		doc.AppendElement(fmt.Sprintf(
			`<rect x="%d" y="%d" width="%d" height="%d" fill="white"/>`,
			x-vectorLogoPadPx, y-vectorLogoPadPx,
			logoPx+2*vectorLogoPadPx, logoPx+2*vectorLogoPadPx))
		doc.AppendElement(fmt.Sprintf(
			`<image x="%d" y="%d" width="%d" height="%d" href="data:%s;base64,%s"/>`,
			x, y, logoPx, logoPx, mime,
			base64.StdEncoding.EncodeToString(cfg.Logo.Image)))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Artifact{
		Kind: KindVector,
		Text: doc.String(),
		MIME: "image/svg+xml",
	}, nil
}
