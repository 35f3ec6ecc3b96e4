package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/ahoikapptn/qrkit/pkg/render"
	"github.com/ahoikapptn/qrkit/pkg/style"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRRender(t *testing.T) {
	t.Parallel()

	t.Run("returns error for empty payload", func(t *testing.T) {
		t.Parallel()
		sym, err := render.NewQR().Render("", render.Options{})

		require.Error(t, err)
		require.Nil(t, sym)
		assert.ErrorIs(t, err, render.ErrEmptyPayload)
	})

	t.Run("returns error for whitespace payload", func(t *testing.T) {
		t.Parallel()
		sym, err := render.NewQR().Render("  \t\n", render.Options{})

		require.Error(t, err)
		require.Nil(t, sym)
		assert.ErrorIs(t, err, render.ErrEmptyPayload)
	})

	t.Run("renders surface at requested size", func(t *testing.T) {
		t.Parallel()
		sym, err := render.NewQR().Render("https://ahoikapptn.com", render.Options{SizePx: 320})

		require.NoError(t, err)
		bounds := sym.Image().Bounds()
		assert.Equal(t, 320, bounds.Dx())
		assert.Equal(t, 320, bounds.Dy())
		assert.NotEmpty(t, sym.Modules())
	})

	t.Run("defaults size when unset", func(t *testing.T) {
		t.Parallel()
		sym, err := render.NewQR().Render("https://ahoikapptn.com", render.Options{})

		require.NoError(t, err)
		assert.Equal(t, 256, sym.Image().Bounds().Dx())
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()
		opts := render.Options{SizePx: 256, Level: style.LevelQ}

		first, err := render.NewQR().Render("WIFI:T:WPA;S:Home;P:secret1;;", opts)
		require.NoError(t, err)
		second, err := render.NewQR().Render("WIFI:T:WPA;S:Home;P:secret1;;", opts)
		require.NoError(t, err)

		firstPNG, err := first.EncodePNG()
		require.NoError(t, err)
		secondPNG, err := second.EncodePNG()
		require.NoError(t, err)
		assert.Equal(t, firstPNG, secondPNG)
	})

	t.Run("applies configured colors", func(t *testing.T) {
		t.Parallel()
		fg := color.RGBA{R: 0x63, G: 0x66, B: 0xf1, A: 0xff}
		bg := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		sym, err := render.NewQR().Render("https://ahoikapptn.com", render.Options{
			SizePx:     256,
			Foreground: fg,
			Background: bg,
		})

		require.NoError(t, err)
		img := sym.Image()
		seenFg := false
		bounds := img.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y && !seenFg; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, g, b, _ := img.At(x, y).RGBA()
				if uint8(r>>8) == fg.R && uint8(g>>8) == fg.G && uint8(b>>8) == fg.B {
					seenFg = true
					break
				}
			}
		}
		assert.True(t, seenFg, "foreground color must appear in the rendered symbol")
	})

	t.Run("rendered symbol decodes back to the payload", func(t *testing.T) {
		t.Parallel()
		const content = "https://ahoikapptn.com"
		sym, err := render.NewQR().Render(content, render.Options{SizePx: 256})
		require.NoError(t, err)

		data, err := sym.EncodePNG()
		require.NoError(t, err)
		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)

		bmp, err := gozxing.NewBinaryBitmapFromImage(img)
		require.NoError(t, err)
		result, err := zxqrcode.NewQRCodeReader().Decode(bmp, nil)
		require.NoError(t, err)
		assert.Equal(t, content, result.GetText())
	})
}

func TestVectorDocument(t *testing.T) {
	t.Parallel()

	t.Run("serializes a well formed svg", func(t *testing.T) {
		t.Parallel()
		doc, err := render.NewQR().RenderVector("https://ahoikapptn.com", render.Options{
			SizePx:     256,
			Foreground: style.MustParseHexColor("#6366f1"),
			Background: style.MustParseHexColor("#ffffff"),
		})
		require.NoError(t, err)

		svg := doc.String()
		assert.True(t, strings.HasPrefix(svg, "<svg xmlns="))
		assert.Contains(t, svg, `viewBox="0 0 256 256"`)
		assert.Contains(t, svg, `fill="#6366f1"`)
		assert.Contains(t, svg, `fill="#ffffff"`)
		assert.NotContains(t, svg, "clipPath", "square corners must not emit a clip")
		assert.True(t, strings.HasSuffix(strings.TrimSpace(svg), "</svg>"))
	})

	t.Run("rounded corners emit a clip path", func(t *testing.T) {
		t.Parallel()
		doc, err := render.NewQR().RenderVector("https://ahoikapptn.com", render.Options{SizePx: 256})
		require.NoError(t, err)
		doc.CornerRadius = 16

		svg := doc.String()
		assert.Contains(t, svg, `<clipPath id="corners">`)
		assert.Contains(t, svg, `rx="16"`)
	})

	t.Run("appended elements come after the symbol", func(t *testing.T) {
		t.Parallel()
		doc, err := render.NewQR().RenderVector("https://ahoikapptn.com", render.Options{SizePx: 256})
		require.NoError(t, err)
		doc.AppendElement(`<rect x="1" y="1" width="2" height="2" fill="white"/>`)

		svg := doc.String()
		pathIdx := strings.Index(svg, "<path d=")
		extraIdx := strings.Index(svg, `<rect x="1"`)
		require.Positive(t, pathIdx)
		require.Positive(t, extraIdx)
		assert.Greater(t, extraIdx, pathIdx)
	})

	t.Run("returns error for empty payload", func(t *testing.T) {
		t.Parallel()
		doc, err := render.NewQR().RenderVector("", render.Options{})

		require.Error(t, err)
		require.Nil(t, doc)
		assert.ErrorIs(t, err, render.ErrEmptyPayload)
	})
}
