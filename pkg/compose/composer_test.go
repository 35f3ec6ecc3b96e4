package compose_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/ahoikapptn/qrkit/pkg/compose"
	"github.com/ahoikapptn/qrkit/pkg/payload"
	"github.com/ahoikapptn/qrkit/pkg/render"
	"github.com/ahoikapptn/qrkit/pkg/style"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogoPNG builds a small noisy PNG so logo compositing visibly
// changes the artifact.
func testLogoPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x*8) ^ uint8(y*13),
				G: uint8(y * 7),
				B: uint8(x * 5),
				A: 0xff,
			})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func plainConfig() style.Config {
	return style.Config{
		Foreground:      color.RGBA{A: 0xff},
		Background:      color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		SizePx:          256,
		ErrorCorrection: style.LevelM,
		Corners:         style.CornersSquare,
	}.Normalize()
}

func TestComposeRaster(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("square without logo matches bare renderer output", func(t *testing.T) {
		t.Parallel()
		cfg := plainConfig()
		const data = "https://ahoikapptn.com"

		art, err := compose.New(nil).Compose(ctx, data, cfg, compose.TargetRaster)
		require.NoError(t, err)
		require.Equal(t, compose.KindRaster, art.Kind)
		assert.Equal(t, "image/png", art.MIME)

		sym, err := render.NewQR().Render(data, render.Options{
			SizePx:     cfg.SizePx,
			Level:      cfg.ErrorCorrection,
			Foreground: cfg.Foreground,
			Background: cfg.Background,
		})
		require.NoError(t, err)
		bare, err := sym.EncodePNG()
		require.NoError(t, err)
		assert.Equal(t, bare, art.Bytes, "composer must add nothing for square corners and no logo")
	})

	t.Run("rounded corners make boundary pixels transparent", func(t *testing.T) {
		t.Parallel()
		cfg := plainConfig()
		cfg.Corners = style.CornersRounded

		art, err := compose.New(nil).Compose(ctx, "https://ahoikapptn.com", cfg, compose.TargetRaster)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(art.Bytes))
		require.NoError(t, err)
		_, _, _, a := img.At(0, 0).RGBA()
		assert.Zero(t, a, "top-left corner must be clipped")
		_, _, _, a = img.At(128, 128).RGBA()
		assert.NotZero(t, a, "center must stay opaque")
	})

	t.Run("logo artifact is strictly larger than without", func(t *testing.T) {
		t.Parallel()
		cfg := plainConfig()
		bare, err := compose.New(nil).Compose(ctx, "https://ahoikapptn.com", cfg, compose.TargetRaster)
		require.NoError(t, err)

		cfg.Logo = &style.Logo{Image: testLogoPNG(t), SizePercent: 20}
		withLogo, err := compose.New(nil).Compose(ctx, "https://ahoikapptn.com", cfg, compose.TargetRaster)
		require.NoError(t, err)

		assert.Greater(t, len(withLogo.Bytes), len(bare.Bytes))
	})

	t.Run("undecodable logo fails for every target", func(t *testing.T) {
		t.Parallel()
		cfg := plainConfig()
		cfg.Logo = &style.Logo{Image: []byte("not an image"), SizePercent: 20}

		for _, target := range []compose.Target{
			compose.TargetRaster, compose.TargetVector, compose.TargetClipboard,
		} {
			art, err := compose.New(nil).Compose(ctx, "https://ahoikapptn.com", cfg, target)
			require.Error(t, err, "target %s", target)
			require.Nil(t, art, "no partial artifact for target %s", target)
			assert.ErrorIs(t, err, compose.ErrLogoDecodeFailed)
		}
	})

	t.Run("empty payload is rejected", func(t *testing.T) {
		t.Parallel()
		art, err := compose.New(nil).Compose(ctx, "", plainConfig(), compose.TargetRaster)

		require.Error(t, err)
		require.Nil(t, art)
		assert.ErrorIs(t, err, render.ErrEmptyPayload)
	})

	t.Run("cancelled context stops composition", func(t *testing.T) {
		t.Parallel()
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		art, err := compose.New(nil).Compose(cancelled, "https://ahoikapptn.com", plainConfig(), compose.TargetRaster)
		require.Error(t, err)
		assert.Nil(t, art)
	})

	t.Run("unknown target is rejected", func(t *testing.T) {
		t.Parallel()
		art, err := compose.New(nil).Compose(ctx, "https://ahoikapptn.com", plainConfig(), compose.Target("pdf"))

		require.Error(t, err)
		require.Nil(t, art)
		assert.ErrorIs(t, err, compose.ErrUnsupportedTarget)
	})
}

func TestComposeClipboard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("produces clipboard image kind", func(t *testing.T) {
		t.Parallel()
		art, err := compose.New(nil).Compose(ctx, "https://ahoikapptn.com", plainConfig(), compose.TargetClipboard)

		require.NoError(t, err)
		assert.Equal(t, compose.KindClipboardImage, art.Kind)
		assert.Equal(t, "image/png", art.MIME)
		assert.NotEmpty(t, art.Bytes)
		assert.Empty(t, art.Text)
	})

	t.Run("rounded radius scales with surface size", func(t *testing.T) {
		t.Parallel()
		cfg := plainConfig()
		cfg.SizePx = 512
		cfg.Corners = style.CornersRounded

		art, err := compose.New(nil).Compose(ctx, "https://ahoikapptn.com", cfg, compose.TargetClipboard)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(art.Bytes))
		require.NoError(t, err)
		// 5% of 512 is a 25px radius, so (4,4) lies outside the mask.
		_, _, _, a := img.At(4, 4).RGBA()
		assert.Zero(t, a)
	})
}

func TestComposeVector(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("produces svg artifact", func(t *testing.T) {
		t.Parallel()
		art, err := compose.New(nil).Compose(ctx, "https://ahoikapptn.com", plainConfig(), compose.TargetVector)

		require.NoError(t, err)
		assert.Equal(t, compose.KindVector, art.Kind)
		assert.Equal(t, "image/svg+xml", art.MIME)
		assert.Contains(t, art.Text, "<svg xmlns=")
		assert.Empty(t, art.Bytes)
	})

	t.Run("embeds logo with white pad", func(t *testing.T) {
		t.Parallel()
		cfg := plainConfig()
		cfg.Logo = &style.Logo{Image: testLogoPNG(t), SizePercent: 20}

		art, err := compose.New(nil).Compose(ctx, "https://ahoikapptn.com", cfg, compose.TargetVector)
		require.NoError(t, err)

		assert.Contains(t, art.Text, `fill="white"`)
		assert.Contains(t, art.Text, `href="data:image/png;base64,`)
	})

	t.Run("rounded corners add a clip path", func(t *testing.T) {
		t.Parallel()
		cfg := plainConfig()
		cfg.Corners = style.CornersRounded

		art, err := compose.New(nil).Compose(ctx, "https://ahoikapptn.com", cfg, compose.TargetVector)
		require.NoError(t, err)
		assert.Contains(t, art.Text, `clipPath id="corners"`)
		assert.Contains(t, art.Text, `rx="16"`)
	})
}

func TestArtifactRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	decode := func(t *testing.T, data []byte) string {
		t.Helper()
		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		bmp, err := gozxing.NewBinaryBitmapFromImage(img)
		require.NoError(t, err)
		result, err := zxqrcode.NewQRCodeReader().Decode(bmp, nil)
		require.NoError(t, err)
		return result.GetText()
	}

	t.Run("wifi payload survives composition", func(t *testing.T) {
		t.Parallel()
		data, err := payload.Encode(payload.WiFi{
			SSID: "Home", Password: "secret1", Encryption: payload.EncryptionWPA,
		})
		require.NoError(t, err)

		art, err := compose.New(nil).Compose(ctx, data, plainConfig(), compose.TargetRaster)
		require.NoError(t, err)
		assert.Equal(t, "WIFI:T:WPA;S:Home;P:secret1;;", decode(t, art.Bytes))
	})

	t.Run("vcard payload survives composition", func(t *testing.T) {
		t.Parallel()
		data, err := payload.Encode(payload.VCard{
			FirstName: "John", LastName: "Doe", Phone: "+1234567890",
			Email: "john@x.com", Organization: "Acme", URL: "https://x.com",
		})
		require.NoError(t, err)

		art, err := compose.New(nil).Compose(ctx, data, plainConfig(), compose.TargetRaster)
		require.NoError(t, err)
		assert.Equal(t, data, decode(t, art.Bytes))
	})
}

func TestFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "qrcode-wifi.png", compose.Filename(payload.TypeWiFi, compose.TargetRaster))
	assert.Equal(t, "qrcode-vcard.svg", compose.Filename(payload.TypeVCard, compose.TargetVector))
	assert.Equal(t, "qrcode-url.png", compose.Filename(payload.TypeURL, compose.TargetClipboard))
}
