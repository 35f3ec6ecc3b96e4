package compose

import (
	"bytes"
	"errors"
	"image"
	"image/color"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/fogleman/gg"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
)

// decodeLogo turns logo bytes into a raster image scaled to sizePx on
// its longer edge. Raster formats (PNG, JPEG, GIF) are decoded with the
// standard library; SVG logos are rasterized with oksvg.
func decodeLogo(data []byte, sizePx int) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrLogoDecodeFailed
	}

	if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
		return scaleLogo(img, sizePx), nil
	}

	img, err := rasterizeSVG(data, sizePx)
	if err != nil {
		return nil, errors.Join(ErrLogoDecodeFailed, err)
	}
	return img, nil
}

// rasterizeSVG renders SVG bytes onto a sizePx square RGBA surface.
func rasterizeSVG(data []byte, sizePx int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(sizePx), float64(sizePx))

	rgba := image.NewRGBA(image.Rect(0, 0, sizePx, sizePx))
	scanner := rasterx.NewScannerGV(sizePx, sizePx, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(sizePx, sizePx, scanner), 1)
	return rgba, nil
}

// scaleLogo resizes the logo to a sizePx square with bilinear filtering.
func scaleLogo(img image.Image, sizePx int) image.Image {
	if b := img.Bounds(); b.Dx() == sizePx && b.Dy() == sizePx {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, sizePx, sizePx))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}

// overlayLogo centers the logo on the base image with an opaque white
// pad behind it. Error-correction redundancy is never adjusted here; the
// configured level alone carries the covered modules.
func overlayLogo(base image.Image, logo image.Image, logoPx int, pad float64) image.Image {
	size := base.Bounds().Dx()
	x := float64(size-logoPx) / 2
	y := float64(size-logoPx) / 2

	dc := gg.NewContextForImage(base)
	dc.SetColor(color.White)
	dc.DrawRectangle(x-pad, y-pad, float64(logoPx)+2*pad, float64(logoPx)+2*pad)
	dc.Fill()
	dc.DrawImage(logo, int(x), int(y))
	return dc.Image()
}

// sniffLogoMIME identifies the logo bytes for embedding in a vector
// document. It accepts the same formats as decodeLogo.
func sniffLogoMIME(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrLogoDecodeFailed
	}
	if _, format, err := image.Decode(bytes.NewReader(data)); err == nil {
		return "image/" + format, nil
	}
	if _, err := oksvg.ReadIconStream(bytes.NewReader(data)); err == nil {
		return "image/svg+xml", nil
	}
	return "", ErrLogoDecodeFailed
}
