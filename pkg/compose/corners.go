package compose

import (
	"image"

	"github.com/fogleman/gg"
)

// clipRoundedCorners masks the image boundary with a rounded rectangle.
// Only the rendered edge is affected; the symbol modules themselves are
// untouched. Pixels outside the mask become transparent.
func clipRoundedCorners(img image.Image, radius float64) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	dc := gg.NewContext(w, h)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), radius)
	dc.Clip()
	dc.DrawImage(img, 0, 0)
	return dc.Image()
}
