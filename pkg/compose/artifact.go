package compose

import (
	"fmt"

	"github.com/ahoikapptn/qrkit/pkg/payload"
)

// Target selects the output channel of a composition.
type Target string

const (
	// TargetRaster produces a downloadable PNG file.
	TargetRaster Target = "raster"
	// TargetVector produces a downloadable SVG file.
	TargetVector Target = "vector"
	// TargetClipboard produces a PNG blob for the system image clipboard.
	TargetClipboard Target = "clipboard"
)

// Kind tags the artifact shape.
type Kind string

const (
	KindRaster         Kind = "raster"
	KindVector         Kind = "vector"
	KindClipboardImage Kind = "clipboard-image"
)

// Artifact is the finished output of a composition. Artifacts are
// transient values produced on demand; they are never cached.
//
// Raster and clipboard artifacts carry Bytes, vector artifacts carry
// Text.
type Artifact struct {
	Kind  Kind
	Bytes []byte
	Text  string
	MIME  string
}

// Filename returns the download name for an artifact of the given
// content type and target, e.g. "qrcode-wifi.png".
func Filename(ct payload.ContentType, target Target) string {
	ext := "png"
	if target == TargetVector {
		ext = "svg"
	}
	return fmt.Sprintf("qrcode-%s.%s", ct, ext)
}
