package render

import (
	"fmt"
	"strings"
)

// VectorDocument is an SVG rendition of a QR symbol. The document is
// assembled lazily: composition may set a corner radius and append extra
// elements (logo pad and image) before serialization.
type VectorDocument struct {
	SizePx       int
	CornerRadius int
	Foreground   string
	Background   string

	modules [][]bool
	extra   []string
}

// AppendElement adds raw SVG markup drawn on top of the symbol, inside
// the corner clip if one is set. Coordinates are in pixels.
func (d *VectorDocument) AppendElement(markup string) {
	d.extra = append(d.extra, markup)
}

// String serializes the document to SVG text.
func (d *VectorDocument) String() string {
	size := d.SizePx
	n := len(d.modules)

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		size, size, size, size)
	b.WriteByte('\n')

	if d.CornerRadius > 0 {
		fmt.Fprintf(&b,
			`<defs><clipPath id="corners"><rect width="%d" height="%d" rx="%d" ry="%d"/></clipPath></defs>`,
			size, size, d.CornerRadius, d.CornerRadius)
		b.WriteByte('\n')
		b.WriteString(`<g clip-path="url(#corners)">`)
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, size, size, d.Background)
	b.WriteByte('\n')

	if n > 0 {
		scale := float64(size) / float64(n)
		fmt.Fprintf(&b, `<g transform="scale(%g)"><path d="`, scale)
		for y, row := range d.modules {
			for x, dark := range row {
				if dark {
					fmt.Fprintf(&b, "M%d %dh1v1h-1z", x, y)
				}
			}
		}
		fmt.Fprintf(&b, `" fill="%s"/></g>`, d.Foreground)
		b.WriteByte('\n')
	}

	for _, el := range d.extra {
		b.WriteString(el)
		b.WriteByte('\n')
	}

	if d.CornerRadius > 0 {
		b.WriteString("</g>\n")
	}
	b.WriteString("</svg>\n")
	return b.String()
}
