// Package render produces base QR symbols from payload strings.
//
// The Renderer interface covers two output shapes: a pixel surface
// (Symbol) for raster and clipboard targets, and a VectorDocument for
// SVG export. The default implementation delegates symbol construction
// (module placement, error correction, masking) to
// github.com/skip2/go-qrcode and only handles sizing and colors.
//
// Rendering is deterministic: the same payload, size, level, and colors
// always produce the same output.
//
// Errors are package-level sentinels (ErrEmptyPayload, ErrRenderFailed)
// suitable for errors.Is comparisons.
package render
