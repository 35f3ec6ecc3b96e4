// Package style holds the visual configuration for composed QR images:
// colors, pixel size, error-correction level, corner shape, and an
// optional centered logo.
//
// Config is a plain value object owned by the caller. Normalize applies
// documented defaults and clamps size and logo bounds, so downstream
// composition never sees out-of-range values.
package style
