// Package compose assembles finished QR image artifacts from a payload
// string and a style configuration.
//
// The Composer delegates symbol generation to a render.Renderer and
// performs the remaining pipeline steps in order: rounded-corner
// clipping, centered logo compositing with an opaque backdrop, and
// serialization to one of three output channels (PNG file, SVG file, or
// a clipboard-ready PNG blob).
//
// Composition is all-or-nothing. Every failure is terminal for the call
// and surfaces as a sentinel error (ErrLogoDecodeFailed,
// ErrSerializationFailed) or a render package error; no partial artifact
// is ever returned and nothing is retried.
//
// A composition with square corners and no logo adds nothing: its bytes
// match the bare renderer output for the same options.
package compose
