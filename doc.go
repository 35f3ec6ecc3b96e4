// Package qrkit turns structured content (a URL, free text, email, SMS,
// Wi-Fi credentials, or a contact card) into styled, scannable QR code
// images exportable as PNG, SVG, or a clipboard-ready blob.
//
// The module splits the work into two cores consumed by a presentation
// layer:
//
//   - pkg/payload encodes type-specific fields into the canonical text
//     a QR reader interprets.
//   - pkg/compose renders the symbol (via pkg/render) and layers visual
//     styling on top: colors, size, rounded corners, and an embedded
//     logo with an opaque backdrop.
//
// The root package offers a Generator facade running the full pipeline:
//
//	gen := qrkit.New()
//	res, err := gen.Generate(ctx, payload.WiFi{SSID: "Home", Password: "secret1", Encryption: payload.EncryptionWPA},
//		style.Config{Corners: style.CornersRounded}, compose.TargetRaster)
//	if err != nil {
//		// handle error
//	}
//	_ = os.WriteFile(res.Filename, res.Artifact.Bytes, 0o644)
//
// Supporting packages cover the surrounding concerns: pkg/clipboard
// writes images to the system clipboard with a command-line fallback,
// pkg/prefs persists the theme and locale preferences, pkg/i18n carries
// the localized user-facing messages, and pkg/logger configures
// structured logging. cmd/qrkit is a small terminal front end over the
// whole pipeline.
package qrkit
