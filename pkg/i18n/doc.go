// Package i18n provides the localized user-facing messages for the QR
// generation flow as a typed catalog.
//
// Message keys form a closed set (Keys); locale files are embedded YAML.
// NewCatalog refuses to build when any locale misses a key or defines an
// unknown one, so an incomplete translation fails fast instead of
// surfacing as a missing string at runtime.
package i18n
