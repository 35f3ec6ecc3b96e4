package i18n

// Key identifies one user-facing message. The set is closed: every
// locale catalog must define every key and nothing else, which is
// verified when the catalog is built.
type Key string

const (
	KeyGenerated            Key = "generated"
	KeySavedFile            Key = "saved-file"
	KeyCopiedToClipboard    Key = "copied-to-clipboard"
	KeyClipboardUnsupported Key = "clipboard-unsupported"
	KeyClipboardError       Key = "clipboard-error"
	KeyDownloadError        Key = "download-error"
	KeyLogoLoadError        Key = "logo-load-error"
	KeyEmptyPayload         Key = "empty-payload"
)

// Keys returns the closed message key set.
func Keys() []Key {
	return []Key{
		KeyGenerated,
		KeySavedFile,
		KeyCopiedToClipboard,
		KeyClipboardUnsupported,
		KeyClipboardError,
		KeyDownloadError,
		KeyLogoLoadError,
		KeyEmptyPayload,
	}
}
