package payload

import "errors"

var (
	// ErrUnsupportedContentType is returned when Encode receives a content
	// value outside the closed set of supported types.
	ErrUnsupportedContentType = errors.New("unsupported content type")
)
