package render

import "errors"

var (
	// ErrEmptyPayload is returned when the payload string is empty or
	// whitespace only.
	ErrEmptyPayload = errors.New("payload cannot be empty")
	// ErrRenderFailed is returned when the underlying QR encoder fails.
	ErrRenderFailed = errors.New("failed to render QR symbol")
)
