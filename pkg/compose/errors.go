package compose

import "errors"

var (
	// ErrLogoDecodeFailed is returned when the supplied logo bytes cannot
	// be decoded as a raster image or SVG.
	ErrLogoDecodeFailed = errors.New("failed to decode logo image")
	// ErrSerializationFailed is returned when the final artifact encoding
	// fails.
	ErrSerializationFailed = errors.New("failed to serialize artifact")
	// ErrUnsupportedTarget is returned for a target outside the known set.
	ErrUnsupportedTarget = errors.New("unsupported composition target")
)
