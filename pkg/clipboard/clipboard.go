package clipboard

import (
	"context"
	"errors"
	"sync"

	xclipboard "golang.design/x/clipboard"
)

var (
	// ErrEmptyImage is returned when there are no image bytes to write.
	ErrEmptyImage = errors.New("no image bytes to write")
	// ErrUnsupported is returned when no clipboard image API is available
	// and the fallback command also failed.
	ErrUnsupported = errors.New("clipboard image write not supported")
)

var (
	initOnce sync.Once
	initErr  error
)

// WriteImage places PNG bytes on the system image clipboard.
//
// Two tiers are attempted in order: the native clipboard API first, then
// a platform copy command. If both fail the caller gets ErrUnsupported
// rather than a silent success, so it can offer a file download instead.
func WriteImage(ctx context.Context, png []byte) error {
	if len(png) == 0 {
		return ErrEmptyImage
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := writeNative(png); err == nil {
		return nil
	}

	if err := writeFallback(ctx, png); err != nil {
		return errors.Join(ErrUnsupported, err)
	}
	return nil
}

// writeNative uses golang.design/x/clipboard. Initialization happens once
// per process; an environment without clipboard access (e.g. a headless
// session) surfaces as an error here and triggers the fallback tier.
func writeNative(png []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Join(ErrUnsupported, errorFromPanic(r))
		}
	}()

	initOnce.Do(func() {
		initErr = xclipboard.Init()
	})
	if initErr != nil {
		return initErr
	}

	xclipboard.Write(xclipboard.FmtImage, png)
	return nil
}

func errorFromPanic(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return errors.New("clipboard init panicked")
}
