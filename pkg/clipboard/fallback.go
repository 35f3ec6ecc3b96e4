package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// fallbackCommands lists platform copy commands that accept PNG data on
// stdin, tried in order.
func fallbackCommands() [][]string {
	switch runtime.GOOS {
	case "linux":
		return [][]string{
			{"wl-copy", "--type", "image/png"},
			{"xclip", "-selection", "clipboard", "-t", "image/png"},
		}
	case "darwin":
		// osascript cannot take binary stdin, so the image goes through a
		// temp file.
		return nil
	default:
		return nil
	}
}

// writeFallback pipes the PNG into the first working platform command.
func writeFallback(ctx context.Context, png []byte) error {
	if runtime.GOOS == "darwin" {
		return writeDarwin(ctx, png)
	}

	cmds := fallbackCommands()
	if len(cmds) == 0 {
		return fmt.Errorf("no clipboard command for %s", runtime.GOOS)
	}

	var lastErr error
	for _, argv := range cmds {
		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
		cmd.Stdin = bytes.NewReader(png)
		if err := cmd.Run(); err != nil {
			lastErr = fmt.Errorf("%s: %w", argv[0], err)
			continue
		}
		return nil
	}
	return lastErr
}

func writeDarwin(ctx context.Context, png []byte) error {
	f, err := os.CreateTemp("", "qrkit-clip-*.png")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(png); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	script := fmt.Sprintf(`set the clipboard to (read (POSIX file %q) as «class PNGf»)`, f.Name())
	out, err := exec.CommandContext(ctx, "osascript", "-e", script).CombinedOutput()
	if err != nil {
		return errors.Join(err, fmt.Errorf("osascript: %s", bytes.TrimSpace(out)))
	}
	return nil
}
