// Package clipboard writes composed QR images to the system image
// clipboard.
//
// WriteImage tries the native clipboard API first and falls back to a
// platform copy command (wl-copy/xclip on Linux, osascript on macOS). A
// failure of both tiers surfaces as ErrUnsupported so callers can point
// the user at the file download path instead.
package clipboard
