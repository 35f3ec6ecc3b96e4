// Command qrkit generates styled QR codes from the terminal.
//
// It is a thin presentation layer over the qrkit pipeline: it collects
// content fields and style settings from flags, lets the library do the
// encoding and composition, and performs the final file, clipboard, or
// terminal write.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/mdp/qrterminal/v3"

	"github.com/ahoikapptn/qrkit"
	"github.com/ahoikapptn/qrkit/pkg/clipboard"
	"github.com/ahoikapptn/qrkit/pkg/compose"
	"github.com/ahoikapptn/qrkit/pkg/i18n"
	"github.com/ahoikapptn/qrkit/pkg/logger"
	"github.com/ahoikapptn/qrkit/pkg/payload"
	"github.com/ahoikapptn/qrkit/pkg/prefs"
	"github.com/ahoikapptn/qrkit/pkg/render"
	"github.com/ahoikapptn/qrkit/pkg/style"
)

type config struct {
	Size       int    `env:"QRKIT_SIZE" envDefault:"256"`
	Foreground string `env:"QRKIT_FG" envDefault:"#6366f1"`
	Background string `env:"QRKIT_BG" envDefault:"#ffffff"`
	PrefsPath  string `env:"QRKIT_PREFS"`
	LogLevel   string `env:"QRKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"QRKIT_LOG_FORMAT" envDefault:"text"`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "qrkit:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	_ = godotenv.Load()
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return err
	}

	var (
		contentType = flag.String("type", "url", "content type: url, text, email, sms, wifi, vcard")

		urlValue  = flag.String("url", "", "link for -type url (also the vcard website)")
		textValue = flag.String("text", "", "free text for -type text")
		address   = flag.String("address", "", "email address for -type email")
		subject   = flag.String("subject", "", "email subject")
		body      = flag.String("body", "", "email body")
		phone     = flag.String("phone", "", "phone number for -type sms or vcard")
		message   = flag.String("message", "", "message for -type sms")
		ssid      = flag.String("ssid", "", "network name for -type wifi")
		password  = flag.String("password", "", "network password")
		enc       = flag.String("encryption", "WPA", "wifi encryption: WPA, WEP, nopass")
		firstName = flag.String("first-name", "", "contact first name for -type vcard")
		lastName  = flag.String("last-name", "", "contact last name")
		email     = flag.String("email", "", "contact email")
		org       = flag.String("org", "", "contact organization")

		size     = flag.Int("size", cfg.Size, "image size in pixels (128-512)")
		fg       = flag.String("fg", cfg.Foreground, "foreground color, hex")
		bg       = flag.String("bg", cfg.Background, "background color, hex")
		ecLevel  = flag.String("ec", "M", "error correction level: L, M, Q, H")
		rounded  = flag.Bool("rounded", false, "round the image corners")
		logoPath = flag.String("logo", "", "logo image file (png, jpeg, gif, svg)")
		logoSize = flag.Int("logo-size", 20, "logo size as percent of the code (10-40)")

		format  = flag.String("format", "png", "output format: png or svg")
		outPath = flag.String("o", "", "output file (defaults to qrcode-<type>.<ext>)")
		copyImg = flag.Bool("copy", false, "copy the image to the clipboard instead of writing a file")
		preview = flag.Bool("preview", false, "print the code to the terminal")

		localeFlag = flag.String("locale", "", "switch and persist the message locale (fr, en, es)")
		themeFlag  = flag.String("theme", "", "switch and persist the UI theme (light, dark)")
	)
	flag.Parse()

	log := logger.New(
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithLevel(parseLevel(cfg.LogLevel)),
	)

	catalog, err := i18n.NewCatalog()
	if err != nil {
		return err
	}

	store, err := prefs.NewFileStore(prefsPath(cfg.PrefsPath))
	if err != nil {
		return err
	}
	pref, err := store.Load(ctx)
	if err != nil {
		log.WarnContext(ctx, "falling back to default preferences", slog.Any("error", err))
		pref = prefs.Default()
	}
	if changed := applyPrefFlags(&pref, *localeFlag, *themeFlag); changed {
		if err := store.Save(ctx, pref); err != nil {
			return err
		}
	}
	t := func(key i18n.Key) string { return catalog.T(pref.Locale, key) }

	content, err := buildContent(*contentType, contentFields{
		url: *urlValue, text: *textValue,
		address: *address, subject: *subject, body: *body,
		phone: *phone, message: *message,
		ssid: *ssid, password: *password, encryption: *enc,
		firstName: *firstName, lastName: *lastName, email: *email, org: *org,
	})
	if err != nil {
		return err
	}

	styleCfg, err := buildStyle(*size, *fg, *bg, *ecLevel, *rounded, *logoPath, *logoSize)
	if err != nil {
		if *logoPath != "" {
			fmt.Fprintln(os.Stderr, t(i18n.KeyLogoLoadError))
		}
		return err
	}

	if *preview {
		data, err := payload.Encode(content)
		if err != nil {
			return err
		}
		qrterminal.GenerateHalfBlock(data, qrterminal.M, os.Stdout)
	}

	gen := qrkit.New(qrkit.WithLogger(log))

	if *copyImg {
		res, err := gen.Generate(ctx, content, styleCfg, compose.TargetClipboard)
		if err != nil {
			fmt.Fprintln(os.Stderr, generateFailureMessage(t, err))
			return err
		}
		if err := clipboard.WriteImage(ctx, res.Artifact.Bytes); err != nil {
			if errors.Is(err, clipboard.ErrUnsupported) {
				fmt.Fprintln(os.Stderr, t(i18n.KeyClipboardUnsupported))
			} else {
				fmt.Fprintln(os.Stderr, t(i18n.KeyClipboardError))
			}
			return err
		}
		fmt.Println(t(i18n.KeyCopiedToClipboard))
		return nil
	}

	target := compose.TargetRaster
	if strings.EqualFold(*format, "svg") {
		target = compose.TargetVector
	}
	res, err := gen.Generate(ctx, content, styleCfg, target)
	if err != nil {
		fmt.Fprintln(os.Stderr, generateFailureMessage(t, err))
		return err
	}

	path := *outPath
	if path == "" {
		path = res.Filename
	}
	out := res.Artifact.Bytes
	if res.Artifact.Kind == compose.KindVector {
		out = []byte(res.Artifact.Text)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, t(i18n.KeyDownloadError))
		return err
	}
	fmt.Printf(t(i18n.KeySavedFile)+"\n", path)
	return nil
}

// generateFailureMessage maps a pipeline error to the localized message
// shown to the user.
func generateFailureMessage(t func(i18n.Key) string, err error) string {
	switch {
	case errors.Is(err, compose.ErrLogoDecodeFailed):
		return t(i18n.KeyLogoLoadError)
	case errors.Is(err, render.ErrEmptyPayload):
		return t(i18n.KeyEmptyPayload)
	default:
		return t(i18n.KeyDownloadError)
	}
}

type contentFields struct {
	url, text                       string
	address, subject, body          string
	phone, message                  string
	ssid, password, encryption      string
	firstName, lastName, email, org string
}

func buildContent(contentType string, f contentFields) (payload.Content, error) {
	switch payload.ContentType(contentType) {
	case payload.TypeURL:
		return payload.URL{URL: f.url}, nil
	case payload.TypeText:
		return payload.Text{Text: f.text}, nil
	case payload.TypeEmail:
		return payload.Email{Address: f.address, Subject: f.subject, Body: f.body}, nil
	case payload.TypeSMS:
		return payload.SMS{Phone: f.phone, Message: f.message}, nil
	case payload.TypeWiFi:
		return payload.WiFi{SSID: f.ssid, Password: f.password, Encryption: payload.Encryption(f.encryption)}, nil
	case payload.TypeVCard:
		return payload.VCard{
			FirstName: f.firstName, LastName: f.lastName, Phone: f.phone,
			Email: f.email, Organization: f.org, URL: f.url,
		}, nil
	default:
		return nil, fmt.Errorf("unknown content type %q", contentType)
	}
}

func buildStyle(size int, fg, bg, ec string, rounded bool, logoPath string, logoSize int) (style.Config, error) {
	fgColor, err := style.ParseHexColor(fg)
	if err != nil {
		return style.Config{}, err
	}
	bgColor, err := style.ParseHexColor(bg)
	if err != nil {
		return style.Config{}, err
	}

	cfg := style.Config{
		Foreground:      fgColor,
		Background:      bgColor,
		SizePx:          size,
		ErrorCorrection: style.Level(strings.ToUpper(ec)),
	}
	if rounded {
		cfg.Corners = style.CornersRounded
	}
	if logoPath != "" {
		data, err := os.ReadFile(logoPath)
		if err != nil {
			return style.Config{}, err
		}
		cfg.Logo = &style.Logo{Image: data, SizePercent: logoSize}
	}
	return cfg, nil
}

func applyPrefFlags(p *prefs.Preferences, locale, theme string) bool {
	changed := false
	if locale != "" && locale != p.Locale {
		p.Locale = locale
		changed = true
	}
	if theme != "" && prefs.Theme(theme) != p.Theme {
		p.Theme = prefs.Theme(theme)
		changed = true
	}
	return changed
}

func prefsPath(configured string) string {
	if configured != "" {
		return configured
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "qrkit", "prefs.json")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
