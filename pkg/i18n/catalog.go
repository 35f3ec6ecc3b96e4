package i18n

import (
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLocale is the catalog fallback, matching the product default.
const DefaultLocale = "fr"

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	// ErrNoLocales is returned when no locale files could be loaded.
	ErrNoLocales = errors.New("no locale catalogs found")
	// ErrIncompleteCatalog is returned when a locale misses a message key.
	ErrIncompleteCatalog = errors.New("locale catalog is incomplete")
	// ErrUnknownKey is returned when a locale defines a key outside the
	// closed set.
	ErrUnknownKey = errors.New("locale catalog defines unknown key")
)

// Catalog maps the closed message key set to localized strings per
// locale. Completeness across locales is checked at construction, so a
// built catalog can always answer every key in every locale.
type Catalog struct {
	messages map[string]map[Key]string
	tags     []language.Tag
	locales  []string
	matcher  language.Matcher
}

// NewCatalog loads the embedded locale files and validates them against
// the key set.
func NewCatalog() (*Catalog, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, errors.Join(ErrNoLocales, err)
	}

	known := make(map[Key]bool, len(Keys()))
	for _, k := range Keys() {
		known[k] = true
	}

	c := &Catalog{messages: make(map[string]map[Key]string)}
	for _, entry := range entries {
		locale := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))

		data, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, errors.Join(ErrNoLocales, err)
		}
		var raw map[string]string
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
		}

		msgs := make(map[Key]string, len(raw))
		for k, v := range raw {
			if !known[Key(k)] {
				return nil, fmt.Errorf("%w: %q in locale %q", ErrUnknownKey, k, locale)
			}
			msgs[Key(k)] = v
		}
		for _, k := range Keys() {
			if msgs[k] == "" {
				return nil, fmt.Errorf("%w: locale %q misses %q", ErrIncompleteCatalog, locale, k)
			}
		}

		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("invalid locale name %q: %w", locale, err)
		}
		c.messages[locale] = msgs
		c.tags = append(c.tags, tag)
		c.locales = append(c.locales, locale)
	}

	if len(c.locales) == 0 {
		return nil, ErrNoLocales
	}
	if _, ok := c.messages[DefaultLocale]; !ok {
		return nil, fmt.Errorf("%w: default locale %q missing", ErrNoLocales, DefaultLocale)
	}
	sort.Strings(c.locales)
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// Locales lists the supported locale codes.
func (c *Catalog) Locales() []string {
	out := make([]string, len(c.locales))
	copy(out, c.locales)
	return out
}

// T resolves a message for a locale. Unknown or regional locales match
// their base language ("en-GB" resolves to "en"); anything unmatchable
// falls back to the default locale.
func (c *Catalog) T(locale string, key Key) string {
	if msgs, ok := c.messages[locale]; ok {
		return msgs[key]
	}

	if tag, err := language.Parse(locale); err == nil {
		_, idx, conf := c.matcher.Match(tag)
		if conf > language.No {
			base, _ := c.tags[idx].Base()
			if msgs, ok := c.messages[base.String()]; ok {
				return msgs[key]
			}
		}
	}
	return c.messages[DefaultLocale][key]
}
