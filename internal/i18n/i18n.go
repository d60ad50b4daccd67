// Package i18n holds the message catalogs for the board, the shell and the
// seed tasks. English is always loaded as the fallback.
package i18n

import (
	"fmt"
	"os"
	"strings"
)

// Supported locales.
const (
	English = "en"
	Thai    = "th"
)

// Catalog resolves message keys for one locale.
type Catalog struct {
	locale   string
	messages map[string]string
}

// New returns the catalog for locale. An empty locale is detected from the
// environment; anything unsupported falls back to English.
func New(locale string) *Catalog {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = DetectLocale()
	}
	locale = normalizeLocale(locale)

	c := &Catalog{
		locale:   English,
		messages: make(map[string]string, len(EnMessages)),
	}
	for k, v := range EnMessages {
		c.messages[k] = v
	}

	if locale == Thai {
		c.locale = Thai
		for k, v := range ThMessages {
			c.messages[k] = v
		}
	}

	return c
}

// T returns the message for key formatted with args. Unknown keys are
// returned unchanged so a missing translation is visible rather than blank.
func (c *Catalog) T(key string, args ...any) string {
	tmpl, ok := c.messages[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// Locale returns the resolved locale, always one of the supported ones.
func (c *Catalog) Locale() string {
	return c.locale
}

// Supported reports whether s names a locale with its own catalog.
func Supported(s string) bool {
	switch normalizeLocale(s) {
	case English, Thai:
		return true
	default:
		return false
	}
}

// DetectLocale reads the locale from the environment, defaulting to English.
func DetectLocale() string {
	for _, env := range []string{"TASKPAD_LANG", "LC_ALL", "LC_MESSAGES", "LANG"} {
		v := strings.TrimSpace(os.Getenv(env))
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		return normalizeLocale(v)
	}
	return English
}

func normalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return English
	}
	// th_TH.UTF-8 -> th_TH
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		s = s[:idx]
	}
	lower := strings.ToLower(strings.ReplaceAll(s, "_", "-"))

	switch {
	case lower == "th" || strings.HasPrefix(lower, "th-"):
		return Thai
	case lower == "en" || strings.HasPrefix(lower, "en-"):
		return English
	}
	return lower
}
