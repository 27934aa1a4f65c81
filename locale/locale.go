// Package locale resolves the locale that drives locale-dependent resolver
// behavior, currently the first day of the week.
//
// Tags are BCP 47 ("en-US", "de", "ar-EG-u-fw-sun") or POSIX locale names as
// found in LC_ALL/LC_TIME/LANG ("en_GB.UTF-8", "pt_BR@euro").
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/teranos/nldates/errors"
)

// Default is used when neither configuration nor environment name a locale.
var Default = language.AmericanEnglish

// envPrecedence lists the POSIX variables consulted by Detect, highest first
var envPrecedence = []string{"LC_ALL", "LC_TIME", "LANG"}

// Parse normalizes a BCP 47 or POSIX locale name into a language tag.
func Parse(input string) (language.Tag, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return language.Und, errors.NewInvalidConfigurationError("locale cannot be empty")
	}

	candidate := fromPOSIX(trimmed)
	if candidate == "" {
		return language.Und, errors.NewInvalidConfigurationError("locale %q carries no language", input)
	}

	tag, err := language.Parse(candidate)
	if err != nil {
		return language.Und, errors.WithDetail(
			errors.NewInvalidConfigurationError("unknown locale %q", input), err.Error())
	}
	return tag, nil
}

// Detect returns the locale named by the environment, or Default when none of
// LC_ALL, LC_TIME and LANG hold a usable value. The second return value names
// the variable the tag came from ("" for the default).
func Detect() (language.Tag, string) {
	for _, key := range envPrecedence {
		value := os.Getenv(key)
		if value == "" || isPortableLocale(value) {
			continue
		}
		if tag, err := Parse(value); err == nil {
			return tag, key
		}
	}
	return Default, ""
}

// Resolve parses the configured tag, falling back to Detect when it is empty.
func Resolve(configured string) (language.Tag, error) {
	if strings.TrimSpace(configured) == "" {
		tag, _ := Detect()
		return tag, nil
	}
	return Parse(configured)
}

// Region returns the ISO 3166 region of the tag, inferring the most likely
// one when the tag names only a language ("de" -> "DE").
func Region(tag language.Tag) string {
	region, confidence := tag.Region()
	if confidence == language.No {
		return ""
	}
	return region.String()
}

// fromPOSIX turns "en_US.UTF-8@euro" into "en-US"
func fromPOSIX(name string) string {
	if idx := strings.IndexAny(name, ".@"); idx >= 0 {
		name = name[:idx]
	}
	if isPortableLocale(name) {
		return ""
	}
	return strings.ReplaceAll(name, "_", "-")
}

// isPortableLocale reports the C/POSIX locale, which carries no region
func isPortableLocale(name string) bool {
	base := name
	if idx := strings.IndexAny(base, ".@"); idx >= 0 {
		base = base[:idx]
	}
	switch strings.ToUpper(base) {
	case "", "C", "POSIX":
		return true
	}
	return false
}
