// Package format renders resolved instants as text. The resolver itself never
// formats; callers pick a Formatter and a pattern.
package format

import (
	"strings"
	"time"

	"github.com/teranos/nldates/errors"
)

// Syntax names a pattern language
type Syntax string

const (
	// SyntaxMoment uses moment.js-style tokens ("YYYY-MM-DD", "HH:mm")
	SyntaxMoment Syntax = "moment"
	// SyntaxStrftime uses C strftime directives ("%Y-%m-%d", "%H:%M")
	SyntaxStrftime Syntax = "strftime"
)

// Default patterns, matching the settings a fresh install starts with.
const (
	DefaultDateFormat     = "YYYY-MM-DD"
	DefaultTimeFormat     = "HH:mm"
	DefaultDateTimeFormat = "YYYY-MM-DD HH:mm"
)

// Formatter renders an instant with a caller-supplied pattern.
type Formatter interface {
	Format(t time.Time, pattern string) string
}

// ParseSyntax validates a configured syntax name. Empty means moment.
func ParseSyntax(s string) (Syntax, error) {
	switch Syntax(strings.ToLower(strings.TrimSpace(s))) {
	case "", SyntaxMoment:
		return SyntaxMoment, nil
	case SyntaxStrftime:
		return SyntaxStrftime, nil
	}
	return "", errors.NewInvalidConfigurationError("unknown format syntax %q (supported: moment, strftime)", s)
}

// New returns the Formatter for a syntax.
func New(syntax Syntax) Formatter {
	if syntax == SyntaxStrftime {
		return Strftime{}
	}
	return Moment{}
}
