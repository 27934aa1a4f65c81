package temporal

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pterm/pterm"
	"github.com/teranos/nldates/errors"
)

// ErrorSeverity indicates the severity level of a resolution error
type ErrorSeverity string

const (
	SeverityError   ErrorSeverity = "error"   // Phrase cannot be resolved
	SeverityWarning ErrorSeverity = "warning" // Resolved, but worth flagging
	SeverityHint    ErrorSeverity = "hint"    // Suggestions for improvement
)

// ErrorKind categorizes resolution failures for programmatic handling
type ErrorKind string

const (
	ErrorKindEmpty      ErrorKind = "empty"        // Nothing left after normalization
	ErrorKindNoMatch    ErrorKind = "no-match"     // No grammar rule matched
	ErrorKindOutOfRange ErrorKind = "out-of-range" // Rule matched, arithmetic left the calendar
)

// ErrorContext indicates where a ParseError will be displayed
type ErrorContext string

const (
	// ErrorContextTerminal renders with ANSI colors
	ErrorContextTerminal ErrorContext = "terminal"
	// ErrorContextPlain renders without ANSI codes (logs, JSON)
	ErrorContextPlain ErrorContext = "plain"
)

// ParseError explains why a phrase is unparseable. It always wraps
// errors.ErrUnparseable.
type ParseError struct {
	Err         error         // Underlying error
	Kind        ErrorKind     // Error category
	Severity    ErrorSeverity // Error severity
	Message     string        // Human-readable message
	Phrase      string        // Normalized phrase
	Rule        string        // Matched rule, empty for no-match
	Suggestions []string      // Possible fixes
}

// Error implements error interface
func (e *ParseError) Error() string {
	return e.FormatError(ErrorContextPlain)
}

// FormatError generates context-appropriate error message
func (e *ParseError) FormatError(ctx ErrorContext) string {
	if ctx == ErrorContextTerminal {
		return e.formatTerminalError()
	}
	return e.formatPlainError()
}

// formatPlainError creates concise error for logs
func (e *ParseError) formatPlainError() string {
	msg := e.Message
	if e.Rule != "" {
		msg += fmt.Sprintf(" (rule %s)", e.Rule)
	}
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(". Suggestions: %s", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// formatTerminalError creates rich colored error for terminal
func (e *ParseError) formatTerminalError() string {
	var baseMsg string
	switch e.Severity {
	case SeverityError:
		baseMsg = pterm.Red(e.Message)
	case SeverityWarning:
		baseMsg = pterm.Yellow(e.Message)
	case SeverityHint:
		baseMsg = pterm.LightCyan(e.Message)
	default:
		baseMsg = e.Message
	}

	context := fmt.Sprintf("\n\n%s", pterm.LightCyan("Context:"))
	context += fmt.Sprintf("\n  %s %q", pterm.Yellow("Phrase:"), e.Phrase)
	if e.Rule != "" {
		context += fmt.Sprintf("\n  %s %s", pterm.Yellow("Rule:"), e.Rule)
	}

	if len(e.Suggestions) > 0 {
		context += fmt.Sprintf("\n\n%s", pterm.Green("Suggestions:"))
		for _, suggestion := range e.Suggestions {
			context += fmt.Sprintf("\n  • %s", suggestion)
		}
	}

	return baseMsg + context
}

// Unwrap for errors.Is/As compatibility
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError creates a ParseError wrapping ErrUnparseable
func newParseError(kind ErrorKind, phrase, message string) *ParseError {
	return &ParseError{
		Err:      errors.ErrUnparseable,
		Kind:     kind,
		Severity: SeverityError,
		Message:  message,
		Phrase:   phrase,
	}
}

// WithRule records the rule that matched before arithmetic failed
func (e *ParseError) WithRule(rule string) *ParseError {
	e.Rule = rule
	return e
}

// WithSuggestion adds a suggestion for fixing the error
func (e *ParseError) WithSuggestion(suggestion string) *ParseError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithUnderlying wraps cause so both it and ErrUnparseable are visible to errors.Is
func (e *ParseError) WithUnderlying(cause error) *ParseError {
	e.Err = errors.Mark(cause, errors.ErrUnparseable)
	return e
}

// maxSuggestionDistance is the Levenshtein distance under which an unknown
// word is treated as a misspelling
const maxSuggestionDistance = 2

var knownWords = vocabulary()

// suggest proposes the phrase with misspelled words replaced by their
// nearest known word ("tomorow" → "tomorrow").
func suggest(phrase string) (string, bool) {
	words := strings.Fields(phrase)
	changed := false
	for i, word := range words {
		if isKnownWord(word) {
			continue
		}
		if best, ok := closestWord(word); ok {
			words[i] = best
			changed = true
		}
	}
	if !changed {
		return "", false
	}
	return strings.Join(words, " "), true
}

func isKnownWord(word string) bool {
	if _, err := strconv.Atoi(word); err == nil {
		return true
	}
	return slices.Contains(knownWords, word)
}

func closestWord(word string) (string, bool) {
	if len(word) < 3 {
		return "", false
	}
	best, bestDistance := "", maxSuggestionDistance+1
	for _, known := range knownWords {
		if d := fuzzy.LevenshteinDistance(word, known); d < bestDistance {
			best, bestDistance = known, d
		}
	}
	return best, best != ""
}
