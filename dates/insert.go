package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/teranos/nldates/errors"
)

// Mode selects how a parsed phrase is inserted into a document.
type Mode string

const (
	// ModeReplace inserts the formatted date as a [[wikilink]]
	ModeReplace Mode = "replace"
	// ModeLink inserts a markdown link labelled with the original phrase
	ModeLink Mode = "link"
	// ModeClean inserts the formatted date as plain text
	ModeClean Mode = "clean"
	// ModeTime inserts the phrase formatted with the time format
	ModeTime Mode = "time"
)

// Modes lists every insert mode
func Modes() []Mode {
	return []Mode{ModeReplace, ModeLink, ModeClean, ModeTime}
}

// ParseMode validates an insert mode name. Empty means replace.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeReplace, nil
	case ModeReplace, ModeLink, ModeClean, ModeTime:
		return m, nil
	}
	return "", errors.NewInvalidConfigurationError("unknown insert mode %q (supported: replace, link, clean, time)", s)
}

// Insert returns the text that replaces a selected phrase. An unparseable
// phrase returns Valid=false and leaves the text empty so the selection
// stays untouched.
func (p *Parser) Insert(phrase string, mode Mode, ref time.Time) (string, Result, error) {
	pattern := p.opts.Format
	if mode == ModeTime {
		pattern = p.opts.TimeFormat
	}

	res, err := p.ParseAt(phrase, pattern, ref)
	if err != nil {
		return "", Result{}, err
	}
	if !res.Valid {
		return "", res, nil
	}

	switch mode {
	case ModeReplace, "":
		return wikilink(res.FormattedString), res, nil
	case ModeLink:
		return fmt.Sprintf("[%s](%s)", strings.TrimSpace(phrase), res.FormattedString), res, nil
	case ModeClean, ModeTime:
		return res.FormattedString, res, nil
	}
	return "", Result{}, errors.NewInvalidConfigurationError("unknown insert mode %q", mode)
}

// Now renders ref as date, separator, time
func (p *Parser) Now(ref time.Time) string {
	ref = p.reference(ref)
	return p.maybeLink(p.formatter.Format(ref, p.opts.Format)) +
		p.opts.Separator +
		p.formatter.Format(ref, p.opts.TimeFormat)
}

// Today renders ref with the date format
func (p *Parser) Today(ref time.Time) string {
	return p.maybeLink(p.formatter.Format(p.reference(ref), p.opts.Format))
}

// CurrentTime renders ref with the time format
func (p *Parser) CurrentTime(ref time.Time) string {
	return p.formatter.Format(p.reference(ref), p.opts.TimeFormat)
}

func (p *Parser) reference(ref time.Time) time.Time {
	if ref.IsZero() {
		return timeNow()
	}
	return ref
}

func (p *Parser) maybeLink(s string) string {
	if p.opts.Link {
		return wikilink(s)
	}
	return s
}

func wikilink(s string) string {
	return "[[" + s + "]]"
}
