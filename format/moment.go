package format

import (
	"time"

	"github.com/nleeper/goment"
)

// Moment formats with moment.js tokens through goment. Text inside square
// brackets is copied verbatim ("[Week] W" -> "Week 24").
type Moment struct{}

// Format implements Formatter. An empty pattern renders nothing.
func (Moment) Format(t time.Time, pattern string) string {
	if pattern == "" {
		return ""
	}
	g, err := goment.New(t)
	if err != nil {
		return t.Format(time.RFC3339)
	}
	return g.Format(pattern)
}
