package temporal

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules"
	"github.com/olebedev/when/rules/en"
)

// clockPattern accepts noon, midnight, 12-hour clocks with a meridiem and
// 24-hour HH:MM, optionally prefixed by "at".
var clockPattern = regexp.MustCompile(
	`^(?:at )?(?:(noon|midnight)|(0?[1-9]|1[0-2])(?::([0-5]\d))? ?(am|pm|a\.m\.|p\.m\.)|([01]?\d|2[0-3]):([0-5]\d))$`)

// when parsers for the two clock shapes. Each holds a single rule so the
// hour rule cannot also claim the minutes of "3:30 pm".
var (
	hourParser       = newClockParser(en.Hour(rules.Override))
	hourMinuteParser = newClockParser(en.HourMinute(rules.Override))
)

func newClockParser(r rules.Rule) *when.Parser {
	p := when.New(nil)
	p.Add(r)
	return p
}

// clockAnchor is the base time handed to when; only hour and minute are read back
var clockAnchor = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// clock is a wall-clock time of day
type clock struct {
	hour, minute int
}

// parseClock returns the time of day named by a clock phrase.
func parseClock(phrase string) (clock, bool) {
	m := clockPattern.FindStringSubmatch(phrase)
	if m == nil {
		return clock{}, false
	}

	switch m[1] {
	case "noon":
		return clock{hour: 12}, true
	case "midnight":
		return clock{}, true
	}

	if m[5] != "" {
		return recognize(hourMinuteParser, m[5]+":"+m[6], "")
	}

	meridiem := strings.ReplaceAll(m[4], ".", "")
	if m[3] != "" {
		return recognize(hourMinuteParser, m[2]+":"+m[3]+" "+meridiem, meridiem)
	}
	return recognize(hourParser, m[2]+meridiem, meridiem)
}

// recognize runs a when parser over a canonical clock string and reads the
// hour and minute back. Text the parser declines is not a clock. A 12 with
// a meridiem is pinned to 00 or 12 whatever the rule set reports.
func recognize(p *when.Parser, text, meridiem string) (clock, bool) {
	r, err := p.Parse(text, clockAnchor)
	if err != nil || r == nil {
		return clock{}, false
	}

	hour, minute := r.Time.Hour(), r.Time.Minute()
	switch meridiem {
	case "am":
		hour %= 12
	case "pm":
		hour = hour%12 + 12
	}
	return clock{hour: hour, minute: minute}, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
