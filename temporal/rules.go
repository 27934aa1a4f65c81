package temporal

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// rule is one grammar entry: a full-phrase pattern and the builder that
// turns its submatches into an Interpretation.
type rule struct {
	name    string
	pattern *regexp.Regexp
	build   func(m []string) (Interpretation, bool)
}

// ruleTable is ordered by priority; the first rule whose pattern matches and
// whose builder accepts the submatches wins. Filled in init because the
// compound rule classifies its date half through this same table.
var ruleTable []rule

func init() {
	ruleTable = []rule{
		{"keyword", regexp.MustCompile(`^(today|now|tomorrow|yesterday|(?:the )?day (?:after tomorrow|before yesterday))$`), buildKeyword},
		{"date-at-clock", regexp.MustCompile(`^(.+?),? at (.+)$`), buildDateAtClock},
		{"clock", clockPattern, buildClock},
		{"relative-ago", anchored(`(\d+|an?) ` + unitAlternation + ` ago`), buildRelative(-1)},
		{"relative-in", anchored(`in (\d+|an?) ` + unitAlternation), buildRelative(1)},
		{"relative-from-now", anchored(`(\d+|an?) ` + unitAlternation + ` (?:from now|later)`), buildRelative(1)},
		{"relative-bare", anchored(`(\d+|an?) ` + unitAlternation), buildRelative(1)},
		{"next-last-weekday", anchored(`(next|last) ` + weekdayAlternation), buildWeekdayStep},
		{"next-last-unit", anchored(`(next|last) (week|month|year)`), buildUnitStep},
		{"this-unit", anchored(`this (week|month|year)`), buildThisUnit},
		{"weekday", anchored(`(?:this |on )?` + weekdayAlternation), buildWeekday},
		{"iso", regexp.MustCompile(`^\d{1,4}[-/]\d{1,2}[-/]\d{1,4}(?:[t ][0-9:.+\-z]+)?$`), buildInstant},
		{"month-day", anchored(`(?:on )?` + monthAlternation + `\.? (\d{1,2})(?:st|nd|rd|th)?(?:,? (\d{4}))?`), buildMonthDay},
		{"day-month", anchored(`(?:on )?(?:the )?(\d{1,2})(?:st|nd|rd|th)?(?: of)? ` + monthAlternation + `\.?(?:,? (\d{4}))?`), buildDayMonth},
	}
}

// RuleNames lists the grammar rules in priority order
func RuleNames() []string {
	names := make([]string, len(ruleTable))
	for i, r := range ruleTable {
		names[i] = r.name
	}
	return names
}

// GrammarDigest fingerprints the rule table (names, order and patterns).
// Two builds with the same digest classify every phrase the same way.
func GrammarDigest() string {
	h := sha256.New()
	for _, r := range ruleTable {
		fmt.Fprintf(h, "%s\x00%s\x00", r.name, r.pattern.String())
	}
	return hex.EncodeToString(h.Sum(nil))[:12]
}

func anchored(expr string) *regexp.Regexp {
	return regexp.MustCompile("^" + expr + "$")
}

// Classify matches a phrase against the grammar without evaluating it.
// The phrase is normalized first (NFKC, trimmed, lower-cased, whitespace
// collapsed).
func Classify(phrase string) (Interpretation, bool) {
	return classify(normalize(phrase), nil)
}

// classify walks the rule table in order. accept, when non-nil, filters
// interpretations so the compound rule can insist on a date phrase.
func classify(phrase string, accept func(Interpretation) bool) (Interpretation, bool) {
	if phrase == "" {
		return Interpretation{}, false
	}
	for _, r := range ruleTable {
		m := r.pattern.FindStringSubmatch(phrase)
		if m == nil {
			continue
		}
		interp, ok := r.build(m)
		if !ok {
			continue
		}
		interp.Rule = r.name
		if accept != nil && !accept(interp) {
			continue
		}
		return interp, true
	}
	return Interpretation{}, false
}

func buildKeyword(m []string) (Interpretation, bool) {
	offset, ok := dayKeywords[m[1]]
	return Interpretation{Kind: KindDayOffset, Amount: offset}, ok
}

func buildDateAtClock(m []string) (Interpretation, bool) {
	c, ok := parseClock(m[2])
	if !ok {
		return Interpretation{}, false
	}
	date, ok := classify(m[1], Interpretation.datePhrase)
	if !ok {
		return Interpretation{}, false
	}
	return Interpretation{Kind: KindDateAtClock, Hour: c.hour, Minute: c.minute, Date: &date}, true
}

func buildClock(m []string) (Interpretation, bool) {
	c, ok := parseClock(m[0])
	if !ok {
		return Interpretation{}, false
	}
	return Interpretation{Kind: KindClock, Hour: c.hour, Minute: c.minute}, true
}

// buildRelative returns a builder for "<N> <unit>" shapes moving in sign's direction
func buildRelative(sign int) func(m []string) (Interpretation, bool) {
	return func(m []string) (Interpretation, bool) {
		n, ok := parseAmount(m[1])
		if !ok {
			return Interpretation{}, false
		}
		unit, ok := unitNamesByWord[m[2]]
		if !ok {
			return Interpretation{}, false
		}
		return Interpretation{Kind: KindRelative, Amount: sign * n, Unit: unit}, true
	}
}

func direction(word string) int {
	if word == "last" {
		return -1
	}
	return 1
}

func buildWeekdayStep(m []string) (Interpretation, bool) {
	day, ok := weekdayNames[m[2]]
	return Interpretation{Kind: KindWeekdayStep, Amount: direction(m[1]), Weekday: day}, ok
}

func buildUnitStep(m []string) (Interpretation, bool) {
	unit, ok := unitNamesByWord[m[2]]
	return Interpretation{Kind: KindUnitStep, Amount: direction(m[1]), Unit: unit}, ok
}

func buildThisUnit(m []string) (Interpretation, bool) {
	unit, ok := unitNamesByWord[m[1]]
	return Interpretation{Kind: KindThisUnit, Unit: unit}, ok
}

func buildWeekday(m []string) (Interpretation, bool) {
	day, ok := weekdayNames[m[1]]
	return Interpretation{Kind: KindWeekday, Weekday: day}, ok
}

// instantLayouts are tried most specific first. Layouts without a zone are
// read in the reference's location at evaluation time.
var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"01-02-2006",
}

var dateOnlyLayouts = map[string]bool{
	"2006-01-02": true,
	"2006/01/02": true,
	"01/02/2006": true,
	"01-02-2006": true,
}

// zonedLayouts carry their own offset
var zonedLayouts = map[string]bool{
	time.RFC3339Nano:         true,
	time.RFC3339:             true,
	"2006-01-02T15:04Z07:00": true,
}

func buildInstant(m []string) (Interpretation, bool) {
	literal := strings.ToUpper(m[0])
	for _, layout := range instantLayouts {
		if _, err := time.Parse(layout, literal); err == nil {
			return Interpretation{Kind: KindInstant, Layout: layout, Literal: literal}, true
		}
	}
	return Interpretation{}, false
}

func buildMonthDay(m []string) (Interpretation, bool) {
	return calendarDate(m[1], m[2], m[3])
}

func buildDayMonth(m []string) (Interpretation, bool) {
	return calendarDate(m[2], m[1], m[3])
}

// calendarDate validates written month/day/year components. Without a
// year the day must exist in some year (Feb 29 does, Apr 31 does not).
func calendarDate(monthWord, dayDigits, yearDigits string) (Interpretation, bool) {
	month, ok := monthNames[monthWord]
	if !ok {
		return Interpretation{}, false
	}
	day := atoi(dayDigits)
	year := 0
	if yearDigits != "" {
		year, _ = strconv.Atoi(yearDigits)
		if year < minYear || !validDate(year, month, day) {
			return Interpretation{}, false
		}
	} else if !validDate(leapYear, month, day) {
		return Interpretation{}, false
	}
	return Interpretation{Kind: KindCalendarDate, Year: year, Month: month, Day: day}, true
}

// leapYear is any leap year, used to ask whether a month/day ever exists
const leapYear = 2000
