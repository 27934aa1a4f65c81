package temporal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Kind tags which arithmetic an Interpretation needs.
type Kind int

const (
	KindUnknown     Kind = iota
	KindDayOffset        // "today", "tomorrow", "day after tomorrow"
	KindDateAtClock      // "tomorrow at 3pm"
	KindClock            // "noon", "15:45"
	KindRelative         // "3 days ago", "in 2 weeks"
	KindWeekdayStep      // "next monday", "last fri"
	KindUnitStep         // "next week", "last month"
	KindThisUnit         // "this week"
	KindWeekday          // "monday", "on monday"
	KindInstant          // "2024-01-15", RFC 3339
	KindCalendarDate     // "January 15", "15th of jan 2024"
)

var kindNames = map[Kind]string{
	KindUnknown:      "unknown",
	KindDayOffset:    "day-offset",
	KindDateAtClock:  "date-at-clock",
	KindClock:        "clock",
	KindRelative:     "relative",
	KindWeekdayStep:  "weekday-step",
	KindUnitStep:     "unit-step",
	KindThisUnit:     "this-unit",
	KindWeekday:      "weekday",
	KindInstant:      "instant",
	KindCalendarDate: "calendar-date",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText renders the kind by name for JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Unit is a calendar or clock unit used by relative phrases.
type Unit int

const (
	UnitNone Unit = iota
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear
)

var unitNames = map[Unit]string{
	UnitNone:   "none",
	UnitMinute: "minute",
	UnitHour:   "hour",
	UnitDay:    "day",
	UnitWeek:   "week",
	UnitMonth:  "month",
	UnitYear:   "year",
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("unit(%d)", int(u))
}

// MarshalText renders the unit by name for JSON output.
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// clockBased reports whether the unit moves the clock instead of the calendar
func (u Unit) clockBased() bool {
	return u == UnitMinute || u == UnitHour
}

// Interpretation is the classifier's tagged output. Only the fields the Kind
// uses are set.
type Interpretation struct {
	Kind Kind   `json:"kind"`
	Rule string `json:"rule"`

	// Amount is a signed offset: days for KindDayOffset, units for
	// KindRelative, +1/-1 for the step kinds.
	Amount int  `json:"amount,omitempty"`
	Unit   Unit `json:"unit,omitempty"`

	Weekday time.Weekday `json:"-"`

	// Calendar components; Year is 0 when the phrase omits it.
	Year  int        `json:"year,omitempty"`
	Month time.Month `json:"month,omitempty"`
	Day   int        `json:"day,omitempty"`

	Hour   int `json:"-"`
	Minute int `json:"-"`

	// Layout and Literal describe a KindInstant match.
	Layout  string `json:"layout,omitempty"`
	Literal string `json:"literal,omitempty"`

	// Date is the date half of a KindDateAtClock phrase.
	Date *Interpretation `json:"date,omitempty"`
}

// MarshalJSON writes the weekday by name and the clock fields whenever the
// kind carries them, so Sunday and midnight survive the encoding.
func (i Interpretation) MarshalJSON() ([]byte, error) {
	type Alias Interpretation
	out := struct {
		Alias
		Weekday string `json:"weekday,omitempty"`
		Hour    *int   `json:"hour,omitempty"`
		Minute  *int   `json:"minute,omitempty"`
	}{Alias: Alias(i)}

	switch i.Kind {
	case KindWeekday, KindWeekdayStep:
		out.Weekday = strings.ToLower(i.Weekday.String())
	case KindClock, KindDateAtClock:
		out.Hour, out.Minute = &i.Hour, &i.Minute
	}
	return json.Marshal(out)
}

// datePhrase reports whether the interpretation names a calendar day without
// carrying a time of day, so it can anchor "<date> at <clock>".
func (i Interpretation) datePhrase() bool {
	switch i.Kind {
	case KindDayOffset, KindWeekdayStep, KindUnitStep, KindThisUnit, KindWeekday, KindCalendarDate:
		return true
	case KindRelative:
		return !i.Unit.clockBased()
	case KindInstant:
		return dateOnlyLayouts[i.Layout]
	}
	return false
}
