package temporal

import (
	"strings"
	"time"

	"github.com/teranos/nldates/errors"
	"github.com/teranos/nldates/locale"
)

// WeekStartPolicy selects the weekday that begins a week.
type WeekStartPolicy string

const (
	WeekStartSunday        WeekStartPolicy = "sunday"
	WeekStartMonday        WeekStartPolicy = "monday"
	WeekStartTuesday       WeekStartPolicy = "tuesday"
	WeekStartWednesday     WeekStartPolicy = "wednesday"
	WeekStartThursday      WeekStartPolicy = "thursday"
	WeekStartFriday        WeekStartPolicy = "friday"
	WeekStartSaturday      WeekStartPolicy = "saturday"
	WeekStartLocaleDefault WeekStartPolicy = "locale-default"
)

var policyWeekdays = map[WeekStartPolicy]time.Weekday{
	WeekStartSunday:    time.Sunday,
	WeekStartMonday:    time.Monday,
	WeekStartTuesday:   time.Tuesday,
	WeekStartWednesday: time.Wednesday,
	WeekStartThursday:  time.Thursday,
	WeekStartFriday:    time.Friday,
	WeekStartSaturday:  time.Saturday,
}

// Policies lists every accepted policy, locale default first
func Policies() []WeekStartPolicy {
	return []WeekStartPolicy{
		WeekStartLocaleDefault,
		WeekStartSunday, WeekStartMonday, WeekStartTuesday, WeekStartWednesday,
		WeekStartThursday, WeekStartFriday, WeekStartSaturday,
	}
}

// ParseWeekStartPolicy validates a policy name, case-insensitively.
// The empty string selects the locale default.
func ParseWeekStartPolicy(s string) (WeekStartPolicy, error) {
	p := WeekStartPolicy(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return WeekStartLocaleDefault, nil
	}
	if !p.Valid() {
		return "", errors.WithHint(
			errors.NewInvalidConfigurationError("unknown week start %q", s),
			"use one of sunday..saturday or locale-default")
	}
	return p, nil
}

// Valid reports whether p is one of the seven weekdays or locale-default.
func (p WeekStartPolicy) Valid() bool {
	if p == WeekStartLocaleDefault {
		return true
	}
	_, ok := policyWeekdays[p]
	return ok
}

// Weekday returns the concrete weekday of a non-locale policy.
func (p WeekStartPolicy) Weekday() (time.Weekday, bool) {
	day, ok := policyWeekdays[p]
	return day, ok
}

// PolicyFor returns the concrete policy naming a weekday.
func PolicyFor(day time.Weekday) WeekStartPolicy {
	return WeekStartPolicy(strings.ToLower(day.String()))
}

// ResolveWeekStart turns a policy into a concrete weekday. For
// locale-default the localeHint (BCP 47 or POSIX) is consulted first, then
// the initialized Environment. Without either it fails with
// ErrNotInitialized rather than guessing.
func ResolveWeekStart(policy WeekStartPolicy, localeHint string) (time.Weekday, error) {
	p, err := ParseWeekStartPolicy(string(policy))
	if err != nil {
		return 0, err
	}
	if day, ok := p.Weekday(); ok {
		return day, nil
	}

	if strings.TrimSpace(localeHint) != "" {
		tag, err := locale.Parse(localeHint)
		if err != nil {
			return 0, err
		}
		return locale.WeekStart(tag), nil
	}

	env := current()
	if env == nil {
		return 0, notInitialized("resolve week start")
	}
	return env.weekStart, nil
}
