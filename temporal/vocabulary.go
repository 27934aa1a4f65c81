package temporal

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// maxAmount bounds relative offsets so hour arithmetic stays within time.Duration
const maxAmount = 1_000_000

// weekdayNames maps day names (full and abbreviated) to weekdays
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"thur":      time.Thursday,
	"thurs":     time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// monthNames maps month names (full and abbreviated) to months
var monthNames = map[string]time.Month{
	"january":   time.January,
	"jan":       time.January,
	"february":  time.February,
	"feb":       time.February,
	"march":     time.March,
	"mar":       time.March,
	"april":     time.April,
	"apr":       time.April,
	"may":       time.May,
	"june":      time.June,
	"jun":       time.June,
	"july":      time.July,
	"jul":       time.July,
	"august":    time.August,
	"aug":       time.August,
	"september": time.September,
	"sept":      time.September,
	"sep":       time.September,
	"october":   time.October,
	"oct":       time.October,
	"november":  time.November,
	"nov":       time.November,
	"december":  time.December,
	"dec":       time.December,
}

// unitNamesByWord maps unit words, singular, plural and abbreviated
var unitNamesByWord = map[string]Unit{
	"minute": UnitMinute, "minutes": UnitMinute, "min": UnitMinute, "mins": UnitMinute,
	"hour": UnitHour, "hours": UnitHour, "hr": UnitHour, "hrs": UnitHour,
	"day": UnitDay, "days": UnitDay,
	"week": UnitWeek, "weeks": UnitWeek,
	"month": UnitMonth, "months": UnitMonth,
	"year": UnitYear, "years": UnitYear,
}

// dayKeywords maps literal keywords to day offsets
var dayKeywords = map[string]int{
	"today":                    0,
	"now":                      0,
	"tomorrow":                 1,
	"yesterday":                -1,
	"day after tomorrow":       2,
	"the day after tomorrow":   2,
	"day before yesterday":     -2,
	"the day before yesterday": -2,
}

// Regexp alternations built from the maps above, longest names first so
// the alternation never stops at a prefix.
var (
	weekdayAlternation = alternation(weekdayNames)
	monthAlternation   = alternation(monthNames)
	unitAlternation    = alternation(unitNamesByWord)
)

func alternation[V any](words map[string]V) string {
	keys := make([]string, 0, len(words))
	for word := range words {
		keys = append(keys, word)
	}
	sortLongestFirst(keys)
	return "(" + strings.Join(keys, "|") + ")"
}

func sortLongestFirst(words []string) {
	slices.SortFunc(words, func(a, b string) int {
		if n := cmp.Compare(len(b), len(a)); n != 0 {
			return n
		}
		return cmp.Compare(a, b)
	})
}

// parseAmount reads "a"/"an" as one, otherwise a bounded decimal integer
func parseAmount(s string) (int, bool) {
	if s == "a" || s == "an" {
		return 1, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > maxAmount {
		return 0, false
	}
	return n, true
}

// vocabulary is every word the grammar knows, used for suggestions
func vocabulary() []string {
	words := []string{"ago", "in", "next", "last", "this", "on", "at", "from", "later", "noon", "midnight", "of"}
	for word := range dayKeywords {
		if !strings.Contains(word, " ") {
			words = append(words, word)
		}
	}
	for word := range weekdayNames {
		words = append(words, word)
	}
	for word := range monthNames {
		words = append(words, word)
	}
	for word := range unitNamesByWord {
		words = append(words, word)
	}
	sortLongestFirst(words)
	return words
}
