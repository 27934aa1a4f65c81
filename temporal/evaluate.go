package temporal

import (
	"time"

	"github.com/teranos/nldates/errors"
)

// evaluate applies the arithmetic for an interpretation. weekStart must
// already be concrete. All computation happens in ref's location.
func evaluate(in Interpretation, ref time.Time, weekStart time.Weekday) (time.Time, error) {
	t, err := arithmetic(in, ref, weekStart)
	if err != nil {
		return time.Time{}, err
	}
	if !inRange(t) {
		return time.Time{}, errors.Newf("year %d outside %d..%d", t.Year(), minYear, maxYear)
	}
	return t, nil
}

func arithmetic(in Interpretation, ref time.Time, weekStart time.Weekday) (time.Time, error) {
	day := startOfDay(ref)

	switch in.Kind {
	case KindDayOffset:
		return addDays(day, in.Amount), nil

	case KindDateAtClock:
		if in.Date == nil {
			return time.Time{}, errors.AssertionFailedf("date-at-clock without a date")
		}
		date, err := arithmetic(*in.Date, ref, weekStart)
		if err != nil {
			return time.Time{}, err
		}
		return atClock(date, clock{hour: in.Hour, minute: in.Minute}), nil

	case KindClock:
		return atClock(ref, clock{hour: in.Hour, minute: in.Minute}), nil

	case KindRelative:
		return relative(ref, in.Amount, in.Unit)

	case KindWeekdayStep:
		if in.Amount < 0 {
			back := daysUntil(in.Weekday, ref.Weekday())
			if back == 0 {
				back = 7
			}
			return addDays(day, -back), nil
		}
		ahead := daysUntil(ref.Weekday(), in.Weekday)
		if ahead == 0 {
			ahead = 7
		}
		return addDays(day, ahead), nil

	case KindUnitStep:
		return unitStart(ref, in.Unit, in.Amount, weekStart)

	case KindThisUnit:
		return unitStart(ref, in.Unit, 0, weekStart)

	case KindWeekday:
		return addDays(day, daysUntil(ref.Weekday(), in.Weekday)), nil

	case KindInstant:
		return instant(in, ref.Location())

	case KindCalendarDate:
		return calendar(in, day)
	}

	return time.Time{}, errors.AssertionFailedf("no arithmetic for kind %s", in.Kind)
}

// relative offsets calendar units from midnight and clock units from the
// exact reference instant.
func relative(ref time.Time, n int, unit Unit) (time.Time, error) {
	switch unit {
	case UnitMinute:
		return ref.Add(time.Duration(n) * time.Minute), nil
	case UnitHour:
		return ref.Add(time.Duration(n) * time.Hour), nil
	case UnitDay:
		return addDays(startOfDay(ref), n), nil
	case UnitWeek:
		return addDays(startOfDay(ref), 7*n), nil
	case UnitMonth:
		return addMonths(startOfDay(ref), n), nil
	case UnitYear:
		return addMonths(startOfDay(ref), 12*n), nil
	}
	return time.Time{}, errors.AssertionFailedf("no relative arithmetic for unit %s", unit)
}

// unitStart returns the start of the week, month or year containing ref,
// moved by steps whole units.
func unitStart(ref time.Time, unit Unit, steps int, weekStart time.Weekday) (time.Time, error) {
	switch unit {
	case UnitWeek:
		return addDays(startOfWeek(ref, weekStart), 7*steps), nil
	case UnitMonth:
		return addMonths(startOfMonth(ref), steps), nil
	case UnitYear:
		return addMonths(startOfYear(ref), 12*steps), nil
	}
	return time.Time{}, errors.AssertionFailedf("no unit start for %s", unit)
}

func instant(in Interpretation, loc *time.Location) (time.Time, error) {
	if zonedLayouts[in.Layout] {
		return time.Parse(in.Layout, in.Literal)
	}
	return time.ParseInLocation(in.Layout, in.Literal, loc)
}

// calendar resolves a written date. Without a year it picks the next
// occurrence on or after the reference day; Feb 29 waits for a leap year.
func calendar(in Interpretation, day time.Time) (time.Time, error) {
	if in.Year != 0 {
		if !validDate(in.Year, in.Month, in.Day) {
			return time.Time{}, errors.Newf("%s %d is not a day of %d", in.Month, in.Day, in.Year)
		}
		return time.Date(in.Year, in.Month, in.Day, 0, 0, 0, 0, day.Location()), nil
	}

	// leap days recur within eight years
	for year := day.Year(); year <= day.Year()+8 && year <= maxYear; year++ {
		if !validDate(year, in.Month, in.Day) {
			continue
		}
		candidate := time.Date(year, in.Month, in.Day, 0, 0, 0, 0, day.Location())
		if !candidate.Before(day) {
			return candidate, nil
		}
	}
	return time.Time{}, errors.Newf("no %s %d on or after %s", in.Month, in.Day, day.Format(time.DateOnly))
}
