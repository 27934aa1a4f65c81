package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/nldates/errors"
)

func TestKeywordsResolveToMidnight(t *testing.T) {
	withEnvironment(t, "en-US")

	refs := []time.Time{
		wednesday,
		dateTime(2024, time.January, 31, 23, 59, 59),
		dateTime(2023, time.December, 31, 10, 0, 0),
		dateTime(2024, time.February, 29, 0, 0, 0),
		dateTime(2024, time.March, 1, 0, 0, 1),
	}

	for _, ref := range refs {
		t.Run(ref.Format(time.DateOnly), func(t *testing.T) {
			midnight := date(ref.Year(), ref.Month(), ref.Day())

			assert.Equal(t, midnight, resolve(t, "today", ref, ""))
			assert.Equal(t, midnight, resolve(t, "now", ref, ""))
			assert.Equal(t, midnight.AddDate(0, 0, 1), resolve(t, "tomorrow", ref, ""))
			assert.Equal(t, midnight.AddDate(0, 0, -1), resolve(t, "yesterday", ref, ""))
			assert.Equal(t, midnight.AddDate(0, 0, 2), resolve(t, "day after tomorrow", ref, ""))
			assert.Equal(t, midnight.AddDate(0, 0, -2), resolve(t, "the day before yesterday", ref, ""))
		})
	}
}

func TestTomorrowEqualsInOneDay(t *testing.T) {
	withEnvironment(t, "en-US")

	start := dateTime(2023, time.December, 25, 8, 30, 0)
	for i := 0; i < 400; i += 3 {
		ref := start.AddDate(0, 0, i)
		assert.Equal(t, resolve(t, "in 1 day", ref, ""), resolve(t, "tomorrow", ref, ""), ref)
	}
}

func TestRelativeOffsets(t *testing.T) {
	withEnvironment(t, "en-US")

	tests := []struct {
		phrase string
		want   time.Time
	}{
		{"3 days ago", date(2024, time.June, 9)},
		{"in 3 days", date(2024, time.June, 15)},
		{"2 weeks ago", date(2024, time.May, 29)},
		{"in 2 weeks", date(2024, time.June, 26)},
		{"a week", date(2024, time.June, 19)},
		{"0 days", date(2024, time.June, 12)},
		{"3 days from now", date(2024, time.June, 15)},
		{"in 1 month", date(2024, time.July, 12)},
		{"1 year ago", date(2023, time.June, 12)},
		{"in a year", date(2025, time.June, 12)},
		{"an hour ago", dateTime(2024, time.June, 12, 14, 4, 5)},
		{"in 90 minutes", dateTime(2024, time.June, 12, 16, 34, 5)},
		{"2 hrs from now", dateTime(2024, time.June, 12, 17, 4, 5)},
		{"5 mins later", dateTime(2024, time.June, 12, 15, 9, 5)},
		{"in 10 hours", dateTime(2024, time.June, 13, 1, 4, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(t, tt.phrase, wednesday, ""))
		})
	}
}

func TestMonthArithmeticClamps(t *testing.T) {
	withEnvironment(t, "en-US")

	tests := []struct {
		name   string
		phrase string
		ref    time.Time
		want   time.Time
	}{
		{"leap year", "in 1 month", date(2024, time.January, 31), date(2024, time.February, 29)},
		{"common year", "in 1 month", date(2023, time.January, 31), date(2023, time.February, 28)},
		{"backwards into february", "1 month ago", date(2024, time.March, 31), date(2024, time.February, 29)},
		{"thirty day month", "in 1 month", date(2024, time.May, 31), date(2024, time.June, 30)},
		{"leap day plus a year", "in 1 year", date(2024, time.February, 29), date(2025, time.February, 28)},
		{"across year end", "in 2 months", date(2023, time.December, 31), date(2024, time.February, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(t, tt.phrase, tt.ref, ""))
		})
	}
}

func TestWeekStartSensitivity(t *testing.T) {
	withEnvironment(t, "en-US")

	monday := resolve(t, "next week", wednesday, WeekStartMonday)
	sunday := resolve(t, "next week", wednesday, WeekStartSunday)

	assert.Equal(t, date(2024, time.June, 17), monday)
	assert.Equal(t, date(2024, time.June, 16), sunday)
	assert.NotEqual(t, monday, sunday)
	assert.LessOrEqual(t, monday.Sub(sunday).Abs(), 6*24*time.Hour)

	assert.Equal(t, date(2024, time.June, 15), resolve(t, "next week", wednesday, WeekStartSaturday))
	assert.Equal(t, date(2024, time.June, 10), resolve(t, "this week", wednesday, WeekStartMonday))
	assert.Equal(t, date(2024, time.June, 9), resolve(t, "this week", wednesday, WeekStartSunday))
	assert.Equal(t, date(2024, time.June, 3), resolve(t, "last week", wednesday, WeekStartMonday))
	assert.Equal(t, date(2024, time.June, 12), resolve(t, "this week", wednesday, WeekStartWednesday))
}

func TestWeekStartOnReferenceDay(t *testing.T) {
	withEnvironment(t, "en-US")

	monday := dateTime(2024, time.June, 10, 9, 0, 0)
	assert.Equal(t, date(2024, time.June, 10), resolve(t, "this week", monday, WeekStartMonday))
	assert.Equal(t, date(2024, time.June, 17), resolve(t, "next week", monday, WeekStartMonday))
	assert.Equal(t, date(2024, time.June, 9), resolve(t, "this week", monday, WeekStartSunday))
}

func TestLocaleDefaultWeekStart(t *testing.T) {
	withEnvironment(t, "en-US")
	assert.Equal(t, date(2024, time.June, 16), resolve(t, "next week", wednesday, WeekStartLocaleDefault))
	assert.Equal(t, date(2024, time.June, 16), resolve(t, "next week", wednesday, ""))

	withEnvironment(t, "en-GB")
	assert.Equal(t, date(2024, time.June, 17), resolve(t, "next week", wednesday, WeekStartLocaleDefault))
}

func TestMonthAndYearSteps(t *testing.T) {
	withEnvironment(t, "en-US")

	tests := []struct {
		phrase string
		want   time.Time
	}{
		{"next month", date(2024, time.July, 1)},
		{"last month", date(2024, time.May, 1)},
		{"this month", date(2024, time.June, 1)},
		{"next year", date(2025, time.January, 1)},
		{"last year", date(2023, time.January, 1)},
		{"this year", date(2024, time.January, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(t, tt.phrase, wednesday, ""))
		})
	}

	assert.Equal(t, date(2024, time.January, 1), resolve(t, "next month", date(2023, time.December, 31), ""))
}

func TestNextLastWeekday(t *testing.T) {
	withEnvironment(t, "en-US")

	tests := []struct {
		phrase string
		want   time.Time
	}{
		{"next monday", date(2024, time.June, 17)},
		{"next wednesday", date(2024, time.June, 19)},
		{"next thu", date(2024, time.June, 13)},
		{"next sun", date(2024, time.June, 16)},
		{"last monday", date(2024, time.June, 10)},
		{"last wednesday", date(2024, time.June, 5)},
		{"last tues", date(2024, time.June, 11)},
		{"last thurs", date(2024, time.June, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(t, tt.phrase, wednesday, ""))
		})
	}
}

func TestWeekdayPhrasesIgnoreWeekStart(t *testing.T) {
	withEnvironment(t, "en-US")

	phrases := []string{"next monday", "last friday", "sunday", "this saturday"}
	for day := 0; day < 14; day++ {
		ref := wednesday.AddDate(0, 0, day)
		for _, phrase := range phrases {
			want := resolve(t, phrase, ref, WeekStartMonday)
			for _, policy := range Policies() {
				assert.Equal(t, want, resolve(t, phrase, ref, policy), "%s from %s with %s", phrase, ref, policy)
			}
		}
	}
}

func TestBareWeekday(t *testing.T) {
	withEnvironment(t, "en-US")

	tests := []struct {
		phrase string
		want   time.Time
	}{
		{"wednesday", date(2024, time.June, 12)},
		{"thursday", date(2024, time.June, 13)},
		{"tuesday", date(2024, time.June, 18)},
		{"on friday", date(2024, time.June, 14)},
		{"this monday", date(2024, time.June, 17)},
		{"Sat", date(2024, time.June, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(t, tt.phrase, wednesday, ""))
		})
	}
}

func TestAbsoluteLiteralsIgnoreReference(t *testing.T) {
	withEnvironment(t, "en-US")

	refs := []time.Time{wednesday, date(1999, time.January, 1), dateTime(2031, time.October, 5, 23, 0, 0)}
	for _, phrase := range []string{"2024-03-01", "2024-03-01T10:30:00Z", "March 1, 2024", "1st of march 2024"} {
		first := resolve(t, phrase, refs[0], "")
		for _, ref := range refs[1:] {
			assert.Equal(t, first, resolve(t, phrase, ref, ""), "%s from %s", phrase, ref)
		}
	}
}

func TestISOLiterals(t *testing.T) {
	withEnvironment(t, "en-US")

	tests := []struct {
		phrase string
		want   time.Time
	}{
		{"2024-01-15", date(2024, time.January, 15)},
		{"2024/01/15", date(2024, time.January, 15)},
		{"01/15/2024", date(2024, time.January, 15)},
		{"01-15-2024", date(2024, time.January, 15)},
		{"2024-01-15 14:30", dateTime(2024, time.January, 15, 14, 30, 0)},
		{"2024-01-15T14:30:45", dateTime(2024, time.January, 15, 14, 30, 45)},
		{"2024-01-15T10:30:00Z", time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-01-15t10:30:00+05:00", time.Date(2024, time.January, 15, 5, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got := resolve(t, tt.phrase, wednesday, "")
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}

	for _, phrase := range []string{"2024-02-30", "2024-13-01", "2023-02-29", "0000-01-01", "2024-00-10"} {
		t.Run(phrase, func(t *testing.T) {
			requireUnparseable(t, phrase, wednesday)
		})
	}
}

func TestWrittenDates(t *testing.T) {
	withEnvironment(t, "en-US")

	tests := []struct {
		phrase string
		want   time.Time
	}{
		{"January 15", date(2025, time.January, 15)},
		{"june 12", date(2024, time.June, 12)},
		{"June 13th", date(2024, time.June, 13)},
		{"jan. 15", date(2025, time.January, 15)},
		{"15 jan 2024", date(2024, time.January, 15)},
		{"15th of January", date(2025, time.January, 15)},
		{"Jan 15, 2024", date(2024, time.January, 15)},
		{"on the 1st of july", date(2024, time.July, 1)},
		{"sept 3", date(2024, time.September, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(t, tt.phrase, wednesday, ""))
		})
	}
}

func TestMissingYearPicksNextOccurrence(t *testing.T) {
	withEnvironment(t, "en-US")

	// on or after the reference day, today included
	assert.Equal(t, date(2024, time.June, 12), resolve(t, "june 12", wednesday, ""))
	assert.Equal(t, date(2025, time.June, 11), resolve(t, "june 11", wednesday, ""))
	assert.Equal(t, date(2024, time.December, 31), resolve(t, "dec 31", wednesday, ""))

	// leap day waits for the next leap year
	assert.Equal(t, date(2028, time.February, 29), resolve(t, "feb 29", wednesday, ""))
	assert.Equal(t, date(2024, time.February, 29), resolve(t, "feb 29", date(2023, time.March, 1), ""))
}

func TestInvalidCalendarComponents(t *testing.T) {
	withEnvironment(t, "en-US")

	for _, phrase := range []string{"feb 30", "april 31", "january 32", "feb 29 2023", "0 jan", "31st of june"} {
		t.Run(phrase, func(t *testing.T) {
			requireUnparseable(t, phrase, wednesday)
		})
	}
}

func TestClockPhrases(t *testing.T) {
	withEnvironment(t, "en-US")

	tests := []struct {
		phrase string
		hour   int
		minute int
	}{
		{"noon", 12, 0},
		{"midnight", 0, 0},
		{"3pm", 15, 0},
		{"3 pm", 15, 0},
		{"3:30 pm", 15, 30},
		{"15:45", 15, 45},
		{"at 9am", 9, 0},
		{"9:05 a.m.", 9, 5},
		{"12am", 0, 0},
		{"12pm", 12, 0},
		{"00:30", 0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			want := dateTime(2024, time.June, 12, tt.hour, tt.minute, 0)
			assert.Equal(t, want, resolve(t, tt.phrase, wednesday, ""))
		})
	}

	for _, phrase := range []string{"25:00", "13pm", "3:60 pm", "at"} {
		t.Run(phrase, func(t *testing.T) {
			requireUnparseable(t, phrase, wednesday)
		})
	}
}

func TestDateAtClock(t *testing.T) {
	withEnvironment(t, "en-US")

	tests := []struct {
		phrase string
		want   time.Time
	}{
		{"tomorrow at 3pm", dateTime(2024, time.June, 13, 15, 0, 0)},
		{"next friday at 09:30", dateTime(2024, time.June, 14, 9, 30, 0)},
		{"next friday, at 9am", dateTime(2024, time.June, 14, 9, 0, 0)},
		{"jan 15 2025 at noon", dateTime(2025, time.January, 15, 12, 0, 0)},
		{"2024-06-20 at 8pm", dateTime(2024, time.June, 20, 20, 0, 0)},
		{"in 2 days at midnight", dateTime(2024, time.June, 14, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(t, tt.phrase, wednesday, ""))
		})
	}

	for _, phrase := range []string{"in 2 hours at 3pm", "tomorrow at teatime", "noon at 3pm"} {
		t.Run(phrase, func(t *testing.T) {
			requireUnparseable(t, phrase, wednesday)
		})
	}
}

func TestNoiseIsUnparseable(t *testing.T) {
	withEnvironment(t, "en-US")

	for _, phrase := range []string{"asdkjf", "", "   ", "next funday", "in days", "3 parsecs ago", "tomorrow tomorrow", "-3 days", "in 1000001 days"} {
		t.Run(phrase, func(t *testing.T) {
			res := requireUnparseable(t, phrase, wednesday)
			assert.True(t, errors.IsUnparseable(res.Reason))

			var perr *ParseError
			require.True(t, errors.As(res.Reason, &perr))
			assert.Equal(t, SeverityError, perr.Severity)
		})
	}
}

func TestOutOfRangeIsUnparseable(t *testing.T) {
	withEnvironment(t, "en-US")

	res := requireUnparseable(t, "in 1000000 years", wednesday)
	assert.Equal(t, "relative-in", res.Rule)
	assert.Equal(t, KindRelative, res.Kind)

	var perr *ParseError
	require.True(t, errors.As(res.Reason, &perr))
	assert.Equal(t, ErrorKindOutOfRange, perr.Kind)
	assert.True(t, errors.IsUnparseable(res.Reason))

	requireUnparseable(t, "3000 years ago", wednesday)
}

func TestRoundTripThroughISO(t *testing.T) {
	withEnvironment(t, "en-US")

	phrases := []string{
		"today", "tomorrow", "in 3 days", "2 weeks ago", "next friday", "last month",
		"next week", "this year", "monday", "January 15", "3:30 pm", "in 90 minutes",
		"tomorrow at 3pm", "2024-01-15T10:30:00Z",
	}
	other := dateTime(2001, time.September, 9, 1, 46, 40)

	for _, phrase := range phrases {
		t.Run(phrase, func(t *testing.T) {
			resolved := resolve(t, phrase, wednesday, WeekStartMonday)

			iso := resolved.Format(time.RFC3339Nano)
			again, err := Resolve(iso, other, WeekStartSunday)
			require.NoError(t, err)
			require.True(t, again.Valid(), iso)
			assert.Equal(t, KindInstant, again.Kind)
			assert.True(t, resolved.Equal(again.Time), "%s != %s", resolved, again.Time)
		})
	}
}

func TestResolveDefaultsReferenceToNow(t *testing.T) {
	withEnvironment(t, "en-US")

	original := timeNow
	timeNow = func() time.Time { return wednesday }
	t.Cleanup(func() { timeNow = original })

	res, err := ResolveRequest(Request{Phrase: "tomorrow"})
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.June, 13), res.Time)
	assert.Equal(t, "keyword", res.Rule)
	assert.Equal(t, KindDayOffset, res.Kind)
}

func TestResolveRejectsUnknownPolicy(t *testing.T) {
	withEnvironment(t, "en-US")

	_, err := Resolve("next week", wednesday, WeekStartPolicy("funday"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfiguration(err))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestResolveNormalizesInput(t *testing.T) {
	withEnvironment(t, "en-US")

	assert.Equal(t, date(2024, time.June, 14), resolve(t, "  NEXT   Friday ", wednesday, ""))
	assert.Equal(t, date(2024, time.June, 15), resolve(t, "in ３ days", wednesday, ""))
	assert.Equal(t, date(2024, time.June, 13), resolve(t, "Tomorrow ", wednesday, ""))
}

func TestEnvironmentResolveWithoutGlobalState(t *testing.T) {
	Teardown()

	env, err := NewEnvironment(LocaleConfig{Tag: "de-DE"})
	require.NoError(t, err)

	res, err := env.Resolve(Request{Phrase: "next week", Reference: wednesday})
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.June, 17), res.Time)
	assert.False(t, Initialized())
}
