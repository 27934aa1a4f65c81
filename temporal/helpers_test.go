package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// cest is a fixed zone so tests prove results stay in the reference's location
var cest = time.FixedZone("CEST", 2*60*60)

// wednesday is the reference used across tests: Wed 2024-06-12 15:04:05 CEST
var wednesday = time.Date(2024, time.June, 12, 15, 4, 5, 0, cest)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, cest)
}

func dateTime(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, cest)
}

// withEnvironment installs a process-wide environment for the test
func withEnvironment(t *testing.T, tag string) {
	t.Helper()
	Teardown()
	require.NoError(t, Initialize(LocaleConfig{Tag: tag}))
	t.Cleanup(Teardown)
}

// resolve resolves and requires a valid result
func resolve(t *testing.T, phrase string, ref time.Time, policy WeekStartPolicy) time.Time {
	t.Helper()
	res, err := Resolve(phrase, ref, policy)
	require.NoError(t, err)
	require.True(t, res.Valid(), "phrase %q: %v", phrase, res.Reason)
	return res.Time
}

// requireUnparseable resolves and requires the unparseable marker
func requireUnparseable(t *testing.T, phrase string, ref time.Time) Result {
	t.Helper()
	res, err := Resolve(phrase, ref, WeekStartMonday)
	require.NoError(t, err)
	require.True(t, res.Unparseable, "phrase %q resolved to %s", phrase, res.Time)
	require.False(t, res.Valid())
	return res
}
