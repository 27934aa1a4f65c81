package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/nldates/errors"
)

func TestInsertModes(t *testing.T) {
	p := newParser(t, nil)

	tests := []struct {
		mode Mode
		want string
	}{
		{ModeReplace, "[[2024-06-13]]"},
		{ModeLink, "[tomorrow at 3pm](2024-06-13)"},
		{ModeClean, "2024-06-13"},
		{ModeTime, "15:00"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			text, res, err := p.Insert("tomorrow at 3pm", tt.mode, wednesday)
			require.NoError(t, err)
			assert.True(t, res.Valid)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestInsertUnparseableLeavesSelection(t *testing.T) {
	p := newParser(t, nil)

	text, res, err := p.Insert("someday", ModeReplace, wednesday)
	require.NoError(t, err)
	assert.Empty(t, text)
	assert.False(t, res.Valid)
	assert.Equal(t, InvalidDate, res.FormattedString)
}

func TestParseMode(t *testing.T) {
	for _, mode := range Modes() {
		got, err := ParseMode(string(mode))
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	got, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeReplace, got)

	_, err = ParseMode("embed")
	assert.True(t, errors.IsInvalidConfiguration(err))
}

func TestNowTodayCurrentTime(t *testing.T) {
	p := newParser(t, nil)

	assert.Equal(t, "2024-06-12 15:04", p.Now(wednesday))
	assert.Equal(t, "2024-06-12", p.Today(wednesday))
	assert.Equal(t, "15:04", p.CurrentTime(wednesday))

	linked := newParser(t, func(o *Options) {
		o.Link = true
		o.Separator = " @ "
	})
	assert.Equal(t, "[[2024-06-12]] @ 15:04", linked.Now(wednesday))
	assert.Equal(t, "[[2024-06-12]]", linked.Today(wednesday))
	assert.Equal(t, "15:04", linked.CurrentTime(wednesday))
}

func TestNowDefaultsToClock(t *testing.T) {
	original := timeNow
	timeNow = func() time.Time { return wednesday }
	t.Cleanup(func() { timeNow = original })

	p := newParser(t, nil)
	assert.Equal(t, "2024-06-12", p.Today(time.Time{}))
	assert.Equal(t, "15:04", p.CurrentTime(time.Time{}))
}
