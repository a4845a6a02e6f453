package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	parsed, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, NewClockTime(9, 30), parsed)
	assert.Equal(t, 9, parsed.Hour())
	assert.Equal(t, 30, parsed.Minute())
	assert.Equal(t, "09:30", parsed.String())

	for _, bad := range []string{"", "abc", "24:00", "12:60", "-1:00"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestClockTimeValue(t *testing.T) {
	v, err := NewClockTime(7, 5).Value()
	require.NoError(t, err)
	assert.Equal(t, "07:05:00", v)
}

func TestClockTimeScan(t *testing.T) {
	var ct ClockTime

	require.NoError(t, ct.Scan([]byte("13:45:00")))
	assert.Equal(t, NewClockTime(13, 45), ct)

	require.NoError(t, ct.Scan("08:15:00"))
	assert.Equal(t, NewClockTime(8, 15), ct)

	require.NoError(t, ct.Scan(time.Date(0, 1, 1, 22, 10, 0, 0, time.UTC)))
	assert.Equal(t, NewClockTime(22, 10), ct)

	assert.Error(t, ct.Scan(42))
}

func TestClockTimeJSON(t *testing.T) {
	data, err := NewClockTime(16, 0).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"16:00"`, string(data))

	var ct ClockTime
	require.NoError(t, ct.UnmarshalJSON([]byte(`"16:00"`)))
	assert.Equal(t, NewClockTime(16, 0), ct)
}
