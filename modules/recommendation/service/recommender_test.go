package service

import (
	"testing"
	"time"

	eventEntity "campus-recommender/modules/event/entity"
	profileEntity "campus-recommender/modules/profile/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	t.Run("identical vectors score close to 1", func(t *testing.T) {
		score, err := Cosine([]float64{1, 2, 3}, []float64{1, 2, 3})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, score, 1e-9)
	})

	t.Run("orthogonal vectors score 0", func(t *testing.T) {
		score, err := Cosine([]float64{1, 0}, []float64{0, 1})
		require.NoError(t, err)
		assert.InDelta(t, 0.0, score, 1e-9)
	})

	t.Run("opposite vectors score close to -1", func(t *testing.T) {
		score, err := Cosine([]float64{1, 0}, []float64{-1, 0})
		require.NoError(t, err)
		assert.InDelta(t, -1.0, score, 1e-9)
	})

	t.Run("zero vector scores 0 instead of dividing by zero", func(t *testing.T) {
		score, err := Cosine([]float64{0, 0}, []float64{1, 1})
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
	})

	t.Run("dimension mismatch is rejected", func(t *testing.T) {
		_, err := Cosine([]float64{1, 2}, []float64{1, 2, 3})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mismatch")
	})
}

func TestParseVector(t *testing.T) {
	str := func(s string) *string { return &s }

	assert.Nil(t, ParseVector(nil))
	assert.Nil(t, ParseVector(str("")))
	assert.Nil(t, ParseVector(str("not json")))
	assert.Nil(t, ParseVector(str("[]")))
	assert.Equal(t, []float64{0.1, -0.2}, ParseVector(str("[0.1,-0.2]")))
}

// 2026-03-02 is a Monday
func mondayEvent(startHour, startMin, endHour, endMin int) *eventEntity.Event {
	return &eventEntity.Event{
		Title:         "Test Event",
		StartDatetime: time.Date(2026, 3, 2, startHour, startMin, 0, 0, time.UTC),
		EndDatetime:   time.Date(2026, 3, 2, endHour, endMin, 0, 0, time.UTC),
	}
}

func slot(day string, start, end profileEntity.ClockTime) profileEntity.AvailabilitySlot {
	return profileEntity.AvailabilitySlot{DayOfWeek: day, StartTime: start, EndTime: end}
}

func TestIsCompatible(t *testing.T) {
	tenToTwelve := []profileEntity.AvailabilitySlot{
		slot("Mon", profileEntity.NewClockTime(10, 0), profileEntity.NewClockTime(12, 0)),
	}

	t.Run("slot fully containing the event matches", func(t *testing.T) {
		assert.True(t, IsCompatible(mondayEvent(10, 30, 11, 30), tenToTwelve))
	})

	t.Run("exact boundaries match", func(t *testing.T) {
		assert.True(t, IsCompatible(mondayEvent(10, 0, 12, 0), tenToTwelve))
	})

	t.Run("partial overlap does not match", func(t *testing.T) {
		assert.False(t, IsCompatible(mondayEvent(11, 0, 13, 0), tenToTwelve))
		assert.False(t, IsCompatible(mondayEvent(9, 0, 11, 0), tenToTwelve))
	})

	t.Run("different weekday does not match", func(t *testing.T) {
		slots := []profileEntity.AvailabilitySlot{
			slot("Tue", profileEntity.NewClockTime(0, 0), profileEntity.NewClockTime(23, 59)),
		}
		assert.False(t, IsCompatible(mondayEvent(10, 0, 11, 0), slots))
	})

	t.Run("any one of several slots suffices", func(t *testing.T) {
		slots := []profileEntity.AvailabilitySlot{
			slot("Fri", profileEntity.NewClockTime(8, 0), profileEntity.NewClockTime(9, 0)),
			slot("Mon", profileEntity.NewClockTime(9, 0), profileEntity.NewClockTime(13, 0)),
		}
		assert.True(t, IsCompatible(mondayEvent(10, 0, 11, 0), slots))
	})

	t.Run("no slots never matches", func(t *testing.T) {
		assert.False(t, IsCompatible(mondayEvent(10, 0, 11, 0), nil))
	})
}

func TestBuildWhy(t *testing.T) {
	t.Run("overlapping interests are listed in interest order", func(t *testing.T) {
		why := BuildWhy([]string{"music", "ai", "chess"}, "ai,robotics,music")
		assert.Equal(t,
			"Recommended because it matches your interests: music, ai and fits your availability.",
			why)
	})

	t.Run("matching is case and whitespace insensitive", func(t *testing.T) {
		why := BuildWhy([]string{"Music"}, " MUSIC , art")
		assert.Equal(t,
			"Recommended because it matches your interests: music and fits your availability.",
			why)
	})

	t.Run("no overlap falls back to the similarity phrasing", func(t *testing.T) {
		why := BuildWhy([]string{"chess"}, "ai,robotics")
		assert.Equal(t,
			"Recommended because it fits your availability and is semantically similar to your interests.",
			why)
	})

	t.Run("empty keywords fall back", func(t *testing.T) {
		why := BuildWhy([]string{"chess"}, "")
		assert.Equal(t,
			"Recommended because it fits your availability and is semantically similar to your interests.",
			why)
	})
}
