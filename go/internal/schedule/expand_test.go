package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandRecurrence_WeeklyJanuary(t *testing.T) {
	// Wednesdays at 16:00 through January 2024, starting on a Monday.
	occurrences, err := ExpandRecurrence(RecurrenceRule{
		Weekday:         3,
		Hour:            16,
		Minute:          0,
		IntervalWeeks:   1,
		StartDate:       date(2024, time.January, 1),
		EndDate:         date(2024, time.January, 31),
		DurationMinutes: 90,
	})
	require.NoError(t, err)
	require.Len(t, occurrences, 5)

	wantDays := []int{3, 10, 17, 24, 31}
	for i, occ := range occurrences {
		assert.Equal(t, time.Wednesday, occ.StartsAt.Weekday())
		assert.Equal(t, wantDays[i], occ.StartsAt.Day())
		assert.Equal(t, 16, occ.StartsAt.Hour())
		assert.Equal(t, 17, occ.EndsAt.Hour())
		assert.Equal(t, 30, occ.EndsAt.Minute())
	}
}

func TestExpandRecurrence_FirstOccurrenceAfterStart(t *testing.T) {
	// Monday rule starting on a Wednesday lands on the following Monday,
	// not the start date.
	occurrences, err := ExpandRecurrence(RecurrenceRule{
		Weekday:         1,
		Hour:            9,
		Minute:          30,
		IntervalWeeks:   1,
		StartDate:       date(2024, time.January, 3),
		EndDate:         date(2024, time.January, 15),
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	require.Len(t, occurrences, 2)
	assert.Equal(t, date(2024, time.January, 8).Add(9*time.Hour+30*time.Minute), occurrences[0].StartsAt)
	assert.Equal(t, date(2024, time.January, 15).Add(9*time.Hour+30*time.Minute), occurrences[1].StartsAt)
}

func TestExpandRecurrence_IntervalSpacing(t *testing.T) {
	occurrences, err := ExpandRecurrence(RecurrenceRule{
		Weekday:         6,
		Hour:            10,
		Minute:          0,
		IntervalWeeks:   2,
		StartDate:       date(2024, time.March, 1),
		EndDate:         date(2024, time.May, 31),
		DurationMinutes: 120,
	})
	require.NoError(t, err)
	require.NotEmpty(t, occurrences)

	for i, occ := range occurrences {
		assert.Equal(t, time.Saturday, occ.StartsAt.Weekday())
		assert.True(t, occ.EndsAt.After(occ.StartsAt))
		if i > 0 {
			assert.Equal(t, 14*24*time.Hour, occ.StartsAt.Sub(occurrences[i-1].StartsAt))
		}
	}
}

func TestExpandRecurrence_CappedAtMaxOccurrences(t *testing.T) {
	// A ten year weekly range would produce over 500 occurrences.
	occurrences, err := ExpandRecurrence(RecurrenceRule{
		Weekday:         2,
		Hour:            18,
		Minute:          0,
		IntervalWeeks:   1,
		StartDate:       date(2020, time.January, 1),
		EndDate:         date(2030, time.January, 1),
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	assert.Len(t, occurrences, MaxOccurrences)
}

func TestExpandRecurrence_InvalidRange(t *testing.T) {
	_, err := ExpandRecurrence(RecurrenceRule{
		Weekday:         1,
		IntervalWeeks:   1,
		StartDate:       date(2024, time.February, 1),
		EndDate:         date(2024, time.January, 1),
		DurationMinutes: 60,
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestExpandRecurrence_NoMatchingDayInRange(t *testing.T) {
	// 2024-01-03 is a Wednesday; a Monday rule never fires inside a
	// Wednesday-to-Friday window.
	occurrences, err := ExpandRecurrence(RecurrenceRule{
		Weekday:         1,
		IntervalWeeks:   1,
		StartDate:       date(2024, time.January, 3),
		EndDate:         date(2024, time.January, 5),
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	assert.Empty(t, occurrences)
}

func TestExpandRecurrence_ClampsDuration(t *testing.T) {
	occurrences, err := ExpandRecurrence(RecurrenceRule{
		Weekday:         5,
		Hour:            8,
		IntervalWeeks:   1,
		StartDate:       date(2024, time.June, 7),
		EndDate:         date(2024, time.June, 7),
		DurationMinutes: 999,
	})
	require.NoError(t, err)
	require.Len(t, occurrences, 1)
	assert.Equal(t, 240*time.Minute, occurrences[0].EndsAt.Sub(occurrences[0].StartsAt))
}
