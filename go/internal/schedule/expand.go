package schedule

import (
	"time"

	"github.com/clubdesk/clubdesk/go/internal/models"
)

// MaxOccurrences caps expansion regardless of the date range. A weekly rule
// over a runaway range stops producing events after this many.
const MaxOccurrences = 80

// ExpandRecurrence turns a weekly rule into an ordered list of concrete
// occurrences. The first occurrence falls on the earliest date on or after
// StartDate matching the rule's weekday; successive occurrences are spaced
// IntervalWeeks apart. EndDate is an inclusive calendar bound. A rule whose
// weekday never lands inside the range yields an empty list, not an error.
func ExpandRecurrence(rule RecurrenceRule) ([]Occurrence, error) {
	start := dateOf(rule.StartDate)
	end := dateOf(rule.EndDate)
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	interval := rule.IntervalWeeks
	if interval < 1 {
		interval = 1
	}
	duration := time.Duration(models.ClampDuration(rule.DurationMinutes)) * time.Minute

	// Advance to the first matching weekday on or after the start date.
	day := start
	offset := (rule.Weekday - int(day.Weekday()) + 7) % 7
	day = day.AddDate(0, 0, offset)

	var occurrences []Occurrence
	for !day.After(end) && len(occurrences) < MaxOccurrences {
		startsAt := time.Date(day.Year(), day.Month(), day.Day(), rule.Hour, rule.Minute, 0, 0, day.Location())
		occurrences = append(occurrences, Occurrence{
			StartsAt: startsAt,
			EndsAt:   startsAt.Add(duration),
		})
		day = day.AddDate(0, 0, interval*7)
	}
	return occurrences, nil
}

// dateOf truncates a timestamp to midnight of its calendar day
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
