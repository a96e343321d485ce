package utils

import (
	"fmt"
	"time"

	"fleetdesk-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// NextDate advances a due date by one recurrence interval. Monthly uses
// calendar months, so Jan 31 advances to Mar 3 per time.AddDate rules.
func NextDate(date string, freq domain.RecurringFrequency) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}

	switch freq {
	case domain.FrequencyDaily:
		t = t.AddDate(0, 0, 1)
	case domain.FrequencyWeekly:
		t = t.AddDate(0, 0, 7)
	case domain.FrequencyMonthly:
		t = t.AddDate(0, 1, 0)
	default:
		return "", fmt.Errorf("unknown recurring frequency %q", freq)
	}
	return FormatDate(t), nil
}
