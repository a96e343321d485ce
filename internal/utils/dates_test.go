package utils

import (
	"testing"

	"fleetdesk-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNextDate(t *testing.T) {
	tests := []struct {
		name string
		date string
		freq domain.RecurringFrequency
		want string
	}{
		{"Daily", "2026-08-20", domain.FrequencyDaily, "2026-08-21"},
		{"Weekly", "2026-08-20", domain.FrequencyWeekly, "2026-08-27"},
		{"WeeklyAcrossMonth", "2026-08-28", domain.FrequencyWeekly, "2026-09-04"},
		{"Monthly", "2026-08-20", domain.FrequencyMonthly, "2026-09-20"},
		{"MonthlyEndOfMonth", "2026-01-31", domain.FrequencyMonthly, "2026-03-03"},
		{"DailyAcrossYear", "2026-12-31", domain.FrequencyDaily, "2027-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextDate(tt.date, tt.freq)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextDate_Errors(t *testing.T) {
	_, err := NextDate("20/08/2026", domain.FrequencyDaily)
	assert.Error(t, err)

	_, err = NextDate("2026-08-20", "yearly")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-08-20")
	assert.NoError(t, err)
	assert.Equal(t, "2026-08-20", FormatDate(parsed))

	_, err = ParseDate("not-a-date")
	assert.Error(t, err)
}
