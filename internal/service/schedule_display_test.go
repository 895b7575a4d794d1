package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/guidance-schedule-api/internal/models"
)

func TestFormatDisplay(t *testing.T) {
	entry := models.ScheduleEntry{
		Date: date(2026, time.December, 3),
		Time: models.TimeOfDay{Hour: 14, Minute: 5},
	}
	assert.Equal(t, "Thursday, 03 14:05", FormatDisplay(entry))
}

func TestParseDisplayRoundTrip(t *testing.T) {
	for day := 14; day <= 31; day++ {
		for _, tod := range []models.TimeOfDay{{Hour: 8}, {Hour: 12, Minute: 7}, {Hour: 16, Minute: 59}} {
			entry := models.ScheduleEntry{Date: date(2026, time.October, day), Time: tod}
			parsed, err := ParseDisplay(FormatDisplay(entry), managerNow)
			require.NoError(t, err)
			assert.Equal(t, entry, parsed)
		}
	}
}

func TestParseDisplayReportsWrittenWeekday(t *testing.T) {
	_, weekday, err := parseDisplay("Monday, 15 09:30", managerNow)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, weekday)
}

func TestParseDisplayAssumesReferenceMonth(t *testing.T) {
	parsed, err := ParseDisplay("Monday, 02 09:00", managerNow)
	require.NoError(t, err)
	assert.Equal(t, time.October, parsed.Date.Month)
	assert.Equal(t, 2026, parsed.Date.Year)
	assert.Equal(t, 2, parsed.Date.Day)
}

func TestParseDisplayMalformed(t *testing.T) {
	cases := map[string]string{
		"too few tokens":     "Thursday, 03",
		"too many tokens":    "Thursday, 03 14:05 extra",
		"missing comma":      "Thursday 03 14:05",
		"unknown weekday":    "Thorsday, 03 14:05",
		"non-numeric day":    "Thursday, xx 14:05",
		"day out of month":   "Saturday, 32 14:05",
		"bad clock":          "Thursday, 03 14-05",
		"hour overflow":      "Thursday, 03 24:00",
		"signed day":         "Thursday, +15 09:05",
		"single digit day":   "Saturday, 3 14:05",
		"single digit clock": "Thursday, 15 9:5",
		"signed clock":       "Thursday, 15 +09:-0",
		"three digit minute": "Thursday, 15 09:005",
		"empty":              "",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDisplay(input, managerNow)
			require.ErrorIs(t, err, ErrMalformedDisplay)
		})
	}
}

func TestParseDisplayRejectsDayMissingFromMonth(t *testing.T) {
	feb := time.Date(2026, time.February, 10, 9, 0, 0, 0, time.Local)
	_, err := ParseDisplay("Monday, 30 09:00", feb)
	require.ErrorIs(t, err, ErrMalformedDisplay)
}
