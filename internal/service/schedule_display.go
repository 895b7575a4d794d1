package service

import (
	"strings"
	"time"

	"github.com/noah-isme/guidance-schedule-api/internal/models"
)

var weekdayNames = map[string]time.Weekday{
	"Sunday": time.Sunday, "Monday": time.Monday, "Tuesday": time.Tuesday, "Wednesday": time.Wednesday,
	"Thursday": time.Thursday, "Friday": time.Friday, "Saturday": time.Saturday,
}

// FormatDisplay renders an entry as shown on its card.
func FormatDisplay(entry models.ScheduleEntry) string {
	return entry.Display()
}

// ParseDisplay reads a card label such as "Thursday, 03 14:05" back into an
// entry. The label carries no month or year, so both are taken from ref. The
// weekday must be a known name but is not cross-checked with the resulting
// date; ImportDisplay does that check.
func ParseDisplay(display string, ref time.Time) (models.ScheduleEntry, error) {
	entry, _, err := parseDisplay(display, ref)
	return entry, err
}

// parseDisplay also returns the weekday written on the label.
func parseDisplay(display string, ref time.Time) (models.ScheduleEntry, time.Weekday, error) {
	tokens := strings.Fields(display)
	if len(tokens) != 3 {
		return models.ScheduleEntry{}, 0, reject(ReasonMalformedDisplay, "%q: expected 3 tokens, got %d", display, len(tokens))
	}

	name, ok := strings.CutSuffix(tokens[0], ",")
	if !ok {
		return models.ScheduleEntry{}, 0, reject(ReasonMalformedDisplay, "%q: weekday must end with a comma", display)
	}
	weekday, known := weekdayNames[name]
	if !known {
		return models.ScheduleEntry{}, 0, reject(ReasonMalformedDisplay, "%q: unknown weekday %q", display, name)
	}

	day, ok := twoDigits(tokens[1])
	if !ok {
		return models.ScheduleEntry{}, 0, reject(ReasonMalformedDisplay, "%q: day of month must be two digits, got %q", display, tokens[1])
	}
	year, month := ref.Year(), ref.Month()
	if day < 1 || day > daysIn(year, month) {
		return models.ScheduleEntry{}, 0, reject(ReasonMalformedDisplay, "%q: day %d not in %s %d", display, day, month, year)
	}

	tod, ok := parseClock(tokens[2])
	if !ok {
		return models.ScheduleEntry{}, 0, reject(ReasonMalformedDisplay, "%q: time must be HH:mm, got %q", display, tokens[2])
	}

	return models.ScheduleEntry{
		Date: models.Date{Year: year, Month: month, Day: day},
		Time: tod,
	}, weekday, nil
}

// parseClock accepts exactly "HH:mm" on a 24h clock.
func parseClock(raw string) (models.TimeOfDay, bool) {
	if len(raw) != 5 || raw[2] != ':' {
		return models.TimeOfDay{}, false
	}
	hour, okHour := twoDigits(raw[:2])
	minute, okMinute := twoDigits(raw[3:])
	tod := models.TimeOfDay{Hour: hour, Minute: minute}
	if !okHour || !okMinute || !tod.Valid() {
		return models.TimeOfDay{}, false
	}
	return tod, true
}

func twoDigits(raw string) (int, bool) {
	if len(raw) != 2 || !isDigit(raw[0]) || !isDigit(raw[1]) {
		return 0, false
	}
	return int(raw[0]-'0')*10 + int(raw[1]-'0'), true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
