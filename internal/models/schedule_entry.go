package models

import "time"

// DisplayLayout renders an entry as weekday, day-of-month and HH:mm.
const DisplayLayout = "Monday, 02 15:04"

// ScheduleEntry is a single guidance session slot.
type ScheduleEntry struct {
	Date Date      `json:"date"`
	Time TimeOfDay `json:"time"`
}

// StartsAt combines the entry date and time in loc.
func (e ScheduleEntry) StartsAt(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(e.Date.Year, e.Date.Month, e.Date.Day, e.Time.Hour, e.Time.Minute, 0, 0, loc)
}

// Display returns the card label, e.g. "Thursday, 03 14:05".
func (e ScheduleEntry) Display() string {
	return e.StartsAt(time.UTC).Format(DisplayLayout)
}
