package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/noah-isme/guidance-schedule-api/internal/models"
)

// Clock returns the current local time.
type Clock func() time.Time

// WorkingHours bounds the hour a session may start at. Both ends are
// inclusive, so an EndHour of 16 admits 16:59.
type WorkingHours struct {
	StartHour int
	EndHour   int
}

// DefaultWorkingHours is the 08:00–16:59 window.
func DefaultWorkingHours() WorkingHours {
	return WorkingHours{StartHour: 8, EndHour: 16}
}

// Allows reports whether t falls inside the window.
func (w WorkingHours) Allows(t models.TimeOfDay) bool {
	return t.Valid() && t.Hour >= w.StartHour && t.Hour <= w.EndHour
}

func (w WorkingHours) String() string {
	return fmt.Sprintf("%02d:00-%02d:59", w.StartHour, w.EndHour)
}

type managerState int

const (
	stateIdle managerState = iota
	statePickingDate
	statePickingTime
	stateActionMenu
)

// ScheduleManager owns one screen's schedule list and its dialog state.
// It is not safe for concurrent use; callers serialize events.
type ScheduleManager struct {
	hours WorkingHours
	clock Clock

	entries []models.ScheduleEntry

	state       managerState
	menuIndex   int
	editTarget  *int
	pendingDate *models.Date
	prefill     *models.ScheduleEntry
}

// NewScheduleManager builds an empty manager.
func NewScheduleManager(hours WorkingHours, clock Clock) *ScheduleManager {
	if clock == nil {
		clock = time.Now
	}
	return &ScheduleManager{hours: hours, clock: clock}
}

// BeginAdd opens the date picker with nothing pre-filled.
func (m *ScheduleManager) BeginAdd() {
	m.reset()
	m.state = statePickingDate
}

// SelectEntry opens the edit/delete action menu for entry i.
func (m *ScheduleManager) SelectEntry(i int) error {
	if err := m.checkIndex(i); err != nil {
		return err
	}
	m.reset()
	m.state = stateActionMenu
	m.menuIndex = i
	return nil
}

// BeginEdit targets entry i and opens the date picker pre-filled with it.
func (m *ScheduleManager) BeginEdit(i int) error {
	if err := m.checkIndex(i); err != nil {
		return err
	}
	m.reset()
	target := i
	prefill := m.entries[i]
	m.editTarget = &target
	m.prefill = &prefill
	m.state = statePickingDate
	return nil
}

// ProposeDate accepts d as the pending date unless it lies before today.
// Called outside a picker it starts an add.
func (m *ScheduleManager) ProposeDate(d models.Date) error {
	today := m.today()
	if d.Before(today) {
		return reject(ReasonInvalidDate, "%s is before %s", d, today)
	}
	if m.state == stateIdle || m.state == stateActionMenu {
		m.reset()
	}
	pending := d
	m.pendingDate = &pending
	m.state = statePickingTime
	return nil
}

// ProposeTime combines t with the pending date and commits the entry,
// appending it or replacing the edit target.
func (m *ScheduleManager) ProposeTime(t models.TimeOfDay) error {
	if m.pendingDate == nil {
		return reject(ReasonNoPendingDate, "pick a date before a time")
	}
	if !m.hours.Allows(t) {
		return reject(ReasonInvalidTime, "%s not within %s", t, m.hours)
	}
	// The day may have rolled over while the time picker was open.
	if today := m.today(); m.pendingDate.Before(today) {
		stale := *m.pendingDate
		m.pendingDate = nil
		m.state = statePickingDate
		return reject(ReasonInvalidDate, "%s is before %s", stale, today)
	}

	entry := models.ScheduleEntry{Date: *m.pendingDate, Time: t}
	if m.editTarget != nil && *m.editTarget < len(m.entries) {
		m.entries[*m.editTarget] = entry
	} else {
		m.entries = append(m.entries, entry)
	}
	m.reset()
	m.state = stateIdle
	return nil
}

// DeleteEntry removes entry i; later entries shift down by one.
func (m *ScheduleManager) DeleteEntry(i int) error {
	if err := m.checkIndex(i); err != nil {
		return err
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	m.reset()
	m.state = stateIdle
	return nil
}

// Dismiss closes any open dialog without committing a pending value.
func (m *ScheduleManager) Dismiss() {
	m.reset()
	m.state = stateIdle
}

// ImportDisplay appends entries given as card labels, resolving each against
// the current month. The written weekday must match the resolved date.
// Nothing is appended unless every line is valid.
func (m *ScheduleManager) ImportDisplay(lines []string) error {
	now := m.clock()
	today := models.DateOf(now)
	parsed := make([]models.ScheduleEntry, 0, len(lines))
	for i, line := range lines {
		entry, weekday, err := parseDisplay(line, now)
		if err != nil {
			var rej *RejectionError
			if errors.As(err, &rej) {
				return reject(rej.Reason, "line %d: %s", i, rej.Detail)
			}
			return err
		}
		if actual := entry.StartsAt(time.UTC).Weekday(); actual != weekday {
			return reject(ReasonMalformedDisplay, "line %d: %s is a %s, not a %s", i, entry.Date, actual, weekday)
		}
		if entry.Date.Before(today) {
			return reject(ReasonInvalidDate, "line %d: %s is before %s", i, entry.Date, today)
		}
		if !m.hours.Allows(entry.Time) {
			return reject(ReasonInvalidTime, "line %d: %s not within %s", i, entry.Time, m.hours)
		}
		parsed = append(parsed, entry)
	}
	m.entries = append(m.entries, parsed...)
	return nil
}

// Len returns the number of entries.
func (m *ScheduleManager) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the entries in display order.
func (m *ScheduleManager) Entries() []models.ScheduleEntry {
	out := make([]models.ScheduleEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// View renders the current entries and dialog.
func (m *ScheduleManager) View() models.ScheduleView {
	entries := make([]models.EntryView, len(m.entries))
	for i, entry := range m.entries {
		entries[i] = models.EntryView{
			Index:   i,
			Display: FormatDisplay(entry),
			Date:    entry.Date,
			Time:    entry.Time,
		}
	}
	return models.ScheduleView{Entries: entries, Dialog: m.dialog()}
}

func (m *ScheduleManager) dialog() models.DialogView {
	view := models.DialogView{Editing: m.editTarget != nil}
	switch m.state {
	case statePickingDate:
		view.Mode = models.DialogDatePicker
		if m.prefill != nil {
			d := m.prefill.Date
			view.PrefillDate = &d
		}
	case statePickingTime:
		view.Mode = models.DialogTimePicker
		if m.prefill != nil {
			t := m.prefill.Time
			view.PrefillTime = &t
		}
		if m.pendingDate != nil {
			d := *m.pendingDate
			view.PendingDate = &d
		}
	case stateActionMenu:
		view.Mode = models.DialogActionMenu
		idx := m.menuIndex
		view.Index = &idx
	default:
		view.Mode = models.DialogNone
	}
	if m.editTarget != nil && m.state != stateActionMenu {
		idx := *m.editTarget
		view.Index = &idx
	}
	return view
}

func (m *ScheduleManager) checkIndex(i int) error {
	if i < 0 || i >= len(m.entries) {
		return reject(ReasonIndexOutOfRange, "index %d, have %d entries", i, len(m.entries))
	}
	return nil
}

func (m *ScheduleManager) today() models.Date {
	return models.DateOf(m.clock())
}

func (m *ScheduleManager) reset() {
	m.editTarget = nil
	m.pendingDate = nil
	m.prefill = nil
	m.menuIndex = 0
}
