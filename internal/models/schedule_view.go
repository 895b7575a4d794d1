package models

// DialogMode names which picker or menu the screen should show.
type DialogMode string

const (
	DialogNone       DialogMode = "none"
	DialogDatePicker DialogMode = "date_picker"
	DialogTimePicker DialogMode = "time_picker"
	DialogActionMenu DialogMode = "action_menu"
)

// EntryView is one rendered card.
type EntryView struct {
	Index   int       `json:"index"`
	Display string    `json:"display"`
	Date    Date      `json:"date"`
	Time    TimeOfDay `json:"time"`
}

// DialogView tells the UI what to open and how to pre-fill it.
type DialogView struct {
	Mode        DialogMode `json:"mode"`
	Index       *int       `json:"index,omitempty"`
	Editing     bool       `json:"editing"`
	PrefillDate *Date      `json:"prefill_date,omitempty"`
	PrefillTime *TimeOfDay `json:"prefill_time,omitempty"`
	PendingDate *Date      `json:"pending_date,omitempty"`
}

// ScheduleView is the complete render model for a schedule screen.
type ScheduleView struct {
	SessionID string      `json:"session_id,omitempty"`
	Entries   []EntryView `json:"entries"`
	Dialog    DialogView  `json:"dialog"`
}

// Displays returns the card labels in order.
func (v ScheduleView) Displays() []string {
	out := make([]string, len(v.Entries))
	for i, entry := range v.Entries {
		out[i] = entry.Display
	}
	return out
}
