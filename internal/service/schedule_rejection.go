package service

import "fmt"

// RejectionReason names why the schedule manager refused a transition.
type RejectionReason string

const (
	ReasonInvalidDate      RejectionReason = "invalid_date"
	ReasonInvalidTime      RejectionReason = "invalid_time"
	ReasonIndexOutOfRange  RejectionReason = "index_out_of_range"
	ReasonMalformedDisplay RejectionReason = "malformed_display_string"
	ReasonNoPendingDate    RejectionReason = "no_pending_date"
)

var reasonMessages = map[RejectionReason]string{
	ReasonInvalidDate:      "date is before today",
	ReasonInvalidTime:      "time is outside working hours",
	ReasonIndexOutOfRange:  "entry index out of range",
	ReasonMalformedDisplay: "malformed schedule display string",
	ReasonNoPendingDate:    "no date has been selected",
}

// RejectionError is returned by every refused schedule operation. The
// manager state is left untouched when one is returned, except when
// ProposeTime finds the pending date has passed: the pending date is then
// cleared and the date picker reopens.
type RejectionError struct {
	Reason RejectionReason
	Detail string
}

// Error implements the error interface.
func (e *RejectionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg, ok := reasonMessages[e.Reason]
	if !ok {
		msg = string(e.Reason)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}

// Is matches any RejectionError carrying the same reason.
func (e *RejectionError) Is(target error) bool {
	t, ok := target.(*RejectionError)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Reason == t.Reason
}

// Sentinel rejections for errors.Is comparisons.
var (
	ErrInvalidDate      = &RejectionError{Reason: ReasonInvalidDate}
	ErrInvalidTime      = &RejectionError{Reason: ReasonInvalidTime}
	ErrIndexOutOfRange  = &RejectionError{Reason: ReasonIndexOutOfRange}
	ErrMalformedDisplay = &RejectionError{Reason: ReasonMalformedDisplay}
	ErrNoPendingDate    = &RejectionError{Reason: ReasonNoPendingDate}
)

func reject(reason RejectionReason, format string, args ...interface{}) *RejectionError {
	return &RejectionError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}
