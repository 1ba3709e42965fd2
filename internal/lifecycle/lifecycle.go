// Package lifecycle decides when a post is publicly readable.
//
// Status is administrative and only changes through explicit edits. Public
// visibility is derived from status and schedule on every read, so a Scheduled
// post keeps its Scheduled label after its time has passed while already being
// visible.
package lifecycle

import (
	"errors"
	"time"
)

// Status is the administrative state of a post.
type Status string

const (
	Draft     Status = "Draft"
	Published Status = "Published"
	Scheduled Status = "Scheduled"
)

var (
	ErrUnknownStatus    = errors.New("status must be one of Draft, Published, Scheduled")
	ErrScheduleRequired = errors.New("scheduled posts need a publish time")
	ErrScheduleInPast   = errors.New("publish time must be in the future")
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case Draft, Published, Scheduled:
		return true
	}
	return false
}

// Visible reports whether a post with the given status and schedule is public at now.
// A Scheduled post without a schedule is never visible.
func Visible(s Status, scheduledAt *time.Time, now time.Time) bool {
	switch s {
	case Published:
		return true
	case Scheduled:
		return scheduledAt != nil && !scheduledAt.After(now)
	}
	return false
}

// ValidateSchedule checks the schedule an author is about to save.
func ValidateSchedule(s Status, scheduledAt *time.Time, now time.Time) error {
	if !s.Valid() {
		return ErrUnknownStatus
	}
	if s != Scheduled {
		return nil
	}
	if scheduledAt == nil || scheduledAt.IsZero() {
		return ErrScheduleRequired
	}
	if !scheduledAt.After(now) {
		return ErrScheduleInPast
	}
	return nil
}

// Item is anything carrying a status and schedule.
type Item interface {
	Lifecycle() (Status, *time.Time)
}

// FilterVisible returns the items visible at now, preserving order.
func FilterVisible[T Item](items []T, now time.Time) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		s, at := it.Lifecycle()
		if Visible(s, at, now) {
			out = append(out, it)
		}
	}
	return out
}
