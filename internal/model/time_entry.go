package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type TimeEntry struct {
	ID      uuid.UUID
	OrderID uuid.UUID
	Start   time.Time
	// End is nil while the timer is running.
	End *time.Time
	// DurationMinutes is computed once when the entry closes.
	DurationMinutes *int64
	Description     string
	TechnicianID    *uuid.UUID
}

func (e *TimeEntry) IsOpen() bool { return e.End == nil }

func (e *TimeEntry) Clone() *TimeEntry {
	if e == nil {
		return nil
	}
	c := *e
	c.End = clonePtr(e.End)
	c.DurationMinutes = clonePtr(e.DurationMinutes)
	c.TechnicianID = clonePtr(e.TechnicianID)
	return &c
}

// Close stamps end and the rounded duration.
func (e *TimeEntry) Close(end time.Time) {
	d := DurationMinutes(e.Start, end)
	e.End = &end
	e.DurationMinutes = &d
}

// TimeEntryUpdate changes only the non-nil fields. Reopen clears End and
// DurationMinutes and wins over them.
type TimeEntryUpdate struct {
	End             *time.Time
	DurationMinutes *int64
	Description     *string
	Reopen          bool
}

type ManualEntryParams struct {
	OrderID     uuid.UUID
	Start       time.Time
	End         time.Time
	Description string
}

// TimerState is presentation only and never persisted.
type TimerState struct {
	Running        bool
	EntryID        uuid.UUID
	Start          time.Time
	ElapsedSeconds int64
	TotalMinutes   int64
}

// DurationMinutes rounds the interval to whole minutes, halves up.
func DurationMinutes(start, end time.Time) int64 {
	return int64(math.Floor(end.Sub(start).Minutes() + 0.5))
}

// ElapsedSeconds is always derived from the absolute start so a suspended
// ticker cannot drift.
func ElapsedSeconds(start, now time.Time) int64 {
	if now.Before(start) {
		return 0
	}
	return int64(now.Sub(start) / time.Second)
}

// TotalMinutes sums closed entries; open entries do not count.
func TotalMinutes(entries []*TimeEntry) int64 {
	var total int64
	for _, e := range entries {
		if e.IsOpen() || e.DurationMinutes == nil {
			continue
		}
		total += *e.DurationMinutes
	}
	return total
}

// OpenEntry returns the running entry, if any.
func OpenEntry(entries []*TimeEntry) (*TimeEntry, bool) {
	for _, e := range entries {
		if e.IsOpen() {
			return e, true
		}
	}
	return nil, false
}
