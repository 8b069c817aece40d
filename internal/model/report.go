package model

import (
	"time"

	"github.com/google/uuid"
)

// Report is the read-only aggregate handed to document generators.
type Report struct {
	Order        *Order
	TimeEntries  []*TimeEntry
	PartUsages   []*PartUsage
	TotalMinutes int64
	PartsCents   int64
}

// SummaryRequest is what the notes suggestion provider receives.
type SummaryRequest struct {
	Description   string
	DraftNotes    string
	PartNames     []string
	DurationLabel string
}

type StatusChanged struct {
	EventID uuid.UUID
	OrderID uuid.UUID
	Code    string
	From    OrderStatus
	To      OrderStatus
	At      time.Time
}

type StockAlert struct {
	EventID   uuid.UUID
	ItemID    string
	Reference string
	Stock     int64
	At        time.Time
}

type PartsReceived struct {
	EventID uuid.UUID
	OrderID uuid.UUID
}
