package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type (
	Priority  string
	OrderType string
)

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

const (
	OrderTypeInstallation OrderType = "installation"
	OrderTypeMaintenance  OrderType = "maintenance"
	OrderTypeBreakdown    OrderType = "breakdown"
	OrderTypeInspection   OrderType = "inspection"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeInstallation, OrderTypeMaintenance, OrderTypeBreakdown, OrderTypeInspection:
		return true
	}
	return false
}

type Order struct {
	ID uuid.UUID
	// Human readable code, e.g. OS-2024-4821.
	Code     string
	Status   OrderStatus
	Priority Priority
	Type     OrderType
	// Reported problem. Immutable after creation.
	Description string
	// Customer-visible technical report.
	ResolutionNotes *string
	// Never shown to the customer.
	InternalNotes *string
	ScheduledDate *time.Time
	// StartTime and EndTime are stamped by lifecycle transitions only.
	StartTime       *time.Time
	EndTime         *time.Time
	ClientSignature *string
	ClientID        uuid.UUID
	EquipmentID     *uuid.UUID
	TechnicianID    *uuid.UUID
	CreatedAt       time.Time
}

// Clone returns a deep copy so a snapshot survives later mutation.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	c.ResolutionNotes = clonePtr(o.ResolutionNotes)
	c.InternalNotes = clonePtr(o.InternalNotes)
	c.ScheduledDate = clonePtr(o.ScheduledDate)
	c.StartTime = clonePtr(o.StartTime)
	c.EndTime = clonePtr(o.EndTime)
	c.ClientSignature = clonePtr(o.ClientSignature)
	c.EquipmentID = clonePtr(o.EquipmentID)
	c.TechnicianID = clonePtr(o.TechnicianID)
	return &c
}

func (o *Order) IsReadOnly() bool { return o.Status.IsReadOnly() }

// CreateOrderParams is the order intake input. Everything not listed here is
// assigned by the engine.
type CreateOrderParams struct {
	ClientID      uuid.UUID
	EquipmentID   *uuid.UUID
	TechnicianID  *uuid.UUID
	Type          OrderType
	Priority      Priority
	Description   string
	ScheduledDate *time.Time
}

// OrderUpdate is a partial update; nil fields are left untouched.
type OrderUpdate struct {
	Status          *OrderStatus
	ResolutionNotes *string
	InternalNotes   *string
	ScheduledDate   *time.Time
	StartTime       *time.Time
	EndTime         *time.Time
	ClientSignature *string
	TechnicianID    *uuid.UUID
}

func (u OrderUpdate) Empty() bool {
	return u == OrderUpdate{}
}

// Apply copies the set fields of u onto o.
func (u OrderUpdate) Apply(o *Order) {
	if u.Status != nil {
		o.Status = *u.Status
	}
	if u.ResolutionNotes != nil {
		o.ResolutionNotes = clonePtr(u.ResolutionNotes)
	}
	if u.InternalNotes != nil {
		o.InternalNotes = clonePtr(u.InternalNotes)
	}
	if u.ScheduledDate != nil {
		o.ScheduledDate = clonePtr(u.ScheduledDate)
	}
	if u.StartTime != nil {
		o.StartTime = clonePtr(u.StartTime)
	}
	if u.EndTime != nil {
		o.EndTime = clonePtr(u.EndTime)
	}
	if u.ClientSignature != nil {
		o.ClientSignature = clonePtr(u.ClientSignature)
	}
	if u.TechnicianID != nil {
		o.TechnicianID = clonePtr(u.TechnicianID)
	}
}

// ProgressParams is the "save progress" input: notes and schedule only.
type ProgressParams struct {
	OrderID         uuid.UUID
	ResolutionNotes *string
	InternalNotes   *string
	ScheduledDate   *time.Time
}

type TransitionRequest struct {
	OrderID uuid.UUID
	Target  OrderStatus
	// Confirmed carries the caller's explicit consent for transitions that need it.
	Confirmed       bool
	TechnicianID    *uuid.UUID
	ResolutionNotes *string
	InternalNotes   *string
	ClientSignature *string
}

type ConfirmationReason string

const (
	ReasonReopen           ConfirmationReason = "reopen"
	ReasonInvoice          ConfirmationReason = "invoice"
	ReasonCancel           ConfirmationReason = "cancel"
	ReasonMissingSignature ConfirmationReason = "missing_signature"
)

type TransitionResult struct {
	Order                *Order
	RequiresConfirmation bool
	Reason               ConfirmationReason
}

// GenerateCode builds an order code from the year and a number in [1000, 9999].
func GenerateCode(now time.Time, n int) string {
	return fmt.Sprintf("OS-%d-%04d", now.Year(), 1000+n%9000)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
