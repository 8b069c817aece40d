// Package apiv1 holds the JSON bodies of the field service HTTP API.
package apiv1

import (
	"time"

	"github.com/google/uuid"
)

type Error struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Field     string `json:"field,omitempty"`
	Redirect  string `json:"redirect,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

type CreateOrderRequest struct {
	ClientID      uuid.UUID  `json:"client_id"`
	EquipmentID   *uuid.UUID `json:"equipment_id,omitempty"`
	TechnicianID  *uuid.UUID `json:"technician_id,omitempty"`
	Type          string     `json:"type"`
	Priority      string     `json:"priority"`
	Description   string     `json:"description"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
}

type Order struct {
	ID              uuid.UUID  `json:"id"`
	Code            string     `json:"code"`
	Status          string     `json:"status"`
	StatusLabel     string     `json:"status_label"`
	StatusTone      string     `json:"status_tone"`
	ReadOnly        bool       `json:"read_only"`
	Priority        string     `json:"priority"`
	Type            string     `json:"type"`
	Description     string     `json:"description"`
	ResolutionNotes *string    `json:"resolution_notes"`
	InternalNotes   *string    `json:"internal_notes"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
	StartTime       *time.Time `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	ClientSignature *string    `json:"client_signature"`
	ClientID        uuid.UUID  `json:"client_id"`
	EquipmentID     *uuid.UUID `json:"equipment_id"`
	TechnicianID    *uuid.UUID `json:"technician_id"`
	CreatedAt       time.Time  `json:"created_at"`
}

type TransitionRequest struct {
	Status          string     `json:"status"`
	Confirmed       bool       `json:"confirmed"`
	TechnicianID    *uuid.UUID `json:"technician_id,omitempty"`
	ResolutionNotes *string    `json:"resolution_notes,omitempty"`
	InternalNotes   *string    `json:"internal_notes,omitempty"`
	ClientSignature *string    `json:"client_signature,omitempty"`
}

type TransitionResponse struct {
	Order                *Order `json:"order,omitempty"`
	RequiresConfirmation bool   `json:"requires_confirmation"`
	Reason               string `json:"reason,omitempty"`
}

type ProgressRequest struct {
	ResolutionNotes *string    `json:"resolution_notes,omitempty"`
	InternalNotes   *string    `json:"internal_notes,omitempty"`
	ScheduledDate   *time.Time `json:"scheduled_date,omitempty"`
}

type TimeEntry struct {
	ID              uuid.UUID  `json:"id"`
	OrderID         uuid.UUID  `json:"order_id"`
	Start           time.Time  `json:"start"`
	End             *time.Time `json:"end"`
	DurationMinutes *int64     `json:"duration_minutes"`
	Description     string     `json:"description"`
	TechnicianID    *uuid.UUID `json:"technician_id"`
}

type ManualEntryRequest struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Description string    `json:"description"`
}

type TimerState struct {
	Running        bool       `json:"running"`
	EntryID        *uuid.UUID `json:"entry_id,omitempty"`
	Start          *time.Time `json:"start,omitempty"`
	ElapsedSeconds int64      `json:"elapsed_seconds"`
	TotalMinutes   int64      `json:"total_minutes"`
}

type AddPartRequest struct {
	CatalogItemID string `json:"catalog_item_id"`
	Quantity      int64  `json:"quantity"`
}

type PartUsage struct {
	ID             uuid.UUID `json:"id"`
	OrderID        uuid.UUID `json:"order_id"`
	CatalogItemID  string    `json:"catalog_item_id"`
	Name           string    `json:"name"`
	Reference      string    `json:"reference"`
	Quantity       int64     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	UnitPrice      string    `json:"unit_price"`
	Total          string    `json:"total"`
}

type RemovePartResponse struct {
	Warning string `json:"warning,omitempty"`
}

type Report struct {
	Order        *Order       `json:"order"`
	TimeEntries  []*TimeEntry `json:"time_entries"`
	PartUsages   []*PartUsage `json:"part_usages"`
	TotalMinutes int64        `json:"total_minutes"`
	PartsCents   int64        `json:"parts_cents"`
	PartsTotal   string       `json:"parts_total"`
}

type SuggestNotesRequest struct {
	DraftNotes string `json:"draft_notes"`
}

type SuggestNotesResponse struct {
	Text string `json:"text"`
}

type CatalogItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Reference  string `json:"reference"`
	PriceCents int64  `json:"price_cents"`
	Price      string `json:"price"`
	Stock      int64  `json:"stock"`
	StockLevel string `json:"stock_level"`
}

type CreateCatalogItemRequest struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Reference  string `json:"reference"`
	PriceCents int64  `json:"price_cents"`
	Stock      int64  `json:"stock"`
}

type UpdateCatalogItemRequest struct {
	Name       *string `json:"name,omitempty"`
	Reference  *string `json:"reference,omitempty"`
	PriceCents *int64  `json:"price_cents,omitempty"`
	Stock      *int64  `json:"stock,omitempty"`
}
