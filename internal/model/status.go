package model

type OrderStatus string

const (
	StatusNotStarted    OrderStatus = "NOT_STARTED"
	StatusAssigned      OrderStatus = "ASSIGNED"
	StatusStarted       OrderStatus = "STARTED"
	StatusPaused        OrderStatus = "PAUSED"
	StatusAwaitingQuote OrderStatus = "AWAITING_QUOTE"
	StatusQuoteSent     OrderStatus = "QUOTE_SENT"
	StatusAwaitingParts OrderStatus = "AWAITING_PARTS"
	StatusPartsReceived OrderStatus = "PARTS_RECEIVED"
	StatusCompleted     OrderStatus = "COMPLETED"
	StatusInvoiced      OrderStatus = "INVOICED"
	StatusCanceled      OrderStatus = "CANCELED"
)

// Statuses lists the canonical vocabulary in happy-path order.
var Statuses = []OrderStatus{
	StatusNotStarted,
	StatusAssigned,
	StatusStarted,
	StatusPaused,
	StatusAwaitingQuote,
	StatusQuoteSent,
	StatusAwaitingParts,
	StatusPartsReceived,
	StatusCompleted,
	StatusInvoiced,
	StatusCanceled,
}

func (s OrderStatus) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusInvoiced || s == StatusCanceled
}

// IsReadOnly gates notes, parts, time and photos.
func (s OrderStatus) IsReadOnly() bool {
	return s == StatusCompleted || s.IsTerminal()
}

// IsWaiting reports the blocking sub-states that may be entered in any order.
func (s OrderStatus) IsWaiting() bool {
	switch s {
	case StatusAwaitingQuote, StatusQuoteSent, StatusAwaitingParts, StatusPartsReceived:
		return true
	default:
		return false
	}
}

func (s OrderStatus) Label() string {
	switch s {
	case StatusNotStarted:
		return "Not started"
	case StatusAssigned:
		return "Assigned"
	case StatusStarted:
		return "In progress"
	case StatusPaused:
		return "Paused"
	case StatusAwaitingQuote:
		return "Awaiting quote"
	case StatusQuoteSent:
		return "Quote sent"
	case StatusAwaitingParts:
		return "Awaiting parts"
	case StatusPartsReceived:
		return "Parts received"
	case StatusCompleted:
		return "Completed"
	case StatusInvoiced:
		return "Invoiced"
	case StatusCanceled:
		return "Canceled"
	default:
		return string(s)
	}
}

type Tone string

const (
	ToneNeutral  Tone = "neutral"
	ToneInfo     Tone = "info"
	ToneProgress Tone = "progress"
	ToneWarning  Tone = "warning"
	ToneSuccess  Tone = "success"
	ToneBilled   Tone = "billed"
	ToneDanger   Tone = "danger"
)

// Tone is the presentation colour family of a status.
func (s OrderStatus) Tone() Tone {
	switch {
	case s == StatusAssigned:
		return ToneInfo
	case s == StatusStarted:
		return ToneProgress
	case s == StatusPaused, s.IsWaiting():
		return ToneWarning
	case s == StatusCompleted:
		return ToneSuccess
	case s == StatusInvoiced:
		return ToneBilled
	case s == StatusCanceled:
		return ToneDanger
	default:
		return ToneNeutral
	}
}

// CanTransition reports whether from -> to is in the allowed set. It says
// nothing about guards (required notes) or confirmation.
func CanTransition(from, to OrderStatus) bool {
	if from.IsTerminal() || from == to || !to.Valid() {
		return false
	}

	switch to {
	case StatusAssigned:
		return from == StatusNotStarted
	case StatusStarted:
		return from == StatusCompleted || !from.IsReadOnly()
	case StatusPaused:
		return from == StatusStarted
	case StatusAwaitingQuote, StatusQuoteSent, StatusAwaitingParts, StatusPartsReceived:
		return !from.IsReadOnly()
	case StatusCompleted:
		return !from.IsReadOnly()
	case StatusInvoiced:
		return from == StatusCompleted
	case StatusCanceled:
		return !from.IsReadOnly()
	default:
		return false
	}
}

// IsReopen reports the COMPLETED -> STARTED transition.
func IsReopen(from, to OrderStatus) bool {
	return from == StatusCompleted && to == StatusStarted
}
