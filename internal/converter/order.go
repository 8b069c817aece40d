package converter

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	apiv1 "github.com/you-humble/fieldservice/internal/api/v1"
	"github.com/you-humble/fieldservice/internal/model"
)

func CreateOrderRequestToParams(req *apiv1.CreateOrderRequest) model.CreateOrderParams {
	return model.CreateOrderParams{
		ClientID:      req.ClientID,
		EquipmentID:   req.EquipmentID,
		TechnicianID:  req.TechnicianID,
		Type:          model.OrderType(req.Type),
		Priority:      model.Priority(req.Priority),
		Description:   req.Description,
		ScheduledDate: req.ScheduledDate,
	}
}

func TransitionRequestToModel(ordID uuid.UUID, req *apiv1.TransitionRequest) model.TransitionRequest {
	return model.TransitionRequest{
		OrderID:         ordID,
		Target:          model.OrderStatus(req.Status),
		Confirmed:       req.Confirmed,
		TechnicianID:    req.TechnicianID,
		ResolutionNotes: req.ResolutionNotes,
		InternalNotes:   req.InternalNotes,
		ClientSignature: req.ClientSignature,
	}
}

func ProgressRequestToParams(ordID uuid.UUID, req *apiv1.ProgressRequest) model.ProgressParams {
	return model.ProgressParams{
		OrderID:         ordID,
		ResolutionNotes: req.ResolutionNotes,
		InternalNotes:   req.InternalNotes,
		ScheduledDate:   req.ScheduledDate,
	}
}

func ManualEntryRequestToParams(ordID uuid.UUID, req *apiv1.ManualEntryRequest) model.ManualEntryParams {
	return model.ManualEntryParams{
		OrderID:     ordID,
		Start:       req.Start,
		End:         req.End,
		Description: req.Description,
	}
}

func AddPartRequestToParams(ordID uuid.UUID, req *apiv1.AddPartRequest) model.AddUsageParams {
	return model.AddUsageParams{
		OrderID:       ordID,
		CatalogItemID: req.CatalogItemID,
		Quantity:      req.Quantity,
	}
}

func OrderToAPI(m *model.Order) *apiv1.Order {
	if m == nil {
		return nil
	}

	return &apiv1.Order{
		ID:              m.ID,
		Code:            m.Code,
		Status:          string(m.Status),
		StatusLabel:     m.Status.Label(),
		StatusTone:      string(m.Status.Tone()),
		ReadOnly:        m.IsReadOnly(),
		Priority:        string(m.Priority),
		Type:            string(m.Type),
		Description:     m.Description,
		ResolutionNotes: m.ResolutionNotes,
		InternalNotes:   m.InternalNotes,
		ScheduledDate:   m.ScheduledDate,
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		ClientSignature: m.ClientSignature,
		ClientID:        m.ClientID,
		EquipmentID:     m.EquipmentID,
		TechnicianID:    m.TechnicianID,
		CreatedAt:       m.CreatedAt,
	}
}

func TransitionResultToAPI(res *model.TransitionResult) *apiv1.TransitionResponse {
	return &apiv1.TransitionResponse{
		Order:                OrderToAPI(res.Order),
		RequiresConfirmation: res.RequiresConfirmation,
		Reason:               string(res.Reason),
	}
}

func TimeEntryToAPI(e *model.TimeEntry) *apiv1.TimeEntry {
	return &apiv1.TimeEntry{
		ID:              e.ID,
		OrderID:         e.OrderID,
		Start:           e.Start,
		End:             e.End,
		DurationMinutes: e.DurationMinutes,
		Description:     e.Description,
		TechnicianID:    e.TechnicianID,
	}
}

func TimerStateToAPI(s *model.TimerState) *apiv1.TimerState {
	out := &apiv1.TimerState{
		Running:        s.Running,
		ElapsedSeconds: s.ElapsedSeconds,
		TotalMinutes:   s.TotalMinutes,
	}
	if s.Running {
		out.EntryID = lo.ToPtr(s.EntryID)
		out.Start = lo.ToPtr(s.Start)
	}
	return out
}

func PartUsageToAPI(u *model.PartUsage) *apiv1.PartUsage {
	return &apiv1.PartUsage{
		ID:             u.ID,
		OrderID:        u.OrderID,
		CatalogItemID:  u.CatalogPartID,
		Name:           u.Name,
		Reference:      u.Reference,
		Quantity:       u.Quantity,
		UnitPriceCents: u.UnitPriceCents,
		UnitPrice:      formatCents(u.UnitPriceCents),
		Total:          formatCents(u.TotalCents()),
	}
}

func ReportToAPI(r *model.Report) *apiv1.Report {
	return &apiv1.Report{
		Order: OrderToAPI(r.Order),
		TimeEntries: lo.Map(r.TimeEntries, func(e *model.TimeEntry, _ int) *apiv1.TimeEntry {
			return TimeEntryToAPI(e)
		}),
		PartUsages: lo.Map(r.PartUsages, func(u *model.PartUsage, _ int) *apiv1.PartUsage {
			return PartUsageToAPI(u)
		}),
		TotalMinutes: r.TotalMinutes,
		PartsCents:   r.PartsCents,
		PartsTotal:   formatCents(r.PartsCents),
	}
}

func WarningToAPI(w *model.DataIntegrityWarning) *apiv1.RemovePartResponse {
	if w == nil {
		return &apiv1.RemovePartResponse{}
	}
	return &apiv1.RemovePartResponse{Warning: w.String()}
}

func CatalogItemToAPI(it *model.CatalogItem) *apiv1.CatalogItem {
	return &apiv1.CatalogItem{
		ID:         it.ID,
		Name:       it.Name,
		Reference:  it.Reference,
		PriceCents: it.PriceCents,
		Price:      formatCents(it.PriceCents),
		Stock:      it.Stock,
		StockLevel: string(model.LevelOf(it.Stock)),
	}
}

func CreateCatalogItemRequestToModel(req *apiv1.CreateCatalogItemRequest) model.CatalogItem {
	return model.CatalogItem{
		ID:         req.ID,
		Name:       req.Name,
		Reference:  req.Reference,
		PriceCents: req.PriceCents,
		Stock:      req.Stock,
	}
}

func UpdateCatalogItemRequestToModel(req *apiv1.UpdateCatalogItemRequest) model.CatalogItemUpdate {
	return model.CatalogItemUpdate{
		Name:       req.Name,
		Reference:  req.Reference,
		PriceCents: req.PriceCents,
		Stock:      req.Stock,
	}
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
