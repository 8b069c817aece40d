package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apiv1 "github.com/you-humble/fieldservice/internal/api/v1"
	"github.com/you-humble/fieldservice/internal/converter"
	"github.com/you-humble/fieldservice/internal/model"
	"github.com/you-humble/fieldservice/internal/transport/http/response"
)

type OrderService interface {
	Create(ctx context.Context, params model.CreateOrderParams) (*model.Order, error)
	OrderByID(ctx context.Context, ordID uuid.UUID) (*model.Order, error)
	Report(ctx context.Context, ordID uuid.UUID) (*model.Report, error)
	Transition(ctx context.Context, req model.TransitionRequest) (*model.TransitionResult, error)
	SaveProgress(ctx context.Context, params model.ProgressParams) (*model.Order, error)

	StartTimer(ctx context.Context, ordID uuid.UUID) (*model.TimeEntry, error)
	StopTimer(ctx context.Context, ordID uuid.UUID) (*model.TimeEntry, error)
	Timer(ctx context.Context, ordID uuid.UUID) (*model.TimerState, error)
	AddManualEntry(ctx context.Context, params model.ManualEntryParams) (*model.TimeEntry, error)
	RemoveEntry(ctx context.Context, ordID, entryID uuid.UUID) error

	AddUsage(ctx context.Context, params model.AddUsageParams) (*model.PartUsage, error)
	RemoveUsage(ctx context.Context, ordID, usageID uuid.UUID) (*model.DataIntegrityWarning, error)

	SuggestNotes(ctx context.Context, ordID uuid.UUID, draft string) (string, error)
}

type handler struct {
	svc OrderService
}

func NewOrderHandler(service OrderService) *handler {
	return &handler{svc: service}
}

// Routes mounts under /api/v1/orders.
func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateOrder)
	r.Route("/{orderID}", func(r chi.Router) {
		r.Get("/", h.GetOrder)
		r.Get("/report", h.GetReport)
		r.Post("/transitions", h.Transition)
		r.Put("/progress", h.SaveProgress)

		r.Get("/timer", h.GetTimer)
		r.Post("/timer/start", h.StartTimer)
		r.Post("/timer/stop", h.StopTimer)
		r.Post("/time-entries", h.AddTimeEntry)
		r.Delete("/time-entries/{entryID}", h.RemoveTimeEntry)

		r.Post("/parts", h.AddPart)
		r.Delete("/parts/{usageID}", h.RemovePart)

		r.Post("/notes-suggestion", h.SuggestNotes)
	})
	return r
}

func (h *handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req apiv1.CreateOrderRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(ctx, w, err)
		return
	}

	ord, err := h.svc.Create(ctx, converter.CreateOrderRequestToParams(&req))
	if err != nil {
		response.Error(ctx, w, err)
		return
	}

	response.JSON(ctx, w, http.StatusCreated, converter.OrderToAPI(ord))
}

func (h *handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ordID, ok := pathUUID(w, r, "orderID")
	if !ok {
		return
	}

	ord, err := h.svc.OrderByID(ctx, ordID)
	if err != nil {
		response.Error(ctx, w, err)
		return
	}

	response.JSON(ctx, w, http.StatusOK, converter.OrderToAPI(ord))
}

func (h *handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ordID, ok := pathUUID(w, r, "orderID")
	if !ok {
		return
	}

	rep, err := h.svc.Report(ctx, ordID)
	if err != nil {
		response.Error(ctx, w, err)
		return
	}

	response.JSON(ctx, w, http.StatusOK, converter.ReportToAPI(rep))
}

// Transition answers 202 when the caller still has to confirm.
func (h *handler) Transition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ordID, ok := pathUUID(w, r, "orderID")
	if !ok {
		return
	}

	var req apiv1.TransitionRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(ctx, w, err)
		return
	}

	res, err := h.svc.Transition(ctx, converter.TransitionRequestToModel(ordID, &req))
	if err != nil {
		response.Error(ctx, w, err)
		return
	}

	status := http.StatusOK
	if res.RequiresConfirmation {
		status = http.StatusAccepted
	}
	response.JSON(ctx, w, status, converter.TransitionResultToAPI(res))
}

func (h *handler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ordID, ok := pathUUID(w, r, "orderID")
	if !ok {
		return
	}

	var req apiv1.ProgressRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(ctx, w, err)
		return
	}

	ord, err := h.svc.SaveProgress(ctx, converter.ProgressRequestToParams(ordID, &req))
	if err != nil {
		response.Error(ctx, w, err)
		return
	}

	response.JSON(ctx, w, http.StatusOK, converter.OrderToAPI(ord))
}

func (h *handler) GetTimer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ordID, ok := pathUUID(w, r, "orderID")
	if !ok {
		return
	}

	st, err := h.svc.Timer(ctx, ordID)
	if err != nil {
		response.Error(ctx, w, err)
		return
	}

	response.JSON(ctx, w, http.StatusOK, converter.TimerStateToAPI(st))
}

func (h *handler) StartTimer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ordID, ok := pathUUID(w, r, "orderID")
	if !ok {
		return
	}

	entry, err := h.svc.StartTimer(ctx, ordID)
	if err != nil {
		response.Error(ctx, w, err)
		return
	}

	response.JSON(ctx, w, http.StatusCreated, converter.TimeEntryToAPI(entry))
}

func (h *handler) StopTimer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ordID, ok := pathUUID(w, r, "orderID")
	if !ok {
		return
	}

	entry, err := h.svc.StopTimer(ctx, ordID)
	if err != nil {
		response.Error(ctx, w, err)
		return
	}

	response.JSON(ctx, w, http.StatusOK, converter.TimeEntryToAPI(entry))
}

func (h *handler) AddTimeEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ordID, ok := pathUUID(w, r, "orderID")
	if !ok {
		return
	}

	var req apiv1.ManualEntryRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(ctx, w, err)
		return
	}

	entry, err := h.svc.AddManualEntry(ctx, converter.ManualEntryRequestToParams(ordID, &req))
	if err != nil {
		response.Error(ctx, w, err)
		return
	}

	response.JSON(ctx, w, http.StatusCreated, converter.TimeEntryToAPI(entry))
}

func (h *handler) RemoveTimeEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ordID, ok := pathUUID(w, r, "orderID")
	if !ok {
		return
	}
	entryID, ok := pathUUID(w, r, "entryID")
	if !ok {
		return
	}

	if err := h.svc.RemoveEntry(ctx, ordID, entryID); err != nil {
		response.Error(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) AddPart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ordID, ok := pathUUID(w, r, "orderID")
	if !ok {
		return
	}

	var req apiv1.AddPartRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(ctx, w, err)
		return
	}

	usage, err := h.svc.AddUsage(ctx, converter.AddPartRequestToParams(ordID, &req))
	if err != nil {
		response.Error(ctx, w, err)
		return
	}

	response.JSON(ctx, w, http.StatusCreated, converter.PartUsageToAPI(usage))
}

// RemovePart succeeds even when the catalog item is gone; the body then
// carries the integrity warning.
func (h *handler) RemovePart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ordID, ok := pathUUID(w, r, "orderID")
	if !ok {
		return
	}
	usageID, ok := pathUUID(w, r, "usageID")
	if !ok {
		return
	}

	warning, err := h.svc.RemoveUsage(ctx, ordID, usageID)
	if err != nil {
		response.Error(ctx, w, err)
		return
	}

	response.JSON(ctx, w, http.StatusOK, converter.WarningToAPI(warning))
}

func (h *handler) SuggestNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ordID, ok := pathUUID(w, r, "orderID")
	if !ok {
		return
	}

	var req apiv1.SuggestNotesRequest
	if r.ContentLength != 0 {
		if err := response.Decode(r, &req); err != nil {
			response.Error(ctx, w, err)
			return
		}
	}

	text, err := h.svc.SuggestNotes(ctx, ordID, req.DraftNotes)
	if err != nil {
		response.Error(ctx, w, err)
		return
	}

	response.JSON(ctx, w, http.StatusOK, &apiv1.SuggestNotesResponse{Text: text})
}

func pathUUID(w http.ResponseWriter, r *http.Request, key string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, key))
	if err != nil {
		response.Error(r.Context(), w, model.NewValidationError(key, "invalid uuid"))
		return uuid.Nil, false
	}
	return id, true
}
