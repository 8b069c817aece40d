package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/fieldservice/internal/model"
	"github.com/you-humble/fieldservice/internal/workspace"
	"github.com/you-humble/fieldservice/platform/ctxutil"
	"github.com/you-humble/fieldservice/platform/logger"
)

// maxCodeAttempts bounds code regeneration on a unique-code collision.
const maxCodeAttempts = 5

type OrderRepository interface {
	CreateOrder(ctx context.Context, ord *model.Order) error
	UpdateOrder(ctx context.Context, id uuid.UUID, upd model.OrderUpdate) error
	OrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	ListTimeEntries(ctx context.Context, orderID uuid.UUID) ([]*model.TimeEntry, error)
	CreateTimeEntry(ctx context.Context, entry *model.TimeEntry) error
	UpdateTimeEntry(ctx context.Context, id uuid.UUID, upd model.TimeEntryUpdate) error
	DeleteTimeEntry(ctx context.Context, id uuid.UUID) error

	ListPartUsages(ctx context.Context, orderID uuid.UUID) ([]*model.PartUsage, error)
	CreatePartUsage(ctx context.Context, usage *model.PartUsage) error
	DeletePartUsage(ctx context.Context, id uuid.UUID) error
}

type CatalogRepository interface {
	ItemByID(ctx context.Context, id string) (*model.CatalogItem, error)
	// UpdateStock applies delta and returns the resulting stock.
	UpdateStock(ctx context.Context, id string, delta int64) (int64, error)
}

type EventSender interface {
	SendStatusChanged(ctx context.Context, ev model.StatusChanged) error
	SendStockAlert(ctx context.Context, ev model.StockAlert) error
}

type SummaryProvider interface {
	Suggest(ctx context.Context, req model.SummaryRequest) (string, error)
}

type Option func(*service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	orders         OrderRepository
	catalog        CatalogRepository
	events         EventSender
	summary        SummaryProvider
	views          *workspace.Registry
	now            func() time.Time
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewOrderService(
	orders OrderRepository,
	catalog CatalogRepository,
	events EventSender,
	summary SummaryProvider,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
	opts ...Option,
) *service {
	svc := &service{
		orders:         orders,
		catalog:        catalog,
		events:         events,
		summary:        summary,
		views:          workspace.NewRegistry(),
		now:            time.Now,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (svc *service) Create(ctx context.Context, params model.CreateOrderParams) (*model.Order, error) {
	const op string = "order.service.Create"
	log := logger.With(
		logger.String("client_id", params.ClientID.String()),
		logger.String("type", string(params.Type)),
	)

	if err := validateCreate(params); err != nil {
		log.Warn(ctx, "invalid order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := svc.now()
	ord := &model.Order{
		ID:            uuid.New(),
		Code:          model.GenerateCode(now, rand.IntN(9000)),
		Status:        model.StatusNotStarted,
		Priority:      params.Priority,
		Type:          params.Type,
		Description:   strings.TrimSpace(params.Description),
		ScheduledDate: params.ScheduledDate,
		ClientID:      params.ClientID,
		EquipmentID:   params.EquipmentID,
		TechnicianID:  technicianID(ctx, params.TechnicianID),
		CreatedAt:     now,
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.createWithFreshCode(ctx, ord, now); err != nil {
		log.Error(ctx, "repository create order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, storeErr("CreateOrder", err))
	}

	v := svc.views.Put(workspace.NewView(ord, nil, nil))
	log.Info(ctx, "order created", logger.String("order_id", ord.ID.String()), logger.String("code", ord.Code))

	v.Lock()
	defer v.Unlock()
	return v.Order.Clone(), nil
}

// createWithFreshCode draws a new code when the store reports a collision.
func (svc *service) createWithFreshCode(ctx context.Context, ord *model.Order, now time.Time) error {
	var err error
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		if err = svc.orders.CreateOrder(ctx, ord); !errors.Is(err, model.ErrConflict) {
			return err
		}
		logger.Warn(ctx, "order code taken", logger.String("code", ord.Code), logger.Int("attempt", attempt))
		ord.Code = model.GenerateCode(now, rand.IntN(9000))
	}
	return err
}

func validateCreate(params model.CreateOrderParams) error {
	switch {
	case params.ClientID == uuid.Nil:
		return model.NewValidationError("client_id", "client is required")
	case strings.TrimSpace(params.Description) == "":
		return model.NewValidationError("description", "problem description is required")
	case !params.Type.Valid():
		return model.NewValidationError("type", fmt.Sprintf("unknown order type %q", params.Type))
	case !params.Priority.Valid():
		return model.NewValidationError("priority", fmt.Sprintf("unknown priority %q", params.Priority))
	}
	return nil
}

func (svc *service) OrderByID(ctx context.Context, ordID uuid.UUID) (*model.Order, error) {
	const op string = "order.service.OrderByID"

	v, err := svc.view(ctx, ordID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	v.Lock()
	defer v.Unlock()
	return v.Order.Clone(), nil
}

// Report returns the order with both ledgers and their totals.
func (svc *service) Report(ctx context.Context, ordID uuid.UUID) (*model.Report, error) {
	const op string = "order.service.Report"

	v, err := svc.view(ctx, ordID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	v.Lock()
	defer v.Unlock()
	return v.Report(), nil
}

// SaveProgress writes notes and schedule without touching the status.
func (svc *service) SaveProgress(ctx context.Context, params model.ProgressParams) (*model.Order, error) {
	const op string = "order.service.SaveProgress"
	log := logger.With(logger.String("order_id", params.OrderID.String()))

	v, err := svc.view(ctx, params.OrderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	v.Lock()
	defer v.Unlock()

	if v.Order.IsReadOnly() {
		log.Warn(ctx, "save progress on read-only order", logger.String("status", string(v.Order.Status)))
		return nil, fmt.Errorf("%s: %w", op, model.ErrReadOnly)
	}

	upd := model.OrderUpdate{
		ResolutionNotes: params.ResolutionNotes,
		InternalNotes:   params.InternalNotes,
		ScheduledDate:   params.ScheduledDate,
	}
	if upd.Empty() {
		return v.Order.Clone(), nil
	}

	snap := v.Snapshot()
	upd.Apply(v.Order)

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.orders.UpdateOrder(ctx, v.Order.ID, upd); err != nil {
		v.Restore(snap)
		log.Error(ctx, "repository update order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, storeErr("UpdateOrder", err))
	}

	return v.Order.Clone(), nil
}

// view returns the cached view of the order, loading it from the store on
// first access.
func (svc *service) view(ctx context.Context, ordID uuid.UUID) (*workspace.View, error) {
	if v, ok := svc.views.Get(ordID); ok {
		return v, nil
	}

	log := logger.With(logger.String("order_id", ordID.String()))

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	ord, err := svc.orders.OrderByID(ctx, ordID)
	if err != nil {
		log.Error(ctx, "repository order by id", logger.ErrorF(err))
		return nil, storeErr("OrderByID", err)
	}

	entries, err := svc.orders.ListTimeEntries(ctx, ordID)
	if err != nil {
		log.Error(ctx, "repository list time entries", logger.ErrorF(err))
		return nil, storeErr("ListTimeEntries", err)
	}

	usages, err := svc.orders.ListPartUsages(ctx, ordID)
	if err != nil {
		log.Error(ctx, "repository list part usages", logger.ErrorF(err))
		return nil, storeErr("ListPartUsages", err)
	}

	return svc.views.Put(workspace.NewView(ord, entries, usages)), nil
}

// storeErr passes domain errors through and marks everything else as a
// retryable adapter failure.
func storeErr(op string, err error) error {
	if model.IsDomainError(err) {
		return err
	}
	return model.NewAdapterError(op, err)
}

// undoCtx outlives the caller's deadline so a compensating write still runs
// after the original write timed out.
func (svc *service) undoCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), svc.writeDBTimeout)
}

func technicianID(ctx context.Context, explicit *uuid.UUID) *uuid.UUID {
	if explicit != nil && *explicit != uuid.Nil {
		return explicit
	}
	if id, ok := ctxutil.TechnicianIDFromCtx(ctx); ok {
		return &id
	}
	return nil
}
