package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/you-humble/fieldservice/internal/model"
	"github.com/you-humble/fieldservice/platform/logger"
)

// StartTimer opens a time entry and moves the order to STARTED.
func (svc *service) StartTimer(ctx context.Context, ordID uuid.UUID) (*model.TimeEntry, error) {
	const op string = "order.service.StartTimer"
	log := logger.With(logger.String("order_id", ordID.String()))

	v, err := svc.view(ctx, ordID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	v.Lock()
	defer v.Unlock()

	ord := v.Order
	from := ord.Status

	if ord.IsReadOnly() {
		log.Warn(ctx, "start timer on read-only order", logger.String("status", string(from)))
		return nil, fmt.Errorf("%s: %w", op, model.ErrReadOnly)
	}
	if _, ok := v.OpenEntry(); ok {
		log.Warn(ctx, "timer already running")
		return nil, fmt.Errorf("%s: %w", op, model.ErrTimerRunning)
	}

	now := svc.now()
	entry := &model.TimeEntry{
		ID:           uuid.New(),
		OrderID:      ordID,
		Start:        now,
		TechnicianID: technicianID(ctx, nil),
	}

	var upd model.OrderUpdate
	if from != model.StatusStarted {
		started := model.StatusStarted
		upd.Status = &started
		if ord.StartTime == nil {
			upd.StartTime = &now
		}
	}

	snap := v.Snapshot()
	v.Entries = append(v.Entries, entry)
	upd.Apply(ord)

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.orders.CreateTimeEntry(wctx, entry); err != nil {
		v.Restore(snap)
		log.Error(ctx, "repository create time entry", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, storeErr("CreateTimeEntry", err))
	}

	if !upd.Empty() {
		if err := svc.orders.UpdateOrder(wctx, ordID, upd); err != nil {
			v.Restore(snap)
			log.Error(ctx, "repository update order", logger.ErrorF(err))
			uctx, ucancel := svc.undoCtx(ctx)
			defer ucancel()
			if derr := svc.orders.DeleteTimeEntry(uctx, entry.ID); derr != nil {
				log.Error(ctx, "compensate time entry", logger.ErrorF(derr))
			}
			return nil, fmt.Errorf("%s: %w", op, storeErr("UpdateOrder", err))
		}
		svc.publishStatusChanged(ctx, ord, from, now)
	}

	log.Info(ctx, "timer started", logger.String("entry_id", entry.ID.String()))
	return entry.Clone(), nil
}

// StopTimer closes the running entry. The order status is left alone.
func (svc *service) StopTimer(ctx context.Context, ordID uuid.UUID) (*model.TimeEntry, error) {
	const op string = "order.service.StopTimer"
	log := logger.With(logger.String("order_id", ordID.String()))

	v, err := svc.view(ctx, ordID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	v.Lock()
	defer v.Unlock()

	if _, ok := v.OpenEntry(); !ok {
		log.Warn(ctx, "no running timer")
		return nil, fmt.Errorf("%s: %w", op, model.ErrNoRunningTimer)
	}

	snap := v.Snapshot()
	entry, _ := v.OpenEntry()
	entry.Close(svc.now())

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.orders.UpdateTimeEntry(ctx, entry.ID, model.TimeEntryUpdate{
		End:             entry.End,
		DurationMinutes: entry.DurationMinutes,
	}); err != nil {
		v.Restore(snap)
		log.Error(ctx, "repository update time entry", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, storeErr("UpdateTimeEntry", err))
	}

	log.Info(ctx, "timer stopped",
		logger.String("entry_id", entry.ID.String()),
		logger.Int64("duration_minutes", *entry.DurationMinutes),
	)
	return entry.Clone(), nil
}

// AddManualEntry records a closed interval. It does not touch a running timer.
func (svc *service) AddManualEntry(ctx context.Context, params model.ManualEntryParams) (*model.TimeEntry, error) {
	const op string = "order.service.AddManualEntry"
	log := logger.With(logger.String("order_id", params.OrderID.String()))

	if !params.End.After(params.Start) {
		log.Warn(ctx, "manual entry ends before it starts")
		return nil, fmt.Errorf("%s: %w", op, model.NewValidationError("end", "end must be after start"))
	}

	v, err := svc.view(ctx, params.OrderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	v.Lock()
	defer v.Unlock()

	if v.Order.IsReadOnly() {
		log.Warn(ctx, "manual entry on read-only order")
		return nil, fmt.Errorf("%s: %w", op, model.ErrReadOnly)
	}

	entry := &model.TimeEntry{
		ID:           uuid.New(),
		OrderID:      params.OrderID,
		Start:        params.Start,
		Description:  params.Description,
		TechnicianID: technicianID(ctx, nil),
	}
	entry.Close(params.End)

	snap := v.Snapshot()
	v.Entries = append(v.Entries, entry)

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.orders.CreateTimeEntry(ctx, entry); err != nil {
		v.Restore(snap)
		log.Error(ctx, "repository create time entry", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, storeErr("CreateTimeEntry", err))
	}

	return entry.Clone(), nil
}

// RemoveEntry deletes a closed entry.
func (svc *service) RemoveEntry(ctx context.Context, ordID, entryID uuid.UUID) error {
	const op string = "order.service.RemoveEntry"
	log := logger.With(
		logger.String("order_id", ordID.String()),
		logger.String("entry_id", entryID.String()),
	)

	v, err := svc.view(ctx, ordID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	v.Lock()
	defer v.Unlock()

	if v.Order.IsReadOnly() {
		log.Warn(ctx, "remove entry on read-only order")
		return fmt.Errorf("%s: %w", op, model.ErrReadOnly)
	}

	entry, ok := v.Entry(entryID)
	if !ok {
		return fmt.Errorf("%s: %w", op, model.ErrTimeEntryNotFound)
	}
	if entry.IsOpen() {
		log.Warn(ctx, "remove running entry")
		return fmt.Errorf("%s: %w", op, model.ErrEntryRunning)
	}

	snap := v.Snapshot()
	v.RemoveEntry(entryID)

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.orders.DeleteTimeEntry(ctx, entryID); err != nil {
		v.Restore(snap)
		log.Error(ctx, "repository delete time entry", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, storeErr("DeleteTimeEntry", err))
	}

	return nil
}

// Timer reports the running entry for display. Elapsed time is derived from
// the entry start on every call.
func (svc *service) Timer(ctx context.Context, ordID uuid.UUID) (*model.TimerState, error) {
	const op string = "order.service.Timer"

	v, err := svc.view(ctx, ordID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	v.Lock()
	defer v.Unlock()

	state := &model.TimerState{TotalMinutes: model.TotalMinutes(v.Entries)}
	if open, ok := v.OpenEntry(); ok {
		state.Running = true
		state.EntryID = open.ID
		state.Start = open.Start
		state.ElapsedSeconds = model.ElapsedSeconds(open.Start, svc.now())
	}
	return state, nil
}

func (svc *service) TotalMinutes(ctx context.Context, ordID uuid.UUID) (int64, error) {
	const op string = "order.service.TotalMinutes"

	v, err := svc.view(ctx, ordID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	v.Lock()
	defer v.Unlock()
	return model.TotalMinutes(v.Entries), nil
}
