package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/fieldservice/internal/model"
	"github.com/you-humble/fieldservice/internal/workspace"
	"github.com/you-humble/fieldservice/platform/logger"
)

// Transition moves the order to req.Target. Transitions that need the
// caller's consent return RequiresConfirmation and change nothing until they
// are repeated with Confirmed set.
func (svc *service) Transition(ctx context.Context, req model.TransitionRequest) (*model.TransitionResult, error) {
	const op string = "order.service.Transition"
	log := logger.With(
		logger.String("order_id", req.OrderID.String()),
		logger.String("target", string(req.Target)),
	)

	if !req.Target.Valid() {
		log.Warn(ctx, "unknown target status")
		return nil, fmt.Errorf("%s: %w", op, model.NewValidationError("status", fmt.Sprintf("unknown status %q", req.Target)))
	}

	v, err := svc.view(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	v.Lock()
	defer v.Unlock()

	ord := v.Order
	from := ord.Status
	log = log.With(logger.String("from", string(from)))

	if err := checkTransition(from, req.Target); err != nil {
		log.Warn(ctx, "transition rejected", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	notes := ord.ResolutionNotes
	if req.ResolutionNotes != nil {
		notes = req.ResolutionNotes
	}
	if req.Target == model.StatusCompleted && (notes == nil || strings.TrimSpace(*notes) == "") {
		log.Warn(ctx, "completion without resolution notes")
		return nil, fmt.Errorf("%s: %w", op, &model.ValidationError{
			Field:    "resolution_notes",
			Message:  "resolution notes are required to complete the order",
			Redirect: model.ViewReport,
		})
	}

	if reason, ok := confirmationReason(ord, req); ok && !req.Confirmed {
		log.Info(ctx, "transition requires confirmation", logger.String("reason", string(reason)))
		return &model.TransitionResult{
			Order:                ord.Clone(),
			RequiresConfirmation: true,
			Reason:               reason,
		}, nil
	}

	now := svc.now()
	target := req.Target
	upd := model.OrderUpdate{Status: &target}

	switch target {
	case model.StatusAssigned:
		upd.TechnicianID = technicianID(ctx, req.TechnicianID)
	case model.StatusStarted:
		if ord.StartTime == nil {
			upd.StartTime = &now
		}
	case model.StatusCompleted:
		upd.EndTime = &now
		upd.ResolutionNotes = notes
		upd.InternalNotes = req.InternalNotes
		upd.ClientSignature = req.ClientSignature
	}

	snap := v.Snapshot()

	var closed *model.TimeEntry
	if target == model.StatusPaused || target == model.StatusCompleted {
		if open, ok := v.OpenEntry(); ok {
			open.Close(now)
			closed = open
		}
	}
	upd.Apply(ord)

	if err := svc.commit(ctx, v, upd, closed); err != nil {
		v.Restore(snap)
		log.Error(ctx, "commit transition", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "order transitioned")
	svc.publishStatusChanged(ctx, v.Order, from, now)

	res := &model.TransitionResult{Order: v.Order.Clone()}
	if target.IsTerminal() {
		svc.views.Forget(ord.ID)
	}
	return res, nil
}

func checkTransition(from, to model.OrderStatus) error {
	if from.IsTerminal() {
		return fmt.Errorf("%w: order is %s, no further transitions allowed", model.ErrPrecondition, from)
	}
	if !model.CanTransition(from, to) {
		return fmt.Errorf("%w: transition %s -> %s is not allowed", model.ErrPrecondition, from, to)
	}
	return nil
}

func confirmationReason(ord *model.Order, req model.TransitionRequest) (model.ConfirmationReason, bool) {
	switch {
	case model.IsReopen(ord.Status, req.Target):
		return model.ReasonReopen, true
	case req.Target == model.StatusInvoiced:
		return model.ReasonInvoice, true
	case req.Target == model.StatusCanceled:
		return model.ReasonCancel, true
	case req.Target == model.StatusCompleted && blank(req.ClientSignature) && blank(ord.ClientSignature):
		return model.ReasonMissingSignature, true
	}
	return "", false
}

// commit writes the closed time entry first, then the order. When the order
// write fails the stored entry is reopened so the store matches the restored
// view.
func (svc *service) commit(ctx context.Context, v *workspace.View, upd model.OrderUpdate, closed *model.TimeEntry) error {
	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if closed != nil {
		if err := svc.orders.UpdateTimeEntry(wctx, closed.ID, model.TimeEntryUpdate{
			End:             closed.End,
			DurationMinutes: closed.DurationMinutes,
		}); err != nil {
			return storeErr("UpdateTimeEntry", err)
		}
	}

	if err := svc.orders.UpdateOrder(wctx, v.Order.ID, upd); err != nil {
		if closed != nil {
			uctx, ucancel := svc.undoCtx(ctx)
			defer ucancel()
			if rerr := svc.orders.UpdateTimeEntry(uctx, closed.ID, model.TimeEntryUpdate{Reopen: true}); rerr != nil {
				logger.Error(ctx, "compensate time entry close",
					logger.String("entry_id", closed.ID.String()),
					logger.ErrorF(rerr),
				)
			}
		}
		return storeErr("UpdateOrder", err)
	}
	return nil
}

// publishStatusChanged is best effort: the transition is already committed.
func (svc *service) publishStatusChanged(ctx context.Context, ord *model.Order, from model.OrderStatus, at time.Time) {
	err := svc.events.SendStatusChanged(ctx, model.StatusChanged{
		EventID: uuid.New(),
		OrderID: ord.ID,
		Code:    ord.Code,
		From:    from,
		To:      ord.Status,
		At:      at,
	})
	if err != nil {
		logger.Error(ctx, "send status changed",
			logger.String("order_id", ord.ID.String()),
			logger.ErrorF(err),
		)
	}
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
