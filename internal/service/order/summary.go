package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/fieldservice/internal/model"
	"github.com/you-humble/fieldservice/platform/logger"
)

const defaultDraftNotes = "Repair performed."

// SuggestNotes asks the provider for resolution notes. The order is not
// modified; the caller decides whether to save the suggestion.
func (svc *service) SuggestNotes(ctx context.Context, ordID uuid.UUID, draft string) (string, error) {
	const op string = "order.service.SuggestNotes"
	log := logger.With(logger.String("order_id", ordID.String()))

	if svc.summary == nil {
		return "", fmt.Errorf("%s: summary provider not configured: %w", op, model.ErrBadGateway)
	}

	v, err := svc.view(ctx, ordID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	v.Lock()
	req := summaryRequest(v.Order, v.Usages, draft, svc.now())
	v.Unlock()

	suggestion, err := svc.summary.Suggest(ctx, req)
	if err != nil {
		log.Error(ctx, "summary provider suggest", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, model.ErrBadGateway)
	}

	return strings.TrimSpace(suggestion), nil
}

func summaryRequest(ord *model.Order, usages []*model.PartUsage, draft string, now time.Time) model.SummaryRequest {
	if strings.TrimSpace(draft) == "" {
		draft = lo.FromPtrOr(ord.ResolutionNotes, "")
	}
	if strings.TrimSpace(draft) == "" {
		draft = defaultDraftNotes
	}

	return model.SummaryRequest{
		Description: ord.Description,
		DraftNotes:  draft,
		PartNames: lo.Map(usages, func(u *model.PartUsage, _ int) string {
			return fmt.Sprintf("%dx %s", u.Quantity, u.Name)
		}),
		DurationLabel: durationLabel(ord, now),
	}
}

// durationLabel spans from the first start to the end, or to now while the
// order is still being worked. A reopened order keeps its old end time, so
// the end only counts once the order is read-only again.
func durationLabel(ord *model.Order, now time.Time) string {
	if ord.StartTime == nil {
		return "N/A"
	}
	end := now
	if ord.EndTime != nil && ord.IsReadOnly() {
		end = *ord.EndTime
	}
	return fmt.Sprintf("%.1f hours", end.Sub(*ord.StartTime).Hours())
}
