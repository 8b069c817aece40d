package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/you-humble/fieldservice/internal/model"
	"github.com/you-humble/fieldservice/platform/logger"
)

// AddUsage records parts consumed by the order and debits the catalog. The
// usage record and the stock debit succeed or fail together.
func (svc *service) AddUsage(ctx context.Context, params model.AddUsageParams) (*model.PartUsage, error) {
	const op string = "order.service.AddUsage"
	log := logger.With(
		logger.String("order_id", params.OrderID.String()),
		logger.String("catalog_item_id", params.CatalogItemID),
		logger.Int64("quantity", params.Quantity),
	)

	if params.Quantity <= 0 {
		log.Warn(ctx, "non-positive quantity")
		return nil, fmt.Errorf("%s: %w", op, &model.ValidationError{
			Field:    "quantity",
			Message:  "quantity must be a positive integer",
			Redirect: model.ViewParts,
		})
	}
	itemID := strings.TrimSpace(params.CatalogItemID)
	if itemID == "" {
		return nil, fmt.Errorf("%s: %w", op, model.NewValidationError("catalog_item_id", "catalog item is required"))
	}

	v, err := svc.view(ctx, params.OrderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	v.Lock()
	defer v.Unlock()

	if v.Order.IsReadOnly() {
		log.Warn(ctx, "add part on read-only order")
		return nil, fmt.Errorf("%s: %w", op, model.ErrReadOnly)
	}

	rctx, rcancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rcancel()

	item, err := svc.catalog.ItemByID(rctx, itemID)
	if err != nil {
		log.Error(ctx, "repository catalog item by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, storeErr("ItemByID", err))
	}

	usage := &model.PartUsage{
		ID:             uuid.New(),
		OrderID:        params.OrderID,
		CatalogPartID:  item.ID,
		Name:           item.Name,
		Reference:      item.Reference,
		Quantity:       params.Quantity,
		UnitPriceCents: item.PriceCents,
	}

	snap := v.Snapshot()
	v.Usages = append(v.Usages, usage)

	wctx, wcancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wcancel()

	if err := svc.orders.CreatePartUsage(wctx, usage); err != nil {
		v.Restore(snap)
		log.Error(ctx, "repository create part usage", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, storeErr("CreatePartUsage", err))
	}

	stock, err := svc.catalog.UpdateStock(wctx, item.ID, -params.Quantity)
	if err != nil {
		v.Restore(snap)
		log.Error(ctx, "repository update stock", logger.ErrorF(err))
		uctx, ucancel := svc.undoCtx(ctx)
		defer ucancel()
		if derr := svc.orders.DeletePartUsage(uctx, usage.ID); derr != nil {
			log.Error(ctx, "compensate part usage", logger.ErrorF(derr))
		}
		return nil, fmt.Errorf("%s: %w", op, storeErr("UpdateCatalogStock", err))
	}

	if stock < 0 {
		svc.alertNegativeStock(ctx, item, stock)
	}

	log.Info(ctx, "part used", logger.String("usage_id", usage.ID.String()), logger.Int64("stock", stock))
	return usage.Clone(), nil
}

// RemoveUsage credits the stock back and deletes the usage. A catalog item
// that no longer exists does not block the removal; the returned warning
// describes the skipped credit.
func (svc *service) RemoveUsage(ctx context.Context, ordID, usageID uuid.UUID) (*model.DataIntegrityWarning, error) {
	const op string = "order.service.RemoveUsage"
	log := logger.With(
		logger.String("order_id", ordID.String()),
		logger.String("usage_id", usageID.String()),
	)

	v, err := svc.view(ctx, ordID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	v.Lock()
	defer v.Unlock()

	if v.Order.IsReadOnly() {
		log.Warn(ctx, "remove part on read-only order")
		return nil, fmt.Errorf("%s: %w", op, model.ErrReadOnly)
	}

	usage, ok := v.Usage(usageID)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, model.ErrPartUsageNotFound)
	}

	snap := v.Snapshot()
	v.RemoveUsage(usageID)

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	var warning *model.DataIntegrityWarning
	credited := true
	if _, err := svc.catalog.UpdateStock(wctx, usage.CatalogPartID, usage.Quantity); err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			v.Restore(snap)
			log.Error(ctx, "repository update stock", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, storeErr("UpdateCatalogStock", err))
		}

		credited = false
		warning = &model.DataIntegrityWarning{
			Entity:  "catalog_item",
			ID:      usage.CatalogPartID,
			Message: fmt.Sprintf("catalog item missing, %d unit(s) not returned to stock", usage.Quantity),
		}
		log.Warn(ctx, "data integrity", logger.String("warning", warning.String()))
	}

	if err := svc.orders.DeletePartUsage(wctx, usageID); err != nil {
		v.Restore(snap)
		log.Error(ctx, "repository delete part usage", logger.ErrorF(err))
		if credited {
			uctx, ucancel := svc.undoCtx(ctx)
			defer ucancel()
			if _, cerr := svc.catalog.UpdateStock(uctx, usage.CatalogPartID, -usage.Quantity); cerr != nil {
				log.Error(ctx, "compensate stock credit", logger.ErrorF(cerr))
			}
		}
		return nil, fmt.Errorf("%s: %w", op, storeErr("DeletePartUsage", err))
	}

	return warning, nil
}

func (svc *service) OrderTotal(ctx context.Context, ordID uuid.UUID) (int64, error) {
	const op string = "order.service.OrderTotal"

	v, err := svc.view(ctx, ordID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	v.Lock()
	defer v.Unlock()
	return model.OrderTotal(v.Usages), nil
}

// Negative stock is kept as is so the discrepancy stays visible.
func (svc *service) alertNegativeStock(ctx context.Context, item *model.CatalogItem, stock int64) {
	logger.Warn(ctx, "negative stock",
		logger.String("catalog_item_id", item.ID),
		logger.String("reference", item.Reference),
		logger.Int64("stock", stock),
	)

	err := svc.events.SendStockAlert(ctx, model.StockAlert{
		EventID:   uuid.New(),
		ItemID:    item.ID,
		Reference: item.Reference,
		Stock:     stock,
		At:        svc.now(),
	})
	if err != nil {
		logger.Error(ctx, "send stock alert", logger.ErrorF(err))
	}
}
