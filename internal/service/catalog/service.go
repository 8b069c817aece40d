package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/fieldservice/internal/model"
	"github.com/you-humble/fieldservice/platform/logger"
)

type CatalogRepository interface {
	List(ctx context.Context) ([]*model.CatalogItem, error)
	ItemByID(ctx context.Context, id string) (*model.CatalogItem, error)
	Create(ctx context.Context, item *model.CatalogItem) error
	Update(ctx context.Context, id string, upd model.CatalogItemUpdate) (*model.CatalogItem, error)
}

type service struct {
	repo           CatalogRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewCatalogService(
	repo CatalogRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (s *service) List(ctx context.Context) ([]*model.CatalogItem, error) {
	const op = "catalog.service.List"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	items, err := s.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list catalog", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, model.NewAdapterError("ListCatalog", err))
	}
	return items, nil
}

func (s *service) Item(ctx context.Context, id string) (*model.CatalogItem, error) {
	const op = "catalog.service.Item"
	log := logger.With(logger.String("catalog_item_id", id))

	id = strings.TrimSpace(id)
	if id == "" {
		log.Warn(ctx, "validation: empty catalog item id")
		return nil, fmt.Errorf("%s: %w", op, model.NewValidationError("id", "catalog item id must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	it, err := s.repo.ItemByID(ctx, id)
	if err != nil {
		log.Error(ctx, "repository catalog item by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, wrapStoreErr("ItemByID", err))
	}
	return it, nil
}

func (s *service) Create(ctx context.Context, item model.CatalogItem) (*model.CatalogItem, error) {
	const op = "catalog.service.Create"
	log := logger.With(logger.String("reference", item.Reference))

	item.Name = strings.TrimSpace(item.Name)
	item.Reference = strings.TrimSpace(item.Reference)
	if err := validateItem(item.Name, item.Reference, item.PriceCents); err != nil {
		log.Warn(ctx, "invalid catalog item", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Create(ctx, &item); err != nil {
		log.Error(ctx, "repository create catalog item", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, wrapStoreErr("CreateCatalogItem", err))
	}

	log.Info(ctx, "catalog item created", logger.String("catalog_item_id", item.ID))
	return &item, nil
}

// Update edits name, reference, price or a stock correction.
func (s *service) Update(ctx context.Context, id string, upd model.CatalogItemUpdate) (*model.CatalogItem, error) {
	const op = "catalog.service.Update"
	log := logger.With(logger.String("catalog_item_id", id))

	if upd == (model.CatalogItemUpdate{}) {
		return s.Item(ctx, id)
	}
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, fmt.Errorf("%s: %w", op, model.NewValidationError("name", "name must be non-empty"))
	}
	if upd.Reference != nil && strings.TrimSpace(*upd.Reference) == "" {
		return nil, fmt.Errorf("%s: %w", op, model.NewValidationError("reference", "reference must be non-empty"))
	}
	if upd.PriceCents != nil && *upd.PriceCents < 0 {
		return nil, fmt.Errorf("%s: %w", op, model.NewValidationError("price", "price must not be negative"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	it, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		log.Error(ctx, "repository update catalog item", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, wrapStoreErr("UpdateCatalogItem", err))
	}

	if upd.Stock != nil {
		log.Info(ctx, "stock corrected", logger.Int64("stock", it.Stock))
	}
	return it, nil
}

func validateItem(name, reference string, priceCents int64) error {
	switch {
	case name == "":
		return model.NewValidationError("name", "name must be non-empty")
	case reference == "":
		return model.NewValidationError("reference", "reference must be non-empty")
	case priceCents < 0:
		return model.NewValidationError("price", "price must not be negative")
	}
	return nil
}

func wrapStoreErr(op string, err error) error {
	if model.IsDomainError(err) {
		return err
	}
	return model.NewAdapterError(op, err)
}
