package bootstrap

import (
	"context"

	"github.com/you-humble/fieldservice/internal/model"
)

type BatchCreator interface {
	// CreateBatch inserts items whose id is not present yet and leaves the
	// rest untouched, so seeding twice is harmless.
	CreateBatch(ctx context.Context, items []*model.CatalogItem) error
}

func CatalogBootstrap(ctx context.Context, c BatchCreator) error {
	return c.CreateBatch(ctx, CatalogItems())
}

// CatalogItems is the reference stock a fresh installation starts with.
func CatalogItems() []*model.CatalogItem {
	return []*model.CatalogItem{
		{
			ID:         "p1",
			Name:       "Termostato Digital",
			Reference:  "TERM-001",
			PriceCents: 4550,
			Stock:      10,
		},
		{
			ID:         "p2",
			Name:       "Compressor 1/2HP",
			Reference:  "COMP-12",
			PriceCents: 25000,
			Stock:      3,
		},
		{
			ID:         "p3",
			Name:       "Gás Refrigerante R404A (kg)",
			Reference:  "GAS-404",
			PriceCents: 8000,
			Stock:      50,
		},
		{
			ID:         "p4",
			Name:       "Bomba de Água",
			Reference:  "PUMP-H2O",
			PriceCents: 12000,
			Stock:      5,
		},
		{
			ID:         "p5",
			Name:       "Vedante Porta",
			Reference:  "VED-09",
			PriceCents: 3500,
			Stock:      15,
		},
	}
}
