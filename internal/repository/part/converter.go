package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/fieldservice/internal/model"
)

func EntityToModel(e *ItemEntity) *model.CatalogItem {
	if e == nil {
		return nil
	}

	return &model.CatalogItem{
		ID:         e.ID,
		Name:       e.Name,
		Reference:  e.Reference,
		PriceCents: e.PriceCents,
		Stock:      e.Stock,
	}
}

func EntityFromModel(it *model.CatalogItem) *ItemEntity {
	if it == nil {
		return nil
	}

	return &ItemEntity{
		ID:         it.ID,
		Name:       it.Name,
		Reference:  it.Reference,
		PriceCents: it.PriceCents,
		Stock:      it.Stock,
	}
}

func BuildSetDocument(upd model.CatalogItemUpdate) bson.M {
	set := bson.M{}

	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Reference != nil {
		set["reference"] = *upd.Reference
	}
	if upd.PriceCents != nil {
		set["price_cents"] = *upd.PriceCents
	}
	if upd.Stock != nil {
		set["stock"] = *upd.Stock
	}

	return set
}
