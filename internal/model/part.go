package model

import (
	"github.com/google/uuid"
)

type CatalogItem struct {
	ID        string
	Name      string
	Reference string
	// Unit price in cents.
	PriceCents int64
	// Stock may be negative; it is never clamped.
	Stock int64
}

func (c *CatalogItem) Clone() *CatalogItem {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}

type CatalogItemUpdate struct {
	Name       *string
	Reference  *string
	PriceCents *int64
	Stock      *int64
}

func (u CatalogItemUpdate) Apply(c *CatalogItem) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Reference != nil {
		c.Reference = *u.Reference
	}
	if u.PriceCents != nil {
		c.PriceCents = *u.PriceCents
	}
	if u.Stock != nil {
		c.Stock = *u.Stock
	}
}

type StockLevel string

const (
	StockInStock StockLevel = "in_stock"
	StockLow     StockLevel = "low"
	StockOut     StockLevel = "out"
)

const lowStockThreshold = 5

func LevelOf(stock int64) StockLevel {
	switch {
	case stock > lowStockThreshold:
		return StockInStock
	case stock > 0:
		return StockLow
	default:
		return StockOut
	}
}

type PartUsage struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	CatalogPartID string
	Name          string
	Reference     string
	Quantity      int64
	// Snapshot of the catalog price when the part was used.
	UnitPriceCents int64
}

func (u *PartUsage) Clone() *PartUsage {
	if u == nil {
		return nil
	}
	v := *u
	return &v
}

func (u *PartUsage) TotalCents() int64 { return u.Quantity * u.UnitPriceCents }

type AddUsageParams struct {
	OrderID       uuid.UUID
	CatalogItemID string
	Quantity      int64
}

// OrderTotal uses the snapshot prices, never the live catalog.
func OrderTotal(usages []*PartUsage) int64 {
	var total int64
	for _, u := range usages {
		total += u.TotalCents()
	}
	return total
}
