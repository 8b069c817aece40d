// Package memory keeps orders and the catalog in process memory. It backs
// local runs and tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/fieldservice/internal/model"
)

type orderRepository struct {
	mu      sync.RWMutex
	orders  map[uuid.UUID]*model.Order
	entries map[uuid.UUID]*model.TimeEntry
	usages  map[uuid.UUID]*model.PartUsage
}

func NewOrderRepository() *orderRepository {
	return &orderRepository{
		orders:  make(map[uuid.UUID]*model.Order),
		entries: make(map[uuid.UUID]*model.TimeEntry),
		usages:  make(map[uuid.UUID]*model.PartUsage),
	}
}

func (r *orderRepository) CreateOrder(_ context.Context, ord *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ord.ID == uuid.Nil {
		ord.ID = uuid.New()
	}
	if _, ok := r.orders[ord.ID]; ok {
		return model.ErrConflict
	}
	r.orders[ord.ID] = ord.Clone()
	return nil
}

func (r *orderRepository) UpdateOrder(_ context.Context, id uuid.UUID, upd model.OrderUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ord, ok := r.orders[id]
	if !ok {
		return model.ErrOrderNotFound
	}
	upd.Apply(ord)
	return nil
}

func (r *orderRepository) OrderByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ord, ok := r.orders[id]
	if !ok {
		return nil, model.ErrOrderNotFound
	}
	return ord.Clone(), nil
}

func (r *orderRepository) ListTimeEntries(_ context.Context, orderID uuid.UUID) ([]*model.TimeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.TimeEntry, 0)
	for _, e := range r.entries {
		if e.OrderID == orderID {
			out = append(out, e.Clone())
		}
	}
	sortByStart(out)
	return out, nil
}

func (r *orderRepository) CreateTimeEntry(_ context.Context, entry *model.TimeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[entry.OrderID]; !ok {
		return model.ErrOrderNotFound
	}
	r.entries[entry.ID] = entry.Clone()
	return nil
}

func (r *orderRepository) UpdateTimeEntry(_ context.Context, id uuid.UUID, upd model.TimeEntryUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return model.ErrTimeEntryNotFound
	}
	if upd.End != nil {
		e.End = lo.ToPtr(*upd.End)
	}
	if upd.DurationMinutes != nil {
		e.DurationMinutes = lo.ToPtr(*upd.DurationMinutes)
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.Reopen {
		e.End = nil
		e.DurationMinutes = nil
	}
	return nil
}

func (r *orderRepository) DeleteTimeEntry(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return model.ErrTimeEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *orderRepository) ListPartUsages(_ context.Context, orderID uuid.UUID) ([]*model.PartUsage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.PartUsage, 0)
	for _, u := range r.usages {
		if u.OrderID == orderID {
			out = append(out, u.Clone())
		}
	}
	return out, nil
}

func (r *orderRepository) CreatePartUsage(_ context.Context, usage *model.PartUsage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[usage.OrderID]; !ok {
		return model.ErrOrderNotFound
	}
	r.usages[usage.ID] = usage.Clone()
	return nil
}

func (r *orderRepository) DeletePartUsage(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.usages[id]; !ok {
		return model.ErrPartUsageNotFound
	}
	delete(r.usages, id)
	return nil
}

func sortByStart(entries []*model.TimeEntry) {
	slices.SortFunc(entries, func(a, b *model.TimeEntry) int { return a.Start.Compare(b.Start) })
}
