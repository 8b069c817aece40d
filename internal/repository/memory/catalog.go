package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/you-humble/fieldservice/internal/model"
)

type catalogRepository struct {
	mu    sync.RWMutex
	items map[string]*model.CatalogItem
}

func NewCatalogRepository() *catalogRepository {
	return &catalogRepository{items: make(map[string]*model.CatalogItem)}
}

func (r *catalogRepository) List(_ context.Context) ([]*model.CatalogItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.CatalogItem, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it.Clone())
	}
	slices.SortFunc(out, func(a, b *model.CatalogItem) int { return strings.Compare(a.ID, b.ID) })
	return out, nil
}

func (r *catalogRepository) ItemByID(_ context.Context, id string) (*model.CatalogItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok {
		return nil, model.ErrCatalogItemMissing
	}
	return it.Clone(), nil
}

func (r *catalogRepository) Create(_ context.Context, item *model.CatalogItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return model.ErrConflict
	}
	r.items[item.ID] = item.Clone()
	return nil
}

func (r *catalogRepository) CreateBatch(_ context.Context, items []*model.CatalogItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range items {
		if it == nil {
			continue
		}
		if _, ok := r.items[it.ID]; ok {
			continue
		}
		r.items[it.ID] = it.Clone()
	}
	return nil
}

func (r *catalogRepository) Update(_ context.Context, id string, upd model.CatalogItemUpdate) (*model.CatalogItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[id]
	if !ok {
		return nil, model.ErrCatalogItemMissing
	}
	upd.Apply(it)
	return it.Clone(), nil
}

func (r *catalogRepository) UpdateStock(_ context.Context, id string, delta int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[id]
	if !ok {
		return 0, model.ErrCatalogItemMissing
	}
	it.Stock += delta
	return it.Stock, nil
}

// Delete exists for catalog maintenance and tests.
func (r *catalogRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return model.ErrCatalogItemMissing
	}
	delete(r.items, id)
	return nil
}
