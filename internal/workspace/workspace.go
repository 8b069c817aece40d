// Package workspace holds the in-memory view of each order the engine works
// on. Mutations are applied to the view first and rolled back to a snapshot
// when the store rejects them.
package workspace

import (
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/fieldservice/internal/model"
)

// View is one order with its ledgers. The embedded mutex serialises
// mutations on the order.
type View struct {
	sync.Mutex

	Order   *model.Order
	Entries []*model.TimeEntry
	Usages  []*model.PartUsage
}

func NewView(ord *model.Order, entries []*model.TimeEntry, usages []*model.PartUsage) *View {
	return &View{
		Order:   ord,
		Entries: entries,
		Usages:  usages,
	}
}

type Snapshot struct {
	order   *model.Order
	entries []*model.TimeEntry
	usages  []*model.PartUsage
}

// Snapshot deep-copies the view. Callers hold the lock.
func (v *View) Snapshot() Snapshot {
	return Snapshot{
		order:   v.Order.Clone(),
		entries: lo.Map(v.Entries, func(e *model.TimeEntry, _ int) *model.TimeEntry { return e.Clone() }),
		usages:  lo.Map(v.Usages, func(u *model.PartUsage, _ int) *model.PartUsage { return u.Clone() }),
	}
}

// Restore puts back exactly what Snapshot captured.
func (v *View) Restore(s Snapshot) {
	v.Order = s.order
	v.Entries = s.entries
	v.Usages = s.usages
}

func (v *View) OpenEntry() (*model.TimeEntry, bool) {
	return model.OpenEntry(v.Entries)
}

func (v *View) Entry(id uuid.UUID) (*model.TimeEntry, bool) {
	return lo.Find(v.Entries, func(e *model.TimeEntry) bool { return e.ID == id })
}

func (v *View) RemoveEntry(id uuid.UUID) {
	v.Entries = lo.Reject(v.Entries, func(e *model.TimeEntry, _ int) bool { return e.ID == id })
}

func (v *View) Usage(id uuid.UUID) (*model.PartUsage, bool) {
	return lo.Find(v.Usages, func(u *model.PartUsage) bool { return u.ID == id })
}

func (v *View) RemoveUsage(id uuid.UUID) {
	v.Usages = lo.Reject(v.Usages, func(u *model.PartUsage, _ int) bool { return u.ID == id })
}

// Report copies the view into a read-only aggregate.
func (v *View) Report() *model.Report {
	s := v.Snapshot()
	return &model.Report{
		Order:        s.order,
		TimeEntries:  s.entries,
		PartUsages:   s.usages,
		TotalMinutes: model.TotalMinutes(s.entries),
		PartsCents:   model.OrderTotal(s.usages),
	}
}

// Registry keeps one view per order for the life of the process.
type Registry struct {
	mu    sync.RWMutex
	views map[uuid.UUID]*View
}

func NewRegistry() *Registry {
	return &Registry{views: make(map[uuid.UUID]*View)}
}

func (r *Registry) Get(id uuid.UUID) (*View, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.views[id]
	return v, ok
}

// Put stores v unless a view for the same order is already present, and
// returns the one that won.
func (r *Registry) Put(v *View) *View {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.views[v.Order.ID]; ok {
		return existing
	}
	r.views[v.Order.ID] = v
	return v
}

// Forget drops the view so the next access reloads it from the store.
func (r *Registry) Forget(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.views, id)
}
