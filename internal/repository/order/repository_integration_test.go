//go:build integration

package repository_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"

	"github.com/you-humble/fieldservice/internal/model"
	"github.com/you-humble/fieldservice/internal/repository/bootstrap"
	catsvc "github.com/you-humble/fieldservice/internal/service/catalog"
	ordsvc "github.com/you-humble/fieldservice/internal/service/order"
	ordproducer "github.com/you-humble/fieldservice/internal/service/producer/order"
)

type ordersRepo = ordsvc.OrderRepository

type catalogRepo interface {
	ordsvc.CatalogRepository
	catsvc.CatalogRepository
	bootstrap.BatchCreator
	Delete(ctx context.Context, id string) error
}

func newOrder() *model.Order {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &model.Order{
		ID:          uuid.New(),
		Code:        model.GenerateCode(now, int(now.UnixNano()%9000)),
		Status:      model.StatusNotStarted,
		Priority:    model.PriorityHigh,
		Type:        model.OrderTypeMaintenance,
		Description: "Cold room alarm",
		ClientID:    uuid.New(),
		EquipmentID: lo.ToPtr(uuid.New()),
		CreatedAt:   now,
	}
}

var _ = Describe("Order repository", func() {
	var orders ordersRepo

	BeforeEach(func() {
		orders, _ = newRepos()
	})

	Context("CreateOrder + OrderByID", func() {
		It("round-trips nullable fields", func() {
			ord := newOrder()
			Expect(orders.CreateOrder(ctx, ord)).To(Succeed())

			got, err := orders.OrderByID(ctx, ord.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Code).To(Equal(ord.Code))
			Expect(got.Status).To(Equal(model.StatusNotStarted))
			Expect(got.EquipmentID).To(Equal(ord.EquipmentID))
			Expect(got.TechnicianID).To(BeNil())
			Expect(got.ResolutionNotes).To(BeNil())
			Expect(got.CreatedAt.Equal(ord.CreatedAt)).To(BeTrue())
		})

		It("returns ErrOrderNotFound when missing", func() {
			_, err := orders.OrderByID(ctx, uuid.New())
			Expect(err).To(MatchError(model.ErrOrderNotFound))
		})

		It("rejects a duplicate code", func() {
			ord := newOrder()
			Expect(orders.CreateOrder(ctx, ord)).To(Succeed())

			dup := newOrder()
			dup.Code = ord.Code
			Expect(orders.CreateOrder(ctx, dup)).To(MatchError(model.ErrConflict))
		})
	})

	Context("UpdateOrder", func() {
		It("writes only the set fields", func() {
			ord := newOrder()
			Expect(orders.CreateOrder(ctx, ord)).To(Succeed())

			start := time.Now().UTC().Truncate(time.Microsecond)
			Expect(orders.UpdateOrder(ctx, ord.ID, model.OrderUpdate{
				Status:    lo.ToPtr(model.StatusStarted),
				StartTime: &start,
			})).To(Succeed())

			got, err := orders.OrderByID(ctx, ord.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Status).To(Equal(model.StatusStarted))
			Expect(got.StartTime.Equal(start)).To(BeTrue())
			Expect(got.Description).To(Equal(ord.Description))
		})

		It("returns ErrOrderNotFound for a missing order", func() {
			err := orders.UpdateOrder(ctx, uuid.New(), model.OrderUpdate{Status: lo.ToPtr(model.StatusAssigned)})
			Expect(err).To(MatchError(model.ErrOrderNotFound))
		})
	})

	Context("time entries", func() {
		It("allows a single open entry per order", func() {
			ord := newOrder()
			Expect(orders.CreateOrder(ctx, ord)).To(Succeed())

			start := time.Now().UTC().Truncate(time.Second)
			first := &model.TimeEntry{ID: uuid.New(), OrderID: ord.ID, Start: start}
			Expect(orders.CreateTimeEntry(ctx, first)).To(Succeed())

			second := &model.TimeEntry{ID: uuid.New(), OrderID: ord.ID, Start: start.Add(time.Minute)}
			Expect(orders.CreateTimeEntry(ctx, second)).To(MatchError(model.ErrConflict))

			first.Close(start.Add(3661 * time.Second))
			Expect(orders.UpdateTimeEntry(ctx, first.ID, model.TimeEntryUpdate{
				End:             first.End,
				DurationMinutes: first.DurationMinutes,
			})).To(Succeed())
			Expect(orders.CreateTimeEntry(ctx, second)).To(Succeed())

			entries, err := orders.ListTimeEntries(ctx, ord.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].ID).To(Equal(first.ID))
			Expect(*entries[0].DurationMinutes).To(Equal(int64(61)))
			Expect(entries[1].IsOpen()).To(BeTrue())
		})

		It("rejects entries of unknown orders", func() {
			err := orders.CreateTimeEntry(ctx, &model.TimeEntry{ID: uuid.New(), OrderID: uuid.New(), Start: time.Now()})
			Expect(err).To(MatchError(model.ErrNotFound))
		})

		It("reports missing entries on delete", func() {
			Expect(orders.DeleteTimeEntry(ctx, uuid.New())).To(MatchError(model.ErrTimeEntryNotFound))
		})
	})

	Context("part usages", func() {
		It("creates, lists and deletes", func() {
			ord := newOrder()
			Expect(orders.CreateOrder(ctx, ord)).To(Succeed())

			u := &model.PartUsage{
				ID: uuid.New(), OrderID: ord.ID, CatalogPartID: "p1",
				Name: "Termostato Digital", Reference: "TERM-001", Quantity: 2, UnitPriceCents: 4550,
			}
			Expect(orders.CreatePartUsage(ctx, u)).To(Succeed())

			usages, err := orders.ListPartUsages(ctx, ord.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(usages).To(HaveLen(1))
			Expect(usages[0].TotalCents()).To(Equal(int64(9100)))

			Expect(orders.DeletePartUsage(ctx, u.ID)).To(Succeed())
			Expect(orders.DeletePartUsage(ctx, u.ID)).To(MatchError(model.ErrPartUsageNotFound))
		})

		It("rejects a non-positive quantity", func() {
			ord := newOrder()
			Expect(orders.CreateOrder(ctx, ord)).To(Succeed())

			err := orders.CreatePartUsage(ctx, &model.PartUsage{
				ID: uuid.New(), OrderID: ord.ID, CatalogPartID: "p1", Name: "x", Reference: "x",
			})
			Expect(err).To(MatchError(model.ErrValidation))
		})
	})
})

var _ = Describe("Catalog repository", func() {
	var catalog catalogRepo

	BeforeEach(func() {
		_, catalog = newRepos()
	})

	It("lists the seeded items in id order", func() {
		items, err := catalog.List(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(lo.Map(items, func(it *model.CatalogItem, _ int) string { return it.ID })).
			To(Equal([]string{"p1", "p2", "p3", "p4", "p5"}))
	})

	It("applies stock deltas without clamping", func() {
		stock, err := catalog.UpdateStock(ctx, "p2", -5)
		Expect(err).NotTo(HaveOccurred())
		Expect(stock).To(Equal(int64(-2)))

		stock, err = catalog.UpdateStock(ctx, "p2", 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(stock).To(Equal(int64(3)))
	})

	It("reports missing items", func() {
		_, err := catalog.UpdateStock(ctx, "nope", 1)
		Expect(err).To(MatchError(model.ErrCatalogItemMissing))
		_, err = catalog.ItemByID(ctx, "nope")
		Expect(err).To(MatchError(model.ErrCatalogItemMissing))
	})

	It("creates, updates and seeds idempotently", func() {
		it := &model.CatalogItem{ID: "p9", Name: "Filtro", Reference: "FIL-1", PriceCents: 900, Stock: 2}
		Expect(catalog.Create(ctx, it)).To(Succeed())
		Expect(catalog.Create(ctx, it)).To(MatchError(model.ErrConflict))

		got, err := catalog.Update(ctx, "p9", model.CatalogItemUpdate{PriceCents: lo.ToPtr(int64(950))})
		Expect(err).NotTo(HaveOccurred())
		Expect(got.PriceCents).To(Equal(int64(950)))
		Expect(got.Stock).To(Equal(int64(2)))

		Expect(bootstrap.CatalogBootstrap(ctx, catalog)).To(Succeed())
		items, err := catalog.List(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(items).To(HaveLen(6))
	})
})

var _ = Describe("Order service over postgres", func() {
	It("debits and credits stock through the ledger", func() {
		orders, catalog := newRepos()
		svc := ordsvc.NewOrderService(orders, catalog, ordproducer.NewNopSender(), nil, 2*time.Second, 2*time.Second)

		ord, err := svc.Create(ctx, model.CreateOrderParams{
			ClientID:    uuid.New(),
			Type:        model.OrderTypeBreakdown,
			Priority:    model.PriorityUrgent,
			Description: "Compressor noise",
		})
		Expect(err).NotTo(HaveOccurred())

		usage, err := svc.AddUsage(ctx, model.AddUsageParams{OrderID: ord.ID, CatalogItemID: "p1", Quantity: 2})
		Expect(err).NotTo(HaveOccurred())

		it, err := catalog.ItemByID(ctx, "p1")
		Expect(err).NotTo(HaveOccurred())
		Expect(it.Stock).To(Equal(int64(8)))

		_, err = svc.RemoveUsage(ctx, ord.ID, usage.ID)
		Expect(err).NotTo(HaveOccurred())

		it, err = catalog.ItemByID(ctx, "p1")
		Expect(err).NotTo(HaveOccurred())
		Expect(it.Stock).To(Equal(int64(10)))
	})

	It("persists a completed order", func() {
		orders, catalog := newRepos()
		svc := ordsvc.NewOrderService(orders, catalog, ordproducer.NewNopSender(), nil, 2*time.Second, 2*time.Second)

		ord, err := svc.Create(ctx, model.CreateOrderParams{
			ClientID:    uuid.New(),
			Type:        model.OrderTypeInspection,
			Priority:    model.PriorityLow,
			Description: "Yearly inspection",
		})
		Expect(err).NotTo(HaveOccurred())

		_, err = svc.StartTimer(ctx, ord.ID)
		Expect(err).NotTo(HaveOccurred())

		res, err := svc.Transition(ctx, model.TransitionRequest{
			OrderID:         ord.ID,
			Target:          model.StatusCompleted,
			Confirmed:       true,
			ResolutionNotes: lo.ToPtr("All checks passed."),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.RequiresConfirmation).To(BeFalse())

		stored, err := orders.OrderByID(ctx, ord.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Status).To(Equal(model.StatusCompleted))
		Expect(stored.EndTime).NotTo(BeNil())
		Expect(*stored.ResolutionNotes).To(Equal("All checks passed."))

		entries, err := orders.ListTimeEntries(ctx, ord.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].IsOpen()).To(BeFalse())
	})
})
