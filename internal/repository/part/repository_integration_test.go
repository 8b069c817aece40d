//go:build integration

package repository_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/fieldservice/internal/model"
	"github.com/you-humble/fieldservice/internal/repository/bootstrap"
	repository "github.com/you-humble/fieldservice/internal/repository/part"
	"github.com/you-humble/fieldservice/platform/logger"
	tcmongo "github.com/you-humble/fieldservice/platform/testcontainers/mongo"
	"github.com/you-humble/fieldservice/platform/testcontainers/network"
)

const collectionName = "catalog_items"

var (
	ctx context.Context

	net    *network.Network
	mongoC *tcmongo.Container
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Mongo Catalog Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()
	logger.SetNopLogger()

	var err error
	By("creating docker network")
	net, err = network.NewNetwork(ctx, "fieldservice")
	Expect(err).NotTo(HaveOccurred())

	By("starting mongo container")
	mongoC, err = tcmongo.NewContainer(ctx,
		tcmongo.WithNetworkName(net.Name()),
		tcmongo.WithLogger(logger.L()),
	)
	Expect(err).NotTo(HaveOccurred())
})

var _ = AfterSuite(func() {
	if mongoC != nil {
		_ = mongoC.Terminate(ctx)
	}
	if net != nil {
		_ = net.Remove(ctx)
	}
})

var _ = Describe("Mongo catalog repository", func() {
	var repo interface {
		bootstrap.BatchCreator
		List(ctx context.Context) ([]*model.CatalogItem, error)
		ItemByID(ctx context.Context, id string) (*model.CatalogItem, error)
		Create(ctx context.Context, item *model.CatalogItem) error
		Update(ctx context.Context, id string, upd model.CatalogItemUpdate) (*model.CatalogItem, error)
		UpdateStock(ctx context.Context, id string, delta int64) (int64, error)
		Delete(ctx context.Context, id string) error
	}

	BeforeEach(func() {
		coll := mongoC.Database().Collection(collectionName)
		_, err := coll.DeleteMany(ctx, bson.M{})
		Expect(err).NotTo(HaveOccurred())

		repo = repository.NewCatalogRepository(coll)
		Expect(bootstrap.CatalogBootstrap(ctx, repo)).To(Succeed())
	})

	It("seeds idempotently", func() {
		Expect(bootstrap.CatalogBootstrap(ctx, repo)).To(Succeed())

		items, err := repo.List(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(lo.Map(items, func(it *model.CatalogItem, _ int) string { return it.ID })).
			To(Equal([]string{"p1", "p2", "p3", "p4", "p5"}))
	})

	It("increments stock atomically and never clamps", func() {
		stock, err := repo.UpdateStock(ctx, "p4", -7)
		Expect(err).NotTo(HaveOccurred())
		Expect(stock).To(Equal(int64(-2)))

		it, err := repo.ItemByID(ctx, "p4")
		Expect(err).NotTo(HaveOccurred())
		Expect(it.Stock).To(Equal(int64(-2)))
	})

	It("maps missing documents", func() {
		_, err := repo.ItemByID(ctx, "nope")
		Expect(err).To(MatchError(model.ErrCatalogItemMissing))
		_, err = repo.UpdateStock(ctx, "nope", 1)
		Expect(err).To(MatchError(model.ErrCatalogItemMissing))
		Expect(repo.Delete(ctx, "nope")).To(MatchError(model.ErrCatalogItemMissing))
	})

	It("creates and updates items", func() {
		it := &model.CatalogItem{ID: "p9", Name: "Filtro", Reference: "FIL-1", PriceCents: 900}
		Expect(repo.Create(ctx, it)).To(Succeed())
		Expect(repo.Create(ctx, it)).To(MatchError(model.ErrConflict))

		got, err := repo.Update(ctx, "p9", model.CatalogItemUpdate{Name: lo.ToPtr("Filtro de ar")})
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Name).To(Equal("Filtro de ar"))
		Expect(got.PriceCents).To(Equal(int64(900)))
	})
})
