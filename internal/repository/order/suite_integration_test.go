//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	catalogrepo "github.com/you-humble/fieldservice/internal/repository/catalog"
	repository "github.com/you-humble/fieldservice/internal/repository/order"
	"github.com/you-humble/fieldservice/platform/db/migrator"
	"github.com/you-humble/fieldservice/platform/logger"
	tcpath "github.com/you-humble/fieldservice/platform/testcontainers/path"
)

const (
	pgImage = "postgres:17.0-alpine3.20"

	pgUser = "fieldservice-user"
	pgPass = "Fs_43xq9_local"
	pgDB   = "fieldservice-db"
)

var (
	ctx context.Context

	pgC  *postgres.PostgresContainer
	pool *pgxpool.Pool
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Postgres Repository Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx = context.Background()
	logger.SetNopLogger()

	By("starting postgres container")
	var err error
	pgC, err = postgres.Run(ctx,
		pgImage,
		postgres.WithDatabase(pgDB),
		postgres.WithUsername(pgUser),
		postgres.WithPassword(pgPass),
		tc.WithWaitStrategy(
			wait.ForListeningPort("5432/tcp").WithStartupTimeout(60*time.Second),
		),
	)
	Expect(err).NotTo(HaveOccurred())

	dbURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	Expect(err).NotTo(HaveOccurred())

	By("creating pgx pool")
	pool, err = pgxpool.New(ctx, dbURL)
	Expect(err).NotTo(HaveOccurred())

	Eventually(func(g Gomega) {
		g.Expect(pool.Ping(ctx)).To(Succeed())
	}).WithTimeout(10 * time.Second).WithPolling(200 * time.Millisecond).Should(Succeed())

	By("running migrations")
	m := migrator.NewMigrator(stdlib.OpenDBFromPool(pool), tcpath.Migrations())
	Expect(m.Up()).To(Succeed())
	Expect(m.Close()).To(Succeed())
})

var _ = AfterSuite(func() {
	if pool != nil {
		pool.Close()
	}
	if pgC != nil {
		_ = pgC.Terminate(ctx)
	}
})

var _ = BeforeEach(func() {
	By("cleaning ledger tables")
	_, err := pool.Exec(ctx, "TRUNCATE TABLE part_usages, time_entries, orders CASCADE")
	Expect(err).NotTo(HaveOccurred())

	By("restoring seeded catalog")
	_, err = pool.Exec(ctx, "DELETE FROM catalog_items WHERE id NOT IN ('p1','p2','p3','p4','p5')")
	Expect(err).NotTo(HaveOccurred())
	_, err = pool.Exec(ctx, `UPDATE catalog_items SET stock = CASE id
		WHEN 'p1' THEN 10 WHEN 'p2' THEN 3 WHEN 'p3' THEN 50 WHEN 'p4' THEN 5 WHEN 'p5' THEN 15 END`)
	Expect(err).NotTo(HaveOccurred())
})

func newRepos() (orders ordersRepo, catalog catalogRepo) {
	return repository.NewOrderRepository(pool), catalogrepo.NewCatalogRepository(pool)
}
