package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/go-resty/resty/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	summaryclient "github.com/you-humble/fieldservice/internal/client/http/summary/v1"
	"github.com/you-humble/fieldservice/internal/config"
	envconfig "github.com/you-humble/fieldservice/internal/config/env"
	"github.com/you-humble/fieldservice/internal/converter"
	"github.com/you-humble/fieldservice/internal/repository/bootstrap"
	pgcatalog "github.com/you-humble/fieldservice/internal/repository/catalog"
	"github.com/you-humble/fieldservice/internal/repository/memory"
	pgorder "github.com/you-humble/fieldservice/internal/repository/order"
	mongocatalog "github.com/you-humble/fieldservice/internal/repository/part"
	catsvc "github.com/you-humble/fieldservice/internal/service/catalog"
	ordconsumer "github.com/you-humble/fieldservice/internal/service/consumer/order"
	ordsvc "github.com/you-humble/fieldservice/internal/service/order"
	ordproducer "github.com/you-humble/fieldservice/internal/service/producer/order"
	cathttp "github.com/you-humble/fieldservice/internal/transport/http/catalog/v1"
	"github.com/you-humble/fieldservice/internal/transport/http/health"
	ordhttp "github.com/you-humble/fieldservice/internal/transport/http/order/v1"
	"github.com/you-humble/fieldservice/platform/closer"
	"github.com/you-humble/fieldservice/platform/db/migrator"
	"github.com/you-humble/fieldservice/platform/kafka"
	"github.com/you-humble/fieldservice/platform/kafka/consumer"
	"github.com/you-humble/fieldservice/platform/kafka/middleware"
	"github.com/you-humble/fieldservice/platform/kafka/producer"
	"github.com/you-humble/fieldservice/platform/logger"
)

type Converter interface {
	ordproducer.Converter
	ordconsumer.Converter
}

type OrderConsumer interface {
	RunPartsReceivedConsume(ctx context.Context) error
}

type OrderService interface {
	ordhttp.OrderService
	ordconsumer.Service
}

// CatalogStore is what every catalog backend provides.
type CatalogStore interface {
	ordsvc.CatalogRepository
	catsvc.CatalogRepository
	bootstrap.BatchCreator
}

type di struct {
	dbPool      *pgxpool.Pool
	migrator    *migrator.Migrator
	mongoClient *mongo.Client

	orderRepository ordsvc.OrderRepository
	catalogStore    CatalogStore

	consumerGroup         sarama.ConsumerGroup
	partsReceivedConsumer kafka.Consumer
	orderConsumer         OrderConsumer

	syncProducer          sarama.SyncProducer
	statusChangedProducer kafka.Producer
	stockAlertProducer    kafka.Producer
	eventSender           ordsvc.EventSender

	summaryProvider ordsvc.SummaryProvider

	conv Converter

	orderService   OrderService
	catalogService cathttp.CatalogService

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) MongoClient(ctx context.Context) *mongo.Client {
	if d.mongoClient == nil {
		client, err := mongo.Connect(options.Client().ApplyURI(config.C().Mongo.DSN()))
		if err != nil {
			panic(fmt.Sprintf("failed to connect to mongo: %v\n", err))
		}

		closer.AddNamed("Mongo client",
			func(ctx context.Context) error {
				return client.Disconnect(ctx)
			})

		if err := client.Ping(ctx, nil); err != nil {
			panic(fmt.Sprintf("failed to ping mongo: %v\n", err))
		}

		d.mongoClient = client
	}

	return d.mongoClient
}

func (d *di) OrderRepository(ctx context.Context) ordsvc.OrderRepository {
	if d.orderRepository == nil {
		switch config.C().Storage.Driver() {
		case envconfig.DriverPostgres:
			d.orderRepository = pgorder.NewOrderRepository(d.DBPool(ctx))
		default:
			d.orderRepository = memory.NewOrderRepository()
		}
	}

	return d.orderRepository
}

func (d *di) CatalogStore(ctx context.Context) CatalogStore {
	if d.catalogStore == nil {
		cfg := config.C()

		switch cfg.Storage.CatalogDriver() {
		case envconfig.DriverPostgres:
			// Seeded by migrations.
			d.catalogStore = pgcatalog.NewCatalogRepository(d.DBPool(ctx))
			return d.catalogStore
		case envconfig.DriverMongo:
			coll := d.MongoClient(ctx).
				Database(cfg.Mongo.DatabaseName()).
				Collection(cfg.Mongo.CatalogCollection())
			d.catalogStore = mongocatalog.NewCatalogRepository(coll)
		default:
			d.catalogStore = memory.NewCatalogRepository()
		}

		if err := bootstrap.CatalogBootstrap(ctx, d.catalogStore); err != nil {
			panic(fmt.Sprintf("failed to seed catalog: %v\n", err))
		}
	}

	return d.catalogStore
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ConsumerGroupID(),
			cfg.Kafka.PartsReceivedConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) PartsReceivedConsumer(ctx context.Context) kafka.Consumer {
	if d.partsReceivedConsumer == nil {
		d.partsReceivedConsumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.PartsReceivedTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.partsReceivedConsumer
}

func (d *di) OrderConsumer(ctx context.Context) OrderConsumer {
	if d.orderConsumer == nil {
		d.orderConsumer = ordconsumer.NewOrderConsumer(
			d.PartsReceivedConsumer(ctx),
			d.KafkaConverter(ctx),
			d.OrderService(ctx),
		)
	}

	return d.orderConsumer
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) StatusChangedProducer(ctx context.Context) kafka.Producer {
	if d.statusChangedProducer == nil {
		d.statusChangedProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.StatusChangedTopic(),
			logger.L(),
		)
	}

	return d.statusChangedProducer
}

func (d *di) StockAlertProducer(ctx context.Context) kafka.Producer {
	if d.stockAlertProducer == nil {
		d.stockAlertProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.StockAlertTopic(),
			logger.L(),
		)
	}

	return d.stockAlertProducer
}

func (d *di) EventSender(ctx context.Context) ordsvc.EventSender {
	if d.eventSender == nil {
		if !config.C().Kafka.Enabled() {
			d.eventSender = ordproducer.NewNopSender()
			return d.eventSender
		}

		d.eventSender = ordproducer.NewOrderProducer(
			d.StatusChangedProducer(ctx),
			d.StockAlertProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.eventSender
}

// SummaryProvider is nil when no provider URL is configured.
func (d *di) SummaryProvider(_ context.Context) ordsvc.SummaryProvider {
	if d.summaryProvider == nil {
		cfg := config.C().Summary
		if !cfg.Enabled() {
			return nil
		}

		d.summaryProvider = summaryclient.NewClient(
			resty.New().
				SetBaseURL(cfg.URL()).
				SetTimeout(cfg.Timeout()).
				SetRetryCount(cfg.RetryCount()),
		)
	}

	return d.summaryProvider
}

func (d *di) OrderService(ctx context.Context) OrderService {
	if d.orderService == nil {
		d.orderService = ordsvc.NewOrderService(
			d.OrderRepository(ctx),
			d.CatalogStore(ctx),
			d.EventSender(ctx),
			d.SummaryProvider(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.orderService
}

func (d *di) CatalogService(ctx context.Context) cathttp.CatalogService {
	if d.catalogService == nil {
		d.catalogService = catsvc.NewCatalogService(
			d.CatalogStore(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.catalogService
}

// HealthChecks pings only the backends the configured drivers use.
func (d *di) HealthChecks(ctx context.Context) []health.Check {
	var checks []health.Check
	storage := config.C().Storage
	if storage.NeedsPostgres() {
		pool := d.DBPool(ctx)
		checks = append(checks, health.Check{Name: "postgres", Ping: pool.Ping})
	}
	if storage.NeedsMongo() {
		client := d.MongoClient(ctx)
		checks = append(checks, health.Check{Name: "mongo", Ping: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		}})
	}
	return checks
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
