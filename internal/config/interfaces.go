package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Storage interface {
	Driver() string
	CatalogDriver() string
	NeedsPostgres() bool
	NeedsMongo() bool
}

type Database interface {
	MigrationDirectory() string
	DSN() string
}

type Mongo interface {
	DatabaseName() string
	CatalogCollection() string
	DSN() string
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	StatusChangedTopic() string
	StockAlertTopic() string
	PartsReceivedTopic() string
	ConsumerGroupID() string
	PartsReceivedConsumerConfig() *sarama.Config
	ProducerConfig() *sarama.Config
}

type Summary interface {
	Enabled() bool
	URL() string
	Timeout() time.Duration
	RetryCount() int
}
