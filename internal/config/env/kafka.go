package envconfig

import (
	"errors"

	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

var errKafkaBrokers = errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is set")

type kafkaEnv struct {
	Enabled                 bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers                 []string `env:"KAFKA_BROKERS"`
	StatusChangedTopicName  string   `env:"ORDER_STATUS_CHANGED_TOPIC_NAME" envDefault:"order.status_changed"`
	StockAlertTopicName     string   `env:"CATALOG_STOCK_ALERT_TOPIC_NAME" envDefault:"catalog.stock_alert"`
	PartsReceivedTopicName  string   `env:"PARTS_RECEIVED_TOPIC_NAME" envDefault:"parts.received"`
	PartsReceivedConsumerID string   `env:"PARTS_RECEIVED_CONSUMER_GROUP_ID" envDefault:"fieldservice-parts-received"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	if raw.Enabled && len(raw.Brokers) == 0 {
		return nil, errKafkaBrokers
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Enabled() bool              { return cfg.raw.Enabled }
func (cfg *kafka) Brokers() []string          { return cfg.raw.Brokers }
func (cfg *kafka) StatusChangedTopic() string { return cfg.raw.StatusChangedTopicName }
func (cfg *kafka) StockAlertTopic() string    { return cfg.raw.StockAlertTopicName }
func (cfg *kafka) PartsReceivedTopic() string { return cfg.raw.PartsReceivedTopicName }
func (cfg *kafka) ConsumerGroupID() string    { return cfg.raw.PartsReceivedConsumerID }

func (cfg *kafka) PartsReceivedConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}

func (cfg *kafka) ProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true

	return config
}
