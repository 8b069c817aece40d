package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/fieldservice/internal/config/env"
)

var cfg *config

type config struct {
	Server   Server
	Logger   Logger
	Storage  Storage
	Postgres Database
	Mongo    Mongo
	Kafka    Kafka
	Summary  Summary
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	storageCfg, err := envconfig.NewStorageConfig()
	if err != nil {
		return fmt.Errorf("%s Storage: %w", op, err)
	}

	c := &config{
		Server:  serverCfg,
		Logger:  loggerCfg,
		Storage: storageCfg,
	}

	// backend settings are required only for the drivers in use
	if storageCfg.NeedsPostgres() {
		postgresCfg, err := envconfig.NewPostgresConfig()
		if err != nil {
			return fmt.Errorf("%s Postgres: %w", op, err)
		}
		c.Postgres = postgresCfg
	}

	if storageCfg.NeedsMongo() {
		mongoCfg, err := envconfig.NewMongoConfig()
		if err != nil {
			return fmt.Errorf("%s Mongo: %w", op, err)
		}
		c.Mongo = mongoCfg
	}

	kafkaCfg, err := envconfig.NewKafkaConfig()
	if err != nil {
		return fmt.Errorf("%s Kafka: %w", op, err)
	}
	c.Kafka = kafkaCfg

	summaryCfg, err := envconfig.NewSummaryConfig()
	if err != nil {
		return fmt.Errorf("%s Summary: %w", op, err)
	}
	c.Summary = summaryCfg

	cfg = c
	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
