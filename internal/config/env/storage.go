package envconfig

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type storageEnv struct {
	Driver        string `env:"STORAGE_DRIVER" envDefault:"memory"`
	CatalogDriver string `env:"CATALOG_DRIVER"`
}

type storage struct {
	raw storageEnv
}

func NewStorageConfig() (*storage, error) {
	var raw storageEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	switch raw.Driver {
	case DriverMemory, DriverPostgres:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", raw.Driver)
	}

	if raw.CatalogDriver == "" {
		raw.CatalogDriver = raw.Driver
	}
	switch raw.CatalogDriver {
	case DriverMemory, DriverPostgres, DriverMongo:
	default:
		return nil, fmt.Errorf("unknown CATALOG_DRIVER %q", raw.CatalogDriver)
	}

	return &storage{raw: raw}, nil
}

// Driver is where orders and both ledgers live.
func (cfg *storage) Driver() string { return cfg.raw.Driver }

// CatalogDriver defaults to Driver.
func (cfg *storage) CatalogDriver() string { return cfg.raw.CatalogDriver }

func (cfg *storage) NeedsPostgres() bool {
	return cfg.raw.Driver == DriverPostgres || cfg.raw.CatalogDriver == DriverPostgres
}

func (cfg *storage) NeedsMongo() bool {
	return cfg.raw.CatalogDriver == DriverMongo
}
