package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type summaryEnv struct {
	URL        string        `env:"SUMMARY_URL"`
	Timeout    time.Duration `env:"SUMMARY_TIMEOUT" envDefault:"15s"`
	RetryCount int           `env:"SUMMARY_RETRY_COUNT" envDefault:"2"`
}

type summary struct {
	raw summaryEnv
}

func NewSummaryConfig() (*summary, error) {
	var raw summaryEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &summary{raw: raw}, nil
}

// Enabled reports whether a suggestion provider is configured.
func (cfg *summary) Enabled() bool          { return cfg.raw.URL != "" }
func (cfg *summary) URL() string            { return cfg.raw.URL }
func (cfg *summary) Timeout() time.Duration { return cfg.raw.Timeout }
func (cfg *summary) RetryCount() int        { return cfg.raw.RetryCount }
