package config

import (
	"fmt"
	"time"
)

type PostgresConfig struct {
	DSN             string        `env:"PG_DSN"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxIdleTime time.Duration `env:"PG_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// RedisConfig configures the realtime change feed. An empty Addr disables it.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:""`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type EscrowConfig struct {
	TransactionTTL time.Duration `env:"ESCROW_TTL" envDefault:"2h"`
	SweepInterval  time.Duration `env:"ESCROW_SWEEP_INTERVAL" envDefault:"1m"`
	SweepBatch     int           `env:"ESCROW_SWEEP_BATCH" envDefault:"100"`
}

// Validate rejects settings the workflow cannot run with.
func (c EscrowConfig) Validate() error {
	if c.TransactionTTL <= 0 {
		return fmt.Errorf("ESCROW_TTL must be positive, got %s", c.TransactionTTL)
	}

	if c.SweepInterval <= 0 {
		return fmt.Errorf("ESCROW_SWEEP_INTERVAL must be positive, got %s", c.SweepInterval)
	}

	if c.SweepBatch <= 0 {
		return fmt.Errorf("ESCROW_SWEEP_BATCH must be positive, got %d", c.SweepBatch)
	}

	return nil
}

type ReputationCacheConfig struct {
	Size int           `env:"REPUTATION_CACHE_SIZE" envDefault:"10000"`
	TTL  time.Duration `env:"REPUTATION_CACHE_TTL" envDefault:"30s"`
}
