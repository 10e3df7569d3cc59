package config

import (
	"testing"
	"time"
)

func TestEscrowConfigValidate(t *testing.T) {
	t.Parallel()

	valid := EscrowConfig{TransactionTTL: 2 * time.Hour, SweepInterval: time.Minute, SweepBatch: 100}

	tests := []struct {
		name    string
		mutate  func(*EscrowConfig)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*EscrowConfig) {}},
		{name: "zero_batch", mutate: func(c *EscrowConfig) { c.SweepBatch = 0 }, wantErr: true},
		{name: "negative_batch", mutate: func(c *EscrowConfig) { c.SweepBatch = -1 }, wantErr: true},
		{name: "zero_interval", mutate: func(c *EscrowConfig) { c.SweepInterval = 0 }, wantErr: true},
		{name: "zero_ttl", mutate: func(c *EscrowConfig) { c.TransactionTTL = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatalf("expected error for %+v", cfg)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
