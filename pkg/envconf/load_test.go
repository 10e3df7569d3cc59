package envconf

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

type nestedConf struct {
	DSN     string        `env:"T_DSN"`
	Timeout time.Duration `env:"T_TIMEOUT" envDefault:"2h"`
}

type testConf struct {
	Port    uint16     `env:"T_PORT"`
	Level   slog.Level `env:"T_LEVEL" envDefault:"INFO"`
	Addrs   []string   `env:"T_ADDRS" envDefault:""`
	Enabled bool       `env:"T_ENABLED" envDefault:"true"`
	Skipped string     `env:"-"`
	DB      nestedConf
}

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoad_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		env     map[string]string
		check   func(t *testing.T, c testConf)
		wantErr error
		anyErr  bool
	}{
		{
			name: "defaults_applied",
			env:  map[string]string{"T_PORT": "8080", "T_DSN": "postgres://x"},
			check: func(t *testing.T, c testConf) {
				if c.Port != 8080 {
					t.Fatalf("port: want 8080, got %d", c.Port)
				}
				if c.Level != slog.LevelInfo {
					t.Fatalf("level: want INFO, got %v", c.Level)
				}
				if len(c.Addrs) != 0 {
					t.Fatalf("addrs: want empty, got %v", c.Addrs)
				}
				if !c.Enabled {
					t.Fatalf("enabled: want true")
				}
				if c.DB.Timeout != 2*time.Hour {
					t.Fatalf("timeout: want 2h, got %v", c.DB.Timeout)
				}
			},
		},
		{
			name: "explicit_values_override_defaults",
			env: map[string]string{
				"T_PORT":    "9000",
				"T_DSN":     "postgres://y",
				"T_LEVEL":   "DEBUG",
				"T_ADDRS":   "a:6379, b:6379",
				"T_TIMEOUT": "90s",
				"T_ENABLED": "false",
			},
			check: func(t *testing.T, c testConf) {
				if c.Level != slog.LevelDebug {
					t.Fatalf("level: want DEBUG, got %v", c.Level)
				}
				if len(c.Addrs) != 2 || c.Addrs[0] != "a:6379" || c.Addrs[1] != "b:6379" {
					t.Fatalf("addrs: got %v", c.Addrs)
				}
				if c.DB.Timeout != 90*time.Second {
					t.Fatalf("timeout: want 90s, got %v", c.DB.Timeout)
				}
				if c.Enabled {
					t.Fatalf("enabled: want false")
				}
			},
		},
		{
			name:    "missing_required_nested",
			env:     map[string]string{"T_PORT": "8080"},
			wantErr: ErrMissingRequired,
		},
		{
			name:   "bad_uint",
			env:    map[string]string{"T_PORT": "-1", "T_DSN": "x"},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var c testConf
			err := load(&c, mapLookup(tt.env))

			if tt.anyErr {
				if err == nil {
					t.Fatalf("expected parse error, got nil")
				}
				return
			}

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			tt.check(t, c)
		})
	}
}

func TestLoad_RejectsNonPointer(t *testing.T) {
	t.Parallel()

	err := Load(testConf{})
	if err == nil {
		t.Fatalf("expected error for non-pointer destination")
	}
}
