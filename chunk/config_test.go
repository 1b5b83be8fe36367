package chunk

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxChunkSize != 512 {
		t.Errorf("MaxChunkSize = %d, want 512", cfg.MaxChunkSize)
	}
	if cfg.Overlap != 50 {
		t.Errorf("Overlap = %d, want 50", cfg.Overlap)
	}
	if !cfg.PreserveSentenceBoundaries {
		t.Error("PreserveSentenceBoundaries should default to true")
	}
	if !cfg.IncludeMetadata {
		t.Error("IncludeMetadata should default to true")
	}

	if err := cfg.Validate(DefaultLimits()); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		limits    Limits
		wantErr   bool
		wantField string
	}{
		{
			name: "valid default",
			cfg:  DefaultConfig(),
		},
		{
			name:      "zero max chunk size",
			cfg:       Config{MaxChunkSize: 0, Overlap: 0},
			wantErr:   true,
			wantField: "MaxChunkSize",
		},
		{
			name:      "negative max chunk size",
			cfg:       Config{MaxChunkSize: -10},
			wantErr:   true,
			wantField: "MaxChunkSize",
		},
		{
			name:      "max chunk size below limit",
			cfg:       Config{MaxChunkSize: 10},
			wantErr:   true,
			wantField: "MaxChunkSize",
		},
		{
			name:      "max chunk size above limit",
			cfg:       Config{MaxChunkSize: 200000},
			wantErr:   true,
			wantField: "MaxChunkSize",
		},
		{
			name:      "negative overlap",
			cfg:       Config{MaxChunkSize: 100, Overlap: -1},
			wantErr:   true,
			wantField: "Overlap",
		},
		{
			name:      "overlap equals max",
			cfg:       Config{MaxChunkSize: 100, Overlap: 100},
			wantErr:   true,
			wantField: "Overlap",
		},
		{
			name:      "overlap above half of max",
			cfg:       Config{MaxChunkSize: 100, Overlap: 60},
			wantErr:   true,
			wantField: "Overlap",
		},
		{
			name: "overlap exactly half of max",
			cfg:  Config{MaxChunkSize: 100, Overlap: 50},
		},
		{
			name: "zero overlap",
			cfg:  Config{MaxChunkSize: 100},
		},
		{
			name:   "custom limits admit small chunks",
			cfg:    Config{MaxChunkSize: 20, Overlap: 5},
			limits: Limits{MinChunkSize: 10, MaxChunkSize: 1000, MaxOverlapRatio: 0.5},
		},
		{
			name: "zero limits fall back to defaults",
			cfg:  DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate(tt.limits)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should match ErrInvalidConfig, got %v", err)
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("error should be a *ConfigError, got %T", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.wantField)
			}
		})
	}
}

func TestLimitsNormalized(t *testing.T) {
	def := DefaultLimits()

	got := Limits{}.normalized()
	if got != def {
		t.Errorf("zero limits normalized to %+v, want %+v", got, def)
	}

	custom := Limits{MinChunkSize: 5, MaxChunkSize: 1000, MaxOverlapRatio: 0.25}
	if got := custom.normalized(); got != custom {
		t.Errorf("fully specified limits changed by normalization: %+v", got)
	}

	bad := Limits{MinChunkSize: 5, MaxChunkSize: 1000, MaxOverlapRatio: 1.5}
	if got := bad.normalized(); got.MaxOverlapRatio != def.MaxOverlapRatio {
		t.Errorf("out-of-range ratio normalized to %v, want %v", got.MaxOverlapRatio, def.MaxOverlapRatio)
	}
}
