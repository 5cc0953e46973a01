package slick

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", config.LogLevel)
	}
	if config.MaxNestingDepth != 64 {
		t.Errorf("MaxNestingDepth = %d, want 64", config.MaxNestingDepth)
	}
	if config.Escape != EscapeNone {
		t.Errorf("Escape = %q, want none", config.Escape)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestNewConfigWithDefaults(t *testing.T) {
	tests := []struct {
		name      string
		overrides *Config
		want      Config
	}{
		{
			name:      "nil uses defaults",
			overrides: nil,
			want:      Config{LogLevel: "info", MaxNestingDepth: 64, Escape: EscapeNone},
		},
		{
			name:      "partial override",
			overrides: &Config{Escape: EscapeTypst},
			want:      Config{LogLevel: "info", MaxNestingDepth: 64, Escape: EscapeTypst},
		},
		{
			name:      "full override",
			overrides: &Config{LogLevel: "debug", MaxNestingDepth: 8, Escape: EscapeNone},
			want:      Config{LogLevel: "debug", MaxNestingDepth: 8, Escape: EscapeNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewConfigWithDefaults(tt.overrides)
			if got.LogLevel != tt.want.LogLevel || got.MaxNestingDepth != tt.want.MaxNestingDepth || got.Escape != tt.want.Escape {
				t.Errorf("NewConfigWithDefaults() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestNewConfigWithDefaultsDoesNotMutateInput(t *testing.T) {
	in := &Config{LogLevel: "warn"}
	_ = NewConfigWithDefaults(in)
	if in.MaxNestingDepth != 0 {
		t.Errorf("input mutated: %+v", in)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{"valid", Config{LogLevel: "off", MaxNestingDepth: 1, Escape: EscapeTypst}, ""},
		{"bad level", Config{LogLevel: "loud", MaxNestingDepth: 1, Escape: EscapeNone}, "invalid log level"},
		{"zero depth", Config{LogLevel: "info", MaxNestingDepth: 0, Escape: EscapeNone}, "max nesting depth"},
		{"negative depth", Config{LogLevel: "info", MaxNestingDepth: -3, Escape: EscapeNone}, "max nesting depth"},
		{"bad escape", Config{LogLevel: "info", MaxNestingDepth: 1, Escape: "html"}, "invalid escape mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestEngineConfig(t *testing.T) {
	engine := NewWithConfig(&Config{LogLevel: "debug"})

	got := engine.Config()
	if got.LogLevel != "debug" || got.MaxNestingDepth != 64 {
		t.Errorf("Config() = %+v", got)
	}
	if !engine.Logger().IsDebugMode() {
		t.Error("engine logger should be in debug mode")
	}
	if New().Logger().Level() != LogInfo {
		t.Error("default engine logger should be at info")
	}
}
