package config

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("FOLLOWEE_RECIPES_LIMIT", "5")

	cfg, err := ParseConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBType != "sqlite" {
		t.Errorf("expected sqlite default, got %q", cfg.DBType)
	}
	if cfg.FolloweeRecipesLimit != 5 {
		t.Errorf("expected followee recipes limit 5, got %d", cfg.FolloweeRecipesLimit)
	}
	if cfg.MaxPageSize != 100 || cfg.PageSize != 6 {
		t.Errorf("unexpected page sizes: %d/%d", cfg.PageSize, cfg.MaxPageSize)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		raw      string
		expected logrus.Level
	}{
		{raw: "debug", expected: logrus.DebugLevel},
		{raw: "warn", expected: logrus.WarnLevel},
		{raw: "nonsense", expected: logrus.InfoLevel},
		{raw: "", expected: logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			cfg := Config{LogLevel: tt.raw}
			if got := cfg.ParseLogLevel(); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
