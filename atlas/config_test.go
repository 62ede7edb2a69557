package atlas

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Scale != 20 || c.Margin != 1 || c.Width != 256 || c.Height != 256 {
		t.Errorf("DefaultConfig() = %+v", c)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{"zero scale", func(c *Config) { c.Scale = 0 }, "Scale"},
		{"negative margin", func(c *Config) { c.Margin = -1 }, "Margin"},
		{"zero width", func(c *Config) { c.Width = 0 }, "Width"},
		{"zero height", func(c *Config) { c.Height = 0 }, "Height"},
		{"negative max", func(c *Config) { c.MaxSize = -5 }, "MaxSize"},
		{"max below start", func(c *Config) { c.MaxSize = 128 }, "MaxSize"},
		{"unknown algorithm", func(c *Config) { c.Algorithm = "maxrects" }, "Algorithm"},
		{"empty algorithm", func(c *Config) { c.Algorithm = "" }, ""},
		{"shelf", func(c *Config) { c.Algorithm = Shelf }, ""},
		{"max equal start", func(c *Config) { c.MaxSize = 256 }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			err := c.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("err = %v, want *ConfigError", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.wantField)
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("Error() = %q should name the field", err.Error())
			}
		})
	}
}
