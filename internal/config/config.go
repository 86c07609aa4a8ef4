package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/oahshtsua/lab/bst/internal/render"
)

type Config struct {
	Debug   bool   `json:"debug" yaml:"debug"`
	Journal string `json:"journal,omitempty" yaml:"journal,omitempty"`
	Style   string `json:"style,omitempty" yaml:"style,omitempty"`
	NoColor bool   `json:"no-color,omitempty" yaml:"no-color,omitempty"`
}

func Default() *Config {
	return &Config{
		Style: string(render.StyleASCII),
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", filename)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", filename)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overrides fields with the keys explicitly set in v, either by flags
// or by environment variables.
func (c *Config) Merge(v *viper.Viper) error {
	if v.IsSet("debug") {
		c.Debug = v.GetBool("debug")
	}
	if v.IsSet("journal") {
		c.Journal = v.GetString("journal")
	}
	if v.IsSet("style") {
		c.Style = v.GetString("style")
	}
	if v.IsSet("no-color") {
		c.NoColor = v.GetBool("no-color")
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	_, err := render.ParseStyle(c.Style)
	return err
}

func (c *Config) RenderStyle() render.Style {
	style, err := render.ParseStyle(c.Style)
	if err != nil {
		return render.StyleASCII
	}
	return style
}
