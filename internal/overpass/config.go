package overpass

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is the public Overpass interpreter used when no
// endpoint is configured.
const DefaultEndpoint = "https://lz4.overpass-api.de/api/interpreter"

const defaultTimeoutMS = 30000

// Config holds the fetch settings for one run. APIEndpoint may also be
// a local file path containing a saved interpreter response.
type Config struct {
	APIEndpoint string `yaml:"apiEndpoint" validate:"omitempty"`
	Area        string `yaml:"area" validate:"required"`
	RouteFilter string `yaml:"routeFilter" validate:"required"`
	CachePath   string `yaml:"cachePath"`
	TimeoutMS   int    `yaml:"timeoutMS" validate:"gte=0"`
}

// LoadConfig reads a YAML config file, validates it and applies
// defaults for anything left unset.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// Validate checks the struct tags. Configs built from flags should be
// validated too before use.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}

func (c *Config) ApplyDefaults() {
	if c.APIEndpoint == "" {
		c.APIEndpoint = DefaultEndpoint
	}
	if c.TimeoutMS == 0 {
		c.TimeoutMS = defaultTimeoutMS
	}
}
