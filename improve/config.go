package improve

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config tunes the improvement driver.
type Config struct {
	// MaxExtra caps how many elements outside the reference a partial
	// construction may hold.
	// Default: 1
	MaxExtra int `yaml:"max_extra"`

	// Replays is the number of random instances a candidate is replayed on.
	// Default: 3
	Replays int `yaml:"replays"`

	// Seed for drawing the replay instances.
	// Default: 1
	Seed int64 `yaml:"seed"`

	// MinDepth is the first depth tried by iterative deepening.
	// Default: 0
	MinDepth int `yaml:"min_depth"`

	// MaxDepth optionally limits the search below the reference length.
	// Default: 0 (the reference length)
	MaxDepth int `yaml:"max_depth"`

	// Concurrency bounds the replays run at once.
	// Default: 4
	Concurrency int `yaml:"concurrency"`

	// Jitter is how far each sample point moves when a puzzle has no
	// random instance generator.
	// Default: 0.25
	Jitter float64 `yaml:"jitter"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxExtra:    1,
		Replays:     3,
		Seed:        1,
		Concurrency: 4,
		Jitter:      0.25,
	}
}

// ParseConfig reads YAML over the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parsing improve config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading %s", path)
	}
	return ParseConfig(data)
}

func (c Config) Validate() error {
	switch {
	case c.MaxExtra < 0:
		return errors.Errorf("max_extra must not be negative, got %d", c.MaxExtra)
	case c.Replays < 1:
		return errors.Errorf("replays must be at least 1, got %d", c.Replays)
	case c.MinDepth < 0 || c.MaxDepth < 0:
		return errors.New("depths must not be negative")
	case c.Concurrency < 1:
		return errors.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	case c.Jitter < 0:
		return errors.Errorf("jitter must not be negative, got %v", c.Jitter)
	}
	return nil
}
