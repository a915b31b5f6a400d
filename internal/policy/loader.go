package policy

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a policy file. Semantic checks beyond the version
// gate live in Validate so all problems can be reported together.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Version != 1 {
		return nil, errors.New("unsupported policy version")
	}

	if cfg.Controls == nil {
		cfg.Controls = make(map[string]ControlConfig)
	}

	return &cfg, nil
}
