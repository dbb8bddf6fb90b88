package h3grid

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// CoverConfig describes a batch cover job: named layers of GeoJSON input,
// each filled at its own resolution.
type CoverConfig struct {
	Layers map[string]*CoverLayer `yaml:"layers"`
}

type CoverLayer struct {
	Source     string `yaml:"source"`
	Resolution int    `yaml:"resolution"`
	Compact    bool   `yaml:"compact"`
}

func LoadCoverConfig(configPath string) (*CoverConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	config := &CoverConfig{}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	if len(config.Layers) == 0 {
		return nil, fmt.Errorf("%w: no layers configured", ErrInvalidArgument)
	}
	for name, layer := range config.Layers {
		if layer.Source == "" {
			return nil, fmt.Errorf("%w: layer %s has no source", ErrInvalidArgument, name)
		}
		if !Resolution(layer.Resolution).valid() {
			return nil, fmt.Errorf("%w: layer %s at resolution %d", ErrResolution, name, layer.Resolution)
		}
	}

	return config, nil
}
