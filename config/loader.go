package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultTimezone is used when the config does not pin one.
const DefaultTimezone = "America/Los_Angeles"

// Load reads and validates the first readable config file. With no paths
// given it tries config.yml and caltrain.yml in the working directory.
func Load(paths ...string) (AppConfig, error) {
	if len(paths) == 0 {
		paths = []string{"config.yml", "caltrain.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return AppConfig{}, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	if cfg.Feed.Timezone == "" {
		cfg.Feed.Timezone = DefaultTimezone
	}
	return cfg, nil
}
