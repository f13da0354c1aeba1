package config

// FeedConfig locates the static GTFS bundle and anchors its timezone.
type FeedConfig struct {
	Path     string `yaml:"path" validate:"required"`
	Timezone string `yaml:"timezone" validate:"omitempty,timezone"`
}

// StationConfig overlays deployment-specific station naming onto the
// built-in tables: Aliases maps a canonical station name to extra alternate
// spellings, Renames maps raw feed names (upper case) to the spelling the
// alias table uses.
type StationConfig struct {
	Aliases map[string][]string `yaml:"aliases"`
	Renames map[string]string   `yaml:"renames"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Feed     FeedConfig    `yaml:"feed" validate:"required"`
	Stations StationConfig `yaml:"stations"`
}
