// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// It covers everything outside the core model: where the feed zip lives,
// which timezone the schedule is anchored in, and deployment-specific
// station alias overlays.
package config
