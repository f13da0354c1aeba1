package caltrain

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogging configures zerolog for human-readable console output. Set
// CALTRAIN_LOG_FORMAT=JSON for structured output and CALTRAIN_DEBUG=YES to
// see per-file load logging.
func InitLogging() {
	if os.Getenv("CALTRAIN_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("CALTRAIN_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}
}
