package caltrain

import (
	"fmt"
	"strings"
)

// StationNotFoundError is returned when a user-supplied name matches no
// station, even after alias and prefix matching.
type StationNotFoundError struct {
	Input string
}

func (e *StationNotFoundError) Error() string {
	return fmt.Sprintf("caltrain: unknown station %q", e.Input)
}

// AmbiguousStationError is returned when a partial name matches more than
// one station with no preferred winner. Matches carries the candidate
// station names so a caller can present disambiguation.
type AmbiguousStationError struct {
	Input   string
	Matches []string
}

func (e *AmbiguousStationError) Error() string {
	return fmt.Sprintf("caltrain: ambiguous station %q (matches %s)",
		e.Input, strings.Join(e.Matches, ", "))
}

// FareNotFoundError is returned when the feed publishes no fare for either
// ordering of a zone pair.
type FareNotFoundError struct {
	OriginZone      string
	DestinationZone string
}

func (e *FareNotFoundError) Error() string {
	return fmt.Sprintf("caltrain: no fare published between zones %s and %s",
		e.OriginZone, e.DestinationZone)
}
