package caltrain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/theoremus-urban-solutions/caltrain/gtfs"
)

// Station is one canonical stop on the line. Stations are built once at load
// time and immutable afterwards.
type Station struct {
	// ID is the stable feed stop_id of the station's first declared platform.
	ID string
	// Name is the canonical display name, e.g. "Mountain View".
	Name string
	// Zone is the fare zone identifier the station belongs to.
	Zone string
	// Aliases are the known alternate spellings for this station.
	Aliases []string
}

func (s *Station) String() string { return s.Name }

// stationSuffixRe strips the agency decoration the feed appends to stop
// names ("San Jose Diridon Caltrain Station" -> "San Jose Diridon").
var stationSuffixRe = regexp.MustCompile(`(?i)^(.+?) Caltrain( Station)?$`)

// defaultRenames maps raw feed names (upper case, suffix stripped) onto the
// spellings the alias table is written against.
var defaultRenames = map[string]string{
	"SO. SAN FRANCISCO": "SOUTH SAN FRANCISCO",
	"MT VIEW":           "MOUNTAIN VIEW",
	"CALIFORNIA AVE":    "CALIFORNIA AVENUE",
}

// defaultAliases is the built-in alias table, keyed by canonical station
// name. The ordinal-word variants ("22nd" vs "Twenty-Second") live here as
// data rather than as a string heuristic; config can extend or replace the
// table per deployment.
var defaultAliases = map[string][]string{
	"San Francisco": {"SF", "San Fran"},
	"South San Francisco": {
		"S San Francisco", "South SF", "South San Fran", "S San Fran",
		"S SF", "So SF", "So San Francisco", "So San Fran",
	},
	"22nd St": {
		"Twenty-Second Street", "Twenty-Second St", "22nd Street", "22nd",
		"Twenty-Second", "22",
	},
	"Mountain View":     {"Mt View"},
	"California Avenue": {"Cal Ave", "California", "California Ave", "Cal", "Cal Av", "California Av"},
	"Redwood City":      {"Redwood"},
	"San Jose Diridon":  {"Diridon", "San Jose"},
	"College Park":      {"College"},
	"Blossom Hill":      {"Blossom"},
	"Morgan Hill":       {"Morgan"},
	"Hayward Park":      {"Hayward"},
	"Menlo Park":        {"Menlo"},
}

// normalizeStationName reduces a user-supplied or feed name to the form used
// for matching: lower case, alphanumerics only, "station" and "caltrain"
// tokens removed.
func normalizeStationName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n := strings.ReplaceAll(b.String(), "station", "")
	return strings.ReplaceAll(n, "caltrain", "")
}

// canonicalStationName turns a raw feed stop_name into the canonical display
// name: agency suffix stripped, renames applied, title cased.
func canonicalStationName(raw string, renames map[string]string) string {
	name := strings.TrimSpace(raw)
	if m := stationSuffixRe.FindStringSubmatch(name); m != nil {
		name = strings.TrimSpace(m[1])
	}
	upper := strings.ToUpper(name)
	if renamed, ok := renames[upper]; ok {
		upper = renamed
	}
	return titleCase(upper)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

type matchKind int

const (
	matchNone matchKind = iota
	matchExact
	matchPrefix
	matchAmbiguous
)

// StationRegistry resolves arbitrary user-typed names to canonical Station
// records. It is built once at load time; Resolve is a pure function of the
// input string and the immutable alias table.
type StationRegistry struct {
	stations []*Station          // feed declaration order
	byStopID map[string]*Station // every platform stop_id -> station
	byNorm   map[string]*Station // normalized canonical names and aliases
}

func newStationRegistry(stops []gtfs.Stop, aliases map[string][]string, renames map[string]string) (*StationRegistry, error) {
	r := &StationRegistry{
		byStopID: map[string]*Station{},
		byNorm:   map[string]*Station{},
	}
	for _, stop := range stops {
		// Non-numeric stop ids are ticket machines and other non-station
		// entries in the Caltrain feed.
		if !isNumeric(stop.ID) {
			continue
		}
		name := canonicalStationName(stop.Name, renames)
		norm := normalizeStationName(name)
		if norm == "" {
			return nil, fmt.Errorf("caltrain: stop %q has an empty station name", stop.ID)
		}
		if existing, ok := r.byNorm[norm]; ok {
			// Another platform of a station we already know.
			r.byStopID[stop.ID] = existing
			continue
		}
		st := &Station{ID: stop.ID, Name: name, Zone: stop.ZoneID}
		r.stations = append(r.stations, st)
		r.byStopID[stop.ID] = st
		r.byNorm[norm] = st
	}
	for canonical, names := range aliases {
		st, ok := r.byNorm[normalizeStationName(canonical)]
		if !ok {
			// Alias table entries for stations absent from this feed are
			// inert configuration.
			continue
		}
		for _, alias := range names {
			norm := normalizeStationName(alias)
			if norm == "" {
				continue
			}
			if existing, ok := r.byNorm[norm]; ok {
				if existing != st {
					return nil, fmt.Errorf("caltrain: alias %q of %q collides with %q",
						alias, st.Name, existing.Name)
				}
				continue
			}
			r.byNorm[norm] = st
			st.Aliases = append(st.Aliases, alias)
		}
	}
	return r, nil
}

// lookup reports the station a normalized name resolves to, tagged with how
// the match was made.
func (r *StationRegistry) lookup(raw string) (*Station, matchKind, []string) {
	norm := normalizeStationName(raw)
	if norm == "" {
		return nil, matchNone, nil
	}
	if st, ok := r.byNorm[norm]; ok {
		return st, matchExact, nil
	}
	var candidates []*Station
	for _, st := range r.stations {
		if strings.Contains(normalizeStationName(st.Name), norm) {
			candidates = append(candidates, st)
		}
	}
	switch len(candidates) {
	case 0:
		return nil, matchNone, nil
	case 1:
		return candidates[0], matchPrefix, nil
	}
	names := make([]string, len(candidates))
	for i, st := range candidates {
		names[i] = st.Name
	}
	return nil, matchAmbiguous, names
}

// Resolve maps a user-typed name to its Station. An exact normalized match
// against a canonical name or alias wins; otherwise a substring match
// against canonical names succeeds only when exactly one station qualifies.
func (r *StationRegistry) Resolve(raw string) (*Station, error) {
	st, kind, names := r.lookup(raw)
	switch kind {
	case matchExact, matchPrefix:
		return st, nil
	case matchAmbiguous:
		return nil, &AmbiguousStationError{Input: raw, Matches: names}
	}
	return nil, &StationNotFoundError{Input: raw}
}

// Stations returns every station in feed declaration order.
func (r *StationRegistry) Stations() []*Station {
	out := make([]*Station, len(r.stations))
	copy(out, r.stations)
	return out
}

func (r *StationRegistry) stationForStop(stopID string) *Station {
	return r.byStopID[stopID]
}
