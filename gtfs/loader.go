package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

var requiredFiles = []string{
	"stops.txt",
	"routes.txt",
	"trips.txt",
	"stop_times.txt",
	"calendar.txt",
	"fare_attributes.txt",
	"fare_rules.txt",
}

// OpenZip reads a GTFS zip from disk, decodes its tables and validates
// cross-references.
func OpenZip(zipPath string) (*Feed, error) {
	f, err := os.Open(zipPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return Parse(f, stat.Size())
}

// ParseBytes decodes a GTFS zip held in memory.
func ParseBytes(b []byte) (*Feed, error) {
	return Parse(bytes.NewReader(b), int64(len(b)))
}

// Parse decodes all known GTFS tables from a zip archive and validates
// cross-references. Unknown files inside the archive are ignored.
func Parse(r io.ReaderAt, size int64) (*Feed, error) {
	archive, err := zip.NewReader(r, size)
	if err != nil {
		return nil, &MalformedFeedError{File: "feed.zip", Err: err}
	}

	// Feeds in the wild carry rows with missing trailing columns.
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		cr := csv.NewReader(in)
		cr.FieldsPerRecord = -1
		return cr
	})

	feed := &Feed{}
	fileMap := map[string]any{
		"stops.txt":           &feed.Stops,
		"routes.txt":          &feed.Routes,
		"trips.txt":           &feed.Trips,
		"stop_times.txt":      &feed.StopTimes,
		"calendar.txt":        &feed.Calendars,
		"calendar_dates.txt":  &feed.CalendarDates,
		"fare_attributes.txt": &feed.FareAttributes,
		"fare_rules.txt":      &feed.FareRules,
		"feed_info.txt":       &feed.FeedInfos,
	}

	seen := map[string]bool{}
	for _, zf := range archive.File {
		name := strings.ToLower(path.Base(zf.Name))
		destination, known := fileMap[name]
		if !known {
			log.Debug().Str("file", zf.Name).Msg("Skipping unknown feed file")
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			return nil, &MalformedFeedError{File: name, Err: err}
		}
		err = gocsv.Unmarshal(rc, destination)
		rc.Close()
		if err != nil {
			return nil, &MalformedFeedError{File: name, Err: err}
		}
		seen[name] = true
	}

	for _, name := range requiredFiles {
		if !seen[name] {
			return nil, malformed(name, 0, "required file missing from feed")
		}
	}

	if err := feed.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Int("stops", len(feed.Stops)).
		Int("trips", len(feed.Trips)).
		Int("stop_times", len(feed.StopTimes)).
		Str("version", feed.Version()).
		Msg("Loaded GTFS feed")

	return feed, nil
}

// Validate performs the fail-fast referential checks: every stop_time must
// reference a known trip and stop, every trip a known route and service, and
// every fare rule a known fare id. Row numbers are 1-based counting the
// header line.
func (f *Feed) Validate() error {
	stops := make(map[string]struct{}, len(f.Stops))
	for _, s := range f.Stops {
		stops[s.ID] = struct{}{}
	}
	routes := make(map[string]struct{}, len(f.Routes))
	for _, r := range f.Routes {
		routes[r.ID] = struct{}{}
	}
	services := make(map[string]struct{}, len(f.Calendars))
	for _, c := range f.Calendars {
		services[c.ServiceID] = struct{}{}
	}
	// calendar_dates may introduce services that have no calendar row
	for _, cd := range f.CalendarDates {
		services[cd.ServiceID] = struct{}{}
	}
	trips := make(map[string]struct{}, len(f.Trips))
	for i, t := range f.Trips {
		if _, ok := routes[t.RouteID]; !ok {
			return malformed("trips.txt", i+2, "trip %q references unknown route %q", t.ID, t.RouteID)
		}
		if _, ok := services[t.ServiceID]; !ok {
			return malformed("trips.txt", i+2, "trip %q references unknown service %q", t.ID, t.ServiceID)
		}
		trips[t.ID] = struct{}{}
	}
	for i, st := range f.StopTimes {
		if _, ok := trips[st.TripID]; !ok {
			return malformed("stop_times.txt", i+2, "stop_time references unknown trip %q", st.TripID)
		}
		if _, ok := stops[st.StopID]; !ok {
			return malformed("stop_times.txt", i+2, "stop_time references unknown stop %q", st.StopID)
		}
	}
	fareIDs := make(map[string]struct{}, len(f.FareAttributes))
	for _, fa := range f.FareAttributes {
		fareIDs[fa.FareID] = struct{}{}
	}
	for i, fr := range f.FareRules {
		if _, ok := fareIDs[fr.FareID]; !ok {
			return malformed("fare_rules.txt", i+2, "fare rule references unknown fare %q", fr.FareID)
		}
	}
	return nil
}
