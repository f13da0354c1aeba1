// Package caltrain answers point queries against a fixed, offline Caltrain
// schedule: which trains run between two stations after a given time, what
// the fare between two stations is, and where a given train stops.
//
// The package loads a static GTFS bundle once, builds immutable in-memory
// indices, and serves repeated lookups with no network access. Instances are
// caller-constructed; there is no implicit default feed. Once Load returns,
// every query operation is a read-only traversal safe for concurrent use.
package caltrain

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/caltrain/gtfs"
)

type loadOptions struct {
	location *time.Location
	aliases  map[string][]string
	renames  map[string]string
}

// Option adjusts how a feed is loaded.
type Option func(*loadOptions)

// WithLocation sets the timezone the schedule is anchored in. The default is
// America/Los_Angeles (falling back to the system location when tzdata is
// unavailable).
func WithLocation(loc *time.Location) Option {
	return func(o *loadOptions) { o.location = loc }
}

// WithAliases merges extra station aliases (canonical name -> alternate
// spellings) over the built-in table.
func WithAliases(aliases map[string][]string) Option {
	return func(o *loadOptions) {
		for canonical, names := range aliases {
			o.aliases[canonical] = append(o.aliases[canonical], names...)
		}
	}
}

// WithRenames merges extra raw-feed-name renames (upper case, suffix
// stripped) over the built-in table.
func WithRenames(renames map[string]string) Option {
	return func(o *loadOptions) {
		for from, to := range renames {
			o.renames[from] = to
		}
	}
}

// Caltrain is the query facade over one loaded feed: station resolution,
// trip enumeration and fare lookup.
type Caltrain struct {
	stations *StationRegistry
	schedule *ScheduleIndex
	fares    *FareTable
	version  string
	location *time.Location
}

// Load reads a GTFS zip from disk and builds the queryable model.
func Load(path string, opts ...Option) (*Caltrain, error) {
	feed, err := gtfs.OpenZip(path)
	if err != nil {
		return nil, err
	}
	return LoadFeed(feed, opts...)
}

// LoadBytes builds the queryable model from a GTFS zip held in memory.
func LoadBytes(b []byte, opts ...Option) (*Caltrain, error) {
	feed, err := gtfs.ParseBytes(b)
	if err != nil {
		return nil, err
	}
	return LoadFeed(feed, opts...)
}

// LoadFeed builds the queryable model from already-parsed feed records. The
// feed is assumed validated (gtfs.Parse validates; call feed.Validate
// yourself when constructing records by hand). Loading is one-shot: the
// returned Caltrain is immutable, and picking up a new feed version means
// loading a fresh instance.
func LoadFeed(feed *gtfs.Feed, opts ...Option) (*Caltrain, error) {
	o := &loadOptions{
		location: defaultLocation(),
		aliases:  map[string][]string{},
		renames:  map[string]string{},
	}
	for canonical, names := range defaultAliases {
		o.aliases[canonical] = append([]string(nil), names...)
	}
	for from, to := range defaultRenames {
		o.renames[from] = to
	}
	for _, opt := range opts {
		opt(o)
	}

	stations, err := newStationRegistry(feed.Stops, o.aliases, o.renames)
	if err != nil {
		return nil, err
	}
	services, err := buildServices(feed, o.location)
	if err != nil {
		return nil, err
	}
	schedule, err := newScheduleIndex(feed, stations, services)
	if err != nil {
		return nil, err
	}
	fares, err := newFareTable(feed)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("stations", len(stations.stations)).
		Int("trains", len(schedule.trains)).
		Str("version", feed.Version()).
		Msg("Built schedule model")

	return &Caltrain{
		stations: stations,
		schedule: schedule,
		fares:    fares,
		version:  feed.Version(),
		location: o.location,
	}, nil
}

func defaultLocation() *time.Location {
	if loc, err := time.LoadLocation("America/Los_Angeles"); err == nil {
		return loc
	}
	return time.Local
}

// Version returns the loaded feed's version identifier, for diagnostics
// only.
func (c *Caltrain) Version() string { return c.version }

// GetStation resolves a user-typed name to its Station.
func (c *Caltrain) GetStation(name string) (*Station, error) {
	return c.stations.Resolve(name)
}

// Stations returns every station in feed declaration order.
func (c *Caltrain) Stations() []*Station { return c.stations.Stations() }

// Trains returns every train in feed declaration order.
func (c *Caltrain) Trains() []*Train { return c.schedule.Trains() }

// TrainByName returns the train with the given public number.
func (c *Caltrain) TrainByName(name string) (*Train, bool) {
	return c.schedule.TrainByName(name)
}

// StopsFor returns a train's stops in route order.
func (c *Caltrain) StopsFor(train *Train) []StopTime {
	return c.schedule.StopsFor(train)
}

// NextTrips resolves both station names and returns the trips departing
// strictly after the given instant, soonest first. A zero after means "now"
// in the schedule's timezone; the service date is derived from after.
// limit <= 0 returns every qualifying trip. An empty result is not an
// error.
func (c *Caltrain) NextTrips(originName, destName string, after time.Time, limit int) ([]TripSegment, error) {
	origin, err := c.stations.Resolve(originName)
	if err != nil {
		return nil, err
	}
	dest, err := c.stations.Resolve(destName)
	if err != nil {
		return nil, err
	}
	if after.IsZero() {
		after = time.Now().In(c.location)
	}
	return c.schedule.NextTrips(origin, dest, after, limit), nil
}

// FareBetween resolves both station names and returns the fare between
// their zones.
func (c *Caltrain) FareBetween(originName, destName string) (Fare, error) {
	origin, err := c.stations.Resolve(originName)
	if err != nil {
		return 0, err
	}
	dest, err := c.stations.Resolve(destName)
	if err != nil {
		return 0, err
	}
	return c.fares.Between(origin, dest)
}
