package caltrain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/caltrain/gtfs"
)

// TrainKind is the enumerated service category of a train.
type TrainKind int

const (
	KindUnknown TrainKind = iota
	KindLocal
	KindLimited
	KindBabyBullet
	KindTamienSanJose
)

// trainKindPrefixes maps the route_id prefix the feed uses onto the kind.
var trainKindPrefixes = map[string]TrainKind{
	"lo":   KindLocal,
	"li":   KindLimited,
	"bu":   KindBabyBullet,
	"tasj": KindTamienSanJose,
}

func parseTrainKind(routeID string) TrainKind {
	prefix, _, _ := strings.Cut(strings.ToLower(routeID), "-")
	return trainKindPrefixes[strings.TrimSpace(prefix)]
}

func (k TrainKind) String() string {
	switch k {
	case KindLocal:
		return "Local"
	case KindLimited:
		return "Limited"
	case KindBabyBullet:
		return "Baby Bullet"
	case KindTamienSanJose:
		return "Tamien Sanjose"
	}
	return "Unknown"
}

// Direction is the heading of a train along the line.
type Direction int

const (
	North Direction = iota
	South
)

func (d Direction) String() string {
	if d == South {
		return "South"
	}
	return "North"
}

// StopTime anchors a train's route at one station: the arrival and
// departure as (day offset, time of day) pairs relative to the service day,
// and the position along the route.
type StopTime struct {
	Station   *Station
	Arrival   TransitTime
	Departure TransitTime
	Seq       int
}

// Train is one scheduled trip: identity, category, heading, the calendar it
// runs on, and its stop sequence in route order.
type Train struct {
	ID        string
	Name      string
	Kind      TrainKind
	Direction Direction
	Service   *Service
	Stops     []StopTime
}

// StopAt returns the train's StopTime at a station, if the train calls
// there.
func (t *Train) StopAt(station *Station) (StopTime, bool) {
	for _, st := range t.Stops {
		if st.Station == station {
			return st, true
		}
	}
	return StopTime{}, false
}

// TripSegment is one query result: a train together with the concrete
// departure and arrival instants for a specific origin-destination request.
type TripSegment struct {
	Train     *Train
	Departure time.Time
	Arrival   time.Time
	Duration  time.Duration
}

func (s TripSegment) String() string {
	return fmt.Sprintf("[%s %s] Departs: %s, Arrives: %s (%s)",
		s.Train.Kind, s.Train.Name,
		s.Departure.Format("15:04:05"), s.Arrival.Format("15:04:05"), s.Duration)
}

// ScheduleIndex holds every train and a per-train station index. Built once
// at load time, read-only afterwards.
type ScheduleIndex struct {
	trains  []*Train
	byID    map[string]*Train
	stopIdx map[string]map[string]int // train id -> station id -> index into Stops
}

func newScheduleIndex(feed *gtfs.Feed, stations *StationRegistry, services map[string]*Service) (*ScheduleIndex, error) {
	idx := &ScheduleIndex{
		byID:    map[string]*Train{},
		stopIdx: map[string]map[string]int{},
	}

	for _, trip := range feed.Trips {
		name := trip.ShortName
		if name == "" {
			name = trip.ID
		}
		direction := North
		if trip.DirectionID == "1" {
			direction = South
		}
		train := &Train{
			ID:        trip.ID,
			Name:      name,
			Kind:      parseTrainKind(trip.RouteID),
			Direction: direction,
			Service:   services[trip.ServiceID],
		}
		idx.trains = append(idx.trains, train)
		idx.byID[trip.ID] = train
	}

	for i, st := range feed.StopTimes {
		train := idx.byID[st.TripID]
		station := stations.stationForStop(st.StopID)
		if station == nil {
			// Stop_times against non-station stops (already excluded from
			// the registry) carry no queryable schedule.
			continue
		}
		arrival, err := ParseTransitTime(st.ArrivalTime)
		if err != nil {
			return nil, &gtfs.MalformedFeedError{File: "stop_times.txt", Row: i + 2, Err: err}
		}
		departure, err := ParseTransitTime(st.DepartureTime)
		if err != nil {
			return nil, &gtfs.MalformedFeedError{File: "stop_times.txt", Row: i + 2, Err: err}
		}
		train.Stops = append(train.Stops, StopTime{
			Station:   station,
			Arrival:   arrival,
			Departure: departure,
			Seq:       st.StopSequence,
		})
	}

	for _, train := range idx.trains {
		sort.SliceStable(train.Stops, func(i, j int) bool {
			return train.Stops[i].Seq < train.Stops[j].Seq
		})
		byStation := make(map[string]int, len(train.Stops))
		prev := TransitTime{}
		for i, st := range train.Stops {
			if i > 0 && st.Arrival.Before(prev) {
				return nil, &gtfs.MalformedFeedError{
					File: "stop_times.txt", Row: 0,
					Err: fmt.Errorf("trip %q time goes backwards at sequence %d", train.ID, st.Seq),
				}
			}
			prev = st.Departure
			// First occurrence by sequence wins; a train passing a station
			// twice never qualifies for the later visit.
			if _, ok := byStation[st.Station.ID]; !ok {
				byStation[st.Station.ID] = i
			}
		}
		idx.stopIdx[train.ID] = byStation
	}

	return idx, nil
}

// Trains returns every train in feed declaration order.
func (s *ScheduleIndex) Trains() []*Train {
	out := make([]*Train, len(s.trains))
	copy(out, s.trains)
	return out
}

// TrainByName returns the train with the given display name (the public
// train number, e.g. "143").
func (s *ScheduleIndex) TrainByName(name string) (*Train, bool) {
	for _, t := range s.trains {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// StopsFor returns the train's stops in route order.
func (s *ScheduleIndex) StopsFor(train *Train) []StopTime {
	out := make([]StopTime, len(train.Stops))
	copy(out, train.Stops)
	return out
}

// NextTrips returns the trips from origin to dest departing strictly after
// the given instant, soonest first, ties broken by train name. Both the
// instant's calendar date and the previous date are considered as candidate
// service days, so a trip encoded past midnight (hour >= 24) of the prior
// service day is still found by a query just before or after midnight.
// limit <= 0 returns every qualifying trip.
func (s *ScheduleIndex) NextTrips(origin, dest *Station, after time.Time, limit int) []TripSegment {
	day := midnightOf(after)
	segments := []TripSegment{}
	for _, serviceDay := range []time.Time{day.AddDate(0, 0, -1), day} {
		for _, train := range s.trains {
			if train.Service == nil || !train.Service.ActiveOn(serviceDay) {
				continue
			}
			stops := s.stopIdx[train.ID]
			oi, ok := stops[origin.ID]
			if !ok {
				continue
			}
			di, ok := stops[dest.ID]
			if !ok || oi >= di {
				continue
			}
			departure := train.Stops[oi].Departure.On(serviceDay)
			if !departure.After(after) {
				continue
			}
			arrival := train.Stops[di].Arrival.On(serviceDay)
			segments = append(segments, TripSegment{
				Train:     train,
				Departure: departure,
				Arrival:   arrival,
				Duration:  arrival.Sub(departure),
			})
		}
	}
	sort.SliceStable(segments, func(i, j int) bool {
		if !segments[i].Departure.Equal(segments[j].Departure) {
			return segments[i].Departure.Before(segments[j].Departure)
		}
		return segments[i].Train.Name < segments[j].Train.Name
	})
	if limit > 0 && len(segments) > limit {
		segments = segments[:limit]
	}
	return segments
}
