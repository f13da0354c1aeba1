package caltrain

import (
	"fmt"
	"time"

	"github.com/theoremus-urban-solutions/caltrain/gtfs"
)

// Service is one calendar entry: the weekdays a train runs, the validity
// date range, and the explicit added/removed exception dates from
// calendar_dates.txt.
type Service struct {
	ID       string
	Weekdays [7]bool // indexed by time.Weekday
	Start    time.Time
	End      time.Time
	Added    []time.Time
	Removed  []time.Time
}

// ActiveOn reports whether the service runs on the given calendar date.
// The base rule is weekday membership within [Start, End]; exception dates
// override it in either direction. Dates are compared by calendar day, so
// the location of the argument does not matter.
func (s *Service) ActiveOn(date time.Time) bool {
	key := dateKey(date)
	for _, rm := range s.Removed {
		if dateKey(rm) == key {
			return false
		}
	}
	for _, ad := range s.Added {
		if dateKey(ad) == key {
			return true
		}
	}
	if key < dateKey(s.Start) || key > dateKey(s.End) {
		return false
	}
	return s.Weekdays[date.Weekday()]
}

// dateKey collapses an instant to a comparable calendar-day ordinal.
func dateKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

// midnightOf truncates an instant to its calendar date, keeping the
// location.
func midnightOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// parseFeedDate parses a GTFS YYYYMMDD date in the given location.
func parseFeedDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("20060102", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func buildServices(feed *gtfs.Feed, loc *time.Location) (map[string]*Service, error) {
	services := map[string]*Service{}
	for i, c := range feed.Calendars {
		start, err := parseFeedDate(c.StartDate, loc)
		if err != nil {
			return nil, &gtfs.MalformedFeedError{File: "calendar.txt", Row: i + 2, Err: err}
		}
		end, err := parseFeedDate(c.EndDate, loc)
		if err != nil {
			return nil, &gtfs.MalformedFeedError{File: "calendar.txt", Row: i + 2, Err: err}
		}
		svc := &Service{ID: c.ServiceID, Start: start, End: end}
		svc.Weekdays[time.Monday] = c.Monday == 1
		svc.Weekdays[time.Tuesday] = c.Tuesday == 1
		svc.Weekdays[time.Wednesday] = c.Wednesday == 1
		svc.Weekdays[time.Thursday] = c.Thursday == 1
		svc.Weekdays[time.Friday] = c.Friday == 1
		svc.Weekdays[time.Saturday] = c.Saturday == 1
		svc.Weekdays[time.Sunday] = c.Sunday == 1
		services[c.ServiceID] = svc
	}
	for i, cd := range feed.CalendarDates {
		date, err := parseFeedDate(cd.Date, loc)
		if err != nil {
			return nil, &gtfs.MalformedFeedError{File: "calendar_dates.txt", Row: i + 2, Err: err}
		}
		svc, ok := services[cd.ServiceID]
		if !ok {
			// A service defined only by exception dates.
			svc = &Service{ID: cd.ServiceID}
			services[cd.ServiceID] = svc
		}
		switch cd.ExceptionType {
		case 1:
			svc.Added = append(svc.Added, date)
		case 2:
			svc.Removed = append(svc.Removed, date)
		default:
			return nil, &gtfs.MalformedFeedError{
				File: "calendar_dates.txt", Row: i + 2,
				Err: fmt.Errorf("invalid exception_type %d", cd.ExceptionType),
			}
		}
	}
	return services, nil
}
