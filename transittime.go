package caltrain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// TransitTime is a schedule time as an explicit (day offset, time of day)
// pair. GTFS encodes trips that run past midnight with hours of 24 and
// above; ParseTransitTime folds those into Day so that ordering and duration
// arithmetic stay correct across the midnight boundary.
type TransitTime struct {
	// Day is the offset in whole days from the trip's service day.
	Day int
	// Seconds is the time of day in seconds, always within [0, 86400).
	Seconds int
}

// ParseTransitTime parses a GTFS "H:MM:SS" or "HH:MM:SS" clock string. The
// hour may exceed 23: "24:05:00" parses as day 1, 00:05:00.
func ParseTransitTime(s string) (TransitTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return TransitTime{}, fmt.Errorf("invalid transit time %q", s)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return TransitTime{}, fmt.Errorf("invalid transit time %q", s)
		}
		v[i] = n
	}
	if v[1] > 59 || v[2] > 59 {
		return TransitTime{}, fmt.Errorf("invalid transit time %q", s)
	}
	day, hour := v[0]/24, v[0]%24
	return TransitTime{Day: day, Seconds: hour*3600 + v[1]*60 + v[2]}, nil
}

// Clock returns the hour, minute and second of the time-of-day component.
func (t TransitTime) Clock() (hour, min, sec int) {
	return t.Seconds / 3600, t.Seconds / 60 % 60, t.Seconds % 60
}

// Compare orders two transit times by (day, time of day).
func (t TransitTime) Compare(o TransitTime) int {
	a, b := t.absSeconds(), o.absSeconds()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Before reports whether t is strictly earlier than o.
func (t TransitTime) Before(o TransitTime) bool { return t.Compare(o) < 0 }

// Sub returns the duration from o to t, day offsets included. A departure at
// 23:50:00 day 0 and an arrival at 00:15:00 day 1 are 25 minutes apart, not
// negative.
func (t TransitTime) Sub(o TransitTime) time.Duration {
	return time.Duration(t.absSeconds()-o.absSeconds()) * time.Second
}

// On anchors the transit time to a concrete service date, producing the
// instant it denotes. The date's clock component is ignored.
func (t TransitTime) On(serviceDate time.Time) time.Time {
	y, m, d := serviceDate.Date()
	return time.Date(y, m, d+t.Day, 0, 0, t.Seconds, 0, serviceDate.Location())
}

func (t TransitTime) String() string {
	h, m, s := t.Clock()
	if t.Day > 0 {
		return fmt.Sprintf("%02d:%02d:%02d+%dd", h, m, s, t.Day)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func (t TransitTime) absSeconds() int { return t.Day*secondsPerDay + t.Seconds }
