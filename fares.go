package caltrain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/caltrain/gtfs"
)

// Fare is an exact amount in cents. Fares never pass through a float, so
// $7.75 is always precisely 775.
type Fare int64

// Cents returns the amount in cents.
func (f Fare) Cents() int64 { return int64(f) }

// String renders the fare for display, e.g. "$7.75". Formatting is a
// presentation concern only; the value's identity is the cents amount.
func (f Fare) String() string {
	return fmt.Sprintf("$%d.%02d", f/100, f%100)
}

// parseFarePrice converts a GTFS decimal price string ("7.75") into exact
// cents by splitting on the decimal point.
func parseFarePrice(s string) (Fare, error) {
	major, minor, _ := strings.Cut(strings.TrimSpace(s), ".")
	dollars, err := strconv.ParseInt(major, 10, 64)
	if err != nil || dollars < 0 {
		return 0, fmt.Errorf("invalid fare price %q", s)
	}
	cents := int64(0)
	if minor != "" {
		if len(minor) > 2 {
			minor = minor[:2]
		}
		for len(minor) < 2 {
			minor += "0"
		}
		cents, err = strconv.ParseInt(minor, 10, 64)
		if err != nil || cents < 0 {
			return 0, fmt.Errorf("invalid fare price %q", s)
		}
	}
	return Fare(dollars*100 + cents), nil
}

// FareTable maps ordered zone pairs to fares. Lookups fall back to the
// swapped pair, so a feed that publishes only one direction yields the same
// fare both ways while explicit directional entries still win.
type FareTable struct {
	fares map[[2]string]Fare
}

func newFareTable(feed *gtfs.Feed) (*FareTable, error) {
	prices := make(map[string]Fare, len(feed.FareAttributes))
	for i, fa := range feed.FareAttributes {
		price, err := parseFarePrice(fa.Price)
		if err != nil {
			return nil, &gtfs.MalformedFeedError{File: "fare_attributes.txt", Row: i + 2, Err: err}
		}
		prices[fa.FareID] = price
	}
	t := &FareTable{fares: make(map[[2]string]Fare, len(feed.FareRules))}
	for _, fr := range feed.FareRules {
		t.fares[[2]string{fr.OriginID, fr.DestinationID}] = prices[fr.FareID]
	}
	return t, nil
}

// Between returns the fare from origin to dest by zone pair. The exact pair
// wins; otherwise the swapped pair is assumed symmetric; otherwise the feed
// publishes no fare and a *FareNotFoundError is returned.
func (t *FareTable) Between(origin, dest *Station) (Fare, error) {
	if fare, ok := t.fares[[2]string{origin.Zone, dest.Zone}]; ok {
		return fare, nil
	}
	if fare, ok := t.fares[[2]string{dest.Zone, origin.Zone}]; ok {
		return fare, nil
	}
	return 0, &FareNotFoundError{OriginZone: origin.Zone, DestinationZone: dest.Zone}
}
