package gtfs

// Stop corresponds to a single row in stops.txt.
type Stop struct {
	ID           string `csv:"stop_id"`
	Code         string `csv:"stop_code"`
	Name         string `csv:"stop_name"`
	Description  string `csv:"stop_desc"`
	Latitude     string `csv:"stop_lat"`
	Longitude    string `csv:"stop_lon"`
	ZoneID       string `csv:"zone_id"`
	URL          string `csv:"stop_url"`
	LocationType string `csv:"location_type"`
	Parent       string `csv:"parent_station"`
	PlatformCode string `csv:"platform_code"`
}

// Route corresponds to a single row in routes.txt.
type Route struct {
	ID        string `csv:"route_id"`
	AgencyID  string `csv:"agency_id"`
	ShortName string `csv:"route_short_name"`
	LongName  string `csv:"route_long_name"`
	Type      string `csv:"route_type"`
	Colour    string `csv:"route_color"`
}

// Trip corresponds to a single row in trips.txt.
type Trip struct {
	RouteID     string `csv:"route_id"`
	ServiceID   string `csv:"service_id"`
	ID          string `csv:"trip_id"`
	Headsign    string `csv:"trip_headsign"`
	ShortName   string `csv:"trip_short_name"`
	DirectionID string `csv:"direction_id"`
	ShapeID     string `csv:"shape_id"`
}

// StopTime corresponds to a single row in stop_times.txt. Arrival and
// departure stay raw strings here: GTFS allows the hour to exceed 23 for
// trips running past midnight, and normalising that into a (day, time) pair
// is the model layer's job.
type StopTime struct {
	TripID        string `csv:"trip_id"`
	ArrivalTime   string `csv:"arrival_time"`
	DepartureTime string `csv:"departure_time"`
	StopID        string `csv:"stop_id"`
	StopSequence  int    `csv:"stop_sequence"`
}

// Calendar corresponds to a single row in calendar.txt.
type Calendar struct {
	ServiceID string `csv:"service_id"`
	Monday    int    `csv:"monday"`
	Tuesday   int    `csv:"tuesday"`
	Wednesday int    `csv:"wednesday"`
	Thursday  int    `csv:"thursday"`
	Friday    int    `csv:"friday"`
	Saturday  int    `csv:"saturday"`
	Sunday    int    `csv:"sunday"`
	StartDate string `csv:"start_date"`
	EndDate   string `csv:"end_date"`
}

// CalendarDate corresponds to a single row in calendar_dates.txt.
// ExceptionType 1 adds the service on Date, 2 removes it.
type CalendarDate struct {
	ServiceID     string `csv:"service_id"`
	Date          string `csv:"date"`
	ExceptionType int    `csv:"exception_type"`
}

// FareAttribute corresponds to a single row in fare_attributes.txt.
// Price stays a raw decimal string; the model layer converts it to exact
// cents without ever going through a float.
type FareAttribute struct {
	FareID        string `csv:"fare_id"`
	Price         string `csv:"price"`
	CurrencyType  string `csv:"currency_type"`
	PaymentMethod string `csv:"payment_method"`
	Transfers     string `csv:"transfers"`
}

// FareRule corresponds to a single row in fare_rules.txt. Caltrain fares are
// zone based, so only the origin/destination zone columns are populated.
type FareRule struct {
	FareID        string `csv:"fare_id"`
	RouteID       string `csv:"route_id"`
	OriginID      string `csv:"origin_id"`
	DestinationID string `csv:"destination_id"`
}

// FeedInfo corresponds to a single row in feed_info.txt.
type FeedInfo struct {
	PublisherName string `csv:"feed_publisher_name"`
	PublisherURL  string `csv:"feed_publisher_url"`
	Language      string `csv:"feed_lang"`
	StartDate     string `csv:"feed_start_date"`
	EndDate       string `csv:"feed_end_date"`
	Version       string `csv:"feed_version"`
}

// Feed holds the decoded contents of one static GTFS bundle.
type Feed struct {
	Stops          []Stop
	Routes         []Route
	Trips          []Trip
	StopTimes      []StopTime
	Calendars      []Calendar
	CalendarDates  []CalendarDate
	FareAttributes []FareAttribute
	FareRules      []FareRule
	FeedInfos      []FeedInfo
}

// Version returns the feed_version from feed_info.txt, or "" when the feed
// does not carry one.
func (f *Feed) Version() string {
	if len(f.FeedInfos) == 0 {
		return ""
	}
	return f.FeedInfos[0].Version
}
