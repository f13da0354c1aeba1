package gtfs

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFiles() map[string]string {
	return map[string]string{
		"stops.txt": "stop_id,stop_name,zone_id\n" +
			"70011,San Francisco Caltrain Station,1\n" +
			"70231,Sunnyvale Caltrain Station,3\n",
		"routes.txt": "route_id,route_short_name\nLo-130,Local\n",
		"trips.txt": "route_id,service_id,trip_id,trip_short_name,direction_id\n" +
			"Lo-130,WD,t143,143,0\n",
		"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
			"t143,11:26:00,11:26:00,70231,1\n" +
			"t143,12:43:00,12:43:00,70011,2\n",
		"calendar.txt": "service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date\n" +
			"WD,1,1,1,1,1,0,0,20250101,20261231\n",
		"calendar_dates.txt":  "service_id,date,exception_type\nWD,20250901,2\n",
		"fare_attributes.txt": "fare_id,price,currency_type\nf13,7.75,USD\n",
		"fare_rules.txt":      "fare_id,origin_id,destination_id\nf13,1,3\n",
		"feed_info.txt":       "feed_publisher_name,feed_version\nCaltrain,2025.09.1\n",
	}
}

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestParseValidFeed(t *testing.T) {
	feed, err := ParseBytes(buildZip(t, validFiles()))
	require.NoError(t, err)

	assert.Len(t, feed.Stops, 2)
	assert.Len(t, feed.Routes, 1)
	assert.Len(t, feed.Trips, 1)
	assert.Len(t, feed.StopTimes, 2)
	assert.Len(t, feed.Calendars, 1)
	assert.Len(t, feed.CalendarDates, 1)
	assert.Len(t, feed.FareAttributes, 1)
	assert.Len(t, feed.FareRules, 1)
	assert.Equal(t, "2025.09.1", feed.Version())

	assert.Equal(t, "Sunnyvale Caltrain Station", feed.Stops[1].Name)
	assert.Equal(t, "3", feed.Stops[1].ZoneID)
	assert.Equal(t, 1, feed.StopTimes[0].StopSequence)
}

func TestOpenZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.zip")
	require.NoError(t, os.WriteFile(path, buildZip(t, validFiles()), 0o644))

	feed, err := OpenZip(path)
	require.NoError(t, err)
	assert.Len(t, feed.Stops, 2)
}

func TestParseRejectsMissingRequiredFile(t *testing.T) {
	files := validFiles()
	delete(files, "stop_times.txt")

	_, err := ParseBytes(buildZip(t, files))
	var malformed *MalformedFeedError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "stop_times.txt", malformed.File)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ParseBytes([]byte("this is not a zip"))
	var malformed *MalformedFeedError
	assert.ErrorAs(t, err, &malformed)
}

func TestValidateRejectsUnknownStop(t *testing.T) {
	files := validFiles()
	files["stop_times.txt"] = "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
		"t143,11:26:00,11:26:00,70231,1\n" +
		"t143,12:43:00,12:43:00,99999,2\n"

	_, err := ParseBytes(buildZip(t, files))
	var malformed *MalformedFeedError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "stop_times.txt", malformed.File)
	assert.Equal(t, 3, malformed.Row)
}

func TestValidateRejectsUnknownService(t *testing.T) {
	files := validFiles()
	files["trips.txt"] = "route_id,service_id,trip_id,trip_short_name,direction_id\n" +
		"Lo-130,NOPE,t143,143,0\n"

	_, err := ParseBytes(buildZip(t, files))
	var malformed *MalformedFeedError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "trips.txt", malformed.File)
	assert.Equal(t, 2, malformed.Row)
}

func TestValidateRejectsUnknownRoute(t *testing.T) {
	files := validFiles()
	files["trips.txt"] = "route_id,service_id,trip_id,trip_short_name,direction_id\n" +
		"NOPE,WD,t143,143,0\n"

	_, err := ParseBytes(buildZip(t, files))
	var malformed *MalformedFeedError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "trips.txt", malformed.File)
}

func TestValidateRejectsUnknownFareID(t *testing.T) {
	files := validFiles()
	files["fare_rules.txt"] = "fare_id,origin_id,destination_id\nNOPE,1,3\n"

	_, err := ParseBytes(buildZip(t, files))
	var malformed *MalformedFeedError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "fare_rules.txt", malformed.File)
}

func TestValidateAllowsExceptionOnlyService(t *testing.T) {
	files := validFiles()
	files["trips.txt"] = "route_id,service_id,trip_id,trip_short_name,direction_id\n" +
		"Lo-130,WD,t143,143,0\n" +
		"Lo-130,SPECIAL,t999,999,0\n"
	files["calendar_dates.txt"] = "service_id,date,exception_type\nSPECIAL,20250704,1\n"

	_, err := ParseBytes(buildZip(t, files))
	assert.NoError(t, err)
}

func TestParseIgnoresUnknownFiles(t *testing.T) {
	files := validFiles()
	files["shapes.txt"] = "shape_id,shape_pt_lat,shape_pt_lon,shape_pt_sequence\ns1,37.7,-122.4,1\n"

	feed, err := ParseBytes(buildZip(t, files))
	require.NoError(t, err)
	assert.Len(t, feed.Stops, 2)
}
