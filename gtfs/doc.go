/*
Package gtfs parses the static GTFS tables of a transit feed into typed
records.

This package is data-source agnostic - it accepts a zip file path, raw zip
bytes or an io.ReaderAt and decodes the tabular files it finds inside. It
does NOT handle HTTP downloads, caching or feed versioning policy.

# Basic Usage

Load from a local zip:

	feed, err := gtfs.OpenZip("caltrain_gtfs_latest.zip")
	if err != nil {
	    log.Fatal().Err(err).Msg("feed rejected")
	}

	for _, stop := range feed.Stops {
	    fmt.Println(stop.ID, stop.Name, stop.ZoneID)
	}

# Validation

Parsing already fails on undecodable rows. Validate performs the
cross-reference checks on top of that: every stop_time must reference a known
trip and stop, every trip a known route and service, every fare rule a known
fare id. Both kinds of failure are reported as *MalformedFeedError naming the
offending file and row, so a bad feed is rejected at load time rather than
surfacing as a missing lookup at query time.

No query logic lives here; the caltrain package builds its indices from the
raw records this package produces.
*/
package gtfs
