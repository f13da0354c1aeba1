package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/theoremus-urban-solutions/caltrain"
	"github.com/theoremus-urban-solutions/caltrain/config"

	_ "time/tzdata"
)

func main() {
	caltrain.InitLogging()

	app := &cli.App{
		Name:        "caltrain",
		Description: "Query an offline Caltrain GTFS schedule: next trains, fares and stops",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "", Usage: "config file path"},
			&cli.StringFlag{Name: "feed", Value: "", Usage: "GTFS zip path (overrides config)"},
		},
		Commands: []*cli.Command{
			{
				Name:  "stations",
				Usage: "List every station with its fare zone",
				Action: func(ctx *cli.Context) error {
					ct, err := loadSchedule(ctx)
					if err != nil {
						return err
					}
					for _, st := range ct.Stations() {
						fmt.Printf("%-25s zone %s\n", st.Name, st.Zone)
					}
					return nil
				},
			},
			{
				Name:      "stops",
				Usage:     "Show where a train stops and when",
				ArgsUsage: "<train number>",
				Action: func(ctx *cli.Context) error {
					ct, err := loadSchedule(ctx)
					if err != nil {
						return err
					}
					train, ok := ct.TrainByName(ctx.Args().First())
					if !ok {
						return fmt.Errorf("no such train %q", ctx.Args().First())
					}
					fmt.Printf("%s %s (%s)\n", train.Kind, train.Name, train.Direction)
					for _, stop := range ct.StopsFor(train) {
						fmt.Printf("  %-25s arr %s  dep %s\n",
							stop.Station.Name, stop.Arrival, stop.Departure)
					}
					return nil
				},
			},
			{
				Name:      "next",
				Usage:     "List upcoming trains between two stations",
				ArgsUsage: "<from> <to>",
				Flags: []cli.Flag{
					&cli.TimestampFlag{
						Name:   "after",
						Usage:  "find trips after this time (default: now)",
						Layout: "2006-01-02 15:04",
					},
					&cli.IntFlag{Name: "limit", Value: 5, Usage: "maximum trips to show, 0 for all"},
				},
				Action: func(ctx *cli.Context) error {
					if ctx.NArg() != 2 {
						return fmt.Errorf("usage: next <from> <to>")
					}
					ct, err := loadSchedule(ctx)
					if err != nil {
						return err
					}
					var after time.Time
					if t := ctx.Timestamp("after"); t != nil {
						after = *t
					}
					trips, err := ct.NextTrips(ctx.Args().Get(0), ctx.Args().Get(1), after, ctx.Int("limit"))
					if err != nil {
						return err
					}
					if len(trips) == 0 {
						fmt.Println("No more trains today")
						return nil
					}
					for _, trip := range trips {
						fmt.Println(trip)
					}
					return nil
				},
			},
			{
				Name:      "fare",
				Usage:     "Show the fare between two stations",
				ArgsUsage: "<from> <to>",
				Action: func(ctx *cli.Context) error {
					if ctx.NArg() != 2 {
						return fmt.Errorf("usage: fare <from> <to>")
					}
					ct, err := loadSchedule(ctx)
					if err != nil {
						return err
					}
					fare, err := ct.FareBetween(ctx.Args().Get(0), ctx.Args().Get(1))
					if err != nil {
						return err
					}
					fmt.Println(fare)
					return nil
				},
			},
			{
				Name:  "version",
				Usage: "Show the loaded feed version",
				Action: func(ctx *cli.Context) error {
					ct, err := loadSchedule(ctx)
					if err != nil {
						return err
					}
					fmt.Println(ct.Version())
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

// loadSchedule builds the queryable model from the --feed flag or the
// config file.
func loadSchedule(ctx *cli.Context) (*caltrain.Caltrain, error) {
	path := ctx.String("feed")
	var opts []caltrain.Option

	var cfgPaths []string
	if p := ctx.String("config"); p != "" {
		cfgPaths = []string{p}
	}
	cfg, err := config.Load(cfgPaths...)
	if err == nil {
		if path == "" {
			path = cfg.Feed.Path
		}
		if loc, err := time.LoadLocation(cfg.Feed.Timezone); err == nil {
			opts = append(opts, caltrain.WithLocation(loc))
		}
		if len(cfg.Stations.Aliases) > 0 {
			opts = append(opts, caltrain.WithAliases(cfg.Stations.Aliases))
		}
		if len(cfg.Stations.Renames) > 0 {
			opts = append(opts, caltrain.WithRenames(cfg.Stations.Renames))
		}
	} else if ctx.String("config") != "" {
		return nil, err
	}

	if path == "" {
		return nil, fmt.Errorf("no feed given: pass --feed or set feed.path in config.yml")
	}
	return caltrain.Load(path, opts...)
}
