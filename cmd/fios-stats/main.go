package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/fios-stats/internal/config"
	"github.com/maksimkurb/fios-stats/internal/domain"
	"github.com/maksimkurb/fios-stats/internal/gateway"
	"github.com/maksimkurb/fios-stats/internal/log"
	"github.com/maksimkurb/fios-stats/internal/stats"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	opts := &config.Options{}

	// Define flags
	flag.StringVar(&opts.Password, "password", "", "Admin password of the gateway device")
	flag.StringVar(&opts.Host, "host", gateway.DefaultHost, "Hostname of the gateway device")
	flag.StringVar(&opts.InfluxDB, "influxdb", "", "InfluxDB write endpoint (empty disables forwarding)")
	flag.BoolVar(&opts.Verbose, "verbose", false, "Enable debug logging")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Fios Quantum Gateway Statistics Collector\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if env, err := config.ReadEnv(); err != nil {
		log.Warnf("Failed to read environment: %v", err)
	} else {
		log.SetLevel(env.LogLevel)
	}

	if opts.Verbose {
		log.SetVerbose(true)
	}

	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid options: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	deps := domain.NewAppDependencies(domain.AppConfig{
		GatewayHost: opts.Host,
		InfluxDBURI: opts.InfluxDB,
	})

	collector := stats.NewCollector(deps.GatewayClient(), deps.MetricWriter(), os.Stdout)
	if err := collector.Collect(opts.Password); err != nil {
		log.Fatalf("Failed to collect statistics: %v", err)
	}
}
