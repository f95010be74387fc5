// Command zweather fetches current conditions for a location from the
// Tomorrow.io API and prints a short color- and emoji-annotated report.
//
// Usage:
//
//	zweather --location "new york" --units metric
//
// Requires TOMORROW_API_KEY in the environment or a .env file. --location
// and --units fall back to the LOCATION and UNITS environment variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ATTron/zweather/internal/adapter/tomorrowio"
	"github.com/ATTron/zweather/internal/config"
	"github.com/ATTron/zweather/internal/domain"
	"github.com/ATTron/zweather/internal/observability"
	"github.com/ATTron/zweather/internal/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the fetch-compose-render pipeline and returns the process
// exit code: 0 on success, 1 on configuration/fetch/compose failures, 2 on
// usage errors.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("zweather", flag.ContinueOnError)
	fs.SetOutput(stderr)
	location := fs.String("location", "", "place to fetch weather for (falls back to $LOCATION)")
	units := fs.String("units", "", `display units, "metric" or "imperial" (falls back to $UNITS, then imperial)`)
	verbose := fs.Bool("verbose", false, "enable debug logging")
	noColor := fs.Bool("no-color", false, "disable ANSI styling")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "zweather: %v\n", err)
		return 1
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	logger := observability.NewLogger(cfg)

	if *location == "" {
		*location = cfg.Location
	}
	if *location == "" {
		fmt.Fprintln(stderr, "zweather: a location is required (use --location or set LOCATION)")
		fs.Usage()
		return 2
	}
	if *units == "" {
		*units = cfg.Units
	}
	selected := domain.ParseUnits(*units)

	if *noColor {
		render.DisableColor()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := tomorrowio.NewClient(cfg.APIKey, cfg.BaseURL, cfg.Timeout, logger)
	obs, err := client.Realtime(ctx, *location)
	if err != nil {
		fmt.Fprintf(stderr, "zweather: %v\n", err)
		return 1
	}

	lines, err := domain.ComposeReport(obs, selected)
	if err != nil {
		fmt.Fprintf(stderr, "zweather: %v\n", err)
		return 1
	}
	logger.Debug("report composed", "location", obs.LocationName, "style", lines[0].Style, "lines", len(lines))

	if err := render.New(stdout).Render(lines); err != nil {
		fmt.Fprintf(stderr, "zweather: %v\n", err)
		return 1
	}
	return 0
}
