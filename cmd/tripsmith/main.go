package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// CLI represents the main CLI structure
type CLI struct {
	Config   string `short:"c" help:"Path to config file" type:"path"`
	LogLevel string `default:"info" help:"Log level"`

	Plan    PlanCmd    `cmd:"" help:"Plan a trip and print the itinerary"`
	Serve   ServeCmd   `cmd:"" help:"Run the HTTP API server"`
	Plans   PlansCmd   `cmd:"" help:"List recent planning runs"`
	Migrate MigrateCmd `cmd:"" help:"Run database migrations"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tripsmith"),
		kong.Description("AI travel planner backed by live flight, hotel, and weather data"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	err := ctx.Run(&cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
