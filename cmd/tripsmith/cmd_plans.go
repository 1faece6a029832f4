package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/alecthomas/kong"

	"github.com/tripsmith/tripsmith/src/storage"
)

// PlansCmd lists recent planning runs.
type PlansCmd struct {
	Limit int `default:"20" help:"Maximum number of runs to show"`
}

func (p *PlansCmd) Run(kctx *kong.Context, cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	// Only storage is needed here; skip the full app wiring.
	store, err := storage.Open(cfg.Storage.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := storage.ListPlanRuns(context.Background(), store.DB(), p.Limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no planning runs yet")
		return nil
	}

	w := tabwriter.NewWriter(kctx.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tROUTE\tSTART\tDAYS\tSTATUS\tTOOLS\tCREATED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s → %s\t%s\t%d\t%s\t%d\t%s\n",
			run.ID[:8],
			run.FromCity, run.Destination,
			run.StartDate,
			run.Days,
			run.Status,
			run.ToolCallsMade,
			run.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return w.Flush()
}
