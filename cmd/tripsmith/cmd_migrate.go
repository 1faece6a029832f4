package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/tripsmith/tripsmith/src/storage"
)

// MigrateCmd applies pending database migrations. Open runs them
// automatically; this command exists so deploys can migrate up front.
type MigrateCmd struct{}

func (m *MigrateCmd) Run(kctx *kong.Context, cli *CLI) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Printf("database ready at %s\n", cfg.Storage.DatabasePath)
	return nil
}
