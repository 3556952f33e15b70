package main

import (
	"github.com/spf13/cobra"

	"github.com/hazadus/go-bookshelf/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for browsing and sorting the catalog.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.NewApp(app.Catalog, app.SaveData).Run()
		},
	}
}
