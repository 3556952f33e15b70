package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-bookshelf/internal/config"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:   "bookshelf",
		Short: "A small command line catalog of books",
		Long:  `A command line tool to add, remove, search, list and sort book records. Without a subcommand runs the demo.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.initialize(configPath, verbose)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runDemo(cmd.OutOrStdout(), defaultDemoAuthor)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createDemoCommand())
	rootCmd.AddCommand(app.createAddCommand())
	rootCmd.AddCommand(app.createRemoveCommand())
	rootCmd.AddCommand(app.createSearchCommand())
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createSortCommand())
	rootCmd.AddCommand(app.createAuthorCommand())
	rootCmd.AddCommand(app.createBackupCommand(ctx))
	rootCmd.AddCommand(app.createTUICommand())

	return rootCmd
}
