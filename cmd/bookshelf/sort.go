package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-bookshelf/internal/catalog"
)

// createSortCommand создает команду sort с привязкой к экземпляру приложения
func (app *Application) createSortCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "sort [title|author|year]",
		Short:     "Reorder the stored catalog",
		Long:      `Sort the catalog in ascending order by the given field and save the new order.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(catalog.ByTitle), string(catalog.ByAuthor), string(catalog.ByYear)},
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := catalog.ParseSortKey(args[0])
			if err != nil {
				return err
			}
			if err := app.Catalog.SortBy(key); err != nil {
				return err
			}
			if err := app.SaveData(); err != nil {
				return fmt.Errorf("ошибка сохранения данных: %w", err)
			}
			printBooks(cmd.OutOrStdout(), app.Catalog)
			return nil
		},
	}
}
