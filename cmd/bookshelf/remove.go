package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createRemoveCommand создает команду remove с привязкой к экземпляру приложения
func (app *Application) createRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [title]",
		Short: "Remove all books with the given title",
		Long:  `Remove every book whose title exactly matches the argument (case-sensitive).`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.removeBooks(args[0])
		},
	}
}

func (app *Application) removeBooks(title string) error {
	removed := app.Catalog.Remove(title)
	if removed == 0 {
		fmt.Printf("❌ Книга \"%s\" не найдена\n", title)
		return nil
	}

	if err := app.SaveData(); err != nil {
		return fmt.Errorf("ошибка сохранения данных: %w", err)
	}

	fmt.Printf("🗑️  Удалено книг \"%s\": %d\n", title, removed)
	return nil
}
