package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-bookshelf/internal/data"
)

// createAddCommand создает команду add с привязкой к экземпляру приложения
func (app *Application) createAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add [title] [author] [year] [genre]",
		Short: "Add a book to the catalog",
		Long:  `Append a book record to the end of the catalog and save it.`,
		Args:  cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("неверный год '%s': год должен быть числом", args[2])
			}
			return app.addBook(data.NewBook(args[0], args[1], year, args[3]))
		},
	}
}

func (app *Application) addBook(book data.Book) error {
	added := app.Catalog.Add(book)

	if err := app.SaveData(); err != nil {
		return fmt.Errorf("ошибка сохранения данных: %w", err)
	}

	fmt.Printf("✅ Книга добавлена: %s\n", added)
	return nil
}
