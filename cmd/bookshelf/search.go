package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-bookshelf/internal/catalog"
)

// createSearchCommand создает команду search с привязкой к экземпляру приложения
func (app *Application) createSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search [title]",
		Short: "Find the first book with the given title",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			if book, ok := app.Catalog.Search(args[0]); ok {
				fmt.Println(book)
				return
			}
			fmt.Printf("Book \"%s\" not found\n", args[0])
		},
	}
}

// createAuthorCommand создает команду author с привязкой к экземпляру приложения
func (app *Application) createAuthorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "author [name]",
		Short: "List all books by an author",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			catalog.ReportByAuthor(cmd.OutOrStdout(), app.Catalog.All(), args[0])
		},
	}
}
