package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-bookshelf/internal/catalog"
	"github.com/hazadus/go-bookshelf/internal/data"
)

const defaultDemoAuthor = "Harper Lee"

// createDemoCommand создает команду demo с привязкой к экземпляру приложения
func (app *Application) createDemoCommand() *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the demonstration sequence on a fresh catalog",
		Long:  `Add three books to an empty in-memory catalog, list and sort them, remove one and look up an author.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.runDemo(cmd.OutOrStdout(), author)
		},
	}
	cmd.Flags().StringVar(&author, "author", defaultDemoAuthor, "author to look up at the end")

	return cmd
}

// runDemo выполняет демонстрацию на новом каталоге. Файл данных не меняется
func (app *Application) runDemo(w io.Writer, author string) error {
	manager := catalog.NewManager(app.catalogOptions(nil)...)

	manager.Add(data.NewBook("1984", "George Orwell", 1949, "Dystopian"))
	manager.Add(data.NewBook("The Great Gatsby", "F. Scott Fitzgerald", 1925, "Classic"))
	manager.Add(data.NewBook("To Kill a Mockingbird", "Harper Lee", 1960, "Fiction"))

	fmt.Fprintln(w, "Books in the library:")
	printBooks(w, manager)

	fmt.Fprintln(w, "\nSorted by author:")
	manager.SortByAuthor()
	printBooks(w, manager)

	fmt.Fprintln(w, "\nSorted by title:")
	manager.SortByTitle()
	printBooks(w, manager)

	fmt.Fprintln(w, "\nSorted by year:")
	manager.SortByYear()
	printBooks(w, manager)

	fmt.Fprintln(w, "\nRemoving 'The Great Gatsby' from the library.")
	manager.Remove("The Great Gatsby")

	fmt.Fprintln(w, "\nBooks in the library after removal:")
	printBooks(w, manager)

	fmt.Fprintf(w, "\nSearching for books by %s:\n", author)
	catalog.ReportByAuthor(w, manager.All(), author)

	return nil
}

func printBooks(w io.Writer, manager *catalog.Manager) {
	for line := range manager.List() {
		fmt.Fprintln(w, line)
	}
}
