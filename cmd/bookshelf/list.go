package main

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-bookshelf/internal/catalog"
	"github.com/hazadus/go-bookshelf/internal/data"
	"github.com/hazadus/go-bookshelf/internal/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	var sortBy, format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all books in the catalog",
		Long:  `Display all books in their current order. --sort reorders only the output, the stored order is kept.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.listBooks(cmd.OutOrStdout(), sortBy, format)
		},
	}
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "", "sort output by title, author or year")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, table, yaml or json")

	return cmd
}

func (app *Application) listBooks(w io.Writer, sortBy, format string) error {
	manager := app.Catalog
	if sortBy != "" {
		key, err := catalog.ParseSortKey(sortBy)
		if err != nil {
			return err
		}
		// Сортируем копию, чтобы не менять сохраненный порядок
		manager = catalog.NewManager(catalog.WithBooks(app.Catalog.Books()), catalog.WithLogger(app.Logger))
		if err := manager.SortBy(key); err != nil {
			return err
		}
	}

	switch format {
	case "text":
		if manager.Len() == 0 {
			fmt.Fprintln(w, "📚 Каталог пуст. Добавьте книги с помощью команды 'add'.")
			return nil
		}
		printBooks(w, manager)
	case "table":
		printTable(w, manager)
	case "yaml":
		out, err := yaml.Marshal(&data.Shelf{Books: manager.Books()})
		if err != nil {
			return fmt.Errorf("ошибка сериализации YAML: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "json":
		out, err := json.MarshalIndent(manager.Books(), "", "  ")
		if err != nil {
			return fmt.Errorf("ошибка сериализации JSON: %w", err)
		}
		fmt.Fprintln(w, string(out))
	default:
		return fmt.Errorf("неизвестный формат вывода %q", format)
	}
	return nil
}

func printTable(w io.Writer, manager *catalog.Manager) {
	fmt.Fprintf(w, "📚 Найдено книг: %d\n\n", manager.Len())

	fmt.Fprintf(w, "%-40s %-25s %-6s %-15s\n", "Название", "Автор", "Год", "Жанр")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	for b := range manager.All() {
		fmt.Fprintf(w, "%-40s %-25s %-6d %-15s\n",
			utils.TruncateString(b.Title, 38),
			utils.TruncateString(b.Author, 23),
			b.Year,
			utils.TruncateString(b.Genre, 15))
	}
}
