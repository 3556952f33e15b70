package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hazadus/go-bookshelf/internal/catalog"
	"github.com/hazadus/go-bookshelf/internal/config"
	"github.com/hazadus/go-bookshelf/internal/data"
	"github.com/hazadus/go-bookshelf/internal/journal"
)

// Application объединяет конфигурацию и каталог для команд
type Application struct {
	Config  *config.Config
	Catalog *catalog.Manager
	Logger  *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &Application{}
	err := app.createRootCommand(ctx).Execute()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// initialize загружает конфигурацию и каталог
func (app *Application) initialize(configPath string, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	app.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	app.Config = cfg

	shelf, err := data.LoadShelf(cfg.DataFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки каталога: %w", err)
	}
	app.Catalog = catalog.NewManager(app.catalogOptions(shelf.Books)...)

	app.Logger.Debug("catalog loaded", "data_file", cfg.DataFile, "books", app.Catalog.Len(), "journal", cfg.LogEnabled)
	return nil
}

// catalogOptions собирает настройки каталога из конфигурации
func (app *Application) catalogOptions(books []data.Book) []catalog.Option {
	opts := []catalog.Option{
		catalog.WithBooks(books),
		catalog.WithLogger(app.Logger),
	}
	if app.Config.LogEnabled {
		opts = append(opts, catalog.WithJournal(journal.New(app.Config.LogFile)))
	}
	return opts
}

// SaveData сохраняет каталог в файл данных
func (app *Application) SaveData() error {
	shelf := &data.Shelf{Books: app.Catalog.Books()}
	return shelf.Save(app.Config.DataFile)
}
