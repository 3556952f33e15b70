// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-bookshelf/internal/catalog"
	"github.com/hazadus/go-bookshelf/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	manager  *catalog.Manager
	saveFunc func() error // Функция для сохранения данных
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(manager *catalog.Manager, saveFunc func() error) *App {
	return &App{
		manager:  manager,
		saveFunc: saveFunc,
	}
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	model := app.NewMainModel(tuiApp.manager, tuiApp.saveFunc)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
