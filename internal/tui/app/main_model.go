// Package app содержит основную логику TUI приложения
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-bookshelf/internal/catalog"
	"github.com/hazadus/go-bookshelf/internal/tui/booklist"
	"github.com/hazadus/go-bookshelf/internal/tui/form"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

const (
	// BooklistScreen - экран списка книг
	BooklistScreen ScreenType = iota
	// FormScreen - экран добавления книги
	FormScreen
)

// MainModel представляет главную модель TUI
type MainModel struct {
	manager       *catalog.Manager
	currentScreen ScreenType
	booklistModel *booklist.Model
	formModel     *form.Model
	saveFunc      func() error // Функция для сохранения данных
	saveErr       error
}

// NewMainModel создает новую главную модель
func NewMainModel(manager *catalog.Manager, saveFunc func() error) *MainModel {
	return &MainModel{
		manager:       manager,
		currentScreen: BooklistScreen,
		booklistModel: booklist.NewModel(manager),
		saveFunc:      saveFunc,
	}
}

// CurrentScreen возвращает активный экран
func (m *MainModel) CurrentScreen() ScreenType {
	return m.currentScreen
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return m.booklistModel.Init()
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case booklist.AddRequestedMsg:
		m.currentScreen = FormScreen
		m.formModel = form.NewModel(m.manager)
		return m, m.formModel.Init()

	case booklist.BooksChangedMsg:
		m.save()
		return m, nil

	case form.BookAddedMsg:
		m.save()
		m.currentScreen = BooklistScreen
		m.formModel = nil
		m.booklistModel.RefreshData()
		return m, nil

	case form.GoBackMsg:
		m.currentScreen = BooklistScreen
		m.formModel = nil
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentScreen {
	case BooklistScreen:
		m.booklistModel, cmd = m.booklistModel.Update(msg)
	case FormScreen:
		if m.formModel != nil {
			m.formModel, cmd = m.formModel.Update(msg)
		}
	}
	return m, cmd
}

func (m *MainModel) save() {
	if m.saveFunc == nil {
		return
	}
	m.saveErr = m.saveFunc()
}

// View отображает интерфейс
func (m *MainModel) View() string {
	var view string
	switch m.currentScreen {
	case BooklistScreen:
		view = m.booklistModel.View()
	case FormScreen:
		if m.formModel == nil {
			return "Ошибка: модель формы не инициализирована"
		}
		view = m.formModel.View()
	default:
		return "Неизвестный экран"
	}

	if m.saveErr != nil {
		view += fmt.Sprintf("\nОшибка сохранения: %v", m.saveErr)
	}
	return view
}
