// Package booklist содержит модель экрана списка книг для TUI
package booklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-bookshelf/internal/catalog"
	"github.com/hazadus/go-bookshelf/internal/data"
	"github.com/hazadus/go-bookshelf/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// AddRequestedMsg отправляется при запросе на добавление книги
type AddRequestedMsg struct{}

// BooksChangedMsg отправляется после изменения каталога из списка
type BooksChangedMsg struct{}

// bookItem реализует интерфейс list.Item для книги
type bookItem struct {
	book data.Book
}

func (i bookItem) FilterValue() string {
	return fmt.Sprintf("%s %s %s", i.book.Title, i.book.Author, i.book.Genre)
}

// bookItemDelegate реализует отображение элементов списка
type bookItemDelegate struct{}

func (d bookItemDelegate) Height() int                             { return 1 }
func (d bookItemDelegate) Spacing() int                            { return 0 }
func (d bookItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d bookItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(bookItem)
	if !ok {
		return
	}

	// Таблица: Название | Автор | Год | Жанр
	str := fmt.Sprintf("%-40s %-25s %6d  %s",
		utils.TruncateString(i.book.Title, 40),
		utils.TruncateString(i.book.Author, 25),
		i.book.Year,
		utils.TruncateString(i.book.Genre, 15))

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана списка книг
type Model struct {
	list     list.Model
	manager  *catalog.Manager
	sortedBy catalog.SortKey
	quitting bool
}

// NewModel создает новую модель списка книг
func NewModel(manager *catalog.Manager) *Model {
	l := list.New(toItems(manager), bookItemDelegate{}, 0, 0)
	l.Title = "Книги"
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{
		list:    l,
		manager: manager,
	}
}

func toItems(manager *catalog.Manager) []list.Item {
	items := make([]list.Item, 0, manager.Len())
	for b := range manager.All() {
		items = append(items, bookItem{book: b})
	}
	return items
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData обновляет элементы списка из каталога
func (m *Model) RefreshData() {
	m.list.SetItems(toItems(m.manager))
}

// SortedBy возвращает поле последней сортировки
func (m *Model) SortedBy() catalog.SortKey {
	return m.sortedBy
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4) // Оставляем место для справки
		return m, nil

	case tea.KeyMsg:
		// Во время ввода фильтра клавиши принадлежат списку
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "t", "a", "y":
			key := map[string]catalog.SortKey{"t": catalog.ByTitle, "a": catalog.ByAuthor, "y": catalog.ByYear}[msg.String()]
			if err := m.manager.SortBy(key); err != nil {
				return m, nil
			}
			m.sortedBy = key
			m.RefreshData()
			return m, func() tea.Msg { return BooksChangedMsg{} }

		case "n":
			return m, func() tea.Msg { return AddRequestedMsg{} }

		case "d":
			item, ok := m.list.SelectedItem().(bookItem)
			if !ok {
				return m, nil
			}
			m.manager.Remove(item.book.Title)
			m.RefreshData()
			return m, func() tea.Msg { return BooksChangedMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	status := ""
	if m.sortedBy != "" {
		status = fmt.Sprintf(" • сортировка: %s", m.sortedBy)
	}
	extraHelp := helpStyle.Render("t/a/y: сортировка • n: добавить • d: удалить • q: выход" + status)
	return m.list.View() + "\n" + extraHelp
}
