package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/hazadus/go-bookshelf/internal/data"
)

// SortKey поле, по которому сортируется каталог
type SortKey string

const (
	ByTitle  SortKey = "title"
	ByAuthor SortKey = "author"
	ByYear   SortKey = "year"
)

// ParseSortKey разбирает название поля сортировки
func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(s))); key {
	case ByTitle, ByAuthor, ByYear:
		return key, nil
	default:
		return "", fmt.Errorf("неизвестное поле сортировки %q: ожидается title, author или year", s)
	}
}

// SortByTitle сортирует каталог по названию
func (m *Manager) SortByTitle() {
	m.sort(func(a, b data.Book) int { return strings.Compare(a.Title, b.Title) })
}

// SortByAuthor сортирует каталог по автору
func (m *Manager) SortByAuthor() {
	m.sort(func(a, b data.Book) int { return strings.Compare(a.Author, b.Author) })
}

// SortByYear сортирует каталог по году публикации
func (m *Manager) SortByYear() {
	m.sort(func(a, b data.Book) int { return cmp.Compare(a.Year, b.Year) })
}

// SortBy сортирует каталог по указанному полю
func (m *Manager) SortBy(key SortKey) error {
	switch key {
	case ByTitle:
		m.SortByTitle()
	case ByAuthor:
		m.SortByAuthor()
	case ByYear:
		m.SortByYear()
	default:
		return fmt.Errorf("неизвестное поле сортировки %q", key)
	}
	return nil
}

// sort переупорядочивает книги на месте. Равные элементы сохраняют порядок
func (m *Manager) sort(compare func(a, b data.Book) int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	slices.SortStableFunc(m.books, compare)
}
