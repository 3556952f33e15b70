// Package catalog содержит логику управления каталогом книг
package catalog

import (
	"iter"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/hazadus/go-bookshelf/internal/data"
	"github.com/hazadus/go-bookshelf/internal/journal"
)

// Recorder принимает записи об изменениях каталога
type Recorder interface {
	Record(op journal.Operation, book data.Book) error
}

// Option настраивает Manager
type Option func(*Manager)

// WithBooks заполняет каталог книгами без записи в журнал
func WithBooks(books []data.Book) Option {
	return func(m *Manager) {
		m.books = append(m.books, books...)
	}
}

// WithJournal включает журналирование добавлений и удалений
func WithJournal(recorder Recorder) Option {
	return func(m *Manager) {
		m.journal = recorder
	}
}

// WithLogger задает логгер для диагностики
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Manager управляет упорядоченным списком книг
type Manager struct {
	mutex   sync.RWMutex
	books   []data.Book
	journal Recorder
	logger  *slog.Logger
}

// NewManager создает новый экземпляр Manager
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		books:  make([]data.Book, 0),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add добавляет копию книги в конец каталога и возвращает сохраненную копию
func (m *Manager) Add(book data.Book) data.Book {
	if book.ID == "" {
		book.ID = uuid.NewString()
	}

	m.mutex.Lock()
	m.books = append(m.books, book)
	m.mutex.Unlock()

	m.logger.Debug("book added", "id", book.ID, "title", book.Title)
	m.record(journal.Added, book)
	return book
}

// Remove удаляет все книги с точно совпадающим названием и возвращает их количество.
// В журнал попадает только первая удаленная книга
func (m *Manager) Remove(title string) int {
	m.mutex.Lock()
	var first data.Book
	removed := 0
	m.books = slices.DeleteFunc(m.books, func(b data.Book) bool {
		if b.Title != title {
			return false
		}
		if removed == 0 {
			first = b
		}
		removed++
		return true
	})
	m.mutex.Unlock()

	if removed == 0 {
		m.logger.Debug("nothing to remove", "title", title)
		return 0
	}

	m.logger.Debug("books removed", "title", title, "count", removed)
	m.record(journal.Removed, first)
	return removed
}

// Search возвращает первую книгу с точно совпадающим названием
func (m *Manager) Search(title string) (data.Book, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, b := range m.books {
		if b.Title == title {
			return b, true
		}
	}
	return data.Book{}, false
}

// All возвращает последовательность копий книг в текущем порядке.
// Каждый обход начинается со снимка каталога
func (m *Manager) All() iter.Seq[data.Book] {
	return func(yield func(data.Book) bool) {
		for _, b := range m.Books() {
			if !yield(b) {
				return
			}
		}
	}
}

// List возвращает строки вывода каталога в текущем порядке
func (m *Manager) List() iter.Seq[string] {
	return func(yield func(string) bool) {
		for b := range m.All() {
			if !yield(b.String()) {
				return
			}
		}
	}
}

// Books возвращает копию списка книг
func (m *Manager) Books() []data.Book {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return slices.Clone(m.books)
}

// Len возвращает количество книг в каталоге
func (m *Manager) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return len(m.books)
}

// record пишет в журнал, если он включен. Ошибка журнала не прерывает операцию
func (m *Manager) record(op journal.Operation, book data.Book) {
	if m.journal == nil {
		return
	}
	if err := m.journal.Record(op, book); err != nil {
		m.logger.Warn("journal write failed", "operation", string(op), "title", book.Title, "error", err)
	}
}
