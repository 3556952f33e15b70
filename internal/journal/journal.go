// Package journal ведет журнал изменений каталога в текстовом файле
package journal

import (
	"fmt"
	"os"
	"sync"

	"github.com/hazadus/go-bookshelf/internal/data"
)

// DefaultPath путь журнала по умолчанию, относительно рабочей директории
const DefaultPath = "library_log.txt"

// Operation тип изменения каталога
type Operation string

const (
	// Added книга добавлена
	Added Operation = "Added"
	// Removed книга удалена
	Removed Operation = "Removed"
)

// Journal дописывает строки в файл журнала.
// Файл открывается и закрывается на каждую запись
type Journal struct {
	path  string
	mutex sync.Mutex
}

// New создает журнал для указанного файла
func New(path string) *Journal {
	return &Journal{path: path}
}

// Path возвращает путь к файлу журнала
func (j *Journal) Path() string {
	return j.path
}

// Record дописывает одну строку "<Operation>: <title> by <author>"
func (j *Journal) Record(op Operation, book data.Book) error {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	file, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("ошибка открытия журнала: %w", err)
	}
	defer file.Close()

	if _, err := fmt.Fprintln(file, FormatLine(op, book)); err != nil {
		return fmt.Errorf("ошибка записи в журнал: %w", err)
	}
	return nil
}

// FormatLine формирует строку журнала без перевода строки
func FormatLine(op Operation, book data.Book) string {
	return fmt.Sprintf("%s: %s by %s", op, book.Title, book.Author)
}
