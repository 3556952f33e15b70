package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Shelf хранимое представление каталога
type Shelf struct {
	Books []Book `yaml:"books"`
}

// NewShelf создает пустую полку
func NewShelf() *Shelf {
	return &Shelf{
		Books: make([]Book, 0),
	}
}

// LoadShelf загружает полку из файла. Отсутствующий или пустой файл дает пустую полку
func LoadShelf(path string) (*Shelf, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewShelf(), nil
		}
		return nil, fmt.Errorf("ошибка чтения файла данных: %w", err)
	}
	if len(content) == 0 {
		return NewShelf(), nil
	}

	shelf := NewShelf()
	if err := yaml.Unmarshal(content, shelf); err != nil {
		return nil, fmt.Errorf("ошибка разбора данных: %w", err)
	}
	if shelf.Books == nil {
		shelf.Books = make([]Book, 0)
	}
	return shelf, nil
}

// Save сохраняет полку в файл
func (s *Shelf) Save(path string) error {
	content, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("ошибка сериализации данных: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("ошибка записи файла данных: %w", err)
	}
	return nil
}
