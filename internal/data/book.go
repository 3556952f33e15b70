// Package data содержит модель книги и хранение каталога в файле
package data

import "fmt"

// Book описывает одну запись каталога
type Book struct {
	ID     string `yaml:"id" json:"id"`
	Title  string `yaml:"title" json:"title"`
	Author string `yaml:"author" json:"author"`
	Year   int    `yaml:"year" json:"year"` // Год публикации
	Genre  string `yaml:"genre" json:"genre"`
}

// NewBook создает книгу без ID; ID назначается при добавлении в каталог
func NewBook(title, author string, year int, genre string) Book {
	return Book{
		Title:  title,
		Author: author,
		Year:   year,
		Genre:  genre,
	}
}

// ChangeYear меняет год публикации
func (b *Book) ChangeYear(year int) {
	b.Year = year
}

// String возвращает строку в формате вывода каталога
func (b Book) String() string {
	return fmt.Sprintf("Title: %s, Author: %s, Year: %d, Genre: %s", b.Title, b.Author, b.Year, b.Genre)
}
