package data

import "testing"

func TestBookString(t *testing.T) {
	book := NewBook("1984", "George Orwell", 1949, "Dystopian")

	expected := "Title: 1984, Author: George Orwell, Year: 1949, Genre: Dystopian"
	if book.String() != expected {
		t.Errorf("Ожидалась строка: %s, получено: %s", expected, book.String())
	}
}

func TestChangeYear(t *testing.T) {
	book := NewBook("1984", "George Orwell", 1949, "Dystopian")
	book.ChangeYear(1950)

	if book.Year != 1950 {
		t.Errorf("Ожидался Year: 1950, получено: %d", book.Year)
	}
	if book.Title != "1984" || book.Author != "George Orwell" || book.Genre != "Dystopian" {
		t.Errorf("ChangeYear не должен менять другие поля: %+v", book)
	}
}

func TestBookAcceptsAnyValues(t *testing.T) {
	// Валидации нет: пустое название и отрицательный год допустимы
	book := NewBook("", "", -300, "")

	expected := "Title: , Author: , Year: -300, Genre: "
	if book.String() != expected {
		t.Errorf("Ожидалась строка: %q, получено: %q", expected, book.String())
	}
}
