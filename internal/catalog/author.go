package catalog

import (
	"fmt"
	"io"
	"iter"

	"github.com/hazadus/go-bookshelf/internal/data"
)

// FindByAuthor возвращает все книги автора в порядке обхода
func FindByAuthor(books iter.Seq[data.Book], author string) []data.Book {
	var found []data.Book
	for b := range books {
		if b.Author == author {
			found = append(found, b)
		}
	}
	return found
}

// ReportByAuthor печатает найденные книги автора и возвращает их количество
func ReportByAuthor(w io.Writer, books iter.Seq[data.Book], author string) int {
	found := FindByAuthor(books, author)
	for _, b := range found {
		fmt.Fprintf(w, "Found: %s by %s\n", b.Title, b.Author)
	}
	if len(found) == 0 {
		fmt.Fprintf(w, "No books found by %s\n", author)
	}
	return len(found)
}
