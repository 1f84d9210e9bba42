package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mrlokans/literalura/internal/entities"
	"github.com/mrlokans/literalura/internal/services"
)

func writeBook(w io.Writer, book entities.Book) {
	authorName := "(unknown)"
	if book.Author != nil {
		authorName = book.Author.Name
		if span := book.Author.Lifespan(); span != "?" {
			authorName += " (" + span + ")"
		}
	}
	fmt.Fprintln(w, "---------- BOOK ----------")
	fmt.Fprintf(w, "Title: %s\n", book.Title)
	fmt.Fprintf(w, "Author: %s\n", authorName)
	fmt.Fprintf(w, "Language: %s\n", book.Language)
	fmt.Fprintf(w, "Downloads: %d\n", book.DownloadCount)
	fmt.Fprintln(w, "--------------------------")
}

func writeAuthor(w io.Writer, author entities.Author) {
	titles := make([]string, 0, len(author.Books))
	for _, b := range author.Books {
		titles = append(titles, b.Title)
	}
	fmt.Fprintf(w, "Author: %s\n", author.Name)
	fmt.Fprintf(w, "Born: %s\n", yearOrDash(author.BirthYear))
	fmt.Fprintf(w, "Died: %s\n", yearOrDash(author.DeathYear))
	fmt.Fprintf(w, "Books: [%s]\n\n", strings.Join(titles, ", "))
}

func writeStats(w io.Writer, stats services.DownloadStats) {
	fmt.Fprintln(w, "\n----- Database statistics -----")
	fmt.Fprintf(w, "Average downloads: %.2f\n", stats.Average)
	fmt.Fprintf(w, "Max downloads: %d\n", stats.Max)
	fmt.Fprintf(w, "Min downloads: %d\n", stats.Min)
	fmt.Fprintf(w, "Registered books: %d\n", stats.Count)
}

func yearOrDash(year *int) string {
	if year == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *year)
}
