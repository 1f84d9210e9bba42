package services

import "github.com/mrlokans/literalura/internal/entities"

// CatalogReader provides the read-only reporting queries.
// Use this interface when you only need to list or aggregate.
type CatalogReader interface {
	AllBooks() ([]entities.Book, error)
	AllAuthors() ([]entities.Author, error)
	AuthorsAliveInYear(year int) ([]entities.Author, error)
	BooksByLanguage(code string) ([]entities.Book, error)
	Top10ByDownloads() ([]entities.Book, error)
	DownloadStats() (DownloadStats, error)
}

// CatalogWriter holds the lookups and writes the import pipeline needs.
// Find methods return nil with a nil error when nothing matches.
type CatalogWriter interface {
	FindBookByTitle(title string) (*entities.Book, error)
	FindAuthorByName(name string) (*entities.Author, error)
	SaveAuthor(author *entities.Author) error
	SaveBook(book *entities.Book) error
}

// CatalogStore is the full persistence boundary. WithinTransaction runs fn
// against a writer bound to a single transaction; a non-nil error from fn
// rolls everything back.
type CatalogStore interface {
	CatalogReader
	CatalogWriter
	WithinTransaction(fn func(tx CatalogWriter) error) error
}

// DownloadStats summarises download counts over books with at least one
// download. Total counts every stored book.
type DownloadStats struct {
	Total   int64   `json:"total"`
	Count   int64   `json:"count"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	Average float64 `json:"average"`
}

// ImportOutcome is the non-error result of an import. The zero value is
// OutcomeUnknown, which is what every failed import returns.
type ImportOutcome int

const (
	OutcomeUnknown ImportOutcome = iota
	OutcomeImported
	OutcomeNotFound
	OutcomeAlreadyExists
)

func (o ImportOutcome) String() string {
	switch o {
	case OutcomeImported:
		return "imported"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeAlreadyExists:
		return "already_exists"
	default:
		return "unknown"
	}
}

// ImportResult contains the outcome of an import operation.
// Book is set for OutcomeImported (the new book) and OutcomeAlreadyExists
// (the stored one).
type ImportResult struct {
	Outcome ImportOutcome
	Book    *entities.Book
}
