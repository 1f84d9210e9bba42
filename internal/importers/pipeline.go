package importers

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mrlokans/literalura/internal/entities"
	"github.com/mrlokans/literalura/internal/gutendex"
	"github.com/mrlokans/literalura/internal/services"
)

// CatalogAPI returns the raw body of a title search.
type CatalogAPI interface {
	Search(ctx context.Context, term string) (string, error)
}

// Pipeline imports the first matching catalog entry for a search term.
type Pipeline struct {
	api   CatalogAPI
	store services.CatalogStore
}

// NewPipeline creates a new import pipeline.
func NewPipeline(api CatalogAPI, store services.CatalogStore) *Pipeline {
	return &Pipeline{api: api, store: store}
}

// ImportByTitle searches the catalog for searchTerm and imports the first
// result whose title contains it. The author and book writes share one
// transaction.
func (p *Pipeline) ImportByTitle(ctx context.Context, searchTerm string) (services.ImportResult, error) {
	term, err := ValidateSearchTerm(searchTerm)
	if err != nil {
		return services.ImportResult{}, err
	}

	summaries, err := p.search(ctx, term)
	if err != nil {
		return services.ImportResult{}, err
	}

	candidate, ok := SelectCandidate(summaries, term)
	if !ok {
		log.Info().Str("term", term).Int("results", len(summaries)).Msg("no matching title")
		return services.ImportResult{Outcome: services.OutcomeNotFound}, nil
	}

	var result services.ImportResult
	err = p.store.WithinTransaction(func(tx services.CatalogWriter) error {
		var txErr error
		result, txErr = persistCandidate(tx, candidate)
		return txErr
	})
	if err != nil {
		return services.ImportResult{}, fmt.Errorf("%w: %w", ErrStore, err)
	}

	log.Info().
		Str("term", term).
		Str("title", candidate.Title).
		Stringer("outcome", result.Outcome).
		Msg("import finished")

	return result, nil
}

func (p *Pipeline) search(ctx context.Context, term string) ([]gutendex.BookSummary, error) {
	body, err := p.api.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	data, err := gutendex.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return data.Results, nil
}

// SelectCandidate returns the first summary, in order, that has an author and
// whose title contains term case-insensitively.
func SelectCandidate(summaries []gutendex.BookSummary, term string) (gutendex.BookSummary, bool) {
	needle := strings.ToLower(term)
	for _, s := range summaries {
		if _, ok := s.PrimaryAuthor(); !ok {
			continue
		}
		if strings.Contains(strings.ToLower(s.Title), needle) {
			return s, true
		}
	}
	return gutendex.BookSummary{}, false
}

// persistCandidate runs the dedup check, resolves the author and writes
// author then book through tx.
func persistCandidate(tx services.CatalogWriter, candidate gutendex.BookSummary) (services.ImportResult, error) {
	book := NewBook(candidate)

	existing, err := tx.FindBookByTitle(book.Title)
	if err != nil {
		return services.ImportResult{}, fmt.Errorf("check existing book: %w", err)
	}
	if existing != nil {
		return services.ImportResult{Outcome: services.OutcomeAlreadyExists, Book: existing}, nil
	}

	summary, _ := candidate.PrimaryAuthor()
	author, err := tx.FindAuthorByName(summary.Name)
	if err != nil {
		return services.ImportResult{}, fmt.Errorf("find author: %w", err)
	}
	if author == nil {
		author = NewAuthor(summary)
	}

	author.Books = append(author.Books, *book)
	if err := tx.SaveAuthor(author); err != nil {
		return services.ImportResult{}, fmt.Errorf("save author: %w", err)
	}

	book.AuthorID = author.ID
	if err := tx.SaveBook(book); err != nil {
		return services.ImportResult{}, fmt.Errorf("save book: %w", err)
	}

	// Keep the in-memory collection in step with the stored row
	author.Books[len(author.Books)-1] = *book
	book.Author = &entities.Author{
		ID:        author.ID,
		Name:      author.Name,
		BirthYear: author.BirthYear,
		DeathYear: author.DeathYear,
		CreatedAt: author.CreatedAt,
		UpdatedAt: author.UpdatedAt,
	}

	return services.ImportResult{Outcome: services.OutcomeImported, Book: book}, nil
}

// NewBook maps a summary to an unsaved Book.
func NewBook(s gutendex.BookSummary) *entities.Book {
	return &entities.Book{
		Title:         s.Title,
		Language:      s.Language(),
		DownloadCount: s.DownloadCount,
	}
}

// NewAuthor maps an author summary to an unsaved Author.
func NewAuthor(s gutendex.AuthorSummary) *entities.Author {
	return &entities.Author{
		Name:      s.Name,
		BirthYear: s.BirthYear,
		DeathYear: s.DeathYear,
	}
}
