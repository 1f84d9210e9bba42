package importers

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/literalura/internal/database"
	"github.com/mrlokans/literalura/internal/database/books"
	"github.com/mrlokans/literalura/internal/entities"
	"github.com/mrlokans/literalura/internal/gutendex"
	"github.com/mrlokans/literalura/internal/services"
)

const draculaBody = `{"count": 1, "results": [
	{"title": "Dracula", "download_count": 500, "languages": ["en"],
	 "authors": [{"name": "Stoker, Bram", "birth_year": 1847, "death_year": 1912}]}
]}`

type mockAPI struct {
	bodies map[string]string
	err    error
	calls  []string
}

func (m *mockAPI) Search(_ context.Context, term string) (string, error) {
	m.calls = append(m.calls, term)
	if m.err != nil {
		return "", m.err
	}
	if body, ok := m.bodies[term]; ok {
		return body, nil
	}
	return `{"count": 0, "results": []}`, nil
}

// countingStore records every store call and delegates to an inner store when set.
type countingStore struct {
	inner services.CatalogStore
	reads int
	saves int
	txs   int
	// failSaveBook makes SaveBook fail after the author was written.
	failSaveBook error
}

func (s *countingStore) FindBookByTitle(title string) (*entities.Book, error) {
	s.reads++
	return s.inner.FindBookByTitle(title)
}

func (s *countingStore) FindAuthorByName(name string) (*entities.Author, error) {
	s.reads++
	return s.inner.FindAuthorByName(name)
}

func (s *countingStore) SaveAuthor(author *entities.Author) error {
	s.saves++
	return s.inner.SaveAuthor(author)
}

func (s *countingStore) SaveBook(book *entities.Book) error {
	s.saves++
	if s.failSaveBook != nil {
		return s.failSaveBook
	}
	return s.inner.SaveBook(book)
}

func (s *countingStore) WithinTransaction(fn func(tx services.CatalogWriter) error) error {
	s.txs++
	return s.inner.WithinTransaction(func(tx services.CatalogWriter) error {
		inner := s.inner
		s.inner = &passthroughStore{CatalogWriter: tx, CatalogStore: inner}
		defer func() { s.inner = inner }()
		return fn(s)
	})
}

func (s *countingStore) AllBooks() ([]entities.Book, error)     { return s.inner.AllBooks() }
func (s *countingStore) AllAuthors() ([]entities.Author, error) { return s.inner.AllAuthors() }
func (s *countingStore) AuthorsAliveInYear(year int) ([]entities.Author, error) {
	return s.inner.AuthorsAliveInYear(year)
}
func (s *countingStore) BooksByLanguage(code string) ([]entities.Book, error) {
	return s.inner.BooksByLanguage(code)
}
func (s *countingStore) Top10ByDownloads() ([]entities.Book, error) { return s.inner.Top10ByDownloads() }
func (s *countingStore) DownloadStats() (services.DownloadStats, error) {
	return s.inner.DownloadStats()
}

// passthroughStore routes writer calls to a transaction-bound writer.
type passthroughStore struct {
	services.CatalogWriter
	services.CatalogStore
}

func (p *passthroughStore) FindBookByTitle(title string) (*entities.Book, error) {
	return p.CatalogWriter.FindBookByTitle(title)
}

func (p *passthroughStore) FindAuthorByName(name string) (*entities.Author, error) {
	return p.CatalogWriter.FindAuthorByName(name)
}

func (p *passthroughStore) SaveAuthor(author *entities.Author) error {
	return p.CatalogWriter.SaveAuthor(author)
}

func (p *passthroughStore) SaveBook(book *entities.Book) error {
	return p.CatalogWriter.SaveBook(book)
}

func setupTestStore(t *testing.T) *books.Repository {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "import.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return books.NewRepository(db.DB)
}

func TestPipeline_ImportByTitle_Dracula(t *testing.T) {
	repo := setupTestStore(t)
	api := &mockAPI{bodies: map[string]string{"Dracula": draculaBody}}
	pipeline := NewPipeline(api, repo)

	result, err := pipeline.ImportByTitle(context.Background(), "Dracula")
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeImported, result.Outcome)
	require.NotNil(t, result.Book)
	assert.NotZero(t, result.Book.ID)
	require.NotNil(t, result.Book.Author)
	assert.Equal(t, "Stoker, Bram", result.Book.Author.Name)

	stored, err := repo.AllBooks()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Dracula", stored[0].Title)
	assert.Equal(t, "en", stored[0].Language)
	assert.Equal(t, 500, stored[0].DownloadCount)

	authors, err := repo.AllAuthors()
	require.NoError(t, err)
	require.Len(t, authors, 1)
	assert.Equal(t, "Stoker, Bram", authors[0].Name)
	require.NotNil(t, authors[0].BirthYear)
	require.NotNil(t, authors[0].DeathYear)
	assert.Equal(t, 1847, *authors[0].BirthYear)
	assert.Equal(t, 1912, *authors[0].DeathYear)
	require.Len(t, authors[0].Books, 1)
	assert.Equal(t, stored[0].ID, authors[0].Books[0].ID)
}

func TestPipeline_ImportByTitle_InvalidInput(t *testing.T) {
	terms := []string{"", "   ", "\t\n", "42", "3.14", " 7 ", "-1e3", "1e999", "NaN", "-Infinity"}

	for _, term := range terms {
		t.Run(term, func(t *testing.T) {
			store := &countingStore{inner: setupTestStore(t)}
			api := &mockAPI{}
			pipeline := NewPipeline(api, store)

			result, err := pipeline.ImportByTitle(context.Background(), term)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, services.OutcomeUnknown, result.Outcome)
			assert.Empty(t, api.calls, "no network call on invalid input")
			assert.Zero(t, store.reads)
			assert.Zero(t, store.saves)
			assert.Zero(t, store.txs)
		})
	}
}

func TestPipeline_ImportByTitle_NotFound(t *testing.T) {
	store := &countingStore{inner: setupTestStore(t)}
	api := &mockAPI{bodies: map[string]string{"Carmilla": draculaBody}}
	pipeline := NewPipeline(api, store)

	result, err := pipeline.ImportByTitle(context.Background(), "Carmilla")
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeNotFound, result.Outcome)
	assert.Nil(t, result.Book)
	assert.Zero(t, store.saves)
	assert.Zero(t, store.txs)
}

func TestPipeline_ImportByTitle_AlreadyExists(t *testing.T) {
	repo := setupTestStore(t)
	api := &mockAPI{bodies: map[string]string{"dracula": draculaBody}}
	pipeline := NewPipeline(api, repo)

	first, err := pipeline.ImportByTitle(context.Background(), "dracula")
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeImported, first.Outcome)

	store := &countingStore{inner: repo}
	second, err := NewPipeline(api, store).ImportByTitle(context.Background(), "dracula")
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeAlreadyExists, second.Outcome)
	require.NotNil(t, second.Book)
	assert.Equal(t, first.Book.ID, second.Book.ID)
	assert.Zero(t, store.saves)

	stored, err := repo.AllBooks()
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestPipeline_ImportByTitle_ReusesAuthor(t *testing.T) {
	repo := setupTestStore(t)
	api := &mockAPI{bodies: map[string]string{
		"Frankenstein": `{"results": [{"title": "Frankenstein; Or, The Modern Prometheus", "download_count": 900,
			"languages": ["en"], "authors": [{"name": "Shelley, Mary Wollstonecraft", "birth_year": 1797, "death_year": 1851}]}]}`,
		"Last Man": `{"results": [{"title": "The Last Man", "download_count": 40,
			"languages": ["en"], "authors": [{"name": "Shelley, Mary Wollstonecraft", "birth_year": 1797, "death_year": 1851},
			{"name": "Co, Author", "birth_year": null, "death_year": null}]}]}`,
	}}
	pipeline := NewPipeline(api, repo)

	_, err := pipeline.ImportByTitle(context.Background(), "Frankenstein")
	require.NoError(t, err)
	result, err := pipeline.ImportByTitle(context.Background(), "Last Man")
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeImported, result.Outcome)

	authors, err := repo.AllAuthors()
	require.NoError(t, err)
	require.Len(t, authors, 1, "co-authors are ignored and the first author is reused")
	assert.Equal(t, "Shelley, Mary Wollstonecraft", authors[0].Name)
	require.Len(t, authors[0].Books, 2)
	assert.Equal(t, "Frankenstein; Or, The Modern Prometheus", authors[0].Books[0].Title)
	assert.Equal(t, "The Last Man", authors[0].Books[1].Title)
}

func TestPipeline_ImportByTitle_FirstPartialMatchWins(t *testing.T) {
	repo := setupTestStore(t)
	api := &mockAPI{bodies: map[string]string{"war": `{"results": [
		{"title": "Anonymous Poems", "download_count": 1, "languages": ["en"], "authors": []},
		{"title": "The Art of War", "download_count": 10, "languages": ["en"], "authors": [{"name": "Sunzi"}]},
		{"title": "War", "download_count": 20, "languages": ["en"], "authors": [{"name": "Someone"}]},
		{"title": "WAR AND PEACE", "download_count": 5000, "languages": ["en"], "authors": [{"name": "Tolstoy, Leo"}]}
	]}`}}

	result, err := NewPipeline(api, repo).ImportByTitle(context.Background(), "war")
	require.NoError(t, err)
	require.Equal(t, services.OutcomeImported, result.Outcome)
	assert.Equal(t, "The Art of War", result.Book.Title)
}

func TestPipeline_ImportByTitle_SkipsAuthorlessMatch(t *testing.T) {
	repo := setupTestStore(t)
	api := &mockAPI{bodies: map[string]string{"Beowulf": `{"results": [
		{"title": "Beowulf", "download_count": 1, "languages": ["en"], "authors": []}
	]}`}}

	result, err := NewPipeline(api, repo).ImportByTitle(context.Background(), "Beowulf")
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeNotFound, result.Outcome)
}

func TestPipeline_ImportByTitle_TrimsTerm(t *testing.T) {
	repo := setupTestStore(t)
	api := &mockAPI{bodies: map[string]string{"Dracula": draculaBody}}

	result, err := NewPipeline(api, repo).ImportByTitle(context.Background(), "  Dracula \n")
	require.NoError(t, err)
	assert.Equal(t, services.OutcomeImported, result.Outcome)
	assert.Equal(t, []string{"Dracula"}, api.calls)
}

func TestPipeline_ImportByTitle_WordsThatLookLikeFloatLiterals(t *testing.T) {
	const nanaBody = `{"count": 1, "results": [
		{"title": "Nana", "download_count": 250, "languages": ["fr"],
		 "authors": [{"name": "Zola, Émile", "birth_year": 1840, "death_year": 1902}]}
	]}`

	tests := []struct {
		term string
		want services.ImportOutcome
	}{
		{"nan", services.OutcomeImported},
		{"Nan", services.OutcomeImported},
		{"inf", services.OutcomeNotFound},
		{"Inf", services.OutcomeNotFound},
		{"infinity", services.OutcomeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			repo := setupTestStore(t)
			api := &mockAPI{bodies: map[string]string{tt.term: nanaBody}}

			result, err := NewPipeline(api, repo).ImportByTitle(context.Background(), tt.term)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.term}, api.calls)
			assert.Equal(t, tt.want, result.Outcome)
		})
	}

	repo := setupTestStore(t)
	api := &mockAPI{bodies: map[string]string{"nan": nanaBody}}
	result, err := NewPipeline(api, repo).ImportByTitle(context.Background(), "nan")
	require.NoError(t, err)
	require.NotNil(t, result.Book)
	assert.Equal(t, "Nana", result.Book.Title)
}

func TestPipeline_ImportByTitle_UpstreamFailure(t *testing.T) {
	t.Run("transport error", func(t *testing.T) {
		store := &countingStore{inner: setupTestStore(t)}
		api := &mockAPI{err: &gutendex.StatusError{StatusCode: 503}}

		_, err := NewPipeline(api, store).ImportByTitle(context.Background(), "Dracula")
		assert.ErrorIs(t, err, ErrUpstream)

		var statusErr *gutendex.StatusError
		assert.True(t, errors.As(err, &statusErr))
		assert.Zero(t, store.reads)
		assert.Zero(t, store.saves)
	})

	t.Run("malformed payload", func(t *testing.T) {
		store := &countingStore{inner: setupTestStore(t)}
		api := &mockAPI{bodies: map[string]string{"Dracula": `{"results": [{"title": "Dracula"`}}

		_, err := NewPipeline(api, store).ImportByTitle(context.Background(), "Dracula")
		assert.ErrorIs(t, err, ErrUpstream)
		assert.ErrorIs(t, err, gutendex.ErrMalformedResponse)
		assert.Zero(t, store.saves)
	})
}

func TestPipeline_ImportByTitle_StoreFailureRollsBack(t *testing.T) {
	repo := setupTestStore(t)
	boom := errors.New("disk full")
	store := &countingStore{inner: repo, failSaveBook: boom}
	api := &mockAPI{bodies: map[string]string{"Dracula": draculaBody}}

	_, err := NewPipeline(api, store).ImportByTitle(context.Background(), "Dracula")
	assert.ErrorIs(t, err, ErrStore)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, store.saves, "author then book were attempted")

	authors, err := repo.AllAuthors()
	require.NoError(t, err)
	assert.Empty(t, authors, "author write is rolled back")

	stored, err := repo.AllBooks()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestSelectCandidate(t *testing.T) {
	summaries := []gutendex.BookSummary{
		{Title: "Moby Dick; Or, The Whale", Authors: []gutendex.AuthorSummary{{Name: "Melville, Herman"}}},
		{Title: "The Whale", Authors: []gutendex.AuthorSummary{{Name: "Other"}}},
	}

	got, ok := SelectCandidate(summaries, "WHALE")
	require.True(t, ok)
	assert.Equal(t, "Moby Dick; Or, The Whale", got.Title)

	_, ok = SelectCandidate(summaries, "Ahab")
	assert.False(t, ok)

	_, ok = SelectCandidate(nil, "whale")
	assert.False(t, ok)
}

func TestNewBookAndAuthor(t *testing.T) {
	birth := 1847
	summary := gutendex.BookSummary{
		Title:         "Dracula",
		Languages:     []string{"en", "fr"},
		DownloadCount: 500,
		Authors:       []gutendex.AuthorSummary{{Name: "Stoker, Bram", BirthYear: &birth}},
	}

	book := NewBook(summary)
	assert.Equal(t, "Dracula", book.Title)
	assert.Equal(t, "en", book.Language)
	assert.Equal(t, 500, book.DownloadCount)
	assert.Zero(t, book.AuthorID)

	author := NewAuthor(summary.Authors[0])
	assert.Equal(t, "Stoker, Bram", author.Name)
	assert.Equal(t, &birth, author.BirthYear)
	assert.Nil(t, author.DeathYear)
}
