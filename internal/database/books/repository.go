// Package books implements the catalog store over gorm.
//
// # Interface Implementation
//
//	var _ services.CatalogStore = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	err := repo.WithinTransaction(func(tx services.CatalogWriter) error {
//		if err := tx.SaveAuthor(author); err != nil {
//			return err
//		}
//		book.AuthorID = author.ID
//		return tx.SaveBook(book)
//	})
package books

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/literalura/internal/entities"
	"github.com/mrlokans/literalura/internal/services"
)

// TopDownloadsLimit is the size of the most-downloaded listing.
const TopDownloadsLimit = 10

// ErrUnsavedAuthor is returned by SaveBook when the book does not reference a persisted author.
var ErrUnsavedAuthor = errors.New("book must reference a persisted author")

// Repository handles all book and author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindBookByTitle returns the book with exactly this title, or nil.
func (r *Repository) FindBookByTitle(title string) (*entities.Book, error) {
	var found []entities.Book
	err := r.db.Preload("Author").Where("title = ?", title).Order("id ASC").Limit(1).Find(&found).Error
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

// FindAuthorByName returns the author with exactly this name together with
// their books, or nil.
func (r *Repository) FindAuthorByName(name string) (*entities.Author, error) {
	var found []entities.Author
	err := r.db.Preload("Books", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Where("name = ?", name).Order("id ASC").Limit(1).Find(&found).Error
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

// SaveAuthor inserts a new author or updates an existing one. Books in
// author.Books are not written here; they are saved through SaveBook.
func (r *Repository) SaveAuthor(author *entities.Author) error {
	return r.db.Omit(clause.Associations).Save(author).Error
}

// SaveBook inserts a book. The referenced author must already be persisted.
func (r *Repository) SaveBook(book *entities.Book) error {
	if book.AuthorID == 0 {
		if book.Author == nil || book.Author.ID == 0 {
			return ErrUnsavedAuthor
		}
		book.AuthorID = book.Author.ID
	}
	return r.db.Omit(clause.Associations).Create(book).Error
}

// WithinTransaction runs fn inside a database transaction.
func (r *Repository) WithinTransaction(fn func(tx services.CatalogWriter) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

// AllBooks lists every book with its author, in insertion order.
func (r *Repository) AllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Author").Order("id ASC").Find(&books).Error
	return books, err
}

// AllAuthors lists every author with their books, in insertion order.
func (r *Repository) AllAuthors() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Preload("Books", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).Order("id ASC").Find(&authors).Error
	return authors, err
}

// AuthorsAliveInYear lists authors born in or before year who had not died
// before it. A missing death year counts as alive.
func (r *Repository) AuthorsAliveInYear(year int) ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Preload("Books", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	}).
		Where("birth_year IS NOT NULL AND birth_year <= ?", year).
		Where("death_year IS NULL OR death_year >= ?", year).
		Order("id ASC").
		Find(&authors).Error
	return authors, err
}

// BooksByLanguage lists books whose language code matches exactly.
func (r *Repository) BooksByLanguage(code string) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Author").Where("language = ?", code).Order("id ASC").Find(&books).Error
	return books, err
}

// Top10ByDownloads lists the most downloaded books, ties broken by insertion order.
func (r *Repository) Top10ByDownloads() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Author").
		Order("download_count DESC").
		Order("id ASC").
		Limit(TopDownloadsLimit).
		Find(&books).Error
	return books, err
}

// DownloadStats aggregates download counts over books with at least one
// download and counts all stored books.
func (r *Repository) DownloadStats() (services.DownloadStats, error) {
	var row struct {
		Total   int64
		Count   int64
		Min     int
		Max     int
		Average float64
	}
	err := r.db.Model(&entities.Book{}).
		Select(`COUNT(*) AS total,
			COUNT(CASE WHEN download_count > 0 THEN 1 END) AS count,
			COALESCE(MIN(CASE WHEN download_count > 0 THEN download_count END), 0) AS min,
			COALESCE(MAX(CASE WHEN download_count > 0 THEN download_count END), 0) AS max,
			COALESCE(AVG(CASE WHEN download_count > 0 THEN download_count END), 0) AS average`).
		Scan(&row).Error
	if err != nil {
		return services.DownloadStats{}, fmt.Errorf("aggregate downloads: %w", err)
	}
	return services.DownloadStats(row), nil
}
