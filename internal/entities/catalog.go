package entities

import (
	"fmt"
	"time"
)

// Author is identified by Name. A nil DeathYear means the author is presumed alive.
type Author struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"index;size:256;not null" json:"name"`
	BirthYear *int      `json:"birth_year"`
	DeathYear *int      `json:"death_year"`
	Books     []Book    `gorm:"foreignKey:AuthorID" json:"books,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Book is identified by Title. Every book belongs to exactly one persisted Author.
type Book struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"index;size:512;not null" json:"title"`
	Language      string    `gorm:"index;size:8" json:"language"`
	DownloadCount int       `gorm:"index" json:"download_count"`
	AuthorID      uint      `gorm:"index;not null" json:"author_id"`
	Author        *Author   `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"author,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Author) TableName() string {
	return "authors"
}

func (Book) TableName() string {
	return "books"
}

// Lifespan renders "1847-1912", "1800-?" or "?" for display.
func (a Author) Lifespan() string {
	birth, death := "?", "?"
	if a.BirthYear != nil {
		birth = fmt.Sprintf("%d", *a.BirthYear)
	}
	if a.DeathYear != nil {
		death = fmt.Sprintf("%d", *a.DeathYear)
	}
	if a.BirthYear == nil && a.DeathYear == nil {
		return "?"
	}
	return birth + "-" + death
}
