package gutendex

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SearchResult is one page of the /books/ endpoint. Only the first page is used.
type SearchResult struct {
	Count   int           `json:"count"`
	Next    *string       `json:"next"`
	Results []BookSummary `json:"results"`
}

// BookSummary is a search hit as returned by the API.
type BookSummary struct {
	ID            int             `json:"id"`
	Title         string          `json:"title"`
	Authors       []AuthorSummary `json:"authors"`
	Languages     []string        `json:"languages"`
	DownloadCount int             `json:"download_count"`
}

// AuthorSummary is an author entry of a BookSummary.
type AuthorSummary struct {
	Name      string `json:"name"`
	BirthYear *int   `json:"birth_year"`
	DeathYear *int   `json:"death_year"`
}

// Language returns the first listed language code, or "" when none is listed.
func (b BookSummary) Language() string {
	if len(b.Languages) == 0 {
		return ""
	}
	return b.Languages[0]
}

// PrimaryAuthor returns the first listed author. Co-authors are ignored.
func (b BookSummary) PrimaryAuthor() (AuthorSummary, bool) {
	if len(b.Authors) == 0 {
		return AuthorSummary{}, false
	}
	return b.Authors[0], true
}

// Decode parses a raw /books/ response body. The results list and every
// result title are required.
func Decode(body string) (*SearchResult, error) {
	var raw struct {
		SearchResult
		Results *[]BookSummary `json:"results"`
	}
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if raw.Results == nil {
		return nil, fmt.Errorf("%w: missing results", ErrMalformedResponse)
	}

	result := raw.SearchResult
	result.Results = *raw.Results
	for i, summary := range result.Results {
		if strings.TrimSpace(summary.Title) == "" {
			return nil, fmt.Errorf("%w: result %d has no title", ErrMalformedResponse, i)
		}
		if summary.DownloadCount < 0 {
			return nil, fmt.Errorf("%w: result %d has negative download count", ErrMalformedResponse, i)
		}
	}
	return &result, nil
}
