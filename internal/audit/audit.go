package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Record is one archived catalog response.
type Record struct {
	ID        string          `json:"id"`
	Term      string          `json:"term"`
	FetchedAt time.Time       `json:"fetched_at"`
	Body      json.RawMessage `json:"body,omitempty"`
	RawBody   string          `json:"raw_body,omitempty"`
	Error     string          `json:"error,omitempty"`
}

type Auditor struct {
	AuditDir string
	now      func() time.Time
}

func NewAuditor(auditDir string) *Auditor {
	return &Auditor{
		AuditDir: auditDir,
		now:      time.Now,
	}
}

// SaveResponse archives a search response under a UUID4 filename and returns
// that filename. Bodies that are not valid JSON are kept verbatim in raw_body.
func (a *Auditor) SaveResponse(term, body string, searchErr error) (string, error) {
	if err := os.MkdirAll(a.AuditDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to ensure audit directory: %w", err)
	}

	record := Record{
		ID:        uuid.New().String(),
		Term:      term,
		FetchedAt: a.now().UTC(),
	}
	if json.Valid([]byte(body)) {
		record.Body = json.RawMessage(body)
	} else {
		record.RawBody = body
	}
	if searchErr != nil {
		record.Error = searchErr.Error()
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal audit record: %w", err)
	}

	filename := record.ID + ".json"
	if err := os.WriteFile(filepath.Join(a.AuditDir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write audit file: %w", err)
	}
	return filename, nil
}

// Searcher is the catalog search being recorded.
type Searcher interface {
	Search(ctx context.Context, term string) (string, error)
}

// RecordingSearcher archives every response of the wrapped Searcher.
// Archive failures are logged and never fail the search.
type RecordingSearcher struct {
	next    Searcher
	auditor *Auditor
}

func NewRecordingSearcher(next Searcher, auditor *Auditor) *RecordingSearcher {
	return &RecordingSearcher{next: next, auditor: auditor}
}

func (r *RecordingSearcher) Search(ctx context.Context, term string) (string, error) {
	body, err := r.next.Search(ctx, term)

	filename, auditErr := r.auditor.SaveResponse(term, body, err)
	if auditErr != nil {
		log.Warn().Err(auditErr).Str("term", term).Msg("could not archive catalog response")
	} else {
		log.Debug().Str("file", filename).Str("term", term).Msg("archived catalog response")
	}

	return body, err
}
