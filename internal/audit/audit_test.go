package audit

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readRecord(t *testing.T, dir, filename string) Record {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)

	var record Record
	require.NoError(t, json.Unmarshal(data, &record))
	return record
}

func TestAuditor_SaveResponse(t *testing.T) {
	t.Run("creates the directory and keeps JSON bodies structured", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "audit")
		auditor := NewAuditor(dir)
		fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		auditor.now = func() time.Time { return fixed }

		filename, err := auditor.SaveResponse("Dracula", `{"results":[]}`, nil)
		require.NoError(t, err)
		assert.Contains(t, filename, ".json")

		record := readRecord(t, dir, filename)
		assert.Equal(t, "Dracula", record.Term)
		assert.Equal(t, fixed, record.FetchedAt)
		assert.JSONEq(t, `{"results":[]}`, string(record.Body))
		assert.Empty(t, record.RawBody)
		assert.Empty(t, record.Error)
		assert.Equal(t, record.ID+".json", filename)
	})

	t.Run("keeps non JSON bodies verbatim", func(t *testing.T) {
		dir := t.TempDir()
		auditor := NewAuditor(dir)

		filename, err := auditor.SaveResponse("x", "<html>oops</html>", errors.New("HTTP 502"))
		require.NoError(t, err)

		record := readRecord(t, dir, filename)
		assert.Nil(t, record.Body)
		assert.Equal(t, "<html>oops</html>", record.RawBody)
		assert.Equal(t, "HTTP 502", record.Error)
	})

	t.Run("generates unique filenames", func(t *testing.T) {
		auditor := NewAuditor(t.TempDir())

		first, err := auditor.SaveResponse("a", "{}", nil)
		require.NoError(t, err)
		second, err := auditor.SaveResponse("a", "{}", nil)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("fails when the directory cannot be created", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "not-a-dir")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		_, err := NewAuditor(filepath.Join(file, "audit")).SaveResponse("a", "{}", nil)
		assert.Error(t, err)
	})
}

type stubSearcher struct {
	body string
	err  error
}

func (s stubSearcher) Search(context.Context, string) (string, error) {
	return s.body, s.err
}

func TestRecordingSearcher(t *testing.T) {
	t.Run("passes results through and archives them", func(t *testing.T) {
		dir := t.TempDir()
		searcher := NewRecordingSearcher(stubSearcher{body: `{"results":[]}`}, NewAuditor(dir))

		body, err := searcher.Search(context.Background(), "Dracula")
		require.NoError(t, err)
		assert.Equal(t, `{"results":[]}`, body)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("returns the search error unchanged", func(t *testing.T) {
		searchErr := errors.New("boom")
		searcher := NewRecordingSearcher(stubSearcher{err: searchErr}, NewAuditor(t.TempDir()))

		_, err := searcher.Search(context.Background(), "Dracula")
		assert.ErrorIs(t, err, searchErr)
	})

	t.Run("archive failures do not fail the search", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "not-a-dir")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
		searcher := NewRecordingSearcher(stubSearcher{body: "{}"}, NewAuditor(filepath.Join(file, "audit")))

		body, err := searcher.Search(context.Background(), "Dracula")
		require.NoError(t, err)
		assert.Equal(t, "{}", body)
	})
}
