// Package importers imports a single book from the Gutendex catalog into the
// local store.
//
// # Flow
//
//	search term → validate → CatalogAPI.Search → gutendex.Decode → select candidate
//	            → [transaction: dedup by title → resolve author by name → save author → save book]
//
// Candidate selection is "first partial match wins": the first result, in API
// order, whose title contains the term case-insensitively. Results without an
// author are skipped. Only the first author of the candidate is used.
//
// # Outcomes and errors
//
// NotFound and AlreadyExists are normal outcomes reported through
// services.ImportResult. Failures are reported as errors wrapping one of
// ErrInvalidInput, ErrUpstream or ErrStore:
//
//	result, err := pipeline.ImportByTitle(ctx, "Dracula")
//	switch {
//	case errors.Is(err, importers.ErrInvalidInput):
//	case errors.Is(err, importers.ErrUpstream):
//	case errors.Is(err, importers.ErrStore):
//	case result.Outcome == services.OutcomeImported:
//	}
package importers
