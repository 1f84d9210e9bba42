package importers

import "errors"

var (
	// ErrInvalidInput indicates a blank or purely numeric search term.
	ErrInvalidInput = errors.New("invalid search term")

	// ErrUpstream indicates the catalog API could not be reached or returned
	// an unusable response.
	ErrUpstream = errors.New("catalog API failure")

	// ErrStore indicates the local store rejected a read or write. The
	// import transaction has been rolled back.
	ErrStore = errors.New("catalog store failure")
)
