package gutendex

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse indicates the body was not a valid search result.
var ErrMalformedResponse = errors.New("malformed Gutendex response")

// StatusError represents a non-2xx response from the Gutendex API
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Gutendex returned HTTP %d", e.StatusCode)
}
