package importers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateSearchTerm trims term and rejects it when blank or numeric.
// It returns the trimmed term.
func ValidateSearchTerm(term string) (string, error) {
	term = strings.TrimSpace(term)
	err := validation.Validate(term,
		validation.Required.Error("search term is required"),
		validation.By(notNumeric),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return term, nil
}

func notNumeric(value interface{}) error {
	s, _ := value.(string)
	if IsNumber(s) {
		return errors.New("search term must not be a number")
	}
	return nil
}

// nonFiniteLiterals are the only digit-free spellings treated as numbers.
// Matching is case-sensitive so words like "nan" or "inf" stay searchable.
var nonFiniteLiterals = map[string]bool{
	"NaN": true, "+NaN": true, "-NaN": true,
	"Infinity": true, "+Infinity": true, "-Infinity": true,
}

// IsNumber reports whether s parses entirely as a floating point number.
// Out-of-range values such as "1e999" still count as numbers.
func IsNumber(s string) bool {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, "0123456789") {
		return nonFiniteLiterals[s]
	}
	_, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return true
	}
	var numErr *strconv.NumError
	return errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange)
}
