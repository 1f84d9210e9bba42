package cli

import (
	"errors"
	"strconv"
	"strings"
)

// Command is an entry of the interactive menu. The numeric value is the
// option the user types.
type Command int

const (
	CommandExit Command = iota
	CommandSearch
	CommandListBooks
	CommandListAuthors
	CommandListAliveInYear
	CommandListByLanguage
	CommandTop10
	CommandStats
)

var (
	// ErrNotANumber is returned for menu input that is not an integer.
	ErrNotANumber = errors.New("menu input is not a number")
	// ErrUnknownOption is returned for integers outside the menu.
	ErrUnknownOption = errors.New("unknown menu option")
)

var commandLabels = map[Command]string{
	CommandSearch:          "Search book by title",
	CommandListBooks:       "List registered books",
	CommandListAuthors:     "List registered authors",
	CommandListAliveInYear: "List authors alive in a given year",
	CommandListByLanguage:  "List books by language",
	CommandTop10:           "List the 10 most downloaded books",
	CommandStats:           "Show database statistics",
	CommandExit:            "Exit",
}

// ParseCommand maps a line of menu input to a Command.
func ParseCommand(input string) (Command, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrNotANumber
	}
	cmd := Command(n)
	if cmd < CommandExit || cmd > CommandStats {
		return 0, ErrUnknownOption
	}
	return cmd, nil
}

func (c Command) String() string {
	if label, ok := commandLabels[c]; ok {
		return label
	}
	return "Unknown"
}

// Language is an entry of the language sub-menu.
type Language struct {
	Label string
	Code  string
}

// Languages lists the sub-menu entries in display order; option N is Languages[N-1].
var Languages = []Language{
	{Label: "English", Code: "en"},
	{Label: "French", Code: "fr"},
	{Label: "German", Code: "de"},
	{Label: "Portuguese", Code: "pt"},
	{Label: "Spanish", Code: "es"},
}

// ParseLanguage maps a line of sub-menu input to a language code.
func ParseLanguage(input string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return "", ErrNotANumber
	}
	if n < 1 || n > len(Languages) {
		return "", ErrUnknownOption
	}
	return Languages[n-1].Code, nil
}
