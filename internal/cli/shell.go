package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mrlokans/literalura/internal/gutendex"
	"github.com/mrlokans/literalura/internal/importers"
	"github.com/mrlokans/literalura/internal/services"
)

// maxLineLength bounds one line of user input. Longer lines are discarded.
const maxLineLength = 64 * 1024

const (
	msgInvalidInput  = "\nInvalid input"
	msgInvalidOption = "\nInvalid option"
	msgNothingYet    = "\nNothing here yet"
)

// Importer runs one search-and-import.
type Importer interface {
	ImportByTitle(ctx context.Context, searchTerm string) (services.ImportResult, error)
}

var (
	// errInputClosed ends the loop when the input stream runs out mid-command.
	errInputClosed = errors.New("input closed")
	// errLineTooLong rejects a line over maxLineLength; the shell re-prompts.
	errLineTooLong = errors.New("input line too long")
)

// Shell is the interactive numbered menu. It reads from a single input
// stream and handles one command at a time.
type Shell struct {
	in       *bufio.Reader
	out      io.Writer
	importer Importer
	reader   services.CatalogReader
}

// NewShell creates a shell reading commands from in and writing to out.
func NewShell(in io.Reader, out io.Writer, importer Importer, reader services.CatalogReader) *Shell {
	return &Shell{
		in:       bufio.NewReader(in),
		out:      out,
		importer: importer,
		reader:   reader,
	}
}

// Run shows the menu until the user picks Exit, the input ends or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()

		line, err := s.readLine()
		if errors.Is(err, errLineTooLong) {
			fmt.Fprintln(s.out, msgInvalidInput)
			continue
		}
		if err != nil {
			return s.closed(err)
		}

		cmd, err := ParseCommand(line)
		switch {
		case errors.Is(err, ErrNotANumber):
			fmt.Fprintln(s.out, msgInvalidInput)
			continue
		case errors.Is(err, ErrUnknownOption):
			fmt.Fprintln(s.out, msgInvalidOption)
			continue
		}

		if cmd == CommandExit {
			fmt.Fprintln(s.out, "\nClosing the application...")
			return nil
		}

		err = s.dispatch(ctx, cmd)
		if errors.Is(err, errLineTooLong) {
			fmt.Fprintln(s.out, msgInvalidInput)
			continue
		}
		if err != nil {
			return s.closed(err)
		}
	}
}

func (s *Shell) closed(err error) error {
	if errors.Is(err, errInputClosed) {
		log.Debug().Msg("input closed, leaving shell")
		return nil
	}
	return err
}

func (s *Shell) dispatch(ctx context.Context, cmd Command) error {
	log.Debug().Stringer("command", cmd).Msg("dispatching menu command")

	switch cmd {
	case CommandSearch:
		return s.searchBookByTitle(ctx)
	case CommandListBooks:
		s.listBooks()
	case CommandListAuthors:
		s.listAuthors()
	case CommandListAliveInYear:
		return s.listAuthorsAliveInYear()
	case CommandListByLanguage:
		return s.listBooksByLanguage()
	case CommandTop10:
		s.listTop10()
	case CommandStats:
		s.showStats()
	}
	return nil
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "======================================")
	fmt.Fprintln(s.out, "              LiterAlura")
	fmt.Fprintln(s.out, "======================================")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "--- Choose an option ---")
	fmt.Fprintln(s.out)
	for c := CommandSearch; c <= CommandStats; c++ {
		fmt.Fprintf(s.out, "%d - %s\n", c, c)
	}
	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "%d - %s\n", CommandExit, CommandExit)
}

// readLine returns the next line without its terminator. A line longer than
// maxLineLength is consumed in full and reported as errLineTooLong.
func (s *Shell) readLine() (string, error) {
	var line []byte
	tooLong := false
	for {
		chunk, isPrefix, err := s.in.ReadLine()
		if errors.Is(err, io.EOF) {
			return "", errInputClosed
		}
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		if !tooLong && len(line)+len(chunk) > maxLineLength {
			tooLong, line = true, nil
		}
		if !tooLong {
			line = append(line, chunk...)
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", errLineTooLong
	}
	return string(line), nil
}

func (s *Shell) searchBookByTitle(ctx context.Context) error {
	fmt.Fprintln(s.out, "\nEnter the title of the book you want to search for:")
	term, err := s.readLine()
	if err != nil {
		return err
	}

	result, err := s.importer.ImportByTitle(ctx, term)
	writeImportResult(s.out, result, err)
	return nil
}

func (s *Shell) listBooks() {
	books, err := s.reader.AllBooks()
	if err != nil {
		s.reportError("list books", err)
		return
	}
	if len(books) == 0 {
		fmt.Fprintln(s.out, msgNothingYet)
		return
	}

	fmt.Fprintln(s.out, "\n----- Registered books -----")
	for _, b := range books {
		writeBook(s.out, b)
	}
}

func (s *Shell) listAuthors() {
	authors, err := s.reader.AllAuthors()
	if err != nil {
		s.reportError("list authors", err)
		return
	}
	if len(authors) == 0 {
		fmt.Fprintln(s.out, msgNothingYet)
		return
	}

	fmt.Fprintln(s.out, "\n----- Registered authors -----")
	for _, a := range authors {
		writeAuthor(s.out, a)
	}
}

func (s *Shell) listAuthorsAliveInYear() error {
	fmt.Fprintln(s.out, "\nEnter the year you want to query:")
	line, err := s.readLine()
	if err != nil {
		return err
	}

	year, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(s.out, msgInvalidInput)
		return nil
	}

	authors, err := s.reader.AuthorsAliveInYear(year)
	if err != nil {
		s.reportError("list living authors", err)
		return nil
	}
	if len(authors) == 0 {
		fmt.Fprintln(s.out, "\nNo results, try another year")
		return nil
	}

	fmt.Fprintf(s.out, "\n----- Registered authors alive in %d -----\n", year)
	for _, a := range authors {
		writeAuthor(s.out, a)
	}
	return nil
}

func (s *Shell) listBooksByLanguage() error {
	fmt.Fprintln(s.out, "\nChoose the language you want to query")
	fmt.Fprintln(s.out)
	for i, lang := range Languages {
		fmt.Fprintf(s.out, "%d - %s\n", i+1, lang.Label)
	}

	line, err := s.readLine()
	if err != nil {
		return err
	}

	code, err := ParseLanguage(line)
	switch {
	case errors.Is(err, ErrNotANumber):
		fmt.Fprintln(s.out, msgInvalidInput)
		return nil
	case errors.Is(err, ErrUnknownOption):
		fmt.Fprintln(s.out, msgInvalidOption)
		return nil
	}

	books, err := s.reader.BooksByLanguage(code)
	if err != nil {
		s.reportError("list books by language", err)
		return nil
	}
	if len(books) == 0 {
		fmt.Fprintln(s.out, "\nNo results, choose another language")
		return nil
	}

	fmt.Fprintln(s.out, "\nRegistered books:")
	for _, b := range books {
		writeBook(s.out, b)
	}
	return nil
}

func (s *Shell) listTop10() {
	books, err := s.reader.Top10ByDownloads()
	if err != nil {
		s.reportError("list top downloads", err)
		return
	}
	if len(books) == 0 {
		fmt.Fprintln(s.out, msgNothingYet)
		return
	}

	fmt.Fprintln(s.out, "\n----- Top 10 most downloaded books -----")
	for _, b := range books {
		fmt.Fprintln(s.out, b.Title)
	}
}

func (s *Shell) showStats() {
	stats, err := s.reader.DownloadStats()
	if err != nil {
		s.reportError("compute statistics", err)
		return
	}
	if stats.Total == 0 {
		fmt.Fprintln(s.out, msgNothingYet)
		return
	}
	writeStats(s.out, stats)
}

func (s *Shell) reportError(action string, err error) {
	log.Error().Err(err).Str("action", action).Msg("query failed")
	fmt.Fprintf(s.out, "\nCould not %s: %v\n", action, err)
}

// writeImportResult turns an import outcome or failure into a user message.
func writeImportResult(w io.Writer, result services.ImportResult, err error) {
	var statusErr *gutendex.StatusError
	switch {
	case errors.Is(err, importers.ErrInvalidInput):
		fmt.Fprintln(w, msgInvalidInput)
	case errors.As(err, &statusErr):
		fmt.Fprintf(w, "\nThe catalog API answered with HTTP %d, try again later\n", statusErr.StatusCode)
	case errors.Is(err, importers.ErrUpstream):
		fmt.Fprintf(w, "\nCould not reach the catalog API: %v\n", err)
	case errors.Is(err, importers.ErrStore):
		fmt.Fprintf(w, "\nCould not save the book: %v\n", err)
	case err != nil:
		fmt.Fprintf(w, "\nImport failed: %v\n", err)
	case result.Outcome == services.OutcomeNotFound:
		fmt.Fprintln(w, "\nBook not found")
	case result.Outcome == services.OutcomeAlreadyExists:
		fmt.Fprintln(w, "\nThe book is already in the database")
	case result.Outcome == services.OutcomeImported && result.Book != nil:
		fmt.Fprintln(w, "\nBook added to the database:")
		writeBook(w, *result.Book)
	}
}
