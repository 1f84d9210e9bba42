package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/literalura/internal/config"
)

// ImportCommand searches the catalog once and imports the first match.
type ImportCommand struct {
	Title        string
	DatabasePath string

	cfg *config.Config
	out io.Writer
}

func NewImportCommand(cfg *config.Config) *ImportCommand {
	return &ImportCommand{cfg: cfg, out: os.Stdout}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)

	fs.StringVar(&cmd.Title, "title", "", "Title (or part of it) to search for (required)")
	fs.StringVar(&cmd.DatabasePath, "db", cmd.cfg.Database.Path, "Path to the catalog database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import -title <title> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Search Gutendex and import the first book whose title contains the term.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s import -title Dracula\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s import -title \"pride and prejudice\" -db ./books.db\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Title == "" {
		fs.Usage()
		return fmt.Errorf("required flag -title not provided")
	}

	return nil
}

// Run imports the title. NotFound and AlreadyExists are not errors; the
// failure kinds are returned so the caller can set the exit code.
func (cmd *ImportCommand) Run(ctx context.Context) error {
	c, err := openCatalog(cmd.cfg, cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer c.Close()

	result, err := c.pipeline.ImportByTitle(ctx, cmd.Title)
	writeImportResult(cmd.out, result, err)
	return err
}
