package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/literalura/internal/config"
)

// ShellCommand starts the interactive menu.
type ShellCommand struct {
	DatabasePath string

	cfg *config.Config
	in  io.Reader
	out io.Writer
}

func NewShellCommand(cfg *config.Config) *ShellCommand {
	return &ShellCommand{cfg: cfg, in: os.Stdin, out: os.Stdout}
}

func (cmd *ShellCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cmd.cfg.Database.Path, "Path to the catalog database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s shell [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Start the interactive catalog menu.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ShellCommand) Run(ctx context.Context) error {
	c, err := openCatalog(cmd.cfg, cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer c.Close()

	return NewShell(cmd.in, cmd.out, c.pipeline, c.repo).Run(ctx)
}
