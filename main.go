package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/mrlokans/literalura/internal/cli"
	"github.com/mrlokans/literalura/internal/config"
	"github.com/mrlokans/literalura/internal/entrypoint"
	"github.com/mrlokans/literalura/internal/logging"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// runner is a CLI subcommand.
type runner interface {
	ParseFlags(args []string) error
	Run(ctx context.Context) error
}

func main() {
	cfg := config.NewConfig()
	logging.Setup(cfg.Log)

	command := "shell"
	var args []string
	if len(os.Args) >= 2 {
		command = os.Args[1]
		args = os.Args[2:]
	}

	switch command {
	case "shell":
		run(cli.NewShellCommand(cfg), args)

	case "import":
		run(cli.NewImportCommand(cfg), args)

	case "serve":
		log.Info().Str("version", Version).Str("commit", Commit).Msg("starting reporting server")
		if err := entrypoint.Run(cfg, Version); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func run(cmd runner, args []string) {
	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := cmd.Run(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  shell     Start the interactive catalog menu (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  import    Search Gutendex by title and import the first match\n")
	fmt.Fprintf(os.Stderr, "  serve     Start the read-only HTTP reporting API\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
