package cli

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/mrlokans/literalura/internal/audit"
	"github.com/mrlokans/literalura/internal/config"
	"github.com/mrlokans/literalura/internal/database"
	"github.com/mrlokans/literalura/internal/database/books"
	"github.com/mrlokans/literalura/internal/gutendex"
	"github.com/mrlokans/literalura/internal/importers"
)

// catalog bundles the opened store and the import pipeline built on it.
type catalog struct {
	db       *database.Database
	repo     *books.Repository
	pipeline *importers.Pipeline
}

func openCatalog(cfg *config.Config, dbPath string) (*catalog, error) {
	absDBPath, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for database: %w", err)
	}

	db, err := database.NewDatabase(absDBPath, database.WithSQLLogging(cfg.Database.LogSQL))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := books.NewRepository(db.DB)
	client := gutendex.NewClient(cfg.Gutendex.BaseURL,
		gutendex.WithTimeout(cfg.Gutendex.Timeout),
		gutendex.WithUserAgent(cfg.Gutendex.UserAgent),
	)

	var api importers.CatalogAPI = client
	if cfg.Audit.Dir != "" {
		log.Info().Str("dir", cfg.Audit.Dir).Msg("archiving catalog responses")
		api = audit.NewRecordingSearcher(client, audit.NewAuditor(cfg.Audit.Dir))
	}

	return &catalog{
		db:       db,
		repo:     repo,
		pipeline: importers.NewPipeline(api, repo),
	}, nil
}

func (c *catalog) Close() error {
	return c.db.Close()
}
