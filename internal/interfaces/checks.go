package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/literalura/internal/cli"
	"github.com/mrlokans/literalura/internal/database/books"
	"github.com/mrlokans/literalura/internal/gutendex"
	"github.com/mrlokans/literalura/internal/importers"
	"github.com/mrlokans/literalura/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ services.CatalogStore = (*books.Repository)(nil)
var _ services.CatalogReader = (*books.Repository)(nil)
var _ services.CatalogWriter = (*books.Repository)(nil)

// =============================================================================
// External Services
// =============================================================================

var _ importers.CatalogAPI = (*gutendex.Client)(nil)

// =============================================================================
// Import Pipeline
// =============================================================================

var _ cli.Importer = (*importers.Pipeline)(nil)
