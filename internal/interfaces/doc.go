// Package interfaces documents the core abstractions of the catalog manager
// and holds their compile-time implementation checks.
//
// # Data Access
//
//   - CatalogReader: reporting queries (internal/services/interfaces.go)
//   - CatalogWriter: lookups and writes used by imports (internal/services/interfaces.go)
//   - CatalogStore: reader + writer + WithinTransaction, implemented by
//     books.Repository (internal/database/books)
//
// # External Services
//
//   - CatalogAPI: raw search against the book catalog, implemented by
//     gutendex.Client (internal/importers/pipeline.go)
//
// # Import Pipeline
//
//   - Importer: one search-and-import, implemented by importers.Pipeline
//     and consumed by the interactive shell (internal/cli/shell.go)
//
// # Adding a New Catalog Source
//
//  1. Implement CatalogAPI so that Search returns the raw JSON body
//  2. Make sure the body decodes with gutendex.Decode, or add a decoder
//  3. Pass the client to importers.NewPipeline
//  4. Add a check to checks.go
package interfaces
