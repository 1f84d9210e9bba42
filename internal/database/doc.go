// Package database opens the sqlite catalog and migrates its schema.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup and migrations
//	└── books/           # Book and author repository (catalog store)
//
// # Usage
//
//	db, err := database.NewDatabase("./literalura.db")
//	repo := books.NewRepository(db.DB)
//	book, err := repo.FindBookByTitle("Dracula")
//
// The books table carries a foreign key to authors. Connections are opened
// with _foreign_keys=on so sqlite enforces it.
package database
