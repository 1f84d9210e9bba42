package config

const (
	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./literalura.db"

	// DefaultGutendexBaseURL is the public Gutendex API
	DefaultGutendexBaseURL = "https://gutendex.com"
)
