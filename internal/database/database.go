package database

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/literalura/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

type options struct {
	logSQL bool
}

// Option tweaks how the database connection is opened.
type Option func(*options)

// WithSQLLogging makes gorm log every statement.
func WithSQLLogging(enabled bool) Option {
	return func(o *options) {
		o.logSQL = enabled
	}
}

func NewDatabase(dbPath string, opts ...Option) (*Database, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	level := logger.Warn
	if o.logSQL {
		level = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(withForeignKeys(dbPath)), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Authors first so the books foreign key has a target
	err = db.AutoMigrate(
		&entities.Author{},
		&entities.Book{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Debug().Str("path", dbPath).Msg("database initialized")

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the underlying connection is usable.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// withForeignKeys appends the go-sqlite3 DSN flag that turns on
// PRAGMA foreign_keys for every pooled connection.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}
