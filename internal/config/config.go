package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type LogFormat string

const (
	LogFormatConsole LogFormat = "console" // Human readable output on stderr (default)
	LogFormatJSON    LogFormat = "json"    // One JSON object per line
)

type (
	Config struct {
		HTTP
		Global
		Database
		Gutendex
		Audit
		Log
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path   string
		LogSQL bool
	}
	Gutendex struct {
		BaseURL   string
		Timeout   time.Duration // Zero means no client timeout
		UserAgent string
	}
	Audit struct {
		Dir string // Empty disables archiving of catalog responses
	}
	Log struct {
		Level  string
		Format LogFormat
	}
)

// NewConfig builds the configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment variables win.
func NewConfig() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_sql", false)
	v.SetDefault("gutendex_base_url", DefaultGutendexBaseURL)
	v.SetDefault("gutendex_timeout", "0s")
	v.SetDefault("gutendex_user_agent", "Literalura/1.0")
	v.SetDefault("audit_dir", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", string(LogFormatConsole))

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:   v.GetString("DATABASE_PATH"),
			LogSQL: v.GetBool("DATABASE_LOG_SQL"),
		},
		Gutendex: Gutendex{
			BaseURL:   v.GetString("GUTENDEX_BASE_URL"),
			Timeout:   v.GetDuration("GUTENDEX_TIMEOUT"),
			UserAgent: v.GetString("GUTENDEX_USER_AGENT"),
		},
		Audit: Audit{
			Dir: v.GetString("AUDIT_DIR"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: LogFormat(v.GetString("LOG_FORMAT")),
		},
	}
}
