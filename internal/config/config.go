package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP server
	Port string

	// Draft persistence
	DraftBackend  string // "sqlite" or "file"
	SQLiteDBPath  string
	DraftFilePath string
	DraftKey      string

	// Autosave worker
	AutosaveInterval time.Duration

	// Logo upload
	MaxLogoBytes int64
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8081"),

		DraftBackend:  getEnv("DRAFT_BACKEND", "sqlite"),
		SQLiteDBPath:  getEnv("SQLITE_DB_PATH", "./data/invoiceflash.db"),
		DraftFilePath: getEnv("DRAFT_FILE_PATH", "./data/invoice-draft.json"),
		DraftKey:      getEnv("DRAFT_KEY", "invoice-draft"),

		AutosaveInterval: getEnvDuration("AUTOSAVE_INTERVAL", 30*time.Second),

		MaxLogoBytes: getEnvInt64("MAX_LOGO_BYTES", 5*1024*1024),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	// Validate draft backend
	validBackends := []string{"sqlite", "file"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DraftBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid draft backend '%s': must be one of %v", c.DraftBackend, validBackends))
	}

	// Validate storage paths for the selected backend
	switch c.DraftBackend {
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else if err := ensureParentDir(c.SQLiteDBPath); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create SQLite database directory for '%s': %v", c.SQLiteDBPath, err))
		}
	case "file":
		if c.DraftFilePath == "" {
			errors = append(errors, "draft file path cannot be empty when using file backend")
		} else if err := ensureParentDir(c.DraftFilePath); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create draft directory for '%s': %v", c.DraftFilePath, err))
		}
	}

	if c.DraftKey == "" {
		errors = append(errors, "draft key cannot be empty")
	}

	// Validate autosave interval
	if c.AutosaveInterval < time.Second {
		errors = append(errors, fmt.Sprintf("invalid autosave interval %v: must be at least 1 second", c.AutosaveInterval))
	} else if c.AutosaveInterval > 24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid autosave interval %v: must be at most 24 hours", c.AutosaveInterval))
	}

	// Validate logo size limit
	if c.MaxLogoBytes < 1024 {
		errors = append(errors, fmt.Sprintf("invalid logo size limit %d: must be at least 1KB", c.MaxLogoBytes))
	} else if c.MaxLogoBytes > 50*1024*1024 {
		errors = append(errors, fmt.Sprintf("invalid logo size limit %d: must be at most 50MB", c.MaxLogoBytes))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
