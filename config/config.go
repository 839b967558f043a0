package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName string
	Environment string
	LogLevel    string
	// Audit trail sink: "stderr", "stdout", a file path, or "off"
	AuditLogPath string
	// Refuse to re-decide Shortlisted/Rejected applications
	StrictDecisions bool
	// Report export
	ExportDir    string
	ExportFormat string
}

func LoadConfig() (*Config, error) {
	// A missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	cfg := &Config{
		ServiceName:     getEnv("SERVICE_NAME", "application-tracker"),
		Environment:     getEnv("APP_ENV", "development"),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		AuditLogPath:    getEnv("AUDIT_LOG_PATH", "stderr"),
		StrictDecisions: getEnvBool("STRICT_DECISIONS", false),
		ExportDir:       strings.TrimRight(getEnv("REPORT_EXPORT_DIR", "."), "/"),
		ExportFormat:    strings.ToLower(getEnv("REPORT_EXPORT_FORMAT", "xlsx")),
	}

	if cfg.ExportDir == "" {
		cfg.ExportDir = "/"
	}

	switch cfg.ExportFormat {
	case "xlsx", "csv", "yaml":
	default:
		log.Printf("WARNING: REPORT_EXPORT_FORMAT %q is not supported. Falling back to xlsx.", cfg.ExportFormat)
		cfg.ExportFormat = "xlsx"
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
