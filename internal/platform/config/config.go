package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// RateLimit is a ulule/limiter formatted limit, e.g. "120-M".
	RateLimit string

	// CORSAllowOrigins lists the origins allowed to call the API. A single
	// "*" entry allows all origins.
	CORSAllowOrigins []string

	// AuditKafkaBrokers enables the Kafka audit recorder when non-empty;
	// otherwise audit events go to the structured log.
	AuditKafkaBrokers []string
	AuditKafkaTopic   string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Environment variables take precedence over .env values.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("AUDIT_KAFKA_BROKERS", "")
	viper.SetDefault("AUDIT_KAFKA_TOPIC", "fx-audit-events")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL not set. Falling back to the in-memory store; data will not survive a restart.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowOrigins = splitAndTrim(viper.GetString("CORS_ALLOW_ORIGINS"))
	cfg.AuditKafkaBrokers = splitAndTrim(viper.GetString("AUDIT_KAFKA_BROKERS"))
	cfg.AuditKafkaTopic = viper.GetString("AUDIT_KAFKA_TOPIC")

	return cfg, nil
}

func splitAndTrim(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
