package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Where endorsement certificates and uploaded attachments are written.
	DocumentStorageDir string

	// Expiry scanner schedule.
	ScanHourLocal    int // daily scan fire hour (0-23)
	CleanupHourLocal int // weekly cleanup fire hour, Sundays

	FrontendBaseURL string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "8h")
	viper.SetDefault("JWT_ISSUER", "policyzen")
	viper.SetDefault("DOCUMENT_STORAGE_DIR", "storage/documents")
	viper.SetDefault("SCAN_HOUR_LOCAL", 9)
	viper.SetDefault("CLEANUP_HOUR_LOCAL", 2)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 8 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.DocumentStorageDir = viper.GetString("DOCUMENT_STORAGE_DIR")

	cfg.ScanHourLocal = viper.GetInt("SCAN_HOUR_LOCAL")
	if cfg.ScanHourLocal < 0 || cfg.ScanHourLocal > 23 {
		log.Printf("Warning: SCAN_HOUR_LOCAL out of range (%d). Defaulting to 9.\n", cfg.ScanHourLocal)
		cfg.ScanHourLocal = 9
	}
	cfg.CleanupHourLocal = viper.GetInt("CLEANUP_HOUR_LOCAL")
	if cfg.CleanupHourLocal < 0 || cfg.CleanupHourLocal > 23 {
		log.Printf("Warning: CLEANUP_HOUR_LOCAL out of range (%d). Defaulting to 2.\n", cfg.CleanupHourLocal)
		cfg.CleanupHourLocal = 2
	}

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	return cfg, nil
}
