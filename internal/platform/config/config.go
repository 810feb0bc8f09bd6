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
	JWTSecret     string
	JWTExpiry     time.Duration
	JWTIssuer     string
	RefreshExpiry time.Duration

	// OneDrive (Microsoft identity platform) OAuth
	OneDriveClientID     string
	OneDriveClientSecret string
	OneDriveTenantID     string
	OneDriveRedirectURL  string

	// Blob storage
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	S3Bucket           string

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and a .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "aec-flow-project-hub")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("ONEDRIVE_CLIENT_ID", "")
	viper.SetDefault("ONEDRIVE_CLIENT_SECRET", "")
	viper.SetDefault("ONEDRIVE_TENANT_ID", "common")
	viper.SetDefault("ONEDRIVE_REDIRECT_URL", "")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("AWS_ACCESS_KEY_ID", "")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	viper.SetDefault("S3_BUCKET", "")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION (%q). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiry = jwtExpiry

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	refreshExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION")
	refreshExpiry, err := time.ParseDuration(refreshExpiryStr)
	if err != nil {
		refreshExpiry = time.Hour * 24 * 7
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY_DURATION (%q). Defaulting to %s.\n", refreshExpiryStr, refreshExpiry)
	}
	cfg.RefreshExpiry = refreshExpiry

	cfg.OneDriveClientID = viper.GetString("ONEDRIVE_CLIENT_ID")
	cfg.OneDriveClientSecret = viper.GetString("ONEDRIVE_CLIENT_SECRET")
	cfg.OneDriveTenantID = viper.GetString("ONEDRIVE_TENANT_ID")
	cfg.OneDriveRedirectURL = viper.GetString("ONEDRIVE_REDIRECT_URL")
	if cfg.OneDriveClientID == "" || cfg.OneDriveClientSecret == "" {
		log.Println("Warning: ONEDRIVE_CLIENT_ID/ONEDRIVE_CLIENT_SECRET not set. OneDrive sync will not function.")
	}

	cfg.AWSRegion = viper.GetString("AWS_REGION")
	cfg.AWSAccessKeyID = viper.GetString("AWS_ACCESS_KEY_ID")
	cfg.AWSSecretAccessKey = viper.GetString("AWS_SECRET_ACCESS_KEY")
	cfg.S3Bucket = viper.GetString("S3_BUCKET")
	if cfg.S3Bucket == "" {
		log.Println("Warning: S3_BUCKET not set. File uploads will not function.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
