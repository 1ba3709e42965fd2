package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Store drivers supported by StoreDriver.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicBaseURL is prepended to object keys to build public URLs.
	// When empty, objects are served through the API's /media route.
	PublicBaseURL string
}

// SettingsConfig points at the local SQLite file holding brand settings.
type SettingsConfig struct {
	Path string
}

// UploadConfig tunes the in-memory upload progress cache.
type UploadConfig struct {
	ProgressTTL     time.Duration
	ProgressEntries int
}

// AuthConfig configures verification of identity-provider tokens.
type AuthConfig struct {
	JWTSecret string
}

// BrandConfig holds brand defaults used when nothing is persisted.
type BrandConfig struct {
	DefaultText     string
	DefaultLogoPath string
}

// ProjectConfig holds the identifiers that address the hosted backend.
type ProjectConfig struct {
	APIKey            string
	ProjectID         string
	AuthDomain        string
	StorageBucket     string
	MessagingSenderID string
	AppID             string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost     string
	Port        string
	Timezone    string
	StaticDir   string
	StoreDriver string
	// BodyLimitMB caps request bodies, multipart uploads included.
	BodyLimitMB int
	Database    DatabaseConfig
	MinIO       MinIOConfig
	Settings    SettingsConfig
	Upload      UploadConfig
	Auth        AuthConfig
	Brand       BrandConfig
	Project     ProjectConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	project := ProjectConfig{
		APIKey:            getEnv("API_KEY", ""),
		ProjectID:         getEnv("PROJECT_ID", ""),
		AuthDomain:        getEnv("AUTH_DOMAIN", ""),
		StorageBucket:     getEnv("STORAGE_BUCKET", ""),
		MessagingSenderID: getEnv("MESSAGING_SENDER_ID", ""),
		AppID:             getEnv("APP_ID", ""),
	}

	return &AppConfig{
		AppHost:     getEnv("APP_HOST", "localhost:8080"),
		Port:        getEnv("PORT", "8080"), // default only for non-sensitive value
		Timezone:    getEnv("APP_TIMEZONE", "UTC"),
		StaticDir:   getEnv("STATIC_DIR", "public"),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
		BodyLimitMB: getEnvInt("HTTP_BODY_LIMIT_MB", 64),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:      getEnv("MINIO_ENDPOINT", ""),
			AccessKey:     getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:     getEnv("MINIO_SECRET_KEY", ""),
			Bucket:        getEnv("MINIO_BUCKET", project.StorageBucket),
			UseSSL:        getEnvBool("MINIO_USE_SSL", false),
			PublicBaseURL: strings.TrimRight(getEnv("MINIO_PUBLIC_BASE_URL", ""), "/"),
		},
		Settings: SettingsConfig{
			Path: getEnv("SETTINGS_DB_PATH", "data/settings.db"),
		},
		Upload: UploadConfig{
			ProgressTTL:     getEnvDuration("UPLOAD_PROGRESS_TTL", 10*time.Minute),
			ProgressEntries: getEnvInt("UPLOAD_PROGRESS_ENTRIES", 1024),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("AUTH_JWT_SECRET", ""),
		},
		Brand: BrandConfig{
			DefaultText:     getEnv("BRAND_DEFAULT_TEXT", "YULII"),
			DefaultLogoPath: getEnv("BRAND_DEFAULT_LOGO", "/yulii-logo.png"),
		},
		Project: project,
	}
}

// Location resolves Timezone, falling back to UTC when it cannot be loaded.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Missing returns the env var names of backend identifiers that are unset
// or still hold a template placeholder.
func (p ProjectConfig) Missing() []string {
	fields := []struct {
		env   string
		value string
	}{
		{"API_KEY", p.APIKey},
		{"PROJECT_ID", p.ProjectID},
		{"AUTH_DOMAIN", p.AuthDomain},
		{"STORAGE_BUCKET", p.StorageBucket},
		{"MESSAGING_SENDER_ID", p.MessagingSenderID},
		{"APP_ID", p.AppID},
	}
	var missing []string
	for _, f := range fields {
		if isPlaceholder(f.value) {
			missing = append(missing, f.env)
		}
	}
	return missing
}

func isPlaceholder(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	switch {
	case v == "":
		return true
	case strings.HasPrefix(v, "your_"), strings.HasPrefix(v, "your-"):
		return true
	case v == "changeme", v == "replace_me":
		return true
	case strings.HasPrefix(v, "<") && strings.HasSuffix(v, ">"):
		return true
	}
	return false
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}
