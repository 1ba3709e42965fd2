package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("MINIO_PUBLIC_BASE_URL", "https://cdn.example.com/blog/")
	t.Setenv("STORE_DRIVER", "MEMORY")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "https://cdn.example.com/blog", cfg.MinIO.PublicBaseURL)
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, "YULII", cfg.Brand.DefaultText)
	assert.Equal(t, "/yulii-logo.png", cfg.Brand.DefaultLogoPath)
	assert.Equal(t, 64, cfg.BodyLimitMB)
}

func TestLoad_BucketFallsBackToStorageBucket(t *testing.T) {
	t.Setenv("MINIO_BUCKET", "")
	t.Setenv("STORAGE_BUCKET", "blog-assets")

	cfg := Load()

	assert.Equal(t, "blog-assets", cfg.MinIO.Bucket)
	assert.Equal(t, "blog-assets", cfg.Project.StorageBucket)
}

func TestLocation(t *testing.T) {
	cfg := &AppConfig{Timezone: "UTC"}
	assert.Equal(t, "UTC", cfg.Location().String())

	cfg.Timezone = "Not/AZone"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestProjectConfig_Missing(t *testing.T) {
	tests := []struct {
		name string
		cfg  ProjectConfig
		want []string
	}{
		{
			name: "all set",
			cfg: ProjectConfig{
				APIKey:            "AIza-key",
				ProjectID:         "blog-prod",
				AuthDomain:        "blog-prod.auth.example.com",
				StorageBucket:     "blog-prod-assets",
				MessagingSenderID: "907465",
				AppID:             "1:907465:web:7e6e",
			},
			want: nil,
		},
		{
			name: "placeholders and blanks",
			cfg: ProjectConfig{
				APIKey:            "your_api_key_here",
				ProjectID:         "your_project_id",
				AuthDomain:        "blog-prod.auth.example.com",
				StorageBucket:     "",
				MessagingSenderID: "<sender>",
				AppID:             "changeme",
			},
			want: []string{"API_KEY", "PROJECT_ID", "STORAGE_BUCKET", "MESSAGING_SENDER_ID", "APP_ID"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Missing())
		})
	}
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvDuration(t *testing.T) {
	key := "TEST_DURATION_VAR"

	t.Setenv(key, "90s")
	assert.Equal(t, 90*time.Second, getEnvDuration(key, time.Minute))

	t.Setenv(key, "soon")
	assert.Equal(t, time.Minute, getEnvDuration(key, time.Minute))
}
