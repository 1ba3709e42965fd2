package database

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"blogapi/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPostgresDSN(t *testing.T) {
	base := config.DatabaseConfig{Host: "db", Port: "5432", User: "blog", Name: "blog"}

	tests := []struct {
		name    string
		mutate  func(c *config.DatabaseConfig)
		want    string
		wantErr bool
	}{
		{
			name:   "password and sslmode",
			mutate: func(c *config.DatabaseConfig) { c.Password = "s3cret"; c.SSLMode = "disable" },
			want:   "postgres://blog:s3cret@db:5432/blog?application_name=blogapi&sslmode=disable",
		},
		{
			name: "no password no sslmode",
			want: "postgres://blog@db:5432/blog?application_name=blogapi",
		},
		{
			name:   "password is escaped",
			mutate: func(c *config.DatabaseConfig) { c.Password = "p@ss/word" },
			want:   "postgres://blog:p%40ss%2Fword@db:5432/blog?application_name=blogapi",
		},
		{name: "missing host", mutate: func(c *config.DatabaseConfig) { c.Host = "" }, wantErr: true},
		{name: "missing port", mutate: func(c *config.DatabaseConfig) { c.Port = "" }, wantErr: true},
		{name: "missing user", mutate: func(c *config.DatabaseConfig) { c.User = "" }, wantErr: true},
		{name: "missing name", mutate: func(c *config.DatabaseConfig) { c.Name = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			if tt.mutate != nil {
				tt.mutate(&c)
			}
			got, err := BuildPostgresDSN(c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPostgres(t *testing.T) {
	conf := config.DatabaseConfig{
		Host:               "localhost",
		Port:               "5432",
		User:               "user",
		Password:           "pass",
		Name:               "dbname",
		MaxOpenConns:       10,
		MaxIdleConns:       5,
		ConnMaxLifetimeSec: 300,
	}

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		origSqlOpen := sqlOpen
		sqlOpen = func(driverName, dataSourceName string) (*sql.DB, error) {
			return db, nil
		}
		defer func() { sqlOpen = origSqlOpen }()

		mock.ExpectPing()

		gotDB, err := NewPostgres(conf)
		assert.NoError(t, err)
		assert.NotNil(t, gotDB)
		assert.Equal(t, 10, gotDB.Stats().MaxOpenConnections)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sqlOpen error", func(t *testing.T) {
		origSqlOpen := sqlOpen
		sqlOpen = func(driverName, dataSourceName string) (*sql.DB, error) {
			return nil, errors.New("open error")
		}
		defer func() { sqlOpen = origSqlOpen }()

		gotDB, err := NewPostgres(conf)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "sql open: open error")
		assert.Nil(t, gotDB)
	})

	t.Run("ping error", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)

		origSqlOpen := sqlOpen
		sqlOpen = func(driverName, dataSourceName string) (*sql.DB, error) {
			return db, nil
		}
		defer func() { sqlOpen = origSqlOpen }()

		mock.ExpectPing().WillReturnError(errors.New("ping failed"))

		gotDB, err := NewPostgres(conf)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "db ping: ping failed")
		assert.Nil(t, gotDB)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid DSN", func(t *testing.T) {
		invalidConf := config.DatabaseConfig{}
		gotDB, err := NewPostgres(invalidConf)
		assert.Error(t, err)
		assert.Nil(t, gotDB)
	})
}

func TestNewSQLite(t *testing.T) {
	t.Run("creates file and directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "settings.db")

		db, err := NewSQLite(path)
		require.NoError(t, err)
		defer db.Close()

		_, err = db.Exec(`CREATE TABLE t (k TEXT)`)
		assert.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("single connection", func(t *testing.T) {
		db, err := NewSQLite(filepath.Join(t.TempDir(), "settings.db"))
		require.NoError(t, err)
		defer db.Close()

		assert.Equal(t, 1, db.Stats().MaxOpenConnections)
	})

	t.Run("empty path", func(t *testing.T) {
		db, err := NewSQLite("")
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}
