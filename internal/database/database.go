package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/XSAM/otelsql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	_ "modernc.org/sqlite"

	"blogapi/internal/config"
)

// ApplicationName tags every Postgres session opened by this service.
const ApplicationName = "blogapi"

const pingTimeout = 5 * time.Second

var sqlOpen = sql.Open

// BuildPostgresDSN renders c as a postgres:// URL. The change feed listener
// dials the same DSN, so both connections show up under ApplicationName.
func BuildPostgresDSN(c config.DatabaseConfig) (string, error) {
	if c.Host == "" || c.Port == "" || c.User == "" || c.Name == "" {
		return "", fmt.Errorf("invalid database config: host, port, user, and name are required")
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   c.Host + ":" + c.Port,
		Path:   c.Name,
		User:   url.User(c.User),
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}

	q := url.Values{"application_name": {ApplicationName}}
	if c.SSLMode != "" {
		q.Set("sslmode", c.SSLMode)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// NewPostgres opens the document store pool through the pgx driver.
func NewPostgres(c config.DatabaseConfig) (*sql.DB, error) {
	dsn, err := BuildPostgresDSN(c)
	if err != nil {
		return nil, err
	}

	db, err := open("pgx", dsn, semconv.DBSystemPostgreSQL)
	if err != nil {
		return nil, err
	}

	if c.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.MaxIdleConns)
	}
	if c.ConnMaxLifetimeSec > 0 {
		db.SetConnMaxLifetime(time.Duration(c.ConnMaxLifetimeSec) * time.Second)
	}

	return verify(db)
}

// NewSQLite opens the settings database at path, creating its directory.
// SQLite has a single writer, so the pool holds one connection.
func NewSQLite(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create settings dir: %w", err)
		}
	}

	db, err := open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", semconv.DBSystemSqlite)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	return verify(db)
}

// open wraps driver with otelsql so every query gets a span.
func open(driver, dsn string, system attribute.KeyValue) (*sql.DB, error) {
	name, err := otelsql.Register(driver,
		otelsql.WithAttributes(system),
		otelsql.WithSQLCommenter(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register otelsql: %w", err)
	}

	db, err := sqlOpen(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	return db, nil
}

func verify(db *sql.DB) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}
