package logging

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, time.UTC)

	logger.Warn("db_migration_skip", "component", "database")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "db_migration_skip", entry["msg"])
	assert.Equal(t, "database", entry["component"])
	assert.NotContains(t, entry, "time")

	ts, ok := entry["ts"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339Nano, ts)
	assert.NoError(t, err)
}

func TestNew_NilLocation(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, nil).Error("boom")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
}
