package log

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	defer func() { dbPathFunc = origDBPath }()

	t.Run("open and close", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		SetTables("/home/user/.wistopics/wis2-topic-hierarchy")

		Event("topic:validate", "validate").
			Topic("cache/a/wis2").
			Detail("strict", true).
			Detail("valid", true).
			Write(nil)

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var source, action, topic string
		var success int
		err = db.QueryRow("SELECT source, action, topic, success FROM log WHERE id = 1").
			Scan(&source, &action, &topic, &success)
		require.NoError(t, err)
		assert.Equal(t, "topic:validate", source)
		assert.Equal(t, "validate", action)
		assert.Equal(t, "cache/a/wis2", topic)
		assert.Equal(t, 1, success)
	})

	t.Run("log error entry", func(t *testing.T) {
		err := Open()
		require.NoError(t, err)
		defer Close()

		Event("topic:list", "list").
			Topic("invalid.topic").
			Write(assert.AnError)

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var success int
		var errMsg string
		err = db.QueryRow("SELECT success, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.NotEmpty(t, errMsg)
	})

	t.Run("log without open is a no-op", func(t *testing.T) {
		Close()
		Log(Entry{Source: "topic:validate", Action: "validate"})
	})
}
