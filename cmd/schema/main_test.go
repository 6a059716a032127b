package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSchema(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "schema.json")
		var out bytes.Buffer
		require.NoError(t, writeSchema(path, &out))
		assert.Contains(t, out.String(), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var schema map[string]any
		require.NoError(t, json.Unmarshal(data, &schema))
		assert.Equal(t, "feedrank configuration", schema["title"])
	})

	t.Run("stdout", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, writeSchema("-", &out))
		assert.Contains(t, out.String(), `"ingestion"`)
	})

	t.Run("bad path", func(t *testing.T) {
		err := writeSchema(filepath.Join(t.TempDir(), "missing", "schema.json"), &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "write schema file")
	})
}
