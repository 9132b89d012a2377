package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedFiles(t *testing.T) {
	entries, err := fs.ReadDir(files, "sql")
	require.NoError(t, err)

	var up, down int
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			up++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			down++
		}
	}

	assert.Positive(t, up)
	assert.Equal(t, up, down)
}

func TestInitSchema_CounterConstraints(t *testing.T) {
	body, err := fs.ReadFile(files, "sql/000001_init_schema.up.sql")
	require.NoError(t, err)

	schema := string(body)
	assert.Contains(t, schema, "appointment TIMESTAMPTZ NOT NULL UNIQUE")
	assert.Contains(t, schema, "CHECK (counter >= 0)")
}
