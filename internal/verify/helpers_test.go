package verify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFixtureFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "fixtures.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
