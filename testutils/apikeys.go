package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteAPIKeysFile writes an API keys file with one line per entry and returns
// its path.
func WriteAPIKeysFile(t *testing.T, dir string, lines ...string) string {
	t.Helper()

	path := filepath.Join(dir, "ihealth.apitokens")
	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600)
	require.NoError(t, err)

	return path
}
