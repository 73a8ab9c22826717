package testutils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// Execute runs the command with the given args and returns its trimmed output.
func Execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	c.SetOut(buf)
	c.SetErr(buf)
	c.SetArgs(args)

	err := c.Execute()

	return strings.TrimSpace(buf.String()), err
}
