package complete

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWords(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newTestCmd() (*cmd, *cli.MockUi) {
	ui := cli.NewMockUi()
	c := New(ui)
	c.dict.LogOutput = io.Discard
	return c, ui
}

func TestCompleteCommand_noTabs(t *testing.T) {
	t.Parallel()
	if strings.ContainsRune(New(cli.NewMockUi()).Help(), '\t') {
		t.Fatal("help has tabs")
	}
}

func TestCompleteCommand(t *testing.T) {
	path := writeWords(t, "cat\tA\ncar\tB\ncard\tC\ndog\tD\n")

	t.Run("Prefix", func(t *testing.T) {
		c, ui := newTestCmd()
		code := c.Run([]string{"-words", path, "ca"})
		require.Equal(t, 0, code, ui.ErrorWriter.String())
		assert.Equal(t, "car\tB\ncard\tC\ncat\tA\n", ui.OutputWriter.String())
	})

	t.Run("No prefix lists everything", func(t *testing.T) {
		c, ui := newTestCmd()
		code := c.Run([]string{"-words", path})
		require.Equal(t, 0, code, ui.ErrorWriter.String())
		assert.Equal(t, "car\tB\ncard\tC\ncat\tA\ndog\tD\n", ui.OutputWriter.String())
	})

	t.Run("Limit", func(t *testing.T) {
		c, ui := newTestCmd()
		code := c.Run([]string{"-words", path, "-limit", "2", "c"})
		require.Equal(t, 0, code, ui.ErrorWriter.String())
		assert.Equal(t, "car\tB\ncard\tC\n", ui.OutputWriter.String())
	})

	t.Run("No match", func(t *testing.T) {
		c, ui := newTestCmd()
		code := c.Run([]string{"-words", path, "x"})
		require.Equal(t, 0, code)
		assert.Empty(t, ui.OutputWriter.String())
	})

	t.Run("Ignore case", func(t *testing.T) {
		c, ui := newTestCmd()
		code := c.Run([]string{"-words", path, "-ignore-case", "DO"})
		require.Equal(t, 0, code, ui.ErrorWriter.String())
		assert.Equal(t, "dog\tD\n", ui.OutputWriter.String())
	})

	t.Run("Missing words flag", func(t *testing.T) {
		c, ui := newTestCmd()
		code := c.Run([]string{"ca"})
		assert.Equal(t, 1, code)
		assert.Contains(t, ui.ErrorWriter.String(), "missing -words")
	})

	t.Run("Too many arguments", func(t *testing.T) {
		c, ui := newTestCmd()
		code := c.Run([]string{"-words", path, "a", "b"})
		assert.Equal(t, 1, code)
		assert.Contains(t, ui.ErrorWriter.String(), "Too many arguments")
	})

	t.Run("Invalid log level", func(t *testing.T) {
		c, ui := newTestCmd()
		code := c.Run([]string{"-words", path, "-log-level", "loud"})
		assert.Equal(t, 1, code)
		assert.Contains(t, ui.ErrorWriter.String(), "invalid log level")
	})
}
