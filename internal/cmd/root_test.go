package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonoton/go-circbuf/internal/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := New()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRoot(t *testing.T) {
	t.Run("Stdin with default lines", func(t *testing.T) {
		var in strings.Builder
		for i := 1; i <= 15; i++ {
			in.WriteString(strings.Repeat("x", i) + "\n")
		}
		out, err := execute(t, in.String())
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, 10)
		assert.Equal(t, strings.Repeat("x", 6), lines[0])
		assert.Equal(t, strings.Repeat("x", 15), lines[9])
	})

	t.Run("Lines and reverse", func(t *testing.T) {
		out, err := execute(t, "a\nb\nc\nd\n", "-n", "2", "--reverse")
		require.NoError(t, err)
		assert.Equal(t, "d\nc\n", out)
	})

	t.Run("Sort with numbers", func(t *testing.T) {
		out, err := execute(t, "c\na\nb\n", "-n", "3", "-s", "-N")
		require.NoError(t, err)
		assert.Equal(t, "2  a\n3  b\n1  c\n", out)
	})

	t.Run("Multiple files", func(t *testing.T) {
		first := writeFile(t, "first.log", "1\n2\n3\n")
		second := writeFile(t, "second.log", "x\ny\n")

		out, err := execute(t, "", "-n", "2", first, second)
		require.NoError(t, err)
		assert.Equal(t, "==> "+first+" <==\n2\n3\n\n==> "+second+" <==\nx\ny\n", out)
	})

	t.Run("Config file", func(t *testing.T) {
		cfgPath := writeFile(t, "ringtail.yaml", "lines: 1\nformat: json\n")
		out, err := execute(t, "a\nb\n", "--config", cfgPath)
		require.NoError(t, err)
		assert.Contains(t, out, `"text": "b"`)
		assert.NotContains(t, out, `"text": "a"`)
	})

	t.Run("Flag overrides config file", func(t *testing.T) {
		cfgPath := writeFile(t, "ringtail.yaml", "lines: 1\n")
		out, err := execute(t, "a\nb\n", "--config", cfgPath, "-n", "2")
		require.NoError(t, err)
		assert.Equal(t, "a\nb\n", out)
	})

	t.Run("Invalid capacity", func(t *testing.T) {
		_, err := execute(t, "a\n", "-n", "0")
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := execute(t, "", filepath.Join(t.TempDir(), "missing.log"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}
