package main

import (
	"bytes"
	"os"
	"path/filepath"
	"ptable/config"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(&cfg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func defaultConfig() config.Config {
	return config.Config{QuitKeys: "qQ", TerminalMode: "unicode"}
}

func TestCheck(t *testing.T) {
	out, err := execute(t, defaultConfig(), "--check")
	require.NoError(t, err)
	assert.Equal(t, "ok: 118 elements placed on a 9x18 grid\n", out)
}

func TestCheck_BadData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"AtomicNumber,Element,Symbol,Period,Group,Type\n"+
			"1,Hydrogen,H,1,1,Nonmetal\n"+
			"2,Helium,He,1,1,Noble Gas\n"), 0o644))

	_, err := execute(t, defaultConfig(), "--check", "--data", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "place "+path)
	assert.Contains(t, err.Error(), "He")
}

func TestCheck_MissingData(t *testing.T) {
	_, err := execute(t, defaultConfig(), "--check", "--data", filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPrint(t *testing.T) {
	out, err := execute(t, defaultConfig(), "--print", "--focus", "26")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 54)
	assert.True(t, strings.HasPrefix(lines[0], "╭──────────╮"))
	assert.Contains(t, out, "Fe  Iron")
	assert.Contains(t, out, "╔══════════╗")
}

func TestPrint_ASCII(t *testing.T) {
	out, err := execute(t, defaultConfig(), "--print", "--mode", "ascii")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "+----------+"))
	assert.NotContains(t, out, "Atomic number:")
}

func TestPrint_UnknownFocus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"AtomicNumber,Element,Symbol,Period,Group,Type\n"+
			"1,Hydrogen,H,1,1,Nonmetal\n"), 0o644))

	_, err := execute(t, defaultConfig(), "--print", "--data", path, "--focus", "2")
	assert.EqualError(t, err, "element 2 is not on the table")
}

func TestPrint_Theme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte("box = \"ascii\"\n"), 0o644))

	out, err := execute(t, defaultConfig(), "--print", "--theme", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "+----------+"))

	require.NoError(t, os.WriteFile(path, []byte("box = \"dotted\"\n"), 0o644))
	_, err = execute(t, defaultConfig(), "--print", "--theme", path)
	assert.ErrorContains(t, err, `unknown box style "dotted"`)
}

func TestWriteTheme(t *testing.T) {
	out, err := execute(t, defaultConfig(), "--write-theme")
	require.NoError(t, err)
	assert.Contains(t, out, `box = "rounded"`)
	assert.Contains(t, out, `"Noble Gas" = `)
}

func TestExclusiveFlags(t *testing.T) {
	_, err := execute(t, defaultConfig(), "--print", "--check")
	assert.Error(t, err)
}

func TestInvalidMode(t *testing.T) {
	_, err := execute(t, defaultConfig(), "--print", "--mode", "vt100")
	assert.ErrorIs(t, err, config.ErrTerminalMode)
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ptable.log")
	_, err := execute(t, defaultConfig(), "--check", "--debug", "--log-file", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=DEBUG msg=\"elements loaded\"")
	assert.Contains(t, string(data), "msg=\"table placed\"")
}

func TestPrint_Color(t *testing.T) {
	plain, err := execute(t, defaultConfig(), "--print")
	require.NoError(t, err)
	assert.NotContains(t, plain, "\033[")

	colored, err := execute(t, defaultConfig(), "--print", "--color")
	require.NoError(t, err)
	assert.Contains(t, colored, "\033[38;2;")
	assert.Contains(t, colored, "\033[0m")
}
