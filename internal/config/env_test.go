package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("ROCKFALL_TEST_VALUE", "hello")
	assert.Equal(t, "hello", GetEnv("ROCKFALL_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("ROCKFALL_TEST_UNSET", "fallback"))
}

func TestGetEnvEmptyIsSet(t *testing.T) {
	t.Setenv("ROCKFALL_TEST_EMPTY", "")
	assert.Equal(t, "", GetEnv("ROCKFALL_TEST_EMPTY", "fallback"))
}

func TestGetEnvUint64(t *testing.T) {
	t.Setenv("ROCKFALL_TEST_SEED", "18446744073709551615")
	t.Setenv("ROCKFALL_TEST_NEG", "-1")

	assert.Equal(t, uint64(18446744073709551615), GetEnvUint64("ROCKFALL_TEST_SEED", 1))
	assert.Equal(t, uint64(1), GetEnvUint64("ROCKFALL_TEST_NEG", 1))
	assert.Equal(t, uint64(1), GetEnvUint64("ROCKFALL_TEST_UNSET", 1))
}

func TestLoadMissingFileIsIgnored(t *testing.T) {
	require.NoError(t, Load(filepath.Join(t.TempDir(), "missing.env")))
}

func TestLoadDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ROCKFALL_TEST_DOTENV=from-file\nROCKFALL_TEST_KEEP=from-file\n"), 0o600))

	t.Setenv("ROCKFALL_TEST_KEEP", "from-env")
	// Registers cleanup for the key Load is about to set.
	t.Setenv("ROCKFALL_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("ROCKFALL_TEST_DOTENV"))

	require.NoError(t, Load(path))
	assert.Equal(t, "from-file", os.Getenv("ROCKFALL_TEST_DOTENV"))
	assert.Equal(t, "from-env", os.Getenv("ROCKFALL_TEST_KEEP"))
}

func TestNewLoggerLevel(t *testing.T) {
	t.Setenv("ROCKFALL_LOG_LEVEL", "debug")
	assert.Equal(t, log.DebugLevel, NewLogger(io.Discard, "test").GetLevel())

	t.Setenv("ROCKFALL_LOG_LEVEL", "nonsense")
	assert.Equal(t, log.InfoLevel, NewLogger(io.Discard, "test").GetLevel())
}

func TestOpenLogFile(t *testing.T) {
	t.Setenv("ROCKFALL_LOG", "")
	w, closeFn, err := OpenLogFile()
	require.NoError(t, err)
	assert.Equal(t, io.Discard, w)
	require.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "rockfall.log")
	t.Setenv("ROCKFALL_LOG", path)
	w, closeFn, err = OpenLogFile()
	require.NoError(t, err)

	NewLogger(w, "test").Info("hello")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
