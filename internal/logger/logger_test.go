package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test", log.InfoLevel)

	l.Debug("hidden")
	l.Info("lookup applied", "query", "ban")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "lookup applied")
	assert.Contains(t, out, "query=ban")
	assert.Contains(t, out, "test")
}

func TestSetupWritesToFile(t *testing.T) {
	defer log.SetDefault(log.New(os.Stderr))

	path := filepath.Join(t.TempDir(), "typeahead.log")
	closeFn, err := Setup(path, "debug")
	require.NoError(t, err)

	log.Debug("state changed", "from", "idle", "to", "debouncing")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "state changed")
}

func TestSetupRejectsBadLevel(t *testing.T) {
	_, err := Setup("", "loud")
	assert.Error(t, err)
}

func TestSetupWithoutFile(t *testing.T) {
	defer log.SetDefault(log.New(os.Stderr))

	closeFn, err := Setup("", "info")
	require.NoError(t, err)
	assert.NoError(t, closeFn())
}
