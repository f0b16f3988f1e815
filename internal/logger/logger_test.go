package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	l, err := New(Config{Level: "warn", OutputPaths: []string{path}})
	require.NoError(t, err)

	l.Infof("%v: %v", "skipped", "below level")
	l.Warnf("%v: %v", "978-0-471-11709-5", "invalid checksum")
	_ = l.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "skipped")
	assert.Contains(t, string(b), "978-0-471-11709-5: invalid checksum")
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestSetup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	done, err := Setup(Config{Level: "debug", Development: true, OutputPaths: []string{path}})
	require.NoError(t, err)

	zap.S().Debugw("ranges loaded", "file", "isbn.dat")
	done()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "ranges loaded")
}
