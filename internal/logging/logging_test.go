package logging_test

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/strohs/minesweeper/internal/logging"
)

func TestNewDevelopment(t *testing.T) {
	t.Parallel()

	log, err := logging.New(true, "")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
	assert.Empty(t, log.Hooks[logrus.InfoLevel])
}

func TestNewProduction(t *testing.T) {
	t.Parallel()

	log, err := logging.New(false, "")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestNewWithLogFile(t *testing.T) {
	t.Parallel()

	logFile := filepath.Join(t.TempDir(), "minesweeper.log")
	log, err := logging.New(false, logFile)
	require.NoError(t, err)
	assert.NotEmpty(t, log.Hooks[logrus.InfoLevel])
}
