package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/fitlog/internal/logging"
)

func TestSetup_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitlog.log")
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
	})

	closeLog, err := logging.Setup(logging.Options{Level: "debug", File: path})
	require.NoError(t, err)

	assert.Equal(t, log.DebugLevel, log.GetLevel())
	log.WithField("op", "test").Debug("hello from test")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), "op=test")
}

func TestSetup_InvalidLevel(t *testing.T) {
	_, err := logging.Setup(logging.Options{Level: "loud"})
	assert.Error(t, err)
}

func TestSetup_DefaultLevel(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	closeLog, err := logging.Setup(logging.Options{})
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, log.GetLevel())
	assert.NoError(t, closeLog())
}
