package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/timesheets/internal/client/config"
	"github.com/dmitrijs2005/timesheets/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestRun_StartupFailureExitsNonZero(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SessionDB = filepath.Join(t.TempDir(), "missing", "session.db")

	var stderr bytes.Buffer
	code := run(cfg, logging.Nop(), &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "timesheets:")
}
