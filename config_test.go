package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "altmood.db", filepath.Base(cfg.StorePath))
	assert.Equal(t, "altmood.db", cfg.TemplatePath)
	assert.Equal(t, "2006-01-02", cfg.DateFormat)
	assert.Equal(t, "15:04", cfg.TimeFormat)
}

func TestDataDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	assert.Equal(t, filepath.Join("/tmp/xdg-data", "altmood"), dataDir())
}
