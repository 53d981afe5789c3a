package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carousel/internal/config"
)

func TestLoadOrCreateConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", config.FileName)
	svc := config.NewConfigServiceAt(path)

	cfg, err := loadOrCreateConfig(svc, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadOrCreateConfigOverridesResetIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	svc := config.NewConfigServiceAt(path)

	saved := config.DefaultConfig()
	saved.Carousel.CurrentIndex = 6
	require.NoError(t, svc.Save(saved))

	cfg, err := loadOrCreateConfig(svc, 12, 4)
	require.NoError(t, err)
	assert.Equal(t, config.Carousel{ItemsTotal: 12, ItemsPerView: 4, CurrentIndex: 0}, cfg.Carousel)

	reloaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.Carousel, reloaded.Carousel)
}

func TestLoadOrCreateConfigKeepsExistingIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	svc := config.NewConfigServiceAt(path)

	saved := config.DefaultConfig()
	saved.Carousel.CurrentIndex = 3
	require.NoError(t, svc.Save(saved))

	cfg, err := loadOrCreateConfig(svc, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Carousel.CurrentIndex)
}

func TestLoadOrCreateConfigRejectsInvalidOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	svc := config.NewConfigServiceAt(path)

	_, err := loadOrCreateConfig(svc, 2, 5)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoadOrCreateConfigRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("[carousel\n"), 0644))

	_, err := loadOrCreateConfig(config.NewConfigServiceAt(path), 0, 0)
	assert.Error(t, err)

	// The broken file is left for the user to fix
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[carousel\n", string(data))
}
