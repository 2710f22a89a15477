package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingConfig(t *testing.T) {
	os.Unsetenv("VOXEL_CONFIG")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Nil(t, cfg, "Без пути и ENV конфиг должен быть nil — работаем на дефолтах")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yml")
	data := []byte(`
world:
  seed: 1337
  horizontal_chunks: 8
  height_chunks: 3
  tree_density: 0.05
server:
  metrics_port: 9100
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, int64(1337), cfg.World.GetSeed())
	assert.Equal(t, 8, cfg.World.GetHorizontalChunks())
	assert.Equal(t, 3, cfg.World.GetHeightChunks())
	assert.InDelta(t, 0.05, cfg.World.GetTreeDensity(), 1e-9)
	assert.Equal(t, 9100, cfg.Server.GetMetricsPort())

	// Не заданные в файле поля должны падать в дефолты
	assert.Equal(t, 20.0, cfg.World.GetTerrainScale())
	assert.Equal(t, 12, cfg.World.GetSeaLevel())
}

func TestDefaults(t *testing.T) {
	var w WorldConfig
	assert.Equal(t, int64(42), w.GetSeed())
	assert.Equal(t, 4, w.GetHorizontalChunks())
	assert.Equal(t, 2, w.GetHeightChunks())
	assert.Equal(t, 100.0, w.GetBiomeScale())

	os.Unsetenv("VOXEL_METRICS_PORT")
	var s ServerConfig
	assert.Equal(t, 2112, s.GetMetricsPort())
}

func TestMetricsPortEnvFallback(t *testing.T) {
	os.Setenv("VOXEL_METRICS_PORT", "9999")
	defer os.Unsetenv("VOXEL_METRICS_PORT")

	var s ServerConfig
	assert.Equal(t, 9999, s.GetMetricsPort(), "ENV должен перекрывать дефолт")

	s.MetricsPort = 8000
	assert.Equal(t, 8000, s.GetMetricsPort(), "Конфиг должен перекрывать ENV")
}

func TestLoadBrokenYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("world: [not a map"), 0644))

	_, err := Load(path)
	assert.Error(t, err, "Битый YAML должен приводить к ошибке при старте")
}
