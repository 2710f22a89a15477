package config

import (
	"io/ioutil"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации движка.
// Содержит параметры мира и сервисные настройки; может расширяться.

type Config struct {
	World  WorldConfig  `yaml:"world"`
	Server ServerConfig `yaml:"server"`
}

type WorldConfig struct {
	Seed             int64   `yaml:"seed"`
	HorizontalChunks int     `yaml:"horizontal_chunks"` // Горизонтальный размер мира в чанках
	HeightChunks     int     `yaml:"height_chunks"`     // Вертикальный размер мира в чанках
	TerrainScale     float64 `yaml:"terrain_scale"`     // Масштаб высотного шума
	BiomeScale       float64 `yaml:"biome_scale"`       // Масштаб биомного шума
	TreeDensity      float64 `yaml:"tree_density"`      // Вероятность дерева на травяной колонке
	SeaLevel         int     `yaml:"sea_level"`         // Уровень моря в мировых координатах Y
}

type ServerConfig struct {
	MetricsPort int `yaml:"metrics_port"`
}

// GetSeed возвращает сид мира; нулевое значение заменяется дефолтным
func (w *WorldConfig) GetSeed() int64 {
	if w.Seed != 0 {
		return w.Seed
	}
	return 42 // Фиксированный сид по умолчанию — воспроизводимый рельеф
}

// GetHorizontalChunks возвращает горизонтальный размер мира в чанках
func (w *WorldConfig) GetHorizontalChunks() int {
	if w.HorizontalChunks > 0 {
		return w.HorizontalChunks
	}
	return 4
}

// GetHeightChunks возвращает вертикальный размер мира в чанках
func (w *WorldConfig) GetHeightChunks() int {
	if w.HeightChunks > 0 {
		return w.HeightChunks
	}
	return 2
}

// GetTerrainScale возвращает масштаб высотного шума
func (w *WorldConfig) GetTerrainScale() float64 {
	if w.TerrainScale > 0 {
		return w.TerrainScale
	}
	return 20.0
}

// GetBiomeScale возвращает масштаб биомного шума
func (w *WorldConfig) GetBiomeScale() float64 {
	if w.BiomeScale > 0 {
		return w.BiomeScale
	}
	return 100.0
}

// GetTreeDensity возвращает вероятность дерева на подходящей колонке
func (w *WorldConfig) GetTreeDensity() float64 {
	if w.TreeDensity > 0 {
		return w.TreeDensity
	}
	return 0.02
}

// GetSeaLevel возвращает уровень моря
func (w *WorldConfig) GetSeaLevel() int {
	if w.SeaLevel > 0 {
		return w.SeaLevel
	}
	return 12
}

// GetMetricsPort возвращает порт метрик с приоритетом: config -> env -> default
func (s *ServerConfig) GetMetricsPort() int {
	if s.MetricsPort > 0 {
		return s.MetricsPort
	}

	if envVal := os.Getenv("VOXEL_METRICS_PORT"); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return 2112
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV VOXEL_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("VOXEL_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
