package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoiseDeterminism(t *testing.T) {
	// Один и тот же сид обязан давать одинаковый шум при каждом запуске
	n1, err := NewNoise2D(42, DefaultNoiseParams())
	require.NoError(t, err)
	n2, err := NewNoise2D(42, DefaultNoiseParams())
	require.NoError(t, err)

	for x := -10; x <= 10; x++ {
		for y := -10; y <= 10; y++ {
			fx, fy := float64(x)/20.0, float64(y)/20.0
			assert.Equal(t, n1.At(fx, fy), n2.At(fx, fy),
				"Шум с одинаковым сидом должен совпадать в точке (%v, %v)", fx, fy)
		}
	}
}

func TestNoiseRange(t *testing.T) {
	n, err := NewNoise2D(7, DefaultNoiseParams())
	require.NoError(t, err)

	for x := -50; x <= 50; x++ {
		v := n.At(float64(x)/13.0, float64(-x)/17.0)
		assert.GreaterOrEqual(t, v, -1.0, "Шум не должен быть меньше -1")
		assert.LessOrEqual(t, v, 1.0, "Шум не должен быть больше 1")
	}
}

func TestNoiseDifferentSeeds(t *testing.T) {
	n1, err := NewNoise2D(1, DefaultNoiseParams())
	require.NoError(t, err)
	n2, err := NewNoise2D(2, DefaultNoiseParams())
	require.NoError(t, err)

	// Разные сиды должны давать разные поля хотя бы в одной из точек
	differs := false
	for x := 1; x <= 20 && !differs; x++ {
		if n1.At(float64(x)/7.0, 0.3) != n2.At(float64(x)/7.0, 0.3) {
			differs = true
		}
	}
	assert.True(t, differs, "Шум с разными сидами не должен полностью совпадать")
}

func TestNoiseInvalidParams(t *testing.T) {
	_, err := NewNoise2D(1, NoiseParams{Octaves: 0, Persistence: 0.5, Lacunarity: 2.0})
	assert.Error(t, err, "Нулевое число октав — ошибка конфигурации")

	_, err = NewNoise2D(1, NoiseParams{Octaves: 3, Persistence: -1, Lacunarity: 2.0})
	assert.Error(t, err, "Отрицательный persistence — ошибка конфигурации")
}
