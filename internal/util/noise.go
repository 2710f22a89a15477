package util

import (
	"fmt"

	"github.com/aquilax/go-perlin"
)

// NoiseParams задает параметры когерентного шума
type NoiseParams struct {
	Octaves     int     // Количество октав
	Persistence float64 // Затухание амплитуды между октавами
	Lacunarity  float64 // Рост частоты между октавами
}

// DefaultNoiseParams — параметры генерации рельефа по умолчанию
func DefaultNoiseParams() NoiseParams {
	return NoiseParams{Octaves: 6, Persistence: 0.5, Lacunarity: 2.0}
}

// Noise2D — детерминированный двумерный источник шума Перлина.
// В отличие от глобального генератора, каждый экземпляр несет свой сид,
// поэтому высотный и биомный шум не мешают друг другу.
type Noise2D struct {
	p *perlin.Perlin
}

// NewNoise2D создает источник шума с указанным сидом и параметрами.
// Ошибка параметров — это ошибка конфигурации, она проявляется один раз при старте.
func NewNoise2D(seed int64, params NoiseParams) (*Noise2D, error) {
	if params.Octaves <= 0 {
		return nil, fmt.Errorf("некорректное число октав: %d", params.Octaves)
	}
	if params.Persistence <= 0 || params.Lacunarity <= 0 {
		return nil, fmt.Errorf("persistence и lacunarity должны быть положительными: %+v", params)
	}

	// В go-perlin alpha — обратное затухание амплитуды (1/persistence),
	// beta — множитель частоты между октавами
	alpha := 1.0 / params.Persistence
	beta := params.Lacunarity

	return &Noise2D{
		p: perlin.NewPerlin(alpha, beta, int32(params.Octaves), seed),
	}, nil
}

// At возвращает значение шума в точке (x, y), примерно в диапазоне [-1, 1]
func (n *Noise2D) At(x, y float64) float64 {
	v := n.p.Noise2D(x, y)
	// Сумма октав может слегка выйти за [-1,1]
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return v
}
