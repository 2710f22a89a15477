package world

import (
	"math"
	"math/rand"
	"time"

	"github.com/annel0/voxel-engine/internal/util"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// Константы рельефа
const (
	baseHeight     = 16 // Средний уровень поверхности
	heightSpan     = 10 // Амплитуда рельефа: высоты в диапазоне ~[6, 26]
	dirtDepth      = 4  // Толщина слоя земли под поверхностью
	bedrockMixMaxY = 5  // Ниже этой высоты — вероятностная смесь бедрока и камня
)

// Климатические пороги для выбора поверхностного блока
const (
	snowTemperature  = 0.2  // Холоднее — снег
	coldTemperature  = 0.3  // Холоднее — камень вместо земли под поверхностью
	desertTemp       = 0.75 // Жарче и суше — песок
	desertMoisture   = 0.3
)

// TerrainGenerator генерирует ландшафт мира.
// Высотный и биомный шум детерминированы сидом мира; декоративная
// случайность (смесь бедрока, посадка деревьев) идет из отдельного
// источника, по умолчанию засеянного часами. Эта асимметрия намеренная:
// рельеф воспроизводим, украшения — нет, если сид декора не задан явно.
type TerrainGenerator struct {
	Seed         int64
	TerrainScale float64 // Масштаб высотного шума
	BiomeScale   float64 // Масштаб биомного шума (грубее рельефного)
	TreeDensity  float64 // Вероятность дерева на травяной колонке
	SeaLevel     int     // Вода заполняет пустоты не выше этого уровня

	heightNoise *util.Noise2D
	biomeNoise  *util.Noise2D
	deco        *rand.Rand
}

// NewTerrainGenerator создаёт генератор с указанным сидом.
// Ошибка параметров шума — ошибка конфигурации, возвращается один раз при старте.
func NewTerrainGenerator(seed int64, terrainScale, biomeScale, treeDensity float64, seaLevel int) (*TerrainGenerator, error) {
	heightNoise, err := util.NewNoise2D(seed, util.DefaultNoiseParams())
	if err != nil {
		return nil, err
	}

	// Биомное поле — другой сид, чтобы не коррелировало с рельефом
	biomeNoise, err := util.NewNoise2D(seed+42, util.DefaultNoiseParams())
	if err != nil {
		return nil, err
	}

	return &TerrainGenerator{
		Seed:         seed,
		TerrainScale: terrainScale,
		BiomeScale:   biomeScale,
		TreeDensity:  treeDensity,
		SeaLevel:     seaLevel,
		heightNoise:  heightNoise,
		biomeNoise:   biomeNoise,
		deco:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// SetDecorationSeed фиксирует сид декоративной случайности.
// Нужен тестам, которым требуется полное по-блочное равенство миров.
func (tg *TerrainGenerator) SetDecorationSeed(seed int64) {
	tg.deco = rand.New(rand.NewSource(seed))
}

// HeightAt возвращает высоту поверхности для мировой колонки (x, z).
// Детерминирована сидом: одинакова при каждом запуске.
func (tg *TerrainGenerator) HeightAt(x, z int) int {
	n := tg.heightNoise.At(float64(x)/tg.TerrainScale, float64(z)/tg.TerrainScale)
	height := int(math.Floor((n+1)*heightSpan)) + baseHeight
	if height < 1 {
		height = 1
	}
	return height
}

// ClimateAt возвращает температуру и влажность колонки.
// Температура падает с высотой и возмущается биомным полем,
// влажность берется напрямую из биомного поля. Оба значения в [0, 1].
func (tg *TerrainGenerator) ClimateAt(x, z, height int) (temperature, moisture float64) {
	b := tg.biomeNoise.At(float64(x)/tg.BiomeScale, float64(z)/tg.BiomeScale)

	temperature = 0.8 - float64(height-baseHeight)*0.03 + 0.25*b
	moisture = (b + 1) / 2

	temperature = clamp01(temperature)
	moisture = clamp01(moisture)
	return temperature, moisture
}

// BlockAt выбирает тип блока для мировой координаты y колонки с известной
// высотой и климатом. Вода заполняет пустоты не выше уровня моря.
func (tg *TerrainGenerator) BlockAt(y, height int, temperature, moisture float64) block.BlockID {
	switch {
	case y == 0:
		return block.BedrockBlockID

	case y < bedrockMixMaxY:
		// Вероятность бедрока падает с высотой: у самого дна почти сплошной
		if tg.deco.Float64() < 1.0-float64(y)*0.2 {
			return block.BedrockBlockID
		}
		return block.StoneBlockID

	case y < height-dirtDepth:
		return block.StoneBlockID

	case y < height-1:
		if temperature < coldTemperature {
			return block.StoneBlockID
		}
		return block.DirtBlockID

	case y < height:
		return tg.surfaceBlock(temperature, moisture)

	case y <= tg.SeaLevel:
		return block.WaterBlockID

	default:
		return block.AirBlockID
	}
}

// surfaceBlock выбирает верхний блок колонки по климату
func (tg *TerrainGenerator) surfaceBlock(temperature, moisture float64) block.BlockID {
	if temperature < snowTemperature {
		return block.SnowBlockID
	}
	if temperature > desertTemp && moisture < desertMoisture {
		return block.SandBlockID
	}
	return block.GrassBlockID
}

// ShouldPlantTree решает, сажать ли дерево на подходящей колонке.
// Декоративная случайность: меняется от запуска к запуску.
func (tg *TerrainGenerator) ShouldPlantTree() bool {
	return tg.deco.Float64() < tg.TreeDensity
}

// TrunkHeight возвращает случайную высоту ствола в фиксированном диапазоне
func (tg *TerrainGenerator) TrunkHeight() int {
	return 4 + tg.deco.Intn(3) // 4-6 блоков
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
