package world

import (
	"time"

	"github.com/google/uuid"

	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// Params задает параметры создаваемого мира
type Params struct {
	Seed             int64
	HorizontalChunks int     // Горизонтальный размер мира в чанках
	HeightChunks     int     // Вертикальный размер мира в чанках
	TerrainScale     float64 // Масштаб высотного шума
	BiomeScale       float64 // Масштаб биомного шума
	TreeDensity      float64 // Вероятность дерева на травяной колонке
	SeaLevel         int     // Уровень моря
}

// DefaultParams возвращает параметры мира по умолчанию
func DefaultParams() Params {
	return Params{
		Seed:             42,
		HorizontalChunks: 4,
		HeightChunks:     2,
		TerrainScale:     20.0,
		BiomeScale:       100.0,
		TreeDensity:      0.02,
		SeaLevel:         12,
	}
}

// GenerationStats — итог генерации мира
type GenerationStats struct {
	Chunks  int
	Trees   int
	Elapsed time.Duration
}

// treePlacement — отложенная посадка дерева: сначала собираем все позиции,
// потом сажаем вторым проходом, чтобы кроны не влияли на выбор соседних колонок
type treePlacement struct {
	base   vec.Vec3 // Первый блок ствола (над поверхностью)
	height int      // Высота ствола
}

// WorldManager владеет всеми чанками мира и координирует генерацию.
// Чанки создаются один раз при генерации; выгрузки чанков нет.
type WorldManager struct {
	ID string // Идентификатор экземпляра мира для логов

	chunks           map[vec.Vec3]*Chunk
	generator        *TerrainGenerator
	seed             int64
	horizontalChunks int
	heightChunks     int
	currentTick      uint64
	stats            GenerationStats
}

// NewWorldManager создаёт менеджер мира с указанными параметрами.
// Мир пуст до вызова Generate.
func NewWorldManager(params Params) (*WorldManager, error) {
	generator, err := NewTerrainGenerator(
		params.Seed, params.TerrainScale, params.BiomeScale,
		params.TreeDensity, params.SeaLevel,
	)
	if err != nil {
		return nil, err
	}

	return &WorldManager{
		ID:               uuid.NewString(),
		chunks:           make(map[vec.Vec3]*Chunk),
		generator:        generator,
		seed:             params.Seed,
		horizontalChunks: params.HorizontalChunks,
		heightChunks:     params.HeightChunks,
	}, nil
}

// Generator возвращает генератор рельефа мира
func (wm *WorldManager) Generator() *TerrainGenerator {
	return wm.generator
}

// Seed возвращает сид мира
func (wm *WorldManager) Seed() int64 {
	return wm.seed
}

// Generate создаёт все чанки мира и заполняет их рельефом.
// Чанки образуют плотную область [-ext/2, ext/2) x [0, height) x [-ext/2, ext/2);
// все, что вне её, читается как воздух.
func (wm *WorldManager) Generate() GenerationStats {
	started := time.Now()

	half := wm.horizontalChunks / 2
	for cx := -half; cx < wm.horizontalChunks-half; cx++ {
		for cz := -half; cz < wm.horizontalChunks-half; cz++ {
			for cy := 0; cy < wm.heightChunks; cy++ {
				coords := vec.Vec3{X: cx, Y: cy, Z: cz}
				chunk := NewChunk(coords)
				chunk.SetWorld(wm)
				wm.chunks[coords] = chunk
			}
		}
	}

	trees := wm.generateTerrain()

	wm.stats = GenerationStats{
		Chunks:  len(wm.chunks),
		Trees:   trees,
		Elapsed: time.Since(started),
	}
	logging.LogWorldGenerated(wm.ID, wm.stats.Chunks, wm.stats.Trees, wm.stats.Elapsed)
	return wm.stats
}

// generateTerrain заполняет все колонки мира и сажает деревья.
// Возвращает число посаженных деревьев.
func (wm *WorldManager) generateTerrain() int {
	half := wm.horizontalChunks / 2
	minX := -half * ChunkSize
	maxX := (wm.horizontalChunks - half) * ChunkSize
	worldHeight := wm.heightChunks * ChunkSize

	var placements []treePlacement

	for x := minX; x < maxX; x++ {
		for z := minX; z < maxX; z++ {
			col := vec.Vec2{X: x, Z: z}
			height := wm.generator.HeightAt(col.X, col.Z)
			temperature, moisture := wm.generator.ClimateAt(col.X, col.Z, height)

			var surface block.BlockID
			for y := 0; y < worldHeight; y++ {
				id := wm.generator.BlockAt(y, height, temperature, moisture)
				wm.SetBlock(col.WithY(y), id)
				if y == height-1 {
					surface = id
				}
			}

			// Кандидат на дерево: травяная поверхность и достаточно воздуха сверху
			if surface == block.GrassBlockID && wm.generator.ShouldPlantTree() {
				trunkHeight := wm.generator.TrunkHeight()
				base := col.WithY(height)
				if wm.hasTreeRoom(base, trunkHeight, worldHeight) {
					placements = append(placements, treePlacement{base: base, height: trunkHeight})
				}
			}
		}
	}

	// Второй проход: сажаем деревья по записанным позициям
	for _, p := range placements {
		wm.plantTree(p.base, p.height)
	}
	return len(placements)
}

// hasTreeRoom проверяет, что над поверхностью есть воздушная колонна
// под ствол и крону и дерево не упирается в потолок мира
func (wm *WorldManager) hasTreeRoom(base vec.Vec3, trunkHeight, worldHeight int) bool {
	needed := trunkHeight + canopyLayers - 1
	if base.Y+needed >= worldHeight {
		return false
	}
	for dy := 0; dy < needed; dy++ {
		if wm.GetBlock(vec.Vec3{X: base.X, Y: base.Y + dy, Z: base.Z}) != block.AirBlockID {
			return false
		}
	}
	return true
}

// Параметры кроны дерева
const canopyLayers = 3 // Слои листвы, средний слой — самый широкий

// plantTree сажает дерево: ствол из древесины и скругленная крона 3x3.
// Крона пропускает угловые клетки везде, кроме среднего слоя,
// и никогда не перезаписывает ствол.
func (wm *WorldManager) plantTree(base vec.Vec3, trunkHeight int) {
	for dy := 0; dy < trunkHeight; dy++ {
		wm.SetBlock(vec.Vec3{X: base.X, Y: base.Y + dy, Z: base.Z}, block.WoodBlockID)
	}

	trunkTop := base.Y + trunkHeight - 1
	for layer := 0; layer < canopyLayers; layer++ {
		y := trunkTop + layer
		for dx := -1; dx <= 1; dx++ {
			for dz := -1; dz <= 1; dz++ {
				corner := dx != 0 && dz != 0
				if corner && layer != 1 {
					continue // Скругление: углы только в среднем слое
				}
				if dx == 0 && dz == 0 && y <= trunkTop {
					continue // Клетка ствола
				}
				wm.SetBlock(vec.Vec3{X: base.X + dx, Y: y, Z: base.Z + dz}, block.LeavesBlockID)
			}
		}
	}
}

// GetBlock возвращает блок по мировым координатам.
// Для координат вне сгенерированной области возвращается воздух.
func (wm *WorldManager) GetBlock(pos vec.Vec3) block.BlockID {
	chunk, exists := wm.chunks[pos.ToChunkCoords()]
	if !exists {
		return block.AirBlockID
	}
	return chunk.GetBlock(pos.LocalInChunk())
}

// SetBlock устанавливает блок по мировым координатам.
// Если чанк не существует, запись молча игнорируется.
func (wm *WorldManager) SetBlock(pos vec.Vec3, id block.BlockID) {
	chunk, exists := wm.chunks[pos.ToChunkCoords()]
	if !exists {
		return
	}
	chunk.SetBlock(pos.LocalInChunk(), id)
}

// ChunkAt возвращает чанк по координатам в сетке чанков (nil, если не существует)
func (wm *WorldManager) ChunkAt(coords vec.Vec3) *Chunk {
	return wm.chunks[coords]
}

// Chunks возвращает все чанки мира; рендерер обходит их при отрисовке
func (wm *WorldManager) Chunks() map[vec.Vec3]*Chunk {
	return wm.chunks
}

// ChunkCount возвращает число чанков мира
func (wm *WorldManager) ChunkCount() int {
	return len(wm.chunks)
}

// Stats возвращает итог последней генерации
func (wm *WorldManager) Stats() GenerationStats {
	return wm.stats
}

// Update вызывается внешним циклом раз в кадр.
// Мир статичен, поэтому только считаем тики.
func (wm *WorldManager) Update(dt float64) {
	wm.currentTick++
}

// CurrentTick возвращает номер текущего тика
func (wm *WorldManager) CurrentTick() uint64 {
	return wm.currentTick
}
