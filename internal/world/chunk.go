package world

import (
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// ChunkSize — размер чанка в блоках по каждой оси
const ChunkSize = 16

// BlockSource — то, у кого чанк спрашивает блоки за своей границей.
// Реализуется WorldManager; чанк использует его только для чтения,
// никогда для изменения мира.
type BlockSource interface {
	GetBlock(pos vec.Vec3) block.BlockID
}

// Chunk представляет кубический участок мира размером 16x16x16 блоков
type Chunk struct {
	Coords vec.Vec3 // Координаты чанка в сетке чанков

	// Blocks хранит типы блоков, индексация [x][y][z]
	Blocks [ChunkSize][ChunkSize][ChunkSize]block.BlockID

	world BlockSource // Не владеющая ссылка на мир, только граничные запросы

	mesh        FaceList // Кэш последнего построенного меша
	needsRemesh bool     // Меш устарел и требует перестроения
}

// NewChunk создаёт новый чанк с указанными координатами, целиком из воздуха
func NewChunk(coords vec.Vec3) *Chunk {
	return &Chunk{
		Coords:      coords,
		needsRemesh: true,
	}
}

// SetWorld привязывает чанк к миру для граничных запросов видимости
func (c *Chunk) SetWorld(w BlockSource) {
	c.world = w
}

// inBounds проверяет, что локальные координаты лежат внутри чанка
func inBounds(local vec.Vec3) bool {
	return local.X >= 0 && local.X < ChunkSize &&
		local.Y >= 0 && local.Y < ChunkSize &&
		local.Z >= 0 && local.Z < ChunkSize
}

// GetBlock возвращает ID блока по локальным координатам.
// Для координат вне чанка возвращается воздух, выхода за границы массива нет.
func (c *Chunk) GetBlock(local vec.Vec3) block.BlockID {
	if !inBounds(local) {
		return block.AirBlockID
	}
	return c.Blocks[local.X][local.Y][local.Z]
}

// SetBlock устанавливает блок по локальным координатам и помечает меш устаревшим.
// Координаты вне чанка молча игнорируются.
func (c *Chunk) SetBlock(local vec.Vec3, id block.BlockID) {
	if !inBounds(local) {
		return
	}
	c.Blocks[local.X][local.Y][local.Z] = id
	c.needsRemesh = true
}

// NeedsRemesh возвращает true, если кэш меша устарел
func (c *Chunk) NeedsRemesh() bool {
	return c.needsRemesh
}

// WorldPos переводит локальные координаты блока в мировые
func (c *Chunk) WorldPos(local vec.Vec3) vec.Vec3 {
	return c.Coords.ToWorldCoords().Add(local)
}
