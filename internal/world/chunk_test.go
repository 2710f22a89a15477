package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

func TestChunkCreateAndGetBlock(t *testing.T) {
	coords := vec.Vec3{X: 5, Y: 1, Z: 10}
	chunk := NewChunk(coords)

	// Проверяем координаты
	assert.Equal(t, coords, chunk.Coords, "Координаты чанка должны сохраняться")

	// Новый чанк целиком из воздуха
	pos := vec.Vec3{X: 3, Y: 4, Z: 5}
	assert.Equal(t, block.AirBlockID, chunk.GetBlock(pos), "Новый чанк должен состоять из воздуха")

	// Устанавливаем и проверяем блок
	chunk.SetBlock(pos, block.StoneBlockID)
	assert.Equal(t, block.StoneBlockID, chunk.GetBlock(pos), "Установленный блок должен читаться обратно")
}

func TestChunkSetGetAllTypes(t *testing.T) {
	chunk := NewChunk(vec.Vec3{})
	pos := vec.Vec3{X: 7, Y: 8, Z: 9}

	ids := []block.BlockID{
		block.GrassBlockID, block.DirtBlockID, block.StoneBlockID, block.SandBlockID,
		block.WaterBlockID, block.SnowBlockID, block.BedrockBlockID,
		block.WoodBlockID, block.LeavesBlockID, block.AirBlockID,
	}

	for _, id := range ids {
		chunk.SetBlock(pos, id)
		assert.Equal(t, id, chunk.GetBlock(pos), "Блок %d должен читаться обратно", id)
	}
}

func TestChunkOutOfBounds(t *testing.T) {
	chunk := NewChunk(vec.Vec3{})

	outside := []vec.Vec3{
		{X: -1, Y: 0, Z: 0},
		{X: 0, Y: -1, Z: 0},
		{X: 0, Y: 0, Z: -1},
		{X: 16, Y: 0, Z: 0},
		{X: 0, Y: 16, Z: 0},
		{X: 0, Y: 0, Z: 16},
		{X: 100, Y: 100, Z: 100},
	}

	for _, pos := range outside {
		// Чтение за границей — воздух, без паники
		assert.Equal(t, block.AirBlockID, chunk.GetBlock(pos), "Чтение вне чанка должно давать воздух: %v", pos)

		// Запись за границей — no-op, состояние не меняется
		chunk.GenerateMesh() // Сбрасываем флаг
		chunk.SetBlock(pos, block.StoneBlockID)
		assert.Equal(t, block.AirBlockID, chunk.GetBlock(pos), "Запись вне чанка должна игнорироваться: %v", pos)
		assert.False(t, chunk.NeedsRemesh(), "Запись вне чанка не должна помечать меш устаревшим")
	}
}

func TestChunkNeedsRemesh(t *testing.T) {
	chunk := NewChunk(vec.Vec3{})
	assert.True(t, chunk.NeedsRemesh(), "Новый чанк должен требовать построения меша")

	chunk.GenerateMesh()
	assert.False(t, chunk.NeedsRemesh(), "После построения меша флаг должен сброситься")

	chunk.SetBlock(vec.Vec3{X: 1, Y: 2, Z: 3}, block.GrassBlockID)
	assert.True(t, chunk.NeedsRemesh(), "Изменение блока должно помечать меш устаревшим")

	// Mesh() лениво перестраивает и сбрасывает флаг
	mesh := chunk.Mesh()
	assert.False(t, chunk.NeedsRemesh())
	assert.NotEmpty(t, mesh, "Меш одиночного блока не должен быть пустым")
}

func TestChunkWorldPos(t *testing.T) {
	chunk := NewChunk(vec.Vec3{X: -1, Y: 0, Z: 2})
	world := chunk.WorldPos(vec.Vec3{X: 15, Y: 3, Z: 0})
	assert.Equal(t, vec.Vec3{X: -1, Y: 3, Z: 32}, world,
		"Мировая позиция — это local + coords*16")
}
