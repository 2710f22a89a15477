package world

import (
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world/block"
)

// Quad — одна видимая грань блока: четыре вершины в мировых координатах
// и итоговый цвет (базовый цвет блока, умноженный на затенение грани)
type Quad struct {
	Vertices [4]vec.Vec3
	Color    block.Color
}

// FaceList — список граней чанка, потребляемый внешним рендерером
type FaceList []Quad

// faceSpec описывает одну из шести граней куба: направление наружу,
// коэффициент затенения и обход вершин (порядок согласован с рендерером)
type faceSpec struct {
	dir     vec.Vec3
	shade   float64
	corners [4]vec.Vec3
}

// Таблица граней вместо шести продублированных блоков кода.
// Затенение — дешевая имитация направленного света:
// верх 1.0, низ 0.8, север/юг 0.9, восток/запад 0.85.
var faceTable = [6]faceSpec{
	{ // Верхняя грань (Y+)
		dir:   vec.Vec3{Y: 1},
		shade: 1.0,
		corners: [4]vec.Vec3{
			{X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
		},
	},
	{ // Нижняя грань (Y-)
		dir:   vec.Vec3{Y: -1},
		shade: 0.8,
		corners: [4]vec.Vec3{
			{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 0},
		},
	},
	{ // Южная грань (Z+)
		dir:   vec.Vec3{Z: 1},
		shade: 0.9,
		corners: [4]vec.Vec3{
			{X: 0, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 0, Z: 1},
		},
	},
	{ // Северная грань (Z-)
		dir:   vec.Vec3{Z: -1},
		shade: 0.9,
		corners: [4]vec.Vec3{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		},
	},
	{ // Восточная грань (X+)
		dir:   vec.Vec3{X: 1},
		shade: 0.85,
		corners: [4]vec.Vec3{
			{X: 1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 0},
		},
	},
	{ // Западная грань (X-)
		dir:   vec.Vec3{X: -1},
		shade: 0.85,
		corners: [4]vec.Vec3{
			{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 1}, {X: 0, Y: 0, Z: 1},
		},
	},
}

// IsFaceVisible проверяет, видна ли грань блока в локальной позиции local
// в направлении dir. Грань видна, если сосед — воздух.
//
// Сосед внутри чанка читается напрямую из массива. Сосед за границей чанка
// разрешается через мир по мировым координатам — для всех шести направлений,
// чтобы меш оставался герметичным на швах чанков. Без ссылки на мир грань
// считается видимой: лучше лишний квад, чем дыра на границе.
func (c *Chunk) IsFaceVisible(local, dir vec.Vec3) bool {
	neighbor := local.Add(dir)

	if inBounds(neighbor) {
		return c.Blocks[neighbor.X][neighbor.Y][neighbor.Z] == block.AirBlockID
	}

	if c.world == nil {
		return true
	}

	worldNeighbor := c.WorldPos(local).Add(dir)
	return c.world.GetBlock(worldNeighbor) == block.AirBlockID
}

// GenerateMesh полностью перестраивает список граней чанка.
// Прошлый кэш отбрасывается целиком, частичного перестроения нет.
func (c *Chunk) GenerateMesh() FaceList {
	// Старая оценка емкости не сохраняется: рельефные чанки дают
	// порядка сотен квадов, пустые — ноль
	mesh := make(FaceList, 0, len(c.mesh))

	for x := 0; x < ChunkSize; x++ {
		for y := 0; y < ChunkSize; y++ {
			for z := 0; z < ChunkSize; z++ {
				id := c.Blocks[x][y][z]
				if id == block.AirBlockID {
					continue
				}

				local := vec.Vec3{X: x, Y: y, Z: z}
				baseColor := block.GetColor(id)
				worldPos := c.WorldPos(local)

				for _, face := range faceTable {
					if !c.IsFaceVisible(local, face.dir) {
						continue
					}

					var quad Quad
					for i, corner := range face.corners {
						quad.Vertices[i] = worldPos.Add(corner)
					}
					quad.Color = baseColor.Scale(face.shade)
					mesh = append(mesh, quad)
				}
			}
		}
	}

	c.mesh = mesh
	c.needsRemesh = false
	return mesh
}

// Mesh возвращает актуальный список граней, лениво перестраивая его
// при необходимости. Это точка входа рендерера.
func (c *Chunk) Mesh() FaceList {
	if c.needsRemesh {
		return c.GenerateMesh()
	}
	return c.mesh
}
