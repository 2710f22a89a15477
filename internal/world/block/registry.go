package block

// BlockID представляет идентификатор типа блока
type BlockID uint16

// Константы ID блоков
const (
	AirBlockID     BlockID = iota // 0 — пустота, универсальный признак "ничего нет"
	GrassBlockID                  // 1
	DirtBlockID                   // 2
	StoneBlockID                  // 3
	SandBlockID                   // 4
	WaterBlockID                  // 5
	SnowBlockID                   // 6
	BedrockBlockID                // 7
	WoodBlockID                   // 8
	LeavesBlockID                 // 9
)

// Color задает базовый цвет блока в RGB (каждый канал в [0,1])
type Color struct {
	R, G, B float64
}

// Scale умножает цвет на коэффициент затенения грани
func (c Color) Scale(k float64) Color {
	return Color{R: c.R * k, G: c.G * k, B: c.B * k}
}

// BlockInfo описывает атрибуты отрисовки типа блока
type BlockInfo struct {
	Name   string
	Color  Color
	Opaque bool // false — блок не скрывает грани соседей
}

// ErrorColor — цвет для неизвестных ID, чтобы битые данные были видны на экране
var ErrorColor = Color{R: 1.0, G: 0.0, B: 1.0} // Пурпурный

var registry = map[BlockID]BlockInfo{
	AirBlockID:     {Name: "Air", Color: Color{}, Opaque: false},
	GrassBlockID:   {Name: "Grass", Color: Color{R: 0.2, G: 0.8, B: 0.2}, Opaque: true},
	DirtBlockID:    {Name: "Dirt", Color: Color{R: 0.6, G: 0.3, B: 0.0}, Opaque: true},
	StoneBlockID:   {Name: "Stone", Color: Color{R: 0.5, G: 0.5, B: 0.5}, Opaque: true},
	SandBlockID:    {Name: "Sand", Color: Color{R: 0.9, G: 0.85, B: 0.55}, Opaque: true},
	WaterBlockID:   {Name: "Water", Color: Color{R: 0.2, G: 0.4, B: 0.8}, Opaque: true},
	SnowBlockID:    {Name: "Snow", Color: Color{R: 0.95, G: 0.95, B: 0.97}, Opaque: true},
	BedrockBlockID: {Name: "Bedrock", Color: Color{R: 0.2, G: 0.2, B: 0.2}, Opaque: true},
	WoodBlockID:    {Name: "Wood", Color: Color{R: 0.45, G: 0.3, B: 0.13}, Opaque: true},
	LeavesBlockID:  {Name: "Leaves", Color: Color{R: 0.15, G: 0.55, B: 0.15}, Opaque: true},
}

// Register добавляет или заменяет описание блока в регистре
func Register(id BlockID, info BlockInfo) {
	registry[id] = info
}

// Get возвращает описание для указанного ID
func Get(id BlockID) (BlockInfo, bool) {
	info, exists := registry[id]
	return info, exists
}

// GetColor возвращает базовый цвет блока; для неизвестных ID — ErrorColor
func GetColor(id BlockID) Color {
	if info, exists := registry[id]; exists {
		return info.Color
	}
	return ErrorColor
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}
