package domain

import "strings"

// Direction - направление движения по сетке
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Маппинг для конвертации строки -> Direction
var directionStringToType = map[string]Direction{
	"UP":    DirectionUp,
	"DOWN":  DirectionDown,
	"LEFT":  DirectionLeft,
	"RIGHT": DirectionRight,
}

// Маппинг для логов Direction -> String
var directionTypeToString = map[Direction]string{
	DirectionUp:    "UP",
	DirectionDown:  "DOWN",
	DirectionLeft:  "LEFT",
	DirectionRight: "RIGHT",
}

// ParseDirection конвертирует строку в Direction (без учета регистра)
func ParseDirection(s string) (Direction, bool) {
	d, ok := directionStringToType[strings.ToUpper(s)]
	return d, ok
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (d Direction) String() string {
	if val, ok := directionTypeToString[d]; ok {
		return val
	}
	return "UNKNOWN"
}

// Delta возвращает единичный вектор направления.
// Up увеличивает Y, Down уменьшает. Неизвестное направление дает (0, 0).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirectionUp:
		return 0, 1
	case DirectionDown:
		return 0, -1
	case DirectionLeft:
		return -1, 0
	case DirectionRight:
		return 1, 0
	}
	return 0, 0
}
