package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument - аргумент вне допустимого диапазона (например, отрицательный радиус)
var ErrInvalidArgument = errors.New("invalid argument")

// Position - точка на бесконечной целочисленной сетке.
// Передается по значению: сдвиг всегда дает новую структуру.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shift возвращает новую позицию со смещением (текущая не меняется)
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Neighborhood возвращает все точки с X в [p.X-rng, p.X+rng] и Y в [p.Y-1, p.Y+1].
// Порядок обхода: X во внешнем цикле, Y во внутреннем.
// Каждый вызов возвращает новый слайс из (2*rng+1)*3 точек.
func (p Position) Neighborhood(rng int) ([]Position, error) {
	if rng < 0 {
		return nil, fmt.Errorf("neighborhood range %d: %w", rng, ErrInvalidArgument)
	}

	results := make([]Position, 0, (2*rng+1)*3)
	for x := p.X - rng; x <= p.X+rng; x++ {
		for y := p.Y - 1; y <= p.Y+1; y++ {
			results = append(results, Position{X: x, Y: y})
		}
	}
	return results, nil
}

// Contains проверяет, входит ли other в окрестность радиуса rng
func (p Position) Contains(other Position, rng int) bool {
	dx := other.X - p.X
	dy := other.Y - p.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return rng >= 0 && dx <= rng && dy <= 1
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
