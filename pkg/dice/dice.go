package dice

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSides = errors.New("dice must have at least one side")
	ErrNilGenerator = errors.New("dice generator is nil")
)

// Dice - кубик с произвольным числом граней и подключаемым генератором
type Dice struct {
	sides     int
	generator RandomNumberGenerator
}

// NewDice создает кубик. sides должно быть >= 1.
func NewDice(sides int, generator RandomNumberGenerator) (*Dice, error) {
	if sides < 1 {
		return nil, fmt.Errorf("sides %d: %w", sides, ErrInvalidSides)
	}
	if generator == nil {
		return nil, ErrNilGenerator
	}
	return &Dice{sides: sides, generator: generator}, nil
}

func (d *Dice) Sides() int { return d.sides }

// Roll возвращает значение в [1, sides]
func (d *Dice) Roll() int {
	v := int(d.generator.Random()*float64(d.sides)) + 1
	// Защита от генераторов, которые вернули ровно 1.0
	if v > d.sides {
		v = d.sides
	}
	return v
}

// RollN бросает кубик n раз. При n <= 0 возвращает пустой слайс.
func (d *Dice) RollN(n int) []int {
	if n <= 0 {
		return []int{}
	}
	rolls := make([]int, n)
	for i := range rolls {
		rolls[i] = d.Roll()
	}
	return rolls
}
