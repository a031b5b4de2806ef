package dice

import (
	"math"
	"math/rand"
)

// RandomNumberGenerator - стратегия генерации случайных чисел.
// Random возвращает значение в [0, 1).
type RandomNumberGenerator interface {
	Random() float64
}

// Параметры линейного конгруэнтного генератора
const (
	LCGDefaultSeed = 42.0
	lcgModulus     = 129968.0
	lcgMultiplier  = 3877.0
	lcgIncrement   = 29573.0
)

// LinearCongruentialGenerator - детерминированный генератор: last = (last*a + c) mod m.
// Не безопасен для конкурентного использования.
type LinearCongruentialGenerator struct {
	lastRandom float64
}

// NewLinearCongruentialGenerator создает генератор со стартовым значением seed
func NewLinearCongruentialGenerator(seed float64) *LinearCongruentialGenerator {
	return &LinearCongruentialGenerator{lastRandom: seed}
}

func (g *LinearCongruentialGenerator) Random() float64 {
	g.lastRandom = math.Mod(g.lastRandom*lcgMultiplier+lcgIncrement, lcgModulus)
	if g.lastRandom < 0 {
		g.lastRandom += lcgModulus
	}
	return g.lastRandom / lcgModulus
}

// MathRandGenerator адаптирует math/rand к RandomNumberGenerator
type MathRandGenerator struct {
	rng *rand.Rand
}

// NewMathRandGenerator создает генератор с фиксированным зерном (воспроизводимо)
func NewMathRandGenerator(seed int64) *MathRandGenerator {
	return &MathRandGenerator{rng: rand.New(rand.NewSource(seed))}
}

func (g *MathRandGenerator) Random() float64 {
	return g.rng.Float64()
}
