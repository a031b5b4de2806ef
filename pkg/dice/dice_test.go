package dice

import (
	"errors"
	"testing"
)

type fixedGenerator struct {
	values []float64
	i      int
}

func (f *fixedGenerator) Random() float64 {
	v := f.values[f.i%len(f.values)]
	f.i++
	return v
}

func TestLinearCongruentialGenerator_Sequence(t *testing.T) {
	g := NewLinearCongruentialGenerator(LCGDefaultSeed)

	want := []float64{62439, 105160, 25277, 32630, 77219}
	for i, w := range want {
		got := g.Random()
		if got != w/lcgModulus {
			t.Errorf("Random() #%d = %v, want %v", i, got, w/lcgModulus)
		}
	}
}

func TestLinearCongruentialGenerator_Range(t *testing.T) {
	g := NewLinearCongruentialGenerator(7)
	for i := 0; i < 10000; i++ {
		v := g.Random()
		if v < 0 || v >= 1 {
			t.Fatalf("Random() = %v out of [0,1)", v)
		}
	}
}

func TestDice_Roll_LCG(t *testing.T) {
	d, err := NewDice(6, NewLinearCongruentialGenerator(LCGDefaultSeed))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{3, 5, 2, 2, 4}
	got := d.RollN(len(want))
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("roll %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDice_Roll_Bounds(t *testing.T) {
	tests := []struct {
		name  string
		sides int
		value float64
		want  int
	}{
		{"lowest", 6, 0.0, 1},
		{"highest", 6, 0.9999, 6},
		{"exact one clamps", 6, 1.0, 6},
		{"single side", 1, 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDice(tt.sides, &fixedGenerator{values: []float64{tt.value}})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := d.Roll(); got != tt.want {
				t.Errorf("Roll() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDice_MathRand(t *testing.T) {
	d, err := NewDice(20, NewMathRandGenerator(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range d.RollN(1000) {
		if r < 1 || r > 20 {
			t.Fatalf("roll %d out of [1,20]", r)
		}
	}

	// Одинаковое зерно - одинаковая последовательность
	a, _ := NewDice(20, NewMathRandGenerator(99))
	b, _ := NewDice(20, NewMathRandGenerator(99))
	ra, rb := a.RollN(10), b.RollN(10)
	for i := range ra {
		if ra[i] != rb[i] {
			t.Fatalf("rolls diverged at %d: %d != %d", i, ra[i], rb[i])
		}
	}
}

func TestNewDice_Errors(t *testing.T) {
	if _, err := NewDice(0, NewLinearCongruentialGenerator(1)); !errors.Is(err, ErrInvalidSides) {
		t.Errorf("expected ErrInvalidSides, got %v", err)
	}
	if _, err := NewDice(6, nil); !errors.Is(err, ErrNilGenerator) {
		t.Errorf("expected ErrNilGenerator, got %v", err)
	}
}

func TestDice_RollN_Empty(t *testing.T) {
	d, _ := NewDice(6, NewLinearCongruentialGenerator(1))
	if got := d.RollN(0); len(got) != 0 {
		t.Errorf("RollN(0) = %v, want empty", got)
	}
}
