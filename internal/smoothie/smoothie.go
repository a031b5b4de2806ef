package smoothie

import (
	"protocol-playground/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Blendable - ингредиент, который можно взбить
type Blendable interface {
	Blend() string
}

var (
	_ Blendable = (*Fruit)(nil)
	_ Blendable = (*Milk)(nil)
)

type Fruit struct {
	Name string
}

func NewFruit(name string) *Fruit { return &Fruit{Name: name} }

func (f *Fruit) Blend() string { return "I'm mush" }

// Dairy - молочный продукт. Сам по себе не взбивается.
type Dairy struct {
	Name string
}

// Cheese - Dairy без Blend
type Cheese struct {
	Dairy
}

func NewCheese(name string) *Cheese { return &Cheese{Dairy{Name: name}} }

// Milk - Dairy, который умеет взбиваться
type Milk struct {
	Dairy
}

func NewMilk(name string) *Milk { return &Milk{Dairy{Name: name}} }

func (m *Milk) Blend() string { return "I am Groot" }

// MakeSmoothie взбивает ингредиенты по порядку и возвращает их "звуки". nil пропускаются.
func MakeSmoothie(ingredients []Blendable) []string {
	out := make([]string, 0, len(ingredients))
	for _, ingredient := range ingredients {
		if ingredient == nil {
			continue
		}
		out = append(out, ingredient.Blend())
	}

	logger.Log.WithFields(logrus.Fields{
		"component":   "smoothie",
		"ingredients": len(out),
	}).Debug("Smoothie blended.")

	return out
}
