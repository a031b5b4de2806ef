package people

import "strings"

// FullyNameable - всё, у чего есть полное имя
type FullyNameable interface {
	FullName() string
}

var (
	_ FullyNameable = Account{}
	_ FullyNameable = Friend{}
)

// Account хранит полное имя как есть
type Account struct {
	Name string
}

func (a Account) FullName() string { return a.Name }

// Friend собирает полное имя из частей. Пустые части пропускаются.
type Friend struct {
	FirstName  string
	MiddleName string
	LastName   string
}

func (f Friend) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{f.FirstName, f.MiddleName, f.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// FullNames возвращает полные имена в исходном порядке
func FullNames(items ...FullyNameable) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.FullName())
	}
	return names
}
