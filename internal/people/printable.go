package people

import "fmt"

// Printable - короткое однострочное описание
type Printable interface {
	Description() string
}

// PrettyPrintable расширяет Printable многострочным описанием
type PrettyPrintable interface {
	Printable
	PrettyDescription() string
}

var _ PrettyPrintable = User{}

type User struct {
	Name    string
	Age     int
	Address string
}

func (u User) Description() string {
	return fmt.Sprintf("%s, %d, %s", u.Name, u.Age, u.Address)
}

func (u User) PrettyDescription() string {
	return fmt.Sprintf("name: %s\nage: %d\naddress: %s", u.Name, u.Age, u.Address)
}
