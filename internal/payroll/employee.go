package payroll

import (
	"strings"
	"time"
)

// EmployeeType - категория сотрудника
type EmployeeType uint8

const (
	EmployeeNotManager EmployeeType = iota
	EmployeeManager
)

var employeeTypeToString = map[EmployeeType]string{
	EmployeeNotManager: "NOT_MANAGER",
	EmployeeManager:    "MANAGER",
}

var employeeTypeStringToType = map[string]EmployeeType{
	"NOT_MANAGER": EmployeeNotManager,
	"MANAGER":     EmployeeManager,
}

func (t EmployeeType) String() string {
	if val, ok := employeeTypeToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseEmployeeType конвертирует строку в EmployeeType (без учета регистра)
func ParseEmployeeType(s string) (EmployeeType, bool) {
	t, ok := employeeTypeStringToType[strings.ToUpper(s)]
	return t, ok
}

// Employee - базовые данные сотрудника. Сам по себе НЕ реализует Payable.
type Employee struct {
	Name      string
	Address   string
	StartDate time.Time
	Type      EmployeeType

	Department string // необязательно
	ReportsTo  string // необязательно
}

func NewEmployee(name, address string, start time.Time, t EmployeeType) Employee {
	return Employee{
		Name:      name,
		Address:   address,
		StartDate: start,
		Type:      t,
	}
}
