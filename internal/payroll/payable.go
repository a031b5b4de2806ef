package payroll

import (
	"time"

	"protocol-playground/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Paycheck - результат расчета выплаты
type Paycheck struct {
	BasePay      float64
	Benefits     float64
	Deductions   float64
	VacationTime int
}

// Net - сумма к выплате
func (p Paycheck) Net() float64 {
	return p.BasePay + p.Benefits - p.Deductions
}

// Payable - всё, чему можно выплатить зарплату
type Payable interface {
	Pay() Paycheck
}

// Ставки почасовых сотрудников по умолчанию
const (
	DefaultHourlyWage  = 15.00
	DefaultHoursWorked = 10.00
)

var _ Payable = (*HourlyEmployee)(nil)

// HourlyEmployee - сотрудник с почасовой оплатой
type HourlyEmployee struct {
	Employee

	HourlyWage        float64
	HoursWorked       float64
	AvailableVacation int
}

func NewHourlyEmployee(name, address string, start time.Time, t EmployeeType) *HourlyEmployee {
	return &HourlyEmployee{
		Employee:    NewEmployee(name, address, start, t),
		HourlyWage:  DefaultHourlyWage,
		HoursWorked: DefaultHoursWorked,
	}
}

func (h *HourlyEmployee) Pay() Paycheck {
	return Paycheck{
		BasePay:      h.HourlyWage * h.HoursWorked,
		VacationTime: h.AvailableVacation,
	}
}

// PayEmployee рассчитывает выплату для любого Payable
func PayEmployee(employee Payable) Paycheck {
	paycheck := employee.Pay()

	logger.Log.WithFields(logrus.Fields{
		"component":     "payroll",
		"base_pay":      paycheck.BasePay,
		"benefits":      paycheck.Benefits,
		"deductions":    paycheck.Deductions,
		"vacation_time": paycheck.VacationTime,
	}).Info("Employee paid.")

	return paycheck
}
