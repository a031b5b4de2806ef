package payroll

import (
	"os"
	"testing"
	"time"

	"protocol-playground/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestHourlyEmployee_Pay(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	h := NewHourlyEmployee("james", "none", start, EmployeeNotManager)

	got := PayEmployee(h)
	want := Paycheck{BasePay: 150, Benefits: 0, Deductions: 0, VacationTime: 0}
	if got != want {
		t.Errorf("PayEmployee() = %+v, want %+v", got, want)
	}
	if got.Net() != 150 {
		t.Errorf("Net() = %v, want 150", got.Net())
	}

	h.HoursWorked = 40
	h.AvailableVacation = 2
	got = h.Pay()
	if got.BasePay != 600 || got.VacationTime != 2 {
		t.Errorf("Pay() after update = %+v", got)
	}
}

func TestEmployee_NotPayable(t *testing.T) {
	var e any = NewEmployee("Gabe", "address", time.Now(), EmployeeManager)
	if _, ok := e.(Payable); ok {
		t.Error("plain Employee must not implement Payable")
	}

	var h any = NewHourlyEmployee("james", "none", time.Now(), EmployeeNotManager)
	if _, ok := h.(Payable); !ok {
		t.Error("HourlyEmployee must implement Payable")
	}
}

func TestEmployeeType(t *testing.T) {
	tests := []struct {
		input    string
		expected EmployeeType
		ok       bool
	}{
		{"MANAGER", EmployeeManager, true},
		{"not_manager", EmployeeNotManager, true},
		{"intern", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseEmployeeType(tt.input)
		if ok != tt.ok || (ok && got != tt.expected) {
			t.Errorf("ParseEmployeeType(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.expected, tt.ok)
		}
	}

	if EmployeeManager.String() != "MANAGER" {
		t.Errorf("EmployeeManager.String() = %q", EmployeeManager.String())
	}
	if EmployeeType(9).String() != "UNKNOWN" {
		t.Errorf("EmployeeType(9).String() = %q", EmployeeType(9).String())
	}
}
