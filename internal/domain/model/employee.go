// Package model contains domain models passed between layers.
package model

import "github.com/okian/bonus/internal/domain/bonus"

// Employee is one row of a bonus batch.
type Employee struct {
	ID     string       // employee identifier, echoed into the outcome
	Salary bonus.Salary // base salary
	Level  bonus.Level  // job grade
	Rating bonus.Rating // performance rating
}

// Input returns the calculator input carried by the employee.
func (e Employee) Input() bonus.Input {
	return bonus.Input{Salary: e.Salary, Level: e.Level, Rating: e.Rating}
}

// Outcome is the result of evaluating one Employee. Bonus is zero whenever
// Err is set.
type Outcome struct {
	EmployeeID string
	Bonus      float64
	Err        error
}

// Failed reports whether the employee's inputs were rejected.
func (o Outcome) Failed() bool { return o.Err != nil }
