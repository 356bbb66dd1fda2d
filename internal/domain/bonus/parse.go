package bonus

import "fmt"

// ParseInput builds an Input from values whose static type is unknown, such
// as arguments assembled in Go code. Types are matched exactly: salary and
// level must be int (or Salary/Level), rating must be float64 (or Rating).
// A whole number is not accepted as a rating, nor a real number as a level.
// Only types are checked here; ranges are left to the calculator.
//
// encoding/json decodes every number into map[string]any as float64, so a
// decoded salary or level is rejected with a *TypeError. Decode into a typed
// struct such as model.Employee instead.
func ParseInput(salary, level, rating any) (Input, error) {
	var in Input

	switch v := salary.(type) {
	case Salary:
		in.Salary = v
	case int:
		in.Salary = Salary(v)
	default:
		return Input{}, mismatch("salary", "int", salary)
	}

	switch v := level.(type) {
	case Level:
		in.Level = v
	case int:
		in.Level = Level(v)
	default:
		return Input{}, mismatch("level", "int", level)
	}

	switch v := rating.(type) {
	case Rating:
		in.Rating = v
	case float64:
		in.Rating = Rating(v)
	default:
		return Input{}, mismatch("performance rating", "float64", rating)
	}

	return in, nil
}

func mismatch(field, expected string, got any) *TypeError {
	return &TypeError{Field: field, Expected: expected, Got: fmt.Sprintf("%T", got)}
}
