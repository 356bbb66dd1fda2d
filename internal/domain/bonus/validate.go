package bonus

// Input domains, inclusive on both ends.
const (
	MinSalary = 70_000
	MaxSalary = 750_000

	MinLevel = 7
	MaxLevel = 15

	MinRating = 1.0
	MaxRating = 5.0
)

// rangeCheck binds a field name and its bounds into a reusable validator.
// Values are compared in their own type so large integers stay exact.
func rangeCheck[T int | float64](field string, minValue, maxValue T) func(T) error {
	return func(v T) error {
		switch {
		case v != v: // NaN
			return &RangeError{Field: field, Value: v, Min: minValue, Max: maxValue, Kind: NotANumber}
		case v < minValue:
			return &RangeError{Field: field, Value: v, Min: minValue, Max: maxValue, Kind: TooSmall}
		case v > maxValue:
			return &RangeError{Field: field, Value: v, Min: minValue, Max: maxValue, Kind: TooBig}
		}
		return nil
	}
}

var (
	checkSalary = rangeCheck[int]("salary", MinSalary, MaxSalary)
	checkLevel  = rangeCheck[int]("level", MinLevel, MaxLevel)
	checkRating = rangeCheck[float64]("performance rating", MinRating, MaxRating)
)

// ValidateSalary fails with *RangeError when s is outside [70000, 750000].
func ValidateSalary(s Salary) error { return checkSalary(int(s)) }

// ValidateLevel fails with *RangeError when l is outside [7, 15].
func ValidateLevel(l Level) error { return checkLevel(int(l)) }

// ValidateRating fails with *RangeError when r is outside [1.0, 5.0].
func ValidateRating(r Rating) error { return checkRating(float64(r)) }
