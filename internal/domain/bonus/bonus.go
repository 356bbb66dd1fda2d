// Package bonus computes salary bonuses from a job level and a performance
// rating.
//
// The bonus is salary × level multiplier × performance multiplier, where
// both multipliers come from fixed bracket tables of half-open ranges. Every
// input is range checked before it is used; the integer/real split between
// salary, level and rating is carried by the Salary, Level and Rating types.
//
// All functions are pure and safe for concurrent use.
package bonus

// Salary is a base salary in whole currency units.
type Salary int

// Level is an employee's job grade.
type Level int

// Rating is an employee's performance score.
type Rating float64

// Input groups the three values a salary bonus is computed from.
type Input struct {
	Salary Salary
	Level  Level
	Rating Rating
}

// bracket maps every value below the exclusive upper bound (and at or above
// the previous bracket's bound) to a multiplier.
type bracket struct {
	below      float64
	multiplier float64
}

var (
	levelBrackets = []bracket{
		{below: 10, multiplier: 0.05},
		{below: 13, multiplier: 0.10},
		{below: 15, multiplier: 0.15},
	}
	levelTop = 0.20

	ratingBrackets = []bracket{
		{below: 2.5, multiplier: 0.25},
		{below: 3.0, multiplier: 0.50},
		{below: 3.5, multiplier: 1.00},
		{below: 4.0, multiplier: 1.50},
	}
	ratingTop = 2.00
)

// lookup walks the brackets lowest first. Values past the last bound get top.
func lookup(v float64, brackets []bracket, top float64) float64 {
	for _, b := range brackets {
		if v < b.below {
			return b.multiplier
		}
	}
	return top
}

// LevelBonus returns the level multiplier:
//
//	[7,10) → 0.05, [10,13) → 0.10, [13,15) → 0.15, 15 → 0.20
func LevelBonus(level Level) (float64, error) {
	if err := ValidateLevel(level); err != nil {
		return 0, err
	}
	return lookup(float64(level), levelBrackets, levelTop), nil
}

// PerformanceBonus returns the performance multiplier:
//
//	[1.0,2.5) → 0.25, [2.5,3.0) → 0.50, [3.0,3.5) → 1.00,
//	[3.5,4.0) → 1.50, [4.0,5.0] → 2.00
func PerformanceBonus(rating Rating) (float64, error) {
	if err := ValidateRating(rating); err != nil {
		return 0, err
	}
	return lookup(float64(rating), ratingBrackets, ratingTop), nil
}

// SalaryBonus returns salary × LevelBonus(level) × PerformanceBonus(rating).
// Salary is validated first, then level, then rating; the first failure is
// returned as is. The product is not rounded.
func SalaryBonus(salary Salary, level Level, rating Rating) (float64, error) {
	if err := ValidateSalary(salary); err != nil {
		return 0, err
	}
	levelMultiplier, err := LevelBonus(level)
	if err != nil {
		return 0, err
	}
	ratingMultiplier, err := PerformanceBonus(rating)
	if err != nil {
		return 0, err
	}
	return float64(salary) * levelMultiplier * ratingMultiplier, nil
}

// Calculate is SalaryBonus over an Input.
func Calculate(in Input) (float64, error) {
	return SalaryBonus(in.Salary, in.Level, in.Rating)
}
