package bonus_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/bonus/internal/domain/bonus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestValidateSalary(t *testing.T) {
	Convey("Given the salary validator", t, func() {
		Convey("When the salary sits on the bounds", func() {
			Convey("Then it is accepted", func() {
				So(bonus.ValidateSalary(70000), ShouldBeNil)
				So(bonus.ValidateSalary(750000), ShouldBeNil)
			})
		})

		Convey("When the salary is 69999", func() {
			err := bonus.ValidateSalary(69999)

			Convey("Then it is too small", func() {
				So(errors.Is(err, bonus.ErrTooSmall), ShouldBeTrue)
				So(err.Error(), ShouldEqual, "salary 69999 is too small (allowed 70000..750000)")
			})
		})

		Convey("When the salary is 750001", func() {
			err := bonus.ValidateSalary(750001)

			Convey("Then it is too big", func() {
				So(errors.Is(err, bonus.ErrTooBig), ShouldBeTrue)
				So(err.Error(), ShouldEqual, "salary 750001 is too big (allowed 70000..750000)")
			})
		})

		Convey("When the salary is one past the largest exact float64 integer", func() {
			err := bonus.ValidateSalary(bonus.Salary(1<<53 + 1))

			Convey("Then the message keeps every digit", func() {
				So(err.Error(), ShouldEqual, "salary 9007199254740993 is too big (allowed 70000..750000)")
			})
		})
	})
}

func TestValidateLevel(t *testing.T) {
	Convey("Given the level validator", t, func() {
		Convey("When the level sits on the bounds", func() {
			Convey("Then it is accepted", func() {
				So(bonus.ValidateLevel(7), ShouldBeNil)
				So(bonus.ValidateLevel(15), ShouldBeNil)
			})
		})

		Convey("When the level is outside the bounds", func() {
			Convey("Then each side reports its own kind", func() {
				var rangeErr *bonus.RangeError

				So(errors.As(bonus.ValidateLevel(6), &rangeErr), ShouldBeTrue)
				So(rangeErr.Kind, ShouldEqual, bonus.TooSmall)
				So(rangeErr.Min, ShouldEqual, 7)
				So(rangeErr.Max, ShouldEqual, 15)

				So(errors.As(bonus.ValidateLevel(16), &rangeErr), ShouldBeTrue)
				So(rangeErr.Kind, ShouldEqual, bonus.TooBig)
				So(rangeErr.Value, ShouldEqual, 16)
			})
		})

		Convey("When the level is far below the bounds", func() {
			err := bonus.ValidateLevel(bonus.Level(math.MinInt64))

			Convey("Then the reported value is exact", func() {
				So(errors.Is(err, bonus.ErrTooSmall), ShouldBeTrue)
				So(err.Error(), ShouldEqual, "level -9223372036854775808 is too small (allowed 7..15)")

				var rangeErr *bonus.RangeError
				So(errors.As(err, &rangeErr), ShouldBeTrue)
				So(rangeErr.Value, ShouldEqual, math.MinInt64)
			})
		})

		Convey("When the level is far above the bounds", func() {
			err := bonus.ValidateLevel(bonus.Level(math.MaxInt64))

			Convey("Then the reported value is exact", func() {
				So(err.Error(), ShouldEqual, "level 9223372036854775807 is too big (allowed 7..15)")
			})
		})
	})
}

func TestValidateRating(t *testing.T) {
	Convey("Given the rating validator", t, func() {
		Convey("When the rating sits on the bounds", func() {
			Convey("Then it is accepted", func() {
				So(bonus.ValidateRating(1.0), ShouldBeNil)
				So(bonus.ValidateRating(5.0), ShouldBeNil)
			})
		})

		Convey("When the rating is 0.0 or 6.0", func() {
			Convey("Then it is rejected", func() {
				So(errors.Is(bonus.ValidateRating(0.0), bonus.ErrTooSmall), ShouldBeTrue)
				So(errors.Is(bonus.ValidateRating(6.0), bonus.ErrTooBig), ShouldBeTrue)
			})
		})

		Convey("When the rating is infinite", func() {
			Convey("Then it falls on the matching side", func() {
				So(errors.Is(bonus.ValidateRating(bonus.Rating(math.Inf(-1))), bonus.ErrTooSmall), ShouldBeTrue)
				So(errors.Is(bonus.ValidateRating(bonus.Rating(math.Inf(1))), bonus.ErrTooBig), ShouldBeTrue)
			})
		})

		Convey("When the rating is NaN", func() {
			err := bonus.ValidateRating(bonus.Rating(math.NaN()))

			Convey("Then it is out of range but on neither side", func() {
				So(errors.Is(err, bonus.ErrOutOfRange), ShouldBeTrue)
				So(errors.Is(err, bonus.ErrTooSmall), ShouldBeFalse)
				So(errors.Is(err, bonus.ErrTooBig), ShouldBeFalse)

				var rangeErr *bonus.RangeError
				So(errors.As(err, &rangeErr), ShouldBeTrue)
				So(rangeErr.Kind, ShouldEqual, bonus.NotANumber)
				So(err.Error(), ShouldEqual, "performance rating NaN is not a number (allowed 1..5)")
			})
		})
	})
}

func TestViolationString(t *testing.T) {
	Convey("Given violation kinds", t, func() {
		Convey("Then they render as metric-friendly labels", func() {
			So(bonus.TooSmall.String(), ShouldEqual, "too_small")
			So(bonus.TooBig.String(), ShouldEqual, "too_big")
			So(bonus.NotANumber.String(), ShouldEqual, "not_a_number")
			So(bonus.Violation(0).String(), ShouldEqual, "unknown")
		})
	})
}
