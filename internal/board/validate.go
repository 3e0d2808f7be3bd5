package board

import (
	"unicode"
	"unicode/utf8"
)

const (
	MaxNameLength = 10

	MinAge = 0
	MaxAge = 200

	// SalaryLimit is the exclusive upper bound of a salary.
	SalaryLimit = 1_000_000_000
	// SalaryStep is the unit every salary must be a multiple of.
	SalaryStep = 1000
)

// ValidName reports whether name has between 1 and MaxNameLength characters,
// all of them letters.
func ValidName(name string) bool {
	n := utf8.RuneCountInString(name)
	if n < 1 || n > MaxNameLength {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return true
}

// ValidAge reports whether age is within [MinAge, MaxAge].
func ValidAge(age int) bool {
	return age >= MinAge && age <= MaxAge
}

// ValidAgeRange reports whether both bounds are valid ages and minAge does not
// exceed maxAge.
func ValidAgeRange(minAge, maxAge int) bool {
	return ValidAge(minAge) && ValidAge(maxAge) && minAge <= maxAge
}

// ValidTimeCondition reports whether s is one of the TimeCondition tokens.
func ValidTimeCondition(s string) bool {
	_, err := ParseTimeCondition(s)
	return err == nil
}

// ValidSalary reports whether salary is a non-negative multiple of SalaryStep
// below SalaryLimit.
func ValidSalary(salary int) bool {
	return salary >= 0 && salary < SalaryLimit && salary%SalaryStep == 0
}
