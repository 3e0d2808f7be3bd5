package board

import "fmt"

// TimeCondition is the working-time arrangement of a Job or the preference of
// a User.
type TimeCondition int

const (
	// TimeConditionUnknown is the zero value. It is never assigned to a
	// registered Job or User.
	TimeConditionUnknown TimeCondition = iota

	TimeConditionFullTime
	TimeConditionPartTime
	TimeConditionProject
)

// NOTE: Keep in sync with the TimeCondition values above. The tokens are the
// exact values accepted in input.
var timeConditions = []string{
	"UNKNOWN",
	"FULLTIME",
	"PARTTIME",
	"PROJECT",
}

// String returns the input token of the TimeCondition.
func (c TimeCondition) String() string {
	if int(c) < 0 || int(c) >= len(timeConditions) {
		return timeConditions[0]
	}

	return timeConditions[c]
}

// ParseTimeCondition returns the TimeCondition for the token s. Matching is
// exact and case sensitive. Any other token returns ErrInvalidTimeCondition.
func ParseTimeCondition(s string) (TimeCondition, error) {
	for i := TimeConditionFullTime; int(i) < len(timeConditions); i++ {
		if timeConditions[i] == s {
			return i, nil
		}
	}

	return TimeConditionUnknown, fmt.Errorf("%w: %q", ErrInvalidTimeCondition, s)
}
