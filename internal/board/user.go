package board

import "fmt"

// UserSpec holds the fields of a User before it is validated and registered.
type UserSpec struct {
	Name          string
	Age           int
	TimeCondition string
	Salary        int
}

// Validate checks the fields of the UserSpec in the order name, age, time
// condition, salary and returns the error for the first one that fails.
func (s UserSpec) Validate() error {
	if !ValidName(s.Name) {
		return ErrInvalidName
	}

	if !ValidAge(s.Age) {
		return ErrInvalidAge
	}

	if !ValidTimeCondition(s.TimeCondition) {
		return ErrInvalidTimeCondition
	}

	if !ValidSalary(s.Salary) {
		return ErrInvalidSalary
	}

	return nil
}

// User is a registered job seeker.
type User struct {
	id            int
	name          string
	age           int
	timeCondition TimeCondition
	salary        int

	totalViews int

	// Counts of a User's skills stay at 0. The mapping records which skills the
	// User has and the order they were added in.
	skills SkillViews
}

// UserStatus is a point-in-time view of a User's name, skills and views.
type UserStatus struct {
	Name       string
	TotalViews int
	Skills     []SkillCount
}

// newUser creates a User from a validated spec.
func newUser(id int, spec UserSpec) (*User, error) {
	tc, err := ParseTimeCondition(spec.TimeCondition)
	if err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		name:          spec.Name,
		age:           spec.Age,
		timeCondition: tc,
		salary:        spec.Salary,
	}, nil
}

func (u *User) ID() int {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Age() int {
	return u.age
}

func (u *User) TimeCondition() TimeCondition {
	return u.timeCondition
}

func (u *User) Salary() int {
	return u.salary
}

// TotalViews returns the number of skill views the User has made across all
// the Jobs they viewed.
func (u *User) TotalViews() int {
	return u.totalViews
}

// Status returns the status of the User.
func (u *User) Status() *UserStatus {
	return &UserStatus{
		Name:       u.name,
		TotalViews: u.totalViews,
		Skills:     u.skills.Snapshot(),
	}
}

func (u *User) String() string {
	return fmt.Sprintf(
		"User %d: %s, Age: %d, Time: %s, Salary: %d",
		u.id,
		u.name,
		u.age,
		u.timeCondition,
		u.salary,
	)
}

// view credits job with one view for each of the User's skills, in the order
// the skills were added.
func (u *User) view(job *Job) error {
	if u.skills.Len() == 0 {
		return ErrNoSkills
	}

	for skill := range u.skills.All() {
		job.creditView(skill)
		u.totalViews++
	}

	return nil
}
