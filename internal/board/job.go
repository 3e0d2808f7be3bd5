package board

import "fmt"

// JobSpec holds the fields of a Job before it is validated and registered.
// TimeCondition is kept as the raw token so that validation can report it in
// order with the other fields.
type JobSpec struct {
	Name          string
	MinAge        int
	MaxAge        int
	TimeCondition string
	Salary        int
}

// Validate checks the fields of the JobSpec in the order name, age range, time
// condition, salary and returns the error for the first one that fails.
func (s JobSpec) Validate() error {
	if !ValidName(s.Name) {
		return ErrInvalidName
	}

	if !ValidAgeRange(s.MinAge, s.MaxAge) {
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

// Job is a registered job posting. Apart from its skills and view counts, a
// Job doesn't change after it's registered.
type Job struct {
	id            int
	name          string
	minAge        int
	maxAge        int
	timeCondition TimeCondition
	salary        int

	views  int
	skills SkillViews
}

// JobStatus is a point-in-time view of a Job's name and view counts.
type JobStatus struct {
	Name   string
	Views  int
	Skills []SkillCount
}

// newJob creates a Job from a validated spec.
func newJob(id int, spec JobSpec) (*Job, error) {
	tc, err := ParseTimeCondition(spec.TimeCondition)
	if err != nil {
		return nil, err
	}

	return &Job{
		id:            id,
		name:          spec.Name,
		minAge:        spec.MinAge,
		maxAge:        spec.MaxAge,
		timeCondition: tc,
		salary:        spec.Salary,
	}, nil
}

// ID returns the ID of the Job.
func (j *Job) ID() int {
	return j.id
}

// Name returns the name of the Job.
func (j *Job) Name() string {
	return j.name
}

// AgeRange returns the inclusive minimum and maximum age of the Job.
func (j *Job) AgeRange() (int, int) {
	return j.minAge, j.maxAge
}

// TimeCondition returns the TimeCondition of the Job.
func (j *Job) TimeCondition() TimeCondition {
	return j.timeCondition
}

// Salary returns the salary of the Job.
func (j *Job) Salary() int {
	return j.salary
}

// Views returns the total number of views credited to the Job.
func (j *Job) Views() int {
	return j.views
}

// Status returns the status of the Job.
func (j *Job) Status() *JobStatus {
	return &JobStatus{
		Name:   j.name,
		Views:  j.views,
		Skills: j.skills.Snapshot(),
	}
}

func (j *Job) String() string {
	return fmt.Sprintf(
		"Job %d: %s, Age Range: %d-%d, Time: %s, Salary: %d",
		j.id,
		j.name,
		j.minAge,
		j.maxAge,
		j.timeCondition,
		j.salary,
	)
}

// creditView adds one view for skill to the Job.
func (j *Job) creditView(skill string) {
	j.views++
	j.skills.Increment(skill)
}
