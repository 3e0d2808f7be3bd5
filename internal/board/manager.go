package board

import (
	"maps"
	"slices"
)

// Manager is responsible for registering Jobs and Users and tracking the
// views between them. A Manager isn't safe for concurrent use.
type Manager struct {
	// NOTE: Neither registry ever shrinks. Entities live for the lifetime of the
	// Manager.
	jobs  map[int]*Job
	users map[int]*User

	nextJobID  int
	nextUserID int

	// Only the registration order of the vocabulary is used; its counts stay 0.
	vocabulary     SkillViews
	restrictSkills bool
}

// NewManager creates an empty Manager. Both ID sequences start at 1.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		jobs:       make(map[int]*Job),
		users:      make(map[int]*User),
		nextJobID:  1,
		nextUserID: 1,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// AddJob validates spec and registers a new Job. It returns the Job's ID, or
// the first validation error in which case no ID is used up.
func (m *Manager) AddJob(spec JobSpec) (int, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}

	job, err := newJob(m.nextJobID, spec)
	if err != nil {
		return 0, err
	}

	m.jobs[job.id] = job
	m.nextJobID++

	return job.id, nil
}

// AddUser validates spec and registers a new User. It returns the User's ID,
// or the first validation error in which case no ID is used up.
func (m *Manager) AddUser(spec UserSpec) (int, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}

	user, err := newUser(m.nextUserID, spec)
	if err != nil {
		return 0, err
	}

	m.users[user.id] = user
	m.nextUserID++

	return user.id, nil
}

// AddJobSkill registers skill on the Job with the given id. It returns
// ErrJobNotFound if the Job doesn't exist and ErrDuplicateJobSkill if the Job
// already has skill.
func (m *Manager) AddJobSkill(id int, skill string) error {
	job, err := m.GetJob(id)
	if err != nil {
		return err
	}

	if err := m.checkSkill(skill); err != nil {
		return err
	}

	if !job.skills.Add(skill) {
		return ErrDuplicateJobSkill
	}

	return nil
}

// AddUserSkill registers skill on the User with the given id. It returns
// ErrUserNotFound if the User doesn't exist and ErrDuplicateUserSkill if the
// User already has skill.
func (m *Manager) AddUserSkill(id int, skill string) error {
	user, err := m.GetUser(id)
	if err != nil {
		return err
	}

	if err := m.checkSkill(skill); err != nil {
		return err
	}

	if !user.skills.Add(skill) {
		return ErrDuplicateUserSkill
	}

	return nil
}

// View records the User with userID viewing the Job with jobID. For each of
// the User's skills, the Job's count for that skill, the Job's views and the
// User's total views all go up by one.
//
// The User is looked up first, so ErrUserNotFound takes precedence over
// ErrJobNotFound. A User without skills returns ErrNoSkills.
func (m *Manager) View(userID, jobID int) error {
	user, err := m.GetUser(userID)
	if err != nil {
		return err
	}

	job, err := m.GetJob(jobID)
	if err != nil {
		return err
	}

	return user.view(job)
}

// QueryJob returns the status of the Job with the given id or ErrJobNotFound
// if it doesn't exist.
func (m *Manager) QueryJob(id int) (*JobStatus, error) {
	job, err := m.GetJob(id)
	if err != nil {
		return nil, err
	}

	return job.Status(), nil
}

// QueryUser returns the status of the User with the given id or
// ErrUserNotFound if it doesn't exist.
func (m *Manager) QueryUser(id int) (*UserStatus, error) {
	user, err := m.GetUser(id)
	if err != nil {
		return nil, err
	}

	return user.Status(), nil
}

// GetJob returns the Job with the given id or ErrJobNotFound if it doesn't
// exist.
func (m *Manager) GetJob(id int) (*Job, error) {
	job, exists := m.jobs[id]
	if !exists {
		return nil, ErrJobNotFound
	}

	return job, nil
}

// GetUser returns the User with the given id or ErrUserNotFound if it doesn't
// exist.
func (m *Manager) GetUser(id int) (*User, error) {
	user, exists := m.users[id]
	if !exists {
		return nil, ErrUserNotFound
	}

	return user, nil
}

// Jobs returns all registered Jobs ordered by ID.
func (m *Manager) Jobs() []*Job {
	jobs := make([]*Job, 0, len(m.jobs))
	for _, id := range slices.Sorted(maps.Keys(m.jobs)) {
		jobs = append(jobs, m.jobs[id])
	}

	return jobs
}

// Users returns all registered Users ordered by ID.
func (m *Manager) Users() []*User {
	users := make([]*User, 0, len(m.users))
	for _, id := range slices.Sorted(maps.Keys(m.users)) {
		users = append(users, m.users[id])
	}

	return users
}

// Vocabulary returns the skills the Manager was configured with.
func (m *Manager) Vocabulary() []string {
	skills := make([]string, 0, m.vocabulary.Len())
	for skill := range m.vocabulary.All() {
		skills = append(skills, skill)
	}

	return skills
}

func (m *Manager) checkSkill(skill string) error {
	if m.restrictSkills && !m.vocabulary.Has(skill) {
		return ErrUnknownSkill
	}

	return nil
}
