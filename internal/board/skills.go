package board

import "iter"

// SkillCount is a skill and the number of views credited to it.
type SkillCount struct {
	Skill string
	Count int
}

// SkillViews maps skill names to view counts and remembers the order in which
// skills were first added. The zero value is an empty SkillViews ready to use.
type SkillViews struct {
	order  []string
	counts map[string]int
}

// Add registers skill with a count of 0. It returns false, and leaves the
// count untouched, if skill is already registered.
func (s *SkillViews) Add(skill string) bool {
	if s.Has(skill) {
		return false
	}

	if s.counts == nil {
		s.counts = make(map[string]int)
	}

	s.order = append(s.order, skill)
	s.counts[skill] = 0

	return true
}

// Increment adds one to the count of skill, registering it first if needed.
func (s *SkillViews) Increment(skill string) {
	s.Add(skill)
	s.counts[skill]++
}

// Has reports whether skill is registered.
func (s *SkillViews) Has(skill string) bool {
	_, ok := s.counts[skill]
	return ok
}

// Count returns the count of skill, or 0 if it isn't registered.
func (s *SkillViews) Count(skill string) int {
	return s.counts[skill]
}

// Len returns the number of registered skills.
func (s *SkillViews) Len() int {
	return len(s.order)
}

// All iterates over skills and their counts in registration order.
func (s *SkillViews) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, skill := range s.order {
			if !yield(skill, s.counts[skill]) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the skills and their counts in registration
// order.
func (s *SkillViews) Snapshot() []SkillCount {
	snapshot := make([]SkillCount, 0, len(s.order))

	for skill, count := range s.All() {
		snapshot = append(snapshot, SkillCount{Skill: skill, Count: count})
	}

	return snapshot
}
