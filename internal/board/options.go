package board

// Option configures a Manager.
type Option func(*Manager)

// WithVocabulary sets the skills known to the Manager. Duplicates are kept
// once, in the order first seen.
func WithVocabulary(skills []string) Option {
	return func(m *Manager) {
		for _, skill := range skills {
			m.vocabulary.Add(skill)
		}
	}
}

// WithRestrictedSkills makes the Manager reject skills that aren't in its
// vocabulary with ErrUnknownSkill. By default any skill is accepted.
func WithRestrictedSkills(restrict bool) Option {
	return func(m *Manager) {
		m.restrictSkills = restrict
	}
}
