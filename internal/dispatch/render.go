package dispatch

import (
	"fmt"
	"strings"

	"github.com/nixpig/jobboard/internal/board"
)

// renderJobStatus renders a job as `name-views-(skill,count, ...)`, dropping
// the parenthesised part when the job has no skills.
func renderJobStatus(status *board.JobStatus) string {
	return fmt.Sprintf("%s-%d-%s", status.Name, status.Views, renderSkills(status.Skills))
}

// renderUserStatus renders a user as `name-(skill,count, ...)`, dropping the
// parenthesised part when the user has no skills.
func renderUserStatus(status *board.UserStatus) string {
	return fmt.Sprintf("%s-%s", status.Name, renderSkills(status.Skills))
}

func renderSkills(skills []board.SkillCount) string {
	if len(skills) == 0 {
		return ""
	}

	parts := make([]string, len(skills))
	for i, s := range skills {
		parts[i] = fmt.Sprintf("%s,%d", s.Skill, s.Count)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
