package resume

import (
	"github.com/a3tai/mcp-resume-parser/internal/text"
)

// MinTextLength is the shortest text worth structuring.
const MinTextLength = 20

// Extract structures resume text. Text that is too short or unreadable
// yields Empty().
func Extract(s string) Resume {
	s = text.NormalizeParagraphs(s)
	if len(s) < MinTextLength || !text.IsReadable(s) {
		return Empty()
	}

	return Resume{
		PersonalInfo: ExtractPersonalInfo(s),
		Skills:       ExtractSkills(s),
		Experience:   ExtractExperience(s),
		Education:    ExtractEducation(s),
		Projects:     ExtractProjects(s),
	}
}
