package resume

import (
	"regexp"
	"strings"
)

var technologies = regexp.MustCompile(`(?i)^(?:Technologies|Tech Stack|Tools|Built with)[ \t]*:?[ \t]*(.+)$`)

// ExtractProjects finds the projects section of text and parses it into
// entries.
func ExtractProjects(text string) []Project {
	section, ok := FindSection(text, Aliases(SectionProjects))
	if !ok {
		return []Project{}
	}
	return ParseProjects(section)
}

// ParseProjects splits a projects section into entries and parses each one.
func ParseProjects(section string) []Project {
	projects := make([]Project, 0)
	for _, block := range splitProjectEntries(section) {
		if p := parseProjectEntry(block); p.Name != "" {
			projects = append(projects, p)
		}
	}
	return projects
}

func isTechnologiesLine(line string) bool {
	return technologies.MatchString(line)
}

func isBareURL(line string) bool {
	return urlPattern.FindString(line) == line
}

// splitProjectEntries starts a new entry at a short plain line that follows
// a blank line, a bullet, a technologies line or a link.
func splitProjectEntries(section string) [][]string {
	var (
		blocks   [][]string
		current  []string
		boundary bool
	)
	for _, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			boundary = true
			continue
		}
		startsEntry := boundary &&
			len(line) <= maxHeaderLineLength &&
			!isBullet(line) &&
			!isTechnologiesLine(line) &&
			!isBareURL(line) &&
			!isDateOnly(line)
		if startsEntry && len(current) > 0 {
			blocks = append(blocks, current)
			current = nil
		}
		current = append(current, line)
		boundary = isBullet(line) || isTechnologiesLine(line) || isBareURL(line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// parseProjectEntry reads name, technologies, link, dates, achievements and
// description from the lines of one entry. The first line names the project.
func parseProjectEntry(lines []string) Project {
	p := Project{Achievements: []string{""}}
	if len(lines) == 0 {
		return p
	}

	joined := strings.Join(lines, "\n")
	if start, end, ok := parseDateRange(joined); ok {
		p.StartDate, p.EndDate = start, end
	}
	p.Link = urlPattern.FindString(joined)
	p.Achievements = extractAchievements(lines)

	name := lines[0]
	if p.Link != "" {
		name = strings.Replace(name, p.Link, "", 1)
	}
	name = stripDates(name)
	name = trailingJoiners.ReplaceAllString(name, "")
	p.Name = strings.TrimSpace(name)

	for _, line := range lines[1:] {
		if m := technologies.FindStringSubmatch(line); m != nil {
			if p.Technologies == "" {
				p.Technologies = strings.TrimSpace(m[1])
			}
			continue
		}
		if p.Description == "" && !isBullet(line) && !isBareURL(line) && !isDateOnly(line) {
			p.Description = line
		}
	}

	return p
}
