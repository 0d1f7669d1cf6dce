package resume

import (
	"regexp"
	"strings"
)

const (
	maxHeaderLineLength = 60
	minHeaderPairGap    = 20
	maxEntryHeaderLines = 6
	maxCandidateLength  = 80
)

// roleAtCompany matches "Software Engineer at Acme", "Engineer @ Acme",
// "Engineer | Acme" and "Engineer - Acme".
var roleAtCompany = regexp.MustCompile(`^(.+?)[ \t]+(?:at|AT|At|@|\||-)[ \t]+(.+)$`)

// ExtractExperience finds the work history section of text and parses it
// into entries.
func ExtractExperience(text string) []Experience {
	section, ok := FindSection(text, Aliases(SectionExperience))
	if !ok {
		return []Experience{}
	}
	return ParseExperience(section)
}

// ParseExperience splits a work history section into entries and parses
// each one. Entries without a company or a position are dropped.
func ParseExperience(section string) []Experience {
	entries := make([]Experience, 0)
	for _, block := range splitExperienceEntries(section) {
		e := parseExperienceEntry(block)
		if e.Company == "" && e.Position == "" {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// splitExperienceEntries tries header pairs, then blank lines, then date
// ranges. Returned blocks hold only non-empty trimmed lines.
func splitExperienceEntries(section string) [][]string {
	raw := strings.Split(section, "\n")
	for i := range raw {
		raw[i] = strings.TrimSpace(raw[i])
	}
	lines := splitLines(section)
	if len(lines) == 0 {
		return nil
	}

	if blocks := splitOnHeaderPairs(lines); len(blocks) >= 2 {
		return blocks
	}
	if blocks := splitOnBlankLines(raw); len(blocks) >= 2 {
		return blocks
	}
	if blocks := splitOnDates(lines); len(blocks) >= 2 {
		return blocks
	}
	return [][]string{lines}
}

// isHeaderish reports whether line could name a position or an employer.
func isHeaderish(line string) bool {
	return line != "" &&
		len(line) <= maxHeaderLineLength &&
		!isBullet(line) &&
		!isDateOnly(line) &&
		!isLocationLine(line) &&
		!isHeaderLine(line)
}

// splitOnHeaderPairs starts an entry at every two consecutive header-like
// lines that have a date range within the next line. Pairs closer than
// minHeaderPairGap characters to the previous pair are ignored.
func splitOnHeaderPairs(lines []string) [][]string {
	var starts []int
	prevEnd := -1
	for i := 0; i+1 < len(lines); i++ {
		if !isHeaderish(lines[i]) || !isHeaderish(lines[i+1]) {
			continue
		}
		dated := false
		for j := i; j <= i+2 && j < len(lines); j++ {
			if hasDate(lines[j]) {
				dated = true
				break
			}
		}
		if !dated {
			continue
		}
		if prevEnd >= 0 && (i <= prevEnd || charsBetween(lines, prevEnd+1, i) <= minHeaderPairGap) {
			continue
		}
		starts = append(starts, i)
		prevEnd = i + 1
	}
	if len(starts) < 2 {
		return nil
	}
	starts[0] = 0
	return cutAt(lines, starts)
}

func charsBetween(lines []string, from, to int) int {
	n := 0
	for i := from; i < to; i++ {
		n += len(lines[i]) + 1
	}
	return n
}

func splitOnBlankLines(raw []string) [][]string {
	var (
		blocks  [][]string
		current []string
	)
	for _, line := range raw {
		if line == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// splitOnDates starts an entry at every line holding a date range, pulling
// the start back over up to two header-like lines above it.
func splitOnDates(lines []string) [][]string {
	var dated []int
	for i, line := range lines {
		if dateRange.MatchString(line) {
			dated = append(dated, i)
		}
	}
	if len(dated) < 2 {
		return nil
	}

	starts := make([]int, 0, len(dated))
	for _, d := range dated {
		start := d
		floor := 0
		if len(starts) > 0 {
			floor = starts[len(starts)-1] + 1
		}
		for k := 0; k < 2 && start-1 >= floor && isHeaderish(lines[start-1]); k++ {
			start--
		}
		if len(starts) > 0 && start <= starts[len(starts)-1] {
			continue
		}
		starts = append(starts, start)
	}
	if len(starts) < 2 {
		return nil
	}
	starts[0] = 0
	return cutAt(lines, starts)
}

func cutAt(lines []string, starts []int) [][]string {
	blocks := make([][]string, 0, len(starts))
	for i, s := range starts {
		end := len(lines)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		blocks = append(blocks, lines[s:end])
	}
	return blocks
}

// parseExperienceEntry reads position, company, dates, location,
// achievements and description from the lines of one entry.
func parseExperienceEntry(lines []string) Experience {
	e := Experience{EndDate: "Present"}
	if len(lines) == 0 {
		e.Achievements = []string{""}
		return e
	}

	if start, end, ok := parseDateRange(strings.Join(lines, "\n")); ok {
		e.StartDate, e.EndDate = start, end
	}
	e.Location = findLocation(lines)
	e.Achievements = extractAchievements(lines)

	used := make(map[int]bool)
	candidates := headerCandidates(lines, e.Location)

	if len(candidates) > 0 {
		if position, company, ok := splitRoleAtCompany(candidates[0].text); ok {
			e.Position, e.Company = position, company
			used[candidates[0].line] = true
			candidates = nil
		}
	}

	if len(candidates) > 0 {
		companyIdx := -1
		for i, c := range candidates {
			if employerToken.MatchString(c.text) {
				companyIdx = i
				break
			}
		}
		switch {
		case companyIdx >= 0:
			e.Company = candidates[companyIdx].text
			used[candidates[companyIdx].line] = true
			for i, c := range candidates {
				if i != companyIdx {
					e.Position = c.text
					used[c.line] = true
					break
				}
			}
		default:
			e.Position = candidates[0].text
			used[candidates[0].line] = true
			if len(candidates) > 1 {
				e.Company = candidates[1].text
				used[candidates[1].line] = true
			}
		}
	}

	var description []string
	for i, line := range lines {
		if used[i] || isBullet(line) || isDateOnly(line) || isLocationLine(line) || isHeaderLine(line) {
			continue
		}
		if rest := withoutLocation(stripDates(line), e.Location); rest != "" {
			description = append(description, rest)
		}
	}
	e.Description = strings.Join(description, " ")

	return e
}

type candidate struct {
	line int
	text string
}

// headerCandidates returns the lines before the first bullet that could
// name a position or company, with dates and the location removed.
func headerCandidates(lines []string, location string) []candidate {
	var out []candidate
	for i, line := range lines {
		if i >= maxEntryHeaderLines || isBullet(line) {
			break
		}
		if isDateOnly(line) || isLocationLine(line) || isHeaderLine(line) {
			continue
		}
		text := withoutLocation(stripDates(line), location)
		if text == "" || len(text) > maxCandidateLength {
			continue
		}
		out = append(out, candidate{line: i, text: text})
	}
	return out
}

// splitRoleAtCompany splits "Position at Company". The halves are swapped
// when only the left one names an employer.
func splitRoleAtCompany(line string) (position, company string, ok bool) {
	m := roleAtCompany.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	left := strings.TrimSpace(m[1])
	right := strings.TrimSpace(m[2])
	if left == "" || right == "" || isLocationLine(right) || isLocationLine(left) {
		return "", "", false
	}
	if employerToken.MatchString(left) && !employerToken.MatchString(right) {
		left, right = right, left
	}
	return left, right, true
}

// withoutLocation removes location from s along with the separators left
// around it.
func withoutLocation(s, location string) string {
	if location == "" || !strings.Contains(s, location) {
		return strings.TrimSpace(s)
	}
	s = strings.Replace(s, location, "", 1)
	s = trailingJoiners.ReplaceAllString(s, "")
	s = leadingJoiners.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
