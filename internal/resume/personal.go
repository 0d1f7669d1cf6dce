package resume

import (
	"regexp"
	"strings"
)

const (
	nameScanLines         = 5
	nameFallbackLines     = 3
	maxNameFallbackLength = 40
	maxTitleLength        = 50
	headerBlockLines      = 10
	maxSummaryLength      = 500
	minSummaryLength      = 20
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(?:\+?\d{1,3}[ .-]?)?\(?\d{3}\)?[ .-]?\d{3}[ .-]?\d{4}\b`)

	// strictName is two or three capitalized words.
	strictName = regexp.MustCompile(`^[A-Z][a-zA-Z'.-]*(?: [A-Z][a-zA-Z'.-]*){1,2}$`)
)

// ExtractPersonalInfo pulls contact details from the top of the resume and
// the summary from its summary section. The location falls back to the first
// one found anywhere in text when the lines above the first section hold none.
func ExtractPersonalInfo(text string) PersonalInfo {
	var info PersonalInfo

	info.Email = emailPattern.FindString(text)
	info.Phone = strings.TrimSpace(phonePattern.FindString(text))
	info.Website = urlPattern.FindString(text)

	lines := splitLines(text)
	nameIdx := findName(lines)
	if nameIdx >= 0 {
		info.Name = lines[nameIdx]
		if nameIdx+1 < len(lines) && isTitle(lines[nameIdx+1]) {
			info.Title = lines[nameIdx+1]
		}
	}

	// The contact block wins over the rest of the text.
	info.Location = findLocation(headerBlock(lines))
	if info.Location == "" {
		info.Location = findLocation(lines)
	}

	if summary, ok := FindSection(text, Aliases(SectionSummary)); ok {
		if len(summary) > maxSummaryLength {
			summary = strings.TrimSpace(summary[:maxSummaryLength])
		}
		if len(summary) >= minSummaryLength {
			info.Summary = summary
		}
	}

	return info
}

// findName returns the index of the name line, or -1. The first five lines
// are searched for two or three capitalized words; failing that the first
// short line among the first three is taken.
func findName(lines []string) int {
	for i := 0; i < len(lines) && i < nameScanLines; i++ {
		line := lines[i]
		if strictName.MatchString(line) && !isHeaderLine(line) {
			return i
		}
	}
	for i := 0; i < len(lines) && i < nameFallbackLines; i++ {
		line := lines[i]
		if len(line) >= maxNameFallbackLength || strings.Contains(line, "@") || isHeaderLine(line) {
			continue
		}
		if line[0] >= '0' && line[0] <= '9' {
			continue
		}
		return i
	}
	return -1
}

func isTitle(line string) bool {
	return len(line) < maxTitleLength &&
		!strings.Contains(line, "@") &&
		!emailPattern.MatchString(line) &&
		!phonePattern.MatchString(line) &&
		!urlPattern.MatchString(line) &&
		!isHeaderLine(line)
}

// headerBlock returns the lines above the first section header, capped at
// headerBlockLines.
func headerBlock(lines []string) []string {
	end := len(lines)
	if end > headerBlockLines {
		end = headerBlockLines
	}
	for i := 0; i < end; i++ {
		if isHeaderLine(lines[i]) {
			return lines[:i]
		}
	}
	return lines[:end]
}
