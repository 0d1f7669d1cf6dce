package resume

import (
	"regexp"
	"strings"
)

const month = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|June?|July?|Aug(?:ust)?|` +
	`Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?`

// dateToken is a year, optionally preceded by a month name or number.
const dateToken = `(?:` + month + `,?[ \t]+|\d{1,2}/)?(?:19|20)\d{2}`

var (
	// dateRange matches "Jan 2020 - Present", "2016 - 2020", "03/2019 to 05/2021".
	dateRange = regexp.MustCompile(`(?i)\b(` + dateToken + `)[ \t]*(?:-|to|until)[ \t]*(` +
		dateToken + `|present|current|now|ongoing)\b`)

	// graduation matches "Class of 2020", "Graduated 2020", "Graduated: May 2020".
	graduation = regexp.MustCompile(`(?i)\b(?:class of|graduated|graduation|expected)[ \t]*:?[ \t]*(` + dateToken + `)\b`)

	// yearOnly matches a line consisting of a lone date.
	yearOnly = regexp.MustCompile(`(?i)^(?:` + dateToken + `)$`)

	// bullet matches "- text", "1. text" and, from glyphs extracted without
	// a gap, "-Text". Markers touching a digit stay text, as in "+1 415".
	bullet = regexp.MustCompile(`^[ \t]*(?:(?:[-*+>]|\d{1,2}[.)])[ \t]+(.*)|[-*>]([A-Za-z].*))$`)

	employerToken = regexp.MustCompile(`(?i)\b(?:Inc|LLC|Ltd|Corp|Corporation|Company|GmbH|PLC|LLP)\b\.?|\bCo\.`)

	// regionLocation matches "Austin, TX" anywhere in a line.
	regionLocation = regexp.MustCompile(`\b([A-Z][a-zA-Z.'-]+(?: [A-Z][a-zA-Z.'-]+){0,3}), ([A-Z]{2})\b`)

	// placeLocation matches a line that is only "City, Country".
	placeLocation = regexp.MustCompile(`^([A-Z][a-zA-Z.'-]+(?: [A-Z][a-zA-Z.'-]+){0,3}), ([A-Z][a-zA-Z.'-]+(?: [A-Z][a-zA-Z.'-]+){0,2})$`)

	urlPattern = regexp.MustCompile(`(?i)\b(?:https?://[^\s,;()<>]+|www\.[^\s,;()<>]+|linkedin\.com/in/[^\s,;()<>]+|github\.com/[^\s,;()<>]+)`)

	emptyBrackets = regexp.MustCompile(`\([ \t]*\)|\[[ \t]*\]`)

	trailingJoiners = regexp.MustCompile(`(?:[ \t]*(?:[|,;@(]|-|\bat\b))*[ \t]*$`)
	leadingJoiners  = regexp.MustCompile(`^(?:[ \t]*(?:[|,;@)]|-))*[ \t]*`)
)

// parseDateRange returns the first date range in s. Open ended ranges end in
// "Present", or "Ongoing" when written that way.
func parseDateRange(s string) (start, end string, ok bool) {
	m := dateRange.FindStringSubmatch(s)
	if m == nil {
		return "", "", false
	}
	return m[1], canonicalEnd(m[2]), true
}

func canonicalEnd(end string) string {
	switch strings.ToLower(end) {
	case "present", "current", "now":
		return "Present"
	case "ongoing":
		return "Ongoing"
	}
	return end
}

// stripDates removes date ranges and graduation phrases from s along with the
// separators left dangling around them.
func stripDates(s string) string {
	s = dateRange.ReplaceAllString(s, "")
	s = graduation.ReplaceAllString(s, "")
	s = emptyBrackets.ReplaceAllString(s, "")
	s = trailingJoiners.ReplaceAllString(s, "")
	s = leadingJoiners.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// hasDate reports whether s holds a date range or graduation phrase.
func hasDate(s string) bool {
	return dateRange.MatchString(s) || graduation.MatchString(s)
}

// isDateOnly reports whether s is nothing but dates and separators.
func isDateOnly(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if yearOnly.MatchString(s) {
		return true
	}
	return hasDate(s) && stripDates(s) == ""
}

// bulletText returns the text of a bullet line without its marker.
func bulletText(line string) (string, bool) {
	m := bullet.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1] + m[2]), true
}

func isBullet(line string) bool {
	return bullet.MatchString(line)
}

// extractAchievements returns every bullet of lines with markers stripped,
// dropping the ones shorter than 5 characters. The result is never empty: a
// single empty string stands in when nothing qualifies.
func extractAchievements(lines []string) []string {
	achievements := make([]string, 0, len(lines))
	for _, line := range lines {
		if text, ok := bulletText(line); ok && len(text) >= 5 {
			achievements = append(achievements, text)
		}
	}
	if len(achievements) == 0 {
		return []string{""}
	}
	return achievements
}

// findLocation returns the first "City, XX" in lines, or failing that the
// first line that is exactly "City, Place". Matches made of section header
// words or company suffixes are skipped.
func findLocation(lines []string) string {
	for _, line := range lines {
		for _, m := range regionLocation.FindAllStringSubmatch(line, -1) {
			if plausibleLocation(m[1], m[2]) {
				return m[0]
			}
		}
	}
	for _, line := range lines {
		if m := placeLocation.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			if plausibleLocation(m[1], m[2]) {
				return m[0]
			}
		}
	}
	return ""
}

func plausibleLocation(place, region string) bool {
	for _, part := range []string{place, region} {
		if isHeaderLine(part) || employerToken.MatchString(part) {
			return false
		}
	}
	return !hasDate(place + ", " + region)
}

// isLocationLine reports whether line holds nothing but a location.
func isLocationLine(line string) bool {
	line = strings.TrimSpace(line)
	loc := findLocation([]string{line})
	return loc != "" && loc == line
}

// splitLines splits s into trimmed, non-empty lines.
func splitLines(s string) []string {
	raw := strings.Split(s, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
