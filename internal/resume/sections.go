// Package resume recovers a structured resume record from plain text with
// ordered regular expression heuristics. Nothing in this package returns an
// error or panics on unexpected input: every extractor degrades to empty
// values.
package resume

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Section names used by the registry.
const (
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionAwards         = "awards"
	SectionLanguages      = "languages"
	SectionInterests      = "interests"
	SectionReferences     = "references"
	SectionVolunteer      = "volunteer"
	SectionPublications   = "publications"
)

// SectionAliases lists the header spellings of one section.
type SectionAliases struct {
	Name    string
	Aliases []string
}

// SectionHeaders is the registry of every known section header. Segmentation
// of any one section uses the whole registry to find where that section ends.
var SectionHeaders = []SectionAliases{
	{SectionSummary, []string{"PROFESSIONAL SUMMARY", "CAREER OBJECTIVE", "SUMMARY", "PROFILE", "OBJECTIVE", "ABOUT ME"}},
	{SectionExperience, []string{
		"PROFESSIONAL EXPERIENCE", "EMPLOYMENT HISTORY", "WORK EXPERIENCE", "WORK HISTORY", "EXPERIENCE", "EMPLOYMENT",
	}},
	{SectionEducation, []string{"ACADEMIC BACKGROUND", "EDUCATION", "QUALIFICATIONS"}},
	{SectionSkills, []string{"CORE COMPETENCIES", "TECHNICAL SKILLS", "COMPETENCIES", "SKILLS"}},
	{SectionProjects, []string{"PERSONAL PROJECTS", "KEY PROJECTS", "PROJECTS"}},
	{SectionCertifications, []string{"CERTIFICATIONS", "LICENSES", "CERTIFICATES"}},
	{SectionAwards, []string{"AWARDS", "HONORS"}},
	{SectionLanguages, []string{"LANGUAGES"}},
	{SectionInterests, []string{"INTERESTS", "HOBBIES"}},
	{SectionReferences, []string{"REFERENCES"}},
	{SectionVolunteer, []string{"VOLUNTEER EXPERIENCE", "VOLUNTEERING", "VOLUNTEER"}},
	{SectionPublications, []string{"PUBLICATIONS"}},
}

// Aliases returns the registered aliases of the named section.
func Aliases(name string) []string {
	for _, s := range SectionHeaders {
		if s.Name == name {
			return s.Aliases
		}
	}
	return nil
}

// headerShapes build the header patterns for one alias, strongest first:
// alone on its line, at a line start, followed by a colon, anywhere as a word.
var headerShapes = []func(alias string) string{
	func(a string) string { return `(?im)^[ \t]*` + a + `[ \t]*:?[ \t]*$` },
	func(a string) string { return `(?im)^[ \t]*` + a + `\b` },
	func(a string) string { return `(?i)\b` + a + `[ \t]*:` },
	func(a string) string { return `(?i)\b` + a + `\b` },
}

var (
	patternCache sync.Map // string -> *regexp.Regexp

	leadingSeparator = regexp.MustCompile(`^[ \t]*[:-]*[ \t]*`)
)

func compileCached(expr string) *regexp.Regexp {
	if re, ok := patternCache.Load(expr); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(expr)
	patternCache.Store(expr, re)
	return re
}

// aliasPattern quotes an alias and lets its words be separated by any
// horizontal whitespace.
func aliasPattern(alias string) string {
	words := strings.Fields(alias)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(words, `[ \t]+`)
}

// FindSection returns the text owned by the section introduced by one of
// aliases. The span starts right after the header and ends at the nearest
// later occurrence of another registered section's header as a whole word,
// or at the end of text. Leading and trailing separators are trimmed.
//
// A body that mentions another section by name, such as "project" in an
// experience bullet, ends the span at that word.
func FindSection(text string, aliases []string) (string, bool) {
	if text == "" || len(aliases) == 0 {
		return "", false
	}

	ordered := append([]string(nil), aliases...)
	sort.SliceStable(ordered, func(i, j int) bool { return len(ordered[i]) > len(ordered[j]) })

	start := -1
	for _, shape := range headerShapes {
		for _, alias := range ordered {
			if loc := compileCached(shape(aliasPattern(alias))).FindStringIndex(text); loc != nil {
				start = loc[1]
				break
			}
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return "", false
	}

	end := len(text)
	if others := otherAliases(aliases); len(others) > 0 {
		boundary := compileCached(`(?i)\b(?:` + strings.Join(others, "|") + `)\b`)
		if loc := boundary.FindStringIndex(text[start:]); loc != nil {
			end = start + loc[0]
		}
	}

	return trimSeparators(text[start:end]), true
}

// FindSections returns the span of every registered section present in text,
// in registry order.
func FindSections(text string) []Section {
	sections := make([]Section, 0, len(SectionHeaders))
	for _, s := range SectionHeaders {
		if span, ok := FindSection(text, s.Aliases); ok {
			sections = append(sections, Section{Name: s.Name, Text: span})
		}
	}
	return sections
}

// otherAliases returns the patterns of every registered alias not among
// aliases, longest first.
func otherAliases(aliases []string) []string {
	own := make(map[string]bool, len(aliases))
	for _, a := range aliases {
		own[strings.ToUpper(strings.TrimSpace(a))] = true
	}

	var others []string
	for _, s := range SectionHeaders {
		for _, a := range s.Aliases {
			if !own[a] {
				others = append(others, a)
			}
		}
	}
	sort.SliceStable(others, func(i, j int) bool { return len(others[i]) > len(others[j]) })

	for i, a := range others {
		others[i] = aliasPattern(a)
	}
	return others
}

// isHeaderLine reports whether line is exactly a registered section header.
func isHeaderLine(line string) bool {
	return anyHeaderLine.MatchString(line)
}

var anyHeaderLine = regexp.MustCompile(`(?im)^[ \t]*(?:` + strings.Join(otherAliases(nil), "|") + `)[ \t]*:?[ \t]*$`)

func trimSeparators(span string) string {
	span = leadingSeparator.ReplaceAllString(span, "")
	span = strings.TrimSpace(span)
	return strings.TrimRight(span, " \t\n:-")
}
