package resume

import (
	"regexp"
	"strings"
)

const degreeForms = `Bachelor(?:'?s)?(?: of (?:Science|Arts|Engineering|Business Administration|Fine Arts|Technology))?|` +
	`Master(?:'?s)?(?: of (?:Science|Arts|Engineering|Business Administration|Fine Arts|Technology))?|` +
	`Doctor of Philosophy|Associate(?:'?s)?(?: of (?:Science|Arts|Applied Science))?|` +
	`High School Diploma|Diploma|Ph\.?[ ]?D\.?|M\.?[ ]?B\.?[ ]?A\.?|` +
	`B\.?[ ]?Eng\.?|M\.?[ ]?Eng\.?|B\.?[ ]?Tech\.?|M\.?[ ]?Tech\.?|` +
	`B\.?[ ]?Sc?\.?|M\.?[ ]?Sc?\.?|B\.?[ ]?A\.?|M\.?[ ]?A\.?|A\.?[ ]?A\.?|A\.?[ ]?S\.?`

var (
	// degree matches a degree name bounded by whitespace, punctuation or the
	// line ends. Longer forms are listed first.
	degree = regexp.MustCompile(`(?:^|[\s,(])(` + degreeForms + `)(?:$|[\s,)])`)

	institution = regexp.MustCompile(`(?i)\b(?:University|College|Institute|Academy|Polytechnic|School)\b`)

	// fieldOfStudy matches "in Computer Science".
	fieldOfStudy = regexp.MustCompile(`\b[Ii]n[ \t]+([A-Z][A-Za-z&/' ]*[A-Za-z])`)

	remainderSeparator = regexp.MustCompile(`[ \t]*(?:[,;|]|[ \t]-[ \t])[ \t]*`)
)

// ExtractEducation finds the education section of text and parses it into
// entries.
func ExtractEducation(text string) []Education {
	section, ok := FindSection(text, Aliases(SectionEducation))
	if !ok {
		return []Education{}
	}
	return ParseEducation(section)
}

// ParseEducation splits an education section into entries and parses each
// one. Entries naming neither a degree nor an institution are dropped.
func ParseEducation(section string) []Education {
	entries := make([]Education, 0)
	for _, block := range splitEducationEntries(section) {
		e := parseEducationEntry(block)
		if e.Degree == "" && e.Institution == "" {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

type educationLine struct {
	degree      bool
	institution bool
	dated       bool
}

func classifyEducationLine(line string) educationLine {
	var l educationLine
	if isLocationLine(line) {
		return l
	}
	line = withoutLocation(line, findLocation([]string{line}))
	l.degree = degree.MatchString(line)
	l.institution = institution.MatchString(line)
	l.dated = hasDate(line) || yearOnly.MatchString(line)
	return l
}

// splitEducationEntries starts a new entry at a blank line, at a second
// degree or institution, or at a degree or institution following a date.
func splitEducationEntries(section string) [][]string {
	var (
		blocks  [][]string
		current []string
		hasDeg  bool
		hasInst bool
		dated   bool
	)
	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, current)
		}
		current = nil
		hasDeg, hasInst, dated = false, false, false
	}

	for _, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			if hasDeg || hasInst {
				flush()
			}
			continue
		}
		l := classifyEducationLine(line)
		if len(current) > 0 && ((l.degree && hasDeg) ||
			(l.institution && !l.degree && hasInst) ||
			(dated && (l.degree || l.institution))) {
			flush()
		}
		current = append(current, line)
		hasDeg = hasDeg || l.degree
		hasInst = hasInst || l.institution
		dated = dated || l.dated
	}
	flush()
	return blocks
}

// parseEducationEntry reads degree, field, institution, dates and location
// from the lines of one entry.
func parseEducationEntry(lines []string) Education {
	var e Education
	if len(lines) == 0 {
		return e
	}

	joined := strings.Join(lines, "\n")
	if start, end, ok := parseDateRange(joined); ok {
		e.StartDate, e.EndDate = start, end
	} else if m := graduation.FindStringSubmatch(joined); m != nil {
		e.EndDate = m[1]
	} else {
		for _, line := range lines {
			if yearOnly.MatchString(line) {
				e.EndDate = line
				break
			}
		}
	}
	e.Location = findLocation(lines)

	var leftovers, notes []string
	for _, line := range lines {
		if text, ok := bulletText(line); ok {
			if text != "" {
				notes = append(notes, text)
			}
			continue
		}
		if isDateOnly(line) || isLocationLine(line) {
			continue
		}
		text := stripDates(line)
		text = withoutLocation(text, findLocation([]string{text}))
		if text == "" {
			continue
		}

		if e.Degree == "" {
			if loc := degree.FindStringSubmatchIndex(text); loc != nil {
				e.Degree = text[loc[2]:loc[3]]
				rest := text[:loc[2]] + " " + text[loc[3]:]
				e.Degree, rest = extendDegree(e.Degree, strings.TrimSpace(rest))
				inst, field := splitRemainder(rest)
				if e.Institution == "" {
					e.Institution = inst
				}
				e.Field = field
				continue
			}
		}
		if e.Institution == "" && institution.MatchString(text) {
			e.Institution = text
			continue
		}
		leftovers = append(leftovers, text)
	}

	// An entry holding a degree and one unlabeled line names the
	// institution by elimination.
	if e.Institution == "" && e.Degree != "" && len(leftovers) > 0 && isHeaderish(leftovers[0]) {
		e.Institution = leftovers[0]
		leftovers = leftovers[1:]
	}
	e.Description = strings.Join(append(leftovers, notes...), " ")

	return e
}

// extendDegree folds an "of X" continuation into the degree name, as in
// "Bachelor of Commerce".
func extendDegree(deg, rest string) (string, string) {
	if !strings.HasPrefix(strings.ToLower(rest), "of ") {
		return deg, rest
	}
	cut := len(rest)
	if m := fieldOfStudy.FindStringIndex(rest); m != nil {
		cut = m[0]
	}
	if loc := remainderSeparator.FindStringIndex(rest); loc != nil && loc[0] < cut {
		cut = loc[0]
	}
	return deg + " " + strings.TrimSpace(rest[:cut]), strings.TrimSpace(rest[cut:])
}

// splitRemainder reads what follows a degree on its line: an "in <field>"
// phrase or separated parts, one of which may name the institution.
func splitRemainder(rest string) (inst, field string) {
	if m := fieldOfStudy.FindStringSubmatchIndex(rest); m != nil {
		field = strings.TrimSpace(rest[m[2]:m[3]])
		rest = rest[:m[0]] + " " + rest[m[1]:]
	}
	for _, part := range remainderSeparator.Split(rest, -1) {
		part = strings.TrimSpace(strings.Trim(part, "()"))
		if part == "" {
			continue
		}
		switch {
		case inst == "" && institution.MatchString(part):
			inst = part
		case field == "" && !strings.HasPrefix(strings.ToLower(part), "of "):
			field = part
		}
	}
	return inst, field
}
