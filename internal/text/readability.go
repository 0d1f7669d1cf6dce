package text

import (
	"strings"
)

// ReadableRatio is the share of ordinary characters above which text counts as readable.
const ReadableRatio = 0.7

// domainWords make text readable on their own, whatever the character mix.
var domainWords = []string{
	"experience",
	"education",
	"skills",
	"project",
	"work",
	"job",
	"professional",
}

// IsReadable reports whether s plausibly holds human-readable resume content:
// more than 70% of its characters are letters, digits, spaces or common
// punctuation, or it mentions one of the resume domain words.
func IsReadable(s string) bool {
	if s == "" {
		return false
	}

	if CharacterRatio(s) > ReadableRatio {
		return true
	}

	lower := strings.ToLower(s)
	for _, word := range domainWords {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}

// CharacterRatio returns the share of runes in s that belong to the
// [A-Za-z0-9 .,;:'"!?()-] class.
func CharacterRatio(s string) float64 {
	total, ordinary := 0, 0
	for _, r := range s {
		total++
		if isOrdinary(r) {
			ordinary++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(ordinary) / float64(total)
}

func isOrdinary(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case ' ', '.', ',', ';', ':', '\'', '"', '!', '?', '(', ')', '-':
		return true
	}
	return false
}
