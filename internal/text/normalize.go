// Package text holds the plain-text helpers shared by the extraction and
// resume parsing layers: normalization and the readability heuristic.
package text

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// escapeArtifact matches PDF string escapes that leak into extracted text,
	// e.g. "\050" or "\(".
	escapeArtifact = regexp.MustCompile(`\\(?:[0-7]{1,3}|[^\n])`)

	// nonPrintable matches everything outside printable ASCII, newline and tab.
	nonPrintable = regexp.MustCompile(`[^\x20-\x7E\n\t]`)

	horizontalSpace = regexp.MustCompile(`[ \t]+`)
)

// typographic maps the punctuation resume templates love to ASCII so that it
// survives the printable-ASCII filter.
var typographic = strings.NewReplacer(
	"•", "-", // bullet
	"●", "-", // black circle
	"▪", "-", // small black square
	"■", "-", // black square
	"◦", "-", // white bullet
	"‣", "-", // triangular bullet
	"⁃", "-", // hyphen bullet
	"·", "-", // middle dot
	"➢", "-", // arrowhead
	"‐", "-",
	"‑", "-",
	"‒", "-",
	"–", "-",
	"—", "-",
	"―", "-",
	"−", "-",
	"‘", "'",
	"’", "'",
	"‚", "'",
	"“", `"`,
	"”", `"`,
	"„", `"`,
	"…", "...",
	"\u00a0", " ", // no-break space
	"\u2002", " ",
	"\u2003", " ",
	"\u2009", " ",
	"\u200b", "", // zero width space
	"\ufeff", "", // byte order mark
)

// Normalize cleans extracted text: line endings become LF, typographic
// characters and accents are folded to ASCII, PDF escape artifacts and
// non-printable characters are dropped, whitespace runs collapse to one space,
// every line is trimmed and empty lines are removed.
//
// Normalize(Normalize(s)) == Normalize(s) for every s.
func Normalize(s string) string {
	return normalize(s, false)
}

// NormalizeParagraphs is Normalize, except that runs of empty lines collapse
// to a single blank line instead of disappearing. Leading and trailing blank
// lines are dropped.
func NormalizeParagraphs(s string) string {
	return normalize(s, true)
}

func normalize(s string, keepParagraphs bool) string {
	if s == "" {
		return ""
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = foldToASCII(s)
	s = escapeArtifact.ReplaceAllString(s, "")
	s = nonPrintable.ReplaceAllString(s, "")

	lines := strings.Split(s, "\n")
	kept := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(horizontalSpace.ReplaceAllString(line, " "))
		if line == "" {
			blank = true
			continue
		}
		if blank && keepParagraphs && len(kept) > 0 {
			kept = append(kept, "")
		}
		blank = false
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}

// foldToASCII replaces typographic punctuation and strips combining marks so
// "José – Résumé" becomes "Jose - Resume".
func foldToASCII(s string) string {
	s = typographic.Replace(s)

	// transform.Chain keeps state, so build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
