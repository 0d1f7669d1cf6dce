package extraction

import (
	"context"
	"regexp"
	"strings"

	"github.com/a3tai/mcp-resume-parser/internal/text"
)

const (
	// paragraphFilterThreshold is the scraped length above which paragraphs are filtered.
	paragraphFilterThreshold = 1000

	// minParagraphLength is the shortest paragraph kept by the filter.
	minParagraphLength = 50
)

var (
	// textArray matches a TJ operand array.
	textArray = regexp.MustCompile(`\[((?:\\.|[^\]\\])*)\]\s*TJ`)

	// literalInArray matches literal strings inside a TJ array.
	literalInArray = regexp.MustCompile(`\(((?:\\.|[^\\)])*)\)`)

	// showText matches a literal string operand of Tj.
	showText = regexp.MustCompile(`\(((?:\\.|[^\\)])*)\)\s*Tj`)

	blankLines = regexp.MustCompile(`\n[ \t]*\n`)
)

// RawScraper pattern-matches text straight out of the document bytes. It
// needs no parseable document structure, so it is the last resort for
// damaged files.
type RawScraper struct{}

// NewRawScraper creates a RawScraper.
func NewRawScraper() *RawScraper {
	return &RawScraper{}
}

// Name implements Strategy.
func (r *RawScraper) Name() string { return "raw-scrape" }

// ExtractText implements Strategy.
func (r *RawScraper) ExtractText(_ context.Context, data []byte) (string, error) {
	return r.Scrape(data), nil
}

// Scrape combines three independent passes: printable text of every stream
// body, the literal strings of TJ arrays, and Tj operands. Long results are
// reduced to readable paragraphs.
func (r *RawScraper) Scrape(data []byte) string {
	var parts []string

	for _, body := range streamBodies(data) {
		if s := strings.TrimSpace(printableASCII(body)); s != "" {
			parts = append(parts, s)
		}
	}

	var arrays []string
	for _, m := range textArray.FindAllSubmatch(data, -1) {
		var b strings.Builder
		for _, lit := range literalInArray.FindAllSubmatch(m[1], -1) {
			b.Write(decodePDFString(lit[1]))
		}
		if b.Len() > 0 {
			arrays = append(arrays, b.String())
		}
	}
	if len(arrays) > 0 {
		parts = append(parts, strings.Join(arrays, "\n"))
	}

	var operands []string
	for _, m := range showText.FindAllSubmatch(data, -1) {
		if s := decodePDFString(m[1]); len(s) > 0 {
			operands = append(operands, string(s))
		}
	}
	if len(operands) > 0 {
		parts = append(parts, strings.Join(operands, "\n"))
	}

	combined := strings.Join(parts, "\n\n")
	if len(combined) <= paragraphFilterThreshold {
		return combined
	}
	return readableParagraphs(combined)
}

// readableParagraphs keeps the blank-line separated paragraphs longer than
// minParagraphLength that pass the readability check.
func readableParagraphs(s string) string {
	var kept []string
	for _, p := range blankLines.Split(s, -1) {
		p = strings.TrimSpace(p)
		if len(p) > minParagraphLength && text.IsReadable(p) {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}

// printableASCII drops every byte outside printable ASCII, newline and tab.
func printableASCII(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		switch {
		case c >= 0x20 && c <= 0x7e, c == '\n', c == '\t':
			sb.WriteByte(c)
		case c == '\r':
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
