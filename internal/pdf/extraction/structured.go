package extraction

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"
)

const (
	// lineTolerance is the vertical distance above which two fragments sit on different lines.
	lineTolerance = 5.0

	// wordGapRatio is the horizontal gap, relative to font size, that separates words.
	wordGapRatio = 0.2

	defaultFontSize = 10.0
)

// StructuredExtractor rebuilds page text from positioned glyphs reported by
// ledongthuc/pdf.
type StructuredExtractor struct {
	logger zerolog.Logger
}

// NewStructuredExtractor creates a layout-aware extractor.
func NewStructuredExtractor(logger zerolog.Logger) *StructuredExtractor {
	return &StructuredExtractor{logger: logger}
}

// Name implements Strategy.
func (s *StructuredExtractor) Name() string { return "structured" }

// ExtractText implements Strategy.
func (s *StructuredExtractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := s.pageText(reader, pageNum)
		if err != nil {
			s.logger.Debug().Err(err).Int("page", pageNum).Msg("skipping page")
			continue
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}

// pageText lays out one page. Malformed pages make ledongthuc/pdf panic, so
// each page is recovered on its own.
func (s *StructuredExtractor) pageText(reader *pdf.Reader, pageNum int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic on page %d: %v", pageNum, r)
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return "", fmt.Errorf("invalid page %d", pageNum)
	}

	return strings.Join(layoutLines(page.Content().Text), "\n"), nil
}

// layoutLines groups fragments into lines, top to bottom, each read left to right.
func layoutLines(fragments []pdf.Text) []string {
	sorted := make([]pdf.Text, 0, len(fragments))
	for _, f := range fragments {
		if f.S != "" {
			sorted = append(sorted, f)
		}
	}
	// Stable sorts keep content stream order for fragments sharing a position.
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Y > sorted[j].Y })

	var (
		lines   []string
		current []pdf.Text
		lineY   float64
	)
	flush := func() {
		if len(current) == 0 {
			return
		}
		sort.SliceStable(current, func(i, j int) bool { return current[i].X < current[j].X })
		lines = append(lines, joinFragments(current))
		current = current[:0]
	}

	for _, f := range sorted {
		if len(current) > 0 && math.Abs(f.Y-lineY) > lineTolerance {
			flush()
		}
		if len(current) == 0 {
			lineY = f.Y
		}
		current = append(current, f)
	}
	flush()

	return lines
}

// joinFragments concatenates fragments that touch and separates the ones
// divided by a visible gap with a single space.
func joinFragments(line []pdf.Text) string {
	var b strings.Builder
	for i, f := range line {
		if i > 0 {
			prev := line[i-1]
			size := prev.FontSize
			if size <= 0 {
				size = defaultFontSize
			}
			gap := f.X - (prev.X + prev.W)
			if gap > wordGapRatio*size && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(f.S, " ") {
				b.WriteByte(' ')
			}
		}
		b.WriteString(f.S)
	}
	return b.String()
}
