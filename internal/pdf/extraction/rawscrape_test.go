package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountTextMarkers(t *testing.T) {
	content := resumeContentStream(sampleResumeLines...)

	tests := []struct {
		name string
		data []byte
		want int
	}{
		{"empty", nil, 0},
		{"scanned image", scannedPDF, 0},
		{"operators in words do not count", []byte("BTX TJs xTj OBT"), 0},
		{"uncompressed stream", buildPDF(content, false), 2 * len(sampleResumeLines)},
		{"garbage with operators", markerRichGarbage, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountTextMarkers(tt.data))
		})
	}

	// Compressed bytes may contain stray operator-like sequences.
	compressed := CountTextMarkers(buildPDF(content, true))
	assert.GreaterOrEqual(t, compressed, 2*len(sampleResumeLines))
}

func TestDetectScanned(t *testing.T) {
	assert.True(t, DetectScanned(scannedPDF))
	assert.True(t, DetectScanned(nil))
	assert.True(t, DetectScanned([]byte(strings.Repeat("BT ", ScannedMarkerThreshold-1))))
	assert.False(t, DetectScanned([]byte(strings.Repeat("BT ", ScannedMarkerThreshold))))
	assert.False(t, DetectScanned(buildPDF(resumeContentStream(sampleResumeLines...), true)))
}

func TestRawScraper_Scrape(t *testing.T) {
	t.Run("uncompressed document", func(t *testing.T) {
		got := NewRawScraper().Scrape(buildPDF(resumeContentStream(sampleResumeLines...), false))

		for _, line := range sampleResumeLines {
			assert.Contains(t, got, line)
		}
	})

	t.Run("compressed document", func(t *testing.T) {
		got := NewRawScraper().Scrape(buildPDF(resumeContentStream(sampleResumeLines...), true))

		assert.Contains(t, got, "Led the migration of billing services")
	})

	t.Run("show text operands", func(t *testing.T) {
		got := NewRawScraper().Scrape([]byte(`junk (Senior Engineer) Tj more (Acme \(US\)) Tj`))
		assert.Equal(t, "Senior Engineer\nAcme (US)", got)
	})

	t.Run("text arrays", func(t *testing.T) {
		got := NewRawScraper().Scrape([]byte(`[(Sta) 20 (te) -300 (University)] TJ`))
		assert.Equal(t, "StateUniversity", got)
	})

	t.Run("long output keeps readable paragraphs", func(t *testing.T) {
		readable := "Built scalable systems for five years across payments and logistics teams."
		noise := strings.Repeat("#$%&*{}<>~", 20)

		var b strings.Builder
		for i := 0; i < 10; i++ {
			b.WriteString("stream\n" + readable + "\nendstream\n")
			b.WriteString("stream\n" + noise + "\nendstream\n")
			b.WriteString("stream\nshort\nendstream\n")
		}

		got := NewRawScraper().Scrape([]byte(b.String()))

		assert.Contains(t, got, readable)
		assert.NotContains(t, got, "#$%")
		assert.NotContains(t, got, "short")
	})

	t.Run("nothing to scrape", func(t *testing.T) {
		assert.Empty(t, NewRawScraper().Scrape(markerRichGarbage))
	})
}
