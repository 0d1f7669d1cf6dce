package extraction

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog"
)

// ContentStreamExtractor reads the document with pdfcpu, which tolerates
// broken cross-reference tables better than ledongthuc/pdf, and interprets
// each page content stream's text operators.
type ContentStreamExtractor struct {
	logger zerolog.Logger
}

// NewContentStreamExtractor creates a pdfcpu based extractor.
func NewContentStreamExtractor(logger zerolog.Logger) *ContentStreamExtractor {
	return &ContentStreamExtractor{logger: logger}
}

// Name implements Strategy.
func (c *ContentStreamExtractor) Name() string { return "content-stream" }

// ExtractText implements Strategy.
func (c *ContentStreamExtractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pdfCtx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF context: %w", err)
	}
	if err := pdfCtx.EnsurePageCount(); err != nil {
		return "", fmt.Errorf("failed to get page count: %w", err)
	}

	pages := make([]string, 0, pdfCtx.PageCount)
	for pageNr := 1; pageNr <= pdfCtx.PageCount; pageNr++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		r, err := pdfcpu.ExtractPageContent(pdfCtx, pageNr)
		if err != nil {
			c.logger.Debug().Err(err).Int("page", pageNr).Msg("skipping page content")
			continue
		}
		if r == nil {
			continue
		}
		content, err := io.ReadAll(r)
		if err != nil {
			c.logger.Debug().Err(err).Int("page", pageNr).Msg("skipping unreadable page content")
			continue
		}
		pages = append(pages, TextFromContentStream(content))
	}

	return strings.Join(pages, "\n"), nil
}
