// Package extraction turns raw resume document bytes into plain text by
// running an ordered chain of extraction strategies, each gated by a shared
// length and readability check.
package extraction

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/a3tai/mcp-resume-parser/internal/pdf/errors"
	"github.com/a3tai/mcp-resume-parser/internal/text"
)

const (
	// MinTextLength is the shortest normalized text accepted from a strategy.
	MinTextLength = 100

	// ScannedDocumentMessage is returned instead of text when the document has
	// no usable text layer.
	ScannedDocumentMessage = "This document appears to be a scanned image without a text layer. " +
		"Automatic extraction is not possible; please enter your resume details manually."

	// StrategyScanned names the scanned-document outcome in a Result.
	StrategyScanned = "scanned"
)

// Strategy extracts whatever text it can from document bytes.
type Strategy interface {
	Name() string
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// Attempt records the outcome of one strategy run.
type Attempt struct {
	Strategy string        `json:"strategy"`
	Chars    int           `json:"chars"`
	Readable bool          `json:"readable"`
	Duration time.Duration `json:"duration"`
	Err      string        `json:"error,omitempty"`
}

// Result is the outcome of Extract.
type Result struct {
	Text     string    `json:"text"`
	Scanned  bool      `json:"scanned"`
	Strategy string    `json:"strategy"`
	Attempts []Attempt `json:"attempts"`
}

// Extractor runs the extraction chain. It holds no per-call state and is safe
// for concurrent use.
type Extractor struct {
	structured Strategy
	alternate  Strategy
	raw        Strategy
	logger     zerolog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for strategy failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// WithStrategies replaces the structured, alternate and raw strategies.
// A nil argument keeps the default for that slot.
func WithStrategies(structured, alternate, raw Strategy) Option {
	return func(e *Extractor) {
		if structured != nil {
			e.structured = structured
		}
		if alternate != nil {
			e.alternate = alternate
		}
		if raw != nil {
			e.raw = raw
		}
	}
}

// New creates an Extractor with the default strategy chain:
// ledongthuc/pdf layout text, pdfcpu content streams, then raw byte scraping.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.structured == nil {
		e.structured = NewStructuredExtractor(e.logger)
	}
	if e.alternate == nil {
		e.alternate = NewContentStreamExtractor(e.logger)
	}
	if e.raw == nil {
		e.raw = NewRawScraper()
	}
	return e
}

// Extract runs the strategy chain over data.
//
// A scanned document yields a Result with Scanned set and ScannedDocumentMessage
// as text. When no strategy produces at least MinTextLength readable characters
// the returned error is an unreadable document ExtractionError.
func (e *Extractor) Extract(ctx context.Context, data []byte) (*Result, error) {
	result := &Result{Attempts: make([]Attempt, 0, 3)}

	best := e.run(ctx, e.structured, data, result)
	result.Strategy = e.structured.Name()

	if len(best) < MinTextLength {
		if DetectScanned(data) {
			e.logger.Info().Int("chars", len(best)).Msg("document classified as scanned")
			result.Scanned = true
			result.Strategy = StrategyScanned
			result.Text = ScannedDocumentMessage
			return result, nil
		}

		if err := canceled(ctx); err != nil {
			return nil, err
		}
		if candidate := e.run(ctx, e.alternate, data, result); better(candidate, best) {
			best = candidate
			result.Strategy = e.alternate.Name()
		}
	}

	if !acceptable(best) {
		if err := canceled(ctx); err != nil {
			return nil, err
		}
		if candidate := e.run(ctx, e.raw, data, result); better(candidate, best) {
			best = candidate
			result.Strategy = e.raw.Name()
		}
	}

	if !acceptable(best) {
		e.logger.Warn().Int("chars", len(best)).Msg("no strategy produced readable text")
		return nil, errors.NewUnreadableDocument()
	}

	result.Text = best
	return result, nil
}

// ExtractPlainText returns the normalized document text, or
// ScannedDocumentMessage for scanned documents.
func (e *Extractor) ExtractPlainText(ctx context.Context, data []byte) (string, error) {
	result, err := e.Extract(ctx, data)
	if err != nil {
		return "", err
	}
	return result.Text, nil
}

// run executes one strategy behind a panic guard and returns its normalized text.
// Failures are logged and recorded, never returned.
func (e *Extractor) run(ctx context.Context, s Strategy, data []byte, result *Result) string {
	start := time.Now()
	raw, err := errors.Guard(s.Name(), func() (string, error) {
		return s.ExtractText(ctx, data)
	})
	cleaned := text.Normalize(raw)

	attempt := Attempt{
		Strategy: s.Name(),
		Chars:    len(cleaned),
		Readable: text.IsReadable(cleaned),
		Duration: time.Since(start),
	}
	if err != nil {
		attempt.Err = err.Error()
		e.logger.Warn().Err(err).Str("strategy", s.Name()).Msg("extraction strategy failed")
	} else {
		e.logger.Debug().
			Str("strategy", s.Name()).
			Int("chars", attempt.Chars).
			Bool("readable", attempt.Readable).
			Dur("duration", attempt.Duration).
			Msg("extraction strategy finished")
	}
	result.Attempts = append(result.Attempts, attempt)

	return cleaned
}

// acceptable is the quality gate shared by every strategy.
func acceptable(s string) bool {
	return len(s) >= MinTextLength && text.IsReadable(s)
}

// better reports whether candidate should replace current.
func better(candidate, current string) bool {
	if acceptable(candidate) {
		return true
	}
	return !acceptable(current) && len(candidate) > len(current)
}

func canceled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrorTypeCanceled, "extraction canceled", err)
	}
	return nil
}
