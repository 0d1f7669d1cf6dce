package pdf

import (
	"context"
	"os"

	"github.com/a3tai/mcp-resume-parser/internal/pdf/errors"
	"github.com/a3tai/mcp-resume-parser/internal/pdf/extraction"
)

// Reader loads resume files and runs them through the extraction chain
type Reader struct {
	validator *Validator
	extractor *extraction.Extractor
}

// NewReader creates a reader that checks files with validator before extracting
func NewReader(validator *Validator, extractor *extraction.Extractor) *Reader {
	return &Reader{
		validator: validator,
		extractor: extractor,
	}
}

// ReadFile returns the bytes of a resume file after the metadata checks.
func (r *Reader) ReadFile(path string) ([]byte, os.FileInfo, error) {
	info, err := r.validator.checkFile(path)
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrorTypeFileAccess, "cannot read file", err).WithFile(path)
	}
	return data, info, nil
}

// ExtractText extracts the plain text of a resume file. Scanned documents
// yield the guidance message with Scanned set; unreadable ones an
// unreadable document error.
func (r *Reader) ExtractText(ctx context.Context, req ExtractTextRequest) (*ExtractTextResult, error) {
	data, info, err := r.ReadFile(req.Path)
	if err != nil {
		return nil, err
	}

	res, err := r.extractor.Extract(ctx, data)
	if err != nil {
		if extErr, ok := errors.As(err); ok {
			extErr.WithFile(req.Path)
		}
		return nil, err
	}

	return &ExtractTextResult{
		Path:     req.Path,
		Size:     info.Size(),
		Text:     res.Text,
		Scanned:  res.Scanned,
		Strategy: res.Strategy,
		Attempts: res.Attempts,
	}, nil
}
