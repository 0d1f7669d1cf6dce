// Package pdf is the file-facing layer of the resume parser: it checks and
// loads resume files inside the configured directory, runs the extraction
// chain and hands the text to the resume structurer.
package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/a3tai/mcp-resume-parser/internal/pdf/errors"
	"github.com/a3tai/mcp-resume-parser/internal/pdf/extraction"
	"github.com/a3tai/mcp-resume-parser/internal/pdf/security"
	"github.com/a3tai/mcp-resume-parser/internal/resume"
)

// DefaultListLimit caps the number of files ListFiles returns.
const DefaultListLimit = 500

// Service handles resume file operations by orchestrating the components
type Service struct {
	maxFileSize   int64
	reader        *Reader
	validator     *Validator
	search        *Search
	pathValidator *security.PathValidator
	logger        zerolog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	logger    zerolog.Logger
	extractor *extraction.Extractor
	listLimit int
}

// WithLogger sets the service logger. It is also handed to the default
// extractor.
func WithLogger(logger zerolog.Logger) ServiceOption {
	return func(o *serviceOptions) {
		o.logger = logger
	}
}

// WithExtractor replaces the default extraction chain.
func WithExtractor(e *extraction.Extractor) ServiceOption {
	return func(o *serviceOptions) {
		o.extractor = e
	}
}

// WithListLimit caps the number of files ListFiles returns.
func WithListLimit(limit int) ServiceOption {
	return func(o *serviceOptions) {
		o.listLimit = limit
	}
}

// NewService creates a new resume service rooted at configuredDirectory
func NewService(maxFileSize int64, configuredDirectory string, opts ...ServiceOption) (*Service, error) {
	if maxFileSize <= 0 {
		return nil, fmt.Errorf("maxFileSize must be greater than 0")
	}

	pathValidator, err := security.NewPathValidator(configuredDirectory)
	if err != nil {
		return nil, fmt.Errorf("failed to create path validator: %w", err)
	}

	o := serviceOptions{logger: zerolog.Nop(), listLimit: DefaultListLimit}
	for _, opt := range opts {
		opt(&o)
	}
	if o.extractor == nil {
		o.extractor = extraction.New(extraction.WithLogger(o.logger))
	}

	validator := NewValidator(maxFileSize)
	return &Service{
		maxFileSize:   maxFileSize,
		reader:        NewReader(validator, o.extractor),
		validator:     validator,
		search:        NewSearch(validator, o.listLimit),
		pathValidator: pathValidator,
		logger:        o.logger,
	}, nil
}

// ExtractTextFile extracts the plain text of a resume file.
// Relative paths are resolved against the configured directory.
func (s *Service) ExtractTextFile(ctx context.Context, req ExtractTextRequest) (*ExtractTextResult, error) {
	path, err := s.checkPath(req.Path)
	if err != nil {
		return nil, err
	}
	req.Path = path

	result, err := s.reader.ExtractText(ctx, req)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", req.Path).Msg("text extraction failed")
		return nil, err
	}

	s.logger.Debug().
		Str("path", req.Path).
		Str("strategy", result.Strategy).
		Bool("scanned", result.Scanned).
		Int("chars", len(result.Text)).
		Msg("text extracted")
	return result, nil
}

// ParseResumeFile extracts and structures a resume file. A scanned document
// is not an error: the result carries the guidance message and an empty
// record.
func (s *Service) ParseResumeFile(ctx context.Context, req ParseFileRequest) (*ParseFileResult, error) {
	text, err := s.ExtractTextFile(ctx, ExtractTextRequest(req))
	if err != nil {
		return nil, err
	}

	result := &ParseFileResult{
		Path:     text.Path,
		Scanned:  text.Scanned,
		Strategy: text.Strategy,
	}
	if text.Scanned {
		result.Message = text.Text
		result.Resume = resume.Empty()
		return result, nil
	}

	result.Resume = resume.Extract(text.Text)
	return result, nil
}

// ParseResumeText structures already extracted resume text
func (s *Service) ParseResumeText(req ParseTextRequest) (*resume.Resume, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, errors.New(errors.ErrorTypeInvalidInput, "text cannot be empty")
	}
	r := resume.Extract(req.Text)
	return &r, nil
}

// ValidateFile performs the upload checks on a resume file
func (s *Service) ValidateFile(req ValidateFileRequest) (*ValidateFileResult, error) {
	path, err := s.checkPath(req.Path)
	if err != nil {
		return nil, err
	}
	req.Path = path
	return s.validator.ValidateFile(req)
}

// ListResumes lists resumes in a directory, the configured one by default
func (s *Service) ListResumes(req ListFilesRequest) (*ListFilesResult, error) {
	if req.Directory == "" {
		req.Directory = s.pathValidator.GetConfiguredDirectory()
	}

	dir, err := s.pathValidator.ResolvePath(req.Directory)
	if err == nil {
		err = s.pathValidator.ValidateDirectory(dir)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInvalidInput, "security validation failed", err)
	}
	req.Directory = dir

	return s.search.ListFiles(req)
}

// usageGuidance is returned by ServerInfo.
const usageGuidance = "Paths may be absolute or relative to the resume directory. " +
	"Use resume_list_files to find resumes, resume_validate_file to check uploads, " +
	"and resume_parse_file to get the structured record. " +
	"Scanned resumes without a text layer return guidance instead of a record."

// ServerInfo reports the configuration and the resumes in the configured
// directory. An unreadable directory yields an empty resume list.
func (s *Service) ServerInfo(req ServerInfoRequest) *ServerInfoResult {
	result := &ServerInfoResult{
		ServerName:    req.ServerName,
		Version:       req.Version,
		Directory:     s.GetConfiguredDirectory(),
		MaxFileSize:   s.maxFileSize,
		Tools:         req.Tools,
		Resumes:       []FileInfo{},
		UsageGuidance: usageGuidance,
	}
	if result.Tools == nil {
		result.Tools = []ToolInfo{}
	}

	list, err := s.ListResumes(ListFilesRequest{})
	if err != nil {
		s.logger.Debug().Err(err).Msg("cannot list resume directory")
		return result
	}
	result.Resumes = list.Files
	result.ResumeCount = list.TotalCount
	return result
}

// GetMaxFileSize returns the maximum file size limit
func (s *Service) GetMaxFileSize() int64 {
	return s.maxFileSize
}

// GetConfiguredDirectory returns the directory tool calls are confined to
func (s *Service) GetConfiguredDirectory() string {
	return s.pathValidator.GetConfiguredDirectory()
}

func (s *Service) checkPath(path string) (string, error) {
	resolved, err := s.pathValidator.ResolvePath(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrorTypeInvalidInput, "security validation failed", err).WithFile(path)
	}
	return resolved, nil
}
