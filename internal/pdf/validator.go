package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/a3tai/mcp-resume-parser/internal/pdf/errors"
)

// pdfHeader opens every PDF file.
var pdfHeader = []byte("%PDF-")

// Validator handles resume file validation operations
type Validator struct {
	maxFileSize int64
}

// NewValidator creates a new validator with the specified size limit
func NewValidator(maxFileSize int64) *Validator {
	return &Validator{
		maxFileSize: maxFileSize,
	}
}

// ValidateFile runs the upload checks on a file. A failed check is reported
// in the result, not as an error.
func (v *Validator) ValidateFile(req ValidateFileRequest) (*ValidateFileResult, error) {
	result := &ValidateFileResult{
		Path:  req.Path,
		Valid: false,
	}

	info, err := v.checkFile(req.Path)
	if err != nil {
		result.Message = err.Error()
		return result, nil //nolint:nilerr // validation failures belong in the result
	}
	result.Size = info.Size()

	data, err := os.ReadFile(req.Path)
	if err != nil {
		result.Message = errors.Wrap(errors.ErrorTypeFileAccess, "cannot read file", err).WithFile(req.Path).Error()
		return result, nil //nolint:nilerr // validation failures belong in the result
	}

	pages, err := v.PageCount(data)
	if err != nil {
		result.Message = err.Error()
		return result, nil //nolint:nilerr // validation failures belong in the result
	}

	result.Valid = true
	result.Pages = pages
	return result, nil
}

// checkFile performs the checks that need only the file metadata.
func (v *Validator) checkFile(filePath string) (os.FileInfo, error) {
	if filePath == "" {
		return nil, errors.New(errors.ErrorTypeInvalidInput, "path cannot be empty")
	}

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrorTypeFileAccess, "file does not exist").WithFile(filePath).WithContext(filePath)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeFileAccess, "cannot access file", err).WithFile(filePath)
	}

	if err := v.ValidateFileInfo(filePath, info); err != nil {
		return nil, err
	}
	return info, nil
}

// ValidateFileInfo performs the metadata checks without opening the file
func (v *Validator) ValidateFileInfo(filePath string, info os.FileInfo) error {
	if info.IsDir() {
		return errors.New(errors.ErrorTypeInvalidInput, "path is a directory, not a file").WithContext(filePath).WithFile(filePath)
	}

	if !isPDFFile(filePath) {
		return errors.New(errors.ErrorTypeInvalidInput, "file is not a PDF").WithContext(filePath).WithFile(filePath)
	}

	if info.Size() == 0 {
		return errors.New(errors.ErrorTypeInvalidInput, "file is empty").WithContext(filePath).WithFile(filePath)
	}

	if info.Size() > v.maxFileSize {
		return errors.New(errors.ErrorTypeInvalidInput, "file too large").
			WithContext(fmt.Sprintf("%d bytes (max: %d bytes)", info.Size(), v.maxFileSize)).
			WithFile(filePath)
	}

	return nil
}

// PageCount checks the %PDF- header and counts pages, with pdfcpu first and
// ledongthuc/pdf when pdfcpu cannot read the document.
func (v *Validator) PageCount(data []byte) (int, error) {
	if !bytes.HasPrefix(bytes.TrimLeft(data, "\x00\t\n\r "), pdfHeader) {
		return 0, errors.New(errors.ErrorTypeInvalidInput, "missing %PDF- header")
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pdfCtx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err == nil {
		if err = pdfCtx.EnsurePageCount(); err == nil {
			return pdfCtx.PageCount, nil
		}
	}

	pages, fallbackErr := ledongthucPageCount(bytes.NewReader(data), int64(len(data)))
	if fallbackErr != nil {
		return 0, errors.Wrap(errors.ErrorTypeInvalidInput, "invalid PDF file", err)
	}
	return pages, nil
}

func ledongthucPageCount(r io.ReaderAt, size int64) (pages int, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("pdf reader panic: %v", p)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return 0, err
	}
	return reader.NumPage(), nil
}

// isPDFFile checks if a file has a PDF extension
func isPDFFile(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}
