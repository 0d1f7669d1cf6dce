package pdf

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/a3tai/mcp-resume-parser/internal/pdf/errors"
)

// Search lists the resume PDFs under a directory tree.
type Search struct {
	validator *Validator
	limit     int
}

// NewSearch returns a Search that stops after limit resumes, or never when
// limit is 0.
func NewSearch(validator *Validator, limit int) *Search {
	return &Search{
		validator: validator,
		limit:     limit,
	}
}

// ListFiles returns the resumes under req.Directory whose file names match
// req.Query, sorted by path. Files failing the size or extension checks and
// hidden directories are left out.
func (s *Search) ListFiles(req ListFilesRequest) (*ListFilesResult, error) {
	if req.Directory == "" {
		return nil, errors.New(errors.ErrorTypeInvalidInput, "directory cannot be empty")
	}

	absDirectory, err := filepath.Abs(req.Directory)
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInvalidInput, "failed to resolve directory path", err)
	}
	if _, err := os.Stat(absDirectory); os.IsNotExist(err) {
		return nil, errors.New(errors.ErrorTypeFileAccess, "directory does not exist").WithContext(req.Directory)
	}

	query := strings.ToLower(strings.TrimSpace(req.Query))
	files := make([]FileInfo, 0)

	err = filepath.WalkDir(absDirectory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // keep walking past unreadable entries
		}

		withinDir, err := isPathWithinDirectory(path, absDirectory)
		if err != nil || !withinDir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != absDirectory {
				return filepath.SkipDir
			}
			return nil
		}

		if s.limit > 0 && len(files) >= s.limit {
			return filepath.SkipAll
		}

		if !isPDFFile(d.Name()) || !matchesQuery(d.Name(), query) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr // file vanished during the walk
		}
		if err := s.validator.ValidateFileInfo(path, info); err != nil {
			return nil //nolint:nilerr // skip files that fail the checks
		}

		files = append(files, FileInfo{
			Path:         path,
			Name:         info.Name(),
			Size:         info.Size(),
			ModifiedTime: info.ModTime().Format("2006-01-02 15:04:05"),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking resume directory: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return &ListFilesResult{
		Files:       files,
		TotalCount:  len(files),
		Directory:   absDirectory,
		SearchQuery: req.Query,
	}, nil
}

// isPathWithinDirectory keeps the walk from following links out of the
// listing root.
func isPathWithinDirectory(path, directory string) (bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("failed to resolve path: %w", err)
	}
	absDir, err := filepath.Abs(directory)
	if err != nil {
		return false, fmt.Errorf("failed to resolve directory: %w", err)
	}

	realPath, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return false, fmt.Errorf("failed to evaluate symlinks: %w", err)
		}
		realPath = absPath
	}
	realDir, err := filepath.EvalSymlinks(absDir)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate directory symlinks: %w", err)
	}

	realPath = filepath.Clean(realPath)
	realDir = filepath.Clean(realDir)
	if realPath == realDir {
		return true, nil
	}
	return strings.HasPrefix(realPath, realDir+string(filepath.Separator)), nil
}

// matchesQuery matches a candidate name against the query: "smith" finds
// "John_Smith_CV.pdf", and "jane cv" needs both words somewhere in the name.
func matchesQuery(filename, query string) bool {
	if query == "" {
		return true
	}

	name := strings.TrimSuffix(strings.ToLower(filename), ".pdf")
	if strings.Contains(name, query) {
		return true
	}

	words := splitIntoWords(name)
	for _, queryWord := range splitIntoWords(query) {
		found := false
		for _, word := range words {
			if strings.Contains(word, queryWord) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// splitIntoWords lower-cases a file name and splits it on separators.
func splitIntoWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch r {
		case ' ', '_', '-', '.', '(', ')', '[', ']':
			return true
		}
		return false
	})
}
