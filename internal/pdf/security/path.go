// Package security keeps resume tool calls inside the resume directory the
// server was started with.
package security

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathValidator decides whether a requested resume path lies inside the
// resume directory.
type PathValidator struct {
	configuredDirectory string
}

// NewPathValidator confines paths to resumeDir. The directory need not
// exist yet; until it does, every path is rejected.
func NewPathValidator(resumeDir string) (*PathValidator, error) {
	if strings.TrimSpace(resumeDir) == "" {
		return nil, fmt.Errorf("resume directory cannot be empty")
	}

	abs, err := filepath.Abs(resumeDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve resume directory: %w", err)
	}

	return &PathValidator{
		configuredDirectory: filepath.Clean(abs),
	}, nil
}

// GetConfiguredDirectory returns the absolute resume directory
func (v *PathValidator) GetConfiguredDirectory() string {
	return v.configuredDirectory
}

// ResolvePath turns a path from a tool argument into an absolute path inside
// the resume directory. NUL bytes are dropped and relative paths are taken
// from the resume directory.
func (v *PathValidator) ResolvePath(path string) (string, error) {
	path = strings.ReplaceAll(path, "\x00", "")
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(v.configuredDirectory, path)
	}
	path = filepath.Clean(path)

	if err := v.ValidatePath(path); err != nil {
		return "", err
	}
	return path, nil
}

// ValidatePath rejects a path that escapes the resume directory.
func (v *PathValidator) ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	isWithin, err := v.IsPathWithinDirectory(path)
	if err != nil {
		return fmt.Errorf("path validation failed: %w", err)
	}
	if !isWithin {
		return fmt.Errorf("path is outside the resume directory: %s", path)
	}
	return nil
}

// IsPathWithinDirectory reports whether path stays inside the resume
// directory both as written and with symlinks resolved, so a link inside the
// directory cannot expose files outside it.
func (v *PathValidator) IsPathWithinDirectory(path string) (bool, error) {
	if _, err := os.Stat(v.configuredDirectory); err != nil {
		return false, fmt.Errorf("resume directory unavailable: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("failed to resolve path: %w", err)
	}
	cleanPath := filepath.Clean(absPath)

	realDir := v.configuredDirectory
	if resolved, err := filepath.EvalSymlinks(realDir); err == nil {
		realDir = resolved
	}

	// A path that does not exist yet is judged by its deepest existing parent.
	realPath := cleanPath
	if resolved, err := evalExisting(cleanPath); err == nil {
		realPath = resolved
	}

	within := func(p string) bool {
		return p == v.configuredDirectory || p == realDir ||
			strings.HasPrefix(p, v.configuredDirectory+string(filepath.Separator)) ||
			strings.HasPrefix(p, realDir+string(filepath.Separator))
	}
	return within(cleanPath) && within(realPath), nil
}

// evalExisting resolves symlinks in the longest existing prefix of path and
// re-appends the remainder.
func evalExisting(path string) (string, error) {
	var rest []string
	current := path
	for {
		resolved, err := filepath.EvalSymlinks(current)
		if err == nil {
			return filepath.Join(append([]string{resolved}, rest...)...), nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", err
		}
		rest = append([]string{filepath.Base(current)}, rest...)
		current = parent
	}
}

// ValidateDirectory accepts a listing root inside the resume directory that
// is a directory or does not exist yet.
func (v *PathValidator) ValidateDirectory(dirPath string) error {
	if err := v.ValidatePath(dirPath); err != nil {
		return err
	}

	info, err := os.Stat(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", dirPath)
	}
	return nil
}
