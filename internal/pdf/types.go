package pdf

import (
	"github.com/a3tai/mcp-resume-parser/internal/pdf/extraction"
	"github.com/a3tai/mcp-resume-parser/internal/resume"
)

// FileInfo represents information about a resume file
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// ExtractTextRequest represents a request to extract plain text from a resume file
type ExtractTextRequest struct {
	Path string `json:"path"`
}

// ParseFileRequest represents a request to structure a resume file
type ParseFileRequest struct {
	Path string `json:"path"`
}

// ParseTextRequest represents a request to structure already extracted resume text
type ParseTextRequest struct {
	Text string `json:"text"`
}

// ValidateFileRequest represents a request to check an uploaded resume file
type ValidateFileRequest struct {
	Path string `json:"path"`
}

// ListFilesRequest represents a request to list resumes in a directory
type ListFilesRequest struct {
	Directory string `json:"directory"`
	Query     string `json:"query"`
}

// ExtractTextResult is the plain text of a resume file, or the scanned
// document guidance when it has no text layer.
type ExtractTextResult struct {
	Path     string               `json:"path"`
	Size     int64                `json:"size"`
	Text     string               `json:"text"`
	Scanned  bool                 `json:"scanned"`
	Strategy string               `json:"strategy"`
	Attempts []extraction.Attempt `json:"attempts"`
}

// ParseFileResult is the structured record recovered from a resume file.
// Resume is empty when the document was scanned.
type ParseFileResult struct {
	Path     string        `json:"path"`
	Scanned  bool          `json:"scanned"`
	Message  string        `json:"message,omitempty"`
	Strategy string        `json:"strategy"`
	Resume   resume.Resume `json:"resume"`
}

// ValidateFileResult represents the result of checking a resume file
type ValidateFileResult struct {
	Path    string `json:"path"`
	Valid   bool   `json:"valid"`
	Pages   int    `json:"pages,omitempty"`
	Size    int64  `json:"size,omitempty"`
	Message string `json:"message,omitempty"`
}

// ListFilesResult represents the resumes found in a directory
type ListFilesResult struct {
	Files       []FileInfo `json:"files"`
	TotalCount  int        `json:"total_count"`
	Directory   string     `json:"directory"`
	SearchQuery string     `json:"search_query,omitempty"`
}

// ServerInfoRequest carries the server identity and tool list reported by ServerInfo
type ServerInfoRequest struct {
	ServerName string
	Version    string
	Tools      []ToolInfo
}

// ToolInfo describes one available tool
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ServerInfoResult represents server configuration and the resumes available to it
type ServerInfoResult struct {
	ServerName    string     `json:"server_name"`
	Version       string     `json:"version"`
	Directory     string     `json:"directory"`
	MaxFileSize   int64      `json:"max_file_size"`
	Tools         []ToolInfo `json:"tools"`
	Resumes       []FileInfo `json:"resumes"`
	ResumeCount   int        `json:"resume_count"`
	UsageGuidance string     `json:"usage_guidance"`
}
