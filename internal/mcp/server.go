// Package mcp exposes the resume service as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/a3tai/mcp-resume-parser/internal/config"
	"github.com/a3tai/mcp-resume-parser/internal/descriptions"
	"github.com/a3tai/mcp-resume-parser/internal/pdf"
)

const shutdownTimeout = 5 * time.Second

// Server represents the MCP server instance
type Server struct {
	config    *config.Config
	service   *pdf.Service
	mcpServer *server.MCPServer
	logger    zerolog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for tool failures and lifecycle events.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, service *pdf.Service, opts ...Option) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if service == nil {
		return nil, fmt.Errorf("resume service cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s := &Server{
		config:    cfg,
		service:   service,
		mcpServer: mcpServer,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.registerTools()
	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	pathParam := mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Path to the resume PDF, absolute or relative to the resume directory"),
	)

	s.mcpServer.AddTool(mcp.NewTool(
		descriptions.ToolExtractText,
		mcp.WithDescription(descriptions.GetToolDescription(descriptions.ToolExtractText)),
		pathParam,
	), s.handleExtractText)

	s.mcpServer.AddTool(mcp.NewTool(
		descriptions.ToolParseFile,
		mcp.WithDescription(descriptions.GetToolDescription(descriptions.ToolParseFile)),
		pathParam,
	), s.handleParseFile)

	s.mcpServer.AddTool(mcp.NewTool(
		descriptions.ToolParseText,
		mcp.WithDescription(descriptions.GetToolDescription(descriptions.ToolParseText)),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Plain resume text"),
		),
	), s.handleParseText)

	s.mcpServer.AddTool(mcp.NewTool(
		descriptions.ToolValidateFile,
		mcp.WithDescription(descriptions.GetToolDescription(descriptions.ToolValidateFile)),
		pathParam,
	), s.handleValidateFile)

	s.mcpServer.AddTool(mcp.NewTool(
		descriptions.ToolListFiles,
		mcp.WithDescription(descriptions.GetToolDescription(descriptions.ToolListFiles)),
		mcp.WithString("directory",
			mcp.Description("Directory to search (uses the resume directory if empty)"),
		),
		mcp.WithString("query",
			mcp.Description("Optional file name filter"),
		),
	), s.handleListFiles)

	s.mcpServer.AddTool(mcp.NewTool(
		descriptions.ToolServerInfo,
		mcp.WithDescription(descriptions.GetToolDescription(descriptions.ToolServerInfo)),
	), s.handleServerInfo)
}

func (s *Server) handleExtractText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.ExtractTextFile(ctx, pdf.ExtractTextRequest{Path: path})
	if err != nil {
		return s.toolError(descriptions.ToolExtractText, err), nil
	}
	return jsonResult(result)
}

func (s *Server) handleParseFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.ParseResumeFile(ctx, pdf.ParseFileRequest{Path: path})
	if err != nil {
		return s.toolError(descriptions.ToolParseFile, err), nil
	}
	return jsonResult(result)
}

func (s *Server) handleParseText(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.ParseResumeText(pdf.ParseTextRequest{Text: text})
	if err != nil {
		return s.toolError(descriptions.ToolParseText, err), nil
	}
	return jsonResult(result)
}

func (s *Server) handleValidateFile(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.ValidateFile(pdf.ValidateFileRequest{Path: path})
	if err != nil {
		return s.toolError(descriptions.ToolValidateFile, err), nil
	}
	return jsonResult(result)
}

func (s *Server) handleListFiles(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	req := pdf.ListFilesRequest{}
	if dir, ok := args["directory"].(string); ok {
		req.Directory = dir
	}
	if q, ok := args["query"].(string); ok {
		req.Query = q
	}

	result, err := s.service.ListResumes(req)
	if err != nil {
		return s.toolError(descriptions.ToolListFiles, err), nil
	}
	return jsonResult(result)
}

func (s *Server) handleServerInfo(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names := descriptions.GetAllToolNames()
	tools := make([]pdf.ToolInfo, 0, len(names))
	for _, name := range names {
		summary, _, _ := strings.Cut(descriptions.GetToolDescription(name), "\n")
		tools = append(tools, pdf.ToolInfo{Name: name, Description: summary})
	}

	return jsonResult(s.service.ServerInfo(pdf.ServerInfoRequest{
		ServerName: s.config.ServerName,
		Version:    s.config.Version,
		Tools:      tools,
	}))
}

// toolError logs a failed tool call and turns it into an MCP error result.
func (s *Server) toolError(tool string, err error) *mcp.CallToolResult {
	s.logger.Warn().Err(err).Str("tool", tool).Msg("tool call failed")
	return mcp.NewToolResultError(err.Error())
}

// jsonResult encodes v as the text content of a tool result
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// Run starts the MCP server in the configured mode and blocks until ctx is
// canceled or the transport fails.
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode serves MCP over the process standard streams
func (s *Server) runStdioMode(ctx context.Context) error {
	return s.serveStdio(ctx, os.Stdin, os.Stdout)
}

func (s *Server) serveStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info().
		Str("directory", s.service.GetConfiguredDirectory()).
		Msg("starting resume MCP server in stdio mode")

	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(log.New(s.logger, "", 0))

	// Listen returns the context error once ctx is done; that is a clean stop.
	if err := stdio.Listen(ctx, in, out); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode serves MCP over HTTP with server-sent events until ctx is
// canceled, then shuts down gracefully.
func (s *Server) runServerMode(ctx context.Context) error {
	addr := s.config.Address()
	httpServer := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 10 * time.Second,
	}
	sse := server.NewSSEServer(s.mcpServer,
		server.WithBaseURL("http://"+addr),
		server.WithHTTPServer(httpServer),
	)

	s.logger.Info().
		Str("address", addr).
		Str("directory", s.service.GetConfiguredDirectory()).
		Msg("starting resume MCP server in SSE mode")

	errCh := make(chan error, 1)
	go func() {
		errCh <- sse.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve SSE: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down resume MCP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := sse.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down SSE server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve SSE: %w", err)
	}
	return nil
}
