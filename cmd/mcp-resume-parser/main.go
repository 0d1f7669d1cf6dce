package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/a3tai/mcp-resume-parser/internal/config"
	"github.com/a3tai/mcp-resume-parser/internal/logger"
	"github.com/a3tai/mcp-resume-parser/internal/mcp"
	"github.com/a3tai/mcp-resume-parser/internal/pdf"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run loads the configuration, wires the service and serves MCP until ctx is
// canceled or the transport stops. It returns the process exit code.
// Nothing but the protocol may be written to stdout in stdio mode.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	switch {
	case errors.Is(err, config.ErrVersionRequested):
		printVersion(stdout)
		return 0
	case errors.Is(err, pflag.ErrHelp):
		return 0
	case err != nil:
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	if version != "dev" {
		cfg.Version = version
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: stderr,
	}).With().Str("server", cfg.ServerName).Logger()

	server, err := newServer(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to create MCP server")
		return 1
	}

	log.Debug().Str("config", cfg.String()).Msg("starting")
	if err := server.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return 1
	}
	log.Info().Msg("server stopped")
	return 0
}

// newServer builds the resume service and the MCP server around it
func newServer(cfg *config.Config, log zerolog.Logger) (*mcp.Server, error) {
	service, err := pdf.NewService(cfg.MaxFileSize, cfg.ResumeDirectory, pdf.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create resume service: %w", err)
	}
	return mcp.NewServer(cfg, service, mcp.WithLogger(log))
}

// printVersion prints version information
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "MCP Resume Parser\n")
	fmt.Fprintf(w, "Version: %s\n", version)
	fmt.Fprintf(w, "Build Time: %s\n", buildTime)
	fmt.Fprintf(w, "Git Commit: %s\n", gitCommit)
	fmt.Fprintf(w, "Built with: %s\n", runtime.Version())
}
