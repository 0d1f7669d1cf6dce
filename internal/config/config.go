package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeStdio  = "stdio"
	ModeServer = "server"

	// Log formats
	LogFormatJSON   = "json"
	LogFormatPretty = "pretty"

	// Default values
	DefaultPort        = 8080
	DefaultHost        = "127.0.0.1"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = LogFormatJSON
	DefaultMaxFileSize = 10 * 1024 * 1024 // 10MB
	DefaultServerName  = "mcp-resume-parser"
	DefaultVersion     = "1.0.0"

	// EnvPrefix prefixes every environment variable, e.g. MCP_RESUME_DIR
	EnvPrefix = "MCP_RESUME"

	// Directory permissions
	DefaultDirPerm = 0o750
)

// ErrVersionRequested is returned by Load when --version or -v is given.
var ErrVersionRequested = errors.New("version requested")

// Config holds all configuration for the resume MCP server
type Config struct {
	// Server configuration
	Mode string // "server" or "stdio"
	Host string
	Port int

	// Resume configuration
	ResumeDirectory string
	MaxFileSize     int64 // Maximum resume file size in bytes

	// Application configuration
	Version    string
	ServerName string
	LogLevel   string
	LogFormat  string
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}

	return &Config{
		Mode:            ModeStdio,
		Host:            DefaultHost,
		Port:            DefaultPort,
		ResumeDirectory: currentDir,
		MaxFileSize:     DefaultMaxFileSize,
		Version:         DefaultVersion,
		ServerName:      DefaultServerName,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
	}
}

// LoadFromFlags loads the configuration from the process arguments and
// environment.
func LoadFromFlags() (*Config, error) {
	return Load(os.Args[1:])
}

// Load builds a configuration from args, MCP_RESUME_* environment variables
// and defaults, in that order of precedence, and validates it.
func Load(args []string) (*Config, error) {
	if versionRequested(args) {
		return nil, ErrVersionRequested
	}

	cfg := DefaultConfig()

	flags := newFlagSet(cfg)
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := newViper(cfg)
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	populateConfig(cfg, v)

	if cfg.ResumeDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.ResumeDirectory); err == nil {
			cfg.ResumeDirectory = expandedPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newViper configures a viper instance with environment variables and defaults
func newViper(cfg *Config) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("mode", cfg.Mode)
	v.SetDefault("host", cfg.Host)
	v.SetDefault("port", cfg.Port)
	v.SetDefault("dir", cfg.ResumeDirectory)
	v.SetDefault("log-level", cfg.LogLevel)
	v.SetDefault("log-format", cfg.LogFormat)
	v.SetDefault("max-file-size", cfg.MaxFileSize)
	return v
}

// newFlagSet defines the command line flags
func newFlagSet(cfg *Config) *pflag.FlagSet {
	flags := pflag.NewFlagSet(cfg.ServerName, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)

	flags.String("mode", cfg.Mode, "Server mode: 'stdio' for MCP standard I/O, 'server' for HTTP/SSE")
	flags.String("host", cfg.Host, "Server host address (server mode only)")
	flags.Int("port", cfg.Port, "Server port (server mode only)")
	flags.String("dir", cfg.ResumeDirectory, "Directory containing resume files")
	flags.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.String("log-format", cfg.LogFormat, "Log format (json, pretty)")
	flags.Int64("max-file-size", cfg.MaxFileSize, "Maximum resume file size in bytes")

	flags.Usage = func() { Usage(os.Stderr, flags) }
	return flags
}

// Usage writes the help text for flags to w
func Usage(w io.Writer, flags *pflag.FlagSet) {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(w, "Usage of %s:\n", name)
	fmt.Fprintf(w, "\nMCP Resume Parser - A Model Context Protocol server that turns resume PDFs into structured records\n\n")
	fmt.Fprintf(w, "Options:\n")
	flags.SetOutput(w)
	flags.PrintDefaults()
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  %s                                    # stdio mode, current directory\n", name)
	fmt.Fprintf(w, "  %s --dir=/path/to/resumes             # stdio mode with custom directory\n", name)
	fmt.Fprintf(w, "  %s --mode=server --dir=/srv/resumes   # HTTP/SSE server mode\n", name)
	fmt.Fprintf(w, "\nEnvironment Variables:\n")
	fmt.Fprintf(w, "  %s_MODE           Server mode\n", EnvPrefix)
	fmt.Fprintf(w, "  %s_HOST           Server host\n", EnvPrefix)
	fmt.Fprintf(w, "  %s_PORT           Server port\n", EnvPrefix)
	fmt.Fprintf(w, "  %s_DIR            Resume directory\n", EnvPrefix)
	fmt.Fprintf(w, "  %s_LOG_LEVEL      Log level\n", EnvPrefix)
	fmt.Fprintf(w, "  %s_LOG_FORMAT     Log format\n", EnvPrefix)
	fmt.Fprintf(w, "  %s_MAX_FILE_SIZE  Maximum file size\n", EnvPrefix)
}

// versionRequested checks if the version flag was given
func versionRequested(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			return true
		}
	}
	return false
}

// populateConfig fills the config struct with values from viper
func populateConfig(cfg *Config, v *viper.Viper) {
	cfg.Mode = v.GetString("mode")
	cfg.Host = v.GetString("host")
	cfg.Port = v.GetInt("port")
	cfg.ResumeDirectory = v.GetString("dir")
	cfg.LogLevel = strings.ToLower(v.GetString("log-level"))
	cfg.LogFormat = strings.ToLower(v.GetString("log-format"))
	cfg.MaxFileSize = v.GetInt64("max-file-size")
}

// Validate checks the configuration and creates the resume directory when
// it does not exist yet.
func (c *Config) Validate() error {
	if c.Mode != ModeStdio && c.Mode != ModeServer {
		return errors.New("mode must be either 'stdio' or 'server'")
	}

	// Port only matters for server mode
	if c.Mode == ModeServer && (c.Port < 1 || c.Port > 65535) {
		return errors.New("port must be between 1 and 65535")
	}

	if c.ResumeDirectory == "" {
		return errors.New("resume directory cannot be empty")
	}

	info, err := os.Stat(c.ResumeDirectory)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(c.ResumeDirectory, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create resume directory %s: %w", c.ResumeDirectory, err)
		}
	case err != nil:
		return fmt.Errorf("cannot access resume directory %s: %w", c.ResumeDirectory, err)
	case !info.IsDir():
		return fmt.Errorf("resume directory %s is not a directory", c.ResumeDirectory)
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	if c.LogFormat != LogFormatJSON && c.LogFormat != LogFormatPretty {
		return fmt.Errorf("invalid log format: %s (must be json or pretty)", c.LogFormat)
	}

	return nil
}

// Address returns the server address as host:port
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, Host: %s, Port: %d, ResumeDirectory: %s, LogLevel: %s, LogFormat: %s, MaxFileSize: %d}",
		c.Mode, c.Host, c.Port, c.ResumeDirectory, c.LogLevel, c.LogFormat, c.MaxFileSize)
}

// IsServerMode returns true if the server is running in HTTP server mode
func (c *Config) IsServerMode() bool {
	return c.Mode == ModeServer
}

// IsStdioMode returns true if the server is running in stdio mode
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}
