package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.ResumeDirectory = t.TempDir()
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ModeStdio, cfg.Mode)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "mcp-resume-parser", cfg.ServerName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSize)

	currentDir, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, currentDir, cfg.ResumeDirectory)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid stdio", func(*Config) {}, ""},
		{"valid server", func(c *Config) { c.Mode = ModeServer }, ""},
		{"pretty logs", func(c *Config) { c.LogFormat = LogFormatPretty }, ""},
		{"port ignored in stdio mode", func(c *Config) { c.Port = 0 }, ""},
		{"invalid mode", func(c *Config) { c.Mode = "http" }, "mode must be"},
		{"port too low", func(c *Config) { c.Mode = ModeServer; c.Port = 0 }, "port must be"},
		{"port too high", func(c *Config) { c.Mode = ModeServer; c.Port = 70000 }, "port must be"},
		{"empty directory", func(c *Config) { c.ResumeDirectory = "" }, "cannot be empty"},
		{"zero file size", func(c *Config) { c.MaxFileSize = 0 }, "must be positive"},
		{"invalid log level", func(c *Config) { c.LogLevel = "trace" }, "invalid log level"},
		{"invalid log format", func(c *Config) { c.LogFormat = "xml" }, "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigValidateDirectoryCreation(t *testing.T) {
	cfg := validConfig(t)
	cfg.ResumeDirectory = filepath.Join(cfg.ResumeDirectory, "incoming", "resumes")

	require.NoError(t, cfg.Validate())

	info, err := os.Stat(cfg.ResumeDirectory)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigValidateDirectoryIsFile(t *testing.T) {
	cfg := validConfig(t)
	file := filepath.Join(cfg.ResumeDirectory, "resume.pdf")
	require.NoError(t, os.WriteFile(file, []byte("%PDF-"), 0o600))
	cfg.ResumeDirectory = file

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestConfigHelpers(t *testing.T) {
	cfg := validConfig(t)
	cfg.Host = "0.0.0.0"
	cfg.Port = 9090

	assert.Equal(t, "0.0.0.0:9090", cfg.Address())
	assert.True(t, cfg.IsStdioMode())
	assert.False(t, cfg.IsServerMode())
	assert.False(t, cfg.IsDebug())
	assert.Contains(t, cfg.String(), "Port: 9090")

	cfg.Mode = ModeServer
	cfg.LogLevel = "debug"
	assert.True(t, cfg.IsServerMode())
	assert.False(t, cfg.IsStdioMode())
	assert.True(t, cfg.IsDebug())
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"MODE", "HOST", "PORT", "DIR", "LOG_LEVEL", "LOG_FORMAT", "MAX_FILE_SIZE"} {
		t.Setenv(EnvPrefix+"_"+key, "")
		require.NoError(t, os.Unsetenv(EnvPrefix+"_"+key))
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			args: []string{"--dir=" + dir},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ModeStdio, cfg.Mode)
				assert.Equal(t, DefaultPort, cfg.Port)
				assert.Equal(t, dir, cfg.ResumeDirectory)
				assert.Equal(t, int64(DefaultMaxFileSize), cfg.MaxFileSize)
			},
		},
		{
			name: "server mode",
			args: []string{"--mode=server", "--host=0.0.0.0", "--port=9090", "--dir", dir},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.IsServerMode())
				assert.Equal(t, "0.0.0.0:9090", cfg.Address())
			},
		},
		{
			name: "logging",
			args: []string{"--log-level=DEBUG", "--log-format=pretty", "--dir=" + dir},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, LogFormatPretty, cfg.LogFormat)
			},
		},
		{
			name: "max file size",
			args: []string{"--max-file-size=2048", "--dir=" + dir},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, int64(2048), cfg.MaxFileSize)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.args)
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("MCP_RESUME_MODE", "server")
	t.Setenv("MCP_RESUME_PORT", "9191")
	t.Setenv("MCP_RESUME_DIR", dir)
	t.Setenv("MCP_RESUME_LOG_LEVEL", "warn")
	t.Setenv("MCP_RESUME_MAX_FILE_SIZE", "4096")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ModeServer, cfg.Mode)
	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, dir, cfg.ResumeDirectory)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, int64(4096), cfg.MaxFileSize)
}

func TestLoad_FlagOverridesEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("MCP_RESUME_PORT", "9191")

	cfg, err := Load([]string{"--port=7070", "--dir=" + t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"invalid mode", []string{"--mode=http", "--dir=" + dir}},
		{"invalid port", []string{"--mode=server", "--port=0", "--dir=" + dir}},
		{"invalid log level", []string{"--log-level=verbose", "--dir=" + dir}},
		{"unknown flag", []string{"--pdf-dir=" + dir}},
		{"malformed number", []string{"--port=eighty", "--dir=" + dir}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestLoad_Version(t *testing.T) {
	for _, arg := range []string{"--version", "-version", "-v"} {
		_, err := Load([]string{arg})
		assert.ErrorIs(t, err, ErrVersionRequested)
	}
}
