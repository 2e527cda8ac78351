// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/usama6513/convert-api/internal/config"
	"github.com/usama6513/convert-api/internal/platform/logger"
)

// TestValidLogLevelParsing tests that valid log levels are correctly parsed
// by the Setup function and that the returned logger enables exactly the
// levels at or above the configured one.
func TestValidLogLevelParsing(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel string
		want     slog.Level
	}{
		{
			name:     "debug level",
			logLevel: "debug",
			want:     slog.LevelDebug,
		},
		{
			name:     "info level",
			logLevel: "info",
			want:     slog.LevelInfo,
		},
		{
			name:     "warn level",
			logLevel: "warn",
			want:     slog.LevelWarn,
		},
		{
			name:     "error level",
			logLevel: "error",
			want:     slog.LevelError,
		},
		{
			name:     "case insensitive - DEBUG",
			logLevel: "DEBUG",
			want:     slog.LevelDebug,
		},
		{
			name:     "case insensitive - Info",
			logLevel: "Info",
			want:     slog.LevelInfo,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.ServerConfig{
				LogLevel: tc.logLevel,
				Port:     8080, // Port is required by validation, not used in test
			}

			// Redirect stdout so the JSON handler has somewhere to write
			origStdout := os.Stdout
			r, w, _ := os.Pipe()
			os.Stdout = w
			defer func() {
				os.Stdout = origStdout
				if err := w.Close(); err != nil {
					t.Logf("Failed to close writer: %v", err)
				}
				if _, err := io.Copy(io.Discard, r); err != nil {
					t.Logf("Failed to drain pipe: %v", err)
				}
			}()

			log, err := logger.Setup(cfg)
			if err != nil {
				t.Fatalf("Setup returned an error for valid log level %q: %v", tc.logLevel, err)
			}
			if log == nil {
				t.Fatal("Setup returned a nil logger")
			}

			ctx := context.Background()
			if !log.Enabled(ctx, tc.want) {
				t.Errorf("Logger should enable level %v for configured level %q", tc.want, tc.logLevel)
			}
			if log.Enabled(ctx, tc.want-1) {
				t.Errorf("Logger should not enable levels below %v for configured level %q", tc.want, tc.logLevel)
			}
		})
	}
}

// TestInvalidLogLevelParsing tests that when an invalid log level is provided,
// the Setup function defaults to info level and logs a warning message to stderr.
func TestInvalidLogLevelParsing(t *testing.T) {
	// Save original stderr and redirect to capture warning messages
	origStderr := os.Stderr
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stderr pipe: %v", err)
	}
	os.Stderr = stderrW

	// Save original stdout too
	origStdout := os.Stdout
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create stdout pipe: %v", err)
	}
	os.Stdout = stdoutW

	cfg := config.ServerConfig{
		LogLevel: "invalid_level",
		Port:     8080,
	}

	log, err := logger.Setup(cfg)

	// Restore stdout and stderr before assertions
	os.Stderr = origStderr
	os.Stdout = origStdout

	if closeErr := stderrW.Close(); closeErr != nil {
		t.Logf("Failed to close stderr writer: %v", closeErr)
	}
	if closeErr := stdoutW.Close(); closeErr != nil {
		t.Logf("Failed to close stdout writer: %v", closeErr)
	}

	stderrBuf := new(bytes.Buffer)
	if _, copyErr := io.Copy(stderrBuf, stderrR); copyErr != nil {
		t.Logf("Failed to read from stderr pipe: %v", copyErr)
	}
	stderrOutput := stderrBuf.String()

	if _, copyErr := io.Copy(io.Discard, stdoutR); copyErr != nil {
		t.Logf("Failed to drain stdout pipe: %v", copyErr)
	}

	if err != nil {
		t.Fatalf("Setup returned an error for invalid log level: %v", err)
	}
	if log == nil {
		t.Fatal("Setup returned a nil logger for invalid log level")
	}

	if !strings.Contains(stderrOutput, "invalid log level configured") {
		t.Errorf("Expected warning message about invalid log level, got: %s", stderrOutput)
	}
	if !strings.Contains(stderrOutput, "invalid_level") {
		t.Errorf("Expected warning to include the invalid level name, got: %s", stderrOutput)
	}

	// The fallback level is info: debug is filtered, info is not
	ctx := context.Background()
	if log.Enabled(ctx, slog.LevelDebug) {
		t.Error("Logger with fallback info level should not enable debug")
	}
	if !log.Enabled(ctx, slog.LevelInfo) {
		t.Error("Logger with fallback info level should enable info")
	}
}
