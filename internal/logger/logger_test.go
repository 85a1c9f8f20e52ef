package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fileOptions(level, path string) Options {
	return Options{
		Level: level,
		File: FileConfig{
			Path:       path,
			MaxSizeMB:  10,
			MaxBackups: 1,
			MaxAgeDays: 1,
		},
	}
}

func TestLogRotation(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "gen.log")

	// MaxSize is in MB; 1MB is the smallest lumberjack allows
	opts := fileOptions("debug", logFile)
	opts.File.MaxSizeMB = 1
	opts.File.MaxBackups = 2
	if err := InitWithOptions(opts); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer Sync()

	longMessage := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		Sugar.Infof("Log entry %d: %s", i, longMessage)
	}
	Sync()

	files, err := os.ReadDir(filepath.Dir(logFile))
	if err != nil {
		t.Fatalf("failed to read log dir: %v", err)
	}

	rotated := 0
	for _, f := range files {
		if f.Name() != "gen.log" && strings.HasPrefix(f.Name(), "gen-") {
			rotated++
		}
	}
	if rotated == 0 {
		t.Errorf("expected rotated log files, found %d files", len(files))
	}
}

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")
			if err := InitWithOptions(fileOptions(tt.level, logFile)); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			logContent := string(content)

			for _, exp := range tt.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "unknown.log")
	if err := InitWithOptions(fileOptions("chatty", logFile)); err == nil {
		t.Error("expected error for unknown level")
	}

	Debug("hidden")
	Info("shown")
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if strings.Contains(string(content), "hidden") || !strings.Contains(string(content), "shown") {
		t.Errorf("expected info level output, got %q", content)
	}
}

func TestJSONOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "json.log")
	opts := fileOptions("info", logFile)
	opts.JSON = true
	if err := InitWithOptions(opts); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Named("generator").Info("level generated")
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(content))), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "level generated" || entry["logger"] != "generator" || entry["level"] != "INFO" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestDefaultFileConfig(t *testing.T) {
	cfg := DefaultFileConfig("/tmp/gen.log")

	if cfg.Path != "/tmp/gen.log" {
		t.Errorf("expected path /tmp/gen.log, got %s", cfg.Path)
	}
	if cfg.MaxSizeMB != 20 {
		t.Errorf("expected MaxSizeMB 20, got %d", cfg.MaxSizeMB)
	}
	if cfg.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", cfg.MaxBackups)
	}
	if cfg.MaxAgeDays != 14 {
		t.Errorf("expected MaxAgeDays 14, got %d", cfg.MaxAgeDays)
	}
	if !cfg.Compress {
		t.Error("expected Compress to be true")
	}
}
