package logging

import (
	"testing"
	"time"
)

func TestInitLogger(t *testing.T) {
	levels := []Level{LevelDebug, LevelInfo, LevelWarn, LevelError, Level(99)}
	formats := []Format{FormatJSON, FormatText}

	for _, level := range levels {
		for _, format := range formats {
			InitLogger(level, format)
			if GetLogger() == nil {
				t.Fatalf("GetLogger() returned nil after InitLogger(%d, %d)", level, format)
			}
		}
	}
}

func TestHelpersDoNotPanic(t *testing.T) {
	InitLogger(LevelError, FormatJSON)

	Debug("debug message", "k", "v")
	Info("info message", "k", "v")
	Warn("warn message", "k", "v")
	Error("error message", "k", "v")
	HTTPRequest("GET", "/api/v1/methods", "127.0.0.1", 200, 5*time.Millisecond)
	ServerStartup("rest_api", "http", 8080)
	EditionLoaded("wlc", "hebrew", "verses", 23213)
}
