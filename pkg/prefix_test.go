package pkg

import (
	"testing"
	"time"

	"github.com/rocktavious/autopilot/v2023"
	"github.com/rs/zerolog/log"
)

func newTestLogger(options Options) *Logger {
	return NewLogger(log.Logger, &SafeBuffer{}, options)
}

func TestGetPrefixDefaultsPerCommand(t *testing.T) {
	// Arrange
	l := newTestLogger(Options{})
	// Act / Assert
	autopilot.Equals(t, "[2]", l.getPrefix(Command{Index: 2}))
	autopilot.Equals(t, "[web]", l.getPrefix(Command{Index: 2, Name: "web"}))
}

func TestGetPrefixNone(t *testing.T) {
	// Arrange
	l := newTestLogger(Options{PrefixFormat: "none"})
	// Act / Assert
	autopilot.Equals(t, "", l.getPrefix(Command{Index: 2, Name: "web"}))
}

func TestGetPrefixSingleTokens(t *testing.T) {
	// Arrange / Act / Assert
	l := newTestLogger(Options{PrefixFormat: "pid"})
	autopilot.Equals(t, "[123]", l.getPrefix(Command{Pid: 123, Index: 2}))
	l = newTestLogger(Options{PrefixFormat: "command", PrefixLength: 10})
	autopilot.Equals(t, "[npm ..atch]", l.getPrefix(Command{Command: "npm run test:watch"}))
}

func TestGetPrefixTime(t *testing.T) {
	// Arrange
	l := newTestLogger(Options{PrefixFormat: "time", TimestampFormat: "2006"})
	// Act / Assert
	autopilot.Equals(t, "["+time.Now().Format("2006")+"]", l.getPrefix(Command{Index: 0}))
}

func TestGetPrefixTemplate(t *testing.T) {
	// Arrange
	l := newTestLogger(Options{PrefixFormat: "{name}-{index}"})
	// Act / Assert
	autopilot.Equals(t, "web-2", l.getPrefix(Command{Index: 2, Name: "web"}))
}

func TestGetPrefixTemplateKeepsUnknownPlaceholders(t *testing.T) {
	// Arrange
	l := newTestLogger(Options{PrefixFormat: "{name} {foo}"})
	// Act / Assert
	autopilot.Equals(t, "web {foo}", l.getPrefix(Command{Index: 2, Name: "web"}))
}
