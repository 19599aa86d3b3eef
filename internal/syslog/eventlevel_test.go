package syslog

import (
	"testing"

	"eventlink/pkg/eventdef"
)

func TestEventLevelToCodeMatchesSeverityTable(t *testing.T) {
	InitBidiMaps()

	tests := []struct {
		level    eventdef.LogLevel
		spelling string
	}{
		{eventdef.Emergency, "emerg"},
		{eventdef.Alert, "alert"},
		{eventdef.Critical, "crit"},
		{eventdef.Error, "err"},
		{eventdef.Warning, "warning"},
		{eventdef.Notice, "notice"},
		{eventdef.Info, "info"},
		{eventdef.Protocol, "debug"},
	}

	for _, tt := range tests {
		want, err := SeverityToCode(tt.spelling)
		if err != nil {
			t.Fatalf("lookup failed for %q: %v", tt.spelling, err)
		}
		got := EventLevelToCode(tt.level)
		if got != want {
			t.Errorf("level %v: got code %d, want %d (%s)", tt.level, got, want, tt.spelling)
		}
	}
}

func TestEventLevelToCodeDisabledMeansNoForward(t *testing.T) {
	if got := EventLevelToCode(eventdef.Disabled); got != NoForward {
		t.Errorf("Disabled: got %d, want sentinel %d", got, NoForward)
	}
}
