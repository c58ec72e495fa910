package logging

import (
	"testing"
)

func TestDebugEnabled(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"FALSE", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run("TASKBOARD_DEBUG="+tt.value, func(t *testing.T) {
			t.Setenv("TASKBOARD_DEBUG", tt.value)
			if got := DebugEnabled(); got != tt.expected {
				t.Errorf("DebugEnabled() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDebugEnabled_SeedsNewLoggers(t *testing.T) {
	t.Setenv("TASKBOARD_DEBUG", "false")
	if Discard().DebugEnabled() {
		t.Error("a false TASKBOARD_DEBUG should leave debug off")
	}
}
