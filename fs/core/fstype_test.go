package core_test

import (
	"testing"

	"github.com/jmgilman/go/gen/fs/core"
)

// TestFSType_String verifies FSType.String() returns correct string representations.
func TestFSType_String(t *testing.T) {
	tests := []struct {
		fsType   core.FSType
		expected string
	}{
		{core.FSTypeUnknown, "unknown"},
		{core.FSTypeLocal, "local"},
		{core.FSTypeMemory, "memory"},
		{core.FSType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.fsType.String(); got != tt.expected {
				t.Errorf("FSType(%d).String() = %q, want %q", tt.fsType, got, tt.expected)
			}
		})
	}
}
