package user

import (
	"testing"
)

func TestCurrentUsername(t *testing.T) {
	if got := CurrentUsername(); got == "" {
		t.Error("CurrentUsername() should never return an empty string")
	}
}

func TestOrCurrent(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"explicit id wins", "alice", "alice"},
		{"empty falls back", "", CurrentUsername()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrCurrent(tt.id); got != tt.want {
				t.Errorf("OrCurrent(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}
