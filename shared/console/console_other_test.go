//go:build !windows

package console

import (
	"os"
	"testing"
)

func TestIsBlueBackground(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"", false},
		{"15;0", false},
		{"15;4", true},
		{"0;default;12", true},
		{"7;", false},
	}

	for _, tt := range tests {
		t.Setenv("COLORFGBG", tt.env)
		if got := IsBlueBackground(os.Stderr); got != tt.want {
			t.Fatalf("COLORFGBG=%q: expected %v, got %v", tt.env, tt.want, got)
		}
	}
}
