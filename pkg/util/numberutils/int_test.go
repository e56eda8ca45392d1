package numberutils_test

import (
	"testing"

	"auth-api/pkg/util/numberutils"
)

func TestToIntWithDefault(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue int
		want         int
	}{
		{"valid number", "42", 0, 42},
		{"negative number", "-5", 0, -5},
		{"empty string", "", 7, 7},
		{"not a number", "abc", 7, 7},
		{"float", "1.5", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := numberutils.ToIntWithDefault(tt.value, tt.defaultValue); got != tt.want {
				t.Errorf("ToIntWithDefault(%q, %d) = %d, want %d", tt.value, tt.defaultValue, got, tt.want)
			}
		})
	}
}

func TestToIntInRange(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"in range", "50", 50},
		{"below minimum", "0", 1},
		{"above maximum", "500", 100},
		{"invalid uses default", "abc", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := numberutils.ToIntInRange(tt.value, 10, 1, 100); got != tt.want {
				t.Errorf("ToIntInRange(%q, 10, 1, 100) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}
