package vref

import "testing"

func TestBookNumber(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"GEN", 1},
		{"MAL", 39},
		{"MAT", 40},
		{"1SA", 9},
		{"3JN", 64},
		{"REV", 66},
		{"XYZ", 0},
		{"gen", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := BookNumber(tt.code); got != tt.want {
				t.Errorf("BookNumber(%q) = %d, want %d", tt.code, got, tt.want)
			}
			if got := IsCanonical(tt.code); got != (tt.want > 0) {
				t.Errorf("IsCanonical(%q) = %v", tt.code, got)
			}
		})
	}
}
