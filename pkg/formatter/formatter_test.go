package formatter

import "testing"

func TestFormatInt(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{72, "72"},
		{0, "0"},
		{-15, "-15"},
		{1234567, "1234567"},
	}

	for _, tt := range tests {
		if got := FormatInt(tt.in); got != tt.want {
			t.Errorf("FormatInt(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		decimals int
		want     string
	}{
		{"two decimals", 3.14159, 2, "3.14"},
		{"rounds", 2.675001, 2, "2.68"},
		{"whole", 21, 2, "21.00"},
		{"negative", -0.5, 2, "-0.50"},
		{"default precision", 1.0 / 3, -1, "0.33"},
		{"no decimals", 9.9, 0, "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFloat(tt.in, tt.decimals); got != tt.want {
				t.Errorf("FormatFloat(%v, %d) = %q, want %q", tt.in, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestFormatBool(t *testing.T) {
	if FormatBool(true) != "1" || FormatBool(false) != "0" {
		t.Errorf("FormatBool() = %q/%q, want 1/0", FormatBool(true), FormatBool(false))
	}
}
