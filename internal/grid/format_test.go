package grid

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name      string
		num       string
		precision Precision
		thousands string
		decimal   string
		want      string
	}{
		{"zero", "0", Digits(3), ",", ".", "0"},
		{"zero with round", "0", Round, "", "", "0"},
		{"negative zero", "-0.0", Digits(0), ",", ".", "0"},
		{"rounds to zero", "0.004", Digits(2), ",", ".", "0"},
		{"grouped integer", "1234567", Digits(0), ",", ".", "1,234,567"},
		{"grouped with decimals", "1234567.89", Digits(2), " ", ",", "1 234 567,89"},
		{"unset precision keeps fraction", "1234.5678", Digits(0), ",", ".", "1,234.5678"},
		{"refixes precision", "1234.5678", Digits(2), ",", ".", "1,234.57"},
		{"pads precision", "12.3", Digits(2), ",", ".", "12.30"},
		{"round policy", "1234.5", Round, ",", ".", "1,235"},
		{"round negative tie", "-2.5", Round, ",", ".", "-3"},
		{"negative grouped", "-1234567.5", Digits(0), ",", ".", "-1,234,567.5"},
		{"negative short", "-100", Digits(0), ",", ".", "-100"},
		{"negative four digits", "-1000", Digits(0), ",", ".", "-1,000"},
		{"three digits", "999", Digits(0), ",", ".", "999"},
		{"six digits", "999999", Digits(0), ",", ".", "999,999"},
		{"default separators", "12345.6", Digits(1), "", "", "12 345 6"},
		{"not a number", "abc", Digits(2), ",", ".", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatNumber(tt.num, tt.precision, tt.thousands, tt.decimal)
			if got != tt.want {
				t.Fatalf("FormatNumber(%q, %v): expected %q, got %q", tt.num, tt.precision, tt.want, got)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v         float64
		precision Precision
		want      string
	}{
		{0.5, Digits(0), "1"},
		{1234.5678, Digits(2), "1,234.57"},
		{-0.2, Digits(0), "0"},
		{0, Digits(4), "0"},
		{-1234567.4, Round, "-1,234,567"},
	}

	for _, tt := range tests {
		if got := FormatValue(tt.v, tt.precision, ",", "."); got != tt.want {
			t.Fatalf("FormatValue(%v, %v): expected %q, got %q", tt.v, tt.precision, tt.want, got)
		}
	}
}

func TestGroupThousands(t *testing.T) {
	tests := map[string]string{
		"":         "",
		"1":        "1",
		"12":       "12",
		"123":      "123",
		"1234":     "1.234",
		"-1234":    "-1.234",
		"-123":     "-123",
		"1234567":  "1.234.567",
		"12345678": "12.345.678",
	}

	for in, want := range tests {
		if got := groupThousands(in, "."); got != want {
			t.Fatalf("groupThousands(%q): expected %q, got %q", in, want, got)
		}
	}
}
