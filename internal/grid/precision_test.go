package grid

import "testing"

func TestParsePrecision(t *testing.T) {
	tests := []struct {
		in      string
		want    Precision
		wantErr bool
	}{
		{"round", Round, false},
		{"ROUND", Round, false},
		{"3", Digits(3), false},
		{" 0 ", Digits(0), false},
		{"", Digits(0), false},
		{"-1", Precision{}, true},
		{"two", Precision{}, true},
	}

	for _, tt := range tests {
		got, err := ParsePrecision(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParsePrecision(%q): unexpected error state: %v", tt.in, err)
		}
		if !tt.wantErr && got != tt.want {
			t.Fatalf("ParsePrecision(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestPrecisionEscalate(t *testing.T) {
	if got := Round.Escalate(); got != Digits(1) {
		t.Fatalf("expected round to escalate to 1, got %v", got)
	}
	if got := Digits(2).Escalate(); got != Digits(3) {
		t.Fatalf("expected 3, got %v", got)
	}
}

func TestPrecisionIsSet(t *testing.T) {
	if Digits(0).IsSet() {
		t.Fatalf("expected Digits(0) to be unset")
	}
	if !Digits(1).IsSet() || !Round.IsSet() {
		t.Fatalf("expected Digits(1) and Round to be set")
	}
	if Round.Digits() != 0 {
		t.Fatalf("expected round to generate with 0 digits, got %d", Round.Digits())
	}
	if Round.String() != "round" || Digits(4).String() != "4" {
		t.Fatalf("unexpected String output: %s, %s", Round, Digits(4))
	}
	if Digits(-2) != Digits(0) {
		t.Fatalf("expected negative digits to clamp to 0")
	}
}
