// Tests for the digits package.
package digits

import "testing"

func TestToOdiaToASCII(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		odia string
	}{
		{"integer", "123", "୧୨୩"},
		{"decimal", "123.45", "୧୨୩.୪୫"},
		{"embedded", "Rs 99", "Rs ୯୯"},
		{"empty", "", ""},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ToOdia(tt.in); got != tt.odia {
				t.Errorf("ToOdia(%q) = %q, want %q", tt.in, got, tt.odia)
			}
			if got := ToASCII(tt.odia); got != tt.in {
				t.Errorf("ToASCII(%q) = %q, want %q", tt.odia, got, tt.in)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	t.Parallel()

	if got, err := ParseNumber("୧,୨୩,୪୫୬.୭୮"); err != nil || got != "123456.78" {
		t.Errorf("ParseNumber = %q, %v", got, err)
	}
	if got, err := ParseNumber("42"); err != nil || got != "42" {
		t.Errorf("ParseNumber = %q, %v", got, err)
	}
	if _, err := ParseNumber("ଟଙ୍କା"); err == nil {
		t.Error("ParseNumber(non-numeral): want error")
	}
}

func TestFormatIndian(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		odia    bool
		want    string
		wantErr bool
	}{
		{"short", "999", false, "999", false},
		{"four digits", "1000", false, "1,000", false},
		{"five digits", "25000", false, "25,000", false},
		{"lakh", "100000", false, "1,00,000", false},
		{"ten lakh", "1000000", false, "10,00,000", false},
		{"crore", "10000000", false, "1,00,00,000", false},
		{"decimal kept", "123456.78", false, "1,23,456.78", false},
		{"negative", "-150000", false, "-1,50,000", false},
		{"odia digits", "1000000", true, "୧୦,୦୦,୦୦୦", false},
		{"invalid", "ten", false, "", true},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := FormatIndian(tt.in, tt.odia)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FormatIndian(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatIndian(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("FormatIndian(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
