// Tests for the ordinal package.
package ordinal

import (
	"errors"
	"testing"

	"github.com/srinibashsamal/odianumerals/numwords"
)

func TestWordsOdia(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input int64
		lang  numwords.Language
		want  string
	}{
		{"first", 1, numwords.Odia, "ପ୍ରଥମ"},
		{"second", 2, numwords.Odia, "ଦ୍ୱିତୀୟ"},
		{"sixth", 6, numwords.Odia, "ଷଷ୍ଠ"},
		{"nineteenth", 19, numwords.Odia, "ଊନବିଂଶ"},
		{"twentieth", 20, numwords.Odia, "ବିଂଶ"},
		{"twenty-first derived", 21, numwords.Odia, "ଏକୋଇଶିତମ"},
		{"hundredth", 100, numwords.Odia, "ଶତତମ"},
		{"lakh-th", 100000, numwords.Odia, "ଲକ୍ଷତମ"},
		{"second roman", 2, numwords.Roman, "dwitīẏa"},
		{"second odilish", 2, numwords.Odilish, "dwitiya"},
		{"derived roman", 47, numwords.Roman, "satacāḷiśitama"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Words(tt.input, tt.lang)
			if err != nil {
				t.Fatalf("Words(%d) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Words(%d, %v) = %q, want %q", tt.input, tt.lang, got, tt.want)
			}
		})
	}
}

func TestWordsEnglish(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input int64
		want  string
	}{
		{"first", 1, "first"},
		{"twelfth", 12, "twelfth"},
		{"twenty-first", 21, "twenty-first"},
		{"ninety-ninth", 99, "ninety-ninth"},
		{"hundredth", 100, "one hundredth"},
		{"hundred fifth", 105, "one hundred fifth"},
		{"two hundredth", 200, "two hundredth"},
		{"thousandth", 1000, "one thousandth"},
		{"thousand two hundred thirty-fourth", 1234, "one thousand two hundred thirty-fourth"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Words(tt.input, numwords.English)
			if err != nil {
				t.Fatalf("Words(%d) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Words(%d, English) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWordsErrors(t *testing.T) {
	t.Parallel()

	if _, err := Words(0, numwords.Odia); !errors.Is(err, numwords.ErrInvalidInput) {
		t.Errorf("Words(0) error = %v, want ErrInvalidInput", err)
	}
	if _, err := Words(-3, numwords.English); !errors.Is(err, numwords.ErrInvalidInput) {
		t.Errorf("Words(-3) error = %v, want ErrInvalidInput", err)
	}
	if _, err := Words(2, numwords.Language(9)); !errors.Is(err, numwords.ErrUnsupportedScale) {
		t.Errorf("Words unknown language error = %v, want ErrUnsupportedScale", err)
	}
}

func TestNumeral(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input int64
		lang  numwords.Language
		want  string
	}{
		{"odia 1", 1, numwords.Odia, "୧ମ"},
		{"odia 2", 2, numwords.Odia, "୨ୟ"},
		{"odia 4", 4, numwords.Odia, "୪ର୍ଥ"},
		{"odia 6", 6, numwords.Odia, "୬ଷ୍ଠ"},
		{"odia teen", 11, numwords.Odia, "୧୧ଶ"},
		{"odia fallback", 25, numwords.Odia, "୨୫ମ"},
		{"english 1st", 1, numwords.English, "1st"},
		{"english 2nd", 2, numwords.English, "2nd"},
		{"english 3rd", 3, numwords.English, "3rd"},
		{"english 11th", 11, numwords.English, "11th"},
		{"english 13th", 13, numwords.English, "13th"},
		{"english 22nd", 22, numwords.English, "22nd"},
		{"english 112th", 112, numwords.English, "112th"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Numeral(tt.input, tt.lang)
			if err != nil {
				t.Fatalf("Numeral(%d) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Numeral(%d, %v) = %q, want %q", tt.input, tt.lang, got, tt.want)
			}
		})
	}
}

func TestParseNumeral(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"odia first", "୧ମ", 1, false},
		{"odia fourth", "୪ର୍ଥ", 4, false},
		{"odia teen", "୧୧ଶ", 11, false},
		{"odia bare digits", "୨୫", 25, false},
		{"english 1st", "1st", 1, false},
		{"english 22nd", "22nd", 22, false},
		{"english uppercase", "3RD", 3, false},
		{"english bare", "17", 17, false},
		{"empty", "", 0, true},
		{"words not numerals", "ପ୍ରଥମ", 0, true},
		{"garbage", "abc", 0, true},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseNumeral(tt.input)
			if tt.wantErr {
				if !errors.Is(err, numwords.ErrInvalidInput) {
					t.Fatalf("ParseNumeral(%q) error = %v, want ErrInvalidInput", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNumeral(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseNumeral(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// Round-trip: Numeral then ParseNumeral recovers the rank in both scripts.
func TestNumeralRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int64{1, 2, 3, 4, 6, 10, 11, 18, 21, 99, 101} {
		for _, lang := range []numwords.Language{numwords.Odia, numwords.English} {
			numeral, err := Numeral(n, lang)
			if err != nil {
				t.Fatalf("Numeral(%d, %v) error: %v", n, lang, err)
			}
			back, err := ParseNumeral(numeral)
			if err != nil {
				t.Fatalf("ParseNumeral(%q) error: %v", numeral, err)
			}
			if back != n {
				t.Errorf("ParseNumeral(Numeral(%d, %v)) = %d", n, lang, back)
			}
		}
	}
}
