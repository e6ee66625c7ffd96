package numwords

import (
	"strings"
	"testing"
)

// FuzzConvert verifies that Convert never panics and never returns an
// empty phrase for any representable input.
func FuzzConvert(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(-1))
	f.Add(int64(100))
	f.Add(int64(150000))
	f.Add(int64(1_000_000_000))
	f.Add(int64(9223372036854775807))  // math.MaxInt64
	f.Add(int64(-9223372036854775808)) // math.MinInt64

	f.Fuzz(func(t *testing.T, n int64) {
		for _, sys := range []System{Modern, Barnabodha} {
			for _, lang := range []Language{Odia, Roman, Odilish, English} {
				got, err := Convert(n, sys, lang)
				if err != nil {
					continue // MinInt64 or Barnabodha/English
				}
				if got == "" {
					t.Errorf("Convert(%d, %v, %v) returned empty string", n, sys, lang)
				}
			}
		}
	})
}

// FuzzConvertFloat verifies that ConvertFloat never panics for any string
// input, and that successful conversions carry no doubled spaces.
func FuzzConvertFloat(f *testing.F) {
	f.Add("3.14")
	f.Add("-2.5")
	f.Add("")
	f.Add("୧୦.୫")
	f.Add("1,50,000")
	f.Add("1.2.3")
	f.Add("+.0")
	f.Add("\xff\xfe")
	f.Add(strings.Repeat("9", 30))

	f.Fuzz(func(t *testing.T, s string) {
		got, err := ConvertFloat(s, Modern, Odia)
		if err != nil {
			return
		}
		if got == "" {
			t.Errorf("ConvertFloat(%q) returned empty string without error", s)
		}
		if strings.Contains(got, "  ") {
			t.Errorf("ConvertFloat(%q) = %q contains doubled space", s, got)
		}
	})
}
