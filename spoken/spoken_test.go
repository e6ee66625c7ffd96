package spoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srinibashsamal/odianumerals/numwords"
)

func TestFraction(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		lang  numwords.Language
		want  string
	}{
		{"quarter", "0.25", numwords.Odia, "ଚଉଠ"},
		{"half", "0.5", numwords.Odia, "ଅଧା"},
		{"half with trailing zero", "0.50", numwords.Odia, "ଅଧା"},
		{"three quarters", "0.75", numwords.Odia, "ତିନିପା"},
		{"one and a half", "1.5", numwords.Odia, "ଦେଢ଼"},
		{"two and a half", "2.5", numwords.Odia, "ଅଢ଼େଇ"},
		{"three and a half", "3.5", numwords.Odia, "ସାଢ଼େ ତିନି"},
		{"ten and a half", "10.5", numwords.Odia, "ସାଢ଼େ ଦଶ"},
		{"odia digits", "୧.୫", numwords.Odia, "ଦେଢ଼"},
		{"roman half", "0.5", numwords.Roman, "adhā"},
		{"english half past", "3.5", numwords.English, "three and a half"},
		{"no colloquial form", "0.3", numwords.Odia, "ଶୂନ ଦଶମିକ ତିନି"},
		{"plain integer", "4", numwords.Odia, "ଚାରି"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Fraction(tt.input, tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Fraction("abc", numwords.Odia)
	assert.Error(t, err)
}

func TestPercentage(t *testing.T) {
	t.Parallel()

	got, err := Percentage("10", numwords.Odia)
	require.NoError(t, err)
	assert.Equal(t, "ଦଶ ପ୍ରତିଶତ", got)

	got, err = Percentage("୫୦", numwords.Odia)
	require.NoError(t, err)
	assert.Equal(t, "ପଚାଶ ପ୍ରତିଶତ", got)

	got, err = Percentage("12.5", numwords.English)
	require.NoError(t, err)
	assert.Equal(t, "twelve point five percent", got)
}

func TestReadingSequence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		lang  numwords.Language
		want  string
	}{
		{"simple", "102", numwords.Odia, "ଏକ ଶୂନ ଦୁଇ"},
		{"leading zero kept", "012", numwords.Odia, "ଶୂନ ଏକ ଦୁଇ"},
		{"odia digits", "୧୦୨", numwords.Odia, "ଏକ ଶୂନ ଦୁଇ"},
		{"decimal point", "1.5", numwords.Odia, "ଏକ ଦଶମିକ ପାଞ୍ଚ"},
		{"english", "102", numwords.English, "one zero two"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ReadingSequence(tt.input, tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "1-2", "1 2"} {
		_, err := ReadingSequence(bad, numwords.Odia)
		assert.Error(t, err, bad)
	}
}
