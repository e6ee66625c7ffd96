package mathexpr

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srinibashsamal/odianumerals/numwords"
)

func TestExpressOdia(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b int64
		op   Operator
		want string
	}{
		{"addition", 5, 2, Add, "ପାଞ୍ଚ ମିଶାଣ ଦୁଇ ସମାନ ସାତ"},
		{"subtraction", 10, 4, Subtract, "ଦଶ ଫେଡ଼ାଣ ଚାରି ସମାନ ଛଅ"},
		{"multiplication", 3, 3, Multiply, "ତିନି ଗୁଣନ ତିନି ସମାନ ନଅ"},
		{"division", 10, 2, Divide, "ଦଶ ହରଣ ଦୁଇ ସମାନ ପାଞ୍ଚ"},
		{"negative result", 2, 5, Subtract, "ଦୁଇ ଫେଡ଼ାଣ ପାଞ୍ଚ ସମାନ ବିୟୋଗ ତିନି"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Express(decimal.NewFromInt(tt.a), tt.op, decimal.NewFromInt(tt.b), numwords.Odia)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpressVerbs(t *testing.T) {
	t.Parallel()

	got, err := Express(decimal.NewFromInt(5), Add, decimal.NewFromInt(2), numwords.Odia, WithVerbs())
	require.NoError(t, err)
	assert.Equal(t, "ପାଞ୍ଚ ମିଶାଇଲେ ଦୁଇ ସମାନ ସାତ", got)
}

func TestExpressEnglish(t *testing.T) {
	t.Parallel()

	got, err := Express(decimal.NewFromInt(100000), Add, decimal.NewFromInt(25000), numwords.English)
	require.NoError(t, err)
	assert.Equal(t, "one lakh plus twenty-five thousand equals one lakh twenty-five thousand", got)
}

func TestExpressFractionalQuotient(t *testing.T) {
	t.Parallel()

	// 5 / 2 = 2.5; trailing zeros from the fixed division scale must not
	// surface as spoken digits.
	got, err := Express(decimal.NewFromInt(5), Divide, decimal.NewFromInt(2), numwords.Odia)
	require.NoError(t, err)
	assert.Equal(t, "ପାଞ୍ଚ ହରଣ ଦୁଇ ସମାନ ଦୁଇ ଦଶମିକ ପାଞ୍ଚ", got)
}

func TestExpressDivisionByZero(t *testing.T) {
	t.Parallel()

	_, err := Express(decimal.NewFromInt(1), Divide, decimal.Zero, numwords.Odia)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestParseOperator(t *testing.T) {
	t.Parallel()

	for sym, want := range map[string]Operator{
		"+": Add, "-": Subtract, "*": Multiply, "x": Multiply, "×": Multiply,
		"/": Divide, "÷": Divide,
	} {
		got, err := ParseOperator(sym)
		require.NoError(t, err, sym)
		assert.Equal(t, want, got, sym)
	}

	_, err := ParseOperator("%")
	assert.ErrorIs(t, err, numwords.ErrInvalidInput)
}

func TestSolve(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		expr string
		want string
	}{
		{"ascii addition", "10 + 20", "ଦଶ ମିଶାଣ କୋଡ଼ିଏ ସମାନ ତିରିଶ"},
		{"no spaces", "5+2", "ପାଞ୍ଚ ମିଶାଣ ଦୁଇ ସମାନ ସାତ"},
		{"odia digits", "୫ x ୩", "ପାଞ୍ଚ ଗୁଣନ ତିନି ସମାନ ପନ୍ଦର"},
		{"decimal operand", "1.5 + 1", "ଏକ ଦଶମିକ ପାଞ୍ଚ ମିଶାଣ ଏକ ସମାନ ଦୁଇ ଦଶମିକ ପାଞ୍ଚ"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Solve(tt.expr, numwords.Odia)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "10 +", "a + b", "1 + 2 + 3", "-1 + 2"} {
		_, err := Solve(bad, numwords.Odia)
		assert.Error(t, err, bad)
	}
}
