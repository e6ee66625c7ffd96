// Package mathexpr performs simple binary arithmetic and reads the whole
// equation out as an Odia sentence: Express(5, Add, 2) produces
// "ପାଞ୍ଚ ମିଶାଣ ଦୁଇ ସମାନ ସାତ" ("five plus two equals seven").
//
// Operands are decimal.Decimal values, so the spoken result is exact for
// addition, subtraction and multiplication; division is rounded to ten
// fractional digits before rendering. Solve parses a plain-text equation
// ("10 + 20", Odia digits accepted) and expresses it the same way.
//
// All functions are safe for concurrent use by multiple goroutines.
package mathexpr

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/srinibashsamal/odianumerals/internal/numstr"
	"github.com/srinibashsamal/odianumerals/numwords"
)

// ErrDivisionByZero is returned when the right operand of Divide is zero.
var ErrDivisionByZero = fmt.Errorf("mathexpr: division by zero")

// Operator selects the arithmetic operation of an expression.
type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
)

var operatorSymbols = [...]string{"+", "-", "*", "/"}

func (op Operator) String() string {
	if op < Add || op > Divide {
		return fmt.Sprintf("Operator(%d)", int(op))
	}
	return operatorSymbols[op]
}

// ParseOperator maps an operator symbol to its Operator. Both ASCII and
// conventional typographic symbols are accepted ("x" and "÷" included).
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "+":
		return Add, nil
	case "-":
		return Subtract, nil
	case "*", "x", "×":
		return Multiply, nil
	case "/", "÷":
		return Divide, nil
	}
	return 0, fmt.Errorf("mathexpr: unsupported operator %q: %w", s, numwords.ErrInvalidInput)
}

// Operator and verb words indexed by Operator, then by language.
var (
	operatorWords = [4][4]string{
		{"ମିଶାଣ", "miśāṇa", "mishana", "plus"},
		{"ଫେଡ଼ାଣ", "pheṛāṇa", "phedana", "minus"},
		{"ଗୁଣନ", "guṇana", "gunana", "times"},
		{"ହରଣ", "haraṇa", "harana", "divided by"},
	}
	verbWords = [4][4]string{
		{"ମିଶାଇଲେ", "miśāile", "mishaile", "added to"},
		{"ଫେଡ଼ିଲେ", "pheṛile", "phedile", "subtracted from"},
		{"ଗୁଣିଲେ", "guṇile", "gunile", "multiplied by"},
		{"ହରିଲେ", "harile", "harile", "divided by"},
	}
	equalsWords = [4]string{"ସମାନ", "samāna", "samana", "equals"}
)

// divisionScale bounds the fractional digits of a quotient before it is
// read out digit by digit.
const divisionScale = 10

// Option adjusts how an expression is phrased.
type Option func(*options)

type options struct {
	verbs  bool
	system numwords.System
}

// WithVerbs phrases the operator as an action ("ମିଶାଇଲେ", "added to")
// instead of the operation name.
func WithVerbs() Option {
	return func(o *options) { o.verbs = true }
}

// WithBarnabodha renders the numeric parts on the classical Barnabodha
// scale instead of the modern one.
func WithBarnabodha() Option {
	return func(o *options) { o.system = numwords.Barnabodha }
}

// Express computes a op b and returns the full equation as words:
// operand, operator word, operand, equals word, result.
func Express(a decimal.Decimal, op Operator, b decimal.Decimal, lang numwords.Language, opts ...Option) (string, error) {
	o := options{system: numwords.Modern}
	for _, opt := range opts {
		opt(&o)
	}
	if lang < numwords.Odia || lang > numwords.English {
		return "", fmt.Errorf("mathexpr: unknown language %d: %w", int(lang), numwords.ErrUnsupportedScale)
	}
	if op < Add || op > Divide {
		return "", fmt.Errorf("mathexpr: unsupported operator %d: %w", int(op), numwords.ErrInvalidInput)
	}

	result, err := apply(a, op, b)
	if err != nil {
		return "", err
	}

	wordA, err := operandWords(a, o.system, lang)
	if err != nil {
		return "", err
	}
	wordB, err := operandWords(b, o.system, lang)
	if err != nil {
		return "", err
	}
	wordR, err := operandWords(result, o.system, lang)
	if err != nil {
		return "", err
	}

	opWord := operatorWords[op][lang]
	if o.verbs {
		opWord = verbWords[op][lang]
	}
	return wordA + " " + opWord + " " + wordB + " " + equalsWords[lang] + " " + wordR, nil
}

// apply performs the arithmetic itself.
func apply(a decimal.Decimal, op Operator, b decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case Add:
		return a.Add(b), nil
	case Subtract:
		return a.Sub(b), nil
	case Multiply:
		return a.Mul(b), nil
	case Divide:
		if b.IsZero() {
			return decimal.Decimal{}, ErrDivisionByZero
		}
		return a.DivRound(b, divisionScale), nil
	}
	return decimal.Decimal{}, fmt.Errorf("mathexpr: unsupported operator %d: %w", int(op), numwords.ErrInvalidInput)
}

func operandWords(d decimal.Decimal, sys numwords.System, lang numwords.Language) (string, error) {
	return numwords.ConvertFloat(d.String(), sys, lang)
}

// exprPattern matches "operand operator operand" after Odia digits have
// been mapped to ASCII. Operands are unsigned numerals.
var exprPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*([+\-*x×/÷])\s*([0-9]+(?:\.[0-9]+)?)$`)

// Solve parses a plain-text equation such as "10 + 20" or "୫ x ୩" and
// expresses it as words. The expression must be two unsigned numerals
// around a single operator symbol.
func Solve(expr string, lang numwords.Language, opts ...Option) (string, error) {
	normalized := numstr.ToASCIIDigits(strings.TrimSpace(expr))
	m := exprPattern.FindStringSubmatch(normalized)
	if m == nil {
		return "", fmt.Errorf("mathexpr: malformed expression %q: %w", expr, numwords.ErrInvalidInput)
	}

	a, err := decimal.NewFromString(m[1])
	if err != nil {
		return "", fmt.Errorf("mathexpr: malformed expression %q: %w", expr, numwords.ErrInvalidInput)
	}
	b, err := decimal.NewFromString(m[3])
	if err != nil {
		return "", fmt.Errorf("mathexpr: malformed expression %q: %w", expr, numwords.ErrInvalidInput)
	}
	op, err := ParseOperator(m[2])
	if err != nil {
		return "", err
	}
	return Express(a, op, b, lang, opts...)
}
