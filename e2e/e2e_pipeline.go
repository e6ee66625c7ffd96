//go:build ignore

// e2e_pipeline exercises all 8 conversion modules in a single run and
// writes structured results to data/e2e_pipeline.log.
// Run from the project root:
//
//	go run e2e/e2e_pipeline.go
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/srinibashsamal/odianumerals/currency"
	"github.com/srinibashsamal/odianumerals/digits"
	"github.com/srinibashsamal/odianumerals/mathexpr"
	"github.com/srinibashsamal/odianumerals/numwords"
	"github.com/srinibashsamal/odianumerals/ordinal"
	"github.com/srinibashsamal/odianumerals/random"
	"github.com/srinibashsamal/odianumerals/spoken"
	"github.com/srinibashsamal/odianumerals/textscan"
)

// ---------- constants ----------

const (
	logPath      = "data/e2e_pipeline.log"
	maxDetailLen = 200
	concWorkers  = 8
	concIter     = 100
	separator    = "=========================================================="
)

// ---------- test corpus ----------

const textWithNumerals = `ସେ ୧,୫୦,୦୦୦ ଟଙ୍କା ଦେଇ ୩.୫ ଏକର ଜମି କିଣିଲେ। ଚୁକ୍ତିରେ 25 ଜଣ ସାକ୍ଷୀ ଥିଲେ।`

// ---------- types ----------

type testResult struct {
	name     string
	module   string
	passed   bool
	duration time.Duration
	detail   string
}

type moduleReport struct {
	name     string
	tests    int
	passed   int
	failed   int
	duration time.Duration
}

// ---------- helpers ----------

func pass(module, name string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: true, duration: time.Since(start)}
}

func fail(module, name, detail string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: false, duration: time.Since(start), detail: truncate(detail, maxDetailLen)}
}

func truncate(s string, maxRunes int) string {
	n := 0
	for i := range s {
		n++
		if n > maxRunes {
			return s[:i] + "..."
		}
	}
	return s
}

func safeRun(module, name string, fn func() testResult) (r testResult) {
	defer func() {
		if p := recover(); p != nil {
			r = fail(module, name, fmt.Sprintf("PANIC: %v", p), time.Now())
		}
	}()
	return fn()
}

// expect builds a pass/fail result from a got/want pair.
func expect(module, name, got, want string, err error, start time.Time) testResult {
	if err != nil {
		return fail(module, name, fmt.Sprintf("error: %v", err), start)
	}
	if got != want {
		return fail(module, name, fmt.Sprintf("expect: %s\nactual: %s", want, got), start)
	}
	return pass(module, name, start)
}

// ---------- test suites ----------

func testNumwords() []testResult {
	const mod = "numwords"
	var results []testResult

	results = append(results, safeRun(mod, "modern_lakh", func() testResult {
		start := time.Now()
		got, err := numwords.Convert(150000, numwords.Modern, numwords.Odia)
		return expect(mod, "modern_lakh", got, "ଏକ ଲକ୍ଷ ପଚାଶ ହଜାର", err, start)
	}))

	results = append(results, safeRun(mod, "english_lakh", func() testResult {
		start := time.Now()
		got, err := numwords.Convert(125000, numwords.Modern, numwords.English)
		return expect(mod, "english_lakh", got, "one lakh twenty-five thousand", err, start)
	}))

	results = append(results, safeRun(mod, "barnabodha_ayuta", func() testResult {
		start := time.Now()
		got, err := numwords.Convert(10000, numwords.Barnabodha, numwords.Odia)
		return expect(mod, "barnabodha_ayuta", got, "ଏକ ଅୟୁତ", err, start)
	}))

	results = append(results, safeRun(mod, "decimal_digits", func() testResult {
		start := time.Now()
		got, err := numwords.ConvertFloat("୧୦.୫", numwords.Modern, numwords.Odia)
		return expect(mod, "decimal_digits", got, "ଦଶ ଦଶମିକ ପାଞ୍ଚ", err, start)
	}))

	results = append(results, safeRun(mod, "zero_never_empty", func() testResult {
		start := time.Now()
		got, err := numwords.Convert(0, numwords.Modern, numwords.Odia)
		if err != nil || got == "" {
			return fail(mod, "zero_never_empty", fmt.Sprintf("got %q err %v", got, err), start)
		}
		return pass(mod, "zero_never_empty", start)
	}))

	return results
}

func testOrdinal() []testResult {
	const mod = "ordinal"
	var results []testResult

	results = append(results, safeRun(mod, "second_odia", func() testResult {
		start := time.Now()
		got, err := ordinal.Words(2, numwords.Odia)
		return expect(mod, "second_odia", got, "ଦ୍ୱିତୀୟ", err, start)
	}))

	results = append(results, safeRun(mod, "numeral_roundtrip", func() testResult {
		start := time.Now()
		num, err := ordinal.Numeral(4, numwords.Odia)
		if err != nil {
			return fail(mod, "numeral_roundtrip", err.Error(), start)
		}
		n, err := ordinal.ParseNumeral(num)
		if err != nil || n != 4 {
			return fail(mod, "numeral_roundtrip", fmt.Sprintf("%q -> %d err %v", num, n, err), start)
		}
		return pass(mod, "numeral_roundtrip", start)
	}))

	return results
}

func testCurrency() []testResult {
	const mod = "currency"
	var results []testResult

	results = append(results, safeRun(mod, "tanka_paisa", func() testResult {
		start := time.Now()
		got, err := currency.WordsString("105.70", numwords.Odia)
		return expect(mod, "tanka_paisa", got, "ଏକ ଶହ ପାଞ୍ଚ ଟଙ୍କା ସତୁରୀ ପଇସା", err, start)
	}))

	results = append(results, safeRun(mod, "decimal_exact", func() testResult {
		start := time.Now()
		got, err := currency.Words(decimal.RequireFromString("10.50"), numwords.Odia)
		return expect(mod, "decimal_exact", got, "ଦଶ ଟଙ୍କା ପଚାଶ ପଇସା", err, start)
	}))

	return results
}

func testDigits() []testResult {
	const mod = "digits"
	var results []testResult

	results = append(results, safeRun(mod, "indian_grouping", func() testResult {
		start := time.Now()
		got, err := digits.FormatIndian("150000", false)
		return expect(mod, "indian_grouping", got, "1,50,000", err, start)
	}))

	results = append(results, safeRun(mod, "roundtrip", func() testResult {
		start := time.Now()
		if got := digits.ToASCII(digits.ToOdia("1500")); got != "1500" {
			return fail(mod, "roundtrip", got, start)
		}
		return pass(mod, "roundtrip", start)
	}))

	return results
}

func testMathexpr() []testResult {
	const mod = "mathexpr"
	var results []testResult

	results = append(results, safeRun(mod, "solve_addition", func() testResult {
		start := time.Now()
		got, err := mathexpr.Solve("5 + 2", numwords.Odia)
		return expect(mod, "solve_addition", got, "ପାଞ୍ଚ ମିଶାଣ ଦୁଇ ସମାନ ସାତ", err, start)
	}))

	results = append(results, safeRun(mod, "division_by_zero", func() testResult {
		start := time.Now()
		if _, err := mathexpr.Solve("1 / 0", numwords.Odia); err == nil {
			return fail(mod, "division_by_zero", "no error", start)
		}
		return pass(mod, "division_by_zero", start)
	}))

	return results
}

func testSpoken() []testResult {
	const mod = "spoken"
	var results []testResult

	results = append(results, safeRun(mod, "half_past", func() testResult {
		start := time.Now()
		got, err := spoken.Fraction("3.5", numwords.Odia)
		return expect(mod, "half_past", got, "ସାଢ଼େ ତିନି", err, start)
	}))

	results = append(results, safeRun(mod, "reading_sequence", func() testResult {
		start := time.Now()
		got, err := spoken.ReadingSequence("102", numwords.Odia)
		return expect(mod, "reading_sequence", got, "ଏକ ଶୂନ ଦୁଇ", err, start)
	}))

	return results
}

func testTextscan() []testResult {
	const mod = "textscan"
	var results []testResult

	results = append(results, safeRun(mod, "extract_mixed", func() testResult {
		start := time.Now()
		odia := textscan.Extract(textWithNumerals)
		ascii := textscan.ExtractASCII(textWithNumerals)
		if len(odia) != 2 || len(ascii) != 1 {
			return fail(mod, "extract_mixed", fmt.Sprintf("odia %v ascii %v", odia, ascii), start)
		}
		return pass(mod, "extract_mixed", start)
	}))

	results = append(results, safeRun(mod, "script_swap", func() testResult {
		start := time.Now()
		out := textscan.ToASCII(textWithNumerals)
		if strings.ContainsAny(out, "୦୧୨୩୪୫୬୭୮୯") {
			return fail(mod, "script_swap", truncate(out, 80), start)
		}
		return pass(mod, "script_swap", start)
	}))

	return results
}

func testRandom() []testResult {
	const mod = "random"
	var results []testResult

	results = append(results, safeRun(mod, "seeded_words", func() testResult {
		start := time.Now()
		g := random.New(random.WithSeed(1), random.AsWords(numwords.Odia))
		got, err := g.Int(1, 100)
		if err != nil || got == "" {
			return fail(mod, "seeded_words", fmt.Sprintf("got %q err %v", got, err), start)
		}
		return pass(mod, "seeded_words", start)
	}))

	return results
}

// concurrencySweep hammers the pure converters from many goroutines.
func concurrencySweep() []testResult {
	const mod = "concurrency"
	start := time.Now()

	var failures atomic.Int64
	var wg sync.WaitGroup
	for w := range concWorkers {
		wg.Go(func() {
			for i := range concIter {
				n := int64(w*10007 + i*37)
				for lang := numwords.Odia; lang <= numwords.English; lang++ {
					if got, err := numwords.Convert(n, numwords.Modern, lang); err != nil || got == "" {
						failures.Add(1)
					}
				}
			}
		})
	}
	wg.Wait()

	if f := failures.Load(); f > 0 {
		return []testResult{fail(mod, "parallel_convert", fmt.Sprintf("%d failures", f), start)}
	}
	return []testResult{pass(mod, "parallel_convert", start)}
}

// ---------- main ----------

func main() {
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("create %s: %v", logPath, err)
	}
	defer logFile.Close()
	out := bufio.NewWriter(logFile)
	defer out.Flush()

	suites := []func() []testResult{
		testNumwords, testOrdinal, testCurrency, testDigits,
		testMathexpr, testSpoken, testTextscan, testRandom,
		concurrencySweep,
	}

	var all []testResult
	for _, suite := range suites {
		all = append(all, suite()...)
	}

	reports := map[string]*moduleReport{}
	var order []string
	for _, r := range all {
		rep, ok := reports[r.module]
		if !ok {
			rep = &moduleReport{name: r.module}
			reports[r.module] = rep
			order = append(order, r.module)
		}
		rep.tests++
		rep.duration += r.duration
		if r.passed {
			rep.passed++
		} else {
			rep.failed++
		}

		status := "PASS"
		if !r.passed {
			status = "FAIL"
		}
		fmt.Fprintf(out, "%s %-10s %-24s %v\n", status, r.module, r.name, r.duration)
		if r.detail != "" {
			fmt.Fprintf(out, "     %s\n", r.detail)
		}
	}

	fmt.Fprintln(out, separator)
	totalFailed := 0
	for _, name := range order {
		rep := reports[name]
		totalFailed += rep.failed
		fmt.Fprintf(out, "%-10s %d/%d passed in %v\n", rep.name, rep.passed, rep.tests, rep.duration)
		fmt.Printf("%-10s %d/%d passed\n", rep.name, rep.passed, rep.tests)
	}

	if totalFailed > 0 {
		fmt.Printf("e2e: %d test(s) failed, see %s\n", totalFailed, logPath)
		out.Flush()
		os.Exit(1)
	}
	fmt.Println("e2e: all tests passed")
}
