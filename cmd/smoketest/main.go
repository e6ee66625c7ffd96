// Command smoketest scans a directory of .txt files for embedded numerals
// and runs every one through the conversion pipeline: extraction,
// digit-script round-trip and word rendering in all three Odia variants.
// It reports per-directory totals and prints any numeral that fails.
//
//	go run ./cmd/smoketest <directory>
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/srinibashsamal/odianumerals/numwords"
	"github.com/srinibashsamal/odianumerals/textscan"
)

const (
	maxWorkers   = 4
	expectedArgs = 2
	maxFailures  = 20 // failures printed before truncating
)

type fileDensity struct {
	path     string
	numerals int
	bytes    int64
}

type stats struct {
	mu            sync.Mutex
	filesScanned  int
	totalBytes    int64
	odiaNumerals  int
	asciiNumerals int
	convOK        int
	convFail      int
	roundTripFail int
	failures      []string
	densities     []fileDensity
}

func (s *stats) recordFailure(path, numeral string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.convFail++
	if len(s.failures) < maxFailures {
		s.failures = append(s.failures, fmt.Sprintf("%s: %q: %v", path, numeral, err))
	}
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	var filePaths []string
	err := filepath.WalkDir(os.Args[1], func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "walk: %v\n", err)
		os.Exit(1)
	}

	st := &stats{}
	jobs := make(chan string)
	var wg sync.WaitGroup
	for range maxWorkers {
		wg.Go(func() {
			for path := range jobs {
				scanFile(path, st)
			}
		})
	}
	for _, p := range filePaths {
		jobs <- p
	}
	close(jobs)
	wg.Wait()

	report(st)
	if st.convFail > 0 || st.roundTripFail > 0 {
		os.Exit(1)
	}
}

func scanFile(path string, st *stats) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", path, err)
		return
	}
	text := string(data)

	odia := textscan.Extract(text)
	ascii := textscan.ExtractASCII(text)

	roundTripFail := 0
	if got := textscan.ToOdia(textscan.ToASCII(text)); len(textscan.Extract(got)) != len(odia) {
		roundTripFail++
	}

	convOK := 0
	for _, v := range textscan.ExtractValues(text) {
		for lang := numwords.Odia; lang <= numwords.Odilish; lang++ {
			if _, err := numwords.ConvertFloat(v, numwords.Modern, lang); err != nil {
				st.recordFailure(path, v, err)
			} else {
				convOK++
			}
		}
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.filesScanned++
	st.totalBytes += int64(len(data))
	st.odiaNumerals += len(odia)
	st.asciiNumerals += len(ascii)
	st.convOK += convOK
	st.roundTripFail += roundTripFail
	st.densities = append(st.densities, fileDensity{path: path, numerals: len(odia) + len(ascii), bytes: int64(len(data))})
}

func report(st *stats) {
	sort.Slice(st.densities, func(i, j int) bool {
		return st.densities[i].numerals > st.densities[j].numerals
	})

	fmt.Printf("files scanned:      %d (%d bytes)\n", st.filesScanned, st.totalBytes)
	fmt.Printf("odia numerals:      %d\n", st.odiaNumerals)
	fmt.Printf("ascii numerals:     %d\n", st.asciiNumerals)
	fmt.Printf("conversions ok:     %d\n", st.convOK)
	fmt.Printf("conversions failed: %d\n", st.convFail)
	fmt.Printf("round-trip failed:  %d\n", st.roundTripFail)

	if len(st.densities) > 0 {
		fmt.Println("\nmost numeral-dense files:")
		for i, d := range st.densities {
			if i == 5 {
				break
			}
			fmt.Printf("  %6d  %s\n", d.numerals, d.path)
		}
	}

	for _, f := range st.failures {
		fmt.Fprintf(os.Stderr, "FAIL %s\n", f)
	}
	if st.convFail > len(st.failures) {
		fmt.Fprintf(os.Stderr, "... and %d more failures\n", st.convFail-len(st.failures))
	}
}
