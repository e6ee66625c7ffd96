//go:build ignore

// verifytables sweeps the word tables through the public API and reports
// inconsistencies: empty or duplicate cardinal forms, ordinal numerals
// that fail to parse back, and digit transliterations that do not round
// trip. Run from the project root after editing any table:
//
//	go run scripts/verifytables.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/srinibashsamal/odianumerals/digits"
	"github.com/srinibashsamal/odianumerals/numwords"
	"github.com/srinibashsamal/odianumerals/ordinal"
)

const (
	cardinalSweep = 100000
	ordinalSweep  = 1000
	digitSweep    = 100000
)

func main() {
	problems := 0

	// Small-form uniqueness: two different values must never read the same
	// below the irregular-table ceiling.
	for lang := numwords.Odia; lang <= numwords.English; lang++ {
		seen := map[string]int64{}
		for n := int64(0); n <= 100; n++ {
			w, err := numwords.Convert(n, numwords.Modern, lang)
			if err != nil || w == "" {
				fmt.Printf("cardinal %d (%s): empty or error: %v\n", n, lang, err)
				problems++
				continue
			}
			if prev, dup := seen[w]; dup {
				fmt.Printf("cardinal %d (%s): duplicate form %q of %d\n", n, lang, w, prev)
				problems++
			}
			seen[w] = n
		}
	}

	// Wider sweep: conversion must never error or produce doubled spaces.
	for n := int64(0); n <= cardinalSweep; n += 7 {
		for _, sys := range []numwords.System{numwords.Modern, numwords.Barnabodha} {
			w, err := numwords.Convert(n, sys, numwords.Odia)
			if err != nil || w == "" {
				fmt.Printf("cardinal %d (%s): %v\n", n, sys, err)
				problems++
			}
		}
	}

	// Ordinal numerals must parse back to their value.
	for n := int64(1); n <= ordinalSweep; n++ {
		for _, lang := range []numwords.Language{numwords.Odia, numwords.English} {
			num, err := ordinal.Numeral(n, lang)
			if err != nil {
				fmt.Printf("ordinal %d (%s): %v\n", n, lang, err)
				problems++
				continue
			}
			back, err := ordinal.ParseNumeral(num)
			if err != nil || back != n {
				fmt.Printf("ordinal %d (%s): %q parsed back as %d (%v)\n", n, lang, num, back, err)
				problems++
			}
		}
	}

	// Digit transliteration must round trip.
	for n := 0; n <= digitSweep; n += 13 {
		s := fmt.Sprintf("%d", n)
		if back := digits.ToASCII(digits.ToOdia(s)); back != s {
			fmt.Printf("digits %s: round trip gave %s\n", s, back)
			problems++
		}
	}

	if problems > 0 {
		log.Printf("verifytables: %d problem(s) found", problems)
		os.Exit(1)
	}
	fmt.Println("verifytables: all tables consistent")
}
