// Copyright (c) 2026, Tabula Games Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strcase

import (
	"strings"
	"unicode"
)

// WordCase is an enumeration of the ways to format the words of an
// identifier in [ToWordCase].
type WordCase int32

const (
	// WordLowerCase formats all letters lower case (example).
	WordLowerCase WordCase = iota

	// WordUpperCase formats all letters upper case (EXAMPLE).
	WordUpperCase

	// WordTitleCase formats the first letter of each word
	// upper case (Example).
	WordTitleCase

	// WordCamelCase is [WordTitleCase] except that the first
	// word is all lower case (exampleText).
	WordCamelCase
)

// ToWordCase converts the words of the given string to the given case,
// joined with the given delimiter (0 for none). Words are delimited by
// any run of non-alphanumeric runes and by lower-to-upper transitions.
func ToWordCase(s string, wc WordCase, delim rune) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	first := true
	for _, w := range SplitWords(s) {
		if !first && delim != 0 {
			b.WriteRune(delim)
		}
		for i, r := range w {
			switch wc {
			case WordLowerCase:
				b.WriteRune(unicode.ToLower(r))
			case WordUpperCase:
				b.WriteRune(unicode.ToUpper(r))
			case WordTitleCase:
				if i == 0 {
					b.WriteRune(unicode.ToUpper(r))
				} else {
					b.WriteRune(unicode.ToLower(r))
				}
			case WordCamelCase:
				if i == 0 && !first {
					b.WriteRune(unicode.ToUpper(r))
				} else {
					b.WriteRune(unicode.ToLower(r))
				}
			}
		}
		first = false
	}
	return b.String()
}

// SplitWords splits the given string into its constituent words,
// dropping any separator runes. A new word starts at any rune following
// a non-alphanumeric rune, at a lower-to-upper transition, and at the
// last upper case rune of an upper case run that is followed by a lower
// case rune (so "JSONData" splits into "JSON" and "Data").
func SplitWords(s string) []string {
	runes := []rune(s)
	var words []string
	var w []rune
	flush := func() {
		if len(w) > 0 {
			words = append(words, string(w))
			w = nil
		}
	}
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(w) > 0 && unicode.IsUpper(r) {
			prev := w[len(w)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		w = append(w, r)
	}
	flush()
	return words
}
