// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numparse provides locale-independent parsing of floating point
// literals, following the C strtof contract with a fixed '.' radix:
//
//	[whitespace] [sign] {digits [. digits] | . digits} [{e | E} [sign] digits]
//	[whitespace] [sign] {INF | INFINITY}
//	[whitespace] [sign] NAN
//
// Hexadecimal literals and NAN(sequence) forms are not supported.
package numparse

import (
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// Float32 parses a floating point literal at the start of s. It returns
// the value and the number of bytes of s that were consumed. If no number
// is present after any leading whitespace, it returns 0, 0.
func Float32(s string) (float32, int) {
	i := skipSpace(s, 0)
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	if n := matchWord(s[i:], "infinity"); n > 0 {
		return signed(math32.Inf(1), neg), i + n
	}
	if n := matchWord(s[i:], "inf"); n > 0 {
		return signed(math32.Inf(1), neg), i + n
	}
	if n := matchWord(s[i:], "nan"); n > 0 {
		return math32.NaN(), i + n
	}

	mant := i
	intDigits := countDigits(s, i)
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = countDigits(s, i+1)
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0, 0
	}

	// exponent is only consumed if at least one digit follows
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if ed := countDigits(s, j); ed > 0 {
			i = j + ed
		}
	}

	v, err := strconv.ParseFloat(s[mant:i], 32)
	if err != nil {
		// only range errors are possible here, with v set to Inf or 0
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return 0, 0
		}
	}
	return signed(float32(v), neg), i
}

// Whole parses all of s (ignoring surrounding whitespace) as a number,
// returning ok == false if s contains anything else.
func Whole(s string) (v float32, ok bool) {
	v, n := Float32(s)
	if n == 0 {
		return 0, false
	}
	return v, skipSpace(s, n) == len(s)
}

// Floats reads a list of numbers separated by whitespace and/or
// single commas, as used by points, viewBox and dash array attributes.
// It returns the numbers read so far and ok == false if it encounters
// something that is not a number.
func Floats(s string) ([]float32, bool) {
	var vals []float32
	i := 0
	for {
		i = skipSpace(s, i)
		if i >= len(s) {
			return vals, true
		}
		v, n := Float32(s[i:])
		if n == 0 {
			return vals, false
		}
		vals = append(vals, v)
		i = skipSpace(s, i+n)
		if i < len(s) && s[i] == ',' {
			i++
		}
	}
}

func signed(v float32, neg bool) float32 {
	if neg {
		return -v
	}
	return v
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func countDigits(s string, i int) int {
	n := 0
	for i+n < len(s) && s[i+n] >= '0' && s[i+n] <= '9' {
		n++
	}
	return n
}

// matchWord reports the length of word if s starts with it, ignoring case.
func matchWord(s, word string) int {
	if len(s) < len(word) || !strings.EqualFold(s[:len(word)], word) {
		return 0
	}
	return len(word)
}
