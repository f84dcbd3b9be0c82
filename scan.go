// Copyright 2018 The oksvg Authors. All rights reserved.

package svg2vd

import (
	"errors"
	"math"
	"strconv"
)

var errNotFinite = errors.New("not a finite number")

// parseFloat is strconv.ParseFloat limited to finite values.
func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: s, Err: errNotFinite}
	}
	return f, nil
}

// scanner reads the number lists used by path data, transform lists,
// viewBox and points attributes. Separators are whitespace and commas.
type scanner struct {
	s   string
	pos int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func (sc *scanner) skipSep() {
	for sc.pos < len(sc.s) && (isSpace(sc.s[sc.pos]) || sc.s[sc.pos] == ',') {
		sc.pos++
	}
}

func (sc *scanner) done() bool {
	sc.skipSep()
	return sc.pos >= len(sc.s)
}

// atNumber reports whether a numeric literal starts at the next token.
func (sc *scanner) atNumber() bool {
	sc.skipSep()
	if sc.pos >= len(sc.s) {
		return false
	}
	c := sc.s[sc.pos]
	return isDigit(c) || c == '.' || c == '-' || c == '+'
}

// atLetter reports whether the next token is a single letter.
func (sc *scanner) atLetter() bool {
	sc.skipSep()
	return sc.pos < len(sc.s) && isLetter(sc.s[sc.pos])
}

// next consumes one byte of input whatever it is.
func (sc *scanner) next() byte {
	sc.skipSep()
	if sc.pos >= len(sc.s) {
		return 0
	}
	c := sc.s[sc.pos]
	sc.pos++
	return c
}

// number reads a literal with optional sign, fraction and exponent.
// Compact forms such as "1.5.5" or "1-2" yield two numbers.
func (sc *scanner) number() (float64, bool) {
	sc.skipSep()
	start, i := sc.pos, sc.pos
	if i < len(sc.s) && (sc.s[i] == '-' || sc.s[i] == '+') {
		i++
	}
	digits := 0
	for i < len(sc.s) && isDigit(sc.s[i]) {
		i++
		digits++
	}
	if i < len(sc.s) && sc.s[i] == '.' {
		i++
		for i < len(sc.s) && isDigit(sc.s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}
	if i < len(sc.s) && (sc.s[i] == 'e' || sc.s[i] == 'E') {
		j := i + 1
		if j < len(sc.s) && (sc.s[j] == '-' || sc.s[j] == '+') {
			j++
		}
		if j < len(sc.s) && isDigit(sc.s[j]) {
			for j < len(sc.s) && isDigit(sc.s[j]) {
				j++
			}
			i = j
		}
	}
	f, err := strconv.ParseFloat(sc.s[start:i], 64)
	if err != nil {
		return 0, false
	}
	sc.pos = i
	return f, true
}

// flag reads an arc flag, which may be packed without separators ("0110").
func (sc *scanner) flag() (float64, bool) {
	sc.skipSep()
	if sc.pos >= len(sc.s) {
		return 0, false
	}
	switch sc.s[sc.pos] {
	case '0':
		sc.pos++
		return 0, true
	case '1':
		sc.pos++
		return 1, true
	}
	return 0, false
}

// parseNumbers reads every leading number of s. It stops at the first
// token that is not a number.
func parseNumbers(s string) []float64 {
	sc := scanner{s: s}
	var vals []float64
	for sc.atNumber() {
		f, ok := sc.number()
		if !ok {
			break
		}
		vals = append(vals, f)
	}
	return vals
}
