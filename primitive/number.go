// Copyright 2025 The Parseal Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package primitive

import (
	"strconv"
	"unicode"

	"github.com/cockroachdb/apd/v3"

	"github.com/TheLazyDutchman/parseal/charstream"
	"github.com/TheLazyDutchman/parseal/token"
)

// Number is a decimal literal: the same shape as Identifier but the first
// character must be numeric, a run of digits, and an optional `.`
// followed by more digits, per spec.md §5.2. The raw lexeme is kept
// verbatim so callers can choose between an exact integer read and an
// arbitrary-precision decimal read without re-parsing. Number carries no
// sign of its own; a negative literal is a Minus token composed with a
// Number at the grammar level.
type Number struct {
	Value string
	span  token.Span
}

// Parse implements the Parser contract.
func (n *Number) Parse(cs *charstream.CharStream) error {
	start := cs.Pos()
	clone := cs.Clone()
	if clone.Policy() != charstream.KeepAll {
		// Skip the whitespace the ambient policy would skip anyway, so the
		// span starts at the first digit, then read the literal itself with
		// whitespace visible so that whitespace ends it.
		clone.SetWhitespace(charstream.KeepAll)
		for {
			peek := clone.Clone()
			r, ok := peek.Next()
			if !ok || !unicode.IsSpace(r) {
				break
			}
			clone = peek
		}
		start = clone.Pos()
	}

	var runes []rune

	digits := 0
	for {
		peek := clone.Clone()
		r, ok := peek.Next()
		if !ok || !isDigit(r) {
			break
		}
		runes = append(runes, r)
		digits++
		clone = peek
	}
	if digits == 0 {
		return token.NewParseError(start, "expected number")
	}

	dot := clone.Clone()
	if r, ok := dot.Next(); ok && r == '.' {
		fraction := dot.Clone()
		if r2, ok2 := fraction.Next(); ok2 && isDigit(r2) {
			runes = append(runes, '.', r2)
			clone = fraction
			for {
				peek := clone.Clone()
				r3, ok3 := peek.Next()
				if !ok3 || !isDigit(r3) {
					break
				}
				runes = append(runes, r3)
				clone = peek
			}
		}
	}

	if err := cs.Goto(clone.Pos()); err != nil {
		return err
	}

	n.Value = string(runes)
	n.span = token.NewSpan(start, cs.Pos())
	return nil
}

// Span implements the Element contract.
func (n *Number) Span() token.Span {
	return n.span
}

// Int64 interprets the literal as a base-10 integer. It fails if the
// literal has a fractional part.
func (n *Number) Int64() (int64, error) {
	return strconv.ParseInt(n.Value, 10, 64)
}

// Decimal interprets the literal as an arbitrary-precision decimal,
// spec.md §5.2's escape hatch for numbers too large or too precise for
// Int64.
func (n *Number) Decimal() (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(n.Value)
	return d, err
}
