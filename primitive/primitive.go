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

// Package primitive implements the leaf-level tokens spec.md §5
// describes: punctuation, identifiers, numbers and string literals.
// Every token type in this package satisfies combinator.Parser[T]; the
// delimiter pairs (Paren, Brace, Bracket, Quotes) satisfy
// combinator.Delimiter instead. All of them are built directly on
// charstream.CharStream, with no combinator in between.
package primitive

import (
	"unicode"
	"unicode/utf8"

	"github.com/TheLazyDutchman/parseal/charstream"
	"github.com/TheLazyDutchman/parseal/token"
)

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' ||
		ch >= utf8.RuneSelf && unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9' || ch >= utf8.RuneSelf && unicode.IsDigit(ch)
}

// matchLiteral consumes exactly the runes of want from cs, in order, and
// reports the span they occupied. Because CharStream.Pos reports the
// position right after the last consumed rune rather than before the
// next one, the start position has to be captured before the very first
// Next call; there is no way to recover it afterward.
//
// The leading rune is matched under the ambient whitespace policy, the
// same as every other primitive's opening rune, but a multi-rune literal
// then switches to a cloned cursor with KeepAll for the remaining runes
// (spec.md §4.3): a literal like "::" must never silently absorb
// whitespace between its two colons, which the ambient Ignore policy
// would otherwise do.
func matchLiteral(cs *charstream.CharStream, want string, name string) (token.Span, error) {
	start := cs.Pos()

	runes := []rune(want)
	if len(runes) == 0 {
		return token.NewSpan(start, start), nil
	}

	clone := cs.Clone()
	r, ok := clone.Next()
	if !ok || r != runes[0] {
		return token.Span{}, token.NewParseError(start, "expected %s", name)
	}

	if len(runes) > 1 {
		originalPolicy := clone.Policy()
		clone.SetWhitespace(charstream.KeepAll)
		for _, wr := range runes[1:] {
			r, ok := clone.Next()
			if !ok || r != wr {
				return token.Span{}, token.NewParseError(start, "expected %s", name)
			}
		}
		clone.SetWhitespace(originalPolicy)
	}

	if err := cs.Goto(clone.Pos()); err != nil {
		return token.Span{}, err
	}

	return token.NewSpan(start, cs.Pos()), nil
}

// punct is the common shape of every fixed-text punctuation token: a
// literal string of runes with no internal structure worth keeping
// beyond the span it occupied.
type punct struct {
	span token.Span
}

func (p *punct) Span() token.Span { return p.span }

func (p *punct) parseLiteral(cs *charstream.CharStream, want, name string) error {
	span, err := matchLiteral(cs, want, name)
	if err != nil {
		return err
	}
	p.span = span
	return nil
}
