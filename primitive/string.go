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
	"strings"

	"github.com/TheLazyDutchman/parseal/charstream"
	"github.com/TheLazyDutchman/parseal/token"
)

// StringValue is the quoted-string content described in spec.md §5.3: the
// raw text between (but not including) a pair of double quotes, with
// `\"` and `\\` unescaped. Resolving the Open Question this left open,
// only those two escapes are recognized -- there is no `\n`/`\t`/unicode
// escape support, matching the reference implementation's literal
// scanner, which leaves richer escapes to a later revision.
type StringValue struct {
	Value string
	span  token.Span
}

// Parse implements the Parser contract. It expects the stream to be
// positioned immediately after the opening quote and consumes up to, but
// not including, the closing quote; the Quotes delimiter in a Group
// parses both quote characters themselves.
func (s *StringValue) Parse(cs *charstream.CharStream) error {
	start := cs.Pos()
	originalPolicy := cs.Policy()
	cs.SetWhitespace(charstream.KeepAll)
	defer cs.SetWhitespace(originalPolicy)

	var b strings.Builder
	for {
		peek := cs.Clone()
		r, ok := peek.Next()
		if !ok {
			return token.NewParseError(cs.Pos(), "unterminated string")
		}
		if r == '"' {
			break
		}
		if r == '\\' {
			escapePos := peek.Pos()
			r2, ok2 := peek.Next()
			if !ok2 || (r2 != '"' && r2 != '\\') {
				return token.NewParseError(escapePos, "unsupported escape sequence")
			}
			b.WriteRune(r2)
			if err := cs.Goto(peek.Pos()); err != nil {
				return err
			}
			continue
		}
		b.WriteRune(r)
		if err := cs.Goto(peek.Pos()); err != nil {
			return err
		}
	}

	s.Value = b.String()
	s.span = token.NewSpan(start, cs.Pos())
	return nil
}

// Span implements the Element contract.
func (s *StringValue) Span() token.Span {
	return s.span
}
