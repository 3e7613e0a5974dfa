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
	"github.com/TheLazyDutchman/parseal/charstream"
	"github.com/TheLazyDutchman/parseal/token"
)

// Identifier is a run of letters, digits and underscores that does not
// start with a digit, per spec.md §5.1.
type Identifier struct {
	Value string
	span  token.Span
}

// Parse implements the Parser contract.
func (id *Identifier) Parse(cs *charstream.CharStream) error {
	start := cs.Pos()

	clone := cs.Clone()
	r, ok := clone.Next()
	if !ok || !isLetter(r) {
		return token.NewParseError(start, "expected identifier")
	}
	// The rest of the identifier is read with whitespace visible, so that
	// whitespace ends it instead of being skipped over.
	clone.SetWhitespace(charstream.KeepAll)

	var runes []rune
	runes = append(runes, r)

	for {
		peek := clone.Clone()
		r, ok := peek.Next()
		if !ok || !(isLetter(r) || isDigit(r)) {
			break
		}
		runes = append(runes, r)
		clone = peek
	}

	if err := cs.Goto(clone.Pos()); err != nil {
		return err
	}

	id.Value = string(runes)
	id.span = token.NewSpan(start, cs.Pos())
	return nil
}

// Span implements the Element contract.
func (id *Identifier) Span() token.Span {
	return id.span
}
