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

package combinator

import (
	"github.com/TheLazyDutchman/parseal/charstream"
	"github.com/TheLazyDutchman/parseal/token"
)

// Indent parses a block of T held together by a shared leading-whitespace
// depth, per spec.md §4.7: the first T establishes the block's depth, and
// every following T must sit at that same depth to be included. The block
// ends the moment the cursor's indent depth drops, rises, or a T fails to
// parse.
type Indent[T any, PT Parser[T]] struct {
	Items []T
	Depth int
	span  token.Span
}

// Parse implements the Parser contract.
func (ind *Indent[T, PT]) Parse(cs *charstream.CharStream) error {
	start := cs.Pos()

	clone := cs.Clone()
	originalPolicy := clone.Policy()
	clone.SetWhitespace(charstream.Indent)

	first, err := Parse[T, PT](clone)
	if err != nil {
		return token.NewParseError(start, "could not find indent block")
	}

	depth := clone.Indent()
	items := []T{first}

	for {
		attempt := clone.Clone()
		item, err := Parse[T, PT](attempt)
		if err != nil {
			break
		}
		if attempt.Indent() != depth {
			break
		}
		clone = attempt
		items = append(items, item)
	}

	clone.SetWhitespace(originalPolicy)

	if err := cs.Goto(clone.Pos()); err != nil {
		return err
	}

	ind.Items = items
	ind.Depth = depth
	ind.span = token.NewSpan(start, cs.Pos())
	return nil
}

// Span implements the Element contract.
func (ind *Indent[T, PT]) Span() token.Span {
	return ind.span
}
