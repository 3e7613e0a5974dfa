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

// Group parses a single inner value I delimited by a Delimiter pair D,
// e.g. a parenthesized expression or a braced object. Per spec.md §4.5,
// a failure on the opening delimiter leaves the cursor untouched (the
// delimiter's own token parse is already atomic), and any failure
// anywhere in the group short-circuits the whole parse.
//
// Projection to the inner value's own shape (e.g. to a Vec<T> when I is
// a List, or to a key-value mapping when I is a List of pairs) needs no
// dedicated method: Inner is exported and already holds that value.
type Group[D any, PD Delimiter[D], I any, PI Parser[I]] struct {
	Delim D
	Inner I
	span  token.Span
}

// Parse implements the Parser contract.
func (g *Group[D, PD, I, PI]) Parse(cs *charstream.CharStream) error {
	var d D
	pd := PD(&d)

	startSpan, err := pd.ParseStart(cs)
	if err != nil {
		return err
	}

	inner, err := Parse[I, PI](cs)
	if err != nil {
		return err
	}

	endSpan, err := pd.ParseEnd(cs)
	if err != nil {
		return err
	}

	g.Delim = d
	g.Inner = inner
	g.span = token.NewSpan(startSpan.Start, endSpan.End)
	return nil
}

// Span implements the Element contract.
func (g *Group[D, PD, I, PI]) Span() token.Span {
	return g.span
}
