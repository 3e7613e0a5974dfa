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

// Pair is one (item, separator) step of a List.
type Pair[I any, S any] struct {
	Item I
	Sep  S
}

// List is the possibly-empty, separator-interspersed sequence from
// spec.md §4.6: `0, 1, 5` parsed as List[Number, *Number, Comma, *Comma]
// for instance. List never fails -- an empty list is a legitimate,
// successful parse, and the loop stops the moment either the item or
// the separator fails to match atomically.
type List[I any, PI Parser[I], S any, PS Parser[S]] struct {
	Items    []Pair[I, S]
	Trailing *I
	span     token.Span
}

// Parse implements the Parser contract. It never returns an error.
func (l *List[I, PI, S, PS]) Parse(cs *charstream.CharStream) error {
	start := cs.Pos()

	for {
		item, err := Atomic(cs, Parse[I, PI])
		if err != nil {
			break
		}
		sep, err := Atomic(cs, Parse[S, PS])
		if err != nil {
			l.Trailing = &item
			break
		}
		l.Items = append(l.Items, Pair[I, S]{Item: item, Sep: sep})
	}

	l.span = token.NewSpan(start, cs.Pos())
	return nil
}

// Span implements the Element contract.
func (l *List[I, PI, S, PS]) Span() token.Span {
	return l.span
}

// Values returns every parsed item in order, including the trailing item
// with no following separator, if any. This is the list's projection to
// a plain sequence, e.g. when a Group's inner List should be read as a
// Vec<T>.
func (l *List[I, PI, S, PS]) Values() []I {
	vals := make([]I, 0, len(l.Items)+1)
	for _, p := range l.Items {
		vals = append(vals, p.Item)
	}
	if l.Trailing != nil {
		vals = append(vals, *l.Trailing)
	}
	return vals
}
