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

// Vec parses a non-empty, unseparated sequence of T, per spec.md §4.8.
// Unlike List, it fails if it cannot parse at least one element.
type Vec[T any, PT Parser[T]] struct {
	Items []T
	span  token.Span
}

// Parse implements the Parser contract.
func (v *Vec[T, PT]) Parse(cs *charstream.CharStream) error {
	start := cs.Pos()

	for {
		item, err := Atomic(cs, Parse[T, PT])
		if err != nil {
			break
		}
		v.Items = append(v.Items, item)
	}

	if len(v.Items) == 0 {
		return token.NewParseError(start, "expected at least one element")
	}

	v.span = token.NewSpan(start, cs.Pos())
	return nil
}

// Span implements the Element contract.
func (v *Vec[T, PT]) Span() token.Span {
	return v.span
}
