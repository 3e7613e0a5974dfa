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

// Option attempts to parse a T but never fails itself: a failed attempt
// leaves the cursor untouched and Value nil, per spec.md §4.8.
type Option[T any, PT Parser[T]] struct {
	Value *T
	span  token.Span
}

// Parse implements the Parser contract. It never returns an error.
func (o *Option[T, PT]) Parse(cs *charstream.CharStream) error {
	start := cs.Pos()

	v, err := Atomic(cs, Parse[T, PT])
	if err != nil {
		o.Value = nil
		o.span = token.NewSpan(start, start)
		return nil
	}

	o.Value = &v
	var p PT = o.Value
	o.span = p.Span()
	return nil
}

// Span implements the Element contract.
func (o *Option[T, PT]) Span() token.Span {
	return o.span
}

// IsSome reports whether the option successfully matched.
func (o *Option[T, PT]) IsSome() bool {
	return o.Value != nil
}
