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

// Box heap-allocates its inner value, the way spec.md §4.8 uses Box<T> to
// let a record type refer to itself (directly or through a sum type)
// without an infinite-size field. Go struct fields are already capable of
// holding a pointer to an incomplete type, so Box's only job is to carry
// that pointer through the Parser[T] contract uniformly with every other
// combinator.
type Box[T any, PT Parser[T]] struct {
	Value *T
}

// Parse implements the Parser contract.
func (b *Box[T, PT]) Parse(cs *charstream.CharStream) error {
	v, err := Parse[T, PT](cs)
	if err != nil {
		return err
	}
	b.Value = &v
	return nil
}

// Span implements the Element contract.
func (b *Box[T, PT]) Span() token.Span {
	var p PT = b.Value
	return p.Span()
}
