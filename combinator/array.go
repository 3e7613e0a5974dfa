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

// Go has no const generics, so spec.md §4.8's fixed-size [T;N] cannot be
// parametrized over N the way List or Vec are parametrized over their
// element type. FixedArray2/3/4 below are the concrete sizes this
// module needs; each parses exactly that many T in sequence and fails
// if any of them fails, exactly as spec.md describes.

// FixedArray2 parses exactly two T in sequence.
type FixedArray2[T any, PT Parser[T]] struct {
	Items [2]T
	span  token.Span
}

// Parse implements the Parser contract.
func (a *FixedArray2[T, PT]) Parse(cs *charstream.CharStream) error {
	start := cs.Pos()
	for i := range a.Items {
		v, err := Parse[T, PT](cs)
		if err != nil {
			return err
		}
		a.Items[i] = v
	}
	a.span = token.NewSpan(start, cs.Pos())
	return nil
}

// Span implements the Element contract.
func (a *FixedArray2[T, PT]) Span() token.Span {
	return a.span
}

// FixedArray3 parses exactly three T in sequence.
type FixedArray3[T any, PT Parser[T]] struct {
	Items [3]T
	span  token.Span
}

// Parse implements the Parser contract.
func (a *FixedArray3[T, PT]) Parse(cs *charstream.CharStream) error {
	start := cs.Pos()
	for i := range a.Items {
		v, err := Parse[T, PT](cs)
		if err != nil {
			return err
		}
		a.Items[i] = v
	}
	a.span = token.NewSpan(start, cs.Pos())
	return nil
}

// Span implements the Element contract.
func (a *FixedArray3[T, PT]) Span() token.Span {
	return a.span
}

// FixedArray4 parses exactly four T in sequence.
type FixedArray4[T any, PT Parser[T]] struct {
	Items [4]T
	span  token.Span
}

// Parse implements the Parser contract.
func (a *FixedArray4[T, PT]) Parse(cs *charstream.CharStream) error {
	start := cs.Pos()
	for i := range a.Items {
		v, err := Parse[T, PT](cs)
		if err != nil {
			return err
		}
		a.Items[i] = v
	}
	a.span = token.NewSpan(start, cs.Pos())
	return nil
}

// Span implements the Element contract.
func (a *FixedArray4[T, PT]) Span() token.Span {
	return a.span
}
