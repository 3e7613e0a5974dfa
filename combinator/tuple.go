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

// Tuple2 parses its components in order, per spec.md §4.8.
type Tuple2[A any, PA Parser[A], B any, PB Parser[B]] struct {
	First  A
	Second B
	span   token.Span
}

// Parse implements the Parser contract.
func (t *Tuple2[A, PA, B, PB]) Parse(cs *charstream.CharStream) error {
	start := cs.Pos()

	first, err := Parse[A, PA](cs)
	if err != nil {
		return err
	}
	second, err := Parse[B, PB](cs)
	if err != nil {
		return err
	}

	t.First = first
	t.Second = second
	t.span = token.NewSpan(start, cs.Pos())
	return nil
}

// Span implements the Element contract.
func (t *Tuple2[A, PA, B, PB]) Span() token.Span {
	return t.span
}

// Tuple3 parses its components in order, per spec.md §4.8.
type Tuple3[A any, PA Parser[A], B any, PB Parser[B], C any, PC Parser[C]] struct {
	First  A
	Second B
	Third  C
	span   token.Span
}

// Parse implements the Parser contract.
func (t *Tuple3[A, PA, B, PB, C, PC]) Parse(cs *charstream.CharStream) error {
	start := cs.Pos()

	first, err := Parse[A, PA](cs)
	if err != nil {
		return err
	}
	second, err := Parse[B, PB](cs)
	if err != nil {
		return err
	}
	third, err := Parse[C, PC](cs)
	if err != nil {
		return err
	}

	t.First = first
	t.Second = second
	t.Third = third
	t.span = token.NewSpan(start, cs.Pos())
	return nil
}

// Span implements the Element contract.
func (t *Tuple3[A, PA, B, PB, C, PC]) Span() token.Span {
	return t.span
}

// KeyValue is one entry of a Mapping projection.
type KeyValue[K any, V any] struct {
	Key   K
	Value V
}

// Mapping projects a list of (K, V) entries to a map, the key-value
// projection spec.md §4.5 describes for a Group whose inner value is a
// List of entries.
func Mapping[K comparable, V any](entries []KeyValue[K, V]) map[K]V {
	m := make(map[K]V, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}
	return m
}
