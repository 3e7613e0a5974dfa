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

// Package combinator implements the generic grammatical elements --
// delimited groups, separated lists, indentation blocks, vectors, fixed
// repetitions, tuples, options, and boxes -- that derived grammars in
// package schema are built from. Leaf tokens live in package primitive,
// and alternation (sum types) in package schema.
//
// Every element in this package, and every element schema derives,
// satisfies the single contract described in spec.md §6.1: it can be
// parsed from a CharStream and it can report the source Span it
// occupied. Go has no hygienic generics-over-methods the way Rust's
// trait system does, so the contract is expressed as a self-referential
// generic constraint (Parser[T]) rather than a plain interface: T is the
// value type stored in the tree, and *T is required to implement Parse
// and Span by mutating itself in place. This is the idiomatic
// Go-generics substitute spec.md §9's design note anticipates.
package combinator

import (
	"github.com/TheLazyDutchman/parseal/charstream"
	"github.com/TheLazyDutchman/parseal/token"
)

// Element is satisfied by any parsed value that can report the span of
// source text it came from.
type Element interface {
	Span() token.Span
}

// Parser is the uniform parse contract from spec.md §6.1, expressed as a
// constraint on the pointer type of a value type T: *T must be able to
// parse itself from a cursor (mutating its own fields) and report its
// span afterward.
type Parser[T any] interface {
	*T
	Element
	Parse(cs *charstream.CharStream) error
}

// Parse parses a single T from cs using the Parser[T] contract and
// returns the fully constructed value. This is the single entry point
// every combinator in this module calls to parse a sub-element,
// regardless of whether T is a primitive token, a combinator, or a
// schema-derived record or sum type.
func Parse[T any, PT Parser[T]](cs *charstream.CharStream) (T, error) {
	var v T
	p := PT(&v)
	if err := p.Parse(cs); err != nil {
		return v, err
	}
	return v, nil
}

// Atomic runs parse speculatively against a clone of cs: on success it
// commits by forwarding cs to the clone's position (per the backtracking
// discipline in spec.md §4.2); on failure cs is left completely
// untouched.
func Atomic[T any](cs *charstream.CharStream, parse func(*charstream.CharStream) (T, error)) (T, error) {
	clone := cs.Clone()
	v, err := parse(clone)
	if err != nil {
		var zero T
		return zero, err
	}
	if gerr := cs.Goto(clone.Pos()); gerr != nil {
		var zero T
		return zero, gerr
	}
	return v, nil
}
