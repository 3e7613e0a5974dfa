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

package schema

import (
	"reflect"

	"github.com/TheLazyDutchman/parseal/charstream"
	"github.com/TheLazyDutchman/parseal/combinator"
	"github.com/TheLazyDutchman/parseal/token"
)

// VariantParser parses one alternative of a sum type E and returns it
// already upcast to E.
type VariantParser[E any] func(cs *charstream.CharStream) (E, error)

// Variant adapts a concrete variant type V (with its combinator.Parser[V]
// witness PV) into a VariantParser[E], provided *V implements E. This
// replaces the closed "enumerate every implementer of an interface"
// operation Rust's trait objects give for free and Go's reflect package
// cannot perform: the sum type's author lists its own variants, in
// declaration order, as arguments to Sum.
func Variant[E any, V any, PV combinator.Parser[V]]() VariantParser[E] {
	return func(cs *charstream.CharStream) (E, error) {
		v, err := combinator.Parse[V, PV](cs)
		if err != nil {
			var zero E
			return zero, err
		}
		e, ok := any(&v).(E)
		if !ok {
			var zero E
			return zero, token.NewParseError(cs.Pos(), "%s does not implement %s",
				reflect.TypeOf(v), reflect.TypeOf((*E)(nil)).Elem())
		}
		return e, nil
	}
}

// Sum derives a sum type's parse procedure per spec.md §4.9.3: try every
// variant, in declaration order, against its own cloned cursor; among the
// variants that succeed, the one whose span strictly contains every
// other wins (longest-match preference), and a tie between incomparable
// spans falls back to whichever variant was declared first. Only the
// winning variant's cursor advance is committed to cs.
func Sum[E any](cs *charstream.CharStream, variants ...VariantParser[E]) (E, error) {
	start := cs.Pos()

	var (
		best    E
		bestEnd token.Position
		bestSpan token.Span
		have    bool
		lastErr error
	)

	for _, parse := range variants {
		clone := cs.Clone()
		v, err := parse(clone)
		if err != nil {
			lastErr = err
			continue
		}
		span := token.NewSpan(start, clone.Pos())

		if !have {
			best, bestEnd, bestSpan, have = v, clone.Pos(), span, true
			continue
		}

		switch span.Compare(bestSpan) {
		case token.Greater:
			best, bestEnd, bestSpan = v, clone.Pos(), span
		default:
			// Less, Equal, or Incomparable: keep the earlier-declared
			// winner already held in best.
		}
	}

	if !have {
		var zero E
		if lastErr != nil {
			return zero, lastErr
		}
		return zero, token.NewParseError(start, "no matching variant")
	}

	if err := cs.Goto(bestEnd); err != nil {
		var zero E
		return zero, err
	}

	return best, nil
}
