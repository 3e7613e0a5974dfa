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

package combinator_test

import (
	"testing"

	qt "github.com/go-quicktest/qt"

	"github.com/TheLazyDutchman/parseal/charstream"
	"github.com/TheLazyDutchman/parseal/combinator"
	"github.com/TheLazyDutchman/parseal/token"
)

// digit is a minimal Parser[T] used only to exercise the generic
// combinators in this file without depending on package primitive.
type digit struct {
	Value rune
	span  token.Span
}

func (d *digit) Parse(cs *charstream.CharStream) error {
	start := cs.Pos()
	r, ok := cs.Next()
	if !ok || r < '0' || r > '9' {
		return token.NewParseError(start, "expected digit")
	}
	d.Value = r
	d.span = token.NewSpan(start, cs.Pos())
	return nil
}

func (d *digit) Span() token.Span {
	return d.span
}

func TestTuple2ParsesInOrder(t *testing.T) {
	cs := charstream.New("12").Build()

	var tup combinator.Tuple2[digit, *digit, digit, *digit]
	err := tup.Parse(cs)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(tup.First.Value, '1'))
	qt.Assert(t, qt.Equals(tup.Second.Value, '2'))
}

func TestTuple2FailsIfSecondMissing(t *testing.T) {
	cs := charstream.New("1a").Build()

	var tup combinator.Tuple2[digit, *digit, digit, *digit]
	err := tup.Parse(cs)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestOptionSomeAndNone(t *testing.T) {
	cs := charstream.New("1a").Build()

	var first combinator.Option[digit, *digit]
	qt.Assert(t, qt.IsNil(first.Parse(cs)))
	qt.Assert(t, qt.IsTrue(first.IsSome()))

	var second combinator.Option[digit, *digit]
	qt.Assert(t, qt.IsNil(second.Parse(cs)))
	qt.Assert(t, qt.IsFalse(second.IsSome()))

	r, ok := cs.Next()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(r, 'a'))
}

func TestBoxParsesInnerValue(t *testing.T) {
	cs := charstream.New("5").Build()

	var b combinator.Box[digit, *digit]
	err := b.Parse(cs)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNotNil(b.Value))
	qt.Assert(t, qt.Equals(b.Value.Value, '5'))
}

func TestIndentGroupsSameDepth(t *testing.T) {
	cs := charstream.New("1\n2\n3").Build()

	var ind combinator.Indent[digit, *digit]
	err := ind.Parse(cs)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(len(ind.Items), 3))
}

func TestIndentStopsOnDepthChange(t *testing.T) {
	cs := charstream.New("1\n 2\n3").Build()

	var ind combinator.Indent[digit, *digit]
	err := ind.Parse(cs)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(len(ind.Items), 1))
}

func TestIndentFailsWhenFirstItemMissing(t *testing.T) {
	cs := charstream.New("abc").Build()

	var ind combinator.Indent[digit, *digit]
	err := ind.Parse(cs)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestMappingProjectsPairs(t *testing.T) {
	entries := []combinator.KeyValue[string, int]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
	}
	m := combinator.Mapping(entries)
	qt.Assert(t, qt.Equals(m["a"], 1))
	qt.Assert(t, qt.Equals(m["b"], 2))
}
