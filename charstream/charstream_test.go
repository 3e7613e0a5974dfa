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

package charstream_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/TheLazyDutchman/parseal/charstream"
	"github.com/TheLazyDutchman/parseal/token"
)

func TestIgnoreSkipsWhitespace(t *testing.T) {
	cs := charstream.New("  a b").Build()
	r, ok := cs.Next()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(r, 'a'))
	r, ok = cs.Next()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(r, 'b'))
}

func TestKeepAllReturnsWhitespace(t *testing.T) {
	cs := charstream.New(" a").Build()
	cs.SetWhitespace(charstream.KeepAll)
	r, ok := cs.Next()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(r, ' '))
	r, ok = cs.Next()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(r, 'a'))
}

func TestCloneIndependence(t *testing.T) {
	cs := charstream.New("abc").Build()
	clone := cs.Clone()
	clone.Next()
	clone.Next()

	qt.Assert(t, qt.Equals(cs.Pos().Offset, 0))
	qt.Assert(t, qt.Equals(clone.Pos().Offset, 2))
}

func TestGotoForward(t *testing.T) {
	cs := charstream.New("abcdef").Build()
	clone := cs.Clone()
	clone.Next()
	clone.Next()
	clone.Next()

	err := cs.Goto(clone.Pos())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(cs.Pos(), clone.Pos()))
}

func TestGotoRejectsBackwardSeek(t *testing.T) {
	cs := charstream.New("abcdef").Build()
	start := cs.Pos()
	cs.Next()
	cs.Next()

	err := cs.Goto(start)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestGotoRejectsCrossBuffer(t *testing.T) {
	cs := charstream.New("abc").Build()
	other := charstream.New("abc").Build()

	err := cs.Goto(other.Pos())
	qt.Assert(t, qt.IsNotNil(err))
}

func TestGotoRejectsPastEOF(t *testing.T) {
	cs := charstream.New("abc").Build()
	beyond := cs.EOF()
	beyond.Offset += 10

	err := cs.Goto(beyond)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestIndentTracksLeadingWhitespace(t *testing.T) {
	cs := charstream.New("  a\n    b\nc").Build()
	cs.SetWhitespace(charstream.Indent)

	r, ok := cs.Next()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(r, 'a'))
	qt.Assert(t, qt.Equals(cs.Indent(), 2))

	r, ok = cs.Next()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(r, 'b'))
	qt.Assert(t, qt.Equals(cs.Indent(), 4))

	r, ok = cs.Next()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(r, 'c'))
	qt.Assert(t, qt.Equals(cs.Indent(), 0))
}

func TestIndentTabCountsAsIndentUnit(t *testing.T) {
	cs := charstream.New("\ta").Build()
	cs.SetWhitespace(charstream.Indent)

	_, ok := cs.Next()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(cs.Indent(), 4))
}

func TestEOFPosition(t *testing.T) {
	cs := charstream.New("ab\nc").Build()
	eof := cs.EOF()
	qt.Assert(t, qt.Equals(eof.Row, 1))
	qt.Assert(t, qt.Equals(eof.Column, 1))
	qt.Assert(t, qt.Equals(eof.Offset, 4))
}

func TestPositionsCarryFileName(t *testing.T) {
	cs := charstream.New("a").WithFile("x.json").Build()
	qt.Assert(t, qt.Equals(cs.Pos().File, "x.json"))
	var _ token.Position = cs.Pos()
}
