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

package token_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/TheLazyDutchman/parseal/token"
)

func TestPositionCompareAcrossFiles(t *testing.T) {
	a := token.Position{Row: 1, Column: 1, Offset: 0, FileID: 1}
	b := token.Position{Row: 1, Column: 1, Offset: 0, FileID: 2}
	qt.Assert(t, qt.Equals(a.Compare(b), token.Incomparable))
}

func TestPositionCompareSameFile(t *testing.T) {
	fileID := token.NewFileID()
	a := token.Position{Row: 1, Column: 1, Offset: 0, FileID: fileID}
	b := token.Position{Row: 1, Column: 5, Offset: 4, FileID: fileID}
	qt.Assert(t, qt.Equals(a.Compare(b), token.Less))
	qt.Assert(t, qt.Equals(b.Compare(a), token.Greater))
	qt.Assert(t, qt.Equals(a.Compare(a), token.Equal))
}

func TestNoPositionIsUnbound(t *testing.T) {
	qt.Assert(t, qt.IsFalse(token.NoPosition.IsValid()))
	qt.Assert(t, qt.Equals(token.NoPosition.String(), "-"))
}

func TestSpanContainment(t *testing.T) {
	fileID := token.NewFileID()
	pos := func(offset int) token.Position {
		return token.Position{Row: 1, Column: offset + 1, Offset: offset, FileID: fileID}
	}

	outer := token.NewSpan(pos(0), pos(10))
	inner := token.NewSpan(pos(2), pos(4))

	qt.Assert(t, qt.Equals(inner.Compare(outer), token.Less))
	qt.Assert(t, qt.Equals(outer.Compare(inner), token.Greater))
	qt.Assert(t, qt.IsTrue(outer.Contains(inner)))
	qt.Assert(t, qt.IsFalse(inner.Contains(outer)))
}

func TestSpanOverlapWithoutContainmentIsIncomparable(t *testing.T) {
	fileID := token.NewFileID()
	pos := func(offset int) token.Position {
		return token.Position{Row: 1, Column: offset + 1, Offset: offset, FileID: fileID}
	}

	a := token.NewSpan(pos(0), pos(5))
	b := token.NewSpan(pos(3), pos(8))

	qt.Assert(t, qt.Equals(a.Compare(b), token.Incomparable))
	qt.Assert(t, qt.Equals(b.Compare(a), token.Incomparable))
}

func TestParseErrorString(t *testing.T) {
	fileID := token.NewFileID()
	pos := token.Position{Row: 2, Column: 3, Offset: 9, File: "x.json", FileID: fileID}
	err := token.NewParseError(pos, "expected %s", "identifier")
	qt.Assert(t, qt.Equals(err.Error(), "x.json:2:3: expected identifier"))
	qt.Assert(t, qt.Equals(err.Position(), pos))
}
