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
)

func TestListNeverFailsOnEmptyInput(t *testing.T) {
	cs := charstream.New("abc").Build()

	var list combinator.List[digit, *digit, digit, *digit]
	err := list.Parse(cs)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(len(list.Items), 0))
	qt.Assert(t, qt.IsNil(list.Trailing))
}

func TestListParsesItemSeparatorPairs(t *testing.T) {
	cs := charstream.New("1012").Build()

	var list combinator.List[digit, *digit, digit, *digit]
	err := list.Parse(cs)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(len(list.Items), 2))
	qt.Assert(t, qt.Equals(list.Values()[0].Value, '1'))
}

func TestVecFailsOnEmptyInput(t *testing.T) {
	cs := charstream.New("abc").Build()

	var v combinator.Vec[digit, *digit]
	err := v.Parse(cs)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestVecParsesConsecutiveDigits(t *testing.T) {
	cs := charstream.New("123a").Build()

	var v combinator.Vec[digit, *digit]
	err := v.Parse(cs)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(len(v.Items), 3))
}

func TestFixedArray3ParsesExactCount(t *testing.T) {
	cs := charstream.New("123").Build()

	var a combinator.FixedArray3[digit, *digit]
	err := a.Parse(cs)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(a.Items[0].Value, '1'))
	qt.Assert(t, qt.Equals(a.Items[2].Value, '3'))
}

func TestFixedArray3FailsWhenShort(t *testing.T) {
	cs := charstream.New("12").Build()

	var a combinator.FixedArray3[digit, *digit]
	err := a.Parse(cs)
	qt.Assert(t, qt.IsNotNil(err))
}
