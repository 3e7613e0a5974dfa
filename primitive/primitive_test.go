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

package primitive_test

import (
	"testing"

	qt "github.com/go-quicktest/qt"

	"github.com/TheLazyDutchman/parseal/charstream"
	"github.com/TheLazyDutchman/parseal/combinator"
	"github.com/TheLazyDutchman/parseal/primitive"
)

func TestIdentifierParsesLettersDigitsUnderscore(t *testing.T) {
	cs := charstream.New("foo_bar2 rest").Build()
	id, err := combinator.Parse[primitive.Identifier, *primitive.Identifier](cs)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(id.Value, "foo_bar2"))
}

func TestIdentifierRejectsLeadingDigit(t *testing.T) {
	cs := charstream.New("2bad").Build()
	_, err := combinator.Parse[primitive.Identifier, *primitive.Identifier](cs)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestNumberParsesInteger(t *testing.T) {
	cs := charstream.New("42 rest").Build()
	n, err := combinator.Parse[primitive.Number, *primitive.Number](cs)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(n.Value, "42"))

	i, err := n.Int64()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(i, int64(42)))
}

func TestNumberParsesDecimal(t *testing.T) {
	cs := charstream.New("3.25").Build()
	n, err := combinator.Parse[primitive.Number, *primitive.Number](cs)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(n.Value, "3.25"))

	d, err := n.Decimal()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(d.String(), "3.25"))
}

func TestNumberRejectsLeadingSign(t *testing.T) {
	// Number itself has no sign; a negative literal is Minus composed
	// with Number at the grammar level, so a bare "-3" does not parse as
	// a Number on its own.
	cs := charstream.New("-3").Build()
	_, err := combinator.Parse[primitive.Number, *primitive.Number](cs)
	qt.Assert(t, qt.IsNotNil(err))
}

// signedNumber is Minus composed with Number, the grammar-level way to
// spell a negative literal now that Number itself carries no sign.
type signedNumber = combinator.Tuple2[primitive.Minus, *primitive.Minus, primitive.Number, *primitive.Number]

func TestSignedNumberComposesMinusAndNumber(t *testing.T) {
	cs := charstream.New("-3.25").Build()
	n, err := combinator.Parse[signedNumber, *signedNumber](cs)
	qt.Assert(t, qt.IsNil(err))

	d, err := n.Second.Decimal()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(d.String(), "3.25"))
}

func TestNumberRejectsNonDigit(t *testing.T) {
	cs := charstream.New("abc").Build()
	_, err := combinator.Parse[primitive.Number, *primitive.Number](cs)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestColonColonMatchesAdjacentColons(t *testing.T) {
	cs := charstream.New("::rest").Build()
	_, err := combinator.Parse[primitive.ColonColon, *primitive.ColonColon](cs)
	qt.Assert(t, qt.IsNil(err))
}

func TestColonColonRejectsInteriorWhitespace(t *testing.T) {
	// A multi-rune literal's own runes must sit adjacent to each other;
	// the ambient Ignore policy must not let ": :" read as "::" via
	// its ordinary whitespace-skipping between tokens.
	cs := charstream.New(": :").Build()
	_, err := combinator.Parse[primitive.ColonColon, *primitive.ColonColon](cs)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestArrowRejectsInteriorWhitespace(t *testing.T) {
	cs := charstream.New("- >").Build()
	_, err := combinator.Parse[primitive.Arrow, *primitive.Arrow](cs)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestStringValueUnescapesQuoteAndBackslash(t *testing.T) {
	cs := charstream.New(`a \" b \\ c"`).Build()
	s, err := combinator.Parse[primitive.StringValue, *primitive.StringValue](cs)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s.Value, `a " b \ c`))
}

func TestStringValueRejectsUnknownEscape(t *testing.T) {
	cs := charstream.New(`\n"`).Build()
	_, err := combinator.Parse[primitive.StringValue, *primitive.StringValue](cs)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestStringValueGroupWithQuotesDelimiter(t *testing.T) {
	cs := charstream.New(`"hello"`).Build()
	type stringGroup = combinator.Group[
		primitive.Quotes, *primitive.Quotes,
		primitive.StringValue, *primitive.StringValue,
	]
	g, err := combinator.Parse[stringGroup, *stringGroup](cs)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(g.Inner.Value, "hello"))
}

func TestPunctuationComma(t *testing.T) {
	cs := charstream.New(", rest").Build()
	_, err := combinator.Parse[primitive.Comma, *primitive.Comma](cs)
	qt.Assert(t, qt.IsNil(err))
}

func TestDelimiterParen(t *testing.T) {
	cs := charstream.New("(42)").Build()
	type numberGroup = combinator.Group[
		primitive.Paren, *primitive.Paren,
		primitive.Number, *primitive.Number,
	]
	g, err := combinator.Parse[numberGroup, *numberGroup](cs)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(g.Inner.Value, "42"))
}
