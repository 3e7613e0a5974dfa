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

package primitive

import (
	"github.com/TheLazyDutchman/parseal/charstream"
	"github.com/TheLazyDutchman/parseal/token"
)

// Paren implements combinator.Delimiter for a `( ... )` group.
type Paren struct{}

// ParseStart implements the Delimiter contract.
func (*Paren) ParseStart(cs *charstream.CharStream) (token.Span, error) {
	return matchLiteral(cs, "(", "'('")
}

// ParseEnd implements the Delimiter contract.
func (*Paren) ParseEnd(cs *charstream.CharStream) (token.Span, error) {
	return matchLiteral(cs, ")", "')'")
}

// Name implements the Delimiter contract.
func (*Paren) Name() string { return "parentheses" }

// Brace implements combinator.Delimiter for a `{ ... }` group.
type Brace struct{}

// ParseStart implements the Delimiter contract.
func (*Brace) ParseStart(cs *charstream.CharStream) (token.Span, error) {
	return matchLiteral(cs, "{", "'{'")
}

// ParseEnd implements the Delimiter contract.
func (*Brace) ParseEnd(cs *charstream.CharStream) (token.Span, error) {
	return matchLiteral(cs, "}", "'}'")
}

// Name implements the Delimiter contract.
func (*Brace) Name() string { return "braces" }

// Bracket implements combinator.Delimiter for a `[ ... ]` group.
type Bracket struct{}

// ParseStart implements the Delimiter contract.
func (*Bracket) ParseStart(cs *charstream.CharStream) (token.Span, error) {
	return matchLiteral(cs, "[", "'['")
}

// ParseEnd implements the Delimiter contract.
func (*Bracket) ParseEnd(cs *charstream.CharStream) (token.Span, error) {
	return matchLiteral(cs, "]", "']'")
}

// Name implements the Delimiter contract.
func (*Bracket) Name() string { return "brackets" }

// Quotes implements combinator.Delimiter for a `"..."` group, the
// delimiter StringValue's Group wraps around the raw character content.
type Quotes struct{}

// ParseStart implements the Delimiter contract.
func (*Quotes) ParseStart(cs *charstream.CharStream) (token.Span, error) {
	return matchLiteral(cs, "\"", "'\"'")
}

// ParseEnd implements the Delimiter contract.
func (*Quotes) ParseEnd(cs *charstream.CharStream) (token.Span, error) {
	return matchLiteral(cs, "\"", "'\"'")
}

// Name implements the Delimiter contract.
func (*Quotes) Name() string { return "quotes" }
