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

import "github.com/TheLazyDutchman/parseal/charstream"

// Each punctuation type below is a single fixed run of text with no
// payload beyond its span. They are grouped here rather than split one
// type per file because, unlike Identifier/Number/StringValue, there is
// no meaningful behavior to separate out.

// Comma is the `,` token.
type Comma struct{ punct }

// Parse implements the Parser contract.
func (c *Comma) Parse(cs *charstream.CharStream) error { return c.parseLiteral(cs, ",", "','") }

// Colon is the `:` token.
type Colon struct{ punct }

// Parse implements the Parser contract.
func (c *Colon) Parse(cs *charstream.CharStream) error { return c.parseLiteral(cs, ":", "':'") }

// ColonColon is the `::` token.
type ColonColon struct{ punct }

// Parse implements the Parser contract.
func (c *ColonColon) Parse(cs *charstream.CharStream) error {
	return c.parseLiteral(cs, "::", "'::'")
}

// Semicolon is the `;` token.
type Semicolon struct{ punct }

// Parse implements the Parser contract.
func (s *Semicolon) Parse(cs *charstream.CharStream) error {
	return s.parseLiteral(cs, ";", "';'")
}

// Period is the `.` token.
type Period struct{ punct }

// Parse implements the Parser contract.
func (p *Period) Parse(cs *charstream.CharStream) error { return p.parseLiteral(cs, ".", "'.'") }

// LParen is the `(` token.
type LParen struct{ punct }

// Parse implements the Parser contract.
func (p *LParen) Parse(cs *charstream.CharStream) error { return p.parseLiteral(cs, "(", "'('") }

// RParen is the `)` token.
type RParen struct{ punct }

// Parse implements the Parser contract.
func (p *RParen) Parse(cs *charstream.CharStream) error { return p.parseLiteral(cs, ")", "')'") }

// LBrace is the `{` token.
type LBrace struct{ punct }

// Parse implements the Parser contract.
func (b *LBrace) Parse(cs *charstream.CharStream) error { return b.parseLiteral(cs, "{", "'{'") }

// RBrace is the `}` token.
type RBrace struct{ punct }

// Parse implements the Parser contract.
func (b *RBrace) Parse(cs *charstream.CharStream) error { return b.parseLiteral(cs, "}", "'}'") }

// LBracket is the `[` token.
type LBracket struct{ punct }

// Parse implements the Parser contract.
func (b *LBracket) Parse(cs *charstream.CharStream) error { return b.parseLiteral(cs, "[", "'['") }

// RBracket is the `]` token.
type RBracket struct{ punct }

// Parse implements the Parser contract.
func (b *RBracket) Parse(cs *charstream.CharStream) error { return b.parseLiteral(cs, "]", "']'") }

// Quote is a single `"` token, the delimiter StringValue parses between.
type Quote struct{ punct }

// Parse implements the Parser contract.
func (q *Quote) Parse(cs *charstream.CharStream) error { return q.parseLiteral(cs, "\"", "'\"'") }

// Less is the `<` token.
type Less struct{ punct }

// Parse implements the Parser contract.
func (l *Less) Parse(cs *charstream.CharStream) error { return l.parseLiteral(cs, "<", "'<'") }

// Greater is the `>` token.
type Greater struct{ punct }

// Parse implements the Parser contract.
func (g *Greater) Parse(cs *charstream.CharStream) error { return g.parseLiteral(cs, ">", "'>'") }

// Equal is the `=` token.
type Equal struct{ punct }

// Parse implements the Parser contract.
func (e *Equal) Parse(cs *charstream.CharStream) error { return e.parseLiteral(cs, "=", "'='") }

// EqualEqual is the `==` token.
type EqualEqual struct{ punct }

// Parse implements the Parser contract.
func (e *EqualEqual) Parse(cs *charstream.CharStream) error {
	return e.parseLiteral(cs, "==", "'=='")
}

// Arrow is the `->` token.
type Arrow struct{ punct }

// Parse implements the Parser contract.
func (a *Arrow) Parse(cs *charstream.CharStream) error { return a.parseLiteral(cs, "->", "'->'") }

// FatArrow is the `=>` token.
type FatArrow struct{ punct }

// Parse implements the Parser contract.
func (a *FatArrow) Parse(cs *charstream.CharStream) error { return a.parseLiteral(cs, "=>", "'=>'") }

// Hash is the `#` token.
type Hash struct{ punct }

// Parse implements the Parser contract.
func (h *Hash) Parse(cs *charstream.CharStream) error { return h.parseLiteral(cs, "#", "'#'") }

// Bang is the `!` token.
type Bang struct{ punct }

// Parse implements the Parser contract.
func (b *Bang) Parse(cs *charstream.CharStream) error { return b.parseLiteral(cs, "!", "'!'") }

// Pipe is the `|` token.
type Pipe struct{ punct }

// Parse implements the Parser contract.
func (p *Pipe) Parse(cs *charstream.CharStream) error { return p.parseLiteral(cs, "|", "'|'") }

// Amp is the `&` token.
type Amp struct{ punct }

// Parse implements the Parser contract.
func (a *Amp) Parse(cs *charstream.CharStream) error { return a.parseLiteral(cs, "&", "'&'") }

// Star is the `*` token.
type Star struct{ punct }

// Parse implements the Parser contract.
func (s *Star) Parse(cs *charstream.CharStream) error { return s.parseLiteral(cs, "*", "'*'") }

// Plus is the `+` token.
type Plus struct{ punct }

// Parse implements the Parser contract.
func (p *Plus) Parse(cs *charstream.CharStream) error { return p.parseLiteral(cs, "+", "'+'") }

// Minus is the `-` token.
type Minus struct{ punct }

// Parse implements the Parser contract.
func (m *Minus) Parse(cs *charstream.CharStream) error { return m.parseLiteral(cs, "-", "'-'") }

// Slash is the `/` token.
type Slash struct{ punct }

// Parse implements the Parser contract.
func (s *Slash) Parse(cs *charstream.CharStream) error { return s.parseLiteral(cs, "/", "'/'") }

// Underscore is the `_` token.
type Underscore struct{ punct }

// Parse implements the Parser contract.
func (u *Underscore) Parse(cs *charstream.CharStream) error {
	return u.parseLiteral(cs, "_", "'_'")
}
