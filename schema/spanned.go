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

import "github.com/TheLazyDutchman/parseal/token"

// Spanned is embedded by every record and positional-record type derived
// by this package, giving it the Span half of the combinator.Element
// contract for free. The field is unexported, but setSpan is still
// reachable from Record because the method is declared here, in package
// schema, regardless of which package embeds Spanned -- Go resolves
// unexported method sets structurally, not by the embedding type's
// package.
type Spanned struct {
	span token.Span
}

// Span implements the Element contract.
func (s *Spanned) Span() token.Span {
	return s.span
}

func (s *Spanned) setSpan(span token.Span) {
	s.span = span
}

type spanSetter interface {
	setSpan(token.Span)
}
