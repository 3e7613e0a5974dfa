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

package combinator

import (
	"github.com/TheLazyDutchman/parseal/charstream"
	"github.com/TheLazyDutchman/parseal/token"
)

// Delimiter is the contract from spec.md §6.3: a paired Start/End token
// type that Group parses around an inner value. Go has no associated
// types, so the Start/End pair is realized by two methods that parse and
// report the span of each side individually, rather than a single fused
// Parse; Group stitches the two spans together around the inner value's
// span itself.
type Delimiter[T any] interface {
	*T
	ParseStart(cs *charstream.CharStream) (token.Span, error)
	ParseEnd(cs *charstream.CharStream) (token.Span, error)
	Name() string
}
