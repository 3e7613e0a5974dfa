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

import "github.com/TheLazyDutchman/parseal/schema"

// init registers every leaf token in this package with schema's runtime
// type registry, so a derived record can use them as field types without
// each client package repeating the registration.
func init() {
	schema.RegisterType[Identifier, *Identifier]()
	schema.RegisterType[Number, *Number]()
	schema.RegisterType[StringValue, *StringValue]()

	schema.RegisterType[Comma, *Comma]()
	schema.RegisterType[Colon, *Colon]()
	schema.RegisterType[ColonColon, *ColonColon]()
	schema.RegisterType[Semicolon, *Semicolon]()
	schema.RegisterType[Period, *Period]()
	schema.RegisterType[LParen, *LParen]()
	schema.RegisterType[RParen, *RParen]()
	schema.RegisterType[LBrace, *LBrace]()
	schema.RegisterType[RBrace, *RBrace]()
	schema.RegisterType[LBracket, *LBracket]()
	schema.RegisterType[RBracket, *RBracket]()
	schema.RegisterType[Quote, *Quote]()
	schema.RegisterType[Less, *Less]()
	schema.RegisterType[Greater, *Greater]()
	schema.RegisterType[Equal, *Equal]()
	schema.RegisterType[EqualEqual, *EqualEqual]()
	schema.RegisterType[Arrow, *Arrow]()
	schema.RegisterType[FatArrow, *FatArrow]()
	schema.RegisterType[Hash, *Hash]()
	schema.RegisterType[Bang, *Bang]()
	schema.RegisterType[Pipe, *Pipe]()
	schema.RegisterType[Amp, *Amp]()
	schema.RegisterType[Star, *Star]()
	schema.RegisterType[Plus, *Plus]()
	schema.RegisterType[Minus, *Minus]()
	schema.RegisterType[Slash, *Slash]()
	schema.RegisterType[Underscore, *Underscore]()
}
