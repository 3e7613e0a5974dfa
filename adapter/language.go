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

package adapter

import "github.com/TheLazyDutchman/parseal/combinator"

// Define is implemented by a top-level declaration that introduces a
// single name, e.g. `func foo() {}` or `let x = 1`.
type Define[D any] interface {
	combinator.Element
	Name() string
	Decl() D
}

// DefineList is implemented by a top-level declaration that introduces
// several names at once, e.g. `use {a, b, c}`.
type DefineList[D any] interface {
	combinator.Element
	Names() []string
	Decl() D
}

// LanguageData is the source-language projection contract from spec.md
// §6.4: an implementing grammar names its own Function, Import,
// Variable and Type grammars; a client builds its Definition sum type by
// listing those four as schema.Sum variants, in the order a declaration
// parser should try them. This package does not provide that dispatch
// itself -- it is exactly as grammar-specific as the four type
// parameters below -- only the naming contract a client's types need to
// satisfy to participate.
type LanguageData[Function any, Import any, Variable any, Type any] interface {
	Functions() []Function
	Imports() []Import
	Variables() []Variable
	Types() []Type
}
