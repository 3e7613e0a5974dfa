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

import (
	"github.com/TheLazyDutchman/parseal/charstream"
	"github.com/TheLazyDutchman/parseal/combinator"
)

// NamedValue is the `Name Sep Inner` positional record spec.md §6.4
// describes for key-value entries, e.g. a JSON object member or a YAML
// mapping entry. It is a thin wrapper around combinator.Tuple3 that
// exposes the three parts under names suited to that role.
type NamedValue[Name any, PName combinator.Parser[Name], Sep any, PSep combinator.Parser[Sep], Inner any, PInner combinator.Parser[Inner]] struct {
	combinator.Tuple3[Name, PName, Sep, PSep, Inner, PInner]
}

// Key returns the entry's name component.
func (nv *NamedValue[Name, PName, Sep, PSep, Inner, PInner]) Key() Name {
	return nv.First
}

// Val returns the entry's inner value component.
func (nv *NamedValue[Name, PName, Sep, PSep, Inner, PInner]) Val() Inner {
	return nv.Third
}
