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

// Package schema derives a parse procedure from the shape of a Go type,
// standing in for the compile-time macro expansion spec.md §4.9
// describes. Go has no hygienic macros and no reflection over a type's
// own methods at compile time, so derivation happens at init time
// instead: every leaf and composite type a record wants to use as a
// field must first be registered, the way cue's internal/core/convert
// walks Go struct tags at runtime rather than via generated code.
package schema

import (
	"fmt"
	"reflect"

	"github.com/TheLazyDutchman/parseal/charstream"
	"github.com/TheLazyDutchman/parseal/combinator"
)

// parseFunc parses one value of a registered type from cs, returning it
// as a reflect.Value so Record can assign it into an arbitrary struct
// field regardless of the field's static type.
type parseFunc func(cs *charstream.CharStream) (reflect.Value, error)

var registry = make(map[reflect.Type]parseFunc)

// RegisterType makes T available as a record field type or sum variant.
// PT is T's combinator.Parser[T] witness, exactly as every combinator
// constructor in package combinator requires. Call this from an init
// function for every concrete type -- primitive token, combinator
// instantiation, or another derived record -- that Record or Sum needs
// to parse by reflection alone.
func RegisterType[T any, PT combinator.Parser[T]]() {
	t := reflect.TypeOf((*T)(nil)).Elem()
	registry[t] = func(cs *charstream.CharStream) (reflect.Value, error) {
		v, err := combinator.Parse[T, PT](cs)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(v), nil
	}
}

func parseRegistered(cs *charstream.CharStream, t reflect.Type) (reflect.Value, error) {
	fn, ok := registry[t]
	if !ok {
		return reflect.Value{}, fmt.Errorf("schema: no parser registered for type %s", t)
	}
	return fn(cs)
}
