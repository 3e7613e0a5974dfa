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
	"fmt"
	"reflect"
	"strings"

	"github.com/TheLazyDutchman/parseal/charstream"
	"github.com/TheLazyDutchman/parseal/token"
)

var spannedType = reflect.TypeOf(Spanned{})

// fieldTag is the parsed form of a `parse:"..."` struct tag. Two options
// are recognized, matching spec.md §4.9.1's field attributes:
//
//	parse:"whitespace=Indent"     -- #[whitespace(P)]
//	parse:"value=if,else"         -- #[value("lit1","lit2"...)]
//
// Both may appear together, separated by a semicolon.
type fieldTag struct {
	whitespace string
	values     []string
}

func parseFieldTag(raw string) fieldTag {
	var tag fieldTag
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, val, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "whitespace":
			tag.whitespace = strings.TrimSpace(val)
		case "value":
			for _, v := range strings.Split(val, ",") {
				tag.values = append(tag.values, strings.TrimSpace(v))
			}
		}
	}
	return tag
}

func policyByName(name string) (charstream.WhitespacePolicy, error) {
	switch name {
	case "Ignore":
		return charstream.Ignore, nil
	case "KeepAll":
		return charstream.KeepAll, nil
	case "Indent":
		return charstream.Indent, nil
	default:
		return charstream.Ignore, fmt.Errorf("schema: unknown whitespace policy %q", name)
	}
}

func checkValueConstraint(val reflect.Value, allowed []string) error {
	f := val.FieldByName("Value")
	if !f.IsValid() || f.Kind() != reflect.String {
		return fmt.Errorf("schema: #[value(...)] requires a string Value field, found none on %s", val.Type())
	}
	got := f.String()
	for _, a := range allowed {
		if a == got {
			return nil
		}
	}
	return fmt.Errorf("schema: expected one of %v, got %q", allowed, got)
}

// Record derives T's parse procedure from its field declaration order, the
// way spec.md §4.9.1 sequences a record's field parses left to right. T
// must be a struct that embeds Spanned and whose non-Spanned fields are
// all individually registered with RegisterType. A positional record
// (spec.md §4.9.2) uses the exact same derivation: Go has no separate
// tuple-struct kind, so named and positional records differ only in
// whether a caller addresses a field by name or by its declared order.
func Record[T any](cs *charstream.CharStream) (T, error) {
	var zero T
	rt := reflect.TypeOf(zero)
	if rt.Kind() != reflect.Struct {
		return zero, fmt.Errorf("schema: %s is not a record type", rt)
	}

	start := cs.Pos()
	out := reflect.New(rt).Elem()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.Anonymous && field.Type == spannedType {
			continue
		}

		tag := parseFieldTag(field.Tag.Get("parse"))

		fieldCS := cs
		var clone *charstream.CharStream
		if tag.whitespace != "" {
			policy, err := policyByName(tag.whitespace)
			if err != nil {
				return zero, err
			}
			clone = cs.Clone()
			clone.SetWhitespace(policy)
			fieldCS = clone
		}

		val, err := parseRegistered(fieldCS, field.Type)
		if err != nil {
			return zero, token.NewParseError(cs.Pos(), "expected field %q: %v", field.Name, err)
		}

		if len(tag.values) > 0 {
			if err := checkValueConstraint(val, tag.values); err != nil {
				return zero, err
			}
		}

		out.Field(i).Set(val)

		if clone != nil {
			if err := cs.Goto(clone.Pos()); err != nil {
				return zero, err
			}
		}
	}

	span := token.NewSpan(start, cs.Pos())
	if s, ok := out.Addr().Interface().(spanSetter); ok {
		s.setSpan(span)
	}

	return out.Interface().(T), nil
}

// A derived record type still needs a one-line Parse method to satisfy
// combinator.Parser[T] -- the closest Go gets to the macro-generated glue
// a compile-time derivation would otherwise emit:
//
//	func (v *Value) Parse(cs *charstream.CharStream) error {
//		parsed, err := schema.Record[Value](cs)
//		if err != nil {
//			return err
//		}
//		*v = parsed
//		return nil
//	}
//
// Span is never hand-written: it comes from the embedded Spanned.
