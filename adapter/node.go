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

// Package adapter implements the interface-specified, out-of-scope
// contracts from spec.md §6.4: projections from a grammar's own parsed
// shape down to a uniform tree, for data formats (TreeData) and to a
// uniform set of top-level declarations, for source languages
// (LanguageData). Neither contract is implemented by this package --
// client grammars implement them over their own derived types -- but
// Node and Project give every TreeData implementer the same concrete
// target to project onto.
package adapter

import "github.com/google/uuid"

// Kind tags which of the three shapes a ParseNode or Node currently
// holds.
type Kind int

const (
	// KindScalar is a single leaf value: a string, number, or literal.
	KindScalar Kind = iota
	// KindObject is a mapping from field name to child node.
	KindObject
	// KindList is an ordered sequence of child nodes.
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindObject:
		return "object"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// ParseNode is the three-way tag spec.md §6.4 describes: a grammar's
// TreeData.Value() returns one of these, already projected to either a
// scalar, a mapping of string to ParseNode, or a sequence of ParseNode.
// Go has no associated types, so rather than parametrizing TreeData over
// an Object and a List type the way the source does, the conversion from
// a grammar's own Object/List shape happens inside Value() itself: the
// implementer is responsible for its own `Object -> mapping` and
// `List -> sequence` conversions, and ParseNode is the uniform result.
type ParseNode interface {
	Kind() Kind
	AsScalar() string
	AsObject() map[string]ParseNode
	AsList() []ParseNode
}

// TreeData is the data-format projection contract: any derived grammar
// value that knows how to present itself as a ParseNode can be turned
// into a concrete Node tree via Project.
type TreeData interface {
	Value() ParseNode
}

// Node is the concrete, uniform tree Project materializes from any
// TreeData value. Every node carries a stable identity, independent of
// its position in the tree, via google/uuid -- useful for diffing or
// referencing a specific node across a later transformation pass.
type Node struct {
	ID     uuid.UUID
	kind   Kind
	scalar string
	object map[string]*Node
	list   []*Node
}

// Kind reports which shape n holds.
func (n *Node) Kind() Kind { return n.kind }

// AsScalar returns n's scalar text. Only meaningful when Kind is
// KindScalar.
func (n *Node) AsScalar() string { return n.scalar }

// AsObject returns n's fields. Only meaningful when Kind is KindObject.
func (n *Node) AsObject() map[string]*Node { return n.object }

// AsList returns n's elements. Only meaningful when Kind is KindList.
func (n *Node) AsList() []*Node { return n.list }

func newNode(kind Kind) *Node {
	return &Node{ID: uuid.New(), kind: kind}
}

// Project walks t's ParseNode projection and materializes it into a
// concrete Node tree, recursively projecting every object field and
// list element along the way.
func Project(t TreeData) *Node {
	return projectNode(t.Value())
}

func projectNode(pn ParseNode) *Node {
	switch pn.Kind() {
	case KindScalar:
		n := newNode(KindScalar)
		n.scalar = pn.AsScalar()
		return n
	case KindObject:
		n := newNode(KindObject)
		n.object = make(map[string]*Node, len(pn.AsObject()))
		for name, child := range pn.AsObject() {
			n.object[name] = projectNode(child)
		}
		return n
	case KindList:
		n := newNode(KindList)
		n.list = make([]*Node, 0, len(pn.AsList()))
		for _, child := range pn.AsList() {
			n.list = append(n.list, projectNode(child))
		}
		return n
	default:
		return newNode(KindScalar)
	}
}

// Scalar is a ParseNode implementation wrapping a plain string, for
// implementers whose scalar alternative needs no further structure.
type Scalar string

// Kind implements ParseNode.
func (Scalar) Kind() Kind { return KindScalar }

// AsScalar implements ParseNode.
func (s Scalar) AsScalar() string { return string(s) }

// AsObject implements ParseNode.
func (Scalar) AsObject() map[string]ParseNode { return nil }

// AsList implements ParseNode.
func (Scalar) AsList() []ParseNode { return nil }

// Object is a ParseNode implementation wrapping a plain mapping.
type Object map[string]ParseNode

// Kind implements ParseNode.
func (Object) Kind() Kind { return KindObject }

// AsScalar implements ParseNode.
func (Object) AsScalar() string { return "" }

// AsObject implements ParseNode.
func (o Object) AsObject() map[string]ParseNode { return o }

// AsList implements ParseNode.
func (Object) AsList() []ParseNode { return nil }

// List is a ParseNode implementation wrapping a plain sequence.
type List []ParseNode

// Kind implements ParseNode.
func (List) Kind() Kind { return KindList }

// AsScalar implements ParseNode.
func (List) AsScalar() string { return "" }

// AsObject implements ParseNode.
func (List) AsObject() map[string]ParseNode { return nil }

// AsList implements ParseNode.
func (l List) AsList() []ParseNode { return l }
