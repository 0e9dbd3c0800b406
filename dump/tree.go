// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dump

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/microsoft/microsoft-ui-xaml-sub032/writer"
	"github.com/microsoft/microsoft-ui-xaml-sub032/xaml"
)

// Node is a printable rendition of one materialized value.
type Node struct {
	// Type is the full name of the type of the value.
	Type string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`

	// Name is the x:Name or Name of an object.
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`

	// Value is the text of a plain value or of a markup extension.
	Value string `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`

	// Ref is set instead of the content for an object that is
	// already printed elsewhere in the tree.
	Ref string `json:"ref,omitempty" yaml:"ref,omitempty" toml:"ref,omitempty"`

	Properties []Property `json:"properties,omitempty" yaml:"properties,omitempty" toml:"properties,omitempty"`
	Items      []*Node    `json:"items,omitempty" yaml:"items,omitempty" toml:"items,omitempty"`
	Entries    []Entry    `json:"entries,omitempty" yaml:"entries,omitempty" toml:"entries,omitempty"`
	Events     []Event    `json:"events,omitempty" yaml:"events,omitempty" toml:"events,omitempty"`
	Deferred   *Deferred  `json:"deferred,omitempty" yaml:"deferred,omitempty" toml:"deferred,omitempty"`
}

// Property is an assigned property value.
type Property struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Value *Node  `json:"value" yaml:"value" toml:"value"`
}

// Entry is a dictionary entry.
type Entry struct {
	Key   string `json:"key" yaml:"key" toml:"key"`
	Value *Node  `json:"value" yaml:"value" toml:"value"`
}

// Event is a connected event handler.
type Event struct {
	Event   string `json:"event" yaml:"event" toml:"event"`
	Handler string `json:"handler" yaml:"handler" toml:"handler"`
}

// Deferred is the realization info of a deferred element.
type Deferred struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Token uint32 `json:"token" yaml:"token" toml:"token"`
	Load  bool   `json:"load,omitempty" yaml:"load,omitempty" toml:"load,omitempty"`
}

// Name is a namescope binding.
type Name struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Type string `json:"type" yaml:"type" toml:"type"`
}

// Namespace is an xml namespace declaration.
type Namespace struct {
	Prefix string `json:"prefix" yaml:"prefix" toml:"prefix"`
	URI    string `json:"uri" yaml:"uri" toml:"uri"`
}

// Document is the printable rendition of a [writer.Result].
type Document struct {
	Root       *Node       `json:"root" yaml:"root" toml:"root"`
	Names      []Name      `json:"names,omitempty" yaml:"names,omitempty" toml:"names,omitempty"`
	Namespaces []Namespace `json:"namespaces,omitempty" yaml:"namespaces,omitempty" toml:"namespaces,omitempty"`
}

// NewDocument returns the document of the given result.
func NewDocument(res *writer.Result) *Document {
	d := &Document{Root: Tree(res.Root)}
	for name, v := range res.Names.All() {
		d.Names = append(d.Names, Name{Name: name, Type: typeName(v)})
	}
	for prefix, uri := range res.Namespaces {
		d.Namespaces = append(d.Namespaces, Namespace{Prefix: prefix, URI: uri})
	}
	slices.SortFunc(d.Namespaces, func(a, b Namespace) int {
		return cmp.Compare(a.Prefix, b.Prefix)
	})
	return d
}

// Tree returns the tree of the given value. Objects reachable more
// than once are printed at their first occurrence and referred to
// by a [Node.Ref] afterwards.
func Tree(v any) *Node {
	tb := &treeBuilder{seen: map[*xaml.Object]bool{}}
	return tb.node(v)
}

type treeBuilder struct {
	seen map[*xaml.Object]bool
}

func (tb *treeBuilder) node(v any) *Node {
	obj, ok := v.(*xaml.Object)
	if !ok {
		return scalar(v)
	}
	n := &Node{Type: obj.Type.FullName, Name: obj.Name()}
	if tb.seen[obj] {
		n.Ref = obj.String()
		return n
	}
	tb.seen[obj] = true
	for i, p := range obj.Values.Keys {
		if p.IsName() {
			continue
		}
		n.Properties = append(n.Properties, Property{Name: p.Name, Value: tb.node(obj.Values.Values[i])})
	}
	for _, it := range obj.Items {
		n.Items = append(n.Items, tb.node(it))
	}
	for i, k := range obj.Entries.Keys {
		n.Entries = append(n.Entries, Entry{Key: keyString(k), Value: tb.node(obj.Entries.Values[i])})
	}
	for i, ev := range obj.Events.Keys {
		n.Events = append(n.Events, Event{Event: ev.Name, Handler: obj.Events.Values[i]})
	}
	if d := obj.Deferred; d != nil {
		n.Deferred = &Deferred{Name: d.Name, Token: d.Token, Load: d.Load}
	}
	return n
}

// scalar returns the node of a value that is not an object.
func scalar(v any) *Node {
	switch v := v.(type) {
	case nil:
		return &Node{Value: "null"}
	case string:
		return &Node{Type: "String", Value: v}
	case bool:
		return &Node{Type: "Boolean", Value: strconv.FormatBool(v)}
	case int32:
		return &Node{Type: "Int32", Value: strconv.FormatInt(int64(v), 10)}
	case float64:
		return &Node{Type: "Double", Value: strconv.FormatFloat(v, 'g', -1, 64)}
	case xaml.EnumValue:
		return &Node{Type: v.Type.FullName, Value: strconv.FormatUint(uint64(v.Value), 10)}
	case xaml.Thickness:
		return &Node{Type: "Thickness", Value: v.String()}
	case xaml.Color:
		return &Node{Type: "Color", Value: v.String()}
	case *xaml.Type:
		return &Node{Type: "Type", Value: v.FullName}
	case *xaml.Property:
		return &Node{Type: "Property", Value: v.FullName()}
	case xaml.Instance:
		return &Node{Type: v.XamlType().FullName, Value: fmt.Sprint(v)}
	}
	return &Node{Type: fmt.Sprintf("%T", v), Value: fmt.Sprint(v)}
}

// keyString returns the printed dictionary key: the x:Key, or the
// braced full name of the target type of an implicit style.
func keyString(k any) string {
	switch k := k.(type) {
	case string:
		return k
	case *xaml.Type:
		return "{" + k.FullName + "}"
	}
	return fmt.Sprint(k)
}

func typeName(v any) string {
	if in, ok := v.(xaml.Instance); ok {
		return in.XamlType().FullName
	}
	return fmt.Sprintf("%T", v)
}
