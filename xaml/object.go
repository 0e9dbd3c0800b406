// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xaml

import (
	"cogentcore.org/core/base/keylist"
)

// Instance is implemented by every materialized value that has a
// XAML type: generic [Object]s and the markup-extension instances.
type Instance interface {
	XamlType() *Type
}

// MemberSetter is implemented by instances that take member values
// directly rather than through an [Object] value bag.
type MemberSetter interface {
	Instance

	// SetMember sets the given member, returning an error wrapping
	// [ErrUnknownMember] if the instance does not have it.
	SetMember(p *Property, value any) error
}

// Object is a generic materialized XAML object. The host runtime
// supplies the real control types; the reader records what the binary
// says about each object: its type, assigned property values, collection
// items, dictionary entries, connected events and the names registered
// while it was built.
type Object struct {
	Type *Type

	// Values is the ordered value bag of property assignments.
	Values keylist.List[*Property, any]

	// Items are the entries of collection objects.
	Items []any

	// Entries are the entries of dictionary objects, keyed by a string
	// for explicit keys or by a *Type for implicit (style) keys.
	Entries keylist.List[any, any]

	// Events maps connected events to handler names.
	Events keylist.List[*Event, string]

	// Names is the namescope of the names registered while building
	// this object in isolation. It is nil until something is registered.
	Names *Namescope

	// Deferred is set on elements that were declared as deferred.
	Deferred *Deferred
}

// Deferred is the realization info of a deferred element.
type Deferred struct {
	// Name is the name the element was declared with.
	Name string

	// Token locates the sub-stream that builds the element.
	Token uint32

	// Load is whether the element was declared to load immediately.
	Load bool

	// Realize builds a fresh instance of the element on demand.
	Realize func() (*Object, error)
}

// NewObject returns a new generic object of the given type.
func NewObject(typ *Type) *Object {
	return &Object{Type: typ}
}

// XamlType returns the type of the object.
func (o *Object) XamlType() *Type {
	return o.Type
}

func (o *Object) String() string {
	if nm := o.Name(); nm != "" {
		return o.Type.Name() + " " + nm
	}
	return o.Type.Name()
}

// Value returns the value assigned to the given property.
func (o *Object) Value(p *Property) (any, bool) {
	return o.Values.AtTry(p)
}

// ValueByName returns the value assigned to the first property whose
// name or full name matches.
func (o *Object) ValueByName(name string) (any, bool) {
	for i, p := range o.Values.Keys {
		if p.Name == name || p.FullName() == name {
			return o.Values.Values[i], true
		}
	}
	return nil, false
}

// SetValue assigns the given property, replacing any existing value.
func (o *Object) SetValue(p *Property, v any) {
	o.Values.Set(p, v)
}

// Add appends an item to the collection.
func (o *Object) Add(item any) {
	o.Items = append(o.Items, item)
}

// Entry returns the dictionary entry with the given key, which is a
// string or a *Type.
func (o *Object) Entry(key any) (any, bool) {
	return o.Entries.AtTry(key)
}

// SetEntry sets the dictionary entry with the given key.
func (o *Object) SetEntry(key, v any) {
	o.Entries.Set(key, v)
}

// Name returns the x:Name or Name assigned to the object.
func (o *Object) Name() string {
	for i, p := range o.Values.Keys {
		if p.IsName() {
			if s, ok := o.Values.Values[i].(string); ok {
				return s
			}
		}
	}
	return ""
}

// Namescope returns the namescope of the object, making it if needed.
func (o *Object) Namescope() *Namescope {
	if o.Names == nil {
		o.Names = NewNamescope()
	}
	return o.Names
}

// FindName returns the object registered under the given name in
// the namescope of this object, or nil.
func (o *Object) FindName(name string) any {
	return o.Names.Find(name)
}

// WalkDown calls the given function on this object and all objects
// reachable from it through values, items and entries, depth first.
// Returning false from the function skips the children of that object.
func (o *Object) WalkDown(fun func(o *Object) bool) {
	seen := map[*Object]bool{}
	var walk func(v any)
	walk = func(v any) {
		obj, ok := v.(*Object)
		if !ok || seen[obj] {
			return
		}
		seen[obj] = true
		if !fun(obj) {
			return
		}
		for _, cv := range obj.Values.Values {
			walk(cv)
		}
		for _, it := range obj.Items {
			walk(it)
		}
		for _, ev := range obj.Entries.Values {
			walk(ev)
		}
	}
	walk(o)
}
