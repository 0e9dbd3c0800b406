// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package writer

import (
	"fmt"
	"log/slog"

	"github.com/microsoft/microsoft-ui-xaml-sub032/stable"
	"github.com/microsoft/microsoft-ui-xaml-sub032/xaml"
)

// assign gives the value to the member of the frame, or adds it as an
// item when the frame is a collection or dictionary with no member open.
func (w *Writer) assign(f *Frame, v any) error {
	switch ext := v.(type) {
	case *xaml.NullExtension:
		v = nil
	case *xaml.StaticResource:
		if res, ok := w.lookupResource(ext.ResourceKey); ok {
			v = res
		} else {
			slog.Debug("writer: unresolved static resource", "key", ext.ResourceKey)
		}
	}
	switch t := f.Object.(type) {
	case xaml.MemberSetter:
		if f.Member == nil {
			return fmt.Errorf("%w: item added to %s", ErrStructure, t.XamlType())
		}
		return t.SetMember(f.Member, v)
	case *xaml.Object:
		if f.Member == nil {
			return w.addItem(t, v)
		}
		return w.setMember(t, f.Member, v)
	}
	return fmt.Errorf("%w: cannot assign to %T", ErrStructure, f.Object)
}

// setMember sets a member of an object. Values that do not fit
// a collection or dictionary member are added to it instead,
// making the member value on first use.
func (w *Writer) setMember(obj *xaml.Object, p *xaml.Property, v any) error {
	if v != nil && (p.Type.IsCollection || p.Type.IsDictionary) && !p.Type.IsAssignableFrom(instanceType(v)) {
		coll, ok := obj.Value(p)
		c, isObj := coll.(*xaml.Object)
		if !ok || !isObj {
			c = xaml.NewObject(p.Type)
			obj.SetValue(p, c)
		}
		return w.addItem(c, v)
	}
	obj.SetValue(p, v)
	if p.IsName() {
		if name, ok := v.(string); ok {
			return w.names.Register(name, obj)
		}
	}
	return nil
}

// addItem adds a collection item or a dictionary entry.
func (w *Writer) addItem(coll *xaml.Object, v any) error {
	switch {
	case coll.Type.IsDictionary:
		key, ok := dictionaryKey(v)
		if !ok {
			return fmt.Errorf("%w: entry of %s has no key", ErrStructure, coll.Type)
		}
		coll.SetEntry(key, v)
	case coll.Type.IsCollection:
		coll.Add(v)
	default:
		return fmt.Errorf("%w: %s is neither a collection nor a dictionary", ErrStructure, coll.Type)
	}
	return nil
}

// dictionaryKey returns the x:Key of a dictionary entry, or the target
// type of a style without one.
func dictionaryKey(v any) (any, bool) {
	obj, ok := v.(*xaml.Object)
	if !ok {
		return nil, false
	}
	if k, ok := obj.ValueByName("x:Key"); ok {
		if s, ok := k.(string); ok {
			return s, true
		}
	}
	if obj.Type.Index == stable.TypeStyle {
		if tt, ok := obj.ValueByName("TargetType"); ok {
			if t, ok := tt.(*xaml.Type); ok {
				return t, true
			}
		}
	}
	return nil, false
}

// lookupResource looks the key up in the dictionaries on the stack,
// innermost first: dictionaries being built, and the Resources of
// enclosing elements.
func (w *Writer) lookupResource(key string) (any, bool) {
	for i := len(w.stack) - 1; i >= 0; i-- {
		obj, ok := w.stack[i].Object.(*xaml.Object)
		if !ok {
			continue
		}
		if obj.Type.IsDictionary {
			if v, ok := obj.Entry(key); ok {
				return v, true
			}
		}
		if res, ok := obj.ValueByName("Resources"); ok {
			if d, ok := res.(*xaml.Object); ok {
				if v, ok := d.Entry(key); ok {
					return v, true
				}
			}
		}
	}
	return nil, false
}
