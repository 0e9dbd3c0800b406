// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package writer

import (
	"fmt"
	"log/slog"

	"github.com/microsoft/microsoft-ui-xaml-sub032/stable"
	"github.com/microsoft/microsoft-ui-xaml-sub032/xaml"
	"github.com/microsoft/microsoft-ui-xaml-sub032/xbf"
)

// RealizeTokenProperty is the name of the global property that holds
// the token of a deferred element.
const RealizeTokenProperty = "RealizeToken"

func (w *Writer) customRuntimeData(d xbf.CustomRuntimeData) error {
	if len(w.stack) == w.seed {
		return fmt.Errorf("%w: %s data outside of an object", ErrStructure, d.Kind())
	}
	switch d := d.(type) {
	case *xbf.ResourceDictionaryData:
		return w.resourceDictionary(d)
	case *xbf.DeferredElementData:
		return w.deferredElement(d)
	case *xbf.StyleData:
		return w.style(d)
	case *xbf.VisualStateGroupCollectionData:
		return w.visualStateGroups(d)
	}
	return fmt.Errorf("%w: unknown custom runtime data %T", ErrStructure, d)
}

// topObject returns the object of the top frame.
func (w *Writer) topObject(what string) (*xaml.Object, error) {
	obj, ok := w.top().Object.(*xaml.Object)
	if !ok {
		return nil, fmt.Errorf("%w: %s data on %T", ErrStructure, what, w.top().Object)
	}
	return obj, nil
}

// realizeEntry builds one resource in isolation and moves its names
// into the writer namescope.
func (w *Writer) realizeEntry(token uint32) (any, error) {
	v, err := w.realize(w.CaptureContext(), token)
	if err != nil {
		return nil, err
	}
	if obj, ok := v.(*xaml.Object); ok {
		if err := w.TransferNamescopeFromObject(obj); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func (w *Writer) resourceDictionary(d *xbf.ResourceDictionaryData) error {
	dict, err := w.topObject("resource dictionary")
	if err != nil {
		return err
	}
	for _, r := range d.Explicit {
		v, err := w.realizeEntry(r.Token)
		if err != nil {
			return fmt.Errorf("resource %q: %w", r.Key, err)
		}
		dict.SetEntry(r.Key, v)
	}
	for _, r := range d.Implicit {
		key, err := w.resolveType(r.Type)
		if err != nil {
			return err
		}
		v, err := w.realizeEntry(r.Token)
		if err != nil {
			return fmt.Errorf("resource for %s: %w", key, err)
		}
		dict.SetEntry(key, v)
	}
	for _, r := range d.Conditional {
		// TODO: evaluate the predicate type with its arguments once the
		// host supplies an evaluator; until then every entry is kept.
		slog.Debug("writer: including conditional resource without evaluating its predicate",
			"key", r.Key, "predicate", r.Predicate, "args", r.Args)
		v, err := w.realizeEntry(r.Token)
		if err != nil {
			return fmt.Errorf("conditional resource %q: %w", r.Key, err)
		}
		dict.SetEntry(r.Key, v)
	}
	return nil
}

// deferredElement replaces the placeholder on top of the stack with the
// element built from its sub-stream.
func (w *Writer) deferredElement(d *xbf.DeferredElementData) error {
	if w.top().Reused {
		return fmt.Errorf("%w: deferred element on an existing object", ErrStructure)
	}
	w.pop()
	ctx := w.CaptureContext()
	v, err := w.realize(ctx, d.Token)
	if err != nil {
		return fmt.Errorf("deferred element %q: %w", d.Name, err)
	}
	elem, ok := v.(*xaml.Object)
	if !ok {
		return fmt.Errorf("%w: deferred element %q is %T", ErrStructure, d.Name, v)
	}
	s, f, token := w.session, w.file, d.Token
	elem.Deferred = &xaml.Deferred{
		Name:  d.Name,
		Token: d.Token,
		Load:  d.Load,
		Realize: func() (*xaml.Object, error) {
			v, err := Realize(s, f, ctx, token)
			if err != nil {
				return nil, err
			}
			obj, ok := v.(*xaml.Object)
			if !ok {
				return nil, fmt.Errorf("%w: deferred element is %T", ErrStructure, v)
			}
			return obj, nil
		},
	}
	elem.SetValue(w.session.PropertyByName(nil, nil, RealizeTokenProperty), d.Token)
	if err := w.TransferNamescopeFromObject(elem); err != nil {
		return err
	}
	if d.Name != "" && w.names.Find(d.Name) == nil {
		if err := w.names.Register(d.Name, elem); err != nil {
			return err
		}
	}
	w.push(Frame{Object: elem, Type: elem.Type})
	return nil
}

// style builds the setters of the style on top of the stack.
func (w *Writer) style(d *xbf.StyleData) error {
	style, err := w.topObject("style")
	if err != nil {
		return err
	}
	s := w.session
	setters, err := s.PropertyByIndex(stable.PropStyleSetters)
	if err != nil {
		return err
	}
	collType, err := s.TypeByIndex(stable.TypeSetterBaseCollection)
	if err != nil {
		return err
	}
	coll := xaml.NewObject(collType)
	for i, st := range d.Setters {
		setter, err := w.setter(st)
		if err != nil {
			return fmt.Errorf("setter %d: %w", i, err)
		}
		coll.Add(setter)
	}
	style.SetValue(setters, coll)
	return nil
}

func (w *Writer) setter(st xbf.Setter) (any, error) {
	if st.Kind == xbf.SetterTokenForSelf {
		v, err := w.realize(w.CaptureContext(), st.Token)
		if err != nil {
			return nil, err
		}
		obj, ok := v.(*xaml.Object)
		if !ok {
			return nil, fmt.Errorf("%w: setter is %T", ErrStructure, v)
		}
		return obj, w.TransferNamescopeFromObject(obj)
	}

	s := w.session
	prop, err := w.resolveProperty(st.Property)
	if err != nil {
		return nil, err
	}
	var value any
	switch st.Kind {
	case xbf.SetterValue:
		if value, err = w.convert(st.Value); err != nil {
			return nil, err
		}
	case xbf.SetterStaticResource, xbf.SetterThemeResource:
		if value, err = w.realize(w.CaptureContext(), st.Token); err != nil {
			return nil, err
		}
		if sr, ok := value.(*xaml.StaticResource); ok {
			if res, ok := w.lookupResource(sr.ResourceKey); ok {
				value = res
			}
		}
	case xbf.SetterObject:
		if value, err = w.realize(w.CaptureContext(), st.Token); err != nil {
			return nil, err
		}
		if obj, ok := value.(*xaml.Object); ok {
			if err := w.TransferNamescopeFromObject(obj); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("%w: setter kind %s", ErrStructure, st.Kind)
	}

	setterType, err := s.TypeByIndex(stable.TypeSetter)
	if err != nil {
		return nil, err
	}
	propProp, err := s.PropertyByIndex(stable.PropSetterProperty)
	if err != nil {
		return nil, err
	}
	valueProp, err := s.PropertyByIndex(stable.PropSetterValue)
	if err != nil {
		return nil, err
	}
	setter := xaml.NewObject(setterType)
	setter.SetValue(propProp, prop)
	setter.SetValue(valueProp, value)
	return setter, nil
}

// visualStateGroups replaces the collection on top of the stack with
// the one built from its sub-stream. The sub-stream pushes the
// collection itself again, so it is replayed without the top frame.
func (w *Writer) visualStateGroups(d *xbf.VisualStateGroupCollectionData) error {
	ctx := w.CaptureContext().Pop()
	v, err := w.realize(ctx, d.Token)
	if err != nil {
		return fmt.Errorf("visual state groups: %w", err)
	}
	if obj, ok := v.(*xaml.Object); ok {
		if err := w.TransferNamescopeFromObject(obj); err != nil {
			return err
		}
	}
	top := w.top()
	top.Object, top.Type, top.Reused = v, instanceType(v), false
	return nil
}
