// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package writer materializes the node streams of an [xbf.File] into
// a graph of [xaml.Object]s.
//
// A [Writer] walks one node stream with an explicit stack of [Frame]s
// mirroring the nesting of the markup. Custom runtime data make it
// replay other streams of the file: each one is built in isolation by
// [Realize] from an immutable [Context] snapshot of the stack, and the
// names it registered are then moved into the writer's own namescope
// by [Writer.TransferNamescopeFromObject].
package writer

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/microsoft/microsoft-ui-xaml-sub032/stable"
	"github.com/microsoft/microsoft-ui-xaml-sub032/xaml"
	"github.com/microsoft/microsoft-ui-xaml-sub032/xbf"
)

var (
	// ErrStructure is returned for node streams whose nodes do not nest
	// the way objects and members must.
	ErrStructure = errors.New("writer: malformed node structure")

	// ErrNoResult is returned when a stream ends before completing
	// its object.
	ErrNoResult = errors.New("writer: stream ended without completing an object")
)

// Result is the outcome of [Load].
type Result struct {
	// Root is the outermost object of the main stream.
	Root *xaml.Object

	// Names is the namescope of the whole graph. It is also
	// set as Root.Names.
	Names *xaml.Namescope

	// Namespaces maps the declared xml namespace prefixes to their uris.
	Namespaces map[string]string
}

// Writer builds objects from one node stream. A Writer is used by one
// goroutine; nested streams get their own Writer.
type Writer struct {
	session *xaml.Session
	file    *xbf.File

	stack []Frame

	// seed is the number of frames the writer was seeded with.
	seed int

	names      *xaml.Namescope
	namespaces map[string]string

	line, column uint32

	result any
	done   bool
}

// New returns a new [Writer] for the given file with an empty stack.
func New(s *xaml.Session, f *xbf.File) *Writer {
	return &Writer{session: s, file: f, names: xaml.NewNamescope(), namespaces: map[string]string{}}
}

// Load builds the main object graph of the file.
func Load(s *xaml.Session, f *xbf.File) (*Result, error) {
	w := New(s, f)
	v, err := w.Write(f.Main())
	if err != nil {
		return nil, err
	}
	root, ok := v.(*xaml.Object)
	if !ok {
		return nil, fmt.Errorf("%w: root is %T, not an object", ErrStructure, v)
	}
	root.Names = w.names
	return &Result{Root: root, Names: w.names, Namespaces: w.namespaces}, nil
}

// Names returns the namescope of the names registered by this writer.
func (w *Writer) Names() *xaml.Namescope {
	return w.names
}

// Write processes the nodes of the given stream until the object at
// the seed depth is complete, and returns that object. Only line
// information may follow it.
func (w *Writer) Write(s *xbf.Stream) (any, error) {
	for i := range s.Nodes {
		if err := w.node(&s.Nodes[i]); err != nil {
			return nil, w.wrap(s, err)
		}
		if w.done {
			if err := w.trailing(s, s.Nodes[i+1:]); err != nil {
				return nil, err
			}
			return w.result, nil
		}
	}
	return nil, w.wrap(s, fmt.Errorf("%w: %d objects still open", ErrNoResult, len(w.stack)-w.seed))
}

func (w *Writer) trailing(s *xbf.Stream, rest []xbf.Node) error {
	for i := range rest {
		n := &rest[i]
		if n.Kind != xbf.LineInfo {
			return w.wrap(s, fmt.Errorf("%w: %s node after the completed object", ErrStructure, n.Kind))
		}
		w.line, w.column = n.Line, n.Column
	}
	return nil
}

func (w *Writer) wrap(s *xbf.Stream, err error) error {
	if w.line > 0 {
		return fmt.Errorf("stream %d, line %d:%d: %w", s.Index, w.line, w.column, err)
	}
	return fmt.Errorf("stream %d: %w", s.Index, err)
}

func (w *Writer) top() *Frame {
	if len(w.stack) == 0 {
		return nil
	}
	return &w.stack[len(w.stack)-1]
}

func (w *Writer) push(f Frame) {
	w.stack = append(w.stack, f)
}

func (w *Writer) pop() Frame {
	f := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	return f
}

func (w *Writer) node(n *xbf.Node) error {
	switch n.Kind {
	case xbf.StartObject:
		t, err := w.resolveType(n.Type)
		if err != nil {
			return err
		}
		w.push(Frame{Object: w.session.CreateFromType(t), Type: t})
	case xbf.GetObject:
		return w.getObject()
	case xbf.EndObject:
		return w.endObject()
	case xbf.StartMember:
		top := w.top()
		if top == nil || len(w.stack) == w.seed {
			return fmt.Errorf("%w: member outside of an object", ErrStructure)
		}
		p, err := w.resolveProperty(n.Property)
		if err != nil {
			return err
		}
		top.Member = p
	case xbf.EndMember:
		top := w.top()
		if top == nil || len(w.stack) == w.seed || top.Member == nil {
			return fmt.Errorf("%w: end of member without a member", ErrStructure)
		}
		top.Member = nil
	case xbf.ValueNode:
		v, err := w.convert(n.Value)
		if err != nil {
			return err
		}
		if len(w.stack) == w.seed {
			// a stream that builds a plain value
			w.result, w.done = v, true
			return nil
		}
		top := w.top()
		if top.Member == nil {
			return fmt.Errorf("%w: value outside of a member", ErrStructure)
		}
		return w.assign(top, v)
	case xbf.NamespaceDeclaration:
		w.namespaces[n.Prefix] = n.Namespace
	case xbf.SetCustomRuntimeData:
		return w.customRuntimeData(n.Data)
	case xbf.LineInfo:
		w.line, w.column = n.Line, n.Column
	case xbf.ConnectEvent:
		return w.connectEvent(n)
	default:
		return fmt.Errorf("%w: unexpected %s node", ErrStructure, n.Kind)
	}
	return nil
}

// getObject pushes the existing value of the current member, so that
// its content is added to it rather than to a new instance.
func (w *Writer) getObject() error {
	top := w.top()
	if top == nil || len(w.stack) == w.seed || top.Member == nil {
		return fmt.Errorf("%w: get object outside of a member", ErrStructure)
	}
	obj, ok := top.Object.(*xaml.Object)
	if !ok {
		return fmt.Errorf("%w: get object on %T", ErrStructure, top.Object)
	}
	v, has := obj.Value(top.Member)
	if !has || v == nil {
		v = w.session.CreateFromType(top.Member.Type)
		obj.SetValue(top.Member, v)
	}
	w.push(Frame{Object: v, Type: instanceType(v), Reused: true})
	return nil
}

func (w *Writer) endObject() error {
	if len(w.stack) <= w.seed {
		return fmt.Errorf("%w: end of object without an object", ErrStructure)
	}
	f := w.pop()
	if len(w.stack) == w.seed {
		w.result, w.done = f.Object, true
		return nil
	}
	if f.Reused {
		return nil
	}
	return w.assign(w.top(), f.Object)
}

func (w *Writer) connectEvent(n *xbf.Node) error {
	top := w.top()
	if top == nil || len(w.stack) == w.seed {
		return fmt.Errorf("%w: event outside of an object", ErrStructure)
	}
	obj, ok := top.Object.(*xaml.Object)
	if !ok {
		return fmt.Errorf("%w: event %s on %T", ErrStructure, n.Event, top.Object)
	}
	ev, err := w.session.EventByIndex(stable.EventIndex(n.Event.Index()))
	if err != nil {
		return err
	}
	obj.Events.Set(ev, n.Handler)
	return nil
}

// resolveType returns the session type for an encoded type id.
func (w *Writer) resolveType(id xbf.ID) (*xaml.Type, error) {
	if id.IsStable() {
		return w.session.TypeByIndex(stable.TypeIndex(id.Index()))
	}
	e := w.file.Types[id]
	return w.session.TypeFromInfo(stable.TypeInfo{Name: w.file.TypeFullName(uint16(id)), Flags: e.Flags}), nil
}

// resolveProperty returns the session property for an encoded property id.
func (w *Writer) resolveProperty(id xbf.ID) (*xaml.Property, error) {
	if id.IsStable() {
		return w.session.PropertyByIndex(stable.PropertyIndex(id.Index()))
	}
	e := w.file.Properties[id]
	var decl, typ *xaml.Type
	var err error
	if e.DeclaringType != xbf.NoID {
		if decl, err = w.resolveType(e.DeclaringType); err != nil {
			return nil, err
		}
	}
	if e.PropertyType != xbf.NoID {
		if typ, err = w.resolveType(e.PropertyType); err != nil {
			return nil, err
		}
	}
	return w.session.PropertyWithFlags(decl, typ, e.Name, e.Flags), nil
}

// convert materializes an encoded value.
func (w *Writer) convert(v xbf.Value) (any, error) {
	switch v.Kind {
	case xbf.ValueNull:
		return nil, nil
	case xbf.ValueBool:
		return v.Bool, nil
	case xbf.ValueInt32:
		return v.Int, nil
	case xbf.ValueFloat:
		return float64(v.Float), nil
	case xbf.ValueString:
		return v.Text, nil
	case xbf.ValueEnum:
		t, err := w.resolveType(v.Type)
		if err != nil {
			return nil, err
		}
		return xaml.EnumValue{Type: t, Value: v.Enum}, nil
	case xbf.ValueType:
		return w.resolveType(v.Type)
	case xbf.ValueProperty:
		return w.resolveProperty(v.Property)
	case xbf.ValueThickness:
		t := v.Thickness
		return xaml.Thickness{Left: float64(t[0]), Top: float64(t[1]), Right: float64(t[2]), Bottom: float64(t[3])}, nil
	case xbf.ValueColor:
		return xaml.Color(v.Color), nil
	}
	return nil, fmt.Errorf("%w: value of kind %s", ErrStructure, v.Kind)
}

// instanceType returns the type of a materialized value, or nil for
// plain values.
func instanceType(v any) *xaml.Type {
	if in, ok := v.(xaml.Instance); ok {
		return in.XamlType()
	}
	return nil
}
