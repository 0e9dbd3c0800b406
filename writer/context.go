// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package writer

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/jinzhu/copier"
	"github.com/microsoft/microsoft-ui-xaml-sub032/xaml"
	"github.com/microsoft/microsoft-ui-xaml-sub032/xbf"
)

// Frame is one open object on the writer stack.
type Frame struct {
	// Object is the instance being built.
	Object any

	// Type is the type of Object, nil for plain values.
	Type *xaml.Type

	// Member is the member currently being set, if any.
	Member *xaml.Property

	// Reused is set for frames pushed by GetObject, whose object
	// is already assigned to the parent member.
	Reused bool
}

// Context is an immutable snapshot of a writer stack. A nested writer
// seeded with it sees the enclosing objects, for ambient lookups, but
// never changes the stack it was captured from.
type Context struct {
	frames []Frame
}

// captureOptions copy frames field by field while keeping the
// session's types and properties shared rather than duplicated.
var captureOptions = copier.Option{
	CaseSensitive: true,
	Converters: []copier.TypeConverter{
		{SrcType: (*xaml.Type)(nil), DstType: (*xaml.Type)(nil), Fn: same},
		{SrcType: (*xaml.Property)(nil), DstType: (*xaml.Property)(nil), Fn: same},
	},
}

func same(src any) (any, error) { return src, nil }

// CaptureContext returns a snapshot of the current stack.
func (w *Writer) CaptureContext() Context {
	var frames []Frame
	errors.Log(copier.CopyWithOption(&frames, &w.stack, captureOptions))
	return Context{frames: frames}
}

// Pop returns the context without its top frame.
func (c Context) Pop() Context {
	if len(c.frames) == 0 {
		return c
	}
	n := len(c.frames) - 1
	return Context{frames: c.frames[:n:n]}
}

// Depth returns the number of frames in the context.
func (c Context) Depth() int {
	return len(c.frames)
}

// Top returns a copy of the top frame of the context.
func (c Context) Top() (Frame, bool) {
	if len(c.frames) == 0 {
		return Frame{}, false
	}
	return c.frames[len(c.frames)-1], true
}

// Realize builds the value of the stream that the token locates, with a
// fresh [Writer] seeded with the given context. It returns the value
// completed at the depth of the context. When that value is an object,
// the names registered while building it are in its Names, for the
// caller to transfer into its own namescope.
func Realize(s *xaml.Session, f *xbf.File, ctx Context, token uint32) (any, error) {
	v, _, err := realize(s, f, ctx, token)
	return v, err
}

func realize(s *xaml.Session, f *xbf.File, ctx Context, token uint32) (any, *Writer, error) {
	st, err := f.StreamAt(token)
	if err != nil {
		return nil, nil, err
	}
	w := New(s, f)
	w.stack = append(make([]Frame, 0, len(ctx.frames)+8), ctx.frames...)
	w.seed = len(ctx.frames)
	v, err := w.Write(st)
	if err != nil {
		return nil, nil, fmt.Errorf("realizing token %d: %w", token, err)
	}
	if obj, ok := v.(*xaml.Object); ok && w.names.Len() > 0 {
		obj.Names = w.names
	}
	return v, w, nil
}

// realize builds the stream that the token locates in the context of
// the current stack. Namespaces declared in that stream are added to
// the writer's own, without replacing prefixes it already has.
func (w *Writer) realize(ctx Context, token uint32) (any, error) {
	v, nested, err := realize(w.session, w.file, ctx, token)
	if err != nil {
		return nil, err
	}
	for prefix, uri := range nested.namespaces {
		if _, has := w.namespaces[prefix]; !has {
			w.namespaces[prefix] = uri
		}
	}
	return v, nil
}

// TransferNamescopeFromObject moves every name registered in the
// namescope of the given object into the namescope of the writer, and
// clears the object's namescope, so that a later transfer of the same
// object registers nothing again.
func (w *Writer) TransferNamescopeFromObject(obj *xaml.Object) error {
	if obj == nil || obj.Names.Len() == 0 {
		return nil
	}
	var errs []error
	for name, v := range obj.Names.All() {
		if err := w.names.Register(name, v); err != nil {
			errs = append(errs, err)
		}
	}
	obj.Names.Clear()
	return errors.Join(errs...)
}
