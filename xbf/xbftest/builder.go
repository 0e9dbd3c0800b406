// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xbftest encodes synthetic XBF binaries for tests.
//
// A [Builder] interns strings and table entries as they are used, and
// each [Stream] appends nodes to its own buffer. Tokens that refer to
// other streams are written as placeholders and patched by
// [Builder.Bytes] once the layout of the node section is known.
package xbftest

import (
	"encoding/binary"
	"math"

	"github.com/microsoft/microsoft-ui-xaml-sub032/stable"
	"github.com/microsoft/microsoft-ui-xaml-sub032/xbf"
	"golang.org/x/text/encoding/unicode"
)

// Builder builds an XBF binary.
type Builder struct {
	// Major and Minor are the format version written to the header.
	Major, Minor uint32

	strings   []string
	stringIDs map[string]uint16

	assemblies     []uint16
	typeNamespaces map[string]uint16
	nsNames        []uint16
	types          [][3]uint16
	properties     [][4]uint16
	xmlNamespaces  []uint16

	streams []*Stream
}

// New returns a [Builder] for format version 2.1.
func New() *Builder {
	return &Builder{Major: 2, Minor: 1, stringIDs: map[string]uint16{}, typeNamespaces: map[string]uint16{}}
}

// Intern returns the string table id of s, adding it on first use.
func (b *Builder) Intern(s string) uint16 {
	if id, ok := b.stringIDs[s]; ok {
		return id
	}
	id := uint16(len(b.strings))
	b.strings = append(b.strings, s)
	b.stringIDs[s] = id
	return id
}

// Type adds an entry to the type table and returns its id.
func (b *Builder) Type(namespace, name string, flags stable.TypeFlags) xbf.ID {
	if len(b.assemblies) == 0 {
		b.assemblies = append(b.assemblies, b.Intern("App"))
	}
	ns, ok := b.typeNamespaces[namespace]
	if !ok {
		ns = uint16(len(b.nsNames))
		b.typeNamespaces[namespace] = ns
		b.nsNames = append(b.nsNames, b.Intern(namespace))
	}
	b.types = append(b.types, [3]uint16{uint16(flags), ns, b.Intern(name)})
	return xbf.ID(len(b.types) - 1)
}

// Property adds an entry to the property table and returns its id.
// The property type may be [xbf.NoID].
func (b *Builder) Property(declaring, propertyType xbf.ID, name string, flags stable.PropertyFlags) xbf.ID {
	b.properties = append(b.properties, [4]uint16{uint16(flags), uint16(declaring), uint16(propertyType), b.Intern(name)})
	return xbf.ID(len(b.properties) - 1)
}

func (b *Builder) xmlNamespace(uri string) uint16 {
	id := b.Intern(uri)
	for i, x := range b.xmlNamespaces {
		if x == id {
			return uint16(i)
		}
	}
	b.xmlNamespaces = append(b.xmlNamespaces, id)
	return uint16(len(b.xmlNamespaces) - 1)
}

// Stream adds a node stream. The first stream is the main graph.
func (b *Builder) Stream() *Stream {
	s := &Stream{b: b, index: len(b.streams)}
	b.streams = append(b.streams, s)
	return s
}

// Token returns the token of the given stream in the laid out binary.
func (b *Builder) Token(s *Stream) uint32 {
	tok := uint32(4)
	for _, o := range b.streams[:s.index] {
		tok += 4 + uint32(len(o.buf))
	}
	return tok
}

// Bytes lays out and returns the complete binary.
func (b *Builder) Bytes() []byte {
	var meta []byte
	meta = u32(meta, uint32(len(b.strings)))
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	for _, s := range b.strings {
		d, err := enc.Bytes([]byte(s))
		if err != nil {
			panic(err)
		}
		meta = u32(meta, uint32(len(d)/2))
		meta = append(meta, d...)
	}
	meta = u32(meta, uint32(len(b.assemblies)))
	for _, a := range b.assemblies {
		meta = u16(meta, 0, a)
	}
	meta = u32(meta, uint32(len(b.nsNames)))
	for _, ns := range b.nsNames {
		meta = u16(meta, 0, ns)
	}
	meta = u32(meta, uint32(len(b.types)))
	for _, t := range b.types {
		meta = u16(meta, t[:]...)
	}
	meta = u32(meta, uint32(len(b.properties)))
	for _, p := range b.properties {
		meta = u16(meta, p[:]...)
	}
	meta = u32(meta, uint32(len(b.xmlNamespaces)))
	for _, x := range b.xmlNamespaces {
		meta = u16(meta, x)
	}

	var nodes []byte
	nodes = u32(nodes, uint32(len(b.streams)))
	for _, s := range b.streams {
		body := append([]byte(nil), s.buf...)
		for _, fx := range s.fixups {
			binary.LittleEndian.PutUint32(body[fx.at:], b.Token(fx.target))
		}
		nodes = u32(nodes, uint32(len(body)))
		nodes = append(nodes, body...)
	}

	out := append([]byte(nil), xbf.Magic[:]...)
	out = u32(out, uint32(len(meta)), uint32(len(nodes)), b.Major, b.Minor)
	out = append(out, meta...)
	return append(out, nodes...)
}

// File lays out the binary and decodes it.
func (b *Builder) File() (*xbf.File, error) {
	return xbf.Parse(b.Bytes())
}

type fixup struct {
	at     int
	target *Stream
}

// Stream appends the nodes of one node stream.
type Stream struct {
	b      *Builder
	index  int
	buf    []byte
	fixups []fixup
}

func (s *Stream) op(k xbf.NodeKind) *Stream {
	s.buf = append(s.buf, byte(k))
	return s
}

func (s *Stream) id(id xbf.ID) {
	s.buf = u16(s.buf, uint16(id))
}

func (s *Stream) str(v string) {
	s.buf = u16(s.buf, s.b.Intern(v))
}

func (s *Stream) token(target *Stream) {
	s.fixups = append(s.fixups, fixup{at: len(s.buf), target: target})
	s.buf = u32(s.buf, 0)
}

// StartObject appends a StartObject node.
func (s *Stream) StartObject(typ xbf.ID) *Stream {
	s.op(xbf.StartObject).id(typ)
	return s
}

// StartStable appends a StartObject node for a stable type.
func (s *Stream) StartStable(idx stable.TypeIndex) *Stream {
	return s.StartObject(xbf.StableType(idx))
}

func (s *Stream) GetObject() *Stream { return s.op(xbf.GetObject) }

func (s *Stream) EndObject() *Stream { return s.op(xbf.EndObject) }

// StartMember appends a StartMember node.
func (s *Stream) StartMember(prop xbf.ID) *Stream {
	s.op(xbf.StartMember).id(prop)
	return s
}

// Member appends a StartMember node for a stable property.
func (s *Stream) Member(idx stable.PropertyIndex) *Stream {
	return s.StartMember(xbf.StableProperty(idx))
}

func (s *Stream) EndMember() *Stream { return s.op(xbf.EndMember) }

// Value appends a Value node.
func (s *Stream) Value(v xbf.Value) *Stream {
	s.op(xbf.ValueNode).value(v)
	return s
}

// Text appends a string Value node.
func (s *Stream) Text(v string) *Stream {
	return s.Value(xbf.Value{Kind: xbf.ValueString, Text: v})
}

// SetText appends a member holding a single string value.
func (s *Stream) SetText(idx stable.PropertyIndex, v string) *Stream {
	return s.Member(idx).Text(v).EndMember()
}

func (s *Stream) value(v xbf.Value) {
	s.buf = append(s.buf, byte(v.Kind))
	switch v.Kind {
	case xbf.ValueBool:
		b := byte(0)
		if v.Bool {
			b = 1
		}
		s.buf = append(s.buf, b)
	case xbf.ValueInt32:
		s.buf = u32(s.buf, uint32(v.Int))
	case xbf.ValueFloat:
		s.buf = u32(s.buf, math.Float32bits(v.Float))
	case xbf.ValueString:
		s.str(v.Text)
	case xbf.ValueEnum:
		s.id(v.Type)
		s.buf = u32(s.buf, v.Enum)
	case xbf.ValueType:
		s.id(v.Type)
	case xbf.ValueProperty:
		s.id(v.Property)
	case xbf.ValueThickness:
		for _, f := range v.Thickness {
			s.buf = u32(s.buf, math.Float32bits(f))
		}
	case xbf.ValueColor:
		s.buf = u32(s.buf, v.Color)
	}
}

// Namespace appends a NamespaceDeclaration node.
func (s *Stream) Namespace(prefix, uri string) *Stream {
	s.op(xbf.NamespaceDeclaration)
	s.buf = u16(s.buf, s.b.xmlNamespace(uri))
	s.str(prefix)
	return s
}

// Line appends a LineInfo node.
func (s *Stream) Line(line, column uint32) *Stream {
	s.op(xbf.LineInfo)
	s.buf = u32(s.buf, line, column)
	return s
}

// Event appends a ConnectEvent node.
func (s *Stream) Event(idx stable.EventIndex, handler string) *Stream {
	s.op(xbf.ConnectEvent).id(xbf.StableEvent(idx))
	s.str(handler)
	return s
}

// Raw appends bytes verbatim.
func (s *Stream) Raw(b ...byte) *Stream {
	s.buf = append(s.buf, b...)
	return s
}

// Resource is an explicitly keyed resource whose value is built by Target.
type Resource struct {
	Key    string
	Target *Stream
}

// ImplicitResource is a resource keyed by a type.
type ImplicitResource struct {
	Type   xbf.ID
	Target *Stream
}

// ConditionalResource is a resource guarded by a predicate type.
type ConditionalResource struct {
	Key       string
	Target    *Stream
	Predicate xbf.ID
	Args      string
}

func (s *Stream) custom(k xbf.CustomKind) {
	s.op(xbf.SetCustomRuntimeData)
	s.buf = append(s.buf, byte(k))
}

// Resources appends ResourceDictionary custom runtime data.
func (s *Stream) Resources(explicit []Resource, implicit []ImplicitResource, conditional []ConditionalResource) *Stream {
	s.custom(xbf.ResourceDictionaryKind)
	s.buf = u32(s.buf, uint32(len(explicit)))
	for _, r := range explicit {
		s.str(r.Key)
		s.token(r.Target)
	}
	s.buf = u32(s.buf, uint32(len(implicit)))
	for _, r := range implicit {
		s.id(r.Type)
		s.token(r.Target)
	}
	s.buf = u32(s.buf, uint32(len(conditional)))
	for _, r := range conditional {
		s.str(r.Key)
		s.token(r.Target)
		s.id(r.Predicate)
		s.str(r.Args)
	}
	return s
}

// Deferred appends DeferredElement custom runtime data.
func (s *Stream) Deferred(name string, target *Stream, load bool) *Stream {
	s.custom(xbf.DeferredElementKind)
	s.str(name)
	s.token(target)
	b := byte(0)
	if load {
		b = 1
	}
	s.buf = append(s.buf, b)
	return s
}

// Setter is a style setter. Value is used by [xbf.SetterValue] and
// Target by every other kind.
type Setter struct {
	Kind     xbf.SetterKind
	Property xbf.ID
	Value    xbf.Value
	Target   *Stream
}

// Style appends Style custom runtime data.
func (s *Stream) Style(setters ...Setter) *Stream {
	s.custom(xbf.StyleKind)
	s.buf = u32(s.buf, uint32(len(setters)))
	for _, st := range setters {
		s.buf = append(s.buf, byte(st.Kind))
		if st.Kind != xbf.SetterTokenForSelf {
			s.id(st.Property)
		}
		if st.Kind == xbf.SetterValue {
			s.value(st.Value)
		} else {
			s.token(st.Target)
		}
	}
	return s
}

// VisualStateGroups appends VisualStateGroupCollection custom runtime data.
func (s *Stream) VisualStateGroups(target *Stream) *Stream {
	s.custom(xbf.VisualStateGroupCollectionKind)
	s.token(target)
	return s
}

func u16(b []byte, vs ...uint16) []byte {
	for _, v := range vs {
		b = binary.LittleEndian.AppendUint16(b, v)
	}
	return b
}

func u32(b []byte, vs ...uint32) []byte {
	for _, v := range vs {
		b = binary.LittleEndian.AppendUint32(b, v)
	}
	return b
}
