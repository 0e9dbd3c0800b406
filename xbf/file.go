// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xbf

import (
	"fmt"
	"os"

	"cogentcore.org/core/base/errors"
	"github.com/Masterminds/semver/v3"
	"github.com/microsoft/microsoft-ui-xaml-sub032/stable"
	"golang.org/x/text/encoding/unicode"
)

// supportedVersions is the range of format versions this reader decodes.
var supportedVersions = errors.Must1(semver.NewConstraint(">= 2.0, < 3.0"))

// Header is the fixed header at the start of every binary.
type Header struct {
	Magic        [4]byte
	MetadataSize uint32
	NodeSize     uint32
	MajorVersion uint32
	MinorVersion uint32
}

// Version returns the format version of the header.
func (h *Header) Version() *semver.Version {
	return semver.New(uint64(h.MajorVersion), uint64(h.MinorVersion), 0, "", "")
}

// Assembly is an entry of the assembly table.
type Assembly struct {
	Kind uint16
	Name string
}

// TypeNamespace is an entry of the type namespace table.
type TypeNamespace struct {
	// Assembly indexes [File.Assemblies].
	Assembly uint16
	Name     string
}

// TypeEntry is an entry of the file's own type table, for types that
// are not stable-indexed.
type TypeEntry struct {
	Flags stable.TypeFlags

	// Namespace indexes [File.TypeNamespaces].
	Namespace uint16
	Name      string
}

// PropertyEntry is an entry of the file's own property table, for
// properties that are not stable-indexed.
type PropertyEntry struct {
	Flags         stable.PropertyFlags
	DeclaringType ID

	// PropertyType is [NoID] when the file does not record it.
	PropertyType ID
	Name         string
}

// File is a decoded XBF binary.
type File struct {
	Header Header

	Strings        []string
	Assemblies     []Assembly
	TypeNamespaces []TypeNamespace
	Types          []TypeEntry
	Properties     []PropertyEntry
	XmlNamespaces  []string

	// Streams are the node streams; stream 0 is the main object graph.
	Streams []*Stream

	// tokens maps a stream token to its index in Streams.
	tokens map[uint32]int
}

// Open reads and decodes the binary at the given path.
func Open(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a complete binary.
func Parse(b []byte) (*File, error) {
	f := &File{}
	r := newReader(b, 0)
	h := &f.Header
	copy(h.Magic[:], r.take(4))
	h.MetadataSize = r.u32()
	h.NodeSize = r.u32()
	h.MajorVersion = r.u32()
	h.MinorVersion = r.u32()
	if r.err != nil {
		return nil, r.err
	}
	if h.Magic != Magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrFormat, h.Magic[:])
	}
	if !supportedVersions.Check(h.Version()) {
		return nil, fmt.Errorf("%w %d.%d", ErrUnsupportedVersion, h.MajorVersion, h.MinorVersion)
	}
	meta := r.take(int(h.MetadataSize))
	nodes := r.take(int(h.NodeSize))
	if r.err != nil {
		return nil, r.err
	}
	if err := f.readMetadata(newReader(meta, HeaderSize)); err != nil {
		return nil, err
	}
	if err := f.readNodeSection(newReader(nodes, HeaderSize+int(h.MetadataSize))); err != nil {
		return nil, err
	}
	if err := f.checkTokens(); err != nil {
		return nil, err
	}
	return f, nil
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

func (f *File) readMetadata(r *reader) error {
	dec := utf16le.NewDecoder()
	n := r.count(4)
	f.Strings = make([]string, 0, n)
	for range n {
		units := r.u32()
		if uint64(units)*2 > uint64(r.remaining()) {
			r.fail("string of %d code units exceeds the metadata", units)
			break
		}
		s, err := dec.Bytes(r.take(int(units) * 2))
		if err != nil {
			r.fail("string %d: %v", len(f.Strings), err)
			break
		}
		f.Strings = append(f.Strings, string(s))
	}

	n = r.count(4)
	for range n {
		f.Assemblies = append(f.Assemblies, Assembly{Kind: r.u16(), Name: f.readString(r)})
	}
	n = r.count(4)
	for range n {
		ns := TypeNamespace{Assembly: r.u16(), Name: f.readString(r)}
		if r.err == nil && int(ns.Assembly) >= len(f.Assemblies) {
			r.fail("type namespace %q: assembly %d out of range", ns.Name, ns.Assembly)
		}
		f.TypeNamespaces = append(f.TypeNamespaces, ns)
	}
	n = r.count(6)
	for range n {
		t := TypeEntry{Flags: stable.TypeFlags(r.u16()), Namespace: r.u16(), Name: f.readString(r)}
		if r.err == nil && int(t.Namespace) >= len(f.TypeNamespaces) {
			r.fail("type %q: namespace %d out of range", t.Name, t.Namespace)
		}
		f.Types = append(f.Types, t)
	}
	n = r.count(8)
	for range n {
		p := PropertyEntry{Flags: stable.PropertyFlags(r.u16())}
		p.DeclaringType = f.readOptionalTypeID(r)
		p.PropertyType = f.readOptionalTypeID(r)
		p.Name = f.readString(r)
		f.Properties = append(f.Properties, p)
	}
	n = r.count(2)
	for range n {
		f.XmlNamespaces = append(f.XmlNamespaces, f.readString(r))
	}
	if r.err == nil && r.remaining() != 0 {
		r.fail("%d trailing metadata bytes", r.remaining())
	}
	return r.err
}

func (f *File) readNodeSection(r *reader) error {
	n := r.count(4)
	f.tokens = make(map[uint32]int, n)
	for i := range n {
		tok := uint32(r.off)
		size := r.u32()
		body := r.take(int(size))
		if r.err != nil {
			return r.err
		}
		sr := newReader(body, r.pos()-int(size))
		s := &Stream{Index: i, Token: tok, Nodes: f.readNodes(sr, r.base)}
		if sr.err != nil {
			return sr.err
		}
		f.tokens[tok] = i
		f.Streams = append(f.Streams, s)
	}
	if r.err == nil && r.remaining() != 0 {
		r.fail("%d trailing node bytes", r.remaining())
	}
	if r.err == nil && len(f.Streams) == 0 {
		r.fail("no node streams")
	}
	return r.err
}

// checkTokens verifies that every token named by custom runtime data
// locates a stream.
func (f *File) checkTokens() error {
	for _, s := range f.Streams {
		for i := range s.Nodes {
			nd := &s.Nodes[i]
			if nd.Kind != SetCustomRuntimeData {
				continue
			}
			for _, tok := range nd.Data.Tokens() {
				if _, ok := f.tokens[tok]; !ok {
					return fmt.Errorf("%w %d in %s data at node offset %d", ErrUnknownToken, tok, nd.Data.Kind(), nd.Offset)
				}
			}
		}
	}
	return nil
}

// FindIndex returns the index in [File.Streams] of the stream that the
// token locates.
func (f *File) FindIndex(token uint32) (int, bool) {
	i, ok := f.tokens[token]
	return i, ok
}

// StreamAt returns the stream that the token locates.
func (f *File) StreamAt(token uint32) (*Stream, error) {
	i, ok := f.FindIndex(token)
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownToken, token)
	}
	return f.Streams[i], nil
}

// Main returns the stream of the main object graph.
func (f *File) Main() *Stream {
	return f.Streams[0]
}

// TypeFullName returns the full name of an entry of the file's own
// type table.
func (f *File) TypeFullName(idx uint16) string {
	t := f.Types[idx]
	ns := f.TypeNamespaces[t.Namespace].Name
	if ns == "" {
		return t.Name
	}
	return ns + "." + t.Name
}

func (f *File) readString(r *reader) string {
	id := r.u16()
	if r.err != nil {
		return ""
	}
	if int(id) >= len(f.Strings) {
		r.fail("string id %d out of range", id)
		return ""
	}
	return f.Strings[id]
}

func (f *File) readXmlNamespace(r *reader) string {
	id := r.u16()
	if r.err != nil {
		return ""
	}
	if int(id) >= len(f.XmlNamespaces) {
		r.fail("xml namespace id %d out of range", id)
		return ""
	}
	return f.XmlNamespaces[id]
}

func (f *File) readTypeID(r *reader) ID {
	id := f.readOptionalTypeID(r)
	if r.err == nil && id == NoID {
		r.fail("missing type id")
	}
	return id
}

func (f *File) readOptionalTypeID(r *reader) ID {
	id := r.id()
	if r.err == nil && id != NoID && !id.IsStable() && int(id) >= len(f.Types) {
		r.fail("type id %d out of range", id)
	}
	return id
}

func (f *File) readPropertyID(r *reader) ID {
	id := r.id()
	if r.err != nil {
		return id
	}
	switch {
	case id == NoID:
		r.fail("missing property id")
	case !id.IsStable() && int(id) >= len(f.Properties):
		r.fail("property id %d out of range", id)
	}
	return id
}

// String returns a short description of the file, for logging.
func (f *File) String() string {
	return fmt.Sprintf("XBF %s: %d strings, %d types, %d properties, %d streams",
		f.Header.Version(), len(f.Strings), len(f.Types), len(f.Properties), len(f.Streams))
}
