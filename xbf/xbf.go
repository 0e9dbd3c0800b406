// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xbf decodes XBF, the compact binary encoding of a XAML object
// graph produced by the markup compiler, into a [File]: metadata tables
// plus an arena of independently addressable node streams.
//
// All integers are little-endian. A file is a fixed [Header] followed by
// the metadata section (strings, assemblies, type namespaces, types,
// properties and xml namespaces, each prefixed by a u32 count) and the
// node section (a u32 stream count, then per stream a u32 byte size and
// that many bytes of nodes). A token is the offset of a stream's size
// field from the start of the node section; [File.FindIndex] maps it
// back to the stream.
package xbf

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/microsoft/microsoft-ui-xaml-sub032/stable"
)

//go:generate core generate

// Magic starts every XBF binary.
var Magic = [4]byte{'X', 'B', 'F', 0}

// HeaderSize is the size of the fixed [Header].
const HeaderSize = 20

var (
	// ErrFormat is returned for malformed binaries.
	ErrFormat = errors.New("xbf: malformed binary")

	// ErrUnsupportedVersion is returned for binaries whose format
	// version this reader does not decode.
	ErrUnsupportedVersion = errors.New("xbf: unsupported format version")

	// ErrUnknownToken is returned when a token does not locate a stream.
	ErrUnknownToken = errors.New("xbf: token does not locate a node stream")
)

// ID is an encoded reference to a type, property or event. IDs with
// the high bit set carry a stable index in the low 15 bits; the others
// index the file's own tables.
type ID uint16

const (
	// NoID is the encoded "none" reference.
	NoID ID = 0xFFFF

	stableFlag ID = 0x8000
)

// StableType returns the ID encoding the given stable type index.
func StableType(idx stable.TypeIndex) ID { return ID(idx) | stableFlag }

// StableProperty returns the ID encoding the given stable property index.
func StableProperty(idx stable.PropertyIndex) ID { return ID(idx) | stableFlag }

// StableEvent returns the ID encoding the given stable event index.
func StableEvent(idx stable.EventIndex) ID { return ID(idx) | stableFlag }

// IsStable returns whether the ID carries a stable index.
func (id ID) IsStable() bool {
	return id != NoID && id&stableFlag != 0
}

// Index returns the stable index or table index carried by the ID.
func (id ID) Index() uint16 {
	return uint16(id &^ stableFlag)
}

func (id ID) String() string {
	switch {
	case id == NoID:
		return "none"
	case id.IsStable():
		return fmt.Sprintf("stable:%d", id.Index())
	}
	return fmt.Sprintf("table:%d", id.Index())
}
