// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xaml

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/microsoft/microsoft-ui-xaml-sub032/stable"
)

// Type represents a XAML type.
type Type struct {
	// FullName is the namespace-qualified name of the type
	// (eg: Microsoft.UI.Xaml.Controls.Button)
	FullName string

	// Base is the base type, or nil for root types and for
	// custom types whose base is not known to the reader.
	Base *Type

	// Index is the stable index of the type, or [stable.TypeNone]
	// for types that are not stable-indexed.
	Index stable.TypeIndex

	IsCollection      bool
	IsDictionary      bool
	IsMarkupExtension bool

	// ID is the unique type ID number within the session
	ID uint64
}

func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	return t.FullName
}

// Name returns the short name of the type, without the namespace.
func (t *Type) Name() string {
	li := strings.LastIndex(t.FullName, ".")
	return t.FullName[li+1:]
}

// Namespace returns the namespace part of the full name,
// which is empty for unqualified names.
func (t *Type) Namespace() string {
	li := strings.LastIndex(t.FullName, ".")
	if li < 0 {
		return ""
	}
	return t.FullName[:li]
}

// Equal returns whether the two types have the same full name.
func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.FullName == o.FullName
}

// IsAssignableFrom returns true if a value of type o can be used where
// this type is expected: o is this type or derives from it through
// its base type chain.
func (t *Type) IsAssignableFrom(o *Type) bool {
	for c := o; c != nil; c = c.Base {
		if t.Equal(c) {
			return true
		}
	}
	return false
}

// IsDerivedFrom returns true if this type is base or has base
// anywhere on its base type chain.
func (t *Type) IsDerivedFrom(base *Type) bool {
	return base != nil && base.IsAssignableFrom(t)
}

// TypeByFullName returns the type with the given full name, registering
// it on first use. Names that are in the stable table resolve to the
// stable type, with its base chain; all other names yield a custom type
// with no known base.
func (s *Session) TypeByFullName(name string) *Type {
	if t := s.cachedType(name); t != nil {
		return t
	}
	if idx, ok := stable.TypeIndexByName(name); ok {
		if t, err := s.TypeByIndex(idx); err == nil {
			return t
		}
	}
	slog.Debug("xaml: registering custom type", "name", name)
	return s.addType(&Type{FullName: name})
}

// TypeByIndex returns the type with the given stable index. It returns
// an error wrapping [ErrUnknownTypeIndex] if the index is not in the
// stable table; that is never recoverable, since it means the binary
// was produced against different metadata.
func (s *Session) TypeByIndex(idx stable.TypeIndex) (*Type, error) {
	s.typesMu.RLock()
	t, ok := s.typesByIndex[idx]
	s.typesMu.RUnlock()
	if ok {
		return t, nil
	}
	info, ok := stable.LookupType(idx)
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownTypeIndex, idx)
	}
	return s.register(idx, info)
}

// TypeFromInfo returns the type described by the given info, registering
// it on first use. An info whose name is in the stable table yields the
// stable type. A base index that cannot be resolved is logged and the
// type is registered without a base.
func (s *Session) TypeFromInfo(info stable.TypeInfo) *Type {
	if t := s.cachedType(info.Name); t != nil {
		return t
	}
	if idx, ok := stable.TypeIndexByName(info.Name); ok {
		if t, err := s.TypeByIndex(idx); err == nil {
			return t
		}
	}
	t, err := s.register(stable.TypeNone, info)
	if errors.Log(err) != nil {
		info.Base = stable.TypeNone
		t, _ = s.register(stable.TypeNone, info)
	}
	return t
}

func (s *Session) cachedType(name string) *Type {
	s.typesMu.RLock()
	defer s.typesMu.RUnlock()
	return s.types[name]
}

// register builds a type from its table entry. The base chain is
// resolved before taking the write lock.
func (s *Session) register(idx stable.TypeIndex, info stable.TypeInfo) (*Type, error) {
	var base *Type
	if info.Base != stable.TypeNone {
		b, err := s.TypeByIndex(info.Base)
		if err != nil {
			return nil, fmt.Errorf("base type of %s: %w", info.Name, err)
		}
		base = b
	}
	t := &Type{
		FullName:          info.Name,
		Base:              base,
		Index:             idx,
		IsCollection:      info.Flags.HasFlag(stable.TypeIsCollection),
		IsDictionary:      info.Flags.HasFlag(stable.TypeIsDictionary),
		IsMarkupExtension: info.Flags.HasFlag(stable.TypeIsMarkupExtension),
	}
	return s.addType(t), nil
}

// addType adds the type unless one with the same name got there first,
// and returns the registered one.
func (s *Session) addType(t *Type) *Type {
	s.typesMu.Lock()
	defer s.typesMu.Unlock()
	if ex, has := s.types[t.FullName]; has {
		return ex
	}
	s.typeID++
	t.ID = s.typeID
	s.types[t.FullName] = t
	if t.Index != stable.TypeNone {
		s.typesByIndex[t.Index] = t
	}
	return t
}
