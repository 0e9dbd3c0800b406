// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stable provides the version-stable index tables that map the
// small integers embedded in XBF binaries to fully-qualified framework
// type, property and event names. The numeric values of every index are
// part of the binary format: they are never renumbered, only appended.
package stable

import (
	"fmt"
	"sort"
)

// TypeIndex is the stable index of a well-known framework type.
type TypeIndex uint16

// PropertyIndex is the stable index of a well-known framework property.
type PropertyIndex uint16

// EventIndex is the stable index of a well-known framework event.
type EventIndex uint16

//go:generate core generate

// TypeFlags are the boolean attributes recorded for a type, as bit
// flags indexed by the constants below.
type TypeFlags int64 //enums:bitflag

const (
	// TypeIsCollection marks list-like types whose children are items.
	TypeIsCollection TypeFlags = iota

	// TypeIsDictionary marks keyed collections such as ResourceDictionary.
	TypeIsDictionary

	// TypeIsMarkupExtension marks types whose instances provide a value
	// instead of being the value (StaticResource and friends).
	TypeIsMarkupExtension
)

// TypeFlagsOf returns the flags with the given bits set.
func TypeFlagsOf(flags ...TypeFlags) TypeFlags {
	var f TypeFlags
	for _, fl := range flags {
		f.SetFlag(true, fl)
	}
	return f
}

// PropertyFlags are the boolean attributes recorded for a property,
// as bit flags indexed by the constants below.
type PropertyFlags int64 //enums:bitflag

const (
	// PropertyIsAttached marks owner-qualified properties like Grid.Row.
	PropertyIsAttached PropertyFlags = iota

	// PropertyIsVisualTree marks properties whose values are visual children.
	PropertyIsVisualTree
)

// PropertyFlagsOf returns the flags with the given bits set.
func PropertyFlagsOf(flags ...PropertyFlags) PropertyFlags {
	var f PropertyFlags
	for _, fl := range flags {
		f.SetFlag(true, fl)
	}
	return f
}

// TypeInfo is the table entry for a [TypeIndex].
type TypeInfo struct {
	// Name is the fully-qualified type name.
	Name string

	// Base is the stable index of the base type, or [TypeNone] for roots.
	Base TypeIndex

	Flags TypeFlags
}

// PropertyInfo is the table entry for a [PropertyIndex].
type PropertyInfo struct {
	// Name is the fully-qualified property name, for example
	// Microsoft.UI.Xaml.Controls.ContentControl.Content, or a bare
	// directive name such as x:Name.
	Name string

	// DeclaringType is [TypeNone] for global properties.
	DeclaringType TypeIndex

	PropertyType TypeIndex

	Flags PropertyFlags
}

// EventInfo is the table entry for an [EventIndex].
type EventInfo struct {
	Name          string
	DeclaringType TypeIndex
}

var (
	typesByName      map[string]TypeIndex
	propertiesByName map[string]PropertyIndex
)

func init() {
	typesByName = make(map[string]TypeIndex, len(typeTable))
	for i, ti := range typeTable {
		if ti.Name != "" {
			typesByName[ti.Name] = TypeIndex(i)
		}
	}
	propertiesByName = make(map[string]PropertyIndex, len(propertyTable))
	for i, pi := range propertyTable {
		if pi.Name != "" {
			propertiesByName[pi.Name] = PropertyIndex(i)
		}
	}
}

// LookupType returns the table entry for the given index,
// and false if the index is not in the table.
func LookupType(idx TypeIndex) (TypeInfo, bool) {
	if idx == TypeNone || int(idx) >= len(typeTable) {
		return TypeInfo{}, false
	}
	return typeTable[idx], true
}

// LookupProperty returns the table entry for the given index,
// and false if the index is not in the table.
func LookupProperty(idx PropertyIndex) (PropertyInfo, bool) {
	if idx == PropertyNone || int(idx) >= len(propertyTable) {
		return PropertyInfo{}, false
	}
	return propertyTable[idx], true
}

// LookupEvent returns the table entry for the given index,
// and false if the index is not in the table.
func LookupEvent(idx EventIndex) (EventInfo, bool) {
	if idx == EventNone || int(idx) >= len(eventTable) {
		return EventInfo{}, false
	}
	return eventTable[idx], true
}

// TypeIndexByName returns the stable index of the type with the
// given full name.
func TypeIndexByName(name string) (TypeIndex, bool) {
	idx, ok := typesByName[name]
	return idx, ok
}

// PropertyIndexByName returns the stable index of the property with
// the given full name.
func PropertyIndexByName(name string) (PropertyIndex, bool) {
	idx, ok := propertiesByName[name]
	return idx, ok
}

// TypeNames returns the full names of all stable types, sorted.
func TypeNames() []string {
	names := make([]string, 0, len(typesByName))
	for nm := range typesByName {
		names = append(names, nm)
	}
	sort.Strings(names)
	return names
}

func (i TypeIndex) String() string {
	if ti, ok := LookupType(i); ok {
		return ti.Name
	}
	return fmt.Sprintf("TypeIndex(%d)", uint16(i))
}

func (i PropertyIndex) String() string {
	if pi, ok := LookupProperty(i); ok {
		return pi.Name
	}
	return fmt.Sprintf("PropertyIndex(%d)", uint16(i))
}

func (i EventIndex) String() string {
	if ei, ok := LookupEvent(i); ok {
		return ei.Name
	}
	return fmt.Sprintf("EventIndex(%d)", uint16(i))
}
