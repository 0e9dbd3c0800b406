// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xbf

// CustomKind identifies a [CustomRuntimeData] variant.
type CustomKind int32 //enums:enum

const (
	ResourceDictionaryKind CustomKind = iota + 1
	DeferredElementKind
	StyleKind
	VisualStateGroupCollectionKind
)

// CustomRuntimeData is the auxiliary data the compiler emits to
// reconstruct compressed encodings. It is one of
// [*ResourceDictionaryData], [*DeferredElementData], [*StyleData] and
// [*VisualStateGroupCollectionData].
type CustomRuntimeData interface {
	Kind() CustomKind

	// Tokens returns every token the data refers to.
	Tokens() []uint32
}

// Resource is an explicitly keyed resource.
type Resource struct {
	Key   string
	Token uint32
}

// ImplicitResource is a resource keyed by type, typically a style
// keyed by its target type.
type ImplicitResource struct {
	Type  ID
	Token uint32
}

// ConditionalResource is a resource guarded by a predicate.
type ConditionalResource struct {
	Key       string
	Token     uint32
	Predicate ID
	Args      string
}

// ResourceDictionaryData locates every resource of a dictionary.
type ResourceDictionaryData struct {
	Explicit    []Resource
	Implicit    []ImplicitResource
	Conditional []ConditionalResource
}

func (d *ResourceDictionaryData) Kind() CustomKind { return ResourceDictionaryKind }

func (d *ResourceDictionaryData) Tokens() []uint32 {
	var toks []uint32
	for _, r := range d.Explicit {
		toks = append(toks, r.Token)
	}
	for _, r := range d.Implicit {
		toks = append(toks, r.Token)
	}
	for _, r := range d.Conditional {
		toks = append(toks, r.Token)
	}
	return toks
}

// DeferredElementData locates the sub-stream of a deferred element.
type DeferredElementData struct {
	Name  string
	Token uint32
	Load  bool
}

func (d *DeferredElementData) Kind() CustomKind { return DeferredElementKind }

func (d *DeferredElementData) Tokens() []uint32 { return []uint32{d.Token} }

// SetterKind is how a style setter value is encoded.
type SetterKind int32 //enums:enum -trim-prefix Setter

const (
	// SetterValue has its literal value inline.
	SetterValue SetterKind = iota

	// SetterStaticResource has a StaticResource reference at its token.
	SetterStaticResource

	// SetterThemeResource has a ThemeResource reference at its token.
	SetterThemeResource

	// SetterObject has an inline object value at its token.
	SetterObject

	// SetterTokenForSelf has the whole setter at its token.
	SetterTokenForSelf
)

// Setter is one encoded style setter.
type Setter struct {
	Kind SetterKind

	// Property is the target property, [NoID] for SetterTokenForSelf.
	Property ID

	// Value is the literal value of SetterValue.
	Value Value

	// Token locates the sub-stream for all other kinds.
	Token uint32
}

// StyleData holds the setters of a style.
type StyleData struct {
	Setters []Setter
}

func (d *StyleData) Kind() CustomKind { return StyleKind }

func (d *StyleData) Tokens() []uint32 {
	var toks []uint32
	for _, s := range d.Setters {
		if s.Kind != SetterValue {
			toks = append(toks, s.Token)
		}
	}
	return toks
}

// VisualStateGroupCollectionData locates the sub-stream that builds
// a visual state group collection.
type VisualStateGroupCollectionData struct {
	Token uint32
}

func (d *VisualStateGroupCollectionData) Kind() CustomKind { return VisualStateGroupCollectionKind }

func (d *VisualStateGroupCollectionData) Tokens() []uint32 { return []uint32{d.Token} }

func (f *File) readCustomRuntimeData(r *reader) CustomRuntimeData {
	kind := CustomKind(r.u8())
	switch kind {
	case ResourceDictionaryKind:
		d := &ResourceDictionaryData{}
		n := r.count(6)
		for range n {
			d.Explicit = append(d.Explicit, Resource{Key: f.readString(r), Token: r.u32()})
		}
		n = r.count(6)
		for range n {
			d.Implicit = append(d.Implicit, ImplicitResource{Type: f.readTypeID(r), Token: r.u32()})
		}
		n = r.count(10)
		for range n {
			d.Conditional = append(d.Conditional, ConditionalResource{
				Key: f.readString(r), Token: r.u32(), Predicate: f.readTypeID(r), Args: f.readString(r),
			})
		}
		return d
	case DeferredElementKind:
		return &DeferredElementData{Name: f.readString(r), Token: r.u32(), Load: r.u8() != 0}
	case StyleKind:
		d := &StyleData{}
		n := r.count(5)
		for range n {
			s := Setter{Kind: SetterKind(r.u8()), Property: NoID}
			if s.Kind != SetterTokenForSelf {
				s.Property = f.readPropertyID(r)
			}
			switch s.Kind {
			case SetterValue:
				s.Value = f.readValue(r)
			case SetterStaticResource, SetterThemeResource, SetterObject, SetterTokenForSelf:
				s.Token = r.u32()
			default:
				r.fail("unknown setter kind %d", uint8(s.Kind))
			}
			d.Setters = append(d.Setters, s)
		}
		return d
	case VisualStateGroupCollectionKind:
		return &VisualStateGroupCollectionData{Token: r.u32()}
	}
	r.fail("unknown custom runtime data kind %d", uint8(kind))
	return nil
}
