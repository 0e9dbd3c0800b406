// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xaml

import (
	"fmt"
	"strings"

	"github.com/microsoft/microsoft-ui-xaml-sub032/stable"
)

// placeholderTypePrefix prefixes the synthesized type of a property
// whose type is not known.
const placeholderTypePrefix = "TypeOfProperty_"

// Property represents a XAML property.
type Property struct {
	// DeclaringType is nil for global properties such as the
	// x: directives and synthetic markers.
	DeclaringType *Type

	// Name is the property name relative to the declaring type;
	// attached properties keep their owner, as in Grid.Row.
	Name string

	// Type is the type of the property values. It is never nil:
	// a placeholder type is used when the real one is unknown.
	Type *Type

	// Index is the stable index, or [stable.PropertyNone].
	Index stable.PropertyIndex

	IsAttached           bool
	IsVisualTreeProperty bool
}

// FullName returns the namespace-qualified name of the property.
func (p *Property) FullName() string {
	return propertyFullName(p.DeclaringType, p.Name)
}

func (p *Property) String() string {
	return p.FullName()
}

// IsDirective returns whether this is one of the global x: directives.
func (p *Property) IsDirective() bool {
	return p.DeclaringType == nil && strings.HasPrefix(p.Name, "x:")
}

// IsName returns whether assigning this property names the object,
// as x:Name and FrameworkElement.Name do.
func (p *Property) IsName() bool {
	return p.Name == "x:Name" || (p.Name == "Name" && p.DeclaringType != nil)
}

func propertyFullName(decl *Type, name string) string {
	if decl == nil {
		return name
	}
	if strings.Contains(name, ".") {
		ns := decl.Namespace()
		if ns == "" {
			return name
		}
		return ns + "." + name
	}
	return decl.FullName + "." + name
}

// PropertyByName returns the property with the given name on the given
// declaring type, registering it on first use. If propertyType is nil a
// placeholder type named TypeOfProperty_<full name> is used. A name that
// contains a '.' is an attached property.
func (s *Session) PropertyByName(declaring, propertyType *Type, name string) *Property {
	return s.PropertyWithFlags(declaring, propertyType, name, 0)
}

// PropertyWithFlags is [Session.PropertyByName] for a property described
// by a file's property table. The flags apply when the property is first
// registered; a property that is already known keeps its own.
func (s *Session) PropertyWithFlags(declaring, propertyType *Type, name string, flags stable.PropertyFlags) *Property {
	full := propertyFullName(declaring, name)
	if p := s.cachedProperty(full); p != nil {
		return p
	}
	if idx, ok := stable.PropertyIndexByName(full); ok {
		if p, err := s.PropertyByIndex(idx); err == nil {
			return p
		}
	}
	if propertyType == nil {
		propertyType = s.TypeByFullName(placeholderTypePrefix + full)
	}
	return s.addProperty(&Property{
		DeclaringType:        declaring,
		Name:                 name,
		Type:                 propertyType,
		IsAttached:           strings.Contains(name, ".") || flags.HasFlag(stable.PropertyIsAttached),
		IsVisualTreeProperty: flags.HasFlag(stable.PropertyIsVisualTree),
	})
}

// PropertyByIndex returns the property with the given stable index.
// It returns an error wrapping [ErrUnknownPropertyIndex] if the index
// is not in the stable table.
func (s *Session) PropertyByIndex(idx stable.PropertyIndex) (*Property, error) {
	s.propertiesMu.RLock()
	p, ok := s.propertiesByIndex[idx]
	s.propertiesMu.RUnlock()
	if ok {
		return p, nil
	}
	info, ok := stable.LookupProperty(idx)
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownPropertyIndex, idx)
	}

	segs := strings.Split(info.Name, ".")
	name := segs[len(segs)-1]
	if info.Flags.HasFlag(stable.PropertyIsAttached) && len(segs) > 1 {
		name = segs[len(segs)-2] + "." + name
	}

	var decl, typ *Type
	var err error
	if info.DeclaringType != stable.TypeNone {
		decl, err = s.TypeByIndex(info.DeclaringType)
		if err != nil {
			return nil, fmt.Errorf("declaring type of %s: %w", info.Name, err)
		}
	}
	if info.PropertyType != stable.TypeNone {
		typ, err = s.TypeByIndex(info.PropertyType)
		if err != nil {
			return nil, fmt.Errorf("type of %s: %w", info.Name, err)
		}
	} else {
		typ = s.TypeByFullName(placeholderTypePrefix + info.Name)
	}
	return s.addProperty(&Property{
		DeclaringType:        decl,
		Name:                 name,
		Type:                 typ,
		Index:                idx,
		IsAttached:           strings.Contains(name, "."),
		IsVisualTreeProperty: info.Flags.HasFlag(stable.PropertyIsVisualTree),
	}), nil
}

func (s *Session) cachedProperty(full string) *Property {
	s.propertiesMu.RLock()
	defer s.propertiesMu.RUnlock()
	return s.properties[full]
}

func (s *Session) addProperty(p *Property) *Property {
	full := p.FullName()
	s.propertiesMu.Lock()
	defer s.propertiesMu.Unlock()
	if ex, has := s.properties[full]; has {
		return ex
	}
	s.properties[full] = p
	if p.Index != stable.PropertyNone {
		s.propertiesByIndex[p.Index] = p
	}
	return p
}
