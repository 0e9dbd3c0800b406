// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xaml

import "fmt"

// StaticResource is a {StaticResource} reference to a keyed resource.
type StaticResource struct {
	Type        *Type
	ResourceKey string
}

func (r *StaticResource) XamlType() *Type { return r.Type }

func (r *StaticResource) SetMember(p *Property, v any) error {
	return setResourceKey(&r.ResourceKey, p, v)
}

func (r *StaticResource) String() string {
	return "{StaticResource " + r.ResourceKey + "}"
}

// ThemeResource is a {ThemeResource} reference, resolved by the host
// against its theme dictionaries.
type ThemeResource struct {
	Type        *Type
	ResourceKey string
}

func (r *ThemeResource) XamlType() *Type { return r.Type }

func (r *ThemeResource) SetMember(p *Property, v any) error {
	return setResourceKey(&r.ResourceKey, p, v)
}

func (r *ThemeResource) String() string {
	return "{ThemeResource " + r.ResourceKey + "}"
}

// CustomResource is a {CustomResource} reference, resolved by the
// host's custom resource loader.
type CustomResource struct {
	Type        *Type
	ResourceKey string
}

func (r *CustomResource) XamlType() *Type { return r.Type }

func (r *CustomResource) SetMember(p *Property, v any) error {
	return setResourceKey(&r.ResourceKey, p, v)
}

func (r *CustomResource) String() string {
	return "{CustomResource " + r.ResourceKey + "}"
}

// TemplateBinding binds a template part property to a property
// of the templated control.
type TemplateBinding struct {
	Type     *Type
	Property string
}

func (b *TemplateBinding) XamlType() *Type { return b.Type }

func (b *TemplateBinding) SetMember(p *Property, v any) error {
	if p.Name != "Property" {
		return fmt.Errorf("%w %s on TemplateBinding", ErrUnknownMember, p.FullName())
	}
	switch v := v.(type) {
	case string:
		b.Property = v
	case *Property:
		b.Property = v.Name
	default:
		return fmt.Errorf("xaml: TemplateBinding.Property must be a property name, not %T", v)
	}
	return nil
}

func (b *TemplateBinding) String() string {
	return "{TemplateBinding " + b.Property + "}"
}

// NullExtension is {x:Null}; assigning it assigns nil.
type NullExtension struct {
	Type *Type
}

func (n *NullExtension) XamlType() *Type { return n.Type }

func (n *NullExtension) SetMember(p *Property, v any) error {
	return fmt.Errorf("%w %s on x:Null", ErrUnknownMember, p.FullName())
}

func (n *NullExtension) String() string {
	return "{x:Null}"
}

func setResourceKey(dst *string, p *Property, v any) error {
	if p.Name != "ResourceKey" {
		return fmt.Errorf("%w %s", ErrUnknownMember, p.FullName())
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("xaml: ResourceKey must be a string, not %T", v)
	}
	*dst = s
	return nil
}
