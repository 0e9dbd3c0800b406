// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xaml

import "github.com/microsoft/microsoft-ui-xaml-sub032/stable"

// extensionKind is the closed set of markup extensions
// that get a dedicated instance type.
type extensionKind int

const (
	notExtension extensionKind = iota
	staticResourceKind
	themeResourceKind
	templateBindingKind
	nullExtensionKind
	customResourceKind
)

func extensionKindOf(t *Type) extensionKind {
	switch t.Index {
	case stable.TypeStaticResource:
		return staticResourceKind
	case stable.TypeThemeResource:
		return themeResourceKind
	case stable.TypeTemplateBinding:
		return templateBindingKind
	case stable.TypeNullExtension:
		return nullExtensionKind
	case stable.TypeCustomResource:
		return customResourceKind
	}
	return notExtension
}

// CreateFromType returns a new instance of the given type. The well-known
// markup extensions get their dedicated instance types; every other
// type, known or not, gets a generic [Object], so binaries carrying
// types this reader does not recognize still load.
func (s *Session) CreateFromType(t *Type) any {
	switch extensionKindOf(t) {
	case staticResourceKind:
		return &StaticResource{Type: t}
	case themeResourceKind:
		return &ThemeResource{Type: t}
	case templateBindingKind:
		return &TemplateBinding{Type: t}
	case nullExtensionKind:
		return &NullExtension{Type: t}
	case customResourceKind:
		return &CustomResource{Type: t}
	}
	return NewObject(t)
}

// CreateFromFullName returns a new instance of the type with the
// given full name. It never fails.
func (s *Session) CreateFromFullName(name string) any {
	return s.CreateFromType(s.TypeByFullName(name))
}

// CreateFromStableIndex returns a new instance of the type with the
// given stable index. It only fails when the index itself is unknown.
func (s *Session) CreateFromStableIndex(idx stable.TypeIndex) (any, error) {
	t, err := s.TypeByIndex(idx)
	if err != nil {
		return nil, err
	}
	return s.CreateFromType(t), nil
}
