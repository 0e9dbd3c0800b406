// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xaml

import (
	"testing"

	"github.com/microsoft/microsoft-ui-xaml-sub032/stable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFromFullNameFallback(t *testing.T) {
	s := NewSession()
	v := s.CreateFromFullName("Some.Unknown.Type")
	obj, ok := v.(*Object)
	require.True(t, ok)
	assert.Equal(t, "Some.Unknown.Type", obj.Type.FullName)

	v = s.CreateFromFullName("Microsoft.UI.Xaml.Controls.Grid")
	obj, ok = v.(*Object)
	require.True(t, ok)
	assert.Equal(t, stable.TypeGrid, obj.Type.Index)
}

func TestCreateMarkupExtensions(t *testing.T) {
	s := NewSession()
	tests := []struct {
		idx  stable.TypeIndex
		want any
	}{
		{stable.TypeStaticResource, &StaticResource{}},
		{stable.TypeThemeResource, &ThemeResource{}},
		{stable.TypeTemplateBinding, &TemplateBinding{}},
		{stable.TypeNullExtension, &NullExtension{}},
		{stable.TypeCustomResource, &CustomResource{}},
		{stable.TypeButton, &Object{}},
	}
	for _, test := range tests {
		v, err := s.CreateFromStableIndex(test.idx)
		require.NoError(t, err)
		assert.IsType(t, test.want, v, test.idx.String())
		inst, ok := v.(Instance)
		require.True(t, ok)
		assert.Equal(t, test.idx, inst.XamlType().Index)
	}

	_, err := s.CreateFromStableIndex(0x7fff)
	assert.ErrorIs(t, err, ErrUnknownTypeIndex)

	v := s.CreateFromFullName("Microsoft.UI.Xaml.ThemeResource")
	assert.IsType(t, &ThemeResource{}, v)
}

func TestExtensionMembers(t *testing.T) {
	s := NewSession()
	key, err := s.PropertyByIndex(stable.PropStaticResourceResourceKey)
	require.NoError(t, err)

	sr := s.CreateFromFullName("Microsoft.UI.Xaml.StaticResource").(*StaticResource)
	require.NoError(t, sr.SetMember(key, "Brush1"))
	assert.Equal(t, "Brush1", sr.ResourceKey)
	assert.Equal(t, "{StaticResource Brush1}", sr.String())
	assert.Error(t, sr.SetMember(key, int32(3)))

	text, err := s.PropertyByIndex(stable.PropTextBlockText)
	require.NoError(t, err)
	assert.ErrorIs(t, sr.SetMember(text, "x"), ErrUnknownMember)

	tb := s.CreateFromFullName("Microsoft.UI.Xaml.TemplateBinding").(*TemplateBinding)
	prop, err := s.PropertyByIndex(stable.PropTemplateBindingProperty)
	require.NoError(t, err)
	require.NoError(t, tb.SetMember(prop, text))
	assert.Equal(t, "{TemplateBinding Text}", tb.String())

	null := s.CreateFromFullName("Microsoft.UI.Xaml.NullExtension").(*NullExtension)
	assert.ErrorIs(t, null.SetMember(prop, "x"), ErrUnknownMember)
}

func TestObjectValuesAndWalk(t *testing.T) {
	s := NewSession()
	grid := s.CreateFromFullName("Microsoft.UI.Xaml.Controls.Grid").(*Object)
	button := s.CreateFromFullName("Microsoft.UI.Xaml.Controls.Button").(*Object)
	xname, err := s.PropertyByIndex(stable.PropXName)
	require.NoError(t, err)
	button.SetValue(xname, "OK")

	children, err := s.PropertyByIndex(stable.PropPanelChildren)
	require.NoError(t, err)
	coll := s.CreateFromType(children.Type).(*Object)
	coll.Add(button)
	coll.Add(button)
	grid.SetValue(children, coll)

	v, ok := grid.ValueByName("Children")
	assert.True(t, ok)
	assert.Same(t, coll, v)
	assert.Equal(t, "OK", button.Name())
	assert.Equal(t, "Button OK", button.String())

	var visited []string
	grid.WalkDown(func(o *Object) bool {
		visited = append(visited, o.Type.Name())
		return true
	})
	assert.Equal(t, []string{"Grid", "UIElementCollection", "Button"}, visited)

	visited = nil
	grid.WalkDown(func(o *Object) bool {
		visited = append(visited, o.Type.Name())
		return false
	})
	assert.Equal(t, []string{"Grid"}, visited)
}

func TestNamescope(t *testing.T) {
	ns := NewNamescope()
	a, b := &Object{}, &Object{}
	require.NoError(t, ns.Register("a", a))
	require.NoError(t, ns.Register("a", a))
	assert.ErrorIs(t, ns.Register("a", b), ErrDuplicateName)
	assert.Error(t, ns.Register("", b))
	require.NoError(t, ns.Register("b", b))

	assert.Equal(t, 2, ns.Len())
	assert.Equal(t, []string{"a", "b"}, ns.Names())
	assert.Same(t, b, ns.Find("b"))
	assert.Nil(t, ns.Find("c"))

	n := 0
	for range ns.All() {
		n++
	}
	assert.Equal(t, 2, n)

	ns.Clear()
	assert.Zero(t, ns.Len())

	var nilScope *Namescope
	assert.Zero(t, nilScope.Len())
	assert.Nil(t, nilScope.Find("a"))
}

func TestValuesString(t *testing.T) {
	assert.Equal(t, "#FF102030", Color(0xFF102030).String())
	a, r, g, b := Color(0x80102030).ARGB()
	assert.Equal(t, []uint8{0x80, 0x10, 0x20, 0x30}, []uint8{a, r, g, b})
	assert.Equal(t, "1,2,3,4", Thickness{1, 2, 3, 4}.String())

	s := NewSession()
	vis, err := s.TypeByIndex(stable.TypeVisibility)
	require.NoError(t, err)
	assert.Equal(t, "Visibility(1)", EnumValue{Type: vis, Value: 1}.String())
}
