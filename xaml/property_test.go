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

func TestPropertyByNameAttached(t *testing.T) {
	s := NewSession()
	typ := s.TypeByFullName("My.Ns.Panel")

	attached := s.PropertyByName(typ, nil, "Foo.Bar")
	assert.True(t, attached.IsAttached)
	assert.Equal(t, "My.Ns.Foo.Bar", attached.FullName())

	plain := s.PropertyByName(typ, nil, "Bar")
	assert.False(t, plain.IsAttached)
	assert.Equal(t, "My.Ns.Panel.Bar", plain.FullName())

	assert.Same(t, plain, s.PropertyByName(typ, nil, "Bar"))
}

func TestPropertyByNamePlaceholderType(t *testing.T) {
	s := NewSession()
	typ := s.TypeByFullName("My.Ns.Panel")
	p := s.PropertyByName(typ, nil, "Spacing")
	require.NotNil(t, p.Type)
	assert.Equal(t, "TypeOfProperty_My.Ns.Panel.Spacing", p.Type.FullName)

	dbl := s.TypeByFullName("System.Double")
	q := s.PropertyByName(typ, dbl, "Gap")
	assert.Same(t, dbl, q.Type)

	global := s.PropertyByName(nil, nil, "RealizeToken")
	assert.Nil(t, global.DeclaringType)
	assert.Equal(t, "RealizeToken", global.FullName())
	assert.False(t, global.IsAttached)
}

func TestPropertyWithFlags(t *testing.T) {
	s := NewSession()
	host := s.TypeByFullName("App.Host")
	body := s.PropertyWithFlags(host, nil, "Body", stable.PropertyFlagsOf(stable.PropertyIsVisualTree))
	assert.True(t, body.IsVisualTreeProperty)
	assert.False(t, body.IsAttached)

	// the first registration wins
	assert.Same(t, body, s.PropertyByName(host, nil, "Body"))
	assert.True(t, s.PropertyByName(host, nil, "Body").IsVisualTreeProperty)

	dock := s.PropertyWithFlags(host, nil, "Dock", stable.PropertyFlagsOf(stable.PropertyIsAttached))
	assert.True(t, dock.IsAttached)
	assert.False(t, dock.IsVisualTreeProperty)
}

func TestPropertyByNameResolvesStable(t *testing.T) {
	s := NewSession()
	grid, err := s.TypeByIndex(stable.TypeGrid)
	require.NoError(t, err)
	row := s.PropertyByName(grid, nil, "Grid.Row")
	assert.Equal(t, stable.PropGridRow, row.Index)
	assert.Equal(t, "System.Int32", row.Type.FullName)

	xname := s.PropertyByName(nil, nil, "x:Name")
	assert.Equal(t, stable.PropXName, xname.Index)
	assert.True(t, xname.IsDirective())
	assert.True(t, xname.IsName())
}

func TestPropertyByIndex(t *testing.T) {
	s := NewSession()
	content, err := s.PropertyByIndex(stable.PropContentControlContent)
	require.NoError(t, err)
	assert.Equal(t, "Content", content.Name)
	assert.False(t, content.IsAttached)
	assert.True(t, content.IsVisualTreeProperty)
	assert.Equal(t, "Microsoft.UI.Xaml.Controls.ContentControl", content.DeclaringType.FullName)
	assert.Equal(t, "Microsoft.UI.Xaml.Controls.ContentControl.Content", content.FullName())

	row, err := s.PropertyByIndex(stable.PropGridRow)
	require.NoError(t, err)
	assert.Equal(t, "Grid.Row", row.Name)
	assert.True(t, row.IsAttached)
	assert.Equal(t, "Microsoft.UI.Xaml.Controls.Grid.Row", row.FullName())

	groups, err := s.PropertyByIndex(stable.PropVisualStateManagerVisualStateGroups)
	require.NoError(t, err)
	assert.Equal(t, "VisualStateManager.VisualStateGroups", groups.Name)
	assert.True(t, groups.Type.IsCollection)

	again, err := s.PropertyByIndex(stable.PropGridRow)
	require.NoError(t, err)
	assert.Same(t, row, again)

	xkey, err := s.PropertyByIndex(stable.PropXKey)
	require.NoError(t, err)
	assert.Equal(t, "x:Key", xkey.Name)
	assert.Nil(t, xkey.DeclaringType)
}

func TestPropertyByIndexUnknown(t *testing.T) {
	s := NewSession()
	for _, idx := range []stable.PropertyIndex{stable.PropertyNone, stable.PropTemplateBindingProperty + 1, 0x7fff} {
		_, err := s.PropertyByIndex(idx)
		assert.ErrorIs(t, err, ErrUnknownPropertyIndex)
	}
}

func TestEventByIndex(t *testing.T) {
	s := NewSession()
	click, err := s.EventByIndex(stable.EventButtonBaseClick)
	require.NoError(t, err)
	assert.Equal(t, "Click", click.Name)
	assert.Equal(t, "Microsoft.UI.Xaml.Controls.Primitives.ButtonBase.Click", click.FullName())

	again, err := s.EventByIndex(stable.EventButtonBaseClick)
	require.NoError(t, err)
	assert.Same(t, click, again)

	_, err = s.EventByIndex(99)
	assert.ErrorIs(t, err, ErrUnknownEventIndex)
}
