// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xbf_test

import (
	"encoding/binary"
	"testing"

	"github.com/microsoft/microsoft-ui-xaml-sub032/stable"
	"github.com/microsoft/microsoft-ui-xaml-sub032/xbf"
	"github.com/microsoft/microsoft-ui-xaml-sub032/xbf/xbftest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buttonBinary() *xbftest.Builder {
	b := xbftest.New()
	b.Stream().
		Namespace("x", "http://schemas.microsoft.com/winfx/2006/xaml").
		Line(3, 5).
		StartStable(stable.TypeButton).
		SetText(stable.PropContentControlContent, "Hi").
		Event(stable.EventButtonBaseClick, "OnClick").
		EndObject()
	return b
}

func TestParseButton(t *testing.T) {
	f, err := buttonBinary().File()
	require.NoError(t, err)

	assert.Equal(t, xbf.Magic, f.Header.Magic)
	assert.Equal(t, "2.1.0", f.Header.Version().String())
	require.Len(t, f.Streams, 1)
	assert.Equal(t, uint32(4), f.Main().Token)

	var kinds []xbf.NodeKind
	for _, n := range f.Main().Nodes {
		kinds = append(kinds, n.Kind)
	}
	assert.Equal(t, []xbf.NodeKind{
		xbf.NamespaceDeclaration, xbf.LineInfo, xbf.StartObject, xbf.StartMember,
		xbf.ValueNode, xbf.EndMember, xbf.ConnectEvent, xbf.EndObject,
	}, kinds)

	nodes := f.Main().Nodes
	assert.Equal(t, "x", nodes[0].Prefix)
	assert.Equal(t, "http://schemas.microsoft.com/winfx/2006/xaml", nodes[0].Namespace)
	assert.Equal(t, uint32(3), nodes[1].Line)
	assert.Equal(t, uint32(5), nodes[1].Column)
	assert.Equal(t, xbf.StableType(stable.TypeButton), nodes[2].Type)
	assert.True(t, nodes[2].Type.IsStable())
	assert.Equal(t, uint16(stable.TypeButton), nodes[2].Type.Index())
	assert.Equal(t, xbf.StableProperty(stable.PropContentControlContent), nodes[3].Property)
	assert.Equal(t, xbf.ValueString, nodes[4].Value.Kind)
	assert.Equal(t, "Hi", nodes[4].Value.Text)
	assert.Equal(t, "OnClick", nodes[6].Handler)

	// node offsets share the token origin: the body follows the u32 size
	assert.Equal(t, f.Main().Token+4, nodes[0].Offset)
	for i := 1; i < len(nodes); i++ {
		assert.Greater(t, nodes[i].Offset, nodes[i-1].Offset)
	}
}

func TestParseStrings(t *testing.T) {
	b := xbftest.New()
	b.Stream().StartStable(stable.TypeTextBlock).SetText(stable.PropTextBlockText, "héllo 世界 🎉").EndObject()
	f, err := b.File()
	require.NoError(t, err)
	assert.Contains(t, f.Strings, "héllo 世界 🎉")
	assert.Equal(t, "héllo 世界 🎉", f.Main().Nodes[2].Value.Text)
}

func TestParseCustomTables(t *testing.T) {
	b := xbftest.New()
	gauge := b.Type("Contoso.Controls", "Gauge", 0)
	level := b.Property(gauge, xbf.StableType(stable.TypeDouble), "Level", 0)
	b.Stream().StartObject(gauge).StartMember(level).
		Value(xbf.Value{Kind: xbf.ValueFloat, Float: 0.5}).EndMember().EndObject()

	f, err := b.File()
	require.NoError(t, err)
	require.Len(t, f.Types, 1)
	assert.Equal(t, "Contoso.Controls.Gauge", f.TypeFullName(0))
	require.Len(t, f.Properties, 1)
	assert.Equal(t, "Level", f.Properties[0].Name)
	assert.Equal(t, gauge, f.Properties[0].DeclaringType)
	assert.Equal(t, "App", f.Assemblies[0].Name)
	assert.False(t, f.Main().Nodes[0].Type.IsStable())
	assert.Equal(t, float32(0.5), f.Main().Nodes[2].Value.Float)
}

func TestValues(t *testing.T) {
	values := []xbf.Value{
		{Kind: xbf.ValueNull},
		{Kind: xbf.ValueBool, Bool: true},
		{Kind: xbf.ValueInt32, Int: -7},
		{Kind: xbf.ValueFloat, Float: 1.25},
		{Kind: xbf.ValueString, Text: "s"},
		{Kind: xbf.ValueEnum, Type: xbf.StableType(stable.TypeVisibility), Enum: 1},
		{Kind: xbf.ValueType, Type: xbf.StableType(stable.TypeButton)},
		{Kind: xbf.ValueProperty, Property: xbf.StableProperty(stable.PropControlBackground)},
		{Kind: xbf.ValueThickness, Thickness: [4]float32{1, 2, 3, 4}},
		{Kind: xbf.ValueColor, Color: 0xFF102030},
	}
	b := xbftest.New()
	s := b.Stream().StartStable(stable.TypeObject)
	for _, v := range values {
		s.Value(v)
	}
	s.EndObject()

	f, err := b.File()
	require.NoError(t, err)
	nodes := f.Main().Nodes[1 : 1+len(values)]
	for i, v := range values {
		assert.Equal(t, v, nodes[i].Value, v.Kind.String())
	}
	assert.Equal(t, "#FF102030", values[9].String())
	assert.Equal(t, `"s"`, values[4].String())
}

func TestCustomRuntimeData(t *testing.T) {
	b := xbftest.New()
	main := b.Stream()
	brush := b.Stream()
	style := b.Stream()
	child := b.Stream()
	groups := b.Stream()

	main.StartStable(stable.TypeResourceDictionary).
		Resources(
			[]xbftest.Resource{{Key: "Brush1", Target: brush}},
			[]xbftest.ImplicitResource{{Type: xbf.StableType(stable.TypeButton), Target: style}},
			[]xbftest.ConditionalResource{{Key: "Cond", Target: brush, Predicate: xbf.StableType(stable.TypeObject), Args: "x"}},
		).
		Deferred("Lazy", child, true).
		Style(
			xbftest.Setter{Kind: xbf.SetterValue, Property: xbf.StableProperty(stable.PropFrameworkElementWidth),
				Value: xbf.Value{Kind: xbf.ValueFloat, Float: 10}},
			xbftest.Setter{Kind: xbf.SetterStaticResource, Property: xbf.StableProperty(stable.PropControlBackground), Target: brush},
			xbftest.Setter{Kind: xbf.SetterTokenForSelf, Target: style},
		).
		VisualStateGroups(groups).
		EndObject()
	brush.StartStable(stable.TypeSolidColorBrush).EndObject()
	style.StartStable(stable.TypeStyle).EndObject()
	child.StartStable(stable.TypeBorder).EndObject()
	groups.StartStable(stable.TypeVisualStateGroupCollection).EndObject()

	f, err := b.File()
	require.NoError(t, err)
	require.Len(t, f.Streams, 5)

	nodes := f.Main().Nodes
	rd, ok := nodes[1].Data.(*xbf.ResourceDictionaryData)
	require.True(t, ok)
	assert.Equal(t, "Brush1", rd.Explicit[0].Key)
	assert.Equal(t, b.Token(brush), rd.Explicit[0].Token)
	assert.Equal(t, b.Token(style), rd.Implicit[0].Token)
	assert.Equal(t, "x", rd.Conditional[0].Args)
	assert.Len(t, rd.Tokens(), 3)

	de, ok := nodes[2].Data.(*xbf.DeferredElementData)
	require.True(t, ok)
	assert.Equal(t, "Lazy", de.Name)
	assert.True(t, de.Load)
	idx, ok := f.FindIndex(de.Token)
	require.True(t, ok)
	assert.Equal(t, 3, idx)

	sd, ok := nodes[3].Data.(*xbf.StyleData)
	require.True(t, ok)
	require.Len(t, sd.Setters, 3)
	assert.Equal(t, float32(10), sd.Setters[0].Value.Float)
	assert.Equal(t, b.Token(brush), sd.Setters[1].Token)
	assert.Equal(t, xbf.NoID, sd.Setters[2].Property)
	assert.Len(t, sd.Tokens(), 2)

	vd, ok := nodes[4].Data.(*xbf.VisualStateGroupCollectionData)
	require.True(t, ok)
	s, err := f.StreamAt(vd.Token)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Index)
}

func TestFindIndexUnknown(t *testing.T) {
	f, err := buttonBinary().File()
	require.NoError(t, err)
	_, ok := f.FindIndex(5)
	assert.False(t, ok)
	_, err = f.StreamAt(5)
	assert.ErrorIs(t, err, xbf.ErrUnknownToken)
}

func TestParseErrors(t *testing.T) {
	good := buttonBinary().Bytes()

	bad := append([]byte(nil), good...)
	bad[0] = 'Y'
	_, err := xbf.Parse(bad)
	assert.ErrorIs(t, err, xbf.ErrFormat)

	_, err = xbf.Parse(good[:len(good)-3])
	assert.ErrorIs(t, err, xbf.ErrFormat)

	_, err = xbf.Parse(good[:10])
	assert.ErrorIs(t, err, xbf.ErrFormat)

	v3 := buttonBinary()
	v3.Major = 3
	_, err = xbf.Parse(v3.Bytes())
	assert.ErrorIs(t, err, xbf.ErrUnsupportedVersion)

	v1 := buttonBinary()
	v1.Major, v1.Minor = 1, 9
	_, err = xbf.Parse(v1.Bytes())
	assert.ErrorIs(t, err, xbf.ErrUnsupportedVersion)

	op := xbftest.New()
	op.Stream().Raw(0x7F)
	_, err = op.File()
	assert.ErrorIs(t, err, xbf.ErrFormat)
	assert.ErrorContains(t, err, "unknown node kind 127")

	str := xbftest.New()
	str.Stream().StartStable(stable.TypeTextBlock).Member(stable.PropTextBlockText).
		Raw(byte(xbf.ValueNode), byte(xbf.ValueString), 0x40, 0x00)
	_, err = str.File()
	assert.ErrorIs(t, err, xbf.ErrFormat)
	assert.ErrorContains(t, err, "string id 64 out of range")

	typ := xbftest.New()
	typ.Stream().StartObject(3)
	_, err = typ.File()
	assert.ErrorContains(t, err, "type id 3 out of range")

	tok := xbftest.New()
	tok.Stream().StartStable(stable.TypeGrid).
		Raw(byte(xbf.SetCustomRuntimeData), byte(xbf.VisualStateGroupCollectionKind)).
		Raw(binary.LittleEndian.AppendUint32(nil, 999)...).
		EndObject()
	_, err = tok.File()
	assert.ErrorIs(t, err, xbf.ErrUnknownToken)

	empty := xbftest.New()
	_, err = empty.File()
	assert.ErrorContains(t, err, "no node streams")
}

func TestSniff(t *testing.T) {
	data := buttonBinary().Bytes()
	assert.True(t, xbf.Is(data[:8]))
	assert.Equal(t, "xbf", xbf.Kind(data).Extension)
	assert.Equal(t, "application/x-xbf", xbf.Kind(data).MIME.Value)

	assert.False(t, xbf.Is([]byte("<Page xmlns=...>")))
	assert.False(t, xbf.Is(nil))
	assert.NotEqual(t, "xbf", xbf.Kind([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}).Extension)
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "none", xbf.NoID.String())
	assert.Equal(t, "stable:9", xbf.StableType(9).String())
	assert.Equal(t, "table:2", xbf.ID(2).String())
	assert.False(t, xbf.NoID.IsStable())
	assert.Equal(t, "ValueNode", xbf.ValueNode.String())
	assert.Equal(t, "200", xbf.NodeKind(200).String())
	assert.Equal(t, "TokenForSelf", xbf.SetterTokenForSelf.String())
}

func TestKinds(t *testing.T) {
	assert.Len(t, xbf.NodeKindValues(), 10)
	assert.Equal(t, "Thickness", xbf.ValueThickness.String())
	assert.Equal(t, "StyleKind", xbf.StyleKind.String())
	assert.Equal(t, "SetterThemeResource has a ThemeResource reference at its token.", xbf.SetterThemeResource.Desc())

	var k xbf.SetterKind
	require.NoError(t, k.SetString("Object"))
	assert.Equal(t, xbf.SetterObject, k)
	assert.Error(t, k.SetString("Binding"))

	b, err := xbf.ConnectEvent.MarshalText()
	require.NoError(t, err)
	var nk xbf.NodeKind
	require.NoError(t, nk.UnmarshalText(b))
	assert.Equal(t, xbf.ConnectEvent, nk)
}
