// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dump

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/microsoft/microsoft-ui-xaml-sub032/stable"
	"github.com/microsoft/microsoft-ui-xaml-sub032/writer"
	"github.com/microsoft/microsoft-ui-xaml-sub032/xaml"
	"github.com/microsoft/microsoft-ui-xaml-sub032/xbf"
	"github.com/microsoft/microsoft-ui-xaml-sub032/xbf/xbftest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func panel(t *testing.T) *writer.Result {
	t.Helper()
	b := xbftest.New()
	b.Stream().
		Namespace("x", "http://schemas.microsoft.com/winfx/2006/xaml").
		Namespace("", "http://schemas.microsoft.com/winfx/2006/xaml/presentation").
		StartStable(stable.TypeStackPanel).
		Member(stable.PropPanelChildren).
		StartStable(stable.TypeButton).
		SetText(stable.PropXName, "ok").
		SetText(stable.PropContentControlContent, "Hi").
		Event(stable.EventButtonBaseClick, "OnOK").
		EndObject().
		EndMember().
		Member(stable.PropFrameworkElementWidth).Value(xbf.Value{Kind: xbf.ValueFloat, Float: 120}).EndMember().
		EndObject()
	f, err := b.File()
	require.NoError(t, err)
	res, err := writer.Load(xaml.NewSession(), f)
	require.NoError(t, err)
	return res
}

func TestTree(t *testing.T) {
	d := NewDocument(panel(t))
	root := d.Root
	assert.Equal(t, "Microsoft.UI.Xaml.Controls.StackPanel", root.Type)
	require.Len(t, root.Properties, 2)
	assert.Equal(t, "Children", root.Properties[0].Name)
	assert.Equal(t, "Width", root.Properties[1].Name)
	assert.Equal(t, &Node{Type: "Double", Value: "120"}, root.Properties[1].Value)

	children := root.Properties[0].Value
	require.Len(t, children.Items, 1)
	button := children.Items[0]
	assert.Equal(t, "Microsoft.UI.Xaml.Controls.Button", button.Type)
	assert.Equal(t, "ok", button.Name)
	require.Len(t, button.Properties, 1, "the name is not repeated as a property")
	assert.Equal(t, &Node{Type: "String", Value: "Hi"}, button.Properties[0].Value)
	assert.Equal(t, []Event{{Event: "Click", Handler: "OnOK"}}, button.Events)

	assert.Equal(t, []Name{{Name: "ok", Type: "Microsoft.UI.Xaml.Controls.Button"}}, d.Names)
	assert.Equal(t, []Namespace{
		{Prefix: "", URI: "http://schemas.microsoft.com/winfx/2006/xaml/presentation"},
		{Prefix: "x", URI: "http://schemas.microsoft.com/winfx/2006/xaml"},
	}, d.Namespaces)
}

func TestTreeSharedObjects(t *testing.T) {
	typ := &xaml.Type{FullName: "App.Node"}
	next := &xaml.Property{DeclaringType: typ, Name: "Next", Type: typ}
	a := xaml.NewObject(typ)
	b := xaml.NewObject(typ)
	a.SetValue(next, b)
	b.SetValue(next, a)
	a.Add(b)

	n := Tree(a)
	require.Len(t, n.Properties, 1)
	bn := n.Properties[0].Value
	assert.Empty(t, bn.Ref)
	assert.Equal(t, "Node", bn.Properties[0].Value.Ref)
	require.Len(t, n.Items, 1)
	assert.Equal(t, "Node", n.Items[0].Ref)
}

func TestTreeEntriesAndDeferred(t *testing.T) {
	dictType := &xaml.Type{FullName: "Microsoft.UI.Xaml.ResourceDictionary", IsDictionary: true}
	styleType := &xaml.Type{FullName: "Microsoft.UI.Xaml.Style"}
	buttonType := &xaml.Type{FullName: "Microsoft.UI.Xaml.Controls.Button"}
	dict := xaml.NewObject(dictType)
	dict.SetEntry("Accent", xaml.Color(0xFF0078D7))
	dict.SetEntry(buttonType, xaml.NewObject(styleType))
	lazy := xaml.NewObject(buttonType)
	lazy.Deferred = &xaml.Deferred{Name: "later", Token: 12}
	dict.SetEntry("Lazy", lazy)

	n := Tree(dict)
	require.Len(t, n.Entries, 3)
	assert.Equal(t, Entry{Key: "Accent", Value: &Node{Type: "Color", Value: "#FF0078D7"}}, n.Entries[0])
	assert.Equal(t, "{Microsoft.UI.Xaml.Controls.Button}", n.Entries[1].Key)
	assert.Equal(t, &Deferred{Name: "later", Token: 12}, n.Entries[2].Value.Deferred)
}

func TestScalars(t *testing.T) {
	vis := &xaml.Type{FullName: "Microsoft.UI.Xaml.Visibility"}
	tests := []struct {
		value any
		want  *Node
	}{
		{nil, &Node{Value: "null"}},
		{true, &Node{Type: "Boolean", Value: "true"}},
		{int32(-3), &Node{Type: "Int32", Value: "-3"}},
		{0.25, &Node{Type: "Double", Value: "0.25"}},
		{xaml.EnumValue{Type: vis, Value: 1}, &Node{Type: "Microsoft.UI.Xaml.Visibility", Value: "1"}},
		{xaml.Thickness{Left: 1, Top: 2, Right: 3, Bottom: 4}, &Node{Type: "Thickness", Value: "1,2,3,4"}},
		{vis, &Node{Type: "Type", Value: "Microsoft.UI.Xaml.Visibility"}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Tree(test.value), "%v", test.value)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Text, panel(t)))
	out := buf.String()
	assert.Contains(t, out, "Microsoft.UI.Xaml.Controls.StackPanel\n")
	assert.Contains(t, out, "Microsoft.UI.Xaml.Controls.Button \"ok\"\n")
	assert.Contains(t, out, "Content: String \"Hi\"\n")
	assert.Contains(t, out, "Width: Double 120\n")
	assert.Contains(t, out, "Click => OnOK\n")
	assert.Contains(t, out, "(default) http://schemas.microsoft.com/winfx/2006/xaml/presentation\n")
	assert.NotContains(t, out, "\x1b[", "no colors when not writing to a terminal")
}

func TestWriteFormats(t *testing.T) {
	res := panel(t)
	for _, f := range []Format{YAML, TOML, JSON} {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, f, res), f)
		out := buf.String()
		assert.Contains(t, out, "Microsoft.UI.Xaml.Controls.Button", f)
		assert.Contains(t, out, "OnOK", f)
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, JSON, res))
	var d Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &d))
	assert.Equal(t, NewDocument(res), &d)
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "xml", panel(t))
	assert.ErrorContains(t, err, `unknown format "xml"`)
}
