// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupType(t *testing.T) {
	ti, ok := LookupType(TypeButton)
	require.True(t, ok)
	assert.Equal(t, "Microsoft.UI.Xaml.Controls.Button", ti.Name)
	assert.Equal(t, TypeButtonBase, ti.Base)

	_, ok = LookupType(TypeNone)
	assert.False(t, ok)
	_, ok = LookupType(TypeIndex(0x7fff))
	assert.False(t, ok)
}

func TestTablesComplete(t *testing.T) {
	for i := TypeObject; i <= TypeCustomResource; i++ {
		ti, ok := LookupType(i)
		require.True(t, ok, "type %d", i)
		assert.NotEmpty(t, ti.Name, "type %d", i)
		if ti.Base != TypeNone {
			_, ok := LookupType(ti.Base)
			assert.True(t, ok, "base of %s", ti.Name)
		}
	}
	for i := PropXName; i <= PropTemplateBindingProperty; i++ {
		pi, ok := LookupProperty(i)
		require.True(t, ok, "property %d", i)
		assert.NotEmpty(t, pi.Name, "property %d", i)
		if pi.Flags.HasFlag(PropertyIsAttached) {
			assert.GreaterOrEqual(t, strings.Count(pi.Name, "."), 2, pi.Name)
		}
	}
	for i := EventUIElementTapped; i <= EventButtonBaseClick; i++ {
		_, ok := LookupEvent(i)
		assert.True(t, ok, "event %d", i)
	}
}

func TestBaseChainTerminates(t *testing.T) {
	for i := TypeObject; i <= TypeCustomResource; i++ {
		seen := map[TypeIndex]bool{}
		cur := i
		for cur != TypeNone {
			require.False(t, seen[cur], "cycle at %s", cur)
			seen[cur] = true
			ti, _ := LookupType(cur)
			cur = ti.Base
		}
	}
}

func TestByName(t *testing.T) {
	idx, ok := TypeIndexByName("Microsoft.UI.Xaml.Style")
	assert.True(t, ok)
	assert.Equal(t, TypeStyle, idx)

	pidx, ok := PropertyIndexByName("Microsoft.UI.Xaml.Controls.Grid.Row")
	assert.True(t, ok)
	assert.Equal(t, PropGridRow, pidx)

	_, ok = TypeIndexByName("Some.Unknown.Type")
	assert.False(t, ok)
	assert.Contains(t, TypeNames(), "Microsoft.UI.Xaml.ResourceDictionary")
}

func TestFlags(t *testing.T) {
	ti, _ := LookupType(TypeResourceDictionary)
	assert.True(t, ti.Flags.HasFlag(TypeIsDictionary))
	assert.False(t, ti.Flags.HasFlag(TypeIsCollection))

	ti, _ = LookupType(TypeStaticResource)
	assert.True(t, ti.Flags.HasFlag(TypeIsMarkupExtension))

	pi, _ := LookupProperty(PropPanelChildren)
	assert.True(t, pi.Flags.HasFlag(PropertyIsVisualTree))
	assert.False(t, pi.Flags.HasFlag(PropertyIsAttached))
}

func TestFlagBits(t *testing.T) {
	// the encoded flags are bit masks indexed by the flag constants
	assert.Equal(t, TypeFlags(0b101), TypeFlagsOf(TypeIsCollection, TypeIsMarkupExtension))
	assert.Equal(t, PropertyFlags(0b10), PropertyFlagsOf(PropertyIsVisualTree))

	f := TypeFlagsOf(TypeIsCollection, TypeIsDictionary)
	assert.Equal(t, "IsCollection|IsDictionary", f.String())
	assert.Equal(t, "IsVisualTree", PropertyFlagsOf(PropertyIsVisualTree).String())

	var pf PropertyFlags
	assert.NoError(t, pf.SetString("IsAttached|IsVisualTree"))
	assert.Equal(t, PropertyFlagsOf(PropertyIsAttached, PropertyIsVisualTree), pf)
	assert.Error(t, pf.SetString("IsHidden"))
}

func TestString(t *testing.T) {
	assert.Equal(t, "Microsoft.UI.Xaml.Controls.Button", TypeButton.String())
	assert.Equal(t, "TypeIndex(999)", TypeIndex(999).String())
	assert.Equal(t, "x:Name", PropXName.String())
	assert.Equal(t, "EventIndex(0)", EventNone.String())
}
