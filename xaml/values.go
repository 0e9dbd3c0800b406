// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xaml

import "fmt"

// EnumValue is an enum member of a XAML enum type.
type EnumValue struct {
	Type  *Type
	Value uint32
}

func (e EnumValue) String() string {
	return fmt.Sprintf("%s(%d)", e.Type.Name(), e.Value)
}

// Thickness is a four-sided length, as used by Margin and Padding.
type Thickness struct {
	Left, Top, Right, Bottom float64
}

func (t Thickness) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", t.Left, t.Top, t.Right, t.Bottom)
}

// Color is a 32-bit ARGB color.
type Color uint32

// ARGB returns the alpha, red, green and blue components.
func (c Color) ARGB() (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}
