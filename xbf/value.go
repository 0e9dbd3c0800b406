// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xbf

import "fmt"

// ValueKind is the encoding of a [Value].
type ValueKind int32 //enums:enum -trim-prefix Value

const (
	ValueNull ValueKind = iota
	ValueBool
	ValueInt32
	ValueFloat
	ValueString
	ValueEnum
	ValueType
	ValueProperty
	ValueThickness
	ValueColor
)

// Value is a literal value as encoded in a node stream. Type and property
// references are left as IDs for the reader's session to resolve.
type Value struct {
	Kind ValueKind

	Bool  bool
	Int   int32
	Float float32

	// Text is the resolved string of a string value.
	Text string

	// Type is the type of an enum value or the value of a type value.
	Type ID

	// Property is the value of a property value.
	Property ID

	// Enum is the member value of an enum value.
	Enum uint32

	// Thickness is left, top, right, bottom.
	Thickness [4]float32

	// Color is ARGB.
	Color uint32
}

func (v Value) String() string {
	switch v.Kind {
	case ValueNull:
		return "null"
	case ValueBool:
		return fmt.Sprint(v.Bool)
	case ValueInt32:
		return fmt.Sprint(v.Int)
	case ValueFloat:
		return fmt.Sprint(v.Float)
	case ValueString:
		return fmt.Sprintf("%q", v.Text)
	case ValueEnum:
		return fmt.Sprintf("enum(%s, %d)", v.Type, v.Enum)
	case ValueType:
		return fmt.Sprintf("type(%s)", v.Type)
	case ValueProperty:
		return fmt.Sprintf("property(%s)", v.Property)
	case ValueThickness:
		return fmt.Sprintf("thickness%v", v.Thickness)
	case ValueColor:
		return fmt.Sprintf("#%08X", v.Color)
	}
	return v.Kind.String()
}

func (f *File) readValue(r *reader) Value {
	v := Value{Kind: ValueKind(r.u8())}
	switch v.Kind {
	case ValueNull:
	case ValueBool:
		v.Bool = r.u8() != 0
	case ValueInt32:
		v.Int = int32(r.u32())
	case ValueFloat:
		v.Float = r.f32()
	case ValueString:
		v.Text = f.readString(r)
	case ValueEnum:
		v.Type = f.readTypeID(r)
		v.Enum = r.u32()
	case ValueType:
		v.Type = f.readTypeID(r)
	case ValueProperty:
		v.Property = f.readPropertyID(r)
	case ValueThickness:
		for i := range v.Thickness {
			v.Thickness[i] = r.f32()
		}
	case ValueColor:
		v.Color = r.u32()
	default:
		r.fail("unknown value kind %d", uint8(v.Kind))
	}
	return v
}
