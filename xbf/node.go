// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xbf

import "fmt"

// NodeKind is the opcode of a [Node].
type NodeKind int32 //enums:enum

const (
	StartObject NodeKind = iota + 1
	GetObject
	EndObject
	StartMember
	EndMember
	ValueNode
	NamespaceDeclaration
	SetCustomRuntimeData
	LineInfo
	ConnectEvent
)

// Node is one decoded node of a [Stream]. Only the fields of its kind
// are set.
type Node struct {
	Kind NodeKind

	// Offset is the offset of the node from the start of the node
	// section, the same origin as stream tokens.
	Offset uint32

	// Type is the object type of StartObject.
	Type ID

	// Property is the member of StartMember.
	Property ID

	// Value is the value of a Value node.
	Value Value

	// Namespace and Prefix are the uri and prefix of NamespaceDeclaration.
	Namespace string
	Prefix    string

	// Data is the payload of SetCustomRuntimeData.
	Data CustomRuntimeData

	// Line and Column are the source position of LineInfo.
	Line, Column uint32

	// Event and Handler are the event and handler name of ConnectEvent.
	Event   ID
	Handler string
}

func (n *Node) String() string {
	switch n.Kind {
	case StartObject:
		return fmt.Sprintf("StartObject(%s)", n.Type)
	case StartMember:
		return fmt.Sprintf("StartMember(%s)", n.Property)
	case ValueNode:
		return fmt.Sprintf("Value(%s)", n.Value)
	case NamespaceDeclaration:
		return fmt.Sprintf("NamespaceDeclaration(%s=%s)", n.Prefix, n.Namespace)
	case SetCustomRuntimeData:
		return fmt.Sprintf("SetCustomRuntimeData(%s)", n.Data.Kind())
	case LineInfo:
		return fmt.Sprintf("LineInfo(%d:%d)", n.Line, n.Column)
	case ConnectEvent:
		return fmt.Sprintf("ConnectEvent(%s=%s)", n.Event, n.Handler)
	}
	return n.Kind.String()
}

// Stream is an independently addressable sequence of nodes.
type Stream struct {
	// Index is the position of the stream in [File.Streams].
	Index int

	// Token is the token that locates this stream.
	Token uint32

	Nodes []Node
}

// readNodes decodes the nodes of one stream body. section is the
// absolute offset of the node section.
func (f *File) readNodes(r *reader, section int) []Node {
	var nodes []Node
	for r.remaining() > 0 && r.err == nil {
		n := Node{Offset: uint32(r.pos() - section), Kind: NodeKind(r.u8())}
		switch n.Kind {
		case StartObject:
			n.Type = f.readTypeID(r)
		case GetObject, EndObject, EndMember:
		case StartMember:
			n.Property = f.readPropertyID(r)
		case ValueNode:
			n.Value = f.readValue(r)
		case NamespaceDeclaration:
			n.Namespace = f.readXmlNamespace(r)
			n.Prefix = f.readString(r)
		case SetCustomRuntimeData:
			n.Data = f.readCustomRuntimeData(r)
		case LineInfo:
			n.Line = r.u32()
			n.Column = r.u32()
		case ConnectEvent:
			n.Event = r.id()
			if !n.Event.IsStable() {
				r.fail("event %s is not a stable event", n.Event)
			}
			n.Handler = f.readString(r)
		default:
			r.fail("unknown node kind %d", uint8(n.Kind))
		}
		if r.err == nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
