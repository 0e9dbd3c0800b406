// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dump prints materialized object graphs as an indented
// text tree or as YAML, TOML or JSON documents.
package dump

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/microsoft/microsoft-ui-xaml-sub032/writer"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

// Formats are all of the supported formats.
var Formats = []Format{Text, YAML, TOML, JSON}

// Write writes the document of the given result to w in the given format.
func Write(w io.Writer, format Format, res *writer.Result) error {
	return WriteDocument(w, format, NewDocument(res))
}

// WriteDocument writes the given document to w in the given format.
func WriteDocument(w io.Writer, format Format, d *Document) error {
	switch format {
	case Text:
		return writeText(w, d)
	case YAML:
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(d); err != nil {
			return err
		}
		return e.Close()
	case TOML:
		return toml.NewEncoder(w).SetIndentTables(true).Encode(d)
	case JSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(d)
	}
	return fmt.Errorf("dump: unknown format %q (must be one of %v)", format, Formats)
}

// textPrinter prints the text tree. Colors are only used when the
// output is a terminal.
type textPrinter struct {
	out  *termenv.Output
	sb   strings.Builder
	typ  termenv.Color
	name termenv.Color
	prop termenv.Color
	val  termenv.Color
	ref  termenv.Color
}

func writeText(w io.Writer, d *Document) error {
	p := &textPrinter{out: termenv.NewOutput(w)}
	p.typ = p.out.Color("4")
	p.name = p.out.Color("2")
	p.prop = p.out.Color("6")
	p.val = p.out.Color("3")
	p.ref = p.out.Color("5")

	p.node(d.Root, 0)
	if len(d.Names) > 0 {
		p.sb.WriteString("\n" + p.out.String("names:").Bold().String() + "\n")
		for _, n := range d.Names {
			p.line(1, p.out.String(n.Name).Foreground(p.name).String()+" "+p.out.String(n.Type).Foreground(p.typ).String())
		}
	}
	if len(d.Namespaces) > 0 {
		p.sb.WriteString("\n" + p.out.String("namespaces:").Bold().String() + "\n")
		for _, ns := range d.Namespaces {
			prefix := ns.Prefix
			if prefix == "" {
				prefix = "(default)"
			}
			p.line(1, prefix+" "+ns.URI)
		}
	}
	_, err := io.WriteString(w, p.sb.String())
	return err
}

func (p *textPrinter) line(depth int, s string) {
	p.sb.WriteString(strings.Repeat("  ", depth))
	p.sb.WriteString(s)
	p.sb.WriteByte('\n')
}

// head returns the one-line summary of a node.
func (p *textPrinter) head(n *Node) string {
	var parts []string
	if n.Type != "" {
		parts = append(parts, p.out.String(n.Type).Foreground(p.typ).Bold().String())
	}
	if n.Name != "" {
		parts = append(parts, p.out.String(strconv.Quote(n.Name)).Foreground(p.name).String())
	}
	if n.Ref != "" {
		parts = append(parts, p.out.String("-> "+n.Ref).Foreground(p.ref).String())
	}
	if n.Value != "" || (n.Type == "String" && len(parts) == 1) {
		v := n.Value
		if n.Type == "String" {
			v = strconv.Quote(v)
		}
		parts = append(parts, p.out.String(v).Foreground(p.val).String())
	}
	return strings.Join(parts, " ")
}

// leaf returns whether the node prints on a single line.
func leaf(n *Node) bool {
	return len(n.Properties) == 0 && len(n.Items) == 0 && len(n.Entries) == 0 && len(n.Events) == 0 && n.Deferred == nil
}

func (p *textPrinter) node(n *Node, depth int) {
	p.line(depth, p.head(n))
	p.children(n, depth+1)
}

// labeled prints a child node after a label, on the same line when it
// is a leaf.
func (p *textPrinter) labeled(label string, n *Node, depth int) {
	if leaf(n) {
		p.line(depth, label+" "+p.head(n))
		return
	}
	p.line(depth, label)
	p.node(n, depth+1)
}

func (p *textPrinter) children(n *Node, depth int) {
	if d := n.Deferred; d != nil {
		p.line(depth, fmt.Sprintf("deferred %q token %d load %t", d.Name, d.Token, d.Load))
	}
	for _, pr := range n.Properties {
		p.labeled(p.out.String(pr.Name+":").Foreground(p.prop).String(), pr.Value, depth)
	}
	for _, it := range n.Items {
		p.labeled("-", it, depth)
	}
	for _, e := range n.Entries {
		p.labeled(p.out.String("["+e.Key+"]").Foreground(p.name).String(), e.Value, depth)
	}
	for _, e := range n.Events {
		p.line(depth, p.out.String(e.Event).Foreground(p.prop).String()+" => "+e.Handler)
	}
}
