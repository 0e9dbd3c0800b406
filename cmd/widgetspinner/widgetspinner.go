// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command widgetspinner decodes XBF binary markup files and prints the
// object graphs they build.
package main

import (
	"cogentcore.org/core/cli"
)

// Config is the configuration information for the widgetspinner cli.
type Config struct {

	// Files are the XBF files to decode.
	Files []string `posarg:"leftover" required:"-"`

	// Format is the output format: text, yaml, toml or json.
	Format string `flag:"f,format" default:"text"`

	// Output is the file to write to, instead of the standard output.
	Output string `flag:"o,output"`

	// Watch decodes the files again whenever they change.
	Watch bool `flag:"w,watch"`

	// Jobs is the number of files decoded at the same time.
	Jobs int `flag:"j,jobs" default:"4"`

	// Find prints only the object registered under this name.
	Find string

	// Lookup prints the stable index of the type with this name,
	// or the closest known type names, and decodes nothing.
	Lookup string
}

func main() {
	opts := cli.DefaultOptions("widgetspinner", "Widgetspinner decodes XBF binary markup files and prints the object graphs they build.")
	opts.DefaultFiles = []string{"widgetspinner.toml"}
	cli.Run(opts, &Config{}, Run)
}
