// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/fsnotify/fsnotify"
	"github.com/microsoft/microsoft-ui-xaml-sub032/dump"
	"github.com/microsoft/microsoft-ui-xaml-sub032/stable"
	"github.com/microsoft/microsoft-ui-xaml-sub032/writer"
	"github.com/microsoft/microsoft-ui-xaml-sub032/xaml"
	"github.com/microsoft/microsoft-ui-xaml-sub032/xbf"
	"golang.org/x/sync/errgroup"
)

// sniffLen is the number of leading bytes used to detect the file type.
const sniffLen = 262

// numSuggestions is the number of closest type names printed by Lookup.
const numSuggestions = 5

// Run decodes and prints the configured files.
func Run(c *Config) error {
	if c.Lookup != "" {
		return Lookup(os.Stdout, c.Lookup)
	}
	if len(c.Files) == 0 {
		return errors.New("no input files")
	}
	if !slices.Contains(dump.Formats, dump.Format(c.Format)) {
		return fmt.Errorf("unknown format %q (must be one of %v)", c.Format, dump.Formats)
	}
	out := io.Writer(os.Stdout)
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	s := xaml.NewSession()
	err := Print(out, c, s, c.Files)
	if !c.Watch {
		return err
	}
	return Watch(out, c, s)
}

// Decode decodes the given file into its object graph.
func Decode(s *xaml.Session, path string) (*writer.Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	head := b[:min(len(b), sniffLen)]
	if !xbf.Is(head) {
		return nil, fmt.Errorf("%s: not an XBF file (detected %s)", path, xbf.Kind(head).Extension)
	}
	f, err := xbf.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	res, err := writer.Load(s, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

// DecodeAll decodes the given files with at most jobs files at a time,
// all sharing the given session. The results are in the order of the
// files; a file that failed has a nil result and a non-nil error.
func DecodeAll(s *xaml.Session, paths []string, jobs int) ([]*writer.Result, []error) {
	results := make([]*writer.Result, len(paths))
	errs := make([]error, len(paths))
	var g errgroup.Group
	g.SetLimit(max(jobs, 1))
	for i, path := range paths {
		g.Go(func() error {
			results[i], errs[i] = Decode(s, path)
			return nil
		})
	}
	g.Wait()
	return results, errs
}

// Print decodes the given files and writes them to w in input order.
// Errors are logged as they are met and returned together.
func Print(w io.Writer, c *Config, s *xaml.Session, paths []string) error {
	results, errs := DecodeAll(s, paths, c.Jobs)
	format := dump.Format(c.Format)
	var all []error
	for i, res := range results {
		if errs[i] != nil {
			all = append(all, errors.Log(errs[i]))
			continue
		}
		if len(paths) > 1 && format != dump.JSON {
			fmt.Fprintf(w, "# %s\n", paths[i])
		}
		if err := write(w, c, format, res); err != nil {
			all = append(all, errors.Log(fmt.Errorf("%s: %w", paths[i], err)))
		}
	}
	return errors.Join(all...)
}

func write(w io.Writer, c *Config, format dump.Format, res *writer.Result) error {
	if c.Find == "" {
		return dump.Write(w, format, res)
	}
	obj := res.Names.Find(c.Find)
	if obj == nil {
		return fmt.Errorf("no object named %q", c.Find)
	}
	return dump.WriteDocument(w, format, &dump.Document{Root: dump.Tree(obj)})
}

// Watch prints the files again whenever they are written, until the
// watcher fails.
func Watch(w io.Writer, c *Config, s *xaml.Session) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := map[string]bool{}
	for _, path := range c.Files {
		abs := errors.Log1(filepath.Abs(path))
		watched[abs] = true
		// editors often replace files, so the directory is watched
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}
	slog.Info("watching for changes", "files", len(c.Files))
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !watched[event.Name] {
				continue
			}
			Print(w, c, s, []string{event.Name})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// Lookup writes the stable index of the type with the given full or
// short name. When there is none, it writes the closest type names and
// returns an error.
func Lookup(w io.Writer, name string) error {
	names := stable.TypeNames()
	if idx, ok := stable.TypeIndexByName(name); ok {
		fmt.Fprintf(w, "%s\t%d\n", name, idx)
		return nil
	}
	found := false
	for _, nm := range names {
		if strings.HasSuffix(nm, "."+name) {
			idx, _ := stable.TypeIndexByName(nm)
			fmt.Fprintf(w, "%s\t%d\n", nm, idx)
			found = true
		}
	}
	if found {
		return nil
	}

	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	score := func(nm string) float64 {
		short := nm[strings.LastIndex(nm, ".")+1:]
		return max(strutil.Similarity(name, nm, lev), strutil.Similarity(name, short, lev))
	}
	slices.SortStableFunc(names, func(a, b string) int {
		sa, sb := score(a), score(b)
		switch {
		case sa > sb:
			return -1
		case sa < sb:
			return 1
		}
		return 0
	})
	fmt.Fprintf(w, "unknown type %q, closest:\n", name)
	for _, nm := range names[:min(len(names), numSuggestions)] {
		fmt.Fprintf(w, "\t%s\n", nm)
	}
	return fmt.Errorf("unknown type %q", name)
}
