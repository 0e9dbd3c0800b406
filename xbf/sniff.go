// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xbf

import (
	"bytes"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
)

// FileType is the XBF file type as registered with filetype.
var FileType = filetype.NewType("xbf", "application/x-xbf")

func init() {
	filetype.AddMatcher(FileType, matchMagic)
}

func matchMagic(head []byte) bool {
	return len(head) >= len(Magic) && bytes.Equal(head[:len(Magic)], Magic[:])
}

// Is returns whether the given leading bytes are those of an XBF binary.
func Is(head []byte) bool {
	return filetype.Is(head, FileType.Extension)
}

// Kind returns the file type that the given leading bytes match,
// which is [filetype.Unknown] for unrecognized data.
func Kind(head []byte) types.Type {
	t, _ := filetype.Match(head)
	return t
}
