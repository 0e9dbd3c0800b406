// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xbf

import (
	"encoding/binary"
	"fmt"
	"math"
)

// reader reads little-endian values from a buffer. The first failure
// is kept in err and every later read returns zero values, so decoders
// check err once per entry.
type reader struct {
	buf []byte
	off int

	// base is the absolute offset of buf[0] in the file, for messages.
	base int

	err error
}

func newReader(buf []byte, base int) *reader {
	return &reader{buf: buf, base: base}
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

// pos returns the absolute offset of the next read.
func (r *reader) pos() int {
	return r.base + r.off
}

func (r *reader) fail(format string, args ...any) {
	if r.err == nil {
		r.err = fmt.Errorf("%w at offset %d: %s", ErrFormat, r.pos(), fmt.Sprintf(format, args...))
	}
}

func (r *reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || n > r.remaining() {
		r.fail("need %d bytes, have %d", n, r.remaining())
		return nil
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

func (r *reader) u8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *reader) u16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *reader) u32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *reader) f32() float32 {
	return math.Float32frombits(r.u32())
}

func (r *reader) id() ID {
	return ID(r.u16())
}

// count reads a u32 element count and checks that the remaining data
// can hold that many entries of at least minSize bytes.
func (r *reader) count(minSize int) int {
	n := r.u32()
	if r.err != nil {
		return 0
	}
	if minSize > 0 && uint64(n)*uint64(minSize) > uint64(r.remaining()) {
		r.fail("count %d exceeds the remaining %d bytes", n, r.remaining())
		return 0
	}
	return int(n)
}
