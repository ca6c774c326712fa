// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package binary

import "github.com/pkg/errors"

// Bit is the result of a positional read from Bits.
// Reads past the end of the written bits report Absent instead of failing.
type Bit uint8

const (
	// Zero is a written 0 bit.
	Zero Bit = iota
	// One is a written 1 bit.
	One
	// Absent is returned for positions at or past the end of the bits.
	Absent
)

// Bool returns true for One.
func (b Bit) Bool() bool { return b == One }

func (b Bit) String() string {
	switch b {
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return "-"
	}
}

// Bits provides methods for appending bits to, and reading bits from, a slice
// of bytes. Bits are packed in a least-significant-bit to most-significant-bit
// order. Writing only ever appends; reading uses an independent cursor that
// can be moved back to the start with ResetReadCursor.
type Bits struct {
	data  []byte // len(data) == (total+7)/8
	total int    // The number of bits written.
	read  int    // The read cursor, in bits from the start of data.
}

// bitsHeaderSize is the export framing: 4 length bytes and the offset byte.
const bitsHeaderSize = 5

// Len returns the number of bits written.
func (b *Bits) Len() int { return b.total }

// ByteCount returns the number of bytes backing the written bits.
func (b *Bits) ByteCount() int { return len(b.data) }

// Bytes returns the packed bits. The returned slice aliases the buffer.
func (b *Bits) Bytes() []byte { return b.data }

// Remaining returns the number of bits left to read.
func (b *Bits) Remaining() int { return b.total - b.read }

// Add appends a single bit.
func (b *Bits) Add(bit bool) {
	if b.total%8 == 0 {
		b.data = append(b.data, 0)
	}
	if bit {
		b.data[b.total/8] |= 1 << uint(b.total%8)
	}
	b.total++
}

// AddSlice appends each of bits in order.
func (b *Bits) AddSlice(bits []bool) {
	for _, bit := range bits {
		b.Add(bit)
	}
}

func (b *Bits) at(i int) bool {
	return (b.data[i/8]>>uint(i%8))&1 == 1
}

// Read returns the next bit and advances the read cursor.
// The second result is false once every written bit has been read.
func (b *Bits) Read() (bool, bool) {
	if b.read >= b.total {
		return false, false
	}
	bit := b.at(b.read)
	b.read++
	return bit, true
}

// Scan returns the bit Read would return, without advancing the cursor.
func (b *Bits) Scan() (bool, bool) {
	if b.read >= b.total {
		return false, false
	}
	return b.at(b.read), true
}

// ReadSlice reads n bits. Positions past the end of the bits are Absent and
// do not move the cursor.
func (b *Bits) ReadSlice(n int) []Bit {
	out := make([]Bit, n)
	for i := range out {
		switch bit, ok := b.Read(); {
		case !ok:
			out[i] = Absent
		case bit:
			out[i] = One
		default:
			out[i] = Zero
		}
	}
	return out
}

// ReadAt returns the bit at the absolute index i.
// The second result is false if i is outside [0, Len()).
func (b *Bits) ReadAt(i int) (bool, bool) {
	if i < 0 || i >= b.total {
		return false, false
	}
	return b.at(i), true
}

// WriteAt overwrites the already written bit at the absolute index i.
// Indices outside [0, Len()) are ignored.
func (b *Bits) WriteAt(i int, bit bool) {
	if i < 0 || i >= b.total {
		return
	}
	mask := byte(1) << uint(i%8)
	if bit {
		b.data[i/8] |= mask
	} else {
		b.data[i/8] &^= mask
	}
}

// ResetReadCursor moves the read cursor back to the first bit.
func (b *Bits) ResetReadCursor() { b.read = 0 }

// exportSize returns the number of bytes Export produces.
func (b *Bits) exportSize() int {
	if b.total == 0 {
		return 4
	}
	return bitsHeaderSize + len(b.data)
}

// Export returns the framed encoding of the bits:
//
//	length uint32  // total size of the region, including this field
//	offset uint8   // bits used in the last byte (1..8), absent if empty
//	data   []byte  // the packed bits
func (b *Bits) Export() []byte {
	return b.AppendExport(make([]byte, 0, b.exportSize()))
}

// AppendExport appends the framed encoding of the bits to dst.
func (b *Bits) AppendExport(dst []byte) []byte {
	dst = le.AppendUint32(dst, uint32(b.exportSize()))
	if b.total == 0 {
		return dst
	}
	offset := b.total - (len(b.data)-1)*8
	dst = append(dst, byte(offset))
	return append(dst, b.data...)
}

// Import replaces the bits with the framed region of data starting at index,
// resets the read cursor and returns the index immediately after the region.
func (b *Bits) Import(data []byte, index int) (int, error) {
	if index < 0 || len(data)-index < 4 {
		return index, errors.Wrapf(ErrMalformedStream, "bits length at %d", index)
	}
	size := int(le.Uint32(data[index:]))
	switch {
	case size == 4:
		b.data, b.total, b.read = nil, 0, 0
		return index + 4, nil
	case size <= bitsHeaderSize || size > len(data)-index:
		return index, errors.Wrapf(ErrMalformedStream, "bits region of %d bytes at %d", size, index)
	}
	offset := int(data[index+4])
	if offset < 1 || offset > 8 {
		return index, errors.Wrapf(ErrMalformedStream, "bits offset %d", offset)
	}
	count := size - bitsHeaderSize
	b.data = append([]byte(nil), data[index+bitsHeaderSize:index+size]...)
	b.total = (count-1)*8 + offset
	b.read = 0
	if offset < 8 {
		b.data[count-1] &= byte(1)<<uint(offset) - 1
	}
	return index + size, nil
}
