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

// Package binary implements the working buffer of a single conversion.
//
// A Container multiplexes three independently addressed streams so that
// boolean metadata, raw payload and numeric fields never interleave:
//
//	flags   Bits    every binary decision (null, back-reference, small number...)
//	items   []byte  payload, including regions reserved and back-patched later
//	arrays  []byte  numeric and array payload read back with an explicit length
//
// Export frames the container as:
//
//	totalLength  uint32  // including this field
//	capability   uint8   // see Capability
//	flags        Bits export, if HasFlags
//	items        uint32 length + bytes, if HasItems
//	arrays       uint32 length + bytes, if HasArrays
//
// All integers are little-endian. A Container belongs to one conversion and is
// not safe for concurrent use.
package binary

import (
	endian "encoding/binary"
	"math"
	"strings"

	"github.com/pkg/errors"
)

var le = endian.LittleEndian

// Capability is the bit set that marks which optional streams are present in
// an exported container, plus the conversion level markers.
type Capability uint8

const (
	// HasFlags is set when the flags stream holds at least one bit.
	HasFlags Capability = 1 << iota
	// HasItems is set when the items stream is not empty.
	HasItems
	// HasArrays is set when the arrays stream is not empty.
	HasArrays
	// UsingReferencePool is set when a back-reference was written.
	UsingReferencePool
	// RootIsNull is set when the converted value was itself null.
	RootIsNull

	allCapabilities = HasFlags | HasItems | HasArrays | UsingReferencePool | RootIsNull
)

var capabilityNames = []string{"flags", "items", "arrays", "pool", "null-root"}

func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	parts := []string{}
	for i, name := range capabilityNames {
		if c&(1<<uint(i)) != 0 {
			parts = append(parts, name)
		}
	}
	if c&^allCapabilities != 0 {
		parts = append(parts, "unknown")
	}
	return strings.Join(parts, "|")
}

// containerHeaderSize is the total length field and the capability byte.
const containerHeaderSize = 5

// smallNumberLimit is the largest value AddNumber stores in a single byte.
const smallNumberLimit = 255

type reservation struct {
	start, size int
}

// Container is the segmented byte-stream container that backs one conversion.
type Container struct {
	flags      Bits
	items      []byte
	itemsRead  int
	arrays     []byte
	arraysRead int
	temps      []reservation
	pooled     bool
	rootNull   bool
}

// NewContainer returns an empty container ready for writing.
func NewContainer() *Container {
	return &Container{}
}

// Flags returns the flag stream.
func (c *Container) Flags() *Bits { return &c.flags }

// AddFlag appends a bit to the flag stream.
func (c *Container) AddFlag(bit bool) { c.flags.Add(bit) }

// ReadFlag reads the next bit of the flag stream.
// The second result is false if the flag stream is exhausted.
func (c *Container) ReadFlag() (bool, bool) { return c.flags.Read() }

// AddItems appends data to the items stream.
func (c *Container) AddItems(data []byte) { c.items = append(c.items, data...) }

// ItemsLen returns the number of bytes in the items stream.
func (c *Container) ItemsLen() int { return len(c.items) }

// ReadItems reads the next n bytes of the items stream.
// If fewer than n bytes remain, nothing is consumed and ok is false. The
// returned slice aliases the container.
func (c *Container) ReadItems(n int) (data []byte, ok bool) {
	return readBytes(c.items, &c.itemsRead, n)
}

// AddArrays appends data to the arrays stream.
func (c *Container) AddArrays(data []byte) { c.arrays = append(c.arrays, data...) }

// ArraysLen returns the number of bytes in the arrays stream.
func (c *Container) ArraysLen() int { return len(c.arrays) }

// ReadArrays reads the next n bytes of the arrays stream.
// If fewer than n bytes remain, nothing is consumed and ok is false. The
// returned slice aliases the container.
func (c *Container) ReadArrays(n int) (data []byte, ok bool) {
	return readBytes(c.arrays, &c.arraysRead, n)
}

func readBytes(buf []byte, pos *int, n int) ([]byte, bool) {
	if n < 0 || n > len(buf)-*pos {
		return nil, false
	}
	if n == 0 {
		return []byte{}, true
	}
	data := buf[*pos : *pos+n : *pos+n]
	*pos += n
	return data, true
}

// Remaining returns the number of unread units across all streams: bits of
// flags plus bytes of items and arrays. Every non-empty value consumes at
// least one unit, so a declared element count above Remaining cannot be
// genuine.
func (c *Container) Remaining() int {
	return c.flags.Remaining() + len(c.items) - c.itemsRead + len(c.arrays) - c.arraysRead
}

// Consumed returns true if every stream has been read to its end.
func (c *Container) Consumed() bool { return c.Remaining() == 0 }

// AddNumber writes n as a compact integer.
// A flag bit records whether n is in [0, 255]; if so a single byte is appended
// to the arrays stream, otherwise the four little-endian bytes of n are.
func (c *Container) AddNumber(n int32) {
	if n >= 0 && n <= smallNumberLimit {
		c.flags.Add(true)
		c.arrays = append(c.arrays, byte(n))
		return
	}
	c.flags.Add(false)
	c.arrays = le.AppendUint32(c.arrays, uint32(n))
}

// ReadNumber reads a compact integer written by AddNumber.
func (c *Container) ReadNumber() (int32, error) {
	small, ok := c.flags.Read()
	if !ok {
		return 0, errors.Wrap(ErrMalformedStream, "number flag")
	}
	if small {
		data, ok := c.ReadArrays(1)
		if !ok {
			return 0, errors.Wrap(ErrMalformedStream, "small number")
		}
		return int32(data[0]), nil
	}
	data, ok := c.ReadArrays(4)
	if !ok {
		return 0, errors.Wrap(ErrMalformedStream, "number")
	}
	return int32(le.Uint32(data)), nil
}

// ReadCount reads a compact integer that declares how many elements follow.
// Negative counts, and counts larger than the unread content of the
// container, are malformed.
func (c *Container) ReadCount() (int, error) {
	n, err := c.ReadNumber()
	if err != nil {
		return 0, err
	}
	if n < 0 || int(n) > c.Remaining() {
		return 0, errors.Wrapf(ErrMalformedStream, "count %d with %d units remaining", n, c.Remaining())
	}
	return int(n), nil
}

// AddTempBytes reserves n zero bytes at the end of the items stream, to be
// filled in later by SetTempBytes. Reservations nest and must be completed
// in reverse order.
func (c *Container) AddTempBytes(n int) {
	c.temps = append(c.temps, reservation{start: len(c.items), size: n})
	c.items = append(c.items, make([]byte, n)...)
}

// SetTempBytes completes the most recent reservation by copying data over
// the start of the reserved region. Any reserved bytes past len(data) stay
// zero.
func (c *Container) SetTempBytes(data []byte) error {
	if len(c.temps) == 0 {
		return errors.Wrap(ErrTempBytes, "no pending reservation")
	}
	r := c.temps[len(c.temps)-1]
	if len(data) > r.size {
		return errors.Wrapf(ErrTempBytes, "%d bytes for a reservation of %d", len(data), r.size)
	}
	c.temps = c.temps[:len(c.temps)-1]
	copy(c.items[r.start:r.start+r.size], data)
	return nil
}

// PendingTempBytes returns the number of reservations not yet completed.
func (c *Container) PendingTempBytes() int { return len(c.temps) }

// SetUsingReferencePool marks the container as holding back-references.
func (c *Container) SetUsingReferencePool(v bool) { c.pooled = v }

// UsingReferencePool returns the reference pool marker.
func (c *Container) UsingReferencePool() bool { return c.pooled }

// SetRootIsNull marks the container as the encoding of a null root.
func (c *Container) SetRootIsNull(v bool) { c.rootNull = v }

// RootIsNull returns the null root marker.
func (c *Container) RootIsNull() bool { return c.rootNull }

// Capabilities computes the capability byte from the current content.
func (c *Container) Capabilities() Capability {
	caps := Capability(0)
	if c.flags.Len() > 0 {
		caps |= HasFlags
	}
	if len(c.items) > 0 {
		caps |= HasItems
	}
	if len(c.arrays) > 0 {
		caps |= HasArrays
	}
	if c.pooled {
		caps |= UsingReferencePool
	}
	if c.rootNull {
		caps |= RootIsNull
	}
	return caps
}

// ExportSize returns the number of bytes Export would produce.
func (c *Container) ExportSize() int {
	size := containerHeaderSize
	if c.flags.Len() > 0 {
		size += c.flags.exportSize()
	}
	if len(c.items) > 0 {
		size += 4 + len(c.items)
	}
	if len(c.arrays) > 0 {
		size += 4 + len(c.arrays)
	}
	return size
}

// Export returns the framed encoding of the container.
// Every reservation must have been completed.
func (c *Container) Export() ([]byte, error) {
	return c.AppendExport(nil)
}

// AppendExport appends the framed encoding of the container to dst.
func (c *Container) AppendExport(dst []byte) ([]byte, error) {
	if len(c.temps) != 0 {
		return dst, errors.Wrapf(ErrTempBytes, "%d reservations still pending", len(c.temps))
	}
	size := c.ExportSize()
	if uint64(size) > math.MaxUint32 {
		return dst, errors.Wrapf(ErrTooLarge, "%d bytes", size)
	}
	caps := c.Capabilities()
	if cap(dst)-len(dst) < size {
		grown := make([]byte, len(dst), len(dst)+size)
		copy(grown, dst)
		dst = grown
	}
	dst = le.AppendUint32(dst, uint32(size))
	dst = append(dst, byte(caps))
	if caps&HasFlags != 0 {
		dst = c.flags.AppendExport(dst)
	}
	if caps&HasItems != 0 {
		dst = le.AppendUint32(dst, uint32(len(c.items)))
		dst = append(dst, c.items...)
	}
	if caps&HasArrays != 0 {
		dst = le.AppendUint32(dst, uint32(len(c.arrays)))
		dst = append(dst, c.arrays...)
	}
	return dst, nil
}

// Import decodes the container framed at data[index:], returning it ready
// for reading along with the index immediately after the consumed region,
// so that containers packed back to back can be read in sequence.
func Import(data []byte, index int) (*Container, int, error) {
	if index < 0 || len(data)-index < containerHeaderSize {
		return nil, index, errors.Wrapf(ErrMalformedStream, "container header at %d", index)
	}
	size := int(le.Uint32(data[index:]))
	if size < containerHeaderSize || size > len(data)-index {
		return nil, index, errors.Wrapf(ErrMalformedStream, "container of %d bytes at %d", size, index)
	}
	end := index + size
	caps := Capability(data[index+4])
	if caps&^allCapabilities != 0 {
		return nil, index, errors.Wrapf(ErrMalformedStream, "capability %#x", uint8(caps))
	}
	c := &Container{
		pooled:   caps&UsingReferencePool != 0,
		rootNull: caps&RootIsNull != 0,
	}
	region := data[:end]
	pos := index + containerHeaderSize
	if caps&HasFlags != 0 {
		next, err := c.flags.Import(region, pos)
		if err != nil {
			return nil, index, err
		}
		if c.flags.Len() == 0 {
			return nil, index, errors.Wrap(ErrMalformedStream, "empty flags marked present")
		}
		pos = next
	}
	var err error
	if caps&HasItems != 0 {
		if c.items, pos, err = importStream(region, pos, "items"); err != nil {
			return nil, index, err
		}
	}
	if caps&HasArrays != 0 {
		if c.arrays, pos, err = importStream(region, pos, "arrays"); err != nil {
			return nil, index, err
		}
	}
	if pos != end {
		return nil, index, errors.Wrapf(ErrMalformedStream, "container declares %d bytes, content ends after %d", size, pos-index)
	}
	return c, end, nil
}

func importStream(data []byte, pos int, name string) ([]byte, int, error) {
	if len(data)-pos < 4 {
		return nil, pos, errors.Wrapf(ErrMalformedStream, "%s length at %d", name, pos)
	}
	n := int(le.Uint32(data[pos:]))
	pos += 4
	if n == 0 || n > len(data)-pos {
		return nil, pos, errors.Wrapf(ErrMalformedStream, "%s of %d bytes at %d", name, n, pos)
	}
	return append([]byte(nil), data[pos:pos+n]...), pos + n, nil
}
