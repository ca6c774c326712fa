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

import (
	"math"

	"github.com/pkg/errors"
)

// WriteUint appends the low bits of v, which must be 8, 16, 32 or 64, to the
// arrays stream of c in little-endian order.
func WriteUint(c *Container, bits int, v uint64) {
	switch bits {
	case 8:
		c.arrays = append(c.arrays, uint8(v))
	case 16:
		c.arrays = le.AppendUint16(c.arrays, uint16(v))
	case 32:
		c.arrays = le.AppendUint32(c.arrays, uint32(v))
	case 64:
		c.arrays = le.AppendUint64(c.arrays, v)
	default:
		panic(errors.Errorf("Unsupported integer bit count %v", bits))
	}
}

// WriteInt appends the signed integer v of 8, 16, 32 or 64 bits to the
// arrays stream of c.
func WriteInt(c *Container, bits int, v int64) { WriteUint(c, bits, uint64(v)) }

// WriteFloat32 appends the IEEE-754 bits of v to the arrays stream of c.
func WriteFloat32(c *Container, v float32) { WriteUint(c, 32, uint64(math.Float32bits(v))) }

// WriteFloat64 appends the IEEE-754 bits of v to the arrays stream of c.
func WriteFloat64(c *Container, v float64) { WriteUint(c, 64, math.Float64bits(v)) }

// ReadUint reads an unsigned integer of 8, 16, 32 or 64 bits written by
// WriteUint.
func ReadUint(c *Container, bits int) (uint64, error) {
	data, ok := c.ReadArrays(bits / 8)
	if !ok {
		return 0, errors.Wrapf(ErrMalformedStream, "uint%d", bits)
	}
	switch bits {
	case 8:
		return uint64(data[0]), nil
	case 16:
		return uint64(le.Uint16(data)), nil
	case 32:
		return uint64(le.Uint32(data)), nil
	case 64:
		return le.Uint64(data), nil
	default:
		panic(errors.Errorf("Unsupported integer bit count %v", bits))
	}
}

// ReadInt reads a signed integer of 8, 16, 32 or 64 bits written by WriteInt,
// sign extending it to 64 bits.
func ReadInt(c *Container, bits int) (int64, error) {
	v, err := ReadUint(c, bits)
	if err != nil {
		return 0, err
	}
	switch bits {
	case 8:
		return int64(int8(v)), nil
	case 16:
		return int64(int16(v)), nil
	case 32:
		return int64(int32(v)), nil
	default:
		return int64(v), nil
	}
}

// ReadFloat32 reads a value written by WriteFloat32.
func ReadFloat32(c *Container) (float32, error) {
	v, err := ReadUint(c, 32)
	return math.Float32frombits(uint32(v)), err
}

// ReadFloat64 reads a value written by WriteFloat64.
func ReadFloat64(c *Container) (float64, error) {
	v, err := ReadUint(c, 64)
	return math.Float64frombits(v), err
}
