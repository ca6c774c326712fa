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

package binary_test

import (
	"math"
	"testing"

	"github.com/tuyennv216/BinaryContainer2-sub001/core/assert"
	"github.com/tuyennv216/BinaryContainer2-sub001/core/data/binary"
)

func TestFixedWidth(t *testing.T) {
	assert := assert.To(t)
	c := binary.NewContainer()
	binary.WriteInt(c, 8, -2)
	binary.WriteUint(c, 16, 0xBEEF)
	binary.WriteInt(c, 32, math.MinInt32)
	binary.WriteUint(c, 64, math.MaxUint64)
	binary.WriteFloat32(c, float32(math.Inf(-1)))
	binary.WriteFloat64(c, math.Copysign(0, -1))
	assert.For("size").ThatInteger(c.ArraysLen()).Equals(1 + 2 + 4 + 8 + 4 + 8)

	got := roundTrip(t, c)
	i8, err := binary.ReadInt(got, 8)
	assert.For("int8 err").ThatError(err).Succeeded()
	assert.For("int8").That(i8).Equals(int64(-2))
	u16, err := binary.ReadUint(got, 16)
	assert.For("uint16 err").ThatError(err).Succeeded()
	assert.For("uint16").That(u16).Equals(uint64(0xBEEF))
	i32, err := binary.ReadInt(got, 32)
	assert.For("int32 err").ThatError(err).Succeeded()
	assert.For("int32").That(i32).Equals(int64(math.MinInt32))
	u64, err := binary.ReadUint(got, 64)
	assert.For("uint64 err").ThatError(err).Succeeded()
	assert.For("uint64").That(u64).Equals(uint64(math.MaxUint64))
	f32, err := binary.ReadFloat32(got)
	assert.For("float32 err").ThatError(err).Succeeded()
	assert.For("float32").ThatBoolean(math.IsInf(float64(f32), -1)).IsTrue()
	f64, err := binary.ReadFloat64(got)
	assert.For("float64 err").ThatError(err).Succeeded()
	assert.For("float64 sign").ThatBoolean(math.Signbit(f64)).IsTrue()

	_, err = binary.ReadUint(got, 8)
	assert.For("exhausted").ThatError(err).Is(binary.ErrMalformedStream)
}

func TestFixedWidthBadSize(t *testing.T) {
	assert := assert.To(t)
	defer func() {
		assert.For("panic").That(recover()).IsNotNil()
	}()
	binary.WriteUint(binary.NewContainer(), 12, 1)
}
