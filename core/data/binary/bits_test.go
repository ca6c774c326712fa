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
	"testing"

	"github.com/tuyennv216/BinaryContainer2-sub001/core/assert"
	"github.com/tuyennv216/BinaryContainer2-sub001/core/data/binary"
)

var testBitSequence = []bool{
	false, false, false, false, false, false, false, false,
	true, false, false, false, false, false, false, false,
	false, true, false, false, false, false, false, false,
	false, false, false, false, true, false, false, false,
	false, false, false, false, false, false, false, true,
	true, false, true,
}

var testByteSequence = []byte{
	//    LSB        MSB
	0x00, // 00000000
	0x01, // 10000000
	0x02, // 01000000
	0x10, // 00001000
	0x80, // 00000001
	0x05, // 101
}

func TestBitsAdd(t *testing.T) {
	assert := assert.To(t)
	bits := binary.Bits{}
	for i, b := range testBitSequence {
		bits.Add(b)
		assert.For("len %d", i).ThatInteger(bits.Len()).Equals(i + 1)
		assert.For("bytes %d", i).ThatInteger(bits.ByteCount()).Equals((i + 8) / 8)
	}
	assert.For("data").ThatSlice(bits.Bytes()).Equals(testByteSequence)
}

func TestBitsAddSliceMatchesAdd(t *testing.T) {
	assert := assert.To(t)
	single, sliced := binary.Bits{}, binary.Bits{}
	for _, b := range testBitSequence {
		single.Add(b)
	}
	sliced.AddSlice(testBitSequence)
	assert.For("len").ThatInteger(sliced.Len()).Equals(single.Len())
	assert.For("data").ThatSlice(sliced.Bytes()).Equals(single.Bytes())
}

func TestBitsRead(t *testing.T) {
	assert := assert.To(t)
	bits := binary.Bits{}
	bits.AddSlice(testBitSequence)
	for i, expected := range testBitSequence {
		peek, ok := bits.Scan()
		assert.For("scan ok %d", i).ThatBoolean(ok).IsTrue()
		assert.For("scan %d", i).ThatBoolean(peek).Equals(expected)
		got, ok := bits.Read()
		assert.For("read ok %d", i).ThatBoolean(ok).IsTrue()
		assert.For("read %d", i).ThatBoolean(got).Equals(expected)
	}
	_, ok := bits.Read()
	assert.For("read past end").ThatBoolean(ok).IsFalse()
	_, ok = bits.Scan()
	assert.For("scan past end").ThatBoolean(ok).IsFalse()
}

func TestBitsReadSlice(t *testing.T) {
	assert := assert.To(t)
	bits := binary.Bits{}
	bits.AddSlice([]bool{true, false, true})
	got := bits.ReadSlice(5)
	assert.For("slice").ThatSlice(got).Equals([]binary.Bit{binary.One, binary.Zero, binary.One, binary.Absent, binary.Absent})
	assert.For("remaining").ThatInteger(bits.Remaining()).Equals(0)
	bits.ResetReadCursor()
	assert.For("after reset").ThatSlice(bits.ReadSlice(1)).Equals([]binary.Bit{binary.One})
}

func TestBitsRandomAccess(t *testing.T) {
	assert := assert.To(t)
	bits := binary.Bits{}
	bits.AddSlice([]bool{false, false, false, false, false, false, false, false, false})
	bits.WriteAt(3, true)
	bits.WriteAt(8, true)
	bits.WriteAt(-1, true)
	bits.WriteAt(9, true)
	bits.WriteAt(100, true)
	assert.For("len unchanged").ThatInteger(bits.Len()).Equals(9)
	assert.For("data").ThatSlice(bits.Bytes()).Equals([]byte{0x08, 0x01})
	for _, test := range []struct {
		index int
		bit   bool
		ok    bool
	}{
		{-1, false, false},
		{0, false, true},
		{3, true, true},
		{8, true, true},
		{9, false, false},
	} {
		bit, ok := bits.ReadAt(test.index)
		assert.For("ok %d", test.index).ThatBoolean(ok).Equals(test.ok)
		assert.For("bit %d", test.index).ThatBoolean(bit).Equals(test.bit)
	}
	bits.WriteAt(3, false)
	assert.For("cleared").ThatSlice(bits.Bytes()).Equals([]byte{0x00, 0x01})
}

func TestBitsExport(t *testing.T) {
	assert := assert.To(t)
	empty := binary.Bits{}
	assert.For("empty").ThatSlice(empty.Export()).Equals([]byte{4, 0, 0, 0})

	bits := binary.Bits{}
	for i := 0; i < 5; i++ {
		bits.Add(true)
	}
	for i := 0; i < 3; i++ {
		bits.Add(false)
	}
	assert.For("full byte").ThatSlice(bits.Export()).Equals([]byte{6, 0, 0, 0, 8, 31})

	bits.Add(true)
	assert.For("spill").ThatSlice(bits.Export()).Equals([]byte{7, 0, 0, 0, 1, 31, 1})
}

func TestBitsImport(t *testing.T) {
	assert := assert.To(t)
	src := binary.Bits{}
	src.AddSlice(testBitSequence)
	data := append([]byte{0xAA, 0xBB}, src.Export()...)
	data = append(data, empty()...)

	got := binary.Bits{}
	next, err := got.Import(data, 2)
	assert.For("import").ThatError(err).Succeeded()
	assert.For("next").ThatInteger(next).Equals(2 + 5 + len(testByteSequence))
	assert.For("len").ThatInteger(got.Len()).Equals(len(testBitSequence))
	assert.For("data").ThatSlice(got.Bytes()).Equals(testByteSequence)

	next, err = got.Import(data, next)
	assert.For("import empty").ThatError(err).Succeeded()
	assert.For("end").ThatInteger(next).Equals(len(data))
	assert.For("empty len").ThatInteger(got.Len()).Equals(0)
}

func TestBitsImportMalformed(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		name string
		data []byte
	}{
		{"short length", []byte{4, 0}},
		{"truncated data", []byte{7, 0, 0, 0, 1, 31}},
		{"bad offset", []byte{6, 0, 0, 0, 9, 31}},
		{"zero offset", []byte{6, 0, 0, 0, 0, 31}},
		{"no data", []byte{5, 0, 0, 0, 1}},
	} {
		bits := binary.Bits{}
		_, err := bits.Import(test.data, 0)
		assert.For(test.name).ThatError(err).Is(binary.ErrMalformedStream)
	}
}

func empty() []byte {
	b := binary.Bits{}
	return b.Export()
}

func BenchmarkBitsAdd(b *testing.B) {
	bits := binary.Bits{}
	for i := 0; i < b.N; i++ {
		bits.Add(i&1 == 1)
	}
}

func BenchmarkBitsRead(b *testing.B) {
	bits := binary.Bits{}
	for i := 0; i < b.N; i++ {
		bits.Add(i&3 == 1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bits.Read()
	}
}
