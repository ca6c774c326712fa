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

// Package test holds fixture types and values shared by the conversion
// tests.
package test

import (
	"github.com/tuyennv216/BinaryContainer2-sub001/core/assert"
)

// Entry is a named value for table driven conversion tests.
type Entry struct {
	Name  string
	Value interface{}
}

var leaves = []Leaf{{1}, {2}, {3}}

// Nested returns entries covering records, arrays, slices and maps nested
// inside each other.
func Nested() []Entry {
	c := func(a uint32) Contains { return Contains{Leaf{a}} }
	return []Entry{
		{"Leaf", Leaf{7}},
		{"Anonymous", Anonymous{Leaf{8}}},
		{"Contains", c(9)},
		{"Array", Array{[3]Leaf{leaves[0], leaves[1], leaves[2]}}},
		{"Slice", Slice{leaves}},
		{"EmptySlice", Slice{[]Leaf{}}},
		{"NilSlice", Slice{}},
		{"MapKey", MapKey{map[Leaf]uint32{{1}: 10, {2}: 20}}},
		{"MapValue", MapValue{map[uint32]Leaf{10: {1}, 20: {2}}}},
		{"MapKeyValue", MapKeyValue{map[Leaf]Leaf{{1}: {2}}}},
		{"ArrayInMap", ArrayInMap{map[uint32][3]Leaf{1: {{1}, {2}, {3}}}}},
		{"SliceInMap", SliceInMap{map[uint32][]Leaf{1: leaves, 2: nil}}},
		{"MapInSlice", MapInSlice{[]map[uint32]uint32{{1: 2}, nil, {}}}},
		{"MapInArray", MapInArray{[2]map[uint32]uint32{{1: 2}, nil}}},
		{"MapOfMaps", MapOfMaps{map[uint32]map[Leaf]Leaf{1: {{1}: {2}}, 2: nil}}},
		{"ArrayOfArrays", ArrayOfArrays{[2][3]Leaf{{{1}, {2}, {3}}, {{4}, {5}, {6}}}}},
		{"SliceOfSlices", SliceOfSlices{[][]Leaf{leaves, nil, {}}}},
		{"Complex", Complex{
			SliceMapArray: []map[Contains][3]Contains{{c(1): {c(2), c(3), c(4)}}},
			SliceArrayMap: [][3]map[Contains]Contains{{{c(1): c(2)}, nil, {}}},
			ArraySliceMap: [3][]map[Contains]Contains{{{c(1): c(2)}}, nil, {}},
			ArrayMapSlice: [3]map[Contains][]Contains{{c(1): {c(2)}}, nil, {}},
			MapArraySlice: map[Contains][3][]Contains{c(1): {{c(2)}, nil, {}}},
			MapSliceArray: map[Contains][][3]Contains{c(1): {{c(2), c(3), c(4)}}},
		}},
	}
}

// VerifyData checks that got holds the bytes expected for the named entry.
func VerifyData(t assert.Output, name string, want, got []byte) bool {
	return assert.For(t, "%s gave unexpected bytes", name).ThatSlice(got).Equals(want)
}
