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

package test

type Leaf struct {
	A uint32
}

type Anonymous struct {
	Leaf
}

type Contains struct {
	LeafField Leaf
}

type Array struct {
	Leaves [3]Leaf
}

type Slice struct {
	Leaves []Leaf
}

type MapKey struct {
	M map[Leaf]uint32
}

type MapValue struct {
	M map[uint32]Leaf
}

type MapKeyValue struct {
	M map[Leaf]Leaf
}

type ArrayInMap struct {
	M map[uint32][3]Leaf
}

type SliceInMap struct {
	M map[uint32][]Leaf
}

type MapInSlice struct {
	Slice []map[uint32]uint32
}

type MapInArray struct {
	Array [2]map[uint32]uint32
}

type MapOfMaps struct {
	M map[uint32]map[Leaf]Leaf
}

type ArrayOfArrays struct {
	Array [2][3]Leaf
}

type SliceOfSlices struct {
	Slice [][]Leaf
}

type Complex struct {
	SliceMapArray []map[Contains][3]Contains
	SliceArrayMap [][3]map[Contains]Contains
	ArraySliceMap [3][]map[Contains]Contains
	ArrayMapSlice [3]map[Contains][]Contains
	MapArraySlice map[Contains][3][]Contains
	MapSliceArray map[Contains][][3]Contains
}

// Node is a graph vertex that can form cycles through Next and Peers.
type Node struct {
	Name  string
	Next  *Node
	Peers []*Node
	Attrs map[string]interface{}
}

// Ring returns n nodes, each pointing to the next, with the last pointing
// back to the first.
func Ring(n int) []*Node {
	nodes := make([]*Node, n)
	for i := range nodes {
		nodes[i] = &Node{Name: string(rune('A' + i))}
	}
	for i, node := range nodes {
		node.Next = nodes[(i+1)%n]
	}
	return nodes
}
