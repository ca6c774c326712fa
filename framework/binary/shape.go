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
	"container/list"
	"encoding"
	"fmt"
	"reflect"
)

// Shape is the family of encodings a Go type belongs to.
type Shape int

const (
	// Unsupported types (channels, functions, unsafe pointers) have no encoding.
	Unsupported Shape = iota
	// Primitive is booleans, numbers and strings.
	Primitive
	// Enum is a named integer type with a String method.
	Enum
	// Record is a struct, encoded member by member.
	Record
	// Array is a fixed size array.
	Array
	// Sequence is a slice, used for lists, queues and stacks alike.
	Sequence
	// Associative is a map, including sets of the form map[K]struct{}.
	Associative
	// Optional is a pointer to a value.
	Optional
	// Interface is an interface type holding any registered dynamic type.
	Interface
	// Linked is a *list.List from container/list.
	Linked
	// Marshaled is a value type implementing encoding.BinaryMarshaler and,
	// through its pointer, encoding.BinaryUnmarshaler.
	Marshaled
	// Custom is an operator registered by hand.
	Custom
)

var shapeNames = []string{
	"unsupported", "primitive", "enum", "record", "array", "sequence",
	"associative", "optional", "interface", "linked", "marshaled", "custom",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

var (
	listType        = reflect.TypeOf((*list.List)(nil))
	stringerType    = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	marshalerType   = reflect.TypeOf((*encoding.BinaryMarshaler)(nil)).Elem()
	unmarshalerType = reflect.TypeOf((*encoding.BinaryUnmarshaler)(nil)).Elem()
)

// Classify returns the shape of t.
func Classify(t reflect.Type) Shape {
	if t == listType {
		return Linked
	}
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface:
	default:
		if t.Implements(marshalerType) && reflect.PointerTo(t).Implements(unmarshalerType) {
			return Marshaled
		}
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return Primitive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		if t.Name() != "" && t.Implements(stringerType) {
			return Enum
		}
		return Primitive
	case reflect.Array:
		return Array
	case reflect.Slice:
		return Sequence
	case reflect.Map:
		return Associative
	case reflect.Ptr:
		return Optional
	case reflect.Interface:
		return Interface
	case reflect.Struct:
		return Record
	default:
		return Unsupported
	}
}

// Nullable returns true if values of t can be nil, and so carry a null flag.
func Nullable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return true
	default:
		return false
	}
}
