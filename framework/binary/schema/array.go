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

package schema

import (
	"reflect"

	"github.com/pkg/errors"

	stream "github.com/tuyennv216/BinaryContainer2-sub001/core/data/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/cyclic"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/registry"
)

// Array is the operator for fixed size arrays. The length is part of the
// type, so only the elements are written. Byte arrays are copied in bulk to
// the arrays stream.
type Array struct {
	base
	elem binary.Operator
	bulk bool
}

// NewArray returns the unbuilt operator for t, failing with
// binary.ErrShapeMismatch if t does not have the right shape.
func NewArray(t reflect.Type) (binary.Operator, error) {
	if err := expect(t, binary.Array); err != nil {
		return nil, err
	}
	return &Array{base: base{t}, bulk: isBytes(t.Elem())}, nil
}

// isBytes returns true for element types copied as raw bytes.
func isBytes(t reflect.Type) bool {
	return t.Kind() == reflect.Uint8 && binary.Classify(t) == binary.Primitive
}

func (a *Array) Shape() binary.Shape { return binary.Array }

func (a *Array) Build(r binary.Resolver) error {
	elem, err := r.Lookup(a.t.Elem())
	if err != nil {
		return errors.Wrapf(err, "element of %v", a.t)
	}
	a.elem = elem
	return nil
}

func (a *Array) Write(c *stream.Container, v reflect.Value, p *cyclic.Pool) error {
	if err := binary.CheckWrite(a.t, v); err != nil {
		return err
	}
	n := a.t.Len()
	if a.bulk {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(v.Index(i).Uint())
		}
		c.AddArrays(data)
		return nil
	}
	for i := 0; i < n; i++ {
		if err := a.elem.Write(c, v.Index(i), p); err != nil {
			return errors.Wrapf(err, "%v[%d]", a.t, i)
		}
	}
	return nil
}

func (a *Array) Read(c *stream.Container, p *cyclic.Pool, dst reflect.Value) error {
	if err := binary.CheckRead(a.t, dst); err != nil {
		return err
	}
	n := a.t.Len()
	if a.bulk {
		data, ok := c.ReadArrays(n)
		if !ok {
			return malformed("%v", a.t)
		}
		for i, b := range data {
			dst.Index(i).SetUint(uint64(b))
		}
		return nil
	}
	for i := 0; i < n; i++ {
		if err := a.elem.Read(c, p, dst.Index(i)); err != nil {
			return errors.Wrapf(err, "%v[%d]", a.t, i)
		}
	}
	return nil
}

func init() {
	registry.Factories.Add(binary.Array, NewArray)
}
