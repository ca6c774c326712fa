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
	"math"
	"reflect"

	stream "github.com/tuyennv216/BinaryContainer2-sub001/core/data/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/cyclic"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/registry"
)

// Enum is the operator for named integer types with a String method.
// A flag bit marks whether the value fits a compact number; values that do
// not are written as 64 bits.
type Enum struct {
	base
	signed bool
}

// NewEnum returns the operator for the enumeration type t.
func NewEnum(t reflect.Type) (binary.Operator, error) {
	if err := expect(t, binary.Enum); err != nil {
		return nil, err
	}
	e := &Enum{base: base{t}}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.signed = true
	}
	return e, nil
}

func (e *Enum) Shape() binary.Shape { return binary.Enum }

func (e *Enum) Build(binary.Resolver) error { return nil }

func (e *Enum) Write(c *stream.Container, v reflect.Value, _ *cyclic.Pool) error {
	if err := binary.CheckWrite(e.t, v); err != nil {
		return err
	}
	var x int64
	var compact bool
	if e.signed {
		x = v.Int()
		compact = x >= math.MinInt32 && x <= math.MaxInt32
	} else {
		u := v.Uint()
		x = int64(u)
		compact = u <= math.MaxInt32
	}
	c.AddFlag(compact)
	if compact {
		c.AddNumber(int32(x))
	} else {
		stream.WriteInt(c, 64, x)
	}
	return nil
}

func (e *Enum) Read(c *stream.Container, _ *cyclic.Pool, dst reflect.Value) error {
	if err := binary.CheckRead(e.t, dst); err != nil {
		return err
	}
	compact, ok := c.ReadFlag()
	if !ok {
		return malformed("%v", e.t)
	}
	var x int64
	if compact {
		n, err := c.ReadNumber()
		if err != nil {
			return err
		}
		x = int64(n)
	} else {
		n, err := stream.ReadInt(c, 64)
		if err != nil {
			return err
		}
		x = n
	}
	if e.signed {
		if dst.OverflowInt(x) {
			return malformed("%d overflows %v", x, e.t)
		}
		dst.SetInt(x)
		return nil
	}
	if x < 0 && compact || dst.OverflowUint(uint64(x)) {
		return malformed("%d overflows %v", x, e.t)
	}
	dst.SetUint(uint64(x))
	return nil
}

func init() {
	registry.Factories.Add(binary.Enum, NewEnum)
}
