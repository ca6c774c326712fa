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

	stream "github.com/tuyennv216/BinaryContainer2-sub001/core/data/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/cyclic"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/registry"
)

// Primitive is the operator for booleans, numbers and strings.
// Booleans take a single flag bit, numbers their fixed width in the arrays
// stream, and strings a compact length and their bytes in the items stream.
// int, uint and uintptr are always written as 64 bits.
type Primitive struct {
	base
	bits int
}

// NewPrimitive returns the unbuilt operator for t, failing with
// binary.ErrShapeMismatch if t does not have the right shape.
func NewPrimitive(t reflect.Type) (binary.Operator, error) {
	if err := expect(t, binary.Primitive); err != nil {
		return nil, err
	}
	p := &Primitive{base: base{t}}
	switch t.Kind() {
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		p.bits = 64
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		p.bits = t.Bits()
	}
	return p, nil
}

func (p *Primitive) Shape() binary.Shape { return binary.Primitive }

func (p *Primitive) Build(binary.Resolver) error { return nil }

func (p *Primitive) Write(c *stream.Container, v reflect.Value, _ *cyclic.Pool) error {
	if err := binary.CheckWrite(p.t, v); err != nil {
		return err
	}
	switch p.t.Kind() {
	case reflect.Bool:
		c.AddFlag(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		stream.WriteInt(c, p.bits, v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		stream.WriteUint(c, p.bits, v.Uint())
	case reflect.Float32:
		stream.WriteFloat32(c, float32(v.Float()))
	case reflect.Float64:
		stream.WriteFloat64(c, v.Float())
	case reflect.Complex64:
		x := v.Complex()
		stream.WriteFloat32(c, float32(real(x)))
		stream.WriteFloat32(c, float32(imag(x)))
	case reflect.Complex128:
		x := v.Complex()
		stream.WriteFloat64(c, real(x))
		stream.WriteFloat64(c, imag(x))
	case reflect.String:
		return WriteString(c, v.String())
	}
	return nil
}

func (p *Primitive) Read(c *stream.Container, _ *cyclic.Pool, dst reflect.Value) error {
	if err := binary.CheckRead(p.t, dst); err != nil {
		return err
	}
	switch p.t.Kind() {
	case reflect.Bool:
		b, ok := c.ReadFlag()
		if !ok {
			return malformed("%v", p.t)
		}
		dst.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		x, err := stream.ReadInt(c, p.bits)
		if err != nil {
			return err
		}
		if dst.OverflowInt(x) {
			return malformed("%d overflows %v", x, p.t)
		}
		dst.SetInt(x)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		x, err := stream.ReadUint(c, p.bits)
		if err != nil {
			return err
		}
		if dst.OverflowUint(x) {
			return malformed("%d overflows %v", x, p.t)
		}
		dst.SetUint(x)
	case reflect.Float32:
		x, err := stream.ReadFloat32(c)
		if err != nil {
			return err
		}
		dst.SetFloat(float64(x))
	case reflect.Float64:
		x, err := stream.ReadFloat64(c)
		if err != nil {
			return err
		}
		dst.SetFloat(x)
	case reflect.Complex64:
		re, err := stream.ReadFloat32(c)
		if err != nil {
			return err
		}
		im, err := stream.ReadFloat32(c)
		if err != nil {
			return err
		}
		dst.SetComplex(complex(float64(re), float64(im)))
	case reflect.Complex128:
		re, err := stream.ReadFloat64(c)
		if err != nil {
			return err
		}
		im, err := stream.ReadFloat64(c)
		if err != nil {
			return err
		}
		dst.SetComplex(complex(re, im))
	case reflect.String:
		s, err := ReadString(c)
		if err != nil {
			return err
		}
		dst.SetString(s)
	}
	return nil
}

func init() {
	registry.Factories.Add(binary.Primitive, NewPrimitive)
}
