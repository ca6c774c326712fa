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

// Pointer is the operator for pointers, the optional values of Go.
// A pointer is registered with the pool before its target is written, so
// a cycle leading back to it is written as a back-reference.
type Pointer struct {
	base
	elem binary.Operator
}

func NewPointer(t reflect.Type) (binary.Operator, error) {
	if err := expect(t, binary.Optional); err != nil {
		return nil, err
	}
	return &Pointer{base: base{t}}, nil
}

func (o *Pointer) Shape() binary.Shape { return binary.Optional }

func (o *Pointer) Build(r binary.Resolver) error {
	elem, err := r.Lookup(o.t.Elem())
	if err != nil {
		return errors.Wrapf(err, "target of %v", o.t)
	}
	o.elem = elem
	return nil
}

func (o *Pointer) Write(c *stream.Container, v reflect.Value, p *cyclic.Pool) error {
	if err := binary.CheckWrite(o.t, v); err != nil {
		return err
	}
	if writeNull(c, v) || p.Write(c, v) {
		return nil
	}
	p.AddObject(v)
	return o.elem.Write(c, v.Elem(), p)
}

func (o *Pointer) Read(c *stream.Container, p *cyclic.Pool, dst reflect.Value) error {
	if err := binary.CheckRead(o.t, dst); err != nil {
		return err
	}
	if null, err := readNull(c, o.t); err != nil || null {
		dst.Set(reflect.Zero(o.t))
		return err
	}
	got, seen, err := p.Read(c)
	if err != nil {
		return err
	}
	if seen {
		return restore(dst, got)
	}
	out := reflect.New(o.t.Elem())
	p.AddObject(out)
	dst.Set(out)
	return o.elem.Read(c, p, out.Elem())
}

func init() {
	registry.Factories.Add(binary.Optional, NewPointer)
}
