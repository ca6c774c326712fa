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

// Interface is the operator for interface types. The dynamic type of a
// value is written by name the first time it is met and as a
// back-reference after that, followed by the value itself.
// The dynamic type must be named in the registry.
type Interface struct {
	base
	names   binary.Names
	runtime binary.Resolver
}

// NewInterface returns the operator for the interface type t.
func NewInterface(t reflect.Type) (binary.Operator, error) {
	if err := expect(t, binary.Interface); err != nil {
		return nil, err
	}
	return &Interface{base: base{t}}, nil
}

func (o *Interface) Shape() binary.Shape { return binary.Interface }

func (o *Interface) Build(r binary.Resolver) error {
	o.names = r.Names()
	o.runtime = r.Runtime()
	return nil
}

func (o *Interface) Write(c *stream.Container, v reflect.Value, p *cyclic.Pool) error {
	if err := binary.CheckWrite(o.t, v); err != nil {
		return err
	}
	if writeNull(c, v) {
		return nil
	}
	value := v.Elem()
	t := value.Type()
	if !p.Write(c, reflect.ValueOf(t)) {
		name, ok := o.names.NameOf(t)
		if !ok {
			return errors.Wrapf(binary.ErrUnknownName, "%v held by %v", t, o.t)
		}
		p.AddObject(reflect.ValueOf(t))
		if err := WriteString(c, name); err != nil {
			return err
		}
	}
	op, err := o.runtime.Lookup(t)
	if err != nil {
		return err
	}
	return op.Write(c, value, p)
}

func (o *Interface) Read(c *stream.Container, p *cyclic.Pool, dst reflect.Value) error {
	if err := binary.CheckRead(o.t, dst); err != nil {
		return err
	}
	if null, err := readNull(c, o.t); err != nil || null {
		dst.Set(reflect.Zero(o.t))
		return err
	}
	t, err := o.readType(c, p)
	if err != nil {
		return err
	}
	if !t.Implements(o.t) {
		return malformed("%v does not implement %v", t, o.t)
	}
	op, err := o.runtime.Lookup(t)
	if err != nil {
		return err
	}
	value := reflect.New(t).Elem()
	if err := op.Read(c, p, value); err != nil {
		return err
	}
	dst.Set(value)
	return nil
}

func (o *Interface) readType(c *stream.Container, p *cyclic.Pool) (reflect.Type, error) {
	got, seen, err := p.Read(c)
	if err != nil {
		return nil, err
	}
	if seen {
		t, ok := got.Interface().(reflect.Type)
		if !ok {
			return nil, malformed("back-reference to %v used as a type", got.Type())
		}
		return t, nil
	}
	name, err := ReadString(c)
	if err != nil {
		return nil, errors.Wrap(err, "type name")
	}
	t, ok := o.names.TypeOf(name)
	if !ok {
		return nil, errors.Wrapf(binary.ErrUnknownName, "%q read for %v", name, o.t)
	}
	p.AddObject(reflect.ValueOf(t))
	return t, nil
}

func init() {
	registry.Factories.Add(binary.Interface, NewInterface)
}
