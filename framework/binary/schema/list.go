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
	"container/list"
	endian "encoding/binary"
	"reflect"

	"github.com/pkg/errors"

	stream "github.com/tuyennv216/BinaryContainer2-sub001/core/data/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/cyclic"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/registry"
)

var anyType = reflect.TypeOf((*interface{})(nil)).Elem()

// List is the operator for *list.List. The element count is only known
// once the list has been walked, so four bytes are reserved for it in the
// items stream and filled in afterwards. Elements are written as interface
// values and so must have named dynamic types.
type List struct {
	base
	elem binary.Operator
}

func NewList(t reflect.Type) (binary.Operator, error) {
	if err := expect(t, binary.Linked); err != nil {
		return nil, err
	}
	return &List{base: base{t}}, nil
}

func (o *List) Shape() binary.Shape { return binary.Linked }

func (o *List) Build(r binary.Resolver) error {
	elem, err := r.Lookup(anyType)
	if err != nil {
		return errors.Wrapf(err, "element of %v", o.t)
	}
	o.elem = elem
	return nil
}

func (o *List) Write(c *stream.Container, v reflect.Value, p *cyclic.Pool) error {
	if err := binary.CheckWrite(o.t, v); err != nil {
		return err
	}
	if writeNull(c, v) || p.Write(c, v) {
		return nil
	}
	p.AddObject(v)
	l := v.Interface().(*list.List)
	c.AddTempBytes(4)
	count := uint32(0)
	for e := l.Front(); e != nil; e = e.Next() {
		if err := o.elem.Write(c, reflect.ValueOf(&e.Value).Elem(), p); err != nil {
			return errors.Wrapf(err, "%v element %d", o.t, count)
		}
		count++
	}
	return c.SetTempBytes(endian.LittleEndian.AppendUint32(nil, count))
}

func (o *List) Read(c *stream.Container, p *cyclic.Pool, dst reflect.Value) error {
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
	l := list.New()
	out := reflect.ValueOf(l)
	p.AddObject(out)
	dst.Set(out)
	data, ok := c.ReadItems(4)
	if !ok {
		return malformed("length of %v", o.t)
	}
	n := endian.LittleEndian.Uint32(data)
	if uint64(n) > uint64(c.Remaining()) {
		return malformed("%v of %d elements with %d units remaining", o.t, n, c.Remaining())
	}
	for i := uint32(0); i < n; i++ {
		var value interface{}
		if err := o.elem.Read(c, p, reflect.ValueOf(&value).Elem()); err != nil {
			return errors.Wrapf(err, "%v element %d", o.t, i)
		}
		l.PushBack(value)
	}
	return nil
}

func init() {
	registry.Factories.Add(binary.Linked, NewList)
}
