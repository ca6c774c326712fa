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

// Slice is the operator for slices, which stand in for lists, queues and
// stacks. A nil slice is written as null; otherwise the length is written
// followed by the elements. Byte slices are copied in bulk.
//
// Slices take part in the pool by their start and length, so a slice held
// in two places, or holding itself through an interface, is read back as
// one slice. Overlapping slices of different bounds are read back as
// independent slices.
type Slice struct {
	base
	elem binary.Operator
	bulk bool
}

func NewSlice(t reflect.Type) (binary.Operator, error) {
	if err := expect(t, binary.Sequence); err != nil {
		return nil, err
	}
	return &Slice{base: base{t}, bulk: isBytes(t.Elem())}, nil
}

func (s *Slice) Shape() binary.Shape { return binary.Sequence }

func (s *Slice) Build(r binary.Resolver) error {
	elem, err := r.Lookup(s.t.Elem())
	if err != nil {
		return errors.Wrapf(err, "element of %v", s.t)
	}
	s.elem = elem
	return nil
}

func (s *Slice) Write(c *stream.Container, v reflect.Value, p *cyclic.Pool) error {
	if err := binary.CheckWrite(s.t, v); err != nil {
		return err
	}
	if writeNull(c, v) || p.Write(c, v) {
		return nil
	}
	p.AddObject(v)
	n := v.Len()
	if err := writeCount(c, s.t, n); err != nil {
		return err
	}
	if s.bulk {
		c.AddArrays(v.Bytes())
		return nil
	}
	for i := 0; i < n; i++ {
		if err := s.elem.Write(c, v.Index(i), p); err != nil {
			return errors.Wrapf(err, "%v[%d]", s.t, i)
		}
	}
	return nil
}

func (s *Slice) Read(c *stream.Container, p *cyclic.Pool, dst reflect.Value) error {
	if err := binary.CheckRead(s.t, dst); err != nil {
		return err
	}
	if null, err := readNull(c, s.t); err != nil || null {
		dst.Set(reflect.Zero(s.t))
		return err
	}
	got, seen, err := p.Read(c)
	if err != nil {
		return err
	}
	if seen {
		return restore(dst, got)
	}
	if s.bulk {
		n, err := c.ReadNumber()
		if err != nil {
			return errors.Wrapf(err, "length of %v", s.t)
		}
		data, ok := c.ReadArrays(int(n))
		if n < 0 || !ok {
			return malformed("%v of %d bytes", s.t, n)
		}
		out := reflect.New(s.t).Elem()
		out.SetBytes(append([]byte{}, data...))
		p.AddObject(out)
		dst.Set(out)
		return nil
	}
	n, err := readCount(c, s.t, s.elem)
	if err != nil {
		return err
	}
	if mayBeEmpty(s.elem) && s.t.Elem().Size() > 0 {
		return s.grow(c, p, dst, n)
	}
	out := reflect.MakeSlice(s.t, n, n)
	p.AddObject(out)
	dst.Set(out)
	for i := 0; i < n; i++ {
		if err := s.elem.Read(c, p, out.Index(i)); err != nil {
			return errors.Wrapf(err, "%v[%d]", s.t, i)
		}
	}
	return nil
}

// grow reads n elements whose count was not checked against the input, so
// the slice is extended as elements arrive instead of being allocated up
// front. A back-reference read before the last element sees the slice as
// far as it had grown.
func (s *Slice) grow(c *stream.Container, p *cyclic.Pool, dst reflect.Value, n int) error {
	out := reflect.MakeSlice(s.t, 0, 0)
	h, _ := p.AddObject(out)
	for i := 0; i < n; i++ {
		out = reflect.Append(out, reflect.Zero(s.t.Elem()))
		if err := s.elem.Read(c, p, out.Index(i)); err != nil {
			return errors.Wrapf(err, "%v[%d]", s.t, i)
		}
		p.Update(h, out)
	}
	dst.Set(out)
	return nil
}

func init() {
	registry.Factories.Add(binary.Sequence, NewSlice)
}
