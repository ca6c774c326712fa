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

// Struct is the operator for records. The exported fields are written in
// declaration order; fields tagged binary:"-" are skipped.
// Structs are values and never take part in the reference pool.
type Struct struct {
	base
	fields []field
}

type field struct {
	index int
	name  string
	op    binary.Operator
}

// NewStruct returns the unbuilt operator for the struct type t. Fields are
// resolved by Build.
func NewStruct(t reflect.Type) (binary.Operator, error) {
	if err := expect(t, binary.Record); err != nil {
		return nil, err
	}
	return &Struct{base: base{t}}, nil
}

func (s *Struct) Shape() binary.Shape { return binary.Record }

func (s *Struct) Build(r binary.Resolver) error {
	exported := 0
	for i := 0; i < s.t.NumField(); i++ {
		f := s.t.Field(i)
		if !f.IsExported() {
			continue
		}
		exported++
		if f.Tag.Get("binary") == "-" {
			continue
		}
		op, err := r.Lookup(f.Type)
		if err != nil {
			return errors.Wrapf(err, "field %s", f.Name)
		}
		s.fields = append(s.fields, field{index: i, name: f.Name, op: op})
	}
	if exported == 0 && s.t.NumField() > 0 {
		return errors.Wrapf(binary.ErrUnsupportedType, "%v has no exported fields", s.t)
	}
	return nil
}

func (s *Struct) Write(c *stream.Container, v reflect.Value, p *cyclic.Pool) error {
	if err := binary.CheckWrite(s.t, v); err != nil {
		return err
	}
	for _, f := range s.fields {
		if err := f.op.Write(c, v.Field(f.index), p); err != nil {
			return errors.Wrapf(err, "%v.%s", s.t, f.name)
		}
	}
	return nil
}

func (s *Struct) Read(c *stream.Container, p *cyclic.Pool, dst reflect.Value) error {
	if err := binary.CheckRead(s.t, dst); err != nil {
		return err
	}
	for _, f := range s.fields {
		if err := f.op.Read(c, p, dst.Field(f.index)); err != nil {
			return errors.Wrapf(err, "%v.%s", s.t, f.name)
		}
	}
	return nil
}

func init() {
	registry.Factories.Add(binary.Record, NewStruct)
}
