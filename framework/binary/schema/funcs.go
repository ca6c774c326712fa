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
)

// Funcs is an operator built from a typed pair of functions, for types that
// need an encoding of their own. Register it with registry.Register before
// the type is first used.
//
// A reference type handled by Funcs takes part in the pool only if the
// functions use it themselves.
type Funcs[T any] struct {
	WriteFunc func(c *stream.Container, v T, p *cyclic.Pool) error
	ReadFunc  func(c *stream.Container, p *cyclic.Pool) (T, error)
}

// NewFuncs returns the operator for T that calls w to write and r to read.
func NewFuncs[T any](w func(*stream.Container, T, *cyclic.Pool) error, r func(*stream.Container, *cyclic.Pool) (T, error)) *Funcs[T] {
	return &Funcs[T]{WriteFunc: w, ReadFunc: r}
}

func (f *Funcs[T]) Type() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

func (f *Funcs[T]) Shape() binary.Shape { return binary.Custom }

func (f *Funcs[T]) Build(binary.Resolver) error { return nil }

func (f *Funcs[T]) Write(c *stream.Container, v reflect.Value, p *cyclic.Pool) error {
	if err := binary.CheckWrite(f.Type(), v); err != nil {
		return err
	}
	var x T
	reflect.ValueOf(&x).Elem().Set(v)
	return f.WriteFunc(c, x, p)
}

func (f *Funcs[T]) Read(c *stream.Container, p *cyclic.Pool, dst reflect.Value) error {
	if err := binary.CheckRead(f.Type(), dst); err != nil {
		return err
	}
	v, err := f.ReadFunc(c, p)
	if err != nil {
		return err
	}
	dst.Set(reflect.ValueOf(&v).Elem())
	return nil
}
