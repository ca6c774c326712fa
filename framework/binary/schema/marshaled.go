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
	"encoding"
	"reflect"

	"github.com/pkg/errors"

	stream "github.com/tuyennv216/BinaryContainer2-sub001/core/data/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/cyclic"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/registry"
)

// Marshaled is the operator for value types that encode themselves with
// encoding.BinaryMarshaler, such as time.Time. The marshaled bytes are
// written to the items stream after a compact length.
type Marshaled struct {
	base
}

// NewMarshaled returns the operator for t, which must implement
// encoding.BinaryMarshaler and have a pointer implementing
// encoding.BinaryUnmarshaler.
func NewMarshaled(t reflect.Type) (binary.Operator, error) {
	if err := expect(t, binary.Marshaled); err != nil {
		return nil, err
	}
	return &Marshaled{base: base{t}}, nil
}

func (o *Marshaled) Shape() binary.Shape { return binary.Marshaled }

func (o *Marshaled) Build(binary.Resolver) error { return nil }

func (o *Marshaled) Write(c *stream.Container, v reflect.Value, _ *cyclic.Pool) error {
	if err := binary.CheckWrite(o.t, v); err != nil {
		return err
	}
	data, err := v.Interface().(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		return errors.Wrapf(binary.ErrInvalidArgument, "marshaling %v: %v", o.t, err)
	}
	return WriteString(c, string(data))
}

func (o *Marshaled) Read(c *stream.Container, _ *cyclic.Pool, dst reflect.Value) error {
	if err := binary.CheckRead(o.t, dst); err != nil {
		return err
	}
	data, err := ReadString(c)
	if err != nil {
		return errors.Wrapf(err, "%v", o.t)
	}
	out := reflect.New(o.t)
	if err := out.Interface().(encoding.BinaryUnmarshaler).UnmarshalBinary([]byte(data)); err != nil {
		return malformed("unmarshaling %v: %v", o.t, err)
	}
	dst.Set(out.Elem())
	return nil
}

func init() {
	registry.Factories.Add(binary.Marshaled, NewMarshaled)
}
