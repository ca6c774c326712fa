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

package binary

import (
	"reflect"

	"github.com/pkg/errors"

	stream "github.com/tuyennv216/BinaryContainer2-sub001/core/data/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/cyclic"
)

// Operator writes and reads the values of a single Go type.
type Operator interface {
	// Type returns the type handled by the operator.
	Type() reflect.Type
	// Shape returns the family the operator belongs to.
	Shape() Shape
	// Build resolves the operators of nested types. It is called exactly once,
	// before the operator is published, and must not be called afterwards.
	Build(r Resolver) error
	// Write encodes v, which must be of the operator's type, to c.
	Write(c *stream.Container, v reflect.Value, p *cyclic.Pool) error
	// Read decodes a value from c into dst, which must be settable and of the
	// operator's type.
	Read(c *stream.Container, p *cyclic.Pool, dst reflect.Value) error
}

// Resolver is handed to Operator.Build to resolve nested types.
type Resolver interface {
	// Lookup returns the operator for t. While a build is in progress the
	// returned operator may not be built yet, it must only be stored.
	Lookup(t reflect.Type) (Operator, error)
	// Names returns the table used to name dynamic types.
	Names() Names
	// Runtime returns the resolver to use for lookups at write and read time,
	// for types only known once a value is seen.
	Runtime() Resolver
}

// Names maps the dynamic types carried by interface values to and from the
// names written to the stream.
type Names interface {
	// NameOf returns the name registered for t.
	NameOf(t reflect.Type) (string, bool)
	// TypeOf returns the type registered for name.
	TypeOf(name string) (reflect.Type, bool)
}

// CheckWrite returns ErrInvalidArgument if v is not a valid value of type t.
func CheckWrite(t reflect.Type, v reflect.Value) error {
	if !v.IsValid() {
		return errors.Wrapf(ErrInvalidArgument, "invalid value given to %v operator", t)
	}
	if v.Type() != t {
		return errors.Wrapf(ErrInvalidArgument, "%v given to %v operator", v.Type(), t)
	}
	return nil
}

// CheckRead returns ErrInvalidArgument if dst is not a settable value of
// type t.
func CheckRead(t reflect.Type, dst reflect.Value) error {
	if !dst.IsValid() || !dst.CanSet() {
		return errors.Wrapf(ErrInvalidArgument, "unsettable destination for %v operator", t)
	}
	if dst.Type() != t {
		return errors.Wrapf(ErrInvalidArgument, "%v destination for %v operator", dst.Type(), t)
	}
	return nil
}
