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

// Package schema supplies the operators for every shape classified by
// binary.Classify. Importing the package adds their factories to
// registry.Factories.
package schema

import (
	"math"
	"reflect"

	"github.com/pkg/errors"

	stream "github.com/tuyennv216/BinaryContainer2-sub001/core/data/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary"
)

type base struct {
	t reflect.Type
}

func (b base) Type() reflect.Type { return b.t }

func (b base) String() string { return b.t.String() }

// expect fails with ErrShapeMismatch unless t has the given shape.
func expect(t reflect.Type, shape binary.Shape) error {
	if got := binary.Classify(t); got != shape {
		return errors.Wrapf(binary.ErrShapeMismatch, "%v is %v, not %v", t, got, shape)
	}
	return nil
}

func malformed(format string, args ...interface{}) error {
	return errors.Wrapf(binary.ErrMalformedStream, format, args...)
}

// writeNull records whether v is nil, returning true if it was.
func writeNull(c *stream.Container, v reflect.Value) bool {
	null := v.IsNil()
	c.AddFlag(null)
	return null
}

func readNull(c *stream.Container, t reflect.Type) (bool, error) {
	null, ok := c.ReadFlag()
	if !ok {
		return false, malformed("null flag of %v", t)
	}
	return null, nil
}

func writeCount(c *stream.Container, t reflect.Type, n int) error {
	if n > math.MaxInt32 {
		return errors.Wrapf(binary.ErrInvalidArgument, "%v of %d elements", t, n)
	}
	c.AddNumber(int32(n))
	return nil
}

// readCount reads an element count. Counts of elements that always encode
// to something are checked against the remaining content of c.
func readCount(c *stream.Container, t reflect.Type, elems ...binary.Operator) (int, error) {
	for _, op := range elems {
		if !mayBeEmpty(op) {
			n, err := c.ReadCount()
			return n, errors.Wrapf(err, "count of %v", t)
		}
	}
	n, err := c.ReadNumber()
	if err != nil {
		return 0, errors.Wrapf(err, "count of %v", t)
	}
	if n < 0 {
		return 0, malformed("negative count %d of %v", n, t)
	}
	return int(n), nil
}

// mayBeEmpty returns true if values written by op can take no space at all.
func mayBeEmpty(op binary.Operator) bool {
	switch op := op.(type) {
	case *Struct:
		for _, f := range op.fields {
			if !mayBeEmpty(f.op) {
				return false
			}
		}
		return true
	case *Array:
		return op.t.Len() == 0 || mayBeEmpty(op.elem)
	}
	return op.Shape() == binary.Custom
}

// restore copies a value read back from the pool into dst, failing if the
// handle referred to a value of another type.
func restore(dst reflect.Value, got reflect.Value) error {
	if got.Type() != dst.Type() {
		return malformed("back-reference to %v read as %v", got.Type(), dst.Type())
	}
	dst.Set(got)
	return nil
}

// WriteString writes s as a compact length followed by its bytes in the
// items stream.
func WriteString(c *stream.Container, s string) error {
	if len(s) > math.MaxInt32 {
		return errors.Wrapf(binary.ErrInvalidArgument, "string of %d bytes", len(s))
	}
	c.AddNumber(int32(len(s)))
	c.AddItems([]byte(s))
	return nil
}

// ReadString reads a string written by WriteString.
func ReadString(c *stream.Container) (string, error) {
	n, err := c.ReadNumber()
	if err != nil {
		return "", errors.Wrap(err, "string length")
	}
	if n < 0 {
		return "", malformed("negative string length %d", n)
	}
	data, ok := c.ReadItems(int(n))
	if !ok {
		return "", malformed("string of %d bytes", n)
	}
	return string(data), nil
}
