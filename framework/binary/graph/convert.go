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

package graph

import (
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	stream "github.com/tuyennv216/BinaryContainer2-sub001/core/data/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/core/fault"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/cyclic"
)

// Convert writes v, as a value of its static type T, to a new buffer.
// A nil v only sets the null-root marker of the container.
func Convert[T any](v T, opts ...Option) ([]byte, error) {
	return ConvertValue(reflect.ValueOf(&v).Elem(), opts...)
}

// ConvertBack reads a value of type T from data, which must hold exactly
// one container written for T.
func ConvertBack[T any](data []byte, opts ...Option) (T, error) {
	var out T
	err := convertBackInto(data, reflect.ValueOf(&out).Elem(), newConfig(opts))
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Clone returns a deep copy of v made by converting it and reading it back.
func Clone[T any](v T, opts ...Option) (T, error) {
	data, err := Convert(v, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return ConvertBack[T](data, opts...)
}

// ConvertValue writes v, as a value of v.Type(), to a new buffer.
func ConvertValue(v reflect.Value, opts ...Option) (data []byte, err error) {
	cfg := newConfig(opts)
	if !v.IsValid() {
		return nil, errors.Wrap(binary.ErrInvalidArgument, "invalid value")
	}
	defer recoverInto(&err)
	c := stream.NewContainer()
	pool := cyclic.NewPool()
	if isNil(v) {
		c.SetRootIsNull(true)
	} else {
		op, err := cfg.registry.Lookup(v.Type())
		if err != nil {
			return nil, err
		}
		if err := op.Write(c, v, pool); err != nil {
			return nil, err
		}
	}
	data, err = c.Export()
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("converted",
		zap.Stringer("type", v.Type()),
		zap.Int("bytes", len(data)),
		zap.Int("handles", pool.Len()),
		zap.Stringer("capabilities", c.Capabilities()))
	return data, nil
}

// ConvertBackValue reads a value of type t from data.
func ConvertBackValue(data []byte, t reflect.Type, opts ...Option) (reflect.Value, error) {
	if t == nil {
		return reflect.Value{}, errors.Wrap(binary.ErrInvalidArgument, "nil type")
	}
	out := reflect.New(t).Elem()
	if err := convertBackInto(data, out, newConfig(opts)); err != nil {
		return reflect.Value{}, err
	}
	return out, nil
}

func convertBackInto(data []byte, dst reflect.Value, cfg config) (err error) {
	defer recoverInto(&err)
	t := dst.Type()
	c, next, err := stream.Import(data, 0)
	if err != nil {
		return err
	}
	if next != len(data) {
		return errors.Wrapf(binary.ErrMalformedStream, "%d trailing bytes", len(data)-next)
	}
	pool := cyclic.NewPool()
	if c.RootIsNull() {
		if !binary.Nullable(t) {
			return errors.Wrapf(binary.ErrMalformedStream, "null root read as %v", t)
		}
		if !c.Consumed() {
			return errors.Wrap(binary.ErrMalformedStream, "content after null root")
		}
	} else {
		op, err := cfg.registry.Lookup(t)
		if err != nil {
			return err
		}
		if err := op.Read(c, pool, dst); err != nil {
			return err
		}
		if !c.Consumed() {
			return errors.Wrapf(binary.ErrMalformedStream, "%d units left after reading %v", c.Remaining(), t)
		}
	}
	cfg.logger.Debug("converted back",
		zap.Stringer("type", t),
		zap.Int("bytes", len(data)),
		zap.Int("handles", pool.Len()))
	return nil
}

func isNil(v reflect.Value) bool {
	return binary.Nullable(v.Type()) && v.IsNil()
}

// recoverInto turns a panic raised while converting into the returned error.
func recoverInto(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e := fault.From(r); e != fault.InvalidErrorType {
		*err = errors.Wrap(e, "conversion panicked")
		return
	}
	*err = errors.Wrapf(binary.ErrInvalidArgument, "conversion panicked: %v", r)
}
