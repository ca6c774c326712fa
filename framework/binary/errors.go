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
	stream "github.com/tuyennv216/BinaryContainer2-sub001/core/data/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/core/fault"
)

const (
	// ErrShapeMismatch is returned when an operator is built for a type that
	// does not have the operator's shape.
	ErrShapeMismatch = fault.Const("Shape mismatch")
	// ErrUnsupportedType is returned when a type has no encoding.
	ErrUnsupportedType = fault.Const("Unsupported type")
	// ErrInvalidArgument is returned when an operator is given a value it
	// cannot handle.
	ErrInvalidArgument = fault.Const("Invalid argument")
	// ErrUnknownName is returned when a dynamic type has no registered name,
	// or a name read from a stream has no registered type.
	ErrUnknownName = fault.Const("Unknown type name")
	// ErrAlreadyRegistered is returned when a type or name is registered twice.
	ErrAlreadyRegistered = fault.Const("Already registered")
	// ErrMalformedStream is returned for input that cannot be decoded.
	ErrMalformedStream = stream.ErrMalformedStream
)
