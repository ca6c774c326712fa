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

import "github.com/tuyennv216/BinaryContainer2-sub001/core/fault"

const (
	// ErrMalformedStream is returned when the framing or a declared length of
	// an encoded buffer cannot be trusted.
	ErrMalformedStream = fault.Const("Malformed stream")
	// ErrTempBytes is returned when reserved temp bytes are misused.
	ErrTempBytes = fault.Const("Temp bytes out of order")
	// ErrTooLarge is returned when a container cannot be framed with 32 bit lengths.
	ErrTooLarge = fault.Const("Container too large")
)
