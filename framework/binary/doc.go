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

// Package binary defines the protocol between the segmented container and
// the per-type operators that write and read Go values to it.
//
// An Operator handles exactly one Go type. Operators are built once by a
// Resolver, which resolves the operators of every nested type, and are then
// immutable and shared by every conversion in the process.
//
// Every operator follows the same per-value sequence when writing:
//
//	nil value        -> flag bit true, nothing else
//	seen reference   -> flag bit false, pool flag true, handle
//	new reference    -> flag bit false, pool flag false, content
//	value type       -> content
//
// Reading mirrors the sequence. A reference seen for the first time is
// allocated and registered with the pool before its content is read, so a
// cycle back to it resolves to the instance being populated.
//
// The framework/binary/schema package supplies operators for all the Go
// shapes listed by Shape, and framework/binary/graph drives a whole
// conversion.
package binary
