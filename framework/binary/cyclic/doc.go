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

// Package cyclic implements the reference pool that lets graphs with shared
// and cyclic references be written and read.
//
// A pool assigns each reference a handle, densely numbered from zero in the
// order the references are first seen. When a reference is met again only
// its handle is written:
//
//	flag false          first sighting, content follows
//	flag true, handle   back-reference to an earlier value
//
// The handle is written as a compact number. A pool lives for a single
// write or a single read and must not be shared between them.
package cyclic
