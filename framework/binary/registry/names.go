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

package registry

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary"
)

var predeclared = []reflect.Type{
	reflect.TypeOf(false),
	reflect.TypeOf(int(0)),
	reflect.TypeOf(int8(0)),
	reflect.TypeOf(int16(0)),
	reflect.TypeOf(int32(0)),
	reflect.TypeOf(int64(0)),
	reflect.TypeOf(uint(0)),
	reflect.TypeOf(uint8(0)),
	reflect.TypeOf(uint16(0)),
	reflect.TypeOf(uint32(0)),
	reflect.TypeOf(uint64(0)),
	reflect.TypeOf(uintptr(0)),
	reflect.TypeOf(float32(0)),
	reflect.TypeOf(float64(0)),
	reflect.TypeOf(complex64(0)),
	reflect.TypeOf(complex128(0)),
	reflect.TypeOf(""),
	reflect.TypeOf([]byte(nil)),
	reflect.TypeOf([]string(nil)),
	reflect.TypeOf([]interface{}(nil)),
	reflect.TypeOf(map[string]interface{}(nil)),
}

// Name registers name for the dynamic type t, so values of t can be held by
// interface fields. Registering a name or a type twice fails with
// ErrAlreadyRegistered.
func (r *Registry) Name(name string, t reflect.Type) error {
	if name == "" || t == nil {
		return errors.Wrapf(binary.ErrInvalidArgument, "name %q for type %v", name, t)
	}
	if t.Kind() == reflect.Interface {
		return errors.Wrapf(binary.ErrInvalidArgument, "interface type %v cannot be a dynamic type", t)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.names[name]; ok {
		return errors.Wrapf(binary.ErrAlreadyRegistered, "name %q is %v", name, existing)
	}
	if existing, ok := r.types[t]; ok {
		return errors.Wrapf(binary.ErrAlreadyRegistered, "type %v is named %q", t, existing)
	}
	r.names[name] = t
	r.types[t] = name
	return nil
}

// NameOf returns the name registered for t.
func (r *Registry) NameOf(t reflect.Type) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.types[t]
	return name, ok
}

// TypeOf returns the type registered for name.
func (r *Registry) TypeOf(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.names[name]
	return t, ok
}
