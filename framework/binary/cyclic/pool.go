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

package cyclic

import (
	"math"
	"reflect"

	"github.com/pkg/errors"

	"github.com/tuyennv216/BinaryContainer2-sub001/core/data/binary"
)

type identity struct {
	t reflect.Type
	p uintptr
	n int
}

// Pool maps reference values to handles and back.
// Values of Kind Ptr or Map are identified by their type and address.
// Slices are identified by their type, start and length; empty slices have
// no identity. Other values can be added but are never found.
type Pool struct {
	handles map[identity]int
	objects []reflect.Value
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{handles: map[identity]int{}}
}

// Len returns the number of handles assigned.
func (p *Pool) Len() int { return len(p.objects) }

func identify(v reflect.Value) (identity, bool) {
	if !v.IsValid() {
		return identity{}, false
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Map:
		if v.IsNil() {
			return identity{}, false
		}
		return identity{t: v.Type(), p: v.Pointer()}, true
	case reflect.Slice:
		if v.Len() == 0 {
			return identity{}, false
		}
		return identity{t: v.Type(), p: v.Pointer(), n: v.Len()}, true
	default:
		return identity{}, false
	}
}

// FindIndex returns the handle of v if it has been added.
func (p *Pool) FindIndex(v reflect.Value) (int, bool) {
	id, ok := identify(v)
	if !ok {
		return 0, false
	}
	h, found := p.handles[id]
	return h, found
}

// AddObject assigns the next handle to v, returning it and true.
// If v is already present its existing handle is returned with false.
func (p *Pool) AddObject(v reflect.Value) (int, bool) {
	id, ok := identify(v)
	if ok {
		if h, found := p.handles[id]; found {
			return h, false
		}
	}
	h := len(p.objects)
	p.objects = append(p.objects, v)
	if ok {
		p.handles[id] = h
	}
	return h, true
}

// Object returns the value assigned handle h.
func (p *Pool) Object(h int) (reflect.Value, bool) {
	if h < 0 || h >= len(p.objects) {
		return reflect.Value{}, false
	}
	return p.objects[h], true
}

// Update replaces the value assigned handle h, for a value that is moved
// while it is being read. It returns false if h has not been assigned.
func (p *Pool) Update(h int, v reflect.Value) bool {
	if h < 0 || h >= len(p.objects) {
		return false
	}
	p.objects[h] = v
	return true
}

// Write records in c whether v has been seen before, followed by its handle
// if it has. It returns true if only the back-reference was written, and
// false if the caller must add v and write its content.
func (p *Pool) Write(c *binary.Container, v reflect.Value) bool {
	h, found := p.FindIndex(v)
	c.AddFlag(found)
	if found {
		if h > math.MaxInt32 {
			panic(errors.Errorf("Too many references: %d", h))
		}
		c.AddNumber(int32(h))
		c.SetUsingReferencePool(true)
	}
	return found
}

// Read is the inverse of Write. If a back-reference was written it returns
// the value previously added for the handle and true. Otherwise it returns
// false and the caller must allocate a new value, add it, then populate it.
func (p *Pool) Read(c *binary.Container) (reflect.Value, bool, error) {
	found, ok := c.ReadFlag()
	if !ok {
		return reflect.Value{}, false, errors.Wrap(binary.ErrMalformedStream, "reference flag")
	}
	if !found {
		return reflect.Value{}, false, nil
	}
	if !c.UsingReferencePool() {
		return reflect.Value{}, false, errors.Wrap(binary.ErrMalformedStream, "back-reference in a container without references")
	}
	h, err := c.ReadNumber()
	if err != nil {
		return reflect.Value{}, false, err
	}
	v, ok := p.Object(int(h))
	if !ok {
		return reflect.Value{}, false, errors.Wrapf(binary.ErrMalformedStream, "back-reference to unknown handle %d of %d", h, len(p.objects))
	}
	return v, true, nil
}
