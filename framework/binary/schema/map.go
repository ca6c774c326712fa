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
	"math"
	"reflect"
	"sort"

	"github.com/pkg/errors"

	stream "github.com/tuyennv216/BinaryContainer2-sub001/core/data/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/cyclic"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/registry"
)

// Map is the operator for maps, including sets written as map[K]struct{}.
// Maps are references: a map reached twice is written once and read back
// as a single map. Entries are written in key order when the key type is
// ordered, so equal maps export to equal bytes.
type Map struct {
	base
	key   binary.Operator
	value binary.Operator
	less  func(a, b reflect.Value) bool
}

// NewMap returns the unbuilt operator for the map type t.
func NewMap(t reflect.Type) (binary.Operator, error) {
	if err := expect(t, binary.Associative); err != nil {
		return nil, err
	}
	return &Map{base: base{t}, less: keyOrder(t.Key())}, nil
}

// keyOrder returns the ordering of keys of type t, or nil if t is unordered.
func keyOrder(t reflect.Type) func(a, b reflect.Value) bool {
	switch t.Kind() {
	case reflect.Bool:
		return func(a, b reflect.Value) bool { return !a.Bool() && b.Bool() }
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b reflect.Value) bool { return a.Int() < b.Int() }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b reflect.Value) bool { return a.Uint() < b.Uint() }
	case reflect.Float32, reflect.Float64:
		return func(a, b reflect.Value) bool {
			x, y := a.Float(), b.Float()
			return x < y || (math.IsNaN(x) && !math.IsNaN(y))
		}
	case reflect.String:
		return func(a, b reflect.Value) bool { return a.String() < b.String() }
	default:
		return nil
	}
}

func (m *Map) Shape() binary.Shape { return binary.Associative }

func (m *Map) Build(r binary.Resolver) error {
	key, err := r.Lookup(m.t.Key())
	if err != nil {
		return errors.Wrapf(err, "key of %v", m.t)
	}
	value, err := r.Lookup(m.t.Elem())
	if err != nil {
		return errors.Wrapf(err, "value of %v", m.t)
	}
	m.key, m.value = key, value
	return nil
}

type entry struct {
	key, value reflect.Value
}

func (m *Map) Write(c *stream.Container, v reflect.Value, p *cyclic.Pool) error {
	if err := binary.CheckWrite(m.t, v); err != nil {
		return err
	}
	if writeNull(c, v) || p.Write(c, v) {
		return nil
	}
	p.AddObject(v)
	entries := make([]entry, 0, v.Len())
	for it := v.MapRange(); it.Next(); {
		entries = append(entries, entry{it.Key(), it.Value()})
	}
	if m.less != nil {
		sort.SliceStable(entries, func(i, j int) bool { return m.less(entries[i].key, entries[j].key) })
	}
	if err := writeCount(c, m.t, len(entries)); err != nil {
		return err
	}
	for _, e := range entries {
		if err := m.key.Write(c, e.key, p); err != nil {
			return errors.Wrapf(err, "key of %v", m.t)
		}
		if err := m.value.Write(c, e.value, p); err != nil {
			return errors.Wrapf(err, "%v[%v]", m.t, e.key)
		}
	}
	return nil
}

func (m *Map) Read(c *stream.Container, p *cyclic.Pool, dst reflect.Value) error {
	if err := binary.CheckRead(m.t, dst); err != nil {
		return err
	}
	if null, err := readNull(c, m.t); err != nil || null {
		dst.Set(reflect.Zero(m.t))
		return err
	}
	got, seen, err := p.Read(c)
	if err != nil {
		return err
	}
	if seen {
		return restore(dst, got)
	}
	out := reflect.MakeMap(m.t)
	p.AddObject(out)
	dst.Set(out)
	n, err := readCount(c, m.t, m.key, m.value)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		key := reflect.New(m.t.Key()).Elem()
		if err := m.key.Read(c, p, key); err != nil {
			return errors.Wrapf(err, "key of %v", m.t)
		}
		value := reflect.New(m.t.Elem()).Elem()
		if err := m.value.Read(c, p, value); err != nil {
			return errors.Wrapf(err, "%v[%v]", m.t, key)
		}
		out.SetMapIndex(key, value)
	}
	return nil
}

func init() {
	registry.Factories.Add(binary.Associative, NewMap)
}
