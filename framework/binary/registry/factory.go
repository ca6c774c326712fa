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
	"fmt"
	"reflect"
	"sync"

	"github.com/pkg/errors"

	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary"
)

// Factory makes the unbuilt operator for a type of a single shape.
type Factory func(t reflect.Type) (binary.Operator, error)

// ShapeFactories provides a mapping from binary.Shape to the Factory used to
// make operators of that shape.
type ShapeFactories struct {
	mu        sync.RWMutex
	factories map[binary.Shape]Factory
}

var (
	// Factories is a singleton for registration of operator factories.
	// The schema package fills it when imported.
	Factories = NewFactories()
)

// NewFactories returns an empty set of factories.
func NewFactories() *ShapeFactories {
	return &ShapeFactories{factories: map[binary.Shape]Factory{}}
}

// Add adds the factory for a shape. Adding two factories for the same
// shape panics.
func (s *ShapeFactories) Add(shape binary.Shape, f Factory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.factories[shape] != nil {
		panic(fmt.Errorf("Attempt to register multiple factories for %v", shape))
	}
	s.factories[shape] = f
}

// Make classifies t and uses the factory of its shape to make an operator.
func (s *ShapeFactories) Make(t reflect.Type) (binary.Operator, error) {
	shape := binary.Classify(t)
	s.mu.RLock()
	f := s.factories[shape]
	s.mu.RUnlock()
	if f == nil {
		return nil, errors.Wrapf(binary.ErrUnsupportedType, "no factory for %v of shape %v", t, shape)
	}
	return f(t)
}
