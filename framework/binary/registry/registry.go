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

// Package registry resolves Go types to the operators that encode them.
//
// Operators are cached for the lifetime of a Registry. The first lookup of
// a type builds its operator, and the operators of every type it reaches,
// in a session private to that lookup. Recursive types resolve to the
// session's operator while it is still being built. When the session
// completes its operators are published; if another goroutine published an
// operator for the same type first, that one is kept and the duplicate is
// dropped.
package registry

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/tuyennv216/BinaryContainer2-sub001/core/log"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary"
)

// Registry is a concurrent cache of operators keyed by type, along with the
// names used for dynamic types.
type Registry struct {
	operators sync.Map // reflect.Type -> binary.Operator
	factories *ShapeFactories

	mu    sync.RWMutex
	names map[string]reflect.Type
	types map[reflect.Type]string
}

var (
	// Global is the registry used by default by the conversion functions.
	Global = New()
)

// New returns a registry with the predeclared names and the shared
// Factories.
func New() *Registry {
	return NewWithFactories(Factories)
}

// NewWithFactories returns a registry with the predeclared names that makes
// operators with f.
func NewWithFactories(f *ShapeFactories) *Registry {
	r := &Registry{
		factories: f,
		names:     map[string]reflect.Type{},
		types:     map[reflect.Type]string{},
	}
	for _, t := range predeclared {
		r.names[t.String()] = t
		r.types[t] = t.String()
	}
	return r
}

func (r *Registry) cached(t reflect.Type) (binary.Operator, bool) {
	if op, ok := r.operators.Load(t); ok {
		return op.(binary.Operator), true
	}
	return nil, false
}

// Lookup returns the built operator for t, building it on first use.
func (r *Registry) Lookup(t reflect.Type) (binary.Operator, error) {
	if t == nil {
		return nil, errors.Wrap(binary.ErrInvalidArgument, "lookup of nil type")
	}
	if op, ok := r.cached(t); ok {
		return op, nil
	}
	s := r.session()
	if _, err := s.Lookup(t); err != nil {
		return nil, err
	}
	s.publish()
	op, _ := r.cached(t)
	return op, nil
}

// Register builds op and publishes it as the operator for op.Type().
// Unless op has the Custom shape it must have the shape of its type.
// It fails with ErrAlreadyRegistered if the type already has an operator,
// which includes types already used in a conversion.
func (r *Registry) Register(op binary.Operator) error {
	if op == nil || op.Type() == nil {
		return errors.Wrap(binary.ErrInvalidArgument, "register of operator without a type")
	}
	t := op.Type()
	if shape := op.Shape(); shape != binary.Custom && shape != binary.Classify(t) {
		return errors.Wrapf(binary.ErrShapeMismatch, "%v operator for %v", shape, t)
	}
	if _, ok := r.cached(t); ok {
		return errors.Wrapf(binary.ErrAlreadyRegistered, "operator for %v", t)
	}
	s := r.session()
	s.pending[t] = op
	if err := op.Build(s); err != nil {
		return errors.Wrapf(err, "building %v", t)
	}
	if _, loaded := r.operators.LoadOrStore(t, op); loaded {
		return errors.Wrapf(binary.ErrAlreadyRegistered, "operator for %v", t)
	}
	r.logger().Debug("operator registered", zap.Stringer("type", t), zap.Stringer("shape", op.Shape()))
	s.publish()
	return nil
}

// Names returns the name table of the registry.
func (r *Registry) Names() binary.Names { return r }

// Runtime returns the registry itself.
func (r *Registry) Runtime() binary.Resolver { return r }

func (r *Registry) logger() *zap.Logger { return log.Named("registry") }

type session struct {
	r       *Registry
	pending map[reflect.Type]binary.Operator
	order   []reflect.Type
}

func (r *Registry) session() *session {
	return &session{r: r, pending: map[reflect.Type]binary.Operator{}}
}

func (s *session) add(t reflect.Type, op binary.Operator) {
	s.pending[t] = op
	s.order = append(s.order, t)
}

func (s *session) Lookup(t reflect.Type) (binary.Operator, error) {
	if t == nil {
		return nil, errors.Wrap(binary.ErrInvalidArgument, "lookup of nil type")
	}
	if op, ok := s.r.cached(t); ok {
		return op, nil
	}
	if op, ok := s.pending[t]; ok {
		return op, nil
	}
	op, err := s.r.factories.Make(t)
	if err != nil {
		return nil, err
	}
	s.add(t, op)
	if err := op.Build(s); err != nil {
		return nil, errors.Wrapf(err, "building %v", t)
	}
	return op, nil
}

func (s *session) Names() binary.Names { return s.r }

func (s *session) Runtime() binary.Resolver { return s.r }

// publish stores every operator of the session not already stored.
func (s *session) publish() {
	l := s.r.logger()
	for _, t := range s.order {
		op := s.pending[t]
		if _, loaded := s.r.operators.LoadOrStore(t, op); loaded {
			l.Debug("duplicate operator discarded", zap.Stringer("type", t))
			continue
		}
		l.Debug("operator built", zap.Stringer("type", t), zap.Stringer("shape", op.Shape()))
	}
}
