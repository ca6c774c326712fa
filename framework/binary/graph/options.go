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

// Package graph converts whole Go values to and from self-describing
// buffers.
//
// Each conversion uses a fresh container and reference pool, so values
// shared within the converted graph stay shared once read back, while two
// conversions never share anything.
package graph

import (
	"go.uber.org/zap"

	"github.com/tuyennv216/BinaryContainer2-sub001/core/log"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/registry"
	_ "github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/schema"
)

// Option configures a conversion.
type Option func(*config)

type config struct {
	registry *registry.Registry
	logger   *zap.Logger
}

func newConfig(opts []Option) config {
	cfg := config{registry: registry.Global}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.Named("graph")
	}
	return cfg
}

// WithRegistry resolves operators and type names through r instead of
// registry.Global.
func WithRegistry(r *registry.Registry) Option {
	return func(c *config) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithLogger logs conversion summaries to l instead of the process-wide
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}
