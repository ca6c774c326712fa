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

// Package log holds the process-wide structured logger used by the
// conversion packages.
//
// Nothing is logged by default. Install a logger with SetLogger to see
// operator builds and conversion summaries at debug level.
package log

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// Logger returns the process-wide logger.
// It is a no-op logger until SetLogger is called.
func Logger() *zap.Logger {
	return current.Load()
}

// SetLogger replaces the process-wide logger.
// Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	current.Store(l)
}

// Named returns the process-wide logger with name appended to its name.
func Named(name string) *zap.Logger {
	return Logger().Named(name)
}
