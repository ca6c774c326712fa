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

package log_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tuyennv216/BinaryContainer2-sub001/core/log"
)

func TestSetLogger(t *testing.T) {
	defer log.SetLogger(nil)
	core, logs := observer.New(zapcore.DebugLevel)
	log.SetLogger(zap.New(core))
	log.Named("registry").Debug("built", zap.String("type", "int"))
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected one log entry, got %d", len(entries))
	}
	if got := entries[0].LoggerName; got != "registry" {
		t.Errorf("Logger name was %q, expected %q", got, "registry")
	}
	log.SetLogger(nil)
	if log.Logger().Core().Enabled(zapcore.ErrorLevel) {
		t.Errorf("Resetting the logger did not restore the no-op logger")
	}
}
