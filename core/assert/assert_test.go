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

package assert_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/tuyennv216/BinaryContainer2-sub001/core/assert"
	"github.com/tuyennv216/BinaryContainer2-sub001/core/fault"
)

// recorder captures assertion output instead of failing the test.
type recorder struct{ errors, fatals, logs []string }

func (r *recorder) Fatal(args ...interface{}) { r.fatals = append(r.fatals, fmt.Sprint(args...)) }
func (r *recorder) Error(args ...interface{}) { r.errors = append(r.errors, fmt.Sprint(args...)) }
func (r *recorder) Log(args ...interface{})   { r.logs = append(r.logs, fmt.Sprint(args...)) }

const errSentinel = fault.Const("sentinel")

func TestPassingAssertionsAreSilent(t *testing.T) {
	out := &recorder{}
	assert := assert.To(out)
	x := 5
	assert.For("equals").That(1).Equals(1)
	assert.For("deep").That([]int{1, 2}).DeepEquals([]int{1, 2})
	assert.For("nil").That((*int)(nil)).IsNil()
	assert.For("same").That(&x).IsSameAs(&x)
	assert.For("error").ThatError(nil).Succeeded()
	assert.For("is").ThatError(errors.Wrap(errSentinel, "context")).Is(errSentinel)
	assert.For("slice").ThatSlice([]byte{1, 2}).Equals([]byte{1, 2})
	assert.For("bool").ThatBoolean(true).IsTrue()
	assert.For("int").ThatInteger(3).IsAtLeast(2)
	if len(out.errors) != 0 || len(out.fatals) != 0 {
		t.Errorf("Passing assertions produced output: %v %v", out.errors, out.fatals)
	}
}

func TestFailingAssertionsReport(t *testing.T) {
	out := &recorder{}
	assert := assert.To(out)
	a, b := 1, 1
	assert.For("equals").That(1).Equals(2)
	assert.For("same").That(&a).IsSameAs(&b)
	assert.For("slice").ThatSlice([]int{1}).Equals([]int{1, 2})
	assert.For("message").ThatError(nil).HasMessage("x")
	assert.For("critical").Critical().ThatBoolean(false).IsTrue()
	if len(out.errors) != 4 {
		t.Fatalf("Expected 4 errors, got %d: %v", len(out.errors), out.errors)
	}
	if len(out.fatals) != 1 {
		t.Fatalf("Expected 1 fatal, got %d", len(out.fatals))
	}
	if !strings.HasPrefix(out.errors[0], "Error:equals") {
		t.Errorf("Unexpected message %q", out.errors[0])
	}
}
