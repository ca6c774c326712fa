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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tuyennv216/BinaryContainer2-sub001/core/assert"
	"github.com/tuyennv216/BinaryContainer2-sub001/core/data/id"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/graph"
)

func writeFile(t *testing.T, name string, parts ...[]byte) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, bytes.Join(parts, nil), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func convert[T any](t *testing.T, v T) []byte {
	data, err := graph.Convert(v)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestListsPackedContainers(t *testing.T) {
	assert := assert.To(t)
	first, second := convert(t, "hi"), convert(t, int32(5))
	path := writeFile(t, "pack.bin", first, second)
	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)
	assert.For("exit").ThatInteger(code).Equals(0)
	assert.For("stderr").That(stderr.String()).Equals("")
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if !assert.For("lines").ThatSlice(lines).IsLength(2) {
		return
	}
	assert.For("first").That(lines[0]).Equals(path +
		"#0 @0 size=22 caps=flags|items|arrays flags=1 items=2 arrays=1 id=" + id.OfBytes(first).Short())
	assert.For("second").That(lines[1]).Equals(path +
		"#1 @22 size=13 caps=arrays flags=0 items=0 arrays=4 id=" + id.OfBytes(second).Short())
}

func TestPrintsIDs(t *testing.T) {
	assert := assert.To(t)
	data := convert(t, []string{"a", "b"})
	path := writeFile(t, "one.bin", []byte{0xde, 0xad}, data)
	var stdout, stderr bytes.Buffer
	code := run([]string{"--id", "--offset", "2", path}, &stdout, &stderr)
	assert.For("exit").ThatInteger(code).Equals(0)
	assert.For("id").That(stdout.String()).Equals(id.OfBytes(data).String() + "\n")
}

func TestExpect(t *testing.T) {
	assert := assert.To(t)
	first, second := convert(t, "a"), convert(t, "b")
	both := writeFile(t, "both.bin", first, second)
	only := writeFile(t, "only.bin", first)
	var stdout, stderr bytes.Buffer
	code := run([]string{"--quiet", "--expect", id.OfBytes(second).String(), both, only}, &stdout, &stderr)
	assert.For("exit").ThatInteger(code).Equals(1)
	report := strings.TrimSpace(stderr.String())
	assert.For("only").ThatBoolean(strings.Contains(report, "only.bin: no container with id")).IsTrue()
	assert.For("both").ThatBoolean(strings.Contains(report, "both.bin")).IsFalse()

	stderr.Reset()
	code = run([]string{"--expect", "beef", both}, &stdout, &stderr)
	assert.For("bad id").ThatInteger(code).Equals(2)
	assert.For("bad id message").ThatBoolean(strings.Contains(stderr.String(), "Invalid ID size")).IsTrue()
}

func TestCollectsFailures(t *testing.T) {
	assert := assert.To(t)
	good := writeFile(t, "good.bin", convert(t, 1.5))
	bad := writeFile(t, "bad.bin", []byte{9, 0, 0})
	missing := filepath.Join(t.TempDir(), "missing.bin")
	var stdout, stderr bytes.Buffer
	code := run([]string{"--quiet", good, bad, missing}, &stdout, &stderr)
	assert.For("exit").ThatInteger(code).Equals(1)
	assert.For("quiet").That(stdout.String()).Equals("")
	report := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	if !assert.For("failures").ThatSlice(report).IsLength(2) {
		return
	}
	assert.For("bad").ThatBoolean(strings.Contains(report[0], "bad.bin: container 0")).IsTrue()
	assert.For("missing").ThatBoolean(strings.Contains(report[1], "missing.bin")).IsTrue()
}

func TestUsage(t *testing.T) {
	assert := assert.To(t)
	var stdout, stderr bytes.Buffer
	assert.For("no files").ThatInteger(run(nil, &stdout, &stderr)).Equals(2)
	assert.For("usage").ThatBoolean(strings.Contains(stderr.String(), "Usage: packinfo")).IsTrue()
	stderr.Reset()
	assert.For("negative offset").ThatInteger(run([]string{"--offset=-1", "x"}, &stdout, &stderr)).Equals(2)
	assert.For("bad flag").ThatInteger(run([]string{"--nope"}, &stdout, &stderr)).Equals(2)
}
