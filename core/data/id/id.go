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

// Package id provides content identifiers for exported buffers.
package id

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
)

// Size is the size of an ID.
const Size = 32

// ID is a BLAKE3 digest identifying a byte sequence.
type ID [Size]byte

// IsValid returns true if the id is not the default value.
func (id ID) IsValid() bool {
	return id != ID{}
}

func (id ID) Format(f fmt.State, c rune) {
	fmt.Fprintf(f, "%x", id[:])
}

func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

// Short returns the first eight hex digits of the id.
func (id ID) Short() string {
	return hex.EncodeToString(id[:4])
}

// Parse parses lowercase string s as a 32 byte hex-encoded ID.
func (id *ID) Parse(s string) error {
	bytes, err := hex.DecodeString(s)
	if err != nil {
		return errors.Wrap(err, "Invalid ID")
	}
	if len(bytes) != Size {
		return errors.Errorf("Invalid ID size: got %d, expected %d", len(bytes), Size)
	}
	copy((*id)[:], bytes)
	return nil
}

// Parse parses lowercase string s as a 32 byte hex-encoded ID.
func Parse(s string) (ID, error) {
	id := ID{}
	return id, id.Parse(s)
}
