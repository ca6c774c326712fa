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

// Package history keeps an undo and redo history of snapshots of a value.
//
// A snapshot is the converted form of the value, so every value returned
// is a fresh graph that shares nothing with the recorded value or with
// other returned values.
package history

import (
	"github.com/tuyennv216/BinaryContainer2-sub001/core/data/id"
	"github.com/tuyennv216/BinaryContainer2-sub001/core/fault"
	"github.com/tuyennv216/BinaryContainer2-sub001/framework/binary/graph"
)

const (
	// ErrNothingToUndo is returned by Undo at the oldest snapshot.
	ErrNothingToUndo = fault.Const("Nothing to undo")
	// ErrNothingToRedo is returned by Redo at the newest snapshot.
	ErrNothingToRedo = fault.Const("Nothing to redo")
	// ErrEmpty is returned by Current when nothing has been recorded.
	ErrEmpty = fault.Const("History is empty")
)

type snapshot struct {
	data []byte
	id   id.ID
}

// History holds up to a fixed number of snapshots of values of type T.
// Recording past the limit drops the oldest snapshot.
// A History is not safe for concurrent use.
type History[T any] struct {
	opts   []graph.Option
	ring   []snapshot
	start  int // index in ring of the oldest snapshot
	count  int
	cursor int // position of the current snapshot, -1 when empty
}

// New returns an empty history keeping at most limit snapshots, converting
// with opts. A limit below one is raised to one.
func New[T any](limit int, opts ...graph.Option) *History[T] {
	if limit < 1 {
		limit = 1
	}
	return &History[T]{opts: opts, ring: make([]snapshot, limit), cursor: -1}
}

func (h *History[T]) at(i int) *snapshot {
	return &h.ring[(h.start+i)%len(h.ring)]
}

// Record makes a snapshot of v the current one, discarding every snapshot
// that could have been redone. If v converts to the same bytes as the
// current snapshot nothing changes and Record returns false.
func (h *History[T]) Record(v T) (bool, error) {
	data, err := graph.Convert(v, h.opts...)
	if err != nil {
		return false, err
	}
	sid := id.OfBytes(data)
	if h.count > 0 && h.at(h.cursor).id == sid {
		return false, nil
	}
	for i := h.cursor + 1; i < h.count; i++ {
		*h.at(i) = snapshot{}
	}
	h.count = h.cursor + 1
	if h.count == len(h.ring) {
		*h.at(0) = snapshot{}
		h.start = (h.start + 1) % len(h.ring)
		h.count--
	}
	*h.at(h.count) = snapshot{data: data, id: sid}
	h.count++
	h.cursor = h.count - 1
	return true, nil
}

// Undo steps back to the previous snapshot and returns it.
func (h *History[T]) Undo() (T, error) {
	if !h.CanUndo() {
		var zero T
		return zero, ErrNothingToUndo
	}
	return h.move(-1)
}

// Redo steps forward to the next snapshot and returns it.
func (h *History[T]) Redo() (T, error) {
	if !h.CanRedo() {
		var zero T
		return zero, ErrNothingToRedo
	}
	return h.move(1)
}

func (h *History[T]) move(delta int) (T, error) {
	v, err := graph.ConvertBack[T](h.at(h.cursor+delta).data, h.opts...)
	if err == nil {
		h.cursor += delta
	}
	return v, err
}

// Current returns the current snapshot.
func (h *History[T]) Current() (T, error) {
	if h.count == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return graph.ConvertBack[T](h.at(h.cursor).data, h.opts...)
}

// CurrentID returns the content identifier of the current snapshot.
func (h *History[T]) CurrentID() (id.ID, bool) {
	if h.count == 0 {
		return id.ID{}, false
	}
	return h.at(h.cursor).id, true
}

// CanUndo returns true if there is a snapshot before the current one.
func (h *History[T]) CanUndo() bool { return h.cursor > 0 }

// CanRedo returns true if there is a snapshot after the current one.
func (h *History[T]) CanRedo() bool { return h.cursor < h.count-1 }

// Len returns the number of snapshots held.
func (h *History[T]) Len() int { return h.count }

// Clear drops every snapshot.
func (h *History[T]) Clear() {
	for i := range h.ring {
		h.ring[i] = snapshot{}
	}
	h.start, h.count, h.cursor = 0, 0, -1
}
