// Copyright (C) 2025 Google Inc.
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

package vk

// Struct is a node of a Vulkan extension chain.
//
// The chain and its nodes belong to the caller. Nothing in this package
// frees or clears a node, pruning only relinks the node before it.
type Struct interface {
	// SType returns the structure's tag. It must not depend on the receiver's
	// contents, as it is called on nil pointers by Get.
	SType() StructureType
	// Next returns the next node in the chain, or nil.
	Next() Struct
	// SetNext replaces the next node in the chain.
	SetNext(Struct)
}

// Header is embedded by every extensible structure and holds the chain link.
// PNext must be a nil interface, not a typed nil pointer, to end the chain.
type Header struct {
	PNext Struct
}

// Next returns the next node in the chain.
func (h *Header) Next() Struct { return h.PNext }

// SetNext replaces the next node in the chain.
func (h *Header) SetNext(s Struct) { h.PNext = s }

// Find returns the first node of the chain starting at head, head included,
// that has the tag t. It returns nil if there is none.
func Find(head Struct, t StructureType) Struct {
	for s := head; s != nil; s = s.Next() {
		if s.SType() == t {
			return s
		}
	}
	return nil
}

// Get returns the first node of the chain starting at head with the type T.
func Get[T Struct](head Struct) (T, bool) {
	var zero T
	if s, ok := Find(head, zero.SType()).(T); ok {
		return s, true
	}
	return zero, false
}

// Prune unlinks the first node after head with the tag t, by pointing its
// predecessor at its successor. It returns true if a node was removed.
//
// A head that carries the tag is never removed and Prune returns false: the
// head is the caller's own structure, and dropping it means advancing the
// caller's reference instead.
func Prune(head Struct, t StructureType) bool {
	if head == nil || head.SType() == t {
		return false
	}
	for prev, s := head, head.Next(); s != nil; prev, s = s, s.Next() {
		if s.SType() == t {
			prev.SetNext(s.Next())
			return true
		}
	}
	return false
}

// ChainLen returns the number of nodes in the chain, head included.
func ChainLen(head Struct) int {
	n := 0
	for s := head; s != nil; s = s.Next() {
		n++
	}
	return n
}

// Append links nodes, in order, to the end of the chain starting at head.
func Append(head Struct, nodes ...Struct) {
	tail := head
	for tail.Next() != nil {
		tail = tail.Next()
	}
	for _, n := range nodes {
		if n == nil {
			continue
		}
		tail.SetNext(n)
		tail = n
		for tail.Next() != nil {
			tail = tail.Next()
		}
	}
}
