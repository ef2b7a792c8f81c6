// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package upair

import (
	"cmp"
	"encoding/binary"
	"hash/fnv"

	"github.com/consensys/go-upair/pkg/util/collection/hash"
	"github.com/consensys/go-upair/pkg/util/collection/set"
)

// Element captures the capabilities an element type must provide for an
// unordered pair to act as a container key: equality, a total order and
// hashing.  Each capability is only exercised by the corresponding Key
// operation.
type Element[T any] interface {
	// Check whether two elements are equal (or not).
	Equals(T) bool
	// Cmp returns < 0 if this is less than other, or 0 if they are equal, or
	// > 0 if this is greater than other.
	Cmp(other T) int
	// Return a suitable hashcode.
	Hash() uint64
}

// Key wraps an unordered pair of Element values as something which can be
// safely placed into a hash.Set or hash.Map (it satisfies hash.Hasher), or
// into a set.SortedSet (it satisfies set.Comparable).  Equality and hashing
// disregard the order of the two elements; ordering is over the canonical
// (ascending) form.
type Key[T Element[T]] struct {
	UnorderedPair[T]
}

var _ hash.Hasher[Key[Uint]] = Key[Uint]{}
var _ set.Comparable[Key[Uint]] = Key[Uint]{}

// NewKey constructs a new key over the two given elements, stored in the
// given positions.
func NewKey[T Element[T]](first T, second T) Key[T] {
	return Key[T]{New(first, second)}
}

// Equals compares two keys whilst disregarding the order of their elements.
func (p Key[T]) Equals(other Key[T]) bool {
	if p.First.Equals(other.First) && p.Second.Equals(other.Second) {
		return true
	}
	//
	return p.First.Equals(other.Second) && p.Second.Equals(other.First)
}

// Hash returns a hashcode which is identical for both orderings of the two
// elements.  The element hashcodes are folded smaller-element first, with
// ties keeping stored order, hence hashing stays consistent with Equals.
func (p Key[T]) Hash() uint64 {
	if p.First.Cmp(p.Second) > 0 {
		return hash.Combine(p.Second.Hash(), p.First.Hash())
	}
	// Not greater, hence stored order stands.
	return hash.Combine(p.First.Hash(), p.Second.Hash())
}

// Cmp imposes a total order over keys by comparing their canonical forms
// element-wise.  Hence, swapped keys always compare equal.
func (p Key[T]) Cmp(other Key[T]) int {
	var (
		pmin, pmax = p.ordered()
		omin, omax = other.ordered()
	)
	//
	if c := pmin.Cmp(omin); c != 0 {
		return c
	}
	//
	return pmax.Cmp(omax)
}

func (p Key[T]) ordered() (T, T) {
	if p.First.Cmp(p.Second) > 0 {
		return p.Second, p.First
	}

	return p.First, p.Second
}

// ============================================================================
// Element Implementations
// ============================================================================

// Uint wraps a machine word as an Element, allowing pairs of plain unsigned
// integers to be used as container keys without a bespoke wrapper.
type Uint uint

// Equals compares two Uints for equality.
func (p Uint) Equals(other Uint) bool {
	return p == other
}

// Cmp implementation for the Element interface.
func (p Uint) Cmp(other Uint) int {
	return cmp.Compare(p, other)
}

// Hash generates a 64-bit hashcode from the underlying value, using FNV-1a
// over its little-endian encoding.
func (p Uint) Hash() uint64 {
	var bytes [8]byte
	//
	binary.LittleEndian.PutUint64(bytes[:], uint64(p))
	//
	hasher := fnv.New64a()
	hasher.Write(bytes[:])
	// Done
	return hasher.Sum64()
}
