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
	"github.com/consensys/go-upair/pkg/util/collection/iter"
)

// Iter returns an iterator over the two elements of this pair, by value, in
// stored positional order.  Each call yields a fresh iterator, hence
// iteration is restartable.
func (p UnorderedPair[T]) Iter() iter.Iterator[T] {
	return &pairIterator[T]{p.First, p.Second, 0}
}

// RefIter returns an iterator over pointers to the two elements of this pair,
// in stored positional order.  Since Go has no const references, this single
// form covers both read-only and mutating access to the elements in place.
func (p *UnorderedPair[T]) RefIter() iter.Iterator[*T] {
	return &pairIterator[*T]{&p.First, &p.Second, 0}
}

// pairIterator visits exactly two items, without allocating an intermediate
// array.
type pairIterator[T any] struct {
	first  T
	second T
	index  uint
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *pairIterator[T]) HasNext() bool {
	return p.index < 2
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *pairIterator[T]) Next() T {
	p.index++
	//
	if p.index == 1 {
		return p.first
	} else if p.index == 2 {
		return p.second
	}
	// Issue!
	panic("iterator out-of-bounds")
}

// Append another iterator onto the end of this iterator.
//
//nolint:revive
func (p *pairIterator[T]) Append(other iter.Iterator[T]) iter.Iterator[T] {
	return iter.NewAppendIterator[T](p, other)
}

// Clone creates a copy of this iterator at the given cursor position.
//
//nolint:revive
func (p *pairIterator[T]) Clone() iter.Iterator[T] {
	return &pairIterator[T]{p.first, p.second, p.index}
}

// Collect allocates a new array containing all items of this iterator.
// This drains the iterator.
//
//nolint:revive
func (p *pairIterator[T]) Collect() []T {
	return iter.Collect[T](p)
}

// Count returns the number of items left in the iterator.
//
//nolint:revive
func (p *pairIterator[T]) Count() uint {
	return 2 - min(p.index, 2)
}

// Find returns the index of the first match for a given predicate, or return
// false if no match is found.
//
//nolint:revive
func (p *pairIterator[T]) Find(predicate iter.Predicate[T]) (uint, bool) {
	return iter.Find[T](p, predicate)
}

// Nth returns the nth item in this iterator.
//
//nolint:revive
func (p *pairIterator[T]) Nth(n uint) T {
	return iter.Nth[T](p, n)
}
