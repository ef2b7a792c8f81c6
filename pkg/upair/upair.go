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

// Package upair provides an unordered pair: a container of exactly two values
// of the same type whose equality, hashing and ordering disregard the order
// in which the two values are stored.  Its motivating use case is keying
// associative containers by undirected edges without manually canonicalising
// element order.
package upair

import (
	"cmp"
	"fmt"

	"github.com/consensys/go-upair/pkg/util"
	"github.com/consensys/go-upair/pkg/util/collection/hash"
	"github.com/samber/lo"
)

// UnorderedPair encapsulates two values of the same type, where position
// carries no meaning for comparison purposes.  Construction stores both
// values verbatim: UnorderedPair{1,2} and UnorderedPair{2,1} hold their
// elements in different positions, yet compare equal under Equals and hash
// identically under HashWith.  Canonicalisation never happens implicitly;
// it is only available through the explicit Ordered / Canonical operations.
//
// The zero value is the pair of two zero values of T.
type UnorderedPair[T any] struct {
	First  T
	Second T
}

// New returns a new unordered pair of the two given values, stored in the
// given positions.
func New[T any](first T, second T) UnorderedPair[T] {
	return UnorderedPair[T]{first, second}
}

// FromPair converts an ordered pair into an unordered pair, retaining the
// stored positions of its two components.
func FromPair[T any](p util.Pair[T, T]) UnorderedPair[T] {
	return UnorderedPair[T]{p.Left, p.Right}
}

// FromTuple2 converts a lo.Tuple2 into an unordered pair, retaining the
// stored positions of its two components.
func FromTuple2[T any](t lo.Tuple2[T, T]) UnorderedPair[T] {
	return UnorderedPair[T]{t.A, t.B}
}

// Unpack returns the two elements of this pair in their stored positional
// order.  This is never canonicalised.
func (p UnorderedPair[T]) Unpack() (T, T) {
	return p.First, p.Second
}

// ToPair converts this pair into an ordered pair, retaining stored positional
// order.
func (p UnorderedPair[T]) ToPair() util.Pair[T, T] {
	return util.NewPair(p.First, p.Second)
}

// ToTuple2 converts this pair into a lo.Tuple2, retaining stored positional
// order.
func (p UnorderedPair[T]) ToTuple2() lo.Tuple2[T, T] {
	return lo.T2(p.First, p.Second)
}

//nolint:revive
func (p UnorderedPair[T]) String() string {
	return fmt.Sprintf("{%v, %v}", p.First, p.Second)
}

// Equals compares two pairs whilst disregarding the order of their elements.
// This requires at most four element comparisons and never sorts or
// allocates.  Observe that, for element types whose equality is not reflexive
// (e.g. floating-point NaN), a pair can compare unequal to another pair built
// from the same inputs; that property is inherited from the element type and
// deliberately not masked here.
func Equals[T comparable](lhs UnorderedPair[T], rhs UnorderedPair[T]) bool {
	return (lhs.First == rhs.First && lhs.Second == rhs.Second) ||
		(lhs.First == rhs.Second && lhs.Second == rhs.First)
}

// Ordered returns the two elements of a pair in ascending order, as
// determined by the element type's total order.  On a tie, the elements are
// returned in stored positional order.
func Ordered[T cmp.Ordered](p UnorderedPair[T]) (T, T) {
	if cmp.Compare(p.First, p.Second) > 0 {
		return p.Second, p.First
	}
	// Not greater, hence stored order stands.
	return p.First, p.Second
}

// Canonical returns the canonical form of a pair, i.e. that whose first
// element is not greater than its second.  This is the explicit opt-in
// canonicalisation step required before using a pair directly as a native map
// key, since native equality over the struct is positional.
func Canonical[T cmp.Ordered](p UnorderedPair[T]) UnorderedPair[T] {
	first, second := Ordered(p)
	return UnorderedPair[T]{first, second}
}

// Compare imposes a total order over pairs of ordered elements by comparing
// their canonical forms element-wise.  Hence, swapped pairs always compare
// equal.
func Compare[T cmp.Ordered](lhs UnorderedPair[T], rhs UnorderedPair[T]) int {
	var (
		lmin, lmax = Ordered(lhs)
		rmin, rmax = Ordered(rhs)
	)
	//
	if c := cmp.Compare(lmin, rmin); c != 0 {
		return c
	}
	//
	return cmp.Compare(lmax, rmax)
}

// HashWith computes a hashcode for a pair of ordered elements, given a
// hashing function for individual elements.  The element hashcodes are folded
// smaller-element first (stored order on a tie), guaranteeing that both
// orderings of the same two elements produce identical hashcodes.  This keeps
// hashing consistent with Equals, as required for hash-keyed containers.
func HashWith[T cmp.Ordered](p UnorderedPair[T], hasher func(T) uint64) uint64 {
	if cmp.Compare(p.First, p.Second) > 0 {
		return hash.Combine(hasher(p.Second), hasher(p.First))
	}
	//
	return hash.Combine(hasher(p.First), hasher(p.Second))
}
