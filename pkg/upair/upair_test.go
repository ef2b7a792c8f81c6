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
	"math"
	"testing"

	"github.com/consensys/go-upair/pkg/util"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func Test_UnorderedPair_Equals(t *testing.T) {
	assert.True(t, Equals(New(5, 7), New(7, 5)))
	assert.True(t, Equals(New(5, 7), New(5, 7)))
	assert.True(t, Equals(New(7, 5), New(7, 5)))
	assert.False(t, Equals(New(5, 7), New(5, 8)))
	assert.False(t, Equals(New(5, 7), New(8, 7)))
	assert.False(t, Equals(New(5, 5), New(5, 7)))
	// Pairs of equal elements
	assert.True(t, Equals(New(3, 3), New(3, 3)))
	assert.False(t, Equals(New(3, 3), New(3, 4)))
}

// Non-reflexive element equality (NaN) propagates through the pair, exactly
// as component-wise equality would.
func Test_UnorderedPair_NaN(t *testing.T) {
	nan := math.NaN()
	//
	assert.False(t, Equals(New(nan, 1.3), New(1.3, nan)))
	assert.False(t, Equals(New(nan, 1.3), New(nan, 1.3)))
	// Sanity check reflexivity holds for well-behaved floats
	assert.True(t, Equals(New(1.3, 2.6), New(2.6, 1.3)))
}

func Test_UnorderedPair_Ordered(t *testing.T) {
	min12, max12 := Ordered(New(1, 2))
	min21, max21 := Ordered(New(2, 1))
	//
	assert.Equal(t, 1, min12)
	assert.Equal(t, 2, max12)
	assert.Equal(t, 1, min21)
	assert.Equal(t, 2, max21)
	// Strings are ordered too
	first, second := Ordered(New("b", "a"))
	assert.Equal(t, "a", first)
	assert.Equal(t, "b", second)
}

// On a tie, stored positional order stands.
func Test_UnorderedPair_Ordered_Ties(t *testing.T) {
	first, second := Ordered(New(3, 3))
	//
	assert.Equal(t, 3, first)
	assert.Equal(t, 3, second)
}

func Test_UnorderedPair_Canonical(t *testing.T) {
	assert.Equal(t, New(1, 2), Canonical(New(2, 1)))
	assert.Equal(t, New(1, 2), Canonical(New(1, 2)))
	// Canonical forms of swapped pairs are comparable with native equality,
	// hence usable as native map keys.
	edges := make(map[UnorderedPair[uint]]string)
	edges[Canonical(New[uint](1, 2))] = "a--b"
	edges[Canonical(New[uint](2, 1))] = "b--a"
	//
	assert.Len(t, edges, 1)
	assert.Equal(t, "b--a", edges[Canonical(New[uint](1, 2))])
}

func Test_UnorderedPair_Compare(t *testing.T) {
	assert.Equal(t, 0, Compare(New(1, 2), New(2, 1)))
	assert.Equal(t, 0, Compare(New(2, 1), New(1, 2)))
	assert.Negative(t, Compare(New(1, 2), New(1, 3)))
	assert.Positive(t, Compare(New(3, 1), New(1, 2)))
	// Ordered by smallest element first
	assert.Negative(t, Compare(New(5, 0), New(1, 2)))
}

func Test_UnorderedPair_HashWith(t *testing.T) {
	hasher := func(v uint) uint64 { return Uint(v).Hash() }
	//
	assert.Equal(t, HashWith(New[uint](5, 7), hasher), HashWith(New[uint](7, 5), hasher))
	assert.Equal(t, HashWith(New[uint](0, 1), hasher), HashWith(New[uint](1, 0), hasher))
	// Ties feed stored order, hence still deterministic
	assert.Equal(t, HashWith(New[uint](3, 3), hasher), HashWith(New[uint](3, 3), hasher))
	// Sanity check hashing actually discriminates
	assert.NotEqual(t, HashWith(New[uint](5, 7), hasher), HashWith(New[uint](5, 8), hasher))
}

func Test_UnorderedPair_Conversions(t *testing.T) {
	p := New("x", "y")
	// Unpack retains stored order exactly
	first, second := p.Unpack()
	assert.Equal(t, "x", first)
	assert.Equal(t, "y", second)
	// util.Pair round trip
	assert.Equal(t, p, FromPair(p.ToPair()))
	assert.Equal(t, util.NewPair("x", "y"), p.ToPair())
	// lo.Tuple2 round trip
	assert.Equal(t, p, FromTuple2(p.ToTuple2()))
	assert.Equal(t, lo.T2("x", "y"), p.ToTuple2())
}

// Construct two pairs from the same two values in opposite order: they are
// equal and hash equal, yet their positional conversions differ whilst their
// canonical conversions agree.
func Test_UnorderedPair_SwappedPair(t *testing.T) {
	hasher := func(v uint) uint64 { return Uint(v).Hash() }
	lhs := New[uint](9, 4)
	rhs := New[uint](4, 9)
	//
	assert.True(t, Equals(lhs, rhs))
	assert.Equal(t, HashWith(lhs, hasher), HashWith(rhs, hasher))
	//
	lf, ls := lhs.Unpack()
	rf, rs := rhs.Unpack()
	assert.NotEqual(t, lf, rf)
	assert.Equal(t, lf, rs)
	assert.Equal(t, ls, rf)
	//
	lmin, lmax := Ordered(lhs)
	rmin, rmax := Ordered(rhs)
	assert.Equal(t, lmin, rmin)
	assert.Equal(t, lmax, rmax)
}

// The zero value is the pair of two zero elements.
func Test_UnorderedPair_ZeroValue(t *testing.T) {
	var p UnorderedPair[uint]
	//
	assert.True(t, Equals(p, New[uint](0, 0)))
	//
	var q UnorderedPair[string]
	first, second := q.Unpack()
	assert.Equal(t, "", first)
	assert.Equal(t, "", second)
}

func Test_UnorderedPair_String(t *testing.T) {
	assert.Equal(t, "{1, 2}", New(1, 2).String())
	assert.Equal(t, "{2, 1}", New(2, 1).String())
}

func Test_UnorderedPair_Random(t *testing.T) {
	check_UnorderedPair_Random(t, 100, 32)
	check_UnorderedPair_Random(t, 1000, 1024)
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_UnorderedPair_Random(t *testing.T, n uint, m uint) {
	var (
		hasher = func(v uint) uint64 { return Uint(v).Hash() }
		items  = util.RandomUints(n*2, m)
	)
	//
	for i := uint(0); i < n; i++ {
		a, b := items[2*i], items[2*i+1]
		lhs, rhs := New(a, b), New(b, a)
		// Symmetric equality
		if !Equals(lhs, rhs) {
			t.Errorf("pairs %s and %s not equal", lhs, rhs)
		}
		// Order-independent hashing
		if HashWith(lhs, hasher) != HashWith(rhs, hasher) {
			t.Errorf("pairs %s and %s hash differently", lhs, rhs)
		}
		// Canonical forms agree
		if Canonical(lhs) != Canonical(rhs) {
			t.Errorf("pairs %s and %s canonicalise differently", lhs, rhs)
		}
		// Total order agrees
		if Compare(lhs, rhs) != 0 {
			t.Errorf("pairs %s and %s compare unequal", lhs, rhs)
		}
	}
}
