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
package hash

import (
	"fmt"
	"strings"

	"github.com/consensys/go-upair/pkg/util"
	"github.com/consensys/go-upair/pkg/util/collection/iter"
)

// Map defines a generic map implementation backed by a native map.  This is a
// true hashtable in that collisions are handled gracefully using buckets,
// rather than simply discarding them.
type Map[K Hasher[K], V any] struct {
	// buckets maps hashcodes to *buckets* of key-value bindings.
	buckets map[uint64]mapBucket[K, V]
}

// NewMap creates a new Map with a given underlying capacity.
func NewMap[K Hasher[K], V any](size uint) *Map[K, V] {
	buckets := make(map[uint64]mapBucket[K, V], size)
	return &Map[K, V]{buckets}
}

// Size returns the number of unique keys stored in this Map.
//
//nolint:revive
func (p *Map[K, V]) Size() uint {
	count := uint(0)
	for _, b := range p.buckets {
		count += b.size()
	}

	return count
}

// MaxBucket returns the size of the largest bucket.
//
//nolint:revive
func (p *Map[K, V]) MaxBucket() uint {
	m := uint(0)
	for _, b := range p.buckets {
		m = max(m, b.size())
	}

	return m
}

// Insert a new binding into this map, returning true if the key was already
// bound and false otherwise.
//
//nolint:revive
func (p *Map[K, V]) Insert(key K, value V) bool {
	// Compute key's hashcode
	hash := key.Hash()
	// Lookup existing bucket
	bucket := p.buckets[hash]
	// Insert new binding
	r := bucket.insert(key, value)
	// Update map
	p.buckets[hash] = bucket
	// Done
	return r
}

// ContainsKey checks whether the given key is bound within this map, or not.
//
//nolint:revive
func (p *Map[K, V]) ContainsKey(key K) bool {
	hash := key.Hash()

	if bucket, ok := p.buckets[hash]; ok {
		return bucket.containsKey(key)
	}

	return false
}

// Get the value bound to a given key, or return false otherwise.
//
//nolint:revive
func (p *Map[K, V]) Get(key K) (V, bool) {
	var (
		empty V
		hash  = key.Hash()
	)
	// Look for bucket
	if bucket, ok := p.buckets[hash]; ok {
		return bucket.get(key)
	}

	return empty, false
}

// KeyValues returns the set of all key-value bindings stored in this map.
// Observe that the order in which bindings are visited is unspecified.
//
//nolint:revive
func (p *Map[K, V]) KeyValues() iter.Iterator[util.Pair[K, V]] {
	var bindings []util.Pair[K, V]
	//
	for _, bucket := range p.buckets {
		for i, k := range bucket.keys {
			bindings = append(bindings, util.NewPair(k, bucket.values[i]))
		}
	}
	//
	return iter.NewArrayIterator(bindings)
}

//nolint:revive
func (p *Map[K, V]) String() string {
	var r strings.Builder
	//
	first := true
	// Write opening brace
	r.WriteString("{")
	// Iterate all buckets
	for _, b := range p.buckets {
		// Iterate all bindings in bucket
		for i, k := range b.keys {
			if !first {
				r.WriteString(",")
			}

			first = false

			r.WriteString(fmt.Sprintf("%s:=%s", any(k), any(b.values[i])))
		}
	}
	// Write closing brace
	r.WriteString("}")
	// Done
	return r.String()
}

// ============================================================================
// Bucket
// ============================================================================

type mapBucket[K Hasher[K], V any] struct {
	keys   []K
	values []V
}

// Get the number of bindings in this bucket.
//
//nolint:revive
func (b *mapBucket[K, V]) size() uint {
	return uint(len(b.keys))
}

// Insert a new binding into this bucket.
//
//nolint:revive
func (b *mapBucket[K, V]) insert(key K, value V) bool {
	// Determine whether key already present
	for i, k := range b.keys {
		if key.Equals(k) {
			b.values[i] = value
			return true
		}
	}
	// Append binding
	b.keys = append(b.keys, key)
	b.values = append(b.values, value)
	// Key not present
	return false
}

// Check whether this bucket contains a given key, or not.
//
//nolint:revive
func (b *mapBucket[K, V]) containsKey(key K) bool {
	for _, k := range b.keys {
		if key.Equals(k) {
			return true
		}
	}

	return false
}

// Get the value bound to a given key within this bucket, or return false.
//
//nolint:revive
func (b *mapBucket[K, V]) get(key K) (V, bool) {
	var empty V

	for i, k := range b.keys {
		if key.Equals(k) {
			return b.values[i], true
		}
	}

	return empty, false
}
