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

// A reasonably simple hash container implementation which permits collisions.
// Observe that, for example, hashicorp's go-set is *not* a suitable
// replacement here, since that does not handle collisions.  Specifically, it
// assumes the hash function always uniquely identifies the data in question.
// We don't want to make that assumption here, since compound keys (such as
// unordered pairs) can easily produce colliding hashcodes.

// Hasher provides a generic definition of a hashing function suitable for use
// within the Set and Map containers.  This is similar to the Hasher interface
// provided in go-set, except that it additionally includes equality.
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.
	Hash() uint64
}

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// Combine folds one or more 64-bit hashcodes into a single hashcode using
// FNV-1a accumulation.  Observe that the result depends upon the order in
// which hashcodes are given.
func Combine(hashcodes ...uint64) uint64 {
	// FNV-1a hash implementation
	hash := offset64
	//
	for _, h := range hashcodes {
		hash ^= h
		hash *= prime64
	}
	//
	return hash
}
