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
package iter

import (
	"slices"
	"testing"
)

func Test_ArrayIterator_01(t *testing.T) {
	it := NewArrayIterator([]uint{1, 2, 3})
	//
	if it.Count() != 3 {
		t.Errorf("expected 3 items, got %d", it.Count())
	}
	//
	items := it.Collect()
	//
	if !slices.Equal(items, []uint{1, 2, 3}) {
		t.Errorf("unexpected items %v", items)
	}
}

func Test_ArrayIterator_02(t *testing.T) {
	it := NewArrayIterator([]uint{1, 2, 3})
	//
	it.Next()
	// Clone picks up at the cursor
	items := it.Clone().Collect()
	//
	if !slices.Equal(items, []uint{2, 3}) {
		t.Errorf("unexpected items %v", items)
	}
}

func Test_ArrayIterator_03(t *testing.T) {
	it := NewArrayIterator([]uint{1, 2, 3})
	//
	index, ok := it.Find(func(item uint) bool { return item == 2 })
	//
	if !ok || index != 1 {
		t.Errorf("expected match at index 1, got %d (%t)", index, ok)
	}
	//
	_, ok = NewArrayIterator([]uint{1, 2, 3}).Find(func(item uint) bool { return item > 3 })
	//
	if ok {
		t.Error("unexpected match")
	}
}

func Test_AppendIterator_01(t *testing.T) {
	var (
		lhs = NewArrayIterator([]uint{1, 2})
		rhs = NewArrayIterator([]uint{3, 4})
		it  = lhs.Append(rhs)
	)
	//
	if it.Count() != 4 {
		t.Errorf("expected 4 items, got %d", it.Count())
	}
	//
	items := it.Collect()
	//
	if !slices.Equal(items, []uint{1, 2, 3, 4}) {
		t.Errorf("unexpected items %v", items)
	}
}

func Test_AppendIterator_02(t *testing.T) {
	var (
		lhs = NewArrayIterator([]uint{1, 2})
		rhs = NewArrayIterator([]uint{3, 4})
		it  = lhs.Append(rhs)
	)
	//
	if it.Nth(2) != 3 {
		t.Error("expected item 3")
	}
}
