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
	"fmt"

	"github.com/segmentio/encoding/json"
)

// MarshalJSON encodes this pair as a two-element array "[first, second]" in
// stored positional order.
func (p UnorderedPair[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]T{p.First, p.Second})
}

// UnmarshalJSON decodes this pair from a two-element array, retaining the
// positional order found on the wire.  In particular, decoding does not
// re-canonicalise the two elements.
func (p *UnorderedPair[T]) UnmarshalJSON(data []byte) error {
	var elements []T
	//
	if err := json.Unmarshal(data, &elements); err != nil {
		return err
	} else if len(elements) != 2 {
		return fmt.Errorf("expected array of 2 elements, found %d", len(elements))
	}
	//
	p.First = elements[0]
	p.Second = elements[1]
	//
	return nil
}
