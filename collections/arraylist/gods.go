// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package arraylist

import (
	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
)

var _ containers.Container = (*Array[int])(nil)

// Values returns the elements in order as a []interface{}, for use with
// gods containers. Prefer Slice for typed access.
func (a *Array[T]) Values() []interface{} {
	out := make([]interface{}, a.size)
	for i := 0; i < a.size; i++ {
		out[i] = a.values[i]
	}
	return out
}

// Comparator adapts a gods comparator such as utils.IntComparator for use
// with Sort.
func Comparator[T any](c utils.Comparator) func(a, b T) int {
	return func(a, b T) int {
		return c(a, b)
	}
}
