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


// Package arraylist provides Array, a generic dynamic array.
//
// Array keeps its elements in one contiguous backing slice together with a
// logical size. Positions [0, Size()) are live; the rest of the buffer holds
// the zero value of the element type and is never exposed.
//
// # Growth
//
// A new Array starts with InitialCapacity slots. When an insertion finds the
// buffer full, the buffer doubles and existing elements are copied over.
// Capacity never shrinks, not even on ClearAll.
//
// # Sorting
//
// Sort is a partition-exchange sort (quicksort) driven by a caller supplied
// comparator:
//   - Lomuto partition around the last element of each range
//   - Insertion sort for ranges of insertionThreshold elements or fewer
//   - Recursion on the smaller partition only, so stack depth is O(log n)
//   - Heapsort fallback once the partition budget is spent, bounding the
//     worst case at O(n log n)
//
// Sort is not stable.
//
// # Absent Values
//
// Nil pointers, nil interfaces and other zero values are ordinary elements.
// A slot holding nil inside [0, Size()) is a present element, which is how
// it differs from an unused slot.
//
// # Example Usage
//
//	list := arraylist.New[int]()
//	list.Add(5)
//	list.Add(4)
//	if err := list.AddAt(0, 100); err != nil {
//	    return err
//	}
//	list.Sort(cmp.Compare[int])
//
// # Errors
//
// Every index-taking operation validates its index before touching the
// buffer. A bad index yields an error matching ErrIndexOutOfRange and leaves
// the Array unchanged.
package arraylist
