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


// Package collections provides generic container types.
//
// # Subpackages
//
//   - arraylist: growable, randomly-accessible vector with indexed insert,
//     remove, replace and comparator-driven in-place sort
//
// # Array List (collections/arraylist)
//
//	import "github.com/ajroetker/go-collections/collections/arraylist"
//
//	list := arraylist.Of(5, 4, 1, 2, 7)
//	list.AddAt(0, 100)
//	list.Sort(cmp.Compare[int])
//
// Containers in this tree are not safe for concurrent mutation. Callers that
// share one across goroutines must guard every call with their own lock.
package collections
