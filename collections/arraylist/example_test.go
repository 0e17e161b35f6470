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


package arraylist_test

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/ajroetker/go-collections/collections/arraylist"
)

func ExampleArray() {
	list := arraylist.Of(5, 4, 1, 2, 7)

	_ = list.AddAt(0, 100)
	fmt.Println(list, list.Size())

	removed, _ := list.Remove(1)
	fmt.Println(list, removed)

	list.Sort(cmp.Compare[int])
	fmt.Println(list)

	_ = list.Replace(0, 9)
	fmt.Println(list)

	_, err := list.Get(5)
	fmt.Println(errors.Is(err, arraylist.ErrIndexOutOfRange))
	// Output:
	// ArrayList[100, 5, 4, 1, 2, 7] 6
	// ArrayList[100, 4, 1, 2, 7] 5
	// ArrayList[1, 2, 4, 7, 100]
	// ArrayList[9, 2, 4, 7, 100]
	// true
}

func ExampleArray_ClearAll() {
	list := arraylist.Of("a", "b", "c")
	list.ClearAll()

	_, err := list.Get(0)
	fmt.Println(list.Size(), list.Capacity(), err != nil)
	// Output:
	// 0 16 true
}
