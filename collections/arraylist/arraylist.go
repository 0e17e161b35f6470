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
	"fmt"
	"iter"
	"strings"
)

// InitialCapacity is the number of slots allocated for a new Array.
const InitialCapacity = 16

// Array is a growable vector of T. The zero value is an empty Array ready to
// use; it allocates InitialCapacity slots on first insertion.
//
// Array is not safe for concurrent use.
type Array[T any] struct {
	values []T
	size   int
}

// New returns an empty Array with InitialCapacity slots.
func New[T any]() *Array[T] {
	return &Array[T]{values: make([]T, InitialCapacity)}
}

// Of returns an Array holding values in order.
func Of[T any](values ...T) *Array[T] {
	a := New[T]()
	for _, v := range values {
		a.Add(v)
	}
	return a
}

// Size returns the number of elements in the Array.
func (a *Array[T]) Size() int {
	return a.size
}

// Capacity returns the number of allocated slots.
func (a *Array[T]) Capacity() int {
	return len(a.values)
}

// Empty reports whether the Array holds no elements.
func (a *Array[T]) Empty() bool {
	return a.size == 0
}

// Add appends value to the end of the Array. It always returns true.
func (a *Array[T]) Add(value T) bool {
	// Appending at size is always in range.
	_ = a.AddAt(a.size, value)
	return true
}

// AddAt inserts value at index, shifting the elements at [index, Size())
// one position to the right. index may equal Size(), which appends.
func (a *Array[T]) AddAt(index int, value T) error {
	if index < 0 || index > a.size {
		return outOfRange(index, a.size)
	}
	if a.size == len(a.values) {
		a.grow()
	}
	copy(a.values[index+1:a.size+1], a.values[index:a.size])
	a.values[index] = value
	a.size++
	return nil
}

// Get returns the element at index.
func (a *Array[T]) Get(index int) (T, error) {
	if err := a.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return a.values[index], nil
}

// Remove deletes the element at index and returns it. Elements after index
// shift one position to the left.
func (a *Array[T]) Remove(index int) (T, error) {
	if err := a.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	removed := a.values[index]
	copy(a.values[index:a.size-1], a.values[index+1:a.size])
	a.size--

	// Drop the stale copy left behind by the shift.
	var zero T
	a.values[a.size] = zero
	return removed, nil
}

// Replace overwrites the element at index with value.
func (a *Array[T]) Replace(index int, value T) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	a.values[index] = value
	return nil
}

// ClearAll removes every element. All slots are reset to the zero value so
// no references are retained; capacity is unchanged.
func (a *Array[T]) ClearAll() {
	clear(a.values)
	a.size = 0
}

// Clear is ClearAll. It lets Array satisfy gods' containers.Container.
func (a *Array[T]) Clear() {
	a.ClearAll()
}

// Slice returns a copy of the elements in order. The result never aliases
// the backing buffer.
func (a *Array[T]) Slice() []T {
	out := make([]T, a.size)
	copy(out, a.values[:a.size])
	return out
}

// All returns an iterator over index/element pairs in order. The Array must
// not be mutated during iteration.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.values[i]) {
				return
			}
		}
	}
}

// String formats the Array as ArrayList[v0, v1, ...].
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteString("ArrayList[")
	for i := 0; i < a.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", a.values[i])
	}
	sb.WriteString("]")
	return sb.String()
}

// grow doubles the backing buffer, allocating InitialCapacity slots for a
// zero-value Array.
func (a *Array[T]) grow() {
	newCap := len(a.values) << 1
	if newCap == 0 {
		newCap = InitialCapacity
	}
	values := make([]T, newCap)
	copy(values, a.values[:a.size])
	a.values = values
}

func (a *Array[T]) checkIndex(index int) error {
	if index < 0 || index >= a.size {
		return outOfRange(index, a.size)
	}
	return nil
}
