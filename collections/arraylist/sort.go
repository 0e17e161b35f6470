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

// insertionThreshold: ranges this size or smaller are finished with
// insertion sort.
const insertionThreshold = 12

// Sort sorts the elements in place so that cmp(a, b) <= 0 holds for every
// adjacent pair. cmp must return a negative number when a orders before b,
// a positive number when it orders after, and zero when they are equivalent.
//
// Sort is not stable.
func (a *Array[T]) Sort(cmp func(a, b T) int) {
	n := a.size
	if n <= 1 {
		return
	}

	// Partition budget: 2 * (floor(log2(n)) + 1)
	maxDepth := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		maxDepth++
	}
	maxDepth *= 2

	quickSort(a.values, 0, n-1, maxDepth, cmp)
}

// IsSorted reports whether cmp(a, b) <= 0 for every adjacent pair.
func (a *Array[T]) IsSorted(cmp func(a, b T) int) bool {
	for i := 1; i < a.size; i++ {
		if cmp(a.values[i-1], a.values[i]) > 0 {
			return false
		}
	}
	return true
}

// quickSort sorts values[low:high+1]. It recurses into the smaller
// partition and loops over the larger one.
func quickSort[T any](values []T, low, high, depthLimit int, cmp func(a, b T) int) {
	for low < high {
		if high-low+1 <= insertionThreshold {
			insertionSort(values[low:high+1], cmp)
			return
		}

		// Fallback to heapsort if partitioning keeps degenerating
		if depthLimit == 0 {
			heapSort(values[low:high+1], cmp)
			return
		}
		depthLimit--

		p := partition(values, low, high, cmp)
		if p-low < high-p {
			quickSort(values, low, p-1, depthLimit, cmp)
			low = p + 1
		} else {
			quickSort(values, p+1, high, depthLimit, cmp)
			high = p - 1
		}
	}
}

// partition is a Lomuto partition of values[low:high+1] around
// values[high]. It returns the pivot's final index p, with every element
// of values[low:p] ordering strictly before the pivot.
func partition[T any](values []T, low, high int, cmp func(a, b T) int) int {
	pivot := values[high]

	i := low - 1
	for j := low; j < high; j++ {
		if cmp(values[j], pivot) < 0 {
			i++
			values[i], values[j] = values[j], values[i]
		}
	}

	values[i+1], values[high] = values[high], values[i+1]
	return i + 1
}

func insertionSort[T any](data []T, cmp func(a, b T) int) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && cmp(data[j], key) > 0 {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

func heapSort[T any](data []T, cmp func(a, b T) int) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n, cmp)
	}

	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i, cmp)
	}
}

func siftDown[T any](data []T, i, n int, cmp func(a, b T) int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && cmp(data[left], data[largest]) > 0 {
			largest = left
		}
		if right < n && cmp(data[right], data[largest]) > 0 {
			largest = right
		}

		if largest == i {
			break
		}

		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}
