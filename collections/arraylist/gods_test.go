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
	"testing"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/assert"
)

func TestContainer(t *testing.T) {
	var c containers.Container = fixture()

	assert.False(t, c.Empty())
	assert.Equal(t, 5, c.Size())
	assert.Equal(t, []interface{}{5, 4, 1, 2, 7}, c.Values())
	assert.Equal(t, "ArrayList[5, 4, 1, 2, 7]", c.String())

	c.Clear()
	assert.True(t, c.Empty())
	assert.Empty(t, c.Values())
}

func TestComparator(t *testing.T) {
	ints := fixture()
	ints.Sort(Comparator[int](utils.IntComparator))
	assert.Equal(t, []int{1, 2, 4, 5, 7}, ints.Slice())

	words := Of("pear", "apple", "fig")
	words.Sort(Comparator[string](utils.StringComparator))
	assert.Equal(t, []string{"apple", "fig", "pear"}, words.Slice())
}

func TestGodsSortMatches(t *testing.T) {
	a := Of(9, 3, 3, 0, -4, 12)
	values := a.Values()
	utils.Sort(values, utils.IntComparator)

	a.Sort(Comparator[int](utils.IntComparator))
	assert.Equal(t, values, a.Values())
}
