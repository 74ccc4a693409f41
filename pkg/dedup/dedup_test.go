/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func TestCompact(t *testing.T) {
	s := []int{1, 1, 2, 3, 3, 3, 4}
	n := Compact(s, compareInts)
	assert.Equal(t, 4, n)
	assert.Equal(t, []int{1, 2, 3, 4}, s[:n])
}

func TestCompactNoDuplicates(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}
	n := Compact(s, compareInts)
	assert.Equal(t, 5, n)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s[:n])
}

func TestCompactEdgeCases(t *testing.T) {
	assert.Equal(t, 0, Compact(nil, compareInts))
	assert.Equal(t, 0, Compact([]int{1, 2, 3}, nil))
	assert.Equal(t, 1, Compact([]int{7}, compareInts))

	all := []int{9, 9, 9, 9}
	n := Compact(all, compareInts)
	assert.Equal(t, 1, n)
	assert.Equal(t, []int{9}, all[:n])
}

func TestCompactKeepsFirstOfRun(t *testing.T) {
	type sample struct {
		key     int
		payload string
	}
	compareKeys := func(a, b sample) int { return compareInts(a.key, b.key) }

	s := []sample{
		{1, "first"},
		{1, "second"},
		{2, "first"},
		{2, "second"},
		{2, "third"},
		{3, "first"},
	}
	n := Compact(s, compareKeys)
	assert.Equal(t, 3, n)
	for _, kept := range s[:n] {
		assert.Equal(t, "first", kept.payload)
	}
}
