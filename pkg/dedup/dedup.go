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

// Package dedup provides in-place compaction of sorted slices.
package dedup

// Compact removes consecutive duplicates from s in place and returns the
// new logical length. The comparator defines equality by returning 0, with
// the same three-way contract as sort comparators.
//
// s must already be sorted by the same comparator; the result is undefined
// otherwise. The first element of each equal run is kept, in original
// relative order. Elements past the returned length are leftover data and
// must not be interpreted. Single linear pass, no allocation.
func Compact[T any](s []T, cmp func(a, b T) int) int {
	if len(s) == 0 || cmp == nil {
		return 0
	}

	keep := 1
	for i := 1; i < len(s); i++ {
		if cmp(s[i], s[keep-1]) != 0 {
			if keep != i {
				s[keep] = s[i]
			}
			keep++
		}
	}
	return keep
}
