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

package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwap16(t *testing.T) {
	assert.Equal(t, uint16(0x3412), Swap16(0x1234))
	assert.Equal(t, uint16(0x0100), Swap16(0x0001))
	assert.Equal(t, uint16(0), Swap16(0))
	assert.Equal(t, uint16(0xffff), Swap16(0xffff))
}

func TestSwap32(t *testing.T) {
	assert.Equal(t, uint32(0x78563412), Swap32(0x12345678))
	assert.Equal(t, uint32(0x01000000), Swap32(0x00000001))
	assert.Equal(t, uint32(0), Swap32(0))
	assert.Equal(t, uint32(0xffffffff), Swap32(0xffffffff))
}

func TestSwapInvolution(t *testing.T) {
	for _, v := range []uint16{0, 1, 0x00ff, 0xff00, 0x1234, 0xabcd, 0xffff} {
		assert.Equal(t, v, Swap16(Swap16(v)))
	}
	for _, v := range []uint32{0, 1, 0x0000ffff, 0xffff0000, 0x12345678, 0xdeadbeef, 0xffffffff} {
		assert.Equal(t, v, Swap32(Swap32(v)))
	}
}

func TestUint24Value(t *testing.T) {
	assert.Equal(t, uint32(0), Uint24{0, 0, 0}.Value())
	assert.Equal(t, uint32(0x010203), Uint24{0x01, 0x02, 0x03}.Value())
	assert.Equal(t, uint32(0xffffff), Uint24{0xff, 0xff, 0xff}.Value())
}
