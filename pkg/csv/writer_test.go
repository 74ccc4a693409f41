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

package csv

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	Key   uint32
	Value float64
}

func formatPair(p pair, precision int) string {
	return fmt.Sprintf("%d;%.*f", p.Key, precision, p.Value)
}

func TestWrite(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.csv")
	records := []pair{{100, 1.5}, {200, -2.25}}

	err := Write(filename, records, formatPair, 2, "key", "value")
	require.NoError(t, err)

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "key;value\n100;1.50\n200;-2.25\n", string(data))
}

func TestWriteEmptySeries(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "empty.csv")

	err := Write(filename, nil, formatPair, 2, "key", "value")
	require.NoError(t, err)

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "key;value\n", string(data))
}

func TestWriteArgumentValidation(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.csv")

	err := Write[pair](filename, nil, nil, 2, "key")
	assert.Error(t, err)

	err = Write(filename, []pair{{1, 1}}, formatPair, 2)
	assert.Error(t, err)
}

func TestWriteBadPath(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", "out.csv"),
		[]pair{{1, 1}}, formatPair, 2, "key", "value")
	assert.Error(t, err)
}
