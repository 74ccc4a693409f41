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

package state

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titasat/go-beacon/pkg/calib"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	st, err := NewState(context.Background(), filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(st.Close)
	return st
}

func TestThermalRecordsRoundTrip(t *testing.T) {
	st := newTestState(t)

	records := []calib.ThermalRecord{
		{Timestamp: 100, CPUC: 3.0, MirrorCellC: -1.5},
		{Timestamp: 200, CPUC: 2.5, MirrorCellC: -1.0},
	}
	require.NoError(t, st.PutThermalRecords(records))

	got, err := st.GetThermalRecords()
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestSunVectorRecordsRoundTrip(t *testing.T) {
	st := newTestState(t)

	records := []calib.SunVectorRecord{
		{Timestamp: 100, X: 1, Y: 0.5, Z: -0.25},
	}
	require.NoError(t, st.PutSunVectorRecords(records))

	got, err := st.GetSunVectorRecords()
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestRecordsComeBackInTimestampOrder(t *testing.T) {
	st := newTestState(t)

	// Stored out of order; the timestamp key makes the cursor walk them
	// in time order.
	require.NoError(t, st.PutThermalRecords([]calib.ThermalRecord{
		{Timestamp: 300}, {Timestamp: 100}, {Timestamp: 200},
	}))

	got, err := st.GetThermalRecords()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, uint32(100), got[0].Timestamp)
	assert.Equal(t, uint32(200), got[1].Timestamp)
	assert.Equal(t, uint32(300), got[2].Timestamp)
}

func TestEmptyArchive(t *testing.T) {
	st := newTestState(t)

	thermals, err := st.GetThermalRecords()
	require.NoError(t, err)
	assert.Empty(t, thermals)

	sunVectors, err := st.GetSunVectorRecords()
	require.NoError(t, err)
	assert.Empty(t, sunVectors)
}
