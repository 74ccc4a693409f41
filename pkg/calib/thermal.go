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

package calib

import (
	"fmt"

	"github.com/titasat/go-beacon/pkg/frame"
)

// ThermalColumns are the CSV column names for the thermal series, in row
// order.
var ThermalColumns = []string{"rtc_s", "CPU_C", "mirror_cell_C"}

// ThermalRecord holds thermal values in degrees Celsius, tagged with the
// platform clock of the frame they came from.
type ThermalRecord struct {
	Timestamp   uint32
	CPUC        float64
	MirrorCellC float64
}

// NewThermalRecord converts a raw thermal section into engineering units.
// timestamp is the platform rtc_s field as read from the stream, still in
// wire byte order.
func NewThermalRecord(t frame.Thermal, timestamp uint32, bigEndian bool) ThermalRecord {
	return ThermalRecord{
		Timestamp:   swapU32(timestamp, bigEndian),
		CPUC:        TempC(swap16(t.CPUC, bigEndian)),
		MirrorCellC: TempC(swap16(t.MirrorCellC, bigEndian)),
	}
}

func (r ThermalRecord) String() string {
	return fmt.Sprintf("Thermal values { ts=%d, CPU=%.2f C, mirror=%.2f C }",
		r.Timestamp, r.CPUC, r.MirrorCellC)
}

// CSVRow formats the record as one semicolon separated CSV row without a
// trailing newline. precision is clamped to [0,9].
func (r ThermalRecord) CSVRow(precision int) string {
	precision = clampPrecision(precision)
	return fmt.Sprintf("%d;%.*f;%.*f",
		r.Timestamp, precision, r.CPUC, precision, r.MirrorCellC)
}

// CompareThermal orders thermal records by timestamp. Equal timestamps
// compare as 0, which is what the deduplication step keys on.
func CompareThermal(a, b ThermalRecord) int {
	switch {
	case a.Timestamp < b.Timestamp:
		return -1
	case a.Timestamp > b.Timestamp:
		return 1
	}
	return 0
}
