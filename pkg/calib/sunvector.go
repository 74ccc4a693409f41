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

// SunVectorColumns are the CSV column names for the sun vector series, in
// row order.
var SunVectorColumns = []string{"rtc_s", "sun_vector_x", "sun_vector_y", "sun_vector_z"}

// SunVectorRecord holds the calibrated sun sensor vector, tagged with the
// platform clock of the frame it came from.
type SunVectorRecord struct {
	Timestamp uint32
	X         float64
	Y         float64
	Z         float64
}

// NewSunVectorRecord converts the sun vector fields of a raw AOCS section
// into unit vector components. timestamp is the platform rtc_s field as
// read from the stream, still in wire byte order.
func NewSunVectorRecord(a frame.AOCS, timestamp uint32, bigEndian bool) SunVectorRecord {
	return SunVectorRecord{
		Timestamp: swapU32(timestamp, bigEndian),
		X:         SunAxis(swap16(a.SunVectorX, bigEndian)),
		Y:         SunAxis(swap16(a.SunVectorY, bigEndian)),
		Z:         SunAxis(swap16(a.SunVectorZ, bigEndian)),
	}
}

func (r SunVectorRecord) String() string {
	return fmt.Sprintf("Sun sensor (x,y,z) values { ts=%d, Sun Vector (%.2f,%.2f,%.2f) }",
		r.Timestamp, r.X, r.Y, r.Z)
}

// CSVRow formats the record as one semicolon separated CSV row without a
// trailing newline. precision is clamped to [0,9].
func (r SunVectorRecord) CSVRow(precision int) string {
	precision = clampPrecision(precision)
	return fmt.Sprintf("%d;%.*f;%.*f;%.*f",
		r.Timestamp, precision, r.X, precision, r.Y, precision, r.Z)
}

// CompareSunVector orders sun vector records by timestamp.
func CompareSunVector(a, b SunVectorRecord) int {
	switch {
	case a.Timestamp < b.Timestamp:
		return -1
	case a.Timestamp > b.Timestamp:
		return 1
	}
	return 0
}
