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

// AOCSRecord is the full AOCS section in engineering units. It is not part
// of the exported CSV series; the inspect view uses it to show a complete
// decoded frame.
type AOCSRecord struct {
	Timestamp uint32
	Mode      uint32

	SunX, SunY, SunZ    float64
	MagX, MagY, MagZ    float64 // milligauss
	GyroX, GyroY, GyroZ float64 // deg/s

	IMUTempC                        float64
	FineGyroX, FineGyroY, FineGyroZ float64 // deg/s
	Wheel1, Wheel2, Wheel3, Wheel4  float64 // rad/s
}

// NewAOCSRecord converts a raw AOCS section into engineering units.
func NewAOCSRecord(a frame.AOCS, timestamp uint32, bigEndian bool) AOCSRecord {
	return AOCSRecord{
		Timestamp: swapU32(timestamp, bigEndian),
		Mode:      swapU32(a.Mode, bigEndian),

		SunX: SunAxis(swap16(a.SunVectorX, bigEndian)),
		SunY: SunAxis(swap16(a.SunVectorY, bigEndian)),
		SunZ: SunAxis(swap16(a.SunVectorZ, bigEndian)),

		MagX: MagMilligauss(swap16(a.MagnetometerX, bigEndian)),
		MagY: MagMilligauss(swap16(a.MagnetometerY, bigEndian)),
		MagZ: MagMilligauss(swap16(a.MagnetometerZ, bigEndian)),

		GyroX: GyroDPS(swap16(a.GyroX, bigEndian)),
		GyroY: GyroDPS(swap16(a.GyroY, bigEndian)),
		GyroZ: GyroDPS(swap16(a.GyroZ, bigEndian)),

		IMUTempC: IMUTempC(swap16(a.TemperatureIMU, bigEndian)),

		FineGyroX: FineGyroDPS(swap32(a.FineGyroX, bigEndian)),
		FineGyroY: FineGyroDPS(swap32(a.FineGyroY, bigEndian)),
		FineGyroZ: FineGyroDPS(swap32(a.FineGyroZ, bigEndian)),

		Wheel1: WheelRadSec(swap16(a.Wheel1, bigEndian)),
		Wheel2: WheelRadSec(swap16(a.Wheel2, bigEndian)),
		Wheel3: WheelRadSec(swap16(a.Wheel3, bigEndian)),
		Wheel4: WheelRadSec(swap16(a.Wheel4, bigEndian)),
	}
}

func (r AOCSRecord) String() string {
	return fmt.Sprintf("AOCS values { ts=%d, mode=%d, sun=(%.4f,%.4f,%.4f), mag=(%.1f,%.1f,%.1f) mG, "+
		"gyro=(%.4f,%.4f,%.4f) dps, imu=%.2f C, fine_gyro=(%.6f,%.6f,%.6f) dps, wheels=(%.1f,%.1f,%.1f,%.1f) rad/s }",
		r.Timestamp, r.Mode,
		r.SunX, r.SunY, r.SunZ,
		r.MagX, r.MagY, r.MagZ,
		r.GyroX, r.GyroY, r.GyroZ,
		r.IMUTempC,
		r.FineGyroX, r.FineGyroY, r.FineGyroZ,
		r.Wheel1, r.Wheel2, r.Wheel3, r.Wheel4)
}
