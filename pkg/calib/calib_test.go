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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/titasat/go-beacon/pkg/frame"
)

// u16 reinterprets negative values as their unsigned wire representation;
// the conversion must go through a non-constant because Go rejects constant
// conversions of negative values to unsigned types.
func u16(v int16) uint16 { return uint16(v) }

func TestConversionTable(t *testing.T) {
	assert.Equal(t, 0.0, TempC(0))
	assert.Equal(t, 3.0, TempC(300))
	assert.Equal(t, -1.5, TempC(-150))

	assert.Equal(t, 1.0, SunAxis(16384))
	assert.Equal(t, -0.5, SunAxis(-8192))

	assert.Equal(t, 5.0, MagMilligauss(10))
	assert.Equal(t, 1.25, GyroDPS(100))
	assert.Equal(t, 60.0, WheelRadSec(200))

	// The one affine conversion: raw 0 is 25 C, not 0 C.
	assert.Equal(t, 25.0, IMUTempC(0))
	assert.InDelta(t, 39.0, IMUTempC(100), 1e-9)

	assert.InDelta(t, 256.0/6300.0, FineGyroDPS(65536), 1e-12)

	assert.InDelta(t, 0.5237, BusAmps(100), 1e-9)
	assert.InDelta(t, 3.310040, Bus3v3Volts(830), 1e-6)
	assert.InDelta(t, 5.014575, Bus5vVolts(855), 1e-6)
}

func TestNewThermalRecordBigEndian(t *testing.T) {
	raw := frame.Thermal{
		CPUC:        int16(frame.Swap16(uint16(int16(300)))),
		MirrorCellC: int16(frame.Swap16(u16(-150))),
	}
	ts := frame.Swap32(1000)

	record := NewThermalRecord(raw, ts, true)
	assert.Equal(t, uint32(1000), record.Timestamp)
	assert.Equal(t, 3.0, record.CPUC)
	assert.Equal(t, -1.5, record.MirrorCellC)
}

func TestNewThermalRecordLittleEndian(t *testing.T) {
	raw := frame.Thermal{CPUC: 300, MirrorCellC: -150}

	record := NewThermalRecord(raw, 1000, false)
	assert.Equal(t, uint32(1000), record.Timestamp)
	assert.Equal(t, 3.0, record.CPUC)
	assert.Equal(t, -1.5, record.MirrorCellC)
}

func TestNewSunVectorRecord(t *testing.T) {
	raw := frame.AOCS{
		SunVectorX: int16(frame.Swap16(uint16(int16(16384)))),
		SunVectorY: int16(frame.Swap16(uint16(int16(8192)))),
		SunVectorZ: int16(frame.Swap16(u16(-4096))),
	}

	record := NewSunVectorRecord(raw, frame.Swap32(2000), true)
	assert.Equal(t, uint32(2000), record.Timestamp)
	assert.Equal(t, 1.0, record.X)
	assert.Equal(t, 0.5, record.Y)
	assert.Equal(t, -0.25, record.Z)
}

func TestNewAOCSRecord(t *testing.T) {
	raw := frame.AOCS{
		Mode:           frame.Swap32(2),
		MagnetometerX:  int16(frame.Swap16(uint16(int16(10)))),
		GyroY:          int16(frame.Swap16(u16(-100))),
		TemperatureIMU: int16(frame.Swap16(uint16(int16(100)))),
		FineGyroZ:      int32(frame.Swap32(uint32(int32(65536)))),
		Wheel1:         int16(frame.Swap16(uint16(int16(200)))),
	}

	record := NewAOCSRecord(raw, frame.Swap32(3000), true)
	assert.Equal(t, uint32(3000), record.Timestamp)
	assert.Equal(t, uint32(2), record.Mode)
	assert.Equal(t, 5.0, record.MagX)
	assert.Equal(t, -1.25, record.GyroY)
	assert.InDelta(t, 39.0, record.IMUTempC, 1e-9)
	assert.InDelta(t, 256.0/6300.0, record.FineGyroZ, 1e-12)
	assert.Equal(t, 60.0, record.Wheel1)
}

func TestNewPowerRecord(t *testing.T) {
	raw := frame.Power{
		NiceBatteryMV: frame.Swap16(3900),
		BatteryA:      frame.Swap16(100),
		PCM3v3V:       frame.Swap16(830),
		PCM5vV:        frame.Swap16(855),
	}

	record := NewPowerRecord(raw, frame.Swap32(4000), true)
	assert.Equal(t, uint32(4000), record.Timestamp)
	assert.Equal(t, uint16(3900), record.NiceBatteryMV)
	assert.InDelta(t, 0.5237, record.BatteryA, 1e-9)
	assert.InDelta(t, 3.310040, record.PCM3v3V, 1e-6)
	assert.InDelta(t, 5.014575, record.PCM5vV, 1e-6)
}

func TestCSVRowPrecision(t *testing.T) {
	record := ThermalRecord{Timestamp: 100, CPUC: 3.14159, MirrorCellC: -1.5}

	assert.Equal(t, "100;3.14;-1.50", record.CSVRow(2))
	assert.Equal(t, "100;3;-2", record.CSVRow(0))
	// Out-of-range precision is clamped to [0,9].
	assert.Equal(t, "100;3;-2", record.CSVRow(-5))
	assert.Equal(t, "100;3.141590000;-1.500000000", record.CSVRow(12))

	sun := SunVectorRecord{Timestamp: 200, X: 1, Y: 0.5, Z: -0.25}
	assert.Equal(t, "200;1.00;0.50;-0.25", sun.CSVRow(2))
}

func TestCompareByTimestamp(t *testing.T) {
	a := ThermalRecord{Timestamp: 100}
	b := ThermalRecord{Timestamp: 200}
	assert.Equal(t, -1, CompareThermal(a, b))
	assert.Equal(t, 1, CompareThermal(b, a))
	assert.Equal(t, 0, CompareThermal(a, a))

	x := SunVectorRecord{Timestamp: 100, X: 1}
	y := SunVectorRecord{Timestamp: 100, X: 2}
	// Equality is defined by timestamp alone.
	assert.Equal(t, 0, CompareSunVector(x, y))
}
