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

// Package calib converts raw beacon telemetry into engineering units.
//
// The conversion table comes from the beacon stream documentation and is
// fixed. Converters are pure: they never reject a value and never clamp
// out-of-range results. Byte-order correction of the raw fields happens
// here, exactly once per field, when the stream is big-endian.
package calib

import (
	"github.com/titasat/go-beacon/pkg/frame"
)

// Conversion factors per the beacon telemetry documentation.
const (
	TempCPerLSB       = 0.01          // thermal sensors, C
	SunVectorPerLSB   = 1.0 / 16384.0 // sun vector axis, unit vector component
	MagMGaussPerLSB   = 0.5           // magnetometer axis, milligauss
	GyroDPSPerLSB     = 0.0125        // coarse gyro axis, deg/s
	WheelRadSecPerLSB = 0.3           // reaction wheel speed, rad/s
	BusAmpsPerLSB     = 0.005237      // battery and PCM current rails, A
	Bus3v3VoltsPerLSB = 0.003988      // 3v3 PCM rail, V
	Bus5vVoltsPerLSB  = 0.005865      // 5v PCM rail, V

	// IMU temperature is the one affine conversion: C = raw * 0.14 + 25
	IMUTempCPerLSB = 0.14
	IMUTempCOffset = 25.0

	// Fine gyro: dps = raw * (256 / 6300) / 65536
	FineGyroDPSPerLSB = (256.0 / 6300.0) / 65536.0
)

func swap16(v int16, bigEndian bool) int16 {
	if bigEndian {
		return int16(frame.Swap16(uint16(v)))
	}
	return v
}

func swap32(v int32, bigEndian bool) int32 {
	if bigEndian {
		return int32(frame.Swap32(uint32(v)))
	}
	return v
}

func swapU16(v uint16, bigEndian bool) uint16 {
	if bigEndian {
		return frame.Swap16(v)
	}
	return v
}

func swapU32(v uint32, bigEndian bool) uint32 {
	if bigEndian {
		return frame.Swap32(v)
	}
	return v
}

// TempC converts a corrected thermal sensor reading to degrees Celsius.
func TempC(raw int16) float64 { return float64(raw) * TempCPerLSB }

// SunAxis converts a corrected sun sensor axis reading to a unit vector
// component.
func SunAxis(raw int16) float64 { return float64(raw) * SunVectorPerLSB }

// MagMilligauss converts a corrected magnetometer axis reading.
func MagMilligauss(raw int16) float64 { return float64(raw) * MagMGaussPerLSB }

// GyroDPS converts a corrected coarse gyro axis reading to deg/s.
func GyroDPS(raw int16) float64 { return float64(raw) * GyroDPSPerLSB }

// FineGyroDPS converts a corrected fine gyro axis reading to deg/s.
func FineGyroDPS(raw int32) float64 { return float64(raw) * FineGyroDPSPerLSB }

// WheelRadSec converts a corrected reaction wheel speed reading to rad/s.
func WheelRadSec(raw int16) float64 { return float64(raw) * WheelRadSecPerLSB }

// IMUTempC converts a corrected IMU temperature reading to degrees Celsius.
func IMUTempC(raw int16) float64 { return float64(raw)*IMUTempCPerLSB + IMUTempCOffset }

// BusAmps converts a corrected current rail reading to amperes.
func BusAmps(raw uint16) float64 { return float64(raw) * BusAmpsPerLSB }

// Bus3v3Volts converts a corrected 3v3 rail reading to volts.
func Bus3v3Volts(raw uint16) float64 { return float64(raw) * Bus3v3VoltsPerLSB }

// Bus5vVolts converts a corrected 5v rail reading to volts.
func Bus5vVolts(raw uint16) float64 { return float64(raw) * Bus5vVoltsPerLSB }

func clampPrecision(precision int) int {
	if precision < 0 {
		return 0
	}
	if precision > 9 {
		return 9
	}
	return precision
}
