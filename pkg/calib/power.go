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

// PowerRecord is the power section in engineering units, for the inspect
// view. Battery voltages are already millivolts on the wire and only need
// byte-order correction.
type PowerRecord struct {
	Timestamp         uint32
	LowVoltageCounter uint16
	NiceBatteryMV     uint16
	RawBatteryMV      uint16
	BatteryA          float64
	PCM3v3V           float64
	PCM3v3A           float64
	PCM5vV            float64
	PCM5vA            float64
}

// NewPowerRecord converts a raw power section into engineering units.
func NewPowerRecord(p frame.Power, timestamp uint32, bigEndian bool) PowerRecord {
	return PowerRecord{
		Timestamp:         swapU32(timestamp, bigEndian),
		LowVoltageCounter: swapU16(p.LowVoltageCounter, bigEndian),
		NiceBatteryMV:     swapU16(p.NiceBatteryMV, bigEndian),
		RawBatteryMV:      swapU16(p.RawBatteryMV, bigEndian),
		BatteryA:          BusAmps(swapU16(p.BatteryA, bigEndian)),
		PCM3v3V:           Bus3v3Volts(swapU16(p.PCM3v3V, bigEndian)),
		PCM3v3A:           BusAmps(swapU16(p.PCM3v3A, bigEndian)),
		PCM5vV:            Bus5vVolts(swapU16(p.PCM5vV, bigEndian)),
		PCM5vA:            BusAmps(swapU16(p.PCM5vA, bigEndian)),
	}
}

func (r PowerRecord) String() string {
	return fmt.Sprintf("Power values { ts=%d, lv_count=%d, batt=%d mV (raw %d mV, %.3f A), "+
		"3v3=%.3f V %.3f A, 5v=%.3f V %.3f A }",
		r.Timestamp, r.LowVoltageCounter, r.NiceBatteryMV, r.RawBatteryMV, r.BatteryA,
		r.PCM3v3V, r.PCM3v3A, r.PCM5vV, r.PCM5vA)
}
