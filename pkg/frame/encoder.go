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
	"encoding/binary"
)

// Serialize appends the marker and the frame body to buf and returns the
// result. It is the exact inverse of Decoder.Next: field values are written
// as held in the struct, so a frame carrying wire-order values produces the
// original wire bytes. Used to synthesize beacon streams.
func (f *Frame) Serialize(buf []byte, marker Marker) []byte {
	buf = append(buf, marker[:]...)

	buf = appendU16(buf, f.Platform.ID)
	buf = appendU32(buf, f.Platform.UptimeS)
	buf = appendU32(buf, f.Platform.RtcS)
	buf = append(buf, f.Platform.ResetCount[:]...)
	buf = append(buf, f.Platform.CurrentMode)
	buf = appendU32(buf, f.Platform.LastBootReason)

	buf = appendU16(buf, f.Memory.ID)
	buf = appendU32(buf, f.Memory.HeapFreeBytes)

	buf = appendU16(buf, f.CDH.ID)
	buf = appendU32(buf, f.CDH.LastSeenSequenceNumber)
	buf = append(buf, f.CDH.AntennaDeployStatus)

	buf = appendU16(buf, f.Power.ID)
	buf = appendU16(buf, f.Power.LowVoltageCounter)
	buf = appendU16(buf, f.Power.NiceBatteryMV)
	buf = appendU16(buf, f.Power.RawBatteryMV)
	buf = appendU16(buf, f.Power.BatteryA)
	buf = appendU16(buf, f.Power.PCM3v3V)
	buf = appendU16(buf, f.Power.PCM3v3A)
	buf = appendU16(buf, f.Power.PCM5vV)
	buf = appendU16(buf, f.Power.PCM5vA)

	buf = appendU16(buf, f.Thermal.ID)
	buf = appendU16(buf, uint16(f.Thermal.CPUC))
	buf = appendU16(buf, uint16(f.Thermal.MirrorCellC))

	buf = appendU16(buf, f.AOCS.ID)
	buf = appendU32(buf, f.AOCS.Mode)
	buf = appendU16(buf, uint16(f.AOCS.SunVectorX))
	buf = appendU16(buf, uint16(f.AOCS.SunVectorY))
	buf = appendU16(buf, uint16(f.AOCS.SunVectorZ))
	buf = appendU16(buf, uint16(f.AOCS.MagnetometerX))
	buf = appendU16(buf, uint16(f.AOCS.MagnetometerY))
	buf = appendU16(buf, uint16(f.AOCS.MagnetometerZ))
	buf = appendU16(buf, uint16(f.AOCS.GyroX))
	buf = appendU16(buf, uint16(f.AOCS.GyroY))
	buf = appendU16(buf, uint16(f.AOCS.GyroZ))
	buf = appendU16(buf, uint16(f.AOCS.TemperatureIMU))
	buf = appendU32(buf, uint32(f.AOCS.FineGyroX))
	buf = appendU32(buf, uint32(f.AOCS.FineGyroY))
	buf = appendU32(buf, uint32(f.AOCS.FineGyroZ))
	buf = appendU16(buf, uint16(f.AOCS.Wheel1))
	buf = appendU16(buf, uint16(f.AOCS.Wheel2))
	buf = appendU16(buf, uint16(f.AOCS.Wheel3))
	buf = appendU16(buf, uint16(f.AOCS.Wheel4))

	buf = appendU16(buf, f.Payload.ID)
	buf = appendU16(buf, f.Payload.ExperimentsRun)
	buf = appendU16(buf, f.Payload.ExperimentsFailed)
	buf = appendU16(buf, uint16(f.Payload.LastExperimentRun))
	buf = append(buf, f.Payload.CurrentState)

	return buf
}

func appendU16(buf []byte, v uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return append(buf, b[:]...)
}

func appendU32(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}
