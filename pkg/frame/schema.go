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

// SectionID identifies a section of the beacon frame. Every section starts
// with its ID on the wire and the decoder rejects the whole frame when the
// ID read from the stream does not match.
type SectionID uint16

const (
	PlatformID SectionID = 0x0001
	MemoryID   SectionID = 0x0101
	CDHID      SectionID = 0x0201
	PowerID    SectionID = 0x0301
	ThermalID  SectionID = 0x0401
	AOCSID     SectionID = 0x0501
	PayloadID  SectionID = 0x0601
)

// MarkerLen is the size of the beacon marker preceding each frame.
const MarkerLen = 3

// Marker is the 3-byte sequence that introduces a frame in the stream.
// It is not part of the frame body.
type Marker [MarkerLen]byte

// DefaultMarker is the beacon ID emitted by the satellite.
var DefaultMarker = Marker{0xff, 0xff, 0xf0}

// Uint24 is the nonstandard 3-byte wide integer used by a few platform
// counters. It is kept as raw bytes, most significant wire byte first.
type Uint24 [3]byte

// Value interprets the three bytes in wire order.
func (u Uint24) Value() uint32 {
	return uint32(u[0])<<16 | uint32(u[1])<<8 | uint32(u[2])
}

// Platform section, 18 bytes on the wire.
type Platform struct {
	ID             uint16
	UptimeS        uint32
	RtcS           uint32 // seconds since 1970-01-01
	ResetCount     Uint24
	CurrentMode    uint8 // value & 0x7f is mode, high bit selects computer A/B
	LastBootReason uint32
}

// Memory section, 6 bytes on the wire.
type Memory struct {
	ID            uint16
	HeapFreeBytes uint32
}

// CDH section, 7 bytes on the wire.
type CDH struct {
	ID                     uint16
	LastSeenSequenceNumber uint32
	AntennaDeployStatus    uint8
}

// Power section, 18 bytes on the wire.
type Power struct {
	ID                uint16
	LowVoltageCounter uint16
	NiceBatteryMV     uint16
	RawBatteryMV      uint16
	BatteryA          uint16
	PCM3v3V           uint16
	PCM3v3A           uint16
	PCM5vV            uint16
	PCM5vA            uint16
}

// Thermal section, 6 bytes on the wire.
type Thermal struct {
	ID          uint16
	CPUC        int16
	MirrorCellC int16
}

// AOCS section, 46 bytes on the wire.
type AOCS struct {
	ID   uint16
	Mode uint32

	SunVectorX int16
	SunVectorY int16
	SunVectorZ int16

	MagnetometerX int16
	MagnetometerY int16
	MagnetometerZ int16

	GyroX int16
	GyroY int16
	GyroZ int16

	TemperatureIMU int16
	FineGyroX      int32
	FineGyroY      int32
	FineGyroZ      int32

	Wheel1 int16
	Wheel2 int16
	Wheel3 int16
	Wheel4 int16
}

// Payload section, 9 bytes on the wire.
type Payload struct {
	ID                uint16
	ExperimentsRun    uint16
	ExperimentsFailed uint16
	LastExperimentRun int16
	CurrentState      uint8
}

// Frame holds one decoded beacon frame in raw wire form. Multi-byte fields
// keep the byte order they had in the stream; byte-order correction is
// applied by the calibration converters, not here. Only the section ID
// checks performed during decoding swap a local copy of the ID.
type Frame struct {
	Platform Platform
	Memory   Memory
	CDH      CDH
	Power    Power
	Thermal  Thermal
	AOCS     AOCS
	Payload  Payload
}
