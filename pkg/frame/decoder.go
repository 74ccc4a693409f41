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
	"io"

	"github.com/titasat/go-beacon/pkg/log"
)

// Decoder reads beacon frames from a byte stream. Between frames the stream
// may contain arbitrary garbage; Next scans byte by byte until the marker is
// found and only then starts the structured read.
//
// Next returns io.EOF when the stream is exhausted before a marker shows up.
// Callers must treat io.EOF as normal termination and every other error as
// an abort condition for the stream.
type Decoder struct {
	r         io.Reader
	marker    Marker
	bigEndian bool
	scratch   [4]byte
}

func NewDecoder(r io.Reader, marker Marker, bigEndian bool) *Decoder {
	return &Decoder{
		r:         r,
		marker:    marker,
		bigEndian: bigEndian,
	}
}

// Next locates the next marker and decodes the frame body that follows.
// No partial frame is ever returned: a short read or a section ID mismatch
// fails the whole frame.
func (d *Decoder) Next() (*Frame, error) {
	if err := d.scanMarker(); err != nil {
		return nil, err
	}
	log.Debug("Decoder.Next: marker found, reading frame body")

	f := &Frame{}
	for _, decode := range []func(*Frame) error{
		d.decodePlatform,
		d.decodeMemory,
		d.decodeCDH,
		d.decodePower,
		d.decodeThermal,
		d.decodeAOCS,
		d.decodePayload,
	} {
		if err := decode(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// scanMarker slides a 3-byte ring over the stream until it matches the
// marker. Returns io.EOF when the stream ends first.
func (d *Decoder) scanMarker() error {
	var ring Marker
	filled := 0
	for {
		if _, err := io.ReadFull(d.r, d.scratch[:1]); err != nil {
			return io.EOF
		}
		if filled < MarkerLen {
			ring[filled] = d.scratch[0]
			filled++
		} else {
			ring[0] = ring[1]
			ring[1] = ring[2]
			ring[2] = d.scratch[0]
		}
		if filled == MarkerLen && ring == d.marker {
			return nil
		}
	}
}

// read fills buf from the stream, exactly as many bytes as the destination
// field is wide. Reading field by field avoids any dependence on in-memory
// struct padding, which does not exist in the wire format.
func (d *Decoder) read(section, field string, width int) ([]byte, error) {
	buf := d.scratch[:width]
	if _, err := io.ReadFull(d.r, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, ErrTruncatedFrame{Section: section, Field: field, Err: err}
	}
	return buf, nil
}

func (d *Decoder) readUint8(section, field string, out *uint8) error {
	buf, err := d.read(section, field, 1)
	if err != nil {
		return err
	}
	*out = buf[0]
	return nil
}

func (d *Decoder) readUint16(section, field string, out *uint16) error {
	buf, err := d.read(section, field, 2)
	if err != nil {
		return err
	}
	*out = binary.LittleEndian.Uint16(buf)
	return nil
}

func (d *Decoder) readInt16(section, field string, out *int16) error {
	buf, err := d.read(section, field, 2)
	if err != nil {
		return err
	}
	*out = int16(binary.LittleEndian.Uint16(buf))
	return nil
}

func (d *Decoder) readUint24(section, field string, out *Uint24) error {
	buf, err := d.read(section, field, 3)
	if err != nil {
		return err
	}
	copy(out[:], buf)
	return nil
}

func (d *Decoder) readUint32(section, field string, out *uint32) error {
	buf, err := d.read(section, field, 4)
	if err != nil {
		return err
	}
	*out = binary.LittleEndian.Uint32(buf)
	return nil
}

func (d *Decoder) readInt32(section, field string, out *int32) error {
	buf, err := d.read(section, field, 4)
	if err != nil {
		return err
	}
	*out = int32(binary.LittleEndian.Uint32(buf))
	return nil
}

// readID reads a section's leading ID field and validates it against the
// expected constant. The stored value stays in wire order; only the
// comparison uses the corrected copy.
func (d *Decoder) readID(section string, want SectionID, out *uint16) error {
	if err := d.readUint16(section, "id", out); err != nil {
		return err
	}
	got := *out
	if d.bigEndian {
		got = Swap16(got)
	}
	if SectionID(got) != want {
		err := ErrSectionID{Section: section, Got: got, Want: want}
		log.Error("%s", err)
		return err
	}
	return nil
}

func (d *Decoder) decodePlatform(f *Frame) error {
	const section = "platform"
	if err := d.readID(section, PlatformID, &f.Platform.ID); err != nil {
		return err
	}
	if err := d.readUint32(section, "uptime_s", &f.Platform.UptimeS); err != nil {
		return err
	}
	if err := d.readUint32(section, "rtc_s", &f.Platform.RtcS); err != nil {
		return err
	}
	if err := d.readUint24(section, "reset_count", &f.Platform.ResetCount); err != nil {
		return err
	}
	if err := d.readUint8(section, "current_mode", &f.Platform.CurrentMode); err != nil {
		return err
	}
	return d.readUint32(section, "last_boot_reason", &f.Platform.LastBootReason)
}

func (d *Decoder) decodeMemory(f *Frame) error {
	const section = "memory"
	if err := d.readID(section, MemoryID, &f.Memory.ID); err != nil {
		return err
	}
	return d.readUint32(section, "heap_free_bytes", &f.Memory.HeapFreeBytes)
}

func (d *Decoder) decodeCDH(f *Frame) error {
	const section = "cdh"
	if err := d.readID(section, CDHID, &f.CDH.ID); err != nil {
		return err
	}
	if err := d.readUint32(section, "last_seen_sequence_number", &f.CDH.LastSeenSequenceNumber); err != nil {
		return err
	}
	return d.readUint8(section, "antenna_deploy_status", &f.CDH.AntennaDeployStatus)
}

func (d *Decoder) decodePower(f *Frame) error {
	const section = "power"
	if err := d.readID(section, PowerID, &f.Power.ID); err != nil {
		return err
	}
	fields := []struct {
		name string
		out  *uint16
	}{
		{"low_voltage_counter", &f.Power.LowVoltageCounter},
		{"nice_battery_mv", &f.Power.NiceBatteryMV},
		{"raw_battery_mv", &f.Power.RawBatteryMV},
		{"battery_a", &f.Power.BatteryA},
		{"pcm_3v3_v", &f.Power.PCM3v3V},
		{"pcm_3v3_a", &f.Power.PCM3v3A},
		{"pcm_5v_v", &f.Power.PCM5vV},
		{"pcm_5v_a", &f.Power.PCM5vA},
	}
	for _, field := range fields {
		if err := d.readUint16(section, field.name, field.out); err != nil {
			return err
		}
	}
	return nil
}

func (d *Decoder) decodeThermal(f *Frame) error {
	const section = "thermal"
	if err := d.readID(section, ThermalID, &f.Thermal.ID); err != nil {
		return err
	}
	if err := d.readInt16(section, "cpu_c", &f.Thermal.CPUC); err != nil {
		return err
	}
	return d.readInt16(section, "mirror_cell_c", &f.Thermal.MirrorCellC)
}

func (d *Decoder) decodeAOCS(f *Frame) error {
	const section = "aocs"
	if err := d.readID(section, AOCSID, &f.AOCS.ID); err != nil {
		return err
	}
	if err := d.readUint32(section, "mode", &f.AOCS.Mode); err != nil {
		return err
	}
	shorts := []struct {
		name string
		out  *int16
	}{
		{"sun_vector_x", &f.AOCS.SunVectorX},
		{"sun_vector_y", &f.AOCS.SunVectorY},
		{"sun_vector_z", &f.AOCS.SunVectorZ},
		{"magnetometer_x", &f.AOCS.MagnetometerX},
		{"magnetometer_y", &f.AOCS.MagnetometerY},
		{"magnetometer_z", &f.AOCS.MagnetometerZ},
		{"gyro_x", &f.AOCS.GyroX},
		{"gyro_y", &f.AOCS.GyroY},
		{"gyro_z", &f.AOCS.GyroZ},
		{"temperature_imu", &f.AOCS.TemperatureIMU},
	}
	for _, field := range shorts {
		if err := d.readInt16(section, field.name, field.out); err != nil {
			return err
		}
	}
	longs := []struct {
		name string
		out  *int32
	}{
		{"fine_gyro_x", &f.AOCS.FineGyroX},
		{"fine_gyro_y", &f.AOCS.FineGyroY},
		{"fine_gyro_z", &f.AOCS.FineGyroZ},
	}
	for _, field := range longs {
		if err := d.readInt32(section, field.name, field.out); err != nil {
			return err
		}
	}
	wheels := []struct {
		name string
		out  *int16
	}{
		{"wheel_1", &f.AOCS.Wheel1},
		{"wheel_2", &f.AOCS.Wheel2},
		{"wheel_3", &f.AOCS.Wheel3},
		{"wheel_4", &f.AOCS.Wheel4},
	}
	for _, field := range wheels {
		if err := d.readInt16(section, field.name, field.out); err != nil {
			return err
		}
	}
	return nil
}

func (d *Decoder) decodePayload(f *Frame) error {
	const section = "payload"
	if err := d.readID(section, PayloadID, &f.Payload.ID); err != nil {
		return err
	}
	if err := d.readUint16(section, "experiments_run", &f.Payload.ExperimentsRun); err != nil {
		return err
	}
	if err := d.readUint16(section, "experiments_failed", &f.Payload.ExperimentsFailed); err != nil {
		return err
	}
	if err := d.readInt16(section, "last_experiment_run", &f.Payload.LastExperimentRun); err != nil {
		return err
	}
	return d.readUint8(section, "current_state", &f.Payload.CurrentState)
}
