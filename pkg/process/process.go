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

// Package process runs the beacon conversion pipeline: decode frames from a
// raw dump, calibrate them, order and deduplicate the resulting series by
// timestamp, and export each series as CSV.
package process

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/titasat/go-beacon/pkg/calib"
	"github.com/titasat/go-beacon/pkg/config"
	"github.com/titasat/go-beacon/pkg/csv"
	"github.com/titasat/go-beacon/pkg/dedup"
	"github.com/titasat/go-beacon/pkg/frame"
	"github.com/titasat/go-beacon/pkg/log"
	"github.com/titasat/go-beacon/pkg/state"
)

// seriesGrowth is the fixed capacity increment for the sample buffers, so
// a long dump does not reallocate on every frame.
const seriesGrowth = 128

type Processor struct {
	*config.Config
	// Archive stores the exported series into the bbolt archive DB in
	// addition to the CSV files.
	Archive bool
}

func NewProcessor(cfg *config.Config) *Processor {
	return &Processor{Config: cfg}
}

// grow makes room for one more element, extending capacity by the fixed
// increment when the buffer is full.
func grow[T any](s []T) []T {
	if len(s) < cap(s) {
		return s
	}
	bigger := make([]T, len(s), cap(s)+seriesGrowth)
	copy(bigger, s)
	return bigger
}

// countingReader tracks how many bytes the decoder consumed, for the run
// summary.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// Run converts the beacon dump at inputPath into the configured CSV files.
// A structural decode failure aborts the remaining stream and is returned
// as an error; plain stream exhaustion is the normal termination.
func (p *Processor) Run(ctx context.Context, inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer file.Close()

	counter := &countingReader{r: file}
	decoder := frame.NewDecoder(bufio.NewReader(counter), frame.DefaultMarker, p.BigEndian)

	var thermals []calib.ThermalRecord
	var sunVectors []calib.SunVectorRecord
	frames := 0

	log.Info("Reading frames from %s", inputPath)
	for {
		f, err := decoder.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("decoding frame %d: %w", frames+1, err)
		}
		frames++

		thermals = append(grow(thermals), calib.NewThermalRecord(f.Thermal, f.Platform.RtcS, p.BigEndian))
		sunVectors = append(grow(sunVectors), calib.NewSunVectorRecord(f.AOCS, f.Platform.RtcS, p.BigEndian))
	}

	if frames == 0 {
		return fmt.Errorf("no frames found in %s", inputPath)
	}
	log.Info("Decoded %s frames (%s)", humanize.Comma(int64(frames)), humanize.Bytes(uint64(counter.n)))

	// Frames may arrive out of temporal order; ordering is established
	// here, not during decoding. The sort must be stable so compaction
	// keeps the first record seen for each timestamp.
	sort.SliceStable(thermals, func(i, j int) bool {
		return calib.CompareThermal(thermals[i], thermals[j]) < 0
	})
	thermals = thermals[:dedup.Compact(thermals, calib.CompareThermal)]

	sort.SliceStable(sunVectors, func(i, j int) bool {
		return calib.CompareSunVector(sunVectors[i], sunVectors[j]) < 0
	})
	sunVectors = sunVectors[:dedup.Compact(sunVectors, calib.CompareSunVector)]

	log.Info("Kept %d thermal and %d sun vector records after deduplication",
		len(thermals), len(sunVectors))

	err = csv.Write(p.ThermalCSVPath(), thermals, calib.ThermalRecord.CSVRow,
		p.Precision, calib.ThermalColumns...)
	if err != nil {
		return fmt.Errorf("exporting thermal series: %w", err)
	}
	log.Info("Thermal series saved to %s", p.ThermalCSVPath())

	err = csv.Write(p.SunCSVPath(), sunVectors, calib.SunVectorRecord.CSVRow,
		p.Precision, calib.SunVectorColumns...)
	if err != nil {
		return fmt.Errorf("exporting sun vector series: %w", err)
	}
	log.Info("Sun vector series saved to %s", p.SunCSVPath())

	if p.Archive {
		if err := p.archive(ctx, thermals, sunVectors); err != nil {
			return fmt.Errorf("archiving series: %w", err)
		}
		log.Info("Series archived to %s", p.ArchiveDBPath)
	}
	return nil
}

func (p *Processor) archive(ctx context.Context, thermals []calib.ThermalRecord, sunVectors []calib.SunVectorRecord) error {
	st, err := state.NewState(ctx, p.ArchiveDBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.PutThermalRecords(thermals); err != nil {
		return err
	}
	return st.PutSunVectorRecords(sunVectors)
}
