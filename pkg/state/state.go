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

// Package state persists calibrated sample series into a local bbolt
// database so previous conversion runs can be inspected later.
package state

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"
	"sigs.k8s.io/yaml"

	"github.com/titasat/go-beacon/pkg/calib"
	"github.com/titasat/go-beacon/pkg/log"
)

const (
	BucketPrefix    = "series_"
	ThermalSeries   = "thermal"
	SunVectorSeries = "sunvector"
)

type State struct {
	context.Context
	DB *bbolt.DB
}

func NewState(ctx context.Context, dbPath string) (*State, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, err
	}
	return &State{
		Context: ctx,
		DB:      db,
	}, nil
}

// Close ...
func (s *State) Close() {
	s.DB.Close()
}

func BucketName(series string) string {
	return fmt.Sprintf("%s%s", BucketPrefix, series)
}

// Records are keyed by timestamp so the cursor walks them in time order.
func timestampKey(ts uint32) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, ts)
	return key
}

// PutThermalRecords stores a compacted thermal series, one entry per
// timestamp. Entries from earlier runs with the same timestamp are
// overwritten.
func (s *State) PutThermalRecords(records []calib.ThermalRecord) error {
	log.Debug("Archiving %d thermal records", len(records))
	return s.DB.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketName(ThermalSeries)))
		if err != nil {
			return err
		}
		for _, record := range records {
			recordBytes, err := yaml.Marshal(record)
			if err != nil {
				return err
			}
			if err := b.Put(timestampKey(record.Timestamp), recordBytes); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetThermalRecords returns the archived thermal series in timestamp order.
func (s *State) GetThermalRecords() ([]calib.ThermalRecord, error) {
	var records []calib.ThermalRecord
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketName(ThermalSeries)))
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			var record calib.ThermalRecord
			if err := yaml.Unmarshal(v, &record); err != nil {
				return err
			}
			records = append(records, record)
			return nil
		})
	}); err != nil {
		return nil, err
	}
	return records, nil
}

// PutSunVectorRecords stores a compacted sun vector series, one entry per
// timestamp.
func (s *State) PutSunVectorRecords(records []calib.SunVectorRecord) error {
	log.Debug("Archiving %d sun vector records", len(records))
	return s.DB.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketName(SunVectorSeries)))
		if err != nil {
			return err
		}
		for _, record := range records {
			recordBytes, err := yaml.Marshal(record)
			if err != nil {
				return err
			}
			if err := b.Put(timestampKey(record.Timestamp), recordBytes); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetSunVectorRecords returns the archived sun vector series in timestamp
// order.
func (s *State) GetSunVectorRecords() ([]calib.SunVectorRecord, error) {
	var records []calib.SunVectorRecord
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketName(SunVectorSeries)))
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			var record calib.SunVectorRecord
			if err := yaml.Unmarshal(v, &record); err != nil {
				return err
			}
			records = append(records, record)
			return nil
		})
	}); err != nil {
		return nil, err
	}
	return records, nil
}
