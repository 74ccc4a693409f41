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

// Package csv writes calibrated sample series to semicolon separated files.
// It knows nothing about telemetry: the per-record formatter callback is the
// only point of specialization.
package csv

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/titasat/go-beacon/pkg/log"
)

// Separator between columns, both in the header and in data rows.
const Separator = ";"

// LineFormatter renders one record as a CSV row without a trailing newline.
// precision is the number of decimals for floating point columns.
type LineFormatter[T any] func(record T, precision int) string

// Write creates filename, writes the header row and then one formatted row
// per record. Existing files are overwritten.
func Write[T any](filename string, records []T, formatter LineFormatter[T], precision int, columns ...string) error {
	if formatter == nil {
		return errors.New("csv: formatter must not be nil")
	}
	if len(columns) == 0 {
		return errors.New("csv: at least one column name is required")
	}

	file, err := os.Create(filename)
	if err != nil {
		log.Error("Error while creating file: %s", filename)
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if _, err := w.WriteString(strings.Join(columns, Separator) + "\n"); err != nil {
		return fmt.Errorf("csv: writing header: %w", err)
	}

	for i, record := range records {
		if _, err := w.WriteString(formatter(record, precision) + "\n"); err != nil {
			return fmt.Errorf("csv: writing row %d: %w", i, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("csv: flushing %s: %w", filename, err)
	}
	return file.Sync()
}
