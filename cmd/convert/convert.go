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

package convert

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/titasat/go-beacon/pkg/config"
	"github.com/titasat/go-beacon/pkg/process"
)

const (
	InputOptionName        = "input"
	OutDirOptionName       = "out-dir"
	PrecisionOptionName    = "precision"
	LittleEndianOptionName = "little-endian"
	ArchiveOptionName      = "archive"
)

func NewCommand() *cobra.Command {
	var input, outDir string
	var precision int
	var littleEndian, archive bool
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a raw beacon dump into calibrated CSV series",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir != "" {
				cfg.OutDir = outDir
			}
			if cmd.Flags().Changed(PrecisionOptionName) {
				cfg.Precision = precision
			}
			if littleEndian {
				cfg.BigEndian = false
			}

			processor := process.NewProcessor(cfg)
			processor.Archive = archive
			return processor.Run(context.Background(), input)
		},
	}
	cmd.Flags().StringVar(&input, InputOptionName, "", "Raw beacon telemetry dump to convert. E.g. TITAraw_tlmy.bin")
	cmd.Flags().StringVar(&outDir, OutDirOptionName, "", "Directory where the CSV files are written")
	cmd.Flags().IntVar(&precision, PrecisionOptionName, config.DefaultPrecision, "Decimals for floating point CSV columns, clamped to [0,9]")
	cmd.Flags().BoolVar(&littleEndian, LittleEndianOptionName, false, "Treat multi-byte fields in the dump as little-endian")
	cmd.Flags().BoolVar(&archive, ArchiveOptionName, false, "Also store the exported series in the archive DB")
	cmd.MarkFlagRequired(InputOptionName)

	return cmd
}
