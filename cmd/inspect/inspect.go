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

package inspect

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/titasat/go-beacon/pkg/calib"
	"github.com/titasat/go-beacon/pkg/config"
	"github.com/titasat/go-beacon/pkg/frame"
)

const (
	InputOptionName        = "input"
	LimitOptionName        = "limit"
	LittleEndianOptionName = "little-endian"
)

func NewCommand() *cobra.Command {
	var input string
	var limit int
	var littleEndian bool
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Decode beacon frames and print their calibrated values",
		RunE: func(cmd *cobra.Command, args []string) error {
			if littleEndian {
				cfg.BigEndian = false
			}

			file, err := os.Open(input)
			if err != nil {
				return err
			}
			defer file.Close()

			out := cmd.OutOrStdout()
			decoder := frame.NewDecoder(bufio.NewReader(file), frame.DefaultMarker, cfg.BigEndian)
			frames := 0
			for limit <= 0 || frames < limit {
				f, err := decoder.Next()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					return err
				}
				frames++

				fmt.Fprintf(out, "--- frame %d ---\n", frames)
				fmt.Fprintln(out, calib.NewThermalRecord(f.Thermal, f.Platform.RtcS, cfg.BigEndian))
				fmt.Fprintln(out, calib.NewSunVectorRecord(f.AOCS, f.Platform.RtcS, cfg.BigEndian))
				fmt.Fprintln(out, calib.NewPowerRecord(f.Power, f.Platform.RtcS, cfg.BigEndian))
				fmt.Fprintln(out, calib.NewAOCSRecord(f.AOCS, f.Platform.RtcS, cfg.BigEndian))
			}
			fmt.Fprintf(out, "%d frames decoded\n", frames)
			return nil
		},
	}
	cmd.Flags().StringVar(&input, InputOptionName, "", "Raw beacon telemetry dump to inspect")
	cmd.Flags().IntVar(&limit, LimitOptionName, 0, "Stop after this many frames. 0 means all")
	cmd.Flags().BoolVar(&littleEndian, LittleEndianOptionName, false, "Treat multi-byte fields in the dump as little-endian")
	cmd.MarkFlagRequired(InputOptionName)

	return cmd
}
