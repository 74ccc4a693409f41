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

package archive

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/titasat/go-beacon/pkg/config"
	"github.com/titasat/go-beacon/pkg/state"
)

const (
	DBOptionName     = "db"
	SeriesOptionName = "series"
)

func NewListCommand() *cobra.Command {
	var dbPath, series string
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived records of a series",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath != "" {
				cfg.ArchiveDBPath = dbPath
			}

			st, err := state.NewState(context.Background(), cfg.ArchiveDBPath)
			if err != nil {
				return err
			}
			defer st.Close()

			out := cmd.OutOrStdout()
			switch series {
			case state.ThermalSeries:
				records, err := st.GetThermalRecords()
				if err != nil {
					return err
				}
				for _, record := range records {
					fmt.Fprintln(out, record)
				}
			case state.SunVectorSeries:
				records, err := st.GetSunVectorRecords()
				if err != nil {
					return err
				}
				for _, record := range records {
					fmt.Fprintln(out, record)
				}
			default:
				return fmt.Errorf("unknown series %q, must be %q or %q",
					series, state.ThermalSeries, state.SunVectorSeries)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, DBOptionName, "", "Path to the archive DB")
	cmd.Flags().StringVar(&series, SeriesOptionName, state.ThermalSeries, "Series to list: thermal or sunvector")

	return cmd
}
