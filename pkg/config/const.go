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

package config

const (
	ConfigDir     = ".go-beacon"
	ConfigFile    = "config"
	ArchiveDBFile = "archive.db"

	DefaultLogLevel   = "info"
	DefaultPrecision  = 2
	DefaultOutDir     = "."
	DefaultThermalCSV = "thermal_data.csv"
	DefaultSunCSV     = "sun_sensor_data.csv"

	// Beacon streams are big-endian on the wire unless stated otherwise
	// in the ground station dump tooling.
	DefaultBigEndian = true
)
