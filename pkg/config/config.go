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

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type ErrConfigFileExists struct {
	Path string
}

func (e ErrConfigFileExists) Error() string {
	return fmt.Sprintf("Config file already exists: %s", e.Path)
}

// ExportConfig controls where the calibrated CSV series are written and
// with how many decimals.
type ExportConfig struct {
	OutDir     string `yaml:"outdir,omitempty"`
	ThermalCSV string `yaml:"thermal_csv,omitempty"`
	SunCSV     string `yaml:"sun_csv,omitempty"`
	Precision  int    `yaml:"precision"`
}

// StreamConfig describes how the raw beacon dump must be interpreted.
type StreamConfig struct {
	// BigEndian is true when multi-byte fields in the dump are stored
	// most significant byte first and must be swapped on the host.
	BigEndian bool `yaml:"big_endian"`
}

type Config struct {
	LogLevel      string `yaml:"log_level,omitempty"`
	ArchiveDBPath string `yaml:"archive_db,omitempty"`
	*StreamConfig `yaml:"stream,omitempty"`
	*ExportConfig `yaml:"export,omitempty"`
	filepath      string
}

func (c *Config) Persist(overwrite bool) error {
	if _, err := os.Stat(c.filepath); err == nil && !overwrite {
		return ErrConfigFileExists{Path: c.filepath}
	}

	data, err := yaml.Marshal(&c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.filepath)
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	err = os.WriteFile(c.filepath, data, 0644)
	if err != nil {
		return err
	}

	return nil
}

// Load reads the config file if it exists, otherwise the defaults stand.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) ThermalCSVPath() string {
	return filepath.Join(c.OutDir, c.ThermalCSV)
}

func (c *Config) SunCSVPath() string {
	return filepath.Join(c.OutDir, c.SunCSV)
}

func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ConfigDir, ConfigFile)
}

func DefaultArchiveDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ConfigDir, ArchiveDBFile)
}

func NewDefaultConfig() *Config {
	return &Config{
		LogLevel:      DefaultLogLevel,
		ArchiveDBPath: DefaultArchiveDBPath(),
		StreamConfig: &StreamConfig{
			BigEndian: DefaultBigEndian,
		},
		ExportConfig: &ExportConfig{
			OutDir:     DefaultOutDir,
			ThermalCSV: DefaultThermalCSV,
			SunCSV:     DefaultSunCSV,
			Precision:  DefaultPrecision,
		},
		filepath: DefaultConfigPath(),
	}
}
