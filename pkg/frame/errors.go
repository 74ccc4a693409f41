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
	"fmt"
)

// ErrSectionID returned when a section ID read from the stream does not
// match the expected constant for that section.
type ErrSectionID struct {
	Section string
	Got     uint16
	Want    SectionID
}

func (e ErrSectionID) Error() string {
	return fmt.Sprintf("Wrong %s ID in frame: read 0x%04x, expected 0x%04x", e.Section, e.Got, uint16(e.Want))
}

// ErrTruncatedFrame returned when the stream ends or a read comes up short
// in the middle of a frame body.
type ErrTruncatedFrame struct {
	Section string
	Field   string
	Err     error
}

func (e ErrTruncatedFrame) Error() string {
	return fmt.Sprintf("Truncated frame while reading %s.%s: %s", e.Section, e.Field, e.Err)
}

func (e ErrTruncatedFrame) Unwrap() error {
	return e.Err
}
