// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package splice

import (
	"gitlab.com/tozd/go/errors"
)

// ErrNotFound is returned by Locate when the marker or the end of the loop is missing
var ErrNotFound = errors.Base("duplicate portfolio code not found")

// Replacement is the text that takes the place of the whole matched region.
// The last entry is the blank continuation line.
var Replacement = []string{
	"  // Portfolio with accordion - SORTABLE",
	"  const listDiv = $('#portfolioList');",
	"  ",
}

// 📐 Region is an inclusive, zero-based range of lines
type Region struct {
	Start int
	End   int
}

// Lines returns the 1-based line numbers of the region
func (r Region) Lines() (first, last int) {
	return r.Start + 1, r.End + 1
}

// Len is the number of lines the region covers
func (r Region) Len() int {
	return r.End - r.Start + 1
}

// Locate scans lines for the duplicated loop and returns its region
func Locate(lines []string) (Region, error) {
	s := NewScanner()
	for i, line := range lines {
		s = s.Step(i, line)
		if s.Phase == Done {
			break
		}
	}

	if !s.Found() {
		return Region{}, ErrNotFound
	}

	return Region{Start: s.Start, End: s.End}, nil
}

// Splice returns a new slice with region replaced by Replacement.
// lines is left untouched.
func Splice(lines []string, region Region) []string {
	out := make([]string, 0, len(lines)-region.Len()+len(Replacement))
	out = append(out, lines[:region.Start]...)
	out = append(out, Replacement...)
	out = append(out, lines[region.End+1:]...)
	return out
}
