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
	"strings"
)

// 🔖 Markers used to find the duplicated portfolio loop
const (
	StartComment = "// Portfolio with accordion"
	StartDecl    = "const listDiv"
	LoopOpener   = "active.forEach(h => {"
	LoopCloser   = "});"

	// FixedComment heads the replacement and never opens a region on its own
	FixedComment = "// Portfolio with accordion - SORTABLE"
)

// 🧭 Phase is the position of a Scanner in the marker search
type Phase int

const (
	Searching Phase = iota
	FoundStart
	InLoop
	Done
)

func (p Phase) String() string {
	switch p {
	case Searching:
		return "searching"
	case FoundStart:
		return "found_start"
	case InLoop:
		return "in_loop"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// 🔍 Scanner is the scan state threaded through Step.
// Start and End are -1 until set.
type Scanner struct {
	Phase Phase
	Start int
	End   int
	Depth int

	// index of a bare start comment waiting for its declaration on the next line
	pending int
}

// NewScanner returns a Scanner in the Searching phase
func NewScanner() Scanner {
	return Scanner{Phase: Searching, Start: -1, End: -1, pending: -1}
}

// IsStart reports whether line is the marker line that opens the region
func IsStart(line string) bool {
	return strings.Contains(line, StartComment) && strings.Contains(line, StartDecl)
}

// isSplitStart reports whether line is a start comment whose declaration may follow on the next line
func isSplitStart(line string) bool {
	return strings.Contains(line, StartComment) && !strings.Contains(line, FixedComment)
}

// IsLoopOpener reports whether line opens the forEach callback
func IsLoopOpener(line string) bool {
	return strings.TrimSpace(line) == LoopOpener
}

// BraceDelta returns the count of "{" minus the count of "}" in line.
// Braces inside string literals or comments are counted too.
func BraceDelta(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}

// Step feeds line i to the scanner and returns the next state.
// A Done scanner is returned unchanged.
func (s Scanner) Step(i int, line string) Scanner {
	if s.Phase == Done {
		return s
	}

	// a later marker line replaces the earlier start, even inside the loop
	if IsStart(line) {
		return s.markStart(i)
	}

	if s.pending != -1 && s.pending == i-1 && strings.Contains(line, StartDecl) {
		return s.markStart(s.pending)
	}

	s.pending = -1
	if isSplitStart(line) {
		s.pending = i
	}

	if s.Start != -1 && IsLoopOpener(line) {
		s.Phase = InLoop
		s.Depth = 1
		return s
	}

	if s.Phase == InLoop {
		s.Depth += BraceDelta(line)
		if s.Depth == 0 && strings.Contains(line, LoopCloser) {
			s.End = i
			s.Phase = Done
		}
	}

	return s
}

func (s Scanner) markStart(i int) Scanner {
	s.Start = i
	s.pending = -1
	if s.Phase == Searching {
		s.Phase = FoundStart
	}
	return s
}

// Found reports whether both ends of the region were located
func (s Scanner) Found() bool {
	return s.Start != -1 && s.End != -1
}
