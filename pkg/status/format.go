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

package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 20 // Base width for filename
	statusWidth = 12 // Width for status text
)

// 📋 FileResult is what happened to a file during a fix
type FileResult struct {
	Path       string
	IsModified bool
	IsFailed   bool
	Removed    int // number of lines taken out
	Added      int // number of lines put in
}

// Status returns the short status word for the result
func (r FileResult) Status() string {
	switch {
	case r.IsFailed:
		return "failed"
	case r.IsModified:
		return "modified"
	default:
		return "unchanged"
	}
}

// 🎯 FormatFileResult formats a file result for display
func FormatFileResult(r FileResult) string {
	var prefix string
	switch {
	case r.IsFailed:
		prefix = color.RedString("✗")
	case r.IsModified:
		prefix = color.YellowString("⟳")
	default:
		prefix = color.HiBlackString("-")
	}

	namePart := fmt.Sprintf("%-*s", nameWidth, r.Path)
	statusPart := fmt.Sprintf("%-*s", statusWidth, r.Status())

	line := fmt.Sprintf("%s%s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
		statusPart,
	)

	if r.IsModified {
		line += fmt.Sprintf("%s %s",
			color.RedString("-%d", r.Removed),
			color.GreenString("+%d", r.Added),
		)
	}

	return strings.TrimRight(line, " ")
}

// FormatRemoval is the line announcing which 1-based lines are being removed
func FormatRemoval(first, last int) string {
	return fmt.Sprintf("Removing lines %d to %d", first, last)
}
