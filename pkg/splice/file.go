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
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultPath is the file edited when nothing else is given
const DefaultPath = "index.html"

// 📥 Load reads path and splits it on "\n".
// Carriage returns stay attached to their line.
func Load(ctx context.Context, path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}

	lines := strings.Split(string(content), "\n")
	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Int("bytes", len(content)).
		Int("lines", len(lines)).
		Msg("loaded file")

	return lines, nil
}

// 💾 Persist joins lines with "\n" and overwrites path.
// The write goes through a temp file in the same directory and keeps the original file mode.
func Persist(ctx context.Context, path string, lines []string) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	content := []byte(strings.Join(lines, "\n"))
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, content, mode); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Int("bytes", len(content)).
		Int("lines", len(lines)).
		Msg("wrote file")

	return nil
}
