package status

import (
	"github.com/pmezard/go-difflib/difflib"
	"gitlab.com/tozd/go/errors"
)

// contextLines is how many unchanged lines surround each hunk
const contextLines = 3

// 🔀 UnifiedDiff renders before and after as a unified diff of path.
// An empty string means the two are identical.
func UnifiedDiff(path string, before, after []string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        withNewlines(before),
		B:        withNewlines(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  contextLines,
	}

	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", errors.Errorf("rendering diff: %w", err)
	}
	return out, nil
}

func withNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + "\n"
	}
	return out
}
