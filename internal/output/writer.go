// Package output writes usernames to a plain text file.
package output

import (
	"bufio"
	"os"

	"github.com/bharatsindhu/username-history/internal/history"
)

// DefaultPath is relative to the working directory.
const DefaultPath = "usernames.txt"

// WriteLines truncates or creates path and writes each line followed by '\n'.
// A failure partway through can leave a partially written file.
func WriteLines(path string, lines []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &history.Error{Kind: history.KindIO, Op: "create " + path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &history.Error{Kind: history.KindIO, Op: "close " + path, Err: cerr}
		}
	}()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, werr := w.WriteString(line); werr != nil {
			return &history.Error{Kind: history.KindIO, Op: "write " + path, Err: werr}
		}
		if werr := w.WriteByte('\n'); werr != nil {
			return &history.Error{Kind: history.KindIO, Op: "write " + path, Err: werr}
		}
	}
	if ferr := w.Flush(); ferr != nil {
		return &history.Error{Kind: history.KindIO, Op: "write " + path, Err: ferr}
	}
	return nil
}
