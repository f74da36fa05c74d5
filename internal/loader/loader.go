// Package loader reads puzzle files into cell sequences.
package loader

import (
	"fmt"
	"os"
)

// ReadFile reads a puzzle file and returns its cell values.
// Any character that is not a decimal digit is ignored, so puzzles may
// be laid out with spaces, newlines, or grid decorations. Length and
// value validation is left to board construction.
func ReadFile(path string) ([]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read puzzle file: %w", err)
	}
	return Parse(string(data)), nil
}

// Parse extracts cell values from puzzle text, keeping digits only.
func Parse(data string) []int {
	cells := make([]int, 0, len(data))
	for _, ch := range data {
		if ch >= '0' && ch <= '9' {
			cells = append(cells, int(ch-'0'))
		}
	}
	return cells
}
