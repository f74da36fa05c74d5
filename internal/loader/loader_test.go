package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int
	}{
		{"plain digits", "530", []int{5, 3, 0}},
		{"whitespace ignored", "5 3 0\n0 7 0\t", []int{5, 3, 0, 0, 7, 0}},
		{"decorations ignored", "| 5 . 3 |\n+---+\n9", []int{5, 3, 9}},
		{"no digits", "abc def", []int{}},
		{"empty input", "", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
				}
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	if err := os.WriteFile(path, []byte("5 3 0\n6 0 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cells, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	want := []int{5, 3, 0, 6, 0, 0}
	if len(cells) != len(want) {
		t.Fatalf("got %v, want %v", cells, want)
	}
	for i := range cells {
		if cells[i] != want[i] {
			t.Fatalf("got %v, want %v", cells, want)
		}
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
