package board

import (
	"fmt"
	"strings"
)

// Grid geometry. Side and CellCount derive from BlockSide so the
// row/column/block arithmetic is written once against the constants.
const (
	BlockSide = 3
	Side      = BlockSide * BlockSide
	CellCount = Side * Side
)

// Special cell values
const (
	EmptyCell   = 0
	InvalidCell = -1
)

// Board represents a 9x9 Sudoku board.
//
// Construction accepts any set of givens, including contradictory ones;
// the uniqueness rules are enforced prospectively by Set, which rejects
// any placement that would introduce a duplicate. A contradictory board
// is simply one the solver will report as unsolvable.
type Board struct {
	cells [CellCount]int

	// Bitmasks track placed digits in each unit (row/col/block).
	// Bit i represents digit i+1 (bit 0 = digit 1, bit 8 = digit 9).
	// This allows for O(1) placement checks.
	rowMasks   [Side]uint
	colMasks   [Side]uint
	blockMasks [Side]uint

	// emptyCount tracks unfilled cells for quick completion checks.
	// Once initialized, emptyCount is only touched inside place and Clear.
	emptyCount int
}

// New creates an empty Board.
func New() *Board {
	return &Board{emptyCount: CellCount}
}

// NewFromCells creates a Board from a slice of exactly CellCount values
// in row-major order. EmptyCell (0) marks an unfilled cell, 1-9 a given.
// The givens are stored as-is: no uniqueness check is performed here.
func NewFromCells(cells []int) (*Board, error) {
	if len(cells) != CellCount {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidLength, len(cells), CellCount)
	}

	b := New()
	for pos, val := range cells {
		if err := b.validateValue(val); err != nil {
			return nil, fmt.Errorf("cell %d: %w", pos, err)
		}
		if val != EmptyCell {
			b.place(pos, val)
		}
	}
	return b, nil
}

// NewFromString creates a Board from an 81-character string.
// Use '.' or '0' for empty cells, '1'-'9' for filled cells.
func NewFromString(s string) (*Board, error) {
	if len(s) != CellCount {
		return nil, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidLength, len(s), CellCount)
	}

	b := New()
	for pos := 0; pos < CellCount; pos++ {
		ch := s[pos]
		switch ch {
		case '.', '0':
			// Empty cell, already initialized
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			b.place(pos, int(ch-'0'))
		default:
			return nil, fmt.Errorf("%w: character '%c' at position %d", ErrInvalidValue, ch, pos)
		}
	}
	return b, nil
}

// Clone creates an independent copy of the Board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

// Allowed reports whether val may be placed at pos: the cell must be
// empty, val must be a digit 1..Side, and val must not already appear
// in pos's row, column, or block.
func (b *Board) Allowed(val, pos int) bool {
	if !isValidPosition(pos) || b.cells[pos] != EmptyCell {
		return false
	}
	if val < 1 || val > Side {
		return false
	}

	row, col, block := posToRow[pos], posToCol[pos], posToBlock[pos]
	mask := uint(1 << (val - 1))
	return b.rowMasks[row]&mask == 0 &&
		b.colMasks[col]&mask == 0 &&
		b.blockMasks[block]&mask == 0
}

// Set attempts to place a value 1-9 at the given position.
// Returns ErrNotAllowed if the placement targets a filled cell or would
// duplicate val within the cell's row, column, or block; on failure the
// board is not modified. This is the only rule-checked mutation path.
func (b *Board) Set(pos, val int) error {
	if err := b.validatePosition(pos); err != nil {
		return err
	}
	if !b.Allowed(val, pos) {
		return fmt.Errorf("%w: value %d at position %d", ErrNotAllowed, val, pos)
	}
	b.place(pos, val)
	return nil
}

// place writes a value without rule checks and updates the unit masks.
// Callers must ensure pos is in bounds, val is 1..Side, and the cell is
// empty (construction is exempt from the duplicate rule).
func (b *Board) place(pos, val int) {
	row, col, block := posToRow[pos], posToCol[pos], posToBlock[pos]
	mask := uint(1 << (val - 1))

	b.cells[pos] = val
	b.rowMasks[row] |= mask
	b.colMasks[col] |= mask
	b.blockMasks[block] |= mask
	b.emptyCount--
}

// Clear removes the value at the given position.
// Returns an error if the position is invalid.
// No harm is done calling Clear on an already empty cell.
func (b *Board) Clear(pos int) error {
	if err := b.validatePosition(pos); err != nil {
		return err
	}

	val := b.cells[pos]
	if val == EmptyCell {
		return nil
	}

	row, col, block := posToRow[pos], posToCol[pos], posToBlock[pos]
	mask := uint(1 << (val - 1))

	b.cells[pos] = EmptyCell
	b.rowMasks[row] &^= mask
	b.colMasks[col] &^= mask
	b.blockMasks[block] &^= mask
	b.emptyCount++

	return nil
}

// Get returns the value at the given position.
// Returns InvalidCell for invalid positions.
func (b *Board) Get(pos int) int {
	if !isValidPosition(pos) {
		return InvalidCell
	}
	return b.cells[pos]
}

// Cells returns a copy of the 81 cell values in row-major order.
func (b *Board) Cells() [CellCount]int {
	return b.cells
}

// NextEmpty returns the position of the lowest-indexed empty cell,
// or false if every cell is filled.
func (b *Board) NextEmpty() (int, bool) {
	if b.emptyCount == 0 {
		return InvalidCell, false
	}
	for pos := 0; pos < CellCount; pos++ {
		if b.cells[pos] == EmptyCell {
			return pos, true
		}
	}
	return InvalidCell, false
}

// Complete reports whether every cell is filled. It does not check the
// uniqueness rules; see IsValid for that.
func (b *Board) Complete() bool {
	return b.emptyCount == 0
}

// EmptyCount returns the number of empty cells on the board.
func (b *Board) EmptyCount() int {
	return b.emptyCount
}

// String returns the board as an 81-character string.
// Empty cells are represented as '.', filled cells as '1'-'9'.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, cell := range b.cells {
		if cell == EmptyCell {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(cell))
		}
	}

	return sb.String()
}

// Format returns a human-readable board representation with grid lines.
func (b *Board) Format() string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)

	for row := 0; row < Side; row++ {
		sb.WriteString("| ")
		for col := 0; col < Side; col++ {
			val := b.Get(MakePos(row, col))
			if val == EmptyCell {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(val))
			}
			sb.WriteByte(' ')

			if (col+1)%BlockSide == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (row+1)%BlockSide == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}

// Precomputed lookup tables for row, column, and block membership.
var (
	posToRow   [CellCount]int
	posToCol   [CellCount]int
	posToBlock [CellCount]int
)

// MakePos transforms a row and column into a linear position.
// Returns InvalidCell if row and/or col are invalid.
func MakePos(row, col int) int {
	if row < 0 || row >= Side || col < 0 || col >= Side {
		return InvalidCell
	}
	return Side*row + col
}

// init initializes the position-to-unit lookup tables.
func init() {
	for pos := 0; pos < CellCount; pos++ {
		row, col := pos/Side, pos%Side
		posToRow[pos] = row
		posToCol[pos] = col
		posToBlock[pos] = BlockSide*(row/BlockSide) + col/BlockSide
	}
}
