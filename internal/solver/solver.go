// Package solver implements a depth-first backtracking search over a
// Sudoku board. The search is chronological: it always fills the
// lowest-indexed empty cell, trying candidates in ascending order, and
// on a dead end it undoes the most recent placement and resumes from
// the next candidate at that cell. Every successful placement is pushed
// onto a trial log, so undo is a pop plus a cell clear.
package solver

import (
	"errors"

	"github.com/ysenko/sudoku-solver/internal/board"
)

var (
	ErrUnsolvable      = errors.New("puzzle has no solution")
	ErrValueNotAllowed = errors.New("value is not allowed in the position")
	ErrRollbackEmpty   = errors.New("trial log is empty, nothing to roll back")
)

// trialEntry records one successful placement so it can be undone later.
type trialEntry struct {
	pos int
	val int
}

// Solver finds a complete assignment for a Sudoku board, or determines
// that none exists.
type Solver struct {
	Board *board.Board

	// log holds every placement made during the search, oldest first.
	// Replaying it onto the initial board reproduces the current state;
	// popping it undoes the most recent placement.
	log []trialEntry

	// Steps counts attempted placements, successful or not.
	Steps int
}

// New creates a solver for the given board.
// The board is cloned; the caller's copy is never mutated.
func New(b *board.Board) *Solver {
	return &Solver{
		Board: b.Clone(),
		log:   make([]trialEntry, 0, board.CellCount),
	}
}

// Solve attempts to solve the puzzle.
// Returns the solved board, or ErrUnsolvable once the search space is
// exhausted. The search runs to completion; there is no cancellation.
func (s *Solver) Solve() (*board.Board, error) {
	pos, ok := s.Board.NextEmpty()
	startVal := 1

	for ok {
		if s.fillPosition(pos, startVal) {
			startVal = 1
			pos, ok = s.Board.NextEmpty()
			continue
		}

		// Dead end: undo the most recent placement and resume at that
		// cell with the next candidate. An empty log means the whole
		// search space has been exhausted.
		entry, err := s.rollback()
		if err != nil {
			break
		}
		pos = entry.pos
		startVal = entry.val + 1
	}

	if !s.Board.Complete() {
		return nil, ErrUnsolvable
	}
	return s.Board, nil
}

// fillPosition tries candidates from startVal up to board.Side at the
// given position, in ascending order. Reports whether any candidate was
// placed. Failed attempts leave no trace: assign only mutates on success.
func (s *Solver) fillPosition(pos, startVal int) bool {
	for val := startVal; val <= board.Side; val++ {
		if err := s.assign(val, pos); err == nil {
			return true
		}
	}
	return false
}

// assign places val at pos and records the placement in the trial log.
// This is the engine's only mutation path, which keeps the log an exact
// replay history of the board.
func (s *Solver) assign(val, pos int) error {
	s.Steps++
	if err := s.Board.Set(pos, val); err != nil {
		return ErrValueNotAllowed
	}
	s.log = append(s.log, trialEntry{pos: pos, val: val})
	return nil
}

// rollback undoes the most recent placement: pops the trial log and
// clears the recorded cell. Returns the popped entry so the caller can
// resume the search just past the undone value.
func (s *Solver) rollback() (trialEntry, error) {
	if len(s.log) == 0 {
		return trialEntry{}, ErrRollbackEmpty
	}
	entry := s.log[len(s.log)-1]
	s.log = s.log[:len(s.log)-1]
	s.Board.Clear(entry.pos)
	return entry, nil
}
