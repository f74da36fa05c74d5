package cmd

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ysenko/sudoku-solver/internal/board"
	"github.com/ysenko/sudoku-solver/internal/loader"
	"github.com/ysenko/sudoku-solver/internal/solver"
)

var (
	sudokuPath string
	cpuProfile bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a Sudoku puzzle from a file",
		Long: `Solve a Sudoku puzzle read from a file.

The file holds 81 cell values in row-major order, 0 for an empty cell.
Any non-digit characters (spaces, newlines, grid decorations) are ignored.

Examples:
  sudoku-solver solve -s puzzle.txt
  sudoku-solver solve -s puzzle.txt --profile`,
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&sudokuPath, "sudoku-path", "s", "", "File with the task")
	solveCmd.MarkFlagRequired("sudoku-path")
	solveCmd.Flags().BoolVar(&cpuProfile, "profile", false, "Write a CPU profile to the current directory")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	if cpuProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	cells, err := loader.ReadFile(sudokuPath)
	if err != nil {
		log.Error().Err(err).Msg("cannot load sudoku from file")
		return err
	}

	b, err := board.NewFromCells(cells)
	if err != nil {
		log.Error().Err(err).Msg("cannot create sudoku from data")
		return err
	}

	fmt.Println("Solving sudoku")
	fmt.Println(b.Format())

	s := solver.New(b)
	solved, err := s.Solve()
	log.Debug().Int("steps", s.Steps).Msg("search finished")

	// An unsolvable puzzle is a normal outcome, not a command failure.
	if err != nil {
		fmt.Println("Cannot solve sudoku")
		return nil
	}

	fmt.Println("Solved!")
	fmt.Println(solved.Format())
	return nil
}
