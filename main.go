package main

import "github.com/ysenko/sudoku-solver/cmd"

func main() {
	cmd.Execute()
}
