// Package flagpattern prints a simple ASCII flag: the top half carries a block
// of '#' on its left, everything else is '-'.
package flagpattern

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoInput is returned when the input ends before a valid number was read.
var ErrNoInput = errors.New("no input")

const (
	msgNotNumber   = "Invalid input. Please enter a number."
	msgNotPositive = "Please enter a positive integer."
)

// ReadPositiveInt writes prompt to out and reads lines from in until one holds
// a positive integer, explaining what was wrong with each rejected line.
func ReadPositiveInt(in *bufio.Reader, out io.Writer, prompt string) (int, error) {
	for {
		fmt.Fprintln(out, prompt)

		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			if errors.Is(err, io.EOF) {
				return 0, ErrNoInput
			}
			return 0, fmt.Errorf("failed to read input: %w", err)
		}

		value, convErr := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case convErr != nil:
			fmt.Fprintln(out, msgNotNumber)
		case value <= 0:
			fmt.Fprintln(out, msgNotPositive)
		default:
			return value, nil
		}

		if err != nil {
			// last line was not usable and nothing follows
			return 0, ErrNoInput
		}
	}
}

// Lines renders the flag row by row. Rows above height/2 start with width/2
// '#'; the rest of every row is '-'.
func Lines(width, height int) []string {
	lines := make([]string, height)
	for row := 0; row < height; row++ {
		if row < height/2 {
			lines[row] = strings.Repeat("#", width/2) + strings.Repeat("-", width-width/2)
		} else {
			lines[row] = strings.Repeat("-", width)
		}
	}
	return lines
}

// Write prints the flag to out, one row per line.
func Write(out io.Writer, width, height int) error {
	for _, line := range Lines(width, height) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
