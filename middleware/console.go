// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// ErrInvalidInput is returned when the user types something that is not
// the number a prompt asked for.
var ErrInvalidInput = errors.New("invalid input")

var (
	errorColor   = color.New(color.FgRed)
	headingColor = color.New(color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
)

// Console reads answers to prompts and writes output for the menu.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Prompt prints label and reads one line, without the line ending.
// io.EOF is returned only when the input ended before any text was read.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)

	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PromptID reads a positive integer identifier.
func (c *Console) PromptID(label string) (int64, error) {
	answer, err := c.Prompt(label)
	if err != nil {
		return 0, err
	}
	return ParseID(answer)
}

// ParseID parses a positive integer identifier typed by the user.
func ParseID(answer string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(answer), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not an id", ErrInvalidInput, answer)
	}
	return id, nil
}

// Printf writes plain output.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Heading writes emphasised output.
func (c *Console) Heading(format string, args ...any) {
	headingColor.Fprintf(c.out, format, args...)
}

// Success writes output for a result worth celebrating.
func (c *Console) Success(format string, args ...any) {
	successColor.Fprintf(c.out, format, args...)
}

// Error writes a message explaining what went wrong.
func (c *Console) Error(message string) {
	errorColor.Fprintln(c.out, message)
}
