package handler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed reports that the interactive input stream ended.
var ErrInputClosed = errors.New("input closed")

// Console wraps the interactive surface: prompts go to out, answers
// are read line by line from in. Every operation blocks on input.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// ReadLine reads the next input line. ok is false once input ends.
func (c *Console) ReadLine() (string, bool) {
	if !c.scanner.Scan() {
		return "", false
	}
	return c.scanner.Text(), true
}

// PromptString prints the prompt and reads one line.
func (c *Console) PromptString(prompt string) (string, error) {
	c.Printf("%s", prompt)
	line, ok := c.ReadLine()
	if !ok {
		return "", ErrInputClosed
	}
	return line, nil
}

// PromptInt reads one line and parses it as an integer. The offending
// line is already consumed on failure, so the caller just re-prompts.
func (c *Console) PromptInt(prompt string) (int, error) {
	line, err := c.PromptString(prompt)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(line))
}

// PromptFloat reads one line and parses it as a float.
func (c *Console) PromptFloat(prompt string) (float64, error) {
	line, err := c.PromptString(prompt)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(line), 64)
}
