package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// IO is the learner-facing side of a session.
type IO interface {
	// ReadAnswer shows prompt and returns one line of input. io.EOF means
	// the learner closed the input and is treated as quitting.
	ReadAnswer(prompt string) (string, error)
	Println(text string)
}

// Console implements IO over line-oriented streams.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole reads answers from in and writes everything else to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) ReadAnswer(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		// A final line without a newline still counts as an answer.
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) Println(text string) {
	fmt.Fprintln(c.out, text)
}
