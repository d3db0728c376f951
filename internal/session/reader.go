package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
)

type LineReader interface {
	// ReadLine returns one line without its terminator, or io.EOF once the
	// source is exhausted.
	ReadLine(prompt string) (string, error)
}

type bufferedReader struct {
	r   *bufio.Reader
	out io.Writer
}

// NewLineReader reads newline terminated lines from r, writing each prompt to out.
func NewLineReader(r io.Reader, out io.Writer) LineReader {
	if out == nil {
		out = io.Discard
	}
	return &bufferedReader{r: bufio.NewReader(r), out: out}
}

func (b *bufferedReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(b.out, prompt); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}
	}
	line, err := b.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimTerminator(line), nil
		}
		return "", err
	}
	return trimTerminator(line), nil
}

func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

type promptReader struct {
	stdin  io.ReadCloser
	stdout io.WriteCloser
}

// NewPromptReader reads through an interactive terminal prompt with line
// editing. Nil streams fall back to the process terminal.
func NewPromptReader(stdin io.ReadCloser, stdout io.WriteCloser) LineReader {
	return &promptReader{stdin: stdin, stdout: stdout}
}

func (p *promptReader) ReadLine(prompt string) (string, error) {
	pr := promptui.Prompt{
		Label:  strings.TrimSuffix(strings.TrimSpace(prompt), ":"),
		Stdin:  p.stdin,
		Stdout: p.stdout,
	}
	line, err := pr.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrInterrupt) {
			return "", io.EOF
		}
		return "", err
	}
	return line, nil
}
