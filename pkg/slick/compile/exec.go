package compile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Exec pipes rendered text into an external compiler, e.g.
// Exec{Name: "typst", Args: []string{"compile", "-", "out.pdf"}}. A non-zero
// exit turns every non-empty stderr line into a diagnostic.
type Exec struct {
	Name    string
	Args    []string
	Timeout time.Duration // 0 means no timeout
}

func (e Exec) Compile(source string) (string, error) {
	if e.Name == "" {
		return "", errors.New("exec compiler: no command configured")
	}

	ctx := context.Background()
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, e.Name, e.Args...)
	cmd.Stdin = strings.NewReader(source)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("running %s: %w", e.Name, err)
		}
		diags := nonEmptyLines(stderr.String())
		if len(diags) == 0 {
			diags = []string{err.Error()}
		}
		return "", &Error{Compiler: e.Name, Diags: diags}
	}
	return stdout.String(), nil
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
