package speech

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// commandCapture runs command and streams its stdout. The process is
// killed when ctx ends or the reader is closed.
func commandCapture(command string) captureFunc {
	return func(ctx context.Context) (io.ReadCloser, error) {
		argv := strings.Fields(command)
		if len(argv) == 0 {
			return nil, errNoCapture
		}
		if _, err := exec.LookPath(argv[0]); err != nil {
			return nil, fmt.Errorf("%w: %v", errNoCapture, err)
		}
		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
		out, err := cmd.StdoutPipe()
		if err != nil {
			return nil, err
		}
		if err := cmd.Start(); err != nil {
			return nil, err
		}
		return &process{ReadCloser: out, cmd: cmd}, nil
	}
}

type process struct {
	io.ReadCloser
	cmd *exec.Cmd
}

func (p *process) Close() error {
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
	_ = p.ReadCloser.Close()
	_ = p.cmd.Wait()
	return nil
}
