package ingest

import (
	"fmt"
	"io"
	"os/exec"
)

// chunkSize is the read granularity of the display loop: each read returns
// whatever is available, up to this many bytes, without waiting for a line
// boundary.
const chunkSize = 1024

// Child is a spawned process with both output streams captured
// independently. Its stdin is attached to the null device; nothing is ever
// written to it and its exit status is not surfaced.
type Child struct {
	cmd    *exec.Cmd
	Stdout io.ReadCloser
	Stderr io.ReadCloser
}

// Spawn starts name with args verbatim, subject to normal PATH lookup,
// with stdout and stderr piped. The child is not waited on here: by default
// its lifetime may outlast the UI.
func Spawn(name string, args []string) (*Child, error) {
	cmd := exec.Command(name, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", name, err)
	}
	return &Child{cmd: cmd, Stdout: stdout, Stderr: stderr}, nil
}

// Kill terminates the child and reaps it. Only called when kill-on-exit was
// requested; errors such as "process already finished" are expected when the
// child ended on its own.
func (c *Child) Kill() error {
	if c.cmd.Process != nil {
		_ = c.cmd.Process.Kill()
	}
	return c.cmd.Wait()
}

// Reader delivers raw chunks from one child stream. Each Next performs a
// single blocking read into a fixed scratch buffer and returns a copy, so a
// Reader must not be shared between goroutines.
type Reader struct {
	src io.Reader
	buf []byte
}

func NewReader(src io.Reader) *Reader {
	return &Reader{src: src, buf: make([]byte, chunkSize)}
}

// Next blocks until data arrives, the stream ends, or the read fails. Per
// the io.Reader contract a final chunk may be returned together with io.EOF;
// callers must consume the data before acting on the error.
func (r *Reader) Next() ([]byte, error) {
	n, err := r.src.Read(r.buf)
	if n <= 0 {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.buf[:n])
	return out, err
}
