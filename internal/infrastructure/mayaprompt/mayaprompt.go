// Package mayaprompt drives MEL through an interpreter spawned with
// `maya -prompt`, for hosts that have no command port open. The prompt
// stream has no framing of its own, so every command is followed by a
// printed sync marker and the reply is whatever arrived in between.
package mayaprompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"

	"mayafbx/internal/core/ports/host"
	"mayafbx/internal/mel"
)

const (
	// DefaultTimeout bounds one command round trip when the context
	// carries no deadline.
	DefaultTimeout = 5 * time.Minute

	// quitGrace is how long Close waits for the interpreter to honor
	// `quit -f` before killing it.
	quitGrace = 5 * time.Second

	markerPrefix = "__MAYAFBX_SYNC_"
)

// Dialer spawns one interpreter per session.
type Dialer struct {
	mayaBin string
	timeout time.Duration
}

// NewDialer creates a dialer running the given Maya binary, for example
// "maya" or "C:/Program Files/Autodesk/Maya2024/bin/maya.exe". A zero
// timeout means DefaultTimeout.
func NewDialer(mayaBin string, timeout time.Duration) *Dialer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dialer{mayaBin: mayaBin, timeout: timeout}
}

// Dial starts `maya -prompt` and exchanges a first sync marker, so a bad
// binary path fails here instead of mid-export. Startup banners are
// absorbed by that handshake.
func (d *Dialer) Dial(ctx context.Context) (host.Session, error) {
	cmd := exec.Command(d.mayaBin, "-prompt")
	tail := &stderrTail{}
	cmd.Stderr = tail

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		stdin.Close()
		return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		stdout.Close()
		return nil, fmt.Errorf("failed to start %s: %w", d.mayaBin, err)
	}

	s := newSession(stdin, stdout, d.timeout, tail)
	s.proc = cmd
	s.done = make(chan struct{})
	go func() {
		cmd.Wait()
		close(s.done)
	}()

	if _, err := s.Run(ctx, `print "mayafbx"`); err != nil {
		s.Close()
		return nil, fmt.Errorf("interpreter did not come up: %w", err)
	}
	return s, nil
}

// Session is one running interpreter.
type Session struct {
	stdin   io.WriteCloser
	lines   chan string
	stopped chan struct{}
	timeout time.Duration
	tail    *stderrTail

	proc *exec.Cmd
	done chan struct{}

	mu      sync.Mutex
	closed  bool
	counter int
}

func newSession(stdin io.WriteCloser, stdout io.Reader, timeout time.Duration, tail *stderrTail) *Session {
	if tail == nil {
		tail = &stderrTail{}
	}
	s := &Session{
		stdin:   stdin,
		lines:   make(chan string, 64),
		stopped: make(chan struct{}),
		timeout: timeout,
		tail:    tail,
	}
	go s.readLoop(stdout)
	return s
}

func (s *Session) readLoop(stdout io.Reader) {
	scanner := bufio.NewScanner(stdout)
	// Property dumps run to hundreds of lines; give the scanner room.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		select {
		case s.lines <- scanner.Text():
		case <-s.stopped:
			return
		}
	}
	close(s.lines)
}

// Run executes one MEL statement and returns everything the interpreter
// printed before the sync marker. Maya error lines become a
// *host.CommandError.
func (s *Session) Run(ctx context.Context, command string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", fmt.Errorf("session closed")
	}

	s.counter++
	marker := fmt.Sprintf("%s%d__", markerPrefix, s.counter)
	stmt := fmt.Sprintf("%s;\nprint \"\\n%s\\n\";\n", command, marker)
	if _, err := io.WriteString(s.stdin, stmt); err != nil {
		return "", fmt.Errorf("failed to send command: %w", err)
	}

	reply, err := s.collect(ctx, marker)
	if err != nil {
		return "", err
	}
	if mel.IsErrorReply(reply) {
		return "", &host.CommandError{Command: command, Output: mel.CleanResult(reply)}
	}
	return reply, nil
}

// collect gathers output lines until the marker arrives. A marker from an
// earlier command that timed out resets the collection, so one slow
// command does not poison the session.
func (s *Session) collect(ctx context.Context, marker string) (string, error) {
	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	var out []string
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
			return "", fmt.Errorf("timed out waiting for interpreter reply")
		case line, ok := <-s.lines:
			if !ok {
				if tail := s.tail.String(); tail != "" {
					return "", fmt.Errorf("interpreter exited: %s", tail)
				}
				return "", fmt.Errorf("interpreter exited before replying")
			}
			line = strings.TrimPrefix(strings.TrimRight(line, "\r"), "mel: ")
			trimmed := strings.TrimSpace(line)
			switch {
			case trimmed == marker:
				return strings.Join(out, "\n"), nil
			case trimmed == "":
			case strings.HasPrefix(trimmed, markerPrefix):
				out = out[:0]
			default:
				out = append(out, line)
			}
		}
	}
}

// Close asks the interpreter to quit and kills it if it lingers.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	close(s.stopped)

	io.WriteString(s.stdin, "quit -f;\n")
	s.stdin.Close()

	if s.proc == nil {
		return nil
	}
	select {
	case <-s.done:
	case <-time.After(quitGrace):
		s.proc.Process.Kill()
		<-s.done
	}
	return nil
}

// stderrTail keeps the last few KB of interpreter stderr for error
// messages.
type stderrTail struct {
	mu  sync.Mutex
	buf []byte
}

func (t *stderrTail) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf = append(t.buf, p...)
	if n := len(t.buf); n > 2048 {
		t.buf = t.buf[n-2048:]
	}
	return len(p), nil
}

func (t *stderrTail) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.TrimSpace(string(t.buf))
}
