// Package commandport talks MEL to a running Maya over the TCP socket
// opened with `commandPort -name ":7001" -sourceType "mel"`. Commands are
// newline terminated; Maya answers each with the result text followed by a
// NUL byte.
package commandport

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"mayafbx/internal/core/ports/host"
	"mayafbx/internal/mel"
)

// DefaultTimeout bounds a single command round trip when the context
// carries no deadline. Exports of heavy scenes can take a while.
const DefaultTimeout = 5 * time.Minute

// Dialer connects sessions to a Maya command port.
type Dialer struct {
	address string
	timeout time.Duration
}

// NewDialer creates a dialer for the given address, for example
// "127.0.0.1:7001". A zero timeout means DefaultTimeout.
func NewDialer(address string, timeout time.Duration) *Dialer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dialer{address: address, timeout: timeout}
}

// Dial opens a TCP connection to the command port.
func (d *Dialer) Dial(ctx context.Context) (host.Session, error) {
	var nd net.Dialer
	conn, err := nd.DialContext(ctx, "tcp", d.address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to command port %s: %w", d.address, err)
	}
	return &Session{
		conn:    conn,
		reader:  bufio.NewReader(conn),
		timeout: d.timeout,
	}, nil
}

// Session is one connection to the command port. Commands run one at a
// time; the port interleaves replies otherwise.
type Session struct {
	conn    net.Conn
	reader  *bufio.Reader
	timeout time.Duration

	mu     sync.Mutex
	closed bool
}

// Run writes one MEL statement and reads the reply up to the NUL
// terminator. A reply carrying Maya error text becomes a
// *host.CommandError.
func (s *Session) Run(ctx context.Context, command string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", fmt.Errorf("session closed")
	}

	deadline := time.Now().Add(s.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := s.conn.SetDeadline(deadline); err != nil {
		return "", fmt.Errorf("failed to arm deadline: %w", err)
	}

	if _, err := s.conn.Write([]byte(command + "\n")); err != nil {
		return "", fmt.Errorf("failed to send command: %w", err)
	}

	reply, err := s.reader.ReadString('\x00')
	if err != nil {
		return "", fmt.Errorf("failed to read reply: %w", err)
	}
	reply = strings.TrimSuffix(reply, "\x00")

	if mel.IsErrorReply(reply) {
		return "", &host.CommandError{Command: command, Output: mel.CleanResult(reply)}
	}
	return reply, nil
}

// Close shuts the connection down.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.conn.Close()
}
