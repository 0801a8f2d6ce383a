// Package host defines the boundary to a live Maya process. The plug-in is
// driven exclusively through MEL statements; everything above this package
// works in terms of a synchronous command/reply session.
package host

import (
	"fmt"
	"strings"
)

// CommandError is a failure the host reported for a single MEL command. It
// carries the host's own message and is propagated unchanged; the caller
// decides what, if anything, to do about it.
type CommandError struct {
	// Command is the MEL statement that failed.
	Command string

	// Output is the host's reply, usually one or more "// Error:" lines.
	Output string
}

// Error returns the failure with the host's message.
func (e *CommandError) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("mel command failed: %s", e.Command)
	}
	return fmt.Sprintf("mel command failed: %s: %s", e.Command, out)
}
