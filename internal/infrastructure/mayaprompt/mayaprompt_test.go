package mayaprompt

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mayafbx/internal/core/ports/host"
)

// fakeREPL emulates the `maya -prompt` loop over in-memory pipes: it reads
// statements, and answers the sync marker print with whatever reply was
// configured for the statement before it.
type fakeREPL struct {
	stdinR  *io.PipeReader
	stdoutW *io.PipeWriter

	mu         sync.Mutex
	replies    map[string]string
	seen       []string
	pending    []string
	silent     bool
	echoPrompt bool
}

func newFakeSession(t *testing.T, timeout time.Duration) (*Session, *fakeREPL) {
	t.Helper()
	stdinR, stdinW := io.Pipe()
	stdoutR, stdoutW := io.Pipe()

	repl := &fakeREPL{
		stdinR:  stdinR,
		stdoutW: stdoutW,
		replies: make(map[string]string),
	}
	go repl.serve()

	sess := newSession(stdinW, stdoutR, timeout, nil)
	t.Cleanup(func() { sess.Close() })
	return sess, repl
}

func (r *fakeREPL) respond(command, reply string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replies[command] = reply
}

func (r *fakeREPL) commands() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.seen))
	copy(out, r.seen)
	return out
}

func (r *fakeREPL) serve() {
	sc := bufio.NewScanner(r.stdinR)
	for sc.Scan() {
		line := sc.Text()

		if strings.HasPrefix(line, `print "\n`+markerPrefix) {
			marker := strings.TrimSuffix(strings.TrimPrefix(line, `print "\n`), `\n";`)
			r.mu.Lock()
			pending := r.pending
			r.pending = nil
			silent := r.silent
			echo := r.echoPrompt
			r.mu.Unlock()
			if silent {
				continue
			}
			var b strings.Builder
			for _, l := range pending {
				if echo {
					b.WriteString("mel: ")
				}
				b.WriteString(l)
				b.WriteString("\n")
			}
			b.WriteString("\n" + marker + "\n")
			io.WriteString(r.stdoutW, b.String())
			continue
		}

		command := strings.TrimSuffix(line, ";")
		r.mu.Lock()
		r.seen = append(r.seen, command)
		if reply, ok := r.replies[command]; ok {
			r.pending = strings.Split(reply, "\n")
		}
		r.mu.Unlock()
	}
	r.stdoutW.Close()
}

func TestSession_Run_DecoratedReply(t *testing.T) {
	sess, repl := newFakeSession(t, time.Second)
	repl.respond("about -version", "// Result: 2024 //")

	reply, err := sess.Run(context.Background(), "about -version")
	require.NoError(t, err)
	assert.Equal(t, "// Result: 2024 //", reply,
		"the adapter hands script-editor decoration through untouched")
	assert.Equal(t, []string{"about -version"}, repl.commands())
}

func TestSession_Run_MultiLineReply(t *testing.T) {
	dump := "PATH: Export|IncludeGrp|Geometry|SmoothingGroups ( TYPE: Bool ) ( VALUE: false )\n" +
		"PATH: Export|IncludeGrp|Geometry|Triangulate ( TYPE: Bool ) ( VALUE: false )"
	sess, repl := newFakeSession(t, time.Second)
	repl.respond("FBXProperties", dump)

	reply, err := sess.Run(context.Background(), "FBXProperties")
	require.NoError(t, err)
	assert.Equal(t, dump, reply)
}

func TestSession_Run_PromptEchoStripped(t *testing.T) {
	sess, repl := newFakeSession(t, time.Second)
	repl.echoPrompt = true
	repl.respond("about -version", "// Result: 2024 //")

	reply, err := sess.Run(context.Background(), "about -version")
	require.NoError(t, err)
	assert.Equal(t, "// Result: 2024 //", reply, "interactive prompt echo must not leak into replies")
}

func TestSession_Run_ErrorReply(t *testing.T) {
	sess, repl := newFakeSession(t, time.Second)
	repl.respond("bogus", `// Error: Cannot find procedure "bogus". //`)

	_, err := sess.Run(context.Background(), "bogus")
	require.Error(t, err)

	var cmdErr *host.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "bogus", cmdErr.Command)
	assert.Contains(t, cmdErr.Output, "Cannot find procedure")
}

func TestSession_Run_TimeoutOnSilence(t *testing.T) {
	sess, repl := newFakeSession(t, 100*time.Millisecond)
	repl.silent = true

	start := time.Now()
	_, err := sess.Run(context.Background(), "about -version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSession_Run_ContextCancel(t *testing.T) {
	sess, repl := newFakeSession(t, time.Minute)
	repl.silent = true

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := sess.Run(ctx, "about -version")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSession_Run_DropsStaleOutput(t *testing.T) {
	stdinR, stdinW := io.Pipe()
	stdoutR, stdoutW := io.Pipe()
	sess := newSession(stdinW, stdoutR, 100*time.Millisecond, nil)
	t.Cleanup(func() {
		sess.Close()
		stdinR.Close()
		stdoutW.Close()
	})

	// Swallow everything the session writes.
	go io.Copy(io.Discard, stdinR)

	_, err := sess.Run(context.Background(), "first")
	require.Error(t, err, "no reply must time the first command out")

	// The late reply for the first command lands before the second one.
	go io.WriteString(stdoutW,
		"STALE\n"+
			"\n"+markerPrefix+"1__\n"+
			"fresh\n"+
			"\n"+markerPrefix+"2__\n")

	reply, err := sess.Run(context.Background(), "second")
	require.NoError(t, err)
	assert.Equal(t, "fresh", reply, "output from the timed-out command must be discarded")
}

func TestSession_Run_InterpreterExit(t *testing.T) {
	stdinR, stdinW := io.Pipe()
	stdoutR, stdoutW := io.Pipe()
	tail := &stderrTail{}
	tail.Write([]byte("License was not obtained"))

	sess := newSession(stdinW, stdoutR, time.Second, tail)
	t.Cleanup(func() {
		sess.Close()
		stdinR.Close()
	})
	go io.Copy(io.Discard, stdinR)

	stdoutW.Close()

	_, err := sess.Run(context.Background(), "about -version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interpreter exited")
	assert.Contains(t, err.Error(), "License was not obtained")
}

func TestSession_Run_AfterClose(t *testing.T) {
	sess, _ := newFakeSession(t, time.Second)
	require.NoError(t, sess.Close())

	_, err := sess.Run(context.Background(), "about -version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session closed")
}

func TestSession_Close_AsksInterpreterToQuit(t *testing.T) {
	sess, repl := newFakeSession(t, time.Second)
	require.NoError(t, sess.Close())

	assert.Eventually(t, func() bool {
		for _, c := range repl.commands() {
			if c == "quit -f" {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond, "closing must ask the interpreter to quit")
}

func TestStderrTail_KeepsOnlyTheTail(t *testing.T) {
	tail := &stderrTail{}
	tail.Write([]byte(strings.Repeat("a", 3000)))
	tail.Write([]byte("the end"))

	s := tail.String()
	assert.LessOrEqual(t, len(s), 2048)
	assert.True(t, strings.HasSuffix(s, "the end"))
}
