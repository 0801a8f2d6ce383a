// Package testfixtures provides builders for constructing test doubles in
// a fluent, readable way.
package testfixtures

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"mayafbx/internal/core/fbxprop"
	"mayafbx/internal/core/options"
	"mayafbx/internal/core/ports/host"
	"mayafbx/internal/mel"
)

type prefixReply struct {
	prefix string
	reply  string
}

// ScriptedHost is an in-memory Maya stand-in. It answers configured
// commands with canned replies, records every command it receives and
// implements both host.Session and host.Dialer.
type ScriptedHost struct {
	mu        sync.Mutex
	replies   map[string]string
	prefixes  []prefixReply
	failures  map[string]string
	defReply  string
	log       []string
	closed    bool
	dialErr   error
	dialCount int
}

// NewScriptedHost creates a host that answers every command with an empty
// reply until told otherwise.
func NewScriptedHost() *ScriptedHost {
	return &ScriptedHost{
		replies:  make(map[string]string),
		failures: make(map[string]string),
	}
}

// RespondWith registers an exact-match canned reply.
func (h *ScriptedHost) RespondWith(command, reply string) *ScriptedHost {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.replies[command] = reply
	return h
}

// RespondToPrefix registers a prefix-match canned reply, tried in
// registration order after exact matches.
func (h *ScriptedHost) RespondToPrefix(prefix, reply string) *ScriptedHost {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.prefixes = append(h.prefixes, prefixReply{prefix: prefix, reply: reply})
	return h
}

// FailOn makes the given command fail with a host error carrying output.
func (h *ScriptedHost) FailOn(command, output string) *ScriptedHost {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failures[command] = output
	return h
}

// FailDial makes subsequent Dial calls fail.
func (h *ScriptedHost) FailDial(err error) *ScriptedHost {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dialErr = err
	return h
}

// WithDefaultPluginState installs the replies of an idle Maya 2024 host
// with the FBX plug-in loaded and every property at factory default.
func (h *ScriptedHost) WithDefaultPluginState() *ScriptedHost {
	h.RespondWith("pluginInfo -q -loaded fbxmaya", "1")
	h.RespondWith("about -version", "2024")
	h.RespondWith("pluginInfo -q -version fbxmaya", "2020.3.4")
	h.RespondWith("playbackOptions -q -animationStartTime", "1")
	h.RespondWith("playbackOptions -q -animationEndTime", "120")
	h.RespondWith("currentUnit -q -linear", "cm")
	h.RespondWith("upAxis -q -axis", "y")
	h.RespondWith("size(`ls -sl`)", "1")
	h.RespondWith("FBXExportFileVersion -q", "FBX202000")

	for _, r := range []options.Record{options.NewExportOptions(), options.NewImportOptions()} {
		for _, f := range r.Fields() {
			v := f.Get()
			if v == nil {
				continue
			}
			h.RespondWith(f.Prop.QueryCommand(), queryReply(f.Prop, v))
		}
	}

	// Host-derived properties answer their scene-matching values.
	h.RespondWith("FBXProperty Export|IncludeGrp|Animation|BakeComplexAnimation|BakeFrameStart -q", "1")
	h.RespondWith("FBXProperty Export|IncludeGrp|Animation|BakeComplexAnimation|BakeFrameEnd -q", "120")
	h.RespondWith("FBXExportConvertUnitString -q", "cm")
	h.RespondWith("FBXProperty Export|AdvOptGrp|AxisConvGrp|UpAxis -q", "Y")
	h.RespondWith("FBXProperty Import|AdvOptGrp|UnitsGrp|UnitsSelector -q", "cm")
	h.RespondWith("FBXProperty Import|AdvOptGrp|AxisConvGrp|UpAxis -q", "Y")
	return h
}

// queryReply renders a typed value the way the plug-in answers queries.
func queryReply(p *fbxprop.Property, v any) string {
	switch p.Kind {
	case fbxprop.KindBool:
		if v.(bool) {
			return "1"
		}
		return "0"
	case fbxprop.KindInt:
		return strconv.Itoa(v.(int))
	case fbxprop.KindDouble:
		return mel.FormatDouble(v.(float64))
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Run answers one command, recording it.
func (h *ScriptedHost) Run(_ context.Context, command string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return "", fmt.Errorf("session closed")
	}
	h.log = append(h.log, command)

	if output, ok := h.failures[command]; ok {
		return "", &host.CommandError{Command: command, Output: output}
	}
	if reply, ok := h.replies[command]; ok {
		return reply, nil
	}
	for _, pr := range h.prefixes {
		if strings.HasPrefix(command, pr.prefix) {
			return pr.reply, nil
		}
	}
	return h.defReply, nil
}

// Close marks the session closed.
func (h *ScriptedHost) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	return nil
}

// Dial reopens the host as a fresh session.
func (h *ScriptedHost) Dial(context.Context) (host.Session, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.dialErr != nil {
		return nil, h.dialErr
	}
	h.dialCount++
	h.closed = false
	return h, nil
}

// Commands returns a copy of every command received so far, in order.
func (h *ScriptedHost) Commands() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.log))
	copy(out, h.log)
	return out
}

// CommandsMatching returns the received commands that begin with prefix.
func (h *ScriptedHost) CommandsMatching(prefix string) []string {
	var out []string
	for _, c := range h.Commands() {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// Closed reports whether the session is currently closed.
func (h *ScriptedHost) Closed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

// DialCount returns how many sessions were opened.
func (h *ScriptedHost) DialCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dialCount
}

// Reset clears the command log, keeping the configured replies.
func (h *ScriptedHost) Reset() *ScriptedHost {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.log = nil
	return h
}
