package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
	"sync"

	"mayafbx/internal/core/fbxprop"
	"mayafbx/internal/core/options"
)

// Mock Maya command port for testing the mayafbx CLI without a license.
// It speaks the wire protocol of a real command port (newline-terminated
// MEL in, NUL-terminated reply out) and fakes the commands the CLI uses,
// backed by the same property table the CLI is built on.

type mockHost struct {
	mu       sync.Mutex
	values   map[string]string // property key -> value text written by -v
	defaults map[string]string
	props    []*fbxprop.Property
	version  string
}

func main() {
	addr := flag.String("addr", "127.0.0.1:7001", "Listen address")
	version := flag.String("maya-version", "2024", "Maya version to report")
	flag.Parse()

	host := newMockHost(*version)

	listener, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}

	fmt.Println("🎭 Mock Maya Command Port")
	fmt.Println("=========================")
	fmt.Printf("Listening on %s (Maya %s)\n", listener.Addr(), *version)
	fmt.Println()
	fmt.Println("Point the CLI at it:")
	fmt.Printf("  mayafbx --host %s doctor\n", listener.Addr())
	fmt.Printf("  mayafbx --host %s export /tmp/scene.fbx\n", listener.Addr())
	fmt.Println()

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Fatalf("accept: %v", err)
		}
		go host.serve(conn)
	}
}

func newMockHost(version string) *mockHost {
	h := &mockHost{
		values:   map[string]string{},
		defaults: map[string]string{},
		version:  version,
	}
	for _, r := range []options.Record{options.NewExportOptions(), options.NewImportOptions()} {
		for _, p := range options.PropertiesOf(r) {
			h.props = append(h.props, p)
			switch {
			case p.Default != nil:
				h.defaults[keyOf(p)] = valueText(p.Default)
			case p.DefaultFrom != fbxprop.SourceNone:
				h.defaults[keyOf(p)] = sceneText(p.DefaultFrom)
			}
		}
	}
	return h
}

// sceneText answers for properties whose factory value comes from the
// scene, with the same scene a fresh Maya session would have.
func sceneText(src fbxprop.Source) string {
	switch src {
	case fbxprop.SourceTimelineStart:
		return "1"
	case fbxprop.SourceTimelineEnd:
		return "120"
	case fbxprop.SourceSceneUnit:
		return "cm"
	case fbxprop.SourceSceneUpAxis:
		return "Y"
	case fbxprop.SourcePluginFileVersion:
		return "FBX202000"
	}
	return ""
}

func keyOf(p *fbxprop.Property) string {
	if path := p.Path(); path != "" {
		return path
	}
	return p.Command
}

func valueText(v any) string {
	switch t := v.(type) {
	case bool:
		if t {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func (h *mockHost) serve(conn net.Conn) {
	defer conn.Close()
	log.Printf("[conn] %s connected", conn.RemoteAddr())

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		command := strings.TrimSpace(scanner.Text())
		reply := h.eval(command)
		if _, err := conn.Write(append([]byte(reply), 0)); err != nil {
			break
		}
	}
	log.Printf("[conn] %s closed", conn.RemoteAddr())
}

func (h *mockHost) eval(command string) string {
	command = strings.TrimSpace(strings.TrimSuffix(command, ";"))

	switch {
	case strings.HasPrefix(command, "pluginInfo") && strings.Contains(command, "-loaded"):
		return "1"
	case strings.HasPrefix(command, "pluginInfo") && strings.Contains(command, "-version"):
		return "2020.3.4"
	case strings.HasPrefix(command, "loadPlugin"):
		return "fbxmaya"
	case strings.HasPrefix(command, "about"):
		return h.version
	case strings.Contains(command, "-animationStartTime"):
		return "1"
	case strings.Contains(command, "-animationEndTime"):
		return "120"
	case strings.HasPrefix(command, "currentUnit"):
		return "cm"
	case strings.HasPrefix(command, "upAxis"):
		return "y"
	case strings.Contains(command, "ls -sl"):
		return "1"
	case command == "FBXProperties":
		return h.dump()
	case strings.HasPrefix(command, "FBXResetExport"):
		h.reset("Export")
		return ""
	case strings.HasPrefix(command, "FBXResetImport"):
		h.reset("Import")
		return ""
	case strings.HasPrefix(command, "FBXExport "), strings.HasPrefix(command, "FBXImport "):
		log.Printf("[fbx] %s", command)
		return ""
	case strings.HasPrefix(command, "FBXLoad"):
		log.Printf("[fbx] %s", command)
		return ""
	}

	return h.property(command)
}

// property handles FBXProperty and the dedicated per-setting commands.
func (h *mockHost) property(command string) string {
	tokens := strings.Fields(command)
	if len(tokens) == 0 {
		return ""
	}

	key := tokens[0]
	rest := tokens[1:]
	if key == "FBXProperty" {
		if len(rest) == 0 {
			return ""
		}
		key, rest = rest[0], rest[1:]
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for i, tok := range rest {
		switch tok {
		case "-q":
			if v, ok := h.values[key]; ok {
				return v
			}
			return h.defaults[key]
		case "-v":
			h.values[key] = unquote(strings.Join(rest[i+1:], " "))
			return ""
		}
	}

	// Flagless commands carry the value directly.
	if len(rest) > 0 {
		h.values[key] = unquote(strings.Join(rest, " "))
	}
	return ""
}

func (h *mockHost) reset(side string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for key := range h.values {
		if strings.HasPrefix(key, side+"|") || strings.HasPrefix(key, "FBX"+side) {
			delete(h.values, key)
		}
	}
	log.Printf("[fbx] reset %s settings", strings.ToLower(side))
}

// dump renders the property tree the way FBXProperties prints it.
func (h *mockHost) dump() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	var b strings.Builder
	for _, p := range h.props {
		path := p.Path()
		if path == "" {
			continue
		}
		value, ok := h.values[path]
		if !ok {
			value = h.defaults[path]
		}
		fmt.Fprintf(&b, "PATH: %s ( TYPE: %s ) ( VALUE: %s )", path, dumpType(p.Kind), value)
		if p.Kind == fbxprop.KindEnum {
			fmt.Fprintf(&b, "  (POSSIBLE VALUES: %s )", strings.Join(p.Values, " "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func dumpType(k fbxprop.Kind) string {
	switch k {
	case fbxprop.KindBool:
		return "Bool"
	case fbxprop.KindInt:
		return "Integer"
	case fbxprop.KindDouble:
		return "Number"
	case fbxprop.KindEnum:
		return "Enum"
	default:
		return "String"
	}
}

func unquote(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}
