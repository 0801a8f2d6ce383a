// Package mel handles the textual MEL surface of the FBX plug-in: command
// literals, reply classification and the FBXProperties dump format.
package mel

import (
	"fmt"
	"strconv"
	"strings"
)

// Quote returns s as a MEL string literal with backslashes and double
// quotes escaped.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\', '"':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// FormatBool returns the MEL literal for a boolean value.
func FormatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// FormatInt returns the MEL literal for an integer value.
func FormatInt(v int) string {
	return strconv.Itoa(v)
}

// FormatDouble returns the MEL literal for a floating point value.
func FormatDouble(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// IsErrorReply reports whether a host reply carries a MEL error message
// instead of a result.
func IsErrorReply(reply string) bool {
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "// Error:") || strings.HasPrefix(line, "Error:") {
			return true
		}
	}
	return false
}

// CleanResult strips script-editor decoration ("// Result: ... //"), NUL
// terminators and surrounding whitespace from a host reply.
func CleanResult(reply string) string {
	reply = strings.TrimRight(reply, "\x00")
	reply = strings.TrimSpace(reply)
	if strings.HasPrefix(reply, "// Result:") {
		reply = strings.TrimPrefix(reply, "// Result:")
		reply = strings.TrimSuffix(strings.TrimSpace(reply), "//")
	}
	return strings.TrimSpace(reply)
}

// ParseBool interprets a host reply as a boolean. The plug-in answers
// queries with "1"/"0" while some commands echo "true"/"false".
func ParseBool(reply string) (bool, error) {
	switch strings.TrimSpace(reply) {
	case "1", "true", "on", "yes":
		return true, nil
	case "0", "false", "off", "no":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean reply: %q", reply)
}

// ParseInt interprets a host reply as an integer. Replies for time values
// may carry a fractional part ("120.0") which is truncated.
func ParseInt(reply string) (int, error) {
	s := strings.TrimSpace(reply)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not an integer reply: %q", reply)
	}
	return int(f), nil
}

// ParseFloat interprets a host reply as a floating point number.
func ParseFloat(reply string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(reply), 64)
	if err != nil {
		return 0, fmt.Errorf("not a numeric reply: %q", reply)
	}
	return f, nil
}

// ParseVersion extracts the year component from an "about -version" reply
// such as "2024", "2020.4" or "2019 Extension 1".
func ParseVersion(reply string) (int, error) {
	s := strings.TrimSpace(reply)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("not a version reply: %q", reply)
	}
	return strconv.Atoi(s[:end])
}
