package cli

import (
	"fmt"
	"strconv"
	"strings"

	"mayafbx/internal/core/options"
)

// parseTake turns a "walk=1:30" flag value into a take definition.
func parseTake(s string) (options.Take, error) {
	name, span, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return options.Take{}, fmt.Errorf("take %q: want name=start:end", s)
	}
	start, end, err := parseFrameRange(span)
	if err != nil {
		return options.Take{}, fmt.Errorf("take %q: %w", name, err)
	}
	return options.Take{Name: name, Start: start, End: end}, nil
}

// parseTakes converts every repeated --take flag.
func parseTakes(values []string) ([]options.Take, error) {
	if len(values) == 0 {
		return nil, nil
	}
	takes := make([]options.Take, 0, len(values))
	for _, v := range values {
		take, err := parseTake(v)
		if err != nil {
			return nil, err
		}
		takes = append(takes, take)
	}
	return takes, nil
}

// parseFrameRange turns "1:120" into a start and end frame.
func parseFrameRange(s string) (int, int, error) {
	from, to, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("frame range %q: want start:end", s)
	}
	start, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start frame %q", from)
	}
	end, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end frame %q", to)
	}
	return start, end, nil
}

// applySetFlags pins record fields from repeated --set field=value flags.
func applySetFlags(r options.Record, pairs []string) error {
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("--set %q: want field=value", pair)
		}
		if err := options.SetFieldText(r, strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("--set: %w", err)
		}
	}
	return nil
}

// parseDirection reads an optional export/import positional argument.
func parseDirection(args []string, fallback options.Direction) (options.Direction, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	dir := options.Direction(args[0])
	if !dir.IsValid() {
		return "", fmt.Errorf("unknown direction %q, want export or import", args[0])
	}
	return dir, nil
}
