package options

import (
	"fmt"

	"mayafbx/internal/mel"
)

// Take is a named frame range the exporter can split scene animation into.
type Take struct {
	Name  string
	Start int
	End   int
}

// Validate checks that the take has a name and a forward frame range.
func (t Take) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("take name required")
	}
	if t.End < t.Start {
		return fmt.Errorf("take %q: end frame %d is before start frame %d", t.Name, t.End, t.Start)
	}
	return nil
}

// String returns the take as "name[start:end]".
func (t Take) String() string {
	return fmt.Sprintf("%s[%d:%d]", t.Name, t.Start, t.End)
}

// SplitTakeCommands returns the MEL statements configuring the exporter to
// split animation into the given takes, starting from a cleared take list.
// No takes means no statements; the plug-in then writes its usual single
// take.
func SplitTakeCommands(takes []Take) ([]string, error) {
	if len(takes) == 0 {
		return nil, nil
	}
	cmds := make([]string, 0, len(takes)+1)
	cmds = append(cmds, "FBXExportSplitAnimationIntoTakes -clear")
	for _, t := range takes {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("invalid take: %w", err)
		}
		cmds = append(cmds, fmt.Sprintf("FBXExportSplitAnimationIntoTakes -v %s %d %d",
			mel.Quote(t.Name), t.Start, t.End))
	}
	return cmds, nil
}
