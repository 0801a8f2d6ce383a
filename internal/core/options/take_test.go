package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTake_Validate tests take range validation
func TestTake_Validate(t *testing.T) {
	tests := []struct {
		name        string
		take        Take
		expectError bool
		errContains string
		description string
	}{
		{
			name:        "ForwardRange_ShouldSucceed",
			take:        Take{Name: "walk", Start: 1, End: 40},
			description: "A forward range is valid",
		},
		{
			name:        "SingleFrame_ShouldSucceed",
			take:        Take{Name: "pose", Start: 10, End: 10},
			description: "Start equal to end is a single frame take",
		},
		{
			name:        "NegativeFrames_ShouldSucceed",
			take:        Take{Name: "preroll", Start: -20, End: 0},
			description: "Negative frames are legal in Maya timelines",
		},
		{
			name:        "MissingName_ShouldFail",
			take:        Take{Start: 1, End: 10},
			expectError: true,
			errContains: "name required",
			description: "Takes must be named",
		},
		{
			name:        "BackwardRange_ShouldFail",
			take:        Take{Name: "run", Start: 30, End: 10},
			expectError: true,
			errContains: "before start",
			description: "End before start is rejected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.take.Validate()
			if tt.expectError {
				require.Error(t, err, tt.description)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				assert.NoError(t, err, tt.description)
			}
		})
	}
}

// TestSplitTakeCommands_BuildsClearThenAdds tests take command assembly
func TestSplitTakeCommands_BuildsClearThenAdds(t *testing.T) {
	cmds, err := SplitTakeCommands([]Take{
		{Name: "walk cycle", Start: 1, End: 40},
		{Name: "run", Start: 41, End: 80},
	})
	require.NoError(t, err)
	require.Len(t, cmds, 3)

	assert.Equal(t, "FBXExportSplitAnimationIntoTakes -clear", cmds[0],
		"The take list is cleared before adding")
	assert.Equal(t, `FBXExportSplitAnimationIntoTakes -v "walk cycle" 1 40`, cmds[1])
	assert.Equal(t, `FBXExportSplitAnimationIntoTakes -v "run" 41 80`, cmds[2])
}

// TestSplitTakeCommands_NoTakes tests that an empty take list is a no-op
func TestSplitTakeCommands_NoTakes(t *testing.T) {
	cmds, err := SplitTakeCommands(nil)
	require.NoError(t, err)
	assert.Nil(t, cmds, "Without takes the exporter is left alone")
}

// TestSplitTakeCommands_InvalidTake tests that invalid takes abort assembly
func TestSplitTakeCommands_InvalidTake(t *testing.T) {
	_, err := SplitTakeCommands([]Take{
		{Name: "ok", Start: 1, End: 2},
		{Name: "bad", Start: 5, End: 1},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `take "bad"`)
}
