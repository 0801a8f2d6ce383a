package mel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestQuote_EscapesSpecialCharacters tests MEL string literal quoting
func TestQuote_EscapesSpecialCharacters(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		description string
	}{
		{
			name:        "PlainString_ShouldWrapInQuotes",
			input:       "scene.fbx",
			expected:    `"scene.fbx"`,
			description: "Plain string should only gain surrounding quotes",
		},
		{
			name:        "ForwardSlashPath_ShouldStayVerbatim",
			input:       "C:/exports/scene.fbx",
			expected:    `"C:/exports/scene.fbx"`,
			description: "Forward slash paths need no escaping",
		},
		{
			name:        "Backslash_ShouldBeEscaped",
			input:       `C:\exports\scene.fbx`,
			expected:    `"C:\\exports\\scene.fbx"`,
			description: "Backslashes must be doubled for MEL",
		},
		{
			name:        "EmbeddedQuote_ShouldBeEscaped",
			input:       `my "take"`,
			expected:    `"my \"take\""`,
			description: "Double quotes must be escaped",
		},
		{
			name:        "Newline_ShouldBeEscaped",
			input:       "a\nb",
			expected:    `"a\nb"`,
			description: "Newlines must not break the literal",
		},
		{
			name:        "EmptyString_ShouldProduceEmptyLiteral",
			input:       "",
			expected:    `""`,
			description: "Empty string is a valid literal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Quote(tt.input), tt.description)
		})
	}
}

// TestFormatters_ProduceMelLiterals tests value formatting for command text
func TestFormatters_ProduceMelLiterals(t *testing.T) {
	assert.Equal(t, "true", FormatBool(true))
	assert.Equal(t, "false", FormatBool(false))
	assert.Equal(t, "0", FormatInt(0))
	assert.Equal(t, "-1", FormatInt(-1))
	assert.Equal(t, "120", FormatInt(120))
	assert.Equal(t, "0.0001", FormatDouble(0.0001))
	assert.Equal(t, "0.009", FormatDouble(0.009))
	assert.Equal(t, "1", FormatDouble(1.0))
	assert.Equal(t, "30", FormatDouble(30.0))
}

// TestIsErrorReply_ClassifiesHostOutput tests error detection in replies
func TestIsErrorReply_ClassifiesHostOutput(t *testing.T) {
	tests := []struct {
		name        string
		reply       string
		isError     bool
		description string
	}{
		{
			name:        "PlainResult_ShouldNotBeError",
			reply:       "1",
			isError:     false,
			description: "Numeric result is not an error",
		},
		{
			name:        "ScriptEditorError_ShouldBeError",
			reply:       "// Error: line 1: Cannot find procedure \"FBXExprt\". //",
			isError:     true,
			description: "Script editor style errors are detected",
		},
		{
			name:        "BareError_ShouldBeError",
			reply:       "Error: FBX failed to create directory",
			isError:     true,
			description: "Bare error lines are detected",
		},
		{
			name:        "ErrorAfterOutput_ShouldBeError",
			reply:       "some output\n// Error: something broke //",
			isError:     true,
			description: "Errors after regular output are detected",
		},
		{
			name:        "ErrorWordInsideResult_ShouldNotBeError",
			reply:       "path/to/Error_prone_scene.fbx",
			isError:     false,
			description: "The word inside a value is not an error marker",
		},
		{
			name:        "EmptyReply_ShouldNotBeError",
			reply:       "",
			isError:     false,
			description: "Empty reply is a valid void result",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isError, IsErrorReply(tt.reply), tt.description)
		})
	}
}

// TestCleanResult_StripsDecoration tests reply normalization
func TestCleanResult_StripsDecoration(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		expected string
	}{
		{name: "RawCommandPortReply", reply: "1\n\x00", expected: "1"},
		{name: "PromptDecoratedReply", reply: "// Result: 120 //", expected: "120"},
		{name: "DecoratedStringReply", reply: "// Result: cm //", expected: "cm"},
		{name: "UndecoratedText", reply: "  FBX202000  ", expected: "FBX202000"},
		{name: "EmptyReply", reply: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanResult(tt.reply))
		})
	}
}

// TestParseBool_AcceptsHostSpellings tests boolean reply parsing
func TestParseBool_AcceptsHostSpellings(t *testing.T) {
	for _, s := range []string{"1", "true", "on", "yes", " 1 "} {
		v, err := ParseBool(s)
		require.NoError(t, err, "reply %q should parse", s)
		assert.True(t, v)
	}
	for _, s := range []string{"0", "false", "off", "no"} {
		v, err := ParseBool(s)
		require.NoError(t, err, "reply %q should parse", s)
		assert.False(t, v)
	}
	_, err := ParseBool("maybe")
	assert.Error(t, err, "Unknown spelling should be rejected")
}

// TestParseInt_HandlesTimeReplies tests integer parsing of frame values
func TestParseInt_HandlesTimeReplies(t *testing.T) {
	tests := []struct {
		name        string
		reply       string
		expected    int
		expectError bool
	}{
		{name: "PlainInteger", reply: "48", expected: 48},
		{name: "NegativeInteger", reply: "-1", expected: -1},
		{name: "FractionalFrame", reply: "120.0", expected: 120},
		{name: "Garbage", reply: "start", expectError: true},
		{name: "Empty", reply: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseInt(tt.reply)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

// TestParseVersion_ExtractsYear tests Maya version reply parsing
func TestParseVersion_ExtractsYear(t *testing.T) {
	tests := []struct {
		name        string
		reply       string
		expected    int
		expectError bool
	}{
		{name: "PlainYear", reply: "2024", expected: 2024},
		{name: "PointRelease", reply: "2020.4", expected: 2020},
		{name: "ExtensionSuffix", reply: "2019 Extension 1", expected: 2019},
		{name: "Whitespace", reply: " 2022\n", expected: 2022},
		{name: "NoDigits", reply: "Preview Release", expectError: true},
		{name: "Empty", reply: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVersion(tt.reply)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

// TestFormatters_RoundTripThroughParsers property: formatted literals parse back
func TestFormatters_RoundTripThroughParsers(t *testing.T) {
	t.Run("Int", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			v := rapid.Int().Draw(t, "v")
			parsed, err := ParseInt(FormatInt(v))
			require.NoError(t, err)
			assert.Equal(t, v, parsed)
		})
	})

	t.Run("Double", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			v := rapid.Float64().Draw(t, "v")
			parsed, err := ParseFloat(FormatDouble(v))
			require.NoError(t, err)
			assert.Equal(t, v, parsed)
		})
	})

	t.Run("Bool", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			v := rapid.Bool().Draw(t, "v")
			parsed, err := ParseBool(FormatBool(v))
			require.NoError(t, err)
			assert.Equal(t, v, parsed)
		})
	})
}
