package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/squares/internal/testutil"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "squares", cmd.Use)
	assert.Contains(t, cmd.Long, "not")
	assert.Contains(t, cmd.Long, "divided")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"files", "args", "check"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestFilesCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	filesCmd, _, err := cmd.Find([]string{"files"})
	require.NoError(t, err)

	weightsFlag := filesCmd.Flags().Lookup("weights")
	require.NotNil(t, weightsFlag)
	assert.Equal(t, "", weightsFlag.DefValue)
}

func TestArgsCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	argsCmd, _, err := cmd.Find([]string{"args"})
	require.NoError(t, err)

	weightsFlag := argsCmd.Flags().Lookup("weights")
	require.NotNil(t, weightsFlag)
	assert.Equal(t, "stringArray", weightsFlag.Value.Type())
}

func TestCheckCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	checkCmd, _, err := cmd.Find([]string{"check"})
	require.NoError(t, err)

	filterFlag := checkCmd.Flags().Lookup("filter")
	require.NotNil(t, filterFlag)
}

func TestFormatValidation(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))

	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
	assert.False(t, isValidFormat("TEXT"))
}

func TestFormatValidationIntegration(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "invalid", "args", "1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRootCommandEndToEnd(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"args", "1", "2", "4"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "21\n", buf.String())
}

func TestRootCommandNegativeNumbers(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"after first number", []string{"args", "1", "-2"}, "5\n"},
		{"root flags first", []string{"--format", "text", "args", "1", "-2"}, "5\n"},
		{"flags before numbers", []string{"args", "-v", "--weights", "1 -1", "2", "-3"}, "-5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(newRootCommand(newTestOptions("text")), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestEachInvocationGetsItsOwnTraceID(t *testing.T) {
	opts := newTestOptions("json")
	opts.TraceIDs = testutil.NewSequenceTraceIDs("trace-a", "trace-b")

	first, _, err := execute(newRootCommand(opts), "--format", "json", "args", "1", "2")
	require.NoError(t, err)
	second, _, err := execute(newRootCommand(opts), "--format", "json", "args", "3")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(first), &resp))
	assert.Equal(t, "trace-a", resp.TraceID)
	require.NoError(t, json.Unmarshal([]byte(second), &resp))
	assert.Equal(t, "trace-b", resp.TraceID)
}

func TestUUIDv7Generator(t *testing.T) {
	gen := UUIDv7Generator{}
	first := gen.Generate()
	second := gen.Generate()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, first, second)
}

func TestRootOptionsDefaultTraceIDs(t *testing.T) {
	opts := &RootOptions{}
	_, err := uuid.Parse(opts.traceIDs().Generate())
	require.NoError(t, err)
}
