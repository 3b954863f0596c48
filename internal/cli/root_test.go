package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_HasSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	names := make([]string, 0, 2)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "run")
	assert.Contains(t, names, "trace")
}

func TestRun_RequiresScenarioArg(t *testing.T) {
	_, err := execute(t, "run")
	require.Error(t, err)
}

func TestTrace_RequiresDatabaseFlag(t *testing.T) {
	_, err := execute(t, "trace")
	require.Error(t, err)
}
