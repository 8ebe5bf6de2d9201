package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"calcui/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	prev := logger.Logger
	t.Cleanup(func() { logger.Logger = prev })

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), ".env")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"5", "+", "3", "="}, "8\n"},
		{[]string{"12", "*", "4", "="}, "48\n"},
		{[]string{"6", "/", "0", "="}, "Infinity\n"},
		{[]string{"1.5", "+", ".5", "="}, "2\n"},
		{[]string{"5", "0", "%"}, "0.5\n"},
		{[]string{"4", "2", "="}, "42\n"},
		{[]string{"9", "AC"}, "0\n"},
		{[]string{"--", "-", "3", "="}, "-3\n"},
	}
	for _, tt := range tests {
		out, err := execute(t, append([]string{"eval"}, tt.args...)...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, out, tt.args)
	}
}

func TestEval_RequiresArgs(t *testing.T) {
	_, err := execute(t, "eval")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "calcui v"+version+"\n", out)
}

func TestInvalidThemeFlag(t *testing.T) {
	_, err := execute(t, "--theme", "sepia", "eval", "1")
	assert.ErrorContains(t, err, "invalid theme")
}

func TestInvalidThemeEnv(t *testing.T) {
	t.Setenv("CALCUI_THEME", "neon")
	_, err := execute(t, "eval", "1")
	assert.ErrorContains(t, err, "invalid theme")
}

func TestExpandLabels(t *testing.T) {
	assert.Equal(t,
		[]string{"1", "2", ".", "5", "+", "+/-", "AC", "x"},
		expandLabels([]string{"12.5", "+", "+/-", "AC", "x"}),
	)
}
