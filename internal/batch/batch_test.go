package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommandSplitsMethodSubAndArgs(t *testing.T) {
	cmd, err := ParseCommand(`root bisection f="x^(2)-2" a=0 b=2 eps=1e-9`)
	require.NoError(t, err)
	assert.Equal(t, "root", cmd.Method)
	assert.Equal(t, "bisection", cmd.Sub)

	f, ok := cmd.Get("f")
	require.True(t, ok)
	assert.Equal(t, "x^(2)-2", f)

	a, ok := cmd.Get("a")
	require.True(t, ok)
	assert.Equal(t, "0", a)
}

func TestParseCommandNeverLeavesEmptyMethodOrArgsOnValidInput(t *testing.T) {
	lines := []string{
		`root bisection f="x^(2)-2" a=0 b=2 eps=1e-9`,
		`integrate simpson13 f="x^(2)" a=0 b=1 n=2`,
		`diff central f="x^(2)" x=3 h=1e-5`,
		`matrix determinant row="4,7" row="2,6"`,
	}
	for _, line := range lines {
		cmd, err := ParseCommand(line)
		require.NoError(t, err, line)
		assert.NotEmpty(t, cmd.Method, line)
		assert.NotEmpty(t, cmd.Args, line)
	}
}

func TestRunRootBisection(t *testing.T) {
	cmd, err := ParseCommand(`root bisection f="x^(2)-2" a=0 b=2 eps=1e-9`)
	require.NoError(t, err)
	result, err := Run(cmd)
	require.NoError(t, err)
	assert.Contains(t, result, "1.41421")
}

func TestRunIntegrateSimpson13(t *testing.T) {
	cmd, err := ParseCommand(`integrate simpson13 f="x^(2)" a=0 b=1 n=2`)
	require.NoError(t, err)
	result, err := Run(cmd)
	require.NoError(t, err)
	assert.Equal(t, "0.3333333333", result)
}

func TestRunMatrixDeterminant(t *testing.T) {
	cmd, err := ParseCommand(`matrix determinant row="4,7" row="2,6"`)
	require.NoError(t, err)
	result, err := Run(cmd)
	require.NoError(t, err)
	assert.Equal(t, "10", result)
}

func TestRunScriptContinuesPastErrorsUnlessFailFast(t *testing.T) {
	lines := []string{
		`root bisection f="x^(2)+1" a=0 b=2 eps=1e-9`, // no sign change -> NaN -> error
		`integrate simpson13 f="x^(2)" a=0 b=1 n=2`,
	}
	results, errs := RunScript(lines, false)
	require.Len(t, errs, 2)
	assert.Error(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, "0.3333333333", results[1])
}

func TestRunScriptFailFastStopsAtFirstError(t *testing.T) {
	lines := []string{
		`root bisection f="x^(2)+1" a=0 b=2 eps=1e-9`,
		`integrate simpson13 f="x^(2)" a=0 b=1 n=2`,
	}
	results, errs := RunScript(lines, true)
	require.Len(t, errs, 1)
	require.Len(t, results, 1)
	assert.Error(t, errs[0])
}

func TestRunUnknownMethodErrors(t *testing.T) {
	cmd, err := ParseCommand(`frobnicate f="x"`)
	require.NoError(t, err)
	_, err = Run(cmd)
	assert.Error(t, err)
}

func TestFloatArgRejectsGarbage(t *testing.T) {
	_, err := floatArg(&Command{Args: []*Arg{{Key: "a", Value: "not-a-number"}}}, "a", 0)
	assert.Error(t, err)
}
