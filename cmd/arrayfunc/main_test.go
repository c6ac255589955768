package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m1griffin/arrayfunc-sub006/arrayfunc"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Cleanup(func() { arrayfunc.SetLogger(nil) })
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestOpCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"array-scalar", []string{"sub", "--type", "b", "100,101,102", "2"}, "b[98 99 100]"},
		{"scalar-array", []string{"sub", "--type", "b", "2", "[10]"}, "b[-8]"},
		{"array-array", []string{"sub", "--type", "int16", "10, 20, 30", "1,2,3"}, "h[9 18 27]"},
		{"output", []string{"sub", "--type", "h", "--out", "10,20,30", "1,2"}, "h[9 18]"},
		{"scalar-array output", []string{"sub", "-t", "h", "--out", "5", "1,2,3"}, "h[4 3 2]"},
		{"maxlen", []string{"mul", "--type", "h", "--maxlen", "2", "1,2,3", "10"}, "h[10 20 3]"},
		{"matherrors", []string{"sub", "--type", "B", "--matherrors", "[0]", "1"}, "B[255]"},
		{"add", []string{"add", "--type", "Q", "[1,2]", "3"}, "Q[4 5]"},
		{"float default", []string{"sub", "1.5,2.5", "0.5"}, "d[1 2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(stdout))
		})
	}
}

func TestOpCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"overflow", []string{"sub", "--type", "b", "100,101", "--", "-28"}, arrayfunc.ErrOverflow},
		{"scalar out of range", []string{"sub", "--type", "b", "1,2", "300"}, arrayfunc.ErrOverflow},
		{"bad element", []string{"sub", "--type", "B", "1,x", "1"}, arrayfunc.ErrTypeMismatch},
		{"unknown type", []string{"sub", "--type", "z", "1,2", "1"}, arrayfunc.ErrTypeMismatch},
		{"bad maxlen", []string{"sub", "--type", "b", "--maxlen", "two", "1,2", "1"}, arrayfunc.ErrTypeMismatch},
		{"two scalars", []string{"sub", "--type", "b", "1", "2"}, arrayfunc.ErrInvalidShape},
		{"two scalars output", []string{"sub", "--type", "b", "--out", "1", "2"}, arrayfunc.ErrInvalidShape},
		{"empty array", []string{"sub", "--type", "b", "[]", "2"}, arrayfunc.ErrLength},
		{"nan", []string{"sub", "--type", "d", "1,NaN", "1"}, arrayfunc.ErrArithmetic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, stdout)
		})
	}
}

func TestFaultIndexReported(t *testing.T) {
	_, _, err := execute(t, "sub", "--type", "b", "100,101", "--", "-27")
	var fe *arrayfunc.FaultError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 1, fe.Index)
	assert.Equal(t, arrayfunc.FaultOverflow, fe.Kind)
}

func TestVerboseLogsDispatch(t *testing.T) {
	stdout, stderr, err := execute(t, "--verbose", "sub", "--type", "b", "1,2", "1")
	require.NoError(t, err)
	assert.Equal(t, "b[0 1]", strings.TrimSpace(stdout))
	assert.Contains(t, stderr, "msg=dispatch")
	assert.Contains(t, stderr, "shape=array-scalar")

	_, stderr, err = execute(t, "sub", "--type", "b", "1,2", "1")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestInfo(t *testing.T) {
	stdout, _, err := execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dispatch: ")
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	// Header line, blank line, table header, then one row per code.
	require.Len(t, lines, 3+len(arrayfunc.TypeCodes()))
	assert.Regexp(t, `^b\s+int8\s+1\s+-128\s+127$`, lines[3])
	assert.Regexp(t, `^Q\s+uint64\s+8\s+0\s+18446744073709551615$`, lines[12])
}

func TestArgumentCount(t *testing.T) {
	_, _, err := execute(t, "sub", "--type", "b", "1,2")
	require.Error(t, err)
}
