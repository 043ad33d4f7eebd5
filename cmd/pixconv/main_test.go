package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	out, err := execute(t, "--from", "[]int32", "--to", "[]complex64",
		"--lowest", "-100", "--highest", "100", "--", "5", "-300", "7")
	require.NoError(t, err)
	assert.Equal(t, "(5-100i) (7+0i)\n", out)

	out, err = execute(t, "--from", "float64", "--to", "uint8", "300.5")
	require.NoError(t, err)
	assert.Equal(t, "255\n", out)
}

func TestRootCommandErrors(t *testing.T) {
	_, err := execute(t, "--to", "uint8", "1")
	assert.Error(t, err, "missing --from")

	_, err = execute(t, "--from", "uint8", "--to", "uint8")
	assert.Error(t, err, "no values")

	_, err = execute(t, "--from", "float64", "--to", "uint8", "--nan", "reject", "NaN")
	assert.ErrorContains(t, err, "NaN")
}

func TestSubcommands(t *testing.T) {
	out, err := execute(t, "cpu")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "SIMD Level: "), out)

	out, err = execute(t, "types")
	require.NoError(t, err)
	assert.Equal(t, TypeNames(), strings.Fields(out))
}
