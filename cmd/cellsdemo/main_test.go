package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	run(&out, 1, []int{31, 31, 41}, 2)

	assert.Equal(t, `input=31 plus1=32 times2=64
input=31 plus1=32 times2=64
input=41 plus1=42 times2=84
plus1 callback:  [32]
times2 callback: [64 84]
`, out.String())
}

func TestRootCmd(t *testing.T) {
	var out bytes.Buffer

	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--initial", "2", "--set", "2,5"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "plus1 callback:  [6]")
	assert.Contains(t, out.String(), "times2 callback: [12]")
}
