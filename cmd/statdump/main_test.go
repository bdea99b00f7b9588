package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "statdump", root.Use)
	assert.NotEmpty(t, root.Version)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"dump", "fields", "lint"})
}

func TestRootCommandLint(t *testing.T) {
	root := newRootCommand()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetArgs([]string{"lint", "-v"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "No issues found\n", buf.String())
}

func TestRootCommandDumpErrors(t *testing.T) {
	root := newRootCommand()
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"dump", "system", "-b", "x", "-f", "bogus_field"})
	assert.EqualError(t, root.Execute(), "unrecognized field: bogus_field")
}
