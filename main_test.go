package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_RunsWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roombook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hotel_name: Harbour View\nrooms:\n  - number: 7\n    type: Suite\n"), 0o600))

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", path, "--quiet"})
	cmd.SetIn(strings.NewReader("4\n5\n"))
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "=== Harbour View Booking System ===")
	assert.Contains(t, out.String(), "Room 7: Suite")
	assert.Contains(t, out.String(), "Exiting the system.")
}

func TestRootCmd_MissingConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"-q", "-c", filepath.Join(t.TempDir(), "nope.yaml")})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.Error(t, cmd.Execute())
}
