package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunHelpExitsCleanly(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--help"}, &out))
	require.Contains(t, out.String(), "--locale")
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--version"}, &out))
	require.Equal(t, "localedemo dev\n", out.String())
}

func TestRunReportsBadFlags(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"--no-such-flag"}, &out)
	require.ErrorContains(t, err, "flags:")
}

func TestRunReportsConfigErrors(t *testing.T) {
	t.Setenv("LOCALEDEMO_CONFIG", "")
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	err := run(context.Background(), []string{"--index=-1", "--log-file="}, &out)
	require.ErrorContains(t, err, "config:")
}
