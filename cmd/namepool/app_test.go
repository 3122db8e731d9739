package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"github.com/viant/namepool"
)

func isolateEnv(t *testing.T) {
	for _, key := range []string{namepool.EnvBackend, namepool.EnvHistoryFile, namepool.EnvGistID, namepool.EnvGistToken, namepool.EnvGistTokenURL, "NAMEPOOL_CONFIG"} {
		t.Setenv(key, "")
	}
}

func runApp(t *testing.T, args ...string) (string, error) {
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &bytes.Buffer{}
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"namepool"}, args...))
	return out.String(), err
}

func TestInspect(t *testing.T) {
	isolateEnv(t)
	location := filepath.Join(t.TempDir(), "history.bin")

	output, err := runApp(t, "--history-file", location, "inspect")
	require.NoError(t, err)
	assert.Contains(t, output, "backend: file")
	assert.Contains(t, output, "history: not initialized")

	logger, _ := test.NewNullLogger()
	config := namepool.DefaultConfig()
	config.HistoryFile = location
	srv, err := namepool.New(context.Background(), config, namepool.WithLogger(logger))
	require.NoError(t, err)
	_, err = srv.Allocate(context.Background(), 3)
	require.NoError(t, err)

	output, err = runApp(t, "--history-file", location, "inspect")
	require.NoError(t, err)
	assert.Contains(t, output, "blob: version=1")
	assert.Contains(t, output, "history: used=3")

	require.NoError(t, os.WriteFile(location, []byte("RNGZ1 but far too short"), 0o644))
	_, err = runApp(t, "--history-file", location, "inspect")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too small")
}

func TestLogLevel(t *testing.T) {
	isolateEnv(t)
	_, err := runApp(t, "--log-level", "loud", "inspect")
	assert.Error(t, err)
}
