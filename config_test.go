package namepool

import (
	"context"
	"embed"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "github.com/viant/afs/embed"
	"github.com/viant/namepool/model/types"
	"github.com/viant/namepool/service/backend/gist"
)

//go:embed testdata/*
var embedFS embed.FS

func TestLoadConfig(t *testing.T) {
	t.Setenv("NAMEPOOL_TEST_GIST_FILE", "names.b64")
	config, err := LoadConfig(context.Background(), "embed:///testdata/config.yaml", &embedFS)
	require.NoError(t, err)
	assert.Equal(t, BackendGist, config.Backend)
	assert.Equal(t, 9, config.ZlibLevel)
	assert.Equal(t, 250, config.MaxBatch)
	assert.Equal(t, 3, config.MaxAttempts, "defaults kept for absent keys")
	assert.Equal(t, "0123456789abcdef", config.Gist.ID)
	assert.Equal(t, "names.b64", config.Gist.FileName)
	assert.Equal(t, "file:///etc/namepool/token", config.Gist.TokenURL)
	assert.Equal(t, 5*time.Second, config.Gist.Timeout)
	assert.Empty(t, config.Gist.Token)

	_, err = LoadConfig(context.Background(), "embed:///testdata/missing.yaml", &embedFS)
	assert.Equal(t, types.KindConfig, types.KindOf(err))
}

func TestConfig_ApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvHistoryFile:  "/var/lib/namepool/history.bin",
		EnvGistID:       "abc",
		EnvGistToken:    " ghp_x ",
		EnvGistFileName: "",
		EnvZlibLevel:    "not-a-number",
		EnvMaxBatch:     "100",
		EnvBackend:      "FILE",
	}
	config := DefaultConfig()
	config.ApplyEnv(func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	})
	assert.Equal(t, "/var/lib/namepool/history.bin", config.HistoryFile)
	assert.Equal(t, "abc", config.Gist.ID)
	assert.Equal(t, "ghp_x", config.Gist.Token)
	assert.Empty(t, config.Gist.FileName)
	assert.Equal(t, 6, config.ZlibLevel)
	assert.Equal(t, 100, config.MaxBatch)
	assert.Equal(t, BackendFile, config.Backend)
}

func gistConfig(id, token, tokenURL string) gist.Config {
	return gist.Config{ID: id, Token: token, TokenURL: tokenURL}
}

func TestConfig_BackendKind(t *testing.T) {
	var testCases = []struct {
		description string
		config      Config
		expect      string
	}{
		{description: "default file", config: Config{HistoryFile: "a"}, expect: BackendFile},
		{description: "gist id without token", config: Config{Gist: gistConfig("abc", "", "")}, expect: BackendFile},
		{description: "token without gist id", config: Config{Gist: gistConfig("", "t", "")}, expect: BackendFile},
		{description: "gist with token", config: Config{Gist: gistConfig("abc", "t", "")}, expect: BackendGist},
		{description: "gist with token url", config: Config{Gist: gistConfig("abc", "", "file:///token")}, expect: BackendGist},
		{description: "explicit", config: Config{Backend: BackendMemory, Gist: gistConfig("abc", "t", "")}, expect: BackendMemory},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, testCase.config.BackendKind(), testCase.description)
	}
}

func TestConfig_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		config      *Config
		expect      []string
	}{
		{description: "default", config: DefaultConfig()},
		{description: "nil", config: nil},
		{description: "memory", config: &Config{Backend: BackendMemory}},
		{description: "empty file", config: &Config{}, expect: []string{"historyFile is empty"}},
		{description: "unknown backend", config: &Config{Backend: "s3"}, expect: []string{"unsupported backend: s3"}},
		{description: "explicit gist", config: &Config{Backend: BackendGist}, expect: []string{"HISTORY_GIST_ID is empty", "HISTORY_GITHUB_TOKEN is empty"}},
		{description: "negative limits", config: &Config{HistoryFile: "a", MaxBatch: -1, MaxAttempts: -1}, expect: []string{"maxBatch must be >= 0", "maxAttempts must be >= 0"}},
	}
	for _, testCase := range testCases {
		err := testCase.config.Validate()
		if len(testCase.expect) == 0 {
			assert.NoError(t, err, testCase.description)
			continue
		}
		require.Error(t, err, testCase.description)
		assert.Equal(t, types.KindConfig, types.KindOf(err), testCase.description)
		for _, fragment := range testCase.expect {
			assert.Contains(t, err.Error(), fragment, testCase.description)
		}
	}
}
