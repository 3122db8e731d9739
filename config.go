package namepool

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/namepool/internal/envexpr"
	"github.com/viant/namepool/model/types"
	"github.com/viant/namepool/model/universe"
	"github.com/viant/namepool/service/backend"
	"github.com/viant/namepool/service/backend/fs"
	"github.com/viant/namepool/service/backend/gist"
	"github.com/viant/namepool/service/backend/memory"
	"github.com/viant/namepool/service/codec"
	"gopkg.in/yaml.v3"
)

// Backend kinds accepted by Config.Backend.
const (
	BackendAuto   = ""
	BackendFile   = fs.Name
	BackendGist   = gist.Name
	BackendMemory = memory.Name
)

// DefaultHistoryFile is used when neither config nor environment set a location.
const DefaultHistoryFile = "data/history.bin"

// Environment variables read by ApplyEnv.
const (
	EnvBackend      = "NAMEPOOL_BACKEND"
	EnvHistoryFile  = "HISTORY_FILE"
	EnvGistID       = "HISTORY_GIST_ID"
	EnvGistToken    = "HISTORY_GITHUB_TOKEN"
	EnvGistTokenURL = "HISTORY_GITHUB_TOKEN_URL"
	EnvGistFileName = "HISTORY_GIST_FILENAME"
	EnvZlibLevel    = "HISTORY_ZLIB_LEVEL"
	EnvMaxBatch     = "NAMEPOOL_MAX_BATCH"
	EnvMaxAttempts  = "NAMEPOOL_MAX_ATTEMPTS"
)

// Config selects and configures the persistence backend and allocation limits.
// The zero value of every field falls back to its package default.
type Config struct {
	// Backend is one of file, gist, memory; empty selects gist when a gist id
	// and a credential are configured, file otherwise.
	Backend     string      `json:"backend,omitempty" yaml:"backend,omitempty"`
	HistoryFile string      `json:"historyFile,omitempty" yaml:"historyFile,omitempty"`
	Gist        gist.Config `json:"gist,omitempty" yaml:"gist,omitempty"`
	ZlibLevel   int         `json:"zlibLevel,omitempty" yaml:"zlibLevel,omitempty"`
	MaxBatch    int         `json:"maxBatch,omitempty" yaml:"maxBatch,omitempty"`
	MaxAttempts int         `json:"maxAttempts,omitempty" yaml:"maxAttempts,omitempty"`
}

// DefaultConfig returns a file-backed configuration.
func DefaultConfig() *Config {
	return &Config{
		HistoryFile: DefaultHistoryFile,
		ZlibLevel:   codec.DefaultLevel,
		MaxBatch:    universe.DefaultMaxBatch,
		MaxAttempts: 3,
	}
}

// LoadConfig reads a YAML (or JSON) document over DefaultConfig.
// ${env.KEY} references in the document are expanded first.
func LoadConfig(ctx context.Context, URL string, options ...storage.Option) (*Config, error) {
	fsService := afs.New()
	data, err := fsService.DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, types.WrapError(types.KindConfig, "failed to load config "+URL, err)
	}
	ret := DefaultConfig()
	document := envexpr.Expand(string(data), os.LookupEnv)
	if err = yaml.Unmarshal([]byte(document), ret); err != nil {
		return nil, types.WrapError(types.KindConfig, "failed to parse config "+URL, err)
	}
	return ret, nil
}

// ApplyEnv overrides fields from environment variables; empty values are ignored.
// A numeric variable that does not parse is ignored as well.
func (c *Config) ApplyEnv(lookup func(key string) (string, bool)) {
	get := func(key string) string {
		value, ok := lookup(key)
		if !ok {
			return ""
		}
		return strings.TrimSpace(value)
	}
	getInt := func(key string, target *int) {
		if value := get(key); value != "" {
			if parsed, err := strconv.Atoi(value); err == nil {
				*target = parsed
			}
		}
	}
	if value := get(EnvBackend); value != "" {
		c.Backend = strings.ToLower(value)
	}
	if value := get(EnvHistoryFile); value != "" {
		c.HistoryFile = value
	}
	if value := get(EnvGistID); value != "" {
		c.Gist.ID = value
	}
	if value := get(EnvGistToken); value != "" {
		c.Gist.Token = value
	}
	if value := get(EnvGistTokenURL); value != "" {
		c.Gist.TokenURL = value
	}
	if value := get(EnvGistFileName); value != "" {
		c.Gist.FileName = value
	}
	getInt(EnvZlibLevel, &c.ZlibLevel)
	getInt(EnvMaxBatch, &c.MaxBatch)
	getInt(EnvMaxAttempts, &c.MaxAttempts)
}

// BackendKind resolves BackendAuto to the backend that will be built.
func (c *Config) BackendKind() string {
	if c.Backend != BackendAuto {
		return c.Backend
	}
	if c.Gist.ID != "" && (c.Gist.Token != "" || c.Gist.TokenURL != "") {
		return BackendGist
	}
	return BackendFile
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var err error
	switch c.BackendKind() {
	case BackendFile:
		if strings.TrimSpace(c.HistoryFile) == "" {
			err = multierror.Append(err, types.NewError(types.KindConfig, "historyFile is empty"))
		}
	case BackendGist:
		if gistErr := c.Gist.Validate(); gistErr != nil {
			err = multierror.Append(err, gistErr)
		}
	case BackendMemory:
	default:
		err = multierror.Append(err, types.Errorf(types.KindConfig, "unsupported backend: %v", c.Backend))
	}
	if c.MaxBatch < 0 {
		err = multierror.Append(err, types.NewError(types.KindConfig, "maxBatch must be >= 0"))
	}
	if c.MaxAttempts < 0 {
		err = multierror.Append(err, types.NewError(types.KindConfig, "maxAttempts must be >= 0"))
	}
	if err != nil {
		return types.WrapError(types.KindConfig, "invalid config", err)
	}
	return nil
}

// NewBackend builds the configured persistence backend.
func (c *Config) NewBackend(ctx context.Context) (backend.Backend, error) {
	switch kind := c.BackendKind(); kind {
	case BackendFile:
		return fs.New(c.HistoryFile)
	case BackendGist:
		return gist.New(ctx, &c.Gist)
	case BackendMemory:
		return memory.New(nil), nil
	default:
		return nil, types.Errorf(types.KindConfig, "unsupported backend: %v", kind)
	}
}
