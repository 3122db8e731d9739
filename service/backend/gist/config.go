package gist

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/viant/namepool/model/types"
	"github.com/viant/scy"
)

// Config addresses one gist file and the credential used to reach it.
type Config struct {
	ID       string        `json:"id" yaml:"id"`
	Token    string        `json:"-" yaml:"-"`
	TokenURL string        `json:"tokenURL,omitempty" yaml:"tokenURL,omitempty"`
	TokenKey string        `json:"tokenKey,omitempty" yaml:"tokenKey,omitempty"`
	FileName string        `json:"fileName,omitempty" yaml:"fileName,omitempty"`
	BaseURL  string        `json:"baseURL,omitempty" yaml:"baseURL,omitempty"`
	Timeout  time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// Init fills defaults.
func (c *Config) Init() {
	if c.FileName == "" {
		c.FileName = DefaultFileName
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
}

// Validate checks that the gist is addressable and a credential is configured.
func (c *Config) Validate() error {
	var err error
	if strings.TrimSpace(c.ID) == "" {
		err = multierror.Append(err, types.NewError(types.KindConfig, "HISTORY_GIST_ID is empty"))
	}
	if strings.TrimSpace(c.Token) == "" && c.TokenURL == "" {
		err = multierror.Append(err, types.NewError(types.KindConfig, "HISTORY_GITHUB_TOKEN is empty"))
	}
	if err != nil {
		return types.WrapError(types.KindConfig, "invalid gist config", err)
	}
	return nil
}

// resolveToken loads the credential from TokenURL through scy when no inline
// token was given.
func (c *Config) resolveToken(ctx context.Context, secrets *scy.Service) error {
	if c.Token != "" || c.TokenURL == "" {
		return nil
	}
	secret, err := secrets.Load(ctx, scy.NewResource(nil, c.TokenURL, c.TokenKey))
	if err != nil {
		return types.WrapError(types.KindConfig, "failed to load gist token from "+c.TokenURL, err)
	}
	c.Token = strings.TrimSpace(secret.String())
	if c.Token == "" {
		return types.NewError(types.KindConfig, "HISTORY_GITHUB_TOKEN is empty")
	}
	return nil
}

// Option customises the gist backend.
type Option func(s *Service)

// WithHTTPClient replaces the HTTP client; its timeout is left untouched.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

// New validates config, resolves the credential and creates the backend.
func New(ctx context.Context, config *Config, options ...Option) (*Service, error) {
	if config == nil {
		return nil, types.NewError(types.KindConfig, "gist config is missing")
	}
	cfg := *config
	cfg.Init()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.resolveToken(ctx, scy.New()); err != nil {
		return nil, err
	}
	ret := &Service{config: &cfg}
	for _, option := range options {
		option(ret)
	}
	if ret.client == nil {
		ret.client = &http.Client{Timeout: cfg.Timeout}
	}
	return ret, nil
}
