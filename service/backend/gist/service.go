package gist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/viant/namepool/model/types"
	"github.com/viant/namepool/service/backend"
	"github.com/viant/namepool/service/codec"
)

const (
	// Name identifies the backend.
	Name = "gist"
	// DefaultFileName is the gist file holding the base64 blob.
	DefaultFileName = "history.bin.b64"
	// DefaultBaseURL is the GitHub REST endpoint.
	DefaultBaseURL = "https://api.github.com"
	// DefaultTimeout bounds every request.
	DefaultTimeout = 20 * time.Second
	// Sentinel is the placeholder content of a gist that was created by hand
	// and not yet claimed.
	Sentinel = "init"

	userAgent    = "namepool/1.0"
	maxErrorBody = 500
)

// classicTokenPrefixes take the "token" authorization scheme, anything else
// is sent as a bearer token.
var classicTokenPrefixes = []string{"ghp_", "gho_", "ghu_", "ghs_", "ghr_"}

// Service stores the blob as base64 text in one file of one gist.
//
// The gist API offers no conditional update, so Write overwrites
// unconditionally and can clobber a concurrent writer: last writer wins.
type Service struct {
	config *Config
	client *http.Client
}

// Ensure Service implements backend.Backend
var _ backend.Backend = (*Service)(nil)

// Name returns backend name
func (s *Service) Name() string {
	return Name
}

// SupportsConditionalWrite returns false, see Service.
func (s *Service) SupportsConditionalWrite() bool {
	return false
}

// Shared returns true: other replicas may update the gist at any time.
func (s *Service) Shared() bool {
	return true
}

// Read fetches the gist and returns the decoded blob. A missing file, empty
// content, the init sentinel, or text decoding to less than a blob header
// all mean "not initialized" and yield (nil, nil).
func (s *Service) Read(ctx context.Context) ([]byte, error) {
	content, err := s.readContent(ctx)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" || content == Sentinel {
		return nil, nil
	}
	blob, err := backend.DecodeText(content)
	if err != nil {
		return nil, err
	}
	if len(blob) < codec.HeaderSize {
		return nil, nil
	}
	return blob, nil
}

// Write replaces the gist file content with the base64 form of blob.
func (s *Service) Write(ctx context.Context, blob []byte) error {
	payload := map[string]interface{}{
		"files": map[string]interface{}{
			s.config.FileName: map[string]string{"content": backend.EncodeText(blob)},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return types.WrapError(types.KindInternal, "could not encode gist update", err)
	}
	status, respBody, err := s.do(ctx, http.MethodPatch, s.gistURL(), body)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		message := fmt.Sprintf("gist PATCH failed (HTTP %d)", status)
		if len(respBody) > 0 {
			if len(respBody) > maxErrorBody {
				respBody = respBody[:maxErrorBody]
			}
			message += ": " + string(respBody)
		}
		return types.NewError(types.KindNetwork, message)
	}
	return nil
}

func (s *Service) readContent(ctx context.Context) (string, error) {
	status, body, err := s.do(ctx, http.MethodGet, s.gistURL(), nil)
	if err != nil {
		return "", err
	}
	if status == http.StatusNotFound {
		return "", types.NewError(types.KindConfig, "gist not found (check HISTORY_GIST_ID)")
	}
	if status < 200 || status >= 300 {
		return "", types.Errorf(types.KindNetwork, "gist GET failed (HTTP %d)", status)
	}
	fileNode, _, _, err := jsonparser.Get(body, "files", s.config.FileName)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return "", nil
	}
	if err != nil {
		return "", types.WrapError(types.KindFormat, "gist JSON malformed", err)
	}
	// large files are truncated in the gist document and served from raw_url
	if truncated, _ := jsonparser.GetBoolean(fileNode, "truncated"); truncated {
		rawURL, err := jsonparser.GetString(fileNode, "raw_url")
		if err != nil {
			return "", types.WrapError(types.KindFormat, "gist JSON missing raw_url for truncated file", err)
		}
		return s.readRaw(ctx, rawURL)
	}
	content, err := jsonparser.GetString(fileNode, "content")
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return "", types.NewError(types.KindFormat, "gist JSON missing content field")
	}
	if err != nil {
		return "", types.WrapError(types.KindFormat, "gist JSON malformed near content", err)
	}
	return content, nil
}

func (s *Service) readRaw(ctx context.Context, rawURL string) (string, error) {
	status, body, err := s.do(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", types.Errorf(types.KindNetwork, "gist raw GET failed (HTTP %d)", status)
	}
	return string(body), nil
}

func (s *Service) do(ctx context.Context, method, URL string, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	request, err := http.NewRequestWithContext(ctx, method, URL, reader)
	if err != nil {
		return 0, nil, types.WrapError(types.KindConfig, "invalid gist request", err)
	}
	request.Header.Set("Accept", "application/vnd.github+json")
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("User-Agent", userAgent)
	request.Header.Set("Authorization", authorization(s.config.Token))
	response, err := s.client.Do(request)
	if err != nil {
		return 0, nil, types.WrapError(types.KindNetwork, "gist request failed", err)
	}
	defer response.Body.Close()
	data, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, nil, types.WrapError(types.KindNetwork, "gist response read failed", err)
	}
	return response.StatusCode, data, nil
}

func (s *Service) gistURL() string {
	return strings.TrimRight(s.config.BaseURL, "/") + "/gists/" + s.config.ID
}

func authorization(token string) string {
	for _, prefix := range classicTokenPrefixes {
		if strings.HasPrefix(token, prefix) {
			return "token " + token
		}
	}
	return "Bearer " + token
}
