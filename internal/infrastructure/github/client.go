package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/mononotes/mononotes/internal/domain/apperror"
	"github.com/mononotes/mononotes/internal/domain/contract"
	"github.com/mononotes/mononotes/internal/domain/entity"
)

const (
	defaultBaseURL = "https://api.github.com"
	apiVersion     = "2022-11-28"
	acceptHeader   = "application/vnd.github+json"
)

// Config carries the settings needed to talk to the GitHub Contents API.
type Config struct {
	Token      string
	Repo       string // owner/name
	ContentDir string
	BaseURL    string // overridable for tests
	Timeout    time.Duration
}

// Client implements contract.IContentFetcher against the GitHub Contents
// API: directory listing, blob reads and conditional writes keyed on the
// file's current blob sha.
type Client struct {
	httpClient *http.Client
	baseURL    string
	owner      string
	repo       string
	contentDir string
	timeout    time.Duration
}

var _ contract.IContentFetcher = (*Client)(nil)

// NewClient creates a Contents API client for one repository.
func NewClient(cfg Config) (*Client, error) {
	owner, name, ok := strings.Cut(cfg.Repo, "/")
	if !ok || owner == "" || name == "" {
		return nil, apperror.Configurationf("REPO must be in owner/repo format, got %q", cfg.Repo)
	}

	httpClient := http.DefaultClient
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		owner:      owner,
		repo:       name,
		contentDir: strings.Trim(cfg.ContentDir, "/"),
		timeout:    timeout,
	}, nil
}

type contentEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	SHA  string `json:"sha"`
	Type string `json:"type"`
}

type fileContent struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
	SHA      string `json:"sha"`
}

type putResponse struct {
	Content struct {
		SHA string `json:"sha"`
	} `json:"content"`
}

// ListFiles lists all markdown content files under the content directory.
func (c *Client) ListFiles(ctx context.Context, branch string) ([]entity.RemoteFileRef, error) {
	url := fmt.Sprintf("%s?ref=%s", c.contentsURL(c.contentDir), branch)
	body, status, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, c.translate(status, body)
	}

	var entries []contentEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("decoding contents listing: %w", err)
	}

	refs := make([]entity.RemoteFileRef, 0, len(entries))
	for _, entry := range entries {
		if entry.Type != "file" || !hasContentExtension(entry.Name) {
			continue
		}
		refs = append(refs, entity.RemoteFileRef{
			Path:   entry.Path,
			Branch: branch,
			SHA:    entry.SHA,
		})
	}
	return refs, nil
}

// ReadFile fetches one file's content and decodes it from base64.
func (c *Client) ReadFile(ctx context.Context, path, branch string) (string, error) {
	url := fmt.Sprintf("%s?ref=%s", c.contentsURL(path), branch)
	body, status, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", c.translate(status, body)
	}

	var file fileContent
	if err := json.Unmarshal(body, &file); err != nil {
		return "", fmt.Errorf("decoding file response for %s: %w", path, err)
	}
	decoded, err := base64.StdEncoding.DecodeString(stripWhitespace(file.Content))
	if err != nil {
		return "", fmt.Errorf("decoding base64 content of %s: %w", path, err)
	}
	return string(decoded), nil
}

// HeadFile returns the current blob sha of a path, or "" when the path does
// not exist at that branch. Absence is a normal precondition, not an error.
func (c *Client) HeadFile(ctx context.Context, path, branch string) (string, error) {
	url := fmt.Sprintf("%s?ref=%s", c.contentsURL(path), branch)
	body, status, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	if status == http.StatusNotFound {
		return "", nil
	}
	if status != http.StatusOK {
		return "", c.translate(status, body)
	}

	var file fileContent
	if err := json.Unmarshal(body, &file); err != nil {
		return "", fmt.Errorf("decoding file response for %s: %w", path, err)
	}
	return file.SHA, nil
}

// PutFile creates or updates a file. An empty input.SHA declares that no
// file is expected at the path; a non-empty one is the compare-and-swap
// token. Returns the new blob sha.
func (c *Client) PutFile(ctx context.Context, input contract.PutFileInput) (string, error) {
	payload := map[string]string{
		"message": input.Message,
		"content": base64.StdEncoding.EncodeToString([]byte(input.Content)),
		"branch":  input.Branch,
	}
	if input.SHA != "" {
		payload["sha"] = input.SHA
	}
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	body, status, err := c.do(ctx, http.MethodPut, c.contentsURL(input.Path), reqBody)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return "", c.translate(status, body)
	}

	var resp putResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decoding commit response for %s: %w", input.Path, err)
	}
	return resp.Content.SHA, nil
}

// DeleteFile removes a file, with sha as the compare-and-swap token.
func (c *Client) DeleteFile(ctx context.Context, path, sha, branch, message string) error {
	reqBody, err := json.Marshal(map[string]string{
		"message": message,
		"sha":     sha,
		"branch":  branch,
	})
	if err != nil {
		return err
	}

	body, status, err := c.do(ctx, http.MethodDelete, c.contentsURL(path), reqBody)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return c.translate(status, body)
	}
	return nil
}

func (c *Client) contentsURL(path string) string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, c.owner, c.repo, strings.Trim(path, "/"))
}

// do performs one bounded-timeout request and returns the raw body and
// status. Transport-level failures, including timeouts, map to
// ErrRemoteUnavailable.
func (c *Client) do(ctx context.Context, method, url string, reqBody []byte) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if reqBody != nil {
		reader = bytes.NewReader(reqBody)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %v: %w", method, url, err, apperror.ErrRemoteUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("reading response of %s %s: %v: %w", method, url, err, apperror.ErrRemoteUnavailable)
	}
	return body, resp.StatusCode, nil
}

// translate maps remote failure statuses onto the error taxonomy with a
// distinct actionable message per cause.
func (c *Client) translate(status int, body []byte) error {
	text := strings.TrimSpace(string(body))
	switch {
	case status == http.StatusUnauthorized:
		return fmt.Errorf("github credential is invalid or expired: %w", apperror.ErrRemoteAuth)
	case status == http.StatusForbidden:
		return fmt.Errorf("github credential lacks permission to write repository contents: %w", apperror.ErrRemoteAuth)
	case status == http.StatusNotFound:
		return apperror.NotFoundf("repository %s/%s, branch or path not found", c.owner, c.repo)
	case status == http.StatusConflict:
		return fmt.Errorf("version hash is stale, refetch and resubmit: %w", apperror.ErrConcurrentModification)
	case status == http.StatusUnprocessableEntity && strings.Contains(text, "sha"):
		return fmt.Errorf("version hash is stale, refetch and resubmit: %w", apperror.ErrConcurrentModification)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("github responded with status %d: %w", status, apperror.ErrRemoteUnavailable)
	default:
		return &apperror.RemoteError{Status: status, Body: text}
	}
}

func hasContentExtension(name string) bool {
	return strings.HasSuffix(name, ".md") || strings.HasSuffix(name, ".mdx")
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, s)
}
