package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tracefetch/pkg/domain/interfaces"
	"github.com/m-mizutani/tracefetch/pkg/domain/model"
	"golang.org/x/oauth2"
)

const defaultAPIURL = "https://api.github.com"

type client struct {
	githubClient *github.Client
}

type options struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// Option configures the GitHub client
type Option func(*options)

// WithToken sets a bearer token used to raise the API rate limit
func WithToken(token string) Option {
	return func(o *options) {
		o.token = token
	}
}

// WithBaseURL points the client at another API endpoint (GitHub Enterprise or a test server)
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client. Ignored when a token is set.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// NewClient creates a new GitHub contents client. Without a token, requests are unauthenticated.
func NewClient(opts ...Option) (interfaces.ContentsClient, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if o.token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: o.token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	githubClient := github.NewClient(httpClient)

	if o.baseURL != "" && o.baseURL != defaultAPIURL {
		u, err := url.Parse(strings.TrimSuffix(o.baseURL, "/") + "/")
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse GitHub API URL", goerr.V("url", o.baseURL))
		}
		githubClient.BaseURL = u
	}

	return &client{
		githubClient: githubClient,
	}, nil
}

// ListDirectory lists a repository directory via the contents API
func (c *client) ListDirectory(ctx context.Context, owner, repo, path string) ([]*model.Entry, error) {
	file, dir, _, err := c.githubClient.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list directory",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("path", path),
		)
	}
	if dir == nil {
		// The contents API returns a single object when path points to a file
		return nil, goerr.New("path is not a directory",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("path", path),
			goerr.V("type", file.GetType()),
		)
	}

	entries := make([]*model.Entry, 0, len(dir))
	for _, content := range dir {
		entries = append(entries, &model.Entry{
			Name:        content.GetName(),
			Path:        content.GetPath(),
			Type:        model.EntryType(content.GetType()),
			DownloadURL: content.GetDownloadURL(),
			Size:        content.GetSize(),
		})
	}

	return entries, nil
}

// Download fetches the raw content behind a download URL
func (c *client) Download(ctx context.Context, downloadURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create download request", goerr.V("url", downloadURL))
	}

	// Use the same client transport so an optional token is sent along
	resp, err := c.githubClient.Client().Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download file", goerr.V("url", downloadURL))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, goerr.New(fmt.Sprintf("unexpected status code %d", resp.StatusCode),
			goerr.V("url", downloadURL),
			goerr.V("status", resp.StatusCode),
		)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body", goerr.V("url", downloadURL))
	}

	return data, nil
}
