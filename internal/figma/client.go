package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the production Figma REST API endpoint.
const DefaultBaseURL = "https://api.figma.com"

// Client talks to the Figma REST API. It only performs the prefetch
// phase; translation itself never touches the network.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient returns a client authenticated with a personal access token.
func NewClient(token string) *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// WithBaseURL overrides the API endpoint, used by tests.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = strings.TrimSuffix(base, "/")
	return c
}

// FileResponse is the GET /v1/files/:key payload, reduced to the fields
// the compiler consumes.
type FileResponse struct {
	Name     string `json:"name"`
	Document Node   `json:"document"`
}

// NodesResponse is the GET /v1/files/:key/nodes payload.
type NodesResponse struct {
	Nodes map[string]struct {
		Document Node `json:"document"`
	} `json:"nodes"`
}

// ImagesResponse is the GET /v1/images/:key payload. A node that failed
// to render maps to an empty URL.
type ImagesResponse struct {
	Err    string            `json:"err,omitempty"`
	Images map[string]string `json:"images"`
}

// Variable is one local design variable.
type Variable struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	ResolvedType string         `json:"resolvedType"`
	ValuesByMode map[string]any `json:"valuesByMode"`
}

// VariablesResponse is the GET /v1/files/:key/variables/local payload.
type VariablesResponse struct {
	Meta struct {
		Variables map[string]Variable `json:"variables"`
	} `json:"meta"`
}

// GetFile fetches the complete document tree for a file key.
func (c *Client) GetFile(ctx context.Context, key string) (*FileResponse, error) {
	var resp FileResponse
	if err := c.get(ctx, "/v1/files/"+url.PathEscape(key), nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch file %s: %w", key, err)
	}
	return &resp, nil
}

// GetNodes fetches specific nodes of a file by id.
func (c *Client) GetNodes(ctx context.Context, key string, ids []string) (*NodesResponse, error) {
	q := url.Values{"ids": {strings.Join(ids, ",")}}
	var resp NodesResponse
	if err := c.get(ctx, "/v1/files/"+url.PathEscape(key)+"/nodes", q, &resp); err != nil {
		return nil, fmt.Errorf("fetch nodes %s: %w", key, err)
	}
	return &resp, nil
}

// GetImages asks the render API for node exports in the given format
// ("png", "svg", "gif", "mp4"). Scale is ignored for vector formats.
func (c *Client) GetImages(ctx context.Context, key string, ids []string, format string, scale float64) (*ImagesResponse, error) {
	q := url.Values{
		"ids":    {strings.Join(ids, ",")},
		"format": {format},
	}
	if scale > 0 {
		q.Set("scale", fmt.Sprintf("%g", scale))
	}
	var resp ImagesResponse
	if err := c.get(ctx, "/v1/images/"+url.PathEscape(key), q, &resp); err != nil {
		return nil, fmt.Errorf("render %s images for %s: %w", format, key, err)
	}
	if resp.Err != "" {
		return nil, fmt.Errorf("render %s images for %s: %s", format, key, resp.Err)
	}
	return &resp, nil
}

// GetLocalVariables fetches the file's local design variables.
func (c *Client) GetLocalVariables(ctx context.Context, key string) (*VariablesResponse, error) {
	var resp VariablesResponse
	if err := c.get(ctx, "/v1/files/"+url.PathEscape(key)+"/variables/local", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch variables %s: %w", key, err)
	}
	return &resp, nil
}

// Download fetches an asset URL returned by the render API. Render URLs
// are unauthenticated S3 links, so no token header is sent.
func (c *Client) Download(ctx context.Context, assetURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %s: status %d", assetURL, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Figma-Token", c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
