package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/gridform/pkg/process"
)

// NewRemote creates a Persistence speaking to the processes REST API at
// baseURL.
func NewRemote(baseURL string) (Persistence, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("store: parse remote url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("store: remote url %q needs a scheme and host", baseURL)
	}
	return &remote{
		base:   u.String(),
		client: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type remote struct {
	base   string
	client *http.Client
}

func (r *remote) Save(ctx context.Context, proc *process.Process) (*process.Process, error) {
	method := http.MethodPost
	path := "/processes/"
	if proc.ID != "" {
		method = http.MethodPut
		path = "/processes/" + url.PathEscape(proc.ID)
	}

	body, err := json.Marshal(proc)
	if err != nil {
		return nil, err
	}
	saved := &process.Process{}
	if err := r.do(ctx, method, path, nil, bytes.NewReader(body), saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *remote) Get(ctx context.Context, id, name string) (*process.Process, error) {
	if id == "" && name == "" {
		return nil, fmt.Errorf("store: provide an id or a name")
	}
	query := url.Values{}
	if id != "" {
		query.Set("process_id", id)
	} else {
		query.Set("process_name", name)
	}
	proc := &process.Process{}
	if err := r.do(ctx, http.MethodGet, "/processes/fetch", query, nil, proc); err != nil {
		return nil, err
	}
	return proc, nil
}

func (r *remote) List(ctx context.Context, opts ListOptions) ([]process.Summary, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(opts.Skip))
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	query.Set("active_only", strconv.FormatBool(opts.ActiveOnly))

	var all []process.Summary
	if err := r.do(ctx, http.MethodGet, "/processes/", query, nil, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *remote) Search(ctx context.Context, term string) ([]process.Summary, error) {
	var all []process.Summary
	path := "/processes/search/" + url.PathEscape(term)
	if err := r.do(ctx, http.MethodGet, path, nil, nil, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *remote) Delete(ctx context.Context, id string, hard bool) error {
	query := url.Values{}
	query.Set("soft_delete", strconv.FormatBool(!hard))
	path := "/processes/" + url.PathEscape(id)
	return r.do(ctx, http.MethodDelete, path, query, nil, nil)
}

func (r *remote) do(ctx context.Context, method, path string, query url.Values, body io.Reader, out interface{}) error {
	target := r.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("store: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("store: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("store: %s %s: %s: %s", method, path, resp.Status, strings.TrimSpace(string(detail)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("store: decode response: %w", err)
	}
	return nil
}
