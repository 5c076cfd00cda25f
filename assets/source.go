package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
)

// ErrNotFound is returned by sources when an asset does not exist.
var ErrNotFound = errors.New("asset not found")

// FSSource reads assets from a file system. Query strings are ignored.
type FSSource struct {
	FS fs.FS
}

func (s FSSource) Open(_ context.Context, key string) (io.ReadCloser, error) {
	name, _, _ := strings.Cut(key, "?")
	name = path.Clean(strings.TrimPrefix(name, "/"))

	f, err := s.FS.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return f, nil
}

// HTTPSource fetches assets relative to a base URL, so the tour can be
// served from a sub-directory.
type HTTPSource struct {
	Base   *url.URL
	Client *http.Client
}

func (s HTTPSource) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	name, query, _ := strings.Cut(key, "?")
	ref := &url.URL{Path: strings.TrimPrefix(name, "/"), RawQuery: query}
	u := s.Base.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", u, err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", u, err)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, u)
	case resp.StatusCode != http.StatusOK:
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: %s", u, resp.Status)
	}
	return resp.Body, nil
}

// NewSource picks a source for an asset base: an http(s) URL or a local directory.
func NewSource(base string) (Source, error) {
	if strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://") {
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("parse asset base %q: %w", base, err)
		}
		return HTTPSource{Base: u}, nil
	}
	return FSSource{FS: os.DirFS(base)}, nil
}
