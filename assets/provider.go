package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"strings"
	"sync"
	"time"
)

// Source opens raw asset bytes for a key. Keys may carry a query string.
type Source interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// Provider loads images asynchronously and hands out handles the game loop can poll.
type Provider struct {
	source Source
	ctx    context.Context

	mu      sync.Mutex
	handles map[string]*Handle

	// MaxRetries is the number of extra attempts after the first failure.
	MaxRetries int
	// RetryBase is multiplied by the attempt number: 1x, 2x, 3x.
	RetryBase time.Duration
	// AfterFunc schedules a retry. Defaults to time.AfterFunc.
	AfterFunc func(d time.Duration, f func())
	// Go starts a load. Defaults to a new goroutine.
	Go func(f func())
}

func NewProvider(ctx context.Context, source Source) *Provider {
	return &Provider{
		source:     source,
		ctx:        ctx,
		handles:    make(map[string]*Handle),
		MaxRetries: 3,
		RetryBase:  time.Second,
		AfterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
		Go: func(f func()) {
			go f()
		},
	}
}

// Load starts loading key unless it is already known and returns its handle.
func (p *Provider) Load(key string) *Handle {
	p.mu.Lock()
	if h, ok := p.handles[key]; ok {
		p.mu.Unlock()
		return h
	}
	h := newHandle(key)
	p.handles[key] = h
	p.mu.Unlock()

	p.Go(func() { p.fetch(h, 0) })
	return h
}

// LoadAll loads every key and returns the handles as a group.
func (p *Provider) LoadAll(keys ...string) *Group {
	g := NewGroup()
	for _, k := range keys {
		g.Add(p.Load(k))
	}
	return g
}

func (p *Provider) fetch(h *Handle, attempt int) {
	if p.ctx.Err() != nil {
		return
	}

	img, err := p.decode(retryKey(h.key, attempt))
	if err == nil {
		h.resolve(img)
		return
	}

	if attempt >= p.MaxRetries {
		log.Printf("Warning: Could not load %s after %d attempts: %v", h.key, attempt+1, err)
		h.fail()
		return
	}

	delay := time.Duration(attempt+1) * p.RetryBase
	log.Printf("Warning: Could not load %s (%v), retrying in %s", h.key, err, delay)
	p.AfterFunc(delay, func() { p.fetch(h, attempt+1) })
}

func (p *Provider) decode(key string) (image.Image, error) {
	rc, err := p.source.Open(p.ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, _, err := image.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return img, nil
}

// retryKey appends the cache-busting parameter used for retried requests.
func retryKey(key string, attempt int) string {
	if attempt == 0 {
		return key
	}
	sep := "?"
	if strings.Contains(key, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%sretry=%d", key, sep, attempt)
}
