// Package fakeapi simulates a remote document service with artificial
// latency. It stands in for a real backend in the demo and in tests.
package fakeapi

import (
	"context"
	"log"
	"sync"
	"time"

	"rtedit/internal/richtext"
)

// SampleContent is what Fetch returns unless Options.Content says otherwise.
const SampleContent = "Sample content loaded async!"

type Options struct {
	Content   string
	LoadDelay time.Duration
	SaveDelay time.Duration
	Logger    *log.Logger
}

// Client is safe for use from concurrent tea commands.
type Client struct {
	opts Options

	mu    sync.Mutex
	saved []string
}

func New(opts Options) *Client {
	if opts.Content == "" {
		opts.Content = SampleContent
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Client{opts: opts}
}

// Fetch waits for the load delay and returns a fresh document holding the
// configured content.
func (c *Client) Fetch(ctx context.Context) (*richtext.State, error) {
	if err := sleep(ctx, c.opts.LoadDelay); err != nil {
		return nil, err
	}
	c.opts.Logger.Printf("content loaded asynchronously: %q", c.opts.Content)
	return richtext.CreateWithText(c.opts.Content), nil
}

// Submit waits for the save delay and records text.
func (c *Client) Submit(ctx context.Context, text string) error {
	if err := sleep(ctx, c.opts.SaveDelay); err != nil {
		return err
	}
	c.mu.Lock()
	c.saved = append(c.saved, text)
	c.mu.Unlock()
	c.opts.Logger.Printf("content sent to fake API: %q", text)
	return nil
}

// Saved returns every submitted text in order.
func (c *Client) Saved() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.saved...)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
