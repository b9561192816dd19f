package fakeapi

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func quiet() *log.Logger { return log.New(io.Discard, "", 0) }

func TestFetchReturnsContent(t *testing.T) {
	c := New(Options{Logger: quiet()})
	st, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if st.PlainText() != SampleContent {
		t.Fatalf("got %q", st.PlainText())
	}
	again, _ := c.Fetch(context.Background())
	if again == st {
		t.Fatalf("each fetch must produce a new revision")
	}
}

func TestFetchHonoursCancel(t *testing.T) {
	c := New(Options{LoadDelay: time.Hour, Logger: quiet()})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Fetch(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSubmitRecordsConcurrently(t *testing.T) {
	c := New(Options{SaveDelay: time.Millisecond, Logger: quiet()})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Submit(context.Background(), "x")
		}()
	}
	wg.Wait()
	want := []string{"x", "x", "x", "x", "x", "x", "x", "x"}
	if diff := cmp.Diff(want, c.Saved()); diff != "" {
		t.Fatalf("saved mismatch (-want +got):\n%s", diff)
	}
}
