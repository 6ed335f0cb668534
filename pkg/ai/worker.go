package ai

import (
	"context"
	"time"

	"github.com/madverse/madverse/pkg/story"
)

// remoteTimeout bounds the single round trip; exceeding it is treated like
// any other transport failure.
const remoteTimeout = 30 * time.Second

// Result is the terminal outcome of a background generation request:
// either a complete segment sequence with its narrator metadata, or an
// error the caller must convert into a degraded story before display.
// Everything a generation produces travels inside the Result; an abandoned
// request never touches state the caller can observe.
type Result struct {
	Segments story.Segments
	Meta     RemoteResult
	Err      error
}

// GenerateAsync runs one remote generation off the calling goroutine and
// delivers exactly one Result. Cancelling ctx stops the wait; no partial
// results are surfaced after cancellation.
func (a *AI) GenerateAsync(ctx context.Context, words story.WordMap, mood string) <-chan Result {
	out := make(chan Result, 1)

	go func() {
		defer close(out)

		cctx, cancel := context.WithTimeout(ctx, remoteTimeout)
		defer cancel()

		done := make(chan Result, 1)
		go func() {
			segs, meta := a.Generate(cctx, words, mood)
			done <- Result{Segments: segs, Meta: meta}
		}()

		select {
		case res := <-done:
			out <- res
		case <-cctx.Done():
			out <- Result{Err: cctx.Err()}
		}
	}()

	return out
}
