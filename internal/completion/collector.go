package completion

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/suggest/internal/completion/item"
)

// ResponseSet owns the in-flight provider tasks of one request wave and
// drains whichever finishes first. Responses surface in completion
// order, not submission order: partial results are shown as soon as any
// provider answers.
//
// A failing provider task is a defect in the provider integration; the
// failure is propagated out of the draining loop rather than swallowed.
type ResponseSet struct {
	g       *errgroup.Group
	ctx     context.Context
	results chan item.Response

	sealOnce sync.Once
	err      error
}

// NewResponseSet creates an empty set. Tasks spawned after the parent
// context is canceled finish on their own but their results are
// discarded.
func NewResponseSet(ctx context.Context) *ResponseSet {
	g, gctx := errgroup.WithContext(ctx)
	return &ResponseSet{
		g:       g,
		ctx:     gctx,
		results: make(chan item.Response),
	}
}

// Spawn adds one provider task to the set. All tasks must be spawned
// before Seal is called.
func (s *ResponseSet) Spawn(fn func(ctx context.Context) (item.Response, error)) {
	s.g.Go(func() error {
		resp, err := fn(s.ctx)
		if err != nil {
			return err
		}
		select {
		case s.results <- resp:
			return nil
		case <-s.ctx.Done():
			return s.ctx.Err()
		}
	})
}

// Seal marks the set complete. Once every task has finished, the result
// stream ends.
func (s *ResponseSet) Seal() {
	s.sealOnce.Do(func() {
		go func() {
			// Wait error is published before the close, so readers that
			// observe the closed channel see it.
			s.err = s.g.Wait()
			close(s.results)
		}()
	})
}

// Next returns the next finished response. The second return value is
// false once the pending set is empty; a non-nil error at that point is
// a provider task failure (or context cancellation) and is fatal to the
// collecting loop.
func (s *ResponseSet) Next(ctx context.Context) (item.Response, bool, error) {
	select {
	case resp, ok := <-s.results:
		if !ok {
			return item.Response{}, false, s.err
		}
		return resp, true, nil
	case <-ctx.Done():
		return item.Response{}, false, ctx.Err()
	}
}

// NextInformative returns the next response worth forwarding. A
// response that is both empty and not marked incomplete carries no
// information and is discarded; an empty response marked incomplete is
// always forwarded since it updates the provider's incomplete counter.
// With acceptUninformative set, even empty complete replies come
// through: during incremental re-querying they supersede the
// provider's items and clear its counter.
func (s *ResponseSet) NextInformative(ctx context.Context, acceptUninformative bool) (item.Response, bool, error) {
	for {
		resp, ok, err := s.Next(ctx)
		if err != nil || !ok {
			return item.Response{}, false, err
		}
		if !acceptUninformative && resp.IsUninformative() {
			continue
		}
		return resp, true, nil
	}
}
