package domain

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc"

	"moviehub-bot/internal/config"
)

// Subscriptions is a group of in-flight fetches that can be cancelled together.
// The zero value is ready to use. After Clear the group accepts new work.
type Subscriptions struct {
	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	wg     *conc.WaitGroup
}

func (s *Subscriptions) init() {
	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		s.wg = conc.NewWaitGroup()
	}
}

// Go runs fn on its own goroutine. ctx is cancelled by Clear.
func (s *Subscriptions) Go(fn func(ctx context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.init()
	ctx := s.ctx
	s.wg.Go(func() {
		fn(ctx)
	})
}

// Clear cancels every pending fetch and waits until their goroutines return,
// so no subscriber is called once Clear returns. It must not be called from
// inside a subscriber callback.
func (s *Subscriptions) Clear() {
	s.mu.Lock()
	s.init()
	cancel, wg := s.cancel, s.wg
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.wg = conc.NewWaitGroup()
	s.mu.Unlock()

	cancel()
	wait(wg)
}

// Wait blocks until the fetches started so far have delivered.
func (s *Subscriptions) Wait() {
	s.mu.Lock()
	s.init()
	wg := s.wg
	s.mu.Unlock()

	wait(wg)
}

func wait(wg *conc.WaitGroup) {
	if recovered := wg.WaitAndRecover(); recovered != nil {
		logger := config.GetLogger()
		logger.Error().
			Str("panic", recovered.String()).
			Msg("Subscriber panicked")
	}
}
