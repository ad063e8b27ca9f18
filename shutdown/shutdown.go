// Package shutdown turns SIGINT/SIGTERM into context cancellation and runs
// registered cleanup hooks first, so long harness runs stop cleanly.
package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	mut   sync.Mutex //nolint:gochecknoglobals
	hooks []func()   //nolint:gochecknoglobals
)

// BeforeShutdown registers a function to run before the context returned by
// SetupHandler is cancelled. Hooks run in registration order.
func BeforeShutdown(h func()) {
	mut.Lock()
	defer mut.Unlock()

	hooks = append(hooks, h)
}

// SetupHandler returns a context derived from parent that is cancelled when
// the process receives SIGINT or SIGTERM, after the registered hooks have run.
// Call the returned stop function to release the signal handler.
func SetupHandler(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-ch:
			slog.Warn("Received " + sig.String() + ", shutting down...")
			RunHooks()
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(ch)
		cancel()
	}
}

// RunHooks runs and clears every registered hook. It is also how a program
// flushes hooks on a normal exit.
func RunHooks() {
	mut.Lock()
	pending := hooks
	hooks = nil
	mut.Unlock()

	for _, h := range pending {
		h()
	}
}
