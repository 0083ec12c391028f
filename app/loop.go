package app

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// idleInterval is how long the loop sleeps when no input is pending
const idleInterval = 10 * time.Millisecond

// Run drives the event loop on the calling goroutine until a quit event or
// ctx is done. The tick scheduler runs on its own goroutine and only posts
// ticks; the grid is touched exclusively from here.
func (a *App) Run(ctx context.Context, src EventSource) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, egCtx := errgroup.WithContext(ctx)
	ticks := make(chan struct{}, 1)
	eg.Go(func() error {
		return ScheduleRecurringTick(egCtx, a.config.TickInterval(), ticks)
	})

	err := a.loop(egCtx, src, ticks)
	cancel()

	if werr := eg.Wait(); err == nil {
		err = werr
	}
	return err
}

func (a *App) loop(ctx context.Context, src EventSource, ticks <-chan struct{}) error {
	idle := time.NewTicker(idleInterval)
	defer idle.Stop()

	for {
		for {
			ev, ok := src.PollEvent()
			if !ok {
				break
			}
			cont, err := a.Dispatch(ev)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticks:
			if _, err := a.Dispatch(Event{Kind: Tick}); err != nil {
				return err
			}
		case <-idle.C:
		}
	}
}
