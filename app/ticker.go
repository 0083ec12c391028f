package app

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ScheduleRecurringTick posts a tick to out every interval until ctx is
// done. Sends never block: if the loop has not consumed the previous tick
// the new one is dropped, so a slow generation does not build a backlog.
func ScheduleRecurringTick(ctx context.Context, interval time.Duration, out chan<- struct{}) error {
	if interval <= 0 {
		return errors.Errorf("[ScheduleRecurringTick] interval must be positive, got %v", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}
}
