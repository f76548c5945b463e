package timer

import (
	"context"
	"time"
)

// Pause blocks for ticks*tick, or until ctx is done. It returns false if the pause
// was cut short, in which case the caller must not continue its step.
func Pause(ctx context.Context, ticks int, tick time.Duration) bool {
	t := time.NewTimer(time.Duration(ticks) * tick)
	defer stopTimer(t)

	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// Stops the timer and drains its channel.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
