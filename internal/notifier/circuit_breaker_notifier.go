package notifier

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker"

	"avery/internal/config"
	"avery/pkg/circuitbreaker"
)

// CircuitBreakerNotifier fails fast while the messaging channel is down. It
// adds no retries; an open breaker still surfaces as a delivery failure.
type CircuitBreakerNotifier struct {
	next Notifier
	cb   *circuitbreaker.Wrapper
}

func NewCircuitBreakerNotifier(next Notifier, cfg config.CircuitBreakerConfig) *CircuitBreakerNotifier {
	if !cfg.Enabled {
		return &CircuitBreakerNotifier{
			next: next,
			cb:   nil,
		}
	}

	cbConfig := circuitbreaker.DefaultConfig("telegram-notify")
	if cfg.MaxRequests > 0 {
		cbConfig.MaxRequests = cfg.MaxRequests
	}
	if cfg.Interval > 0 {
		cbConfig.Interval = cfg.Interval
	}
	if cfg.Timeout > 0 {
		cbConfig.Timeout = cfg.Timeout
	}
	if cfg.FailureRatio > 0 && cfg.MinRequests > 0 {
		cbConfig.ReadyToTrip = func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureRatio
		}
	}

	return &CircuitBreakerNotifier{
		next: next,
		cb:   circuitbreaker.NewWrapper(cbConfig),
	}
}

func (n *CircuitBreakerNotifier) Notify(ctx context.Context, text string) error {
	if n.cb == nil {
		return n.next.Notify(ctx, text)
	}

	_, err := n.cb.ExecuteWithContext(ctx, func() (interface{}, error) {
		return nil, n.next.Notify(ctx, text)
	})

	n.cb.RecordRequest(err == nil)

	if err != nil {
		if n.cb.IsOpen() {
			return fmt.Errorf("circuit breaker is open for telegram-notify: %w", err)
		}
		return err
	}

	return nil
}
