package notifier

import (
	"context"
)

// Notifier delivers a formatted text to the single configured admin
// recipient. Implementations carry no retry, batching, or rate limiting;
// failures are the caller's to report.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}
