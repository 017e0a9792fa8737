package domain

import "context"

// Worker is a background job running until ctx is done.
type Worker interface {
	Start(ctx context.Context)
}
