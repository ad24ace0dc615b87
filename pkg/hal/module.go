package hal

import "context"

// InterruptLine is an interrupt output of the device wired to the host.
type InterruptLine interface {
	// Wait blocks until the next active edge or until ctx is done.
	Wait(ctx context.Context) error
	Close() error
}
