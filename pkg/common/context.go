package common

import "context"

// runContext runs a blocking bus transfer and gives up waiting when ctx
// ends. The transfer itself cannot be interrupted; it completes in the
// background and its result is dropped. r is only filled on success.
func runContext(ctx context.Context, r []byte, transfer func(r []byte) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	buf := make([]byte, len(r))
	done := make(chan error, 1)
	go func() {
		done <- transfer(buf)
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return err
		}
		copy(r, buf)
		return nil
	}
}
